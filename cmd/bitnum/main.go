// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Command bitnum prints how a few sample numbers are laid out in bits,
// and how they decode under different encodings.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"

	"github.com/avdva/bitnum/ieee754"
	"github.com/avdva/bitnum/integer"
)

func main() {
	if err := run(os.Stdout); err != nil {
		log.Fatalln(err)
	}
}

func run(out io.Writer) error {
	w := tabwriter.NewWriter(out, 0, 4, 1, ' ', 0)
	for _, v := range []integer.Value{
		integer.FromUint32(2),
		integer.FromInt32(1),
		integer.FromInt32(-128),
	} {
		printInteger(w, v)
	}
	printFloat(w, ieee754.FromFloat32(25.125))
	return w.Flush()
}

func printInteger(w *tabwriter.Writer, v integer.Value) {
	fmt.Fprintf(w, "%v\t%s\n", v.Encoding(), v)
	fmt.Fprintf(w, "  original code:\t%d\n", v.SignMagnitude())
	fmt.Fprintf(w, "  ones' complement:\t%d\n", v.OnesComplement())
	fmt.Fprintf(w, "  two's complement:\t%d\n", v.TwosComplement())
}

func printFloat(w *tabwriter.Writer, v ieee754.Value) {
	fmt.Fprintf(w, "%v\t%s\n", v.Layout(), v)
	fmt.Fprintf(w, "  literal value:\t%v\n", v.Float32())
	fmt.Fprintf(w, "  exponent:\t%d\n", v.Exponent())
	fmt.Fprintf(w, "  fraction:\t%v\n", v.Fraction())
	fmt.Fprintf(w, "  exact:\t%s\n", v.Decimal())
}
