package main

import (
	"fmt"
	"os"

	"golang.org/x/text/language"

	"github.com/exactnum/mixedrat"
	"github.com/exactnum/mixedrat/format"
	"github.com/exactnum/mixedrat/store"
	"github.com/exactnum/mixedrat/wire"
)

// This is just a demo to exercise the library end to end: it takes two
// wire-encoded rationals ("whole:num:den") and prints their arithmetic,
// decimal renderings and a locale-formatted display.
func main() {
	if len(os.Args) != 3 {
		fmt.Fprintf(os.Stderr, "usage: %s <whole:num:den> <whole:num:den>\n", os.Args[0])
		os.Exit(2)
	}

	a, err := wire.Decode(os.Args[1])
	if err != nil {
		panic(err)
	}
	b, err := wire.Decode(os.Args[2])
	if err != nil {
		panic(err)
	}

	sum, err := a.Add(b)
	if err != nil {
		panic(err)
	}
	product, err := a.Mul(b)
	if err != nil {
		panic(err)
	}

	fmt.Printf("a       = %s\n", a)
	fmt.Printf("b       = %s\n", b)
	fmt.Printf("a + b   = %s\n", sum)
	fmt.Printf("a * b   = %s\n", product)

	dec, err := sum.DecimalString(4, 1, mixedrat.HalfUp)
	if err != nil {
		panic(err)
	}
	fmt.Printf("a + b   = %s (half-up, 4 decimals)\n", dec)
	fmt.Printf("a + b   = %s (en locale, lossy)\n",
		format.New(language.English).Decimal(sum, 4, 1))

	s := store.NewMem()
	defer s.Close()
	if err := s.Put("sum", sum); err != nil {
		panic(err)
	}
	back, err := s.Get("sum")
	if err != nil {
		panic(err)
	}
	fmt.Printf("stored  = %s (round-tripped through %q)\n", back, wire.Encode(back))
}
