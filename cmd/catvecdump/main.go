/*
Command catvecdump is a diagnostic tool for catvec: it reads one element per
line from stdin, builds a CatVec[string], and prints its element count and
invariant-check result. With -dot it instead writes the underlying
tree's structure in Graphviz DOT format to stdout. With -dense it prints the
reconstructed dense array, wrapped to the terminal width.

This tool has no effect on program behavior; it exists purely to inspect a
tree's shape while developing against the catvec package.
*/
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/mel-project/catvec"
)

func main() {
	order := flag.Int("order", catvec.DefaultOrder, "tree fanout (Order)")
	dotOutput := flag.Bool("dot", false, "write Graphviz DOT output instead of a summary")
	dense := flag.Bool("dense", false, "print the reconstructed dense array")
	flag.Parse()

	v, err := readCatVec(*order, os.Stdin)
	if err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("catvecdump: %v", err))
		os.Exit(1)
	}

	if *dotOutput {
		v.Dot(os.Stdout)
		return
	}

	if *dense {
		printDense(v)
		return
	}

	printSummary(v)
}

func readCatVec(order int, r *os.File) (*catvec.CatVec[string], error) {
	v, err := catvec.New[string](catvec.Config{Order: order})
	if err != nil {
		return nil, err
	}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		v, err = v.PushBack(scanner.Text())
		if err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return v, nil
}

func printSummary(v *catvec.CatVec[string]) {
	fmt.Printf("elements: %d\n", v.Len())
	if err := v.CheckInvariants(); err != nil {
		fmt.Println(color.RedString("invariants: FAIL: %v", err))
		os.Exit(1)
	}
	fmt.Println(color.GreenString("invariants: OK"))
}

func printDense(v *catvec.CatVec[string]) {
	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}
	line := ""
	for _, item := range v.ToSlice() {
		token := item + " "
		if len(line)+len(token) > width {
			fmt.Println(line)
			line = ""
		}
		line += token
	}
	if line != "" {
		fmt.Println(line)
	}
}
