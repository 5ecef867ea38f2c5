// Command judge compares two arithmetic formulas and reports whether one
// is derivable from the other.
package main

import (
	"flag"
	"fmt"
	"os"

	ej "github.com/gradecheck/exprjudge"
)

func main() {
	left := flag.String("a", "", "first formula")
	right := flag.String("b", "", "second formula")
	similarity := flag.Bool("similarity", false, "also report a similarity score in [0,1]")
	flag.Parse()

	if *left == "" || *right == "" {
		fmt.Fprintln(os.Stderr, "usage: judge -a <formula> -b <formula> [-similarity]")
		os.Exit(2)
	}

	result, ok, err := ej.CompareFormulas(*left, *right)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("a: %s\n", *left)
	fmt.Printf("b: %s\n", *right)
	if !ok {
		fmt.Println("relation: unrelated")
	} else {
		fmt.Printf("relation: %s\n", describeRelation(result))
	}

	if *similarity {
		ta, err := ej.GenerateTree(*left)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		tb, err := ej.GenerateTree(*right)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		sim := ej.JudgeSimilarity(ta, tb)
		fmt.Printf("similarity: %.4f\n", sim.Similarity)
	}
}

func describeRelation(steps int) string {
	switch {
	case steps == 0:
		return "equivalent (0 steps)"
	case steps > 0:
		return fmt.Sprintf("a reduces to b in %d step(s)", steps)
	default:
		return fmt.Sprintf("b reduces to a in %d step(s)", -steps)
	}
}
