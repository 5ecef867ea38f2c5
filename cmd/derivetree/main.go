// Command derivetree prints the rewrite closure, evaluation, or similarity
// analysis of one or two arithmetic formulas.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	ej "github.com/gradecheck/exprjudge"
)

func main() {
	mode := flag.String("mode", "derive", "mode: derive|eval|similarity")
	formula := flag.String("formula", "", "formula to analyze (derive, eval modes)")
	target := flag.String("target", "", "target formula (similarity mode)")
	template := flag.String("template", "", "template formula (similarity mode)")
	limit := flag.Int("limit", 20, "max number of derived trees to print")
	flag.Parse()

	switch *mode {
	case "derive":
		runDerive(*formula, *limit)
	case "eval":
		runEval(*formula)
	case "similarity":
		runSimilarity(*target, *template)
	default:
		fmt.Fprintf(os.Stderr, "unknown mode: %s\n", *mode)
		os.Exit(1)
	}
}

func runDerive(formula string, limit int) {
	if formula == "" {
		fmt.Fprintln(os.Stderr, "usage: derivetree -mode derive -formula <formula>")
		os.Exit(2)
	}
	trees, err := ej.GenerateTrees(formula)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("formula: %s\n", formula)
	fmt.Printf("derivation set size: %d\n", len(trees))
	ids := make([]string, 0, len(trees))
	for _, t := range trees {
		ids = append(ids, t.ID())
	}
	sort.Strings(ids)
	if limit > len(ids) {
		limit = len(ids)
	}
	for _, id := range ids[:limit] {
		fmt.Printf("  %s\n", id)
	}
	if limit < len(ids) {
		fmt.Printf("  ... and %d more\n", len(ids)-limit)
	}
}

func runEval(formula string) {
	if formula == "" {
		fmt.Fprintln(os.Stderr, "usage: derivetree -mode eval -formula <formula>")
		os.Exit(2)
	}
	tree, err := ej.GenerateTree(formula)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	values, ok := ej.EvalTree(tree)
	fmt.Printf("formula: %s\n", formula)
	if !ok {
		fmt.Println("value: unevaluable (symbolic atom or division by zero)")
		return
	}
	fmt.Print("value forms:")
	for _, v := range values {
		fmt.Printf(" %s", v.Character)
	}
	fmt.Println()
}

func runSimilarity(target, template string) {
	if target == "" || template == "" {
		fmt.Fprintln(os.Stderr, "usage: derivetree -mode similarity -target <formula> -template <formula>")
		os.Exit(2)
	}
	tt, err := ej.GenerateTree(target)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	tp, err := ej.GenerateTree(template)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	result := ej.JudgeSimilarity(tt, tp)
	fmt.Printf("target:   %s\n", target)
	fmt.Printf("template: %s\n", template)
	fmt.Printf("similarity: %.4f\n", result.Similarity)
	if result.DeriveTarget != nil {
		fmt.Printf("best matching target rewrite: %s\n", result.DeriveTarget.ID())
	}
}
