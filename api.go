package exprjudge

import (
	"github.com/gradecheck/exprjudge/packages/exprtree"
	"github.com/gradecheck/exprjudge/packages/parse"
)

// GenerateTree parses formula text into an expression tree.
func GenerateTree(formula string) (*exprtree.Node, error) {
	return parse.Parse(formula)
}

// GenerateTrees parses formula text and returns its full derivation set:
// the parsed tree plus every tree reachable from it by the rewrite rules.
func GenerateTrees(formula string) ([]*exprtree.Node, error) {
	t, err := parse.Parse(formula)
	if err != nil {
		return nil, err
	}
	return DeriveTree(t), nil
}

// CompareFormulas parses both formulas and compares the resulting trees.
func CompareFormulas(a, b string) (int, bool, error) {
	ta, err := parse.Parse(a)
	if err != nil {
		return 0, false, err
	}
	tb, err := parse.Parse(b)
	if err != nil {
		return 0, false, err
	}
	result, ok := CompareTrees(ta, tb)
	return result, ok, nil
}
