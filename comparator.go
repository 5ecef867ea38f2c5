package exprjudge

import (
	"strings"

	"github.com/gradecheck/exprjudge/packages/exprtree"
)

// operatorCount returns the number of +, -, *, / characters in t's id, the
// measure compareTrees uses to decide how many reduction steps to search
// for before two trees collapse into each other.
func operatorCount(t *exprtree.Node) int {
	return strings.Count(t.ID(), "+") + strings.Count(t.ID(), "-") +
		strings.Count(t.ID(), "*") + strings.Count(t.ID(), "/")
}

// JudgeTree compares a and b by raw id containment: 0 if equal, 1 if a
// contains b's id as a substring, -1 if b contains a's, and ok=false if
// neither relation holds.
func JudgeTree(a, b *exprtree.Node) (int, bool) {
	if a.ID() == b.ID() {
		return 0, true
	}
	if strings.Contains(a.ID(), b.ID()) {
		return 1, true
	}
	if strings.Contains(b.ID(), a.ID()) {
		return -1, true
	}
	return 0, false
}

// JudgeTreeEvalEquals reports whether a and b evaluate to the same value.
// It compares the first immediate each side's EvalTree produces, parsed
// as a fraction-or-decimal. Either side failing to evaluate to a single
// parseable number counts as "not equal".
func JudgeTreeEvalEquals(a, b *exprtree.Node) bool {
	va, ok := EvalTree(a)
	if !ok || len(va) == 0 {
		return false
	}
	vb, ok := EvalTree(b)
	if !ok || len(vb) == 0 {
		return false
	}
	ra, ok := parseOperand(va[0].Character)
	if !ok {
		return false
	}
	rb, ok := parseOperand(vb[0].Character)
	if !ok {
		return false
	}
	return ra.Equal(rb)
}

// CompareTrees returns a signed step count relating a to b, or ok=false
// if they are unrelated by this relation. A positive result means a
// reduces to b in that many steps; negative means the reverse; zero means
// they are equal or one lies in the other's derivation set (checked before
// any evaluation, so trees over symbolic atoms can relate this way).
//
// Trees with more than four operators on either side degrade to pure
// evaluation (their operator-count difference if they evaluate equal,
// else unrelated) since derivation search over that many operators
// branches explosively.
func CompareTrees(a, b *exprtree.Node) (int, bool) {
	if a.ID() == b.ID() {
		return 0, true
	}
	ka, kb := operatorCount(a), operatorCount(b)
	if ka > 4 || kb > 4 {
		if JudgeTreeEvalEquals(a, b) {
			return ka - kb, true
		}
		return 0, false
	}
	for _, pair := range [][2]*exprtree.Node{{a, b}, {b, a}} {
		for _, n := range DeriveTree(pair[0]) {
			if n.ID() == pair[1].ID() {
				return 0, true
			}
		}
	}

	larger, smaller := a, b
	negate := false
	if ka < kb {
		larger, smaller = b, a
		negate = true
		ka, kb = kb, ka
	}
	result, ok := compareTreesWithOrder(larger, smaller, ka-kb)
	if !ok {
		return 0, false
	}
	if negate {
		return -result, true
	}
	return result, true
}

// compareTreesWithOrder assumes a has at least as many operators as b and
// attempts to find a chain of s one-step reductions from a down to b
// (reduced to a common fraction canonicalization first), trying a itself
// and then every tree in a's derivation set.
func compareTreesWithOrder(a, b *exprtree.Node, s int) (int, bool) {
	if !JudgeTreeEvalEquals(a, b) {
		return 0, false
	}
	canonicalB := traversalReduceFrac(b)
	if doCompare(a, canonicalB, s) {
		return s, true
	}
	for _, variant := range DeriveTree(a) {
		if doCompare(variant, canonicalB, s) {
			return s, true
		}
	}
	return 0, false
}

// doCompare advances a by s constringe steps, branching at every
// admissible decoration each step offers, and reports whether b's id
// appears in the resulting frontier.
func doCompare(a, b *exprtree.Node, s int) bool {
	if s <= 0 {
		return a.ID() == b.ID()
	}
	frontier := []*exprtree.Node{a}
	for step := 0; step < s; step++ {
		var next []*exprtree.Node
		for _, n := range frontier {
			if n.Kind == exprtree.Immediate {
				continue
			}
			opts, ok := constringe(n)
			if !ok {
				continue
			}
			next = append(next, opts...)
		}
		if len(next) == 0 {
			return false
		}
		frontier = next
	}
	for _, n := range frontier {
		if n.ID() == b.ID() {
			return true
		}
	}
	return false
}

// traversalReduceFrac rebuilds t with every immediate leaf's fraction
// literal reduced to its canonical form, leaving symbolic atoms alone and
// reusing subtrees that did not change.
func traversalReduceFrac(t *exprtree.Node) *exprtree.Node {
	if t.Kind == exprtree.Immediate {
		v, ok := parseOperand(t.Character)
		if !ok {
			return t
		}
		reduced := v.StringifyFrac()
		if reduced == t.Character {
			return t
		}
		return exprtree.Leaf(reduced)
	}
	left := traversalReduceFrac(t.Left())
	right := traversalReduceFrac(t.Right())
	if left == t.Left() && right == t.Right() {
		return t
	}
	return t.WithChild(0, left).WithChild(1, right)
}

// JudgeTreeDenominatorReduced reports whether reducing every leaf fraction
// in t leaves its id unchanged.
func JudgeTreeDenominatorReduced(t *exprtree.Node) bool {
	return traversalReduceFrac(t).ID() == t.ID()
}

// IsRelativeBySimilarity reports whether target and template are the same
// expression modulo the available rewrites, under the same evaluated
// value.
func IsRelativeBySimilarity(target, template *exprtree.Node) bool {
	return JudgeSimilarity(target, template).Similarity == 1.0
}

// IsRelativeByCompareTrees reports whether CompareTrees finds any
// relation between a and b at all.
func IsRelativeByCompareTrees(a, b *exprtree.Node) bool {
	_, ok := CompareTrees(a, b)
	return ok
}

// IsRelativeByEval reports whether a and b evaluate to the same value.
func IsRelativeByEval(a, b *exprtree.Node) bool {
	return JudgeTreeEvalEquals(a, b)
}
