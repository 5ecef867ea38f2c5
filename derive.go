package exprjudge

import "github.com/gradecheck/exprjudge/packages/exprtree"

var deriveCache = newSyncMap[[]*exprtree.Node]()

// DeriveTree returns every tree reachable from t by the rewrite rules
// below, t itself always included. The result is memoized under the id
// of every tree it contains, so different entry points into the same
// equivalence class reach the same slice.
//
// The pipeline runs a fixed sequence of fixpoint stages, each replacing
// the running result with the de-duplicated union of applying one rule to
// every tree already in it:
//
//	commutation, child recursion, distribution, distribution again,
//	child recursion, association, doubling, child recursion,
//	commutation, child recursion.
//
// Distribution runs twice because the first pass's new shapes can expose
// further distributions; child recursion repeats for the same reason,
// and because it is what feeds sibling rewrites (commutation on a child,
// doubling on a child) back up into the parent without those rules
// needing to recurse themselves.
func DeriveTree(t *exprtree.Node) []*exprtree.Node {
	if v, ok := deriveCache.get(t.ID()); ok {
		return v
	}
	if t.Kind == exprtree.Immediate {
		result := append([]*exprtree.Node{t}, deriveFractionForm(t)...)
		for _, n := range result {
			deriveCache.set(n.ID(), result)
		}
		return result
	}

	result := []*exprtree.Node{t}
	deriveCache.set(t.ID(), result)

	apply := func(stage func(*exprtree.Node) []*exprtree.Node) {
		seen := make(map[string]bool, len(result))
		next := make([]*exprtree.Node, 0, len(result))
		for _, n := range result {
			seen[n.ID()] = true
			next = append(next, n)
		}
		for _, n := range result {
			for _, cand := range stage(n) {
				if !seen[cand.ID()] {
					seen[cand.ID()] = true
					next = append(next, cand)
				}
			}
		}
		result = next
	}

	apply(deriveCommutation)
	apply(childRecursion)
	apply(deriveDistribution)
	apply(deriveDistribution)
	apply(childRecursion)
	apply(deriveAssociation)
	apply(deriveDoubleSubTree)
	apply(childRecursion)
	apply(deriveCommutation)
	apply(childRecursion)

	for _, n := range result {
		deriveCache.set(n.ID(), result)
	}
	return result
}

// childRecursion re-derives each child independently and re-inserts every
// equivalent it finds back into the parent, so an equivalence discovered
// deep in a subtree propagates up to a whole-tree equivalence.
func childRecursion(n *exprtree.Node) []*exprtree.Node {
	if n.Kind != exprtree.Operator {
		return nil
	}
	var out []*exprtree.Node
	for i, child := range n.Children {
		for _, variant := range DeriveTree(child) {
			if variant.ID() != child.ID() {
				out = append(out, n.WithChild(i, variant))
			}
		}
	}
	return out
}

// deriveCommutation swaps the operands of a + or * node.
func deriveCommutation(n *exprtree.Node) []*exprtree.Node {
	if n.Kind != exprtree.Operator {
		return nil
	}
	if n.Character != "+" && n.Character != "*" {
		return nil
	}
	return []*exprtree.Node{exprtree.Op(n.Character, n.Right(), n.Left())}
}

// deriveAssociation re-roots n around a child that shares its priority:
// (p op1 q) op2 w  ->  p op1 (q op2 w)   when the child is at index 0
// w op2 (p op1 q)  ->  (w op2 p) op1 q   when the child is at index 1
// with a sign flip when a negative-form operator (- or /) ends up as an
// inner operand's sign needs preserving under the rotation.
func deriveAssociation(n *exprtree.Node) []*exprtree.Node {
	if n.Kind != exprtree.Operator {
		return nil
	}
	var out []*exprtree.Node
	for i := 0; i < 2; i++ {
		c := n.Children[i]
		if c.Kind != exprtree.Operator {
			continue
		}
		if exprtree.Priority(c.Character) != exprtree.Priority(n.Character) {
			continue
		}
		if i == 0 {
			inner := exprtree.Op(n.Character, c.Right(), n.Right())
			if exprtree.IsNegativeForm(c.Character) {
				inner = inner.WithCharacter(exprtree.Toggle(inner.Character))
			}
			out = append(out, exprtree.Op(c.Character, c.Left(), inner))
		} else {
			inner := exprtree.Op(n.Character, n.Left(), c.Left())
			rootChar := c.Character
			if exprtree.IsNegativeForm(n.Character) {
				rootChar = exprtree.Toggle(rootChar)
			}
			out = append(out, exprtree.Op(rootChar, inner, c.Right()))
		}
	}
	return out
}

// deriveDoubleSubTree rewrites a + a into a * 2.
func deriveDoubleSubTree(n *exprtree.Node) []*exprtree.Node {
	if n.Kind != exprtree.Operator || n.Character != "+" {
		return nil
	}
	if n.Left().ID() != n.Right().ID() {
		return nil
	}
	return []*exprtree.Node{exprtree.Op("*", n.Left(), exprtree.Leaf("2"))}
}

// deriveDistribution dispatches to the forward or reverse distribution
// rule depending on n's operator.
func deriveDistribution(n *exprtree.Node) []*exprtree.Node {
	if n.Kind != exprtree.Operator {
		return nil
	}
	switch n.Character {
	case "*", "/":
		return deriveDistributionForward(n)
	case "+", "-":
		return deriveDistributionReverse(n)
	default:
		return nil
	}
}

// deriveDistributionForward rewrites (u op1 v) op2 w into
// (u op2 w) op1 (v op2 w), for op1 in {+,-} and op2 in {*,/}. The
// right-child case is skipped for op2 = / (a / (b+c) does not distribute).
func deriveDistributionForward(n *exprtree.Node) []*exprtree.Node {
	var out []*exprtree.Node
	for i := 0; i < 2; i++ {
		child := n.Children[i]
		if child.Kind != exprtree.Operator {
			continue
		}
		if child.Character != "+" && child.Character != "-" {
			continue
		}
		if n.Character == "/" && i == 1 {
			continue
		}
		other := n.Children[1-i]
		u, v := child.Left(), child.Right()
		var left, right *exprtree.Node
		if i == 0 {
			left = exprtree.Op(n.Character, u, other)
			right = exprtree.Op(n.Character, v, other)
		} else {
			left = exprtree.Op(n.Character, other, u)
			right = exprtree.Op(n.Character, other, v)
		}
		out = append(out, exprtree.Op(child.Character, left, right))
	}
	return out
}

// deriveDistributionReverse looks for (a op b) +/- (a op c), the shared
// operand a sitting at the same child index on both sides, and rewrites
// to a op (b +/- c). Legal when op is *, at either index, or op is /
// with the shared operand as the numerator (index 0). It also tries
// synthesizing a bare common factor on either side as "factor * 1" one
// level deep, so a +/- (a op x) is recognized too; deeper nested common
// factors are not detected.
func deriveDistributionReverse(n *exprtree.Node) []*exprtree.Node {
	left, right := n.Left(), n.Right()
	out := distributeReversePair(n.Character, left, right)
	if synth, ok := synthesizeTimesOne(left, right); ok {
		out = append(out, distributeReversePair(n.Character, synth, right)...)
	}
	if synth, ok := synthesizeTimesOne(right, left); ok {
		out = append(out, distributeReversePair(n.Character, left, synth)...)
	}
	return out
}

func distributeReversePair(parentOp string, left, right *exprtree.Node) []*exprtree.Node {
	if left.Kind != exprtree.Operator || right.Kind != exprtree.Operator {
		return nil
	}
	if left.Character != right.Character {
		return nil
	}
	op := left.Character
	if op != "*" && op != "/" {
		return nil
	}
	var out []*exprtree.Node
	for idx := 0; idx < 2; idx++ {
		if op == "/" && idx != 0 {
			continue
		}
		if left.Children[idx].ID() != right.Children[idx].ID() {
			continue
		}
		shared := left.Children[idx]
		inner := exprtree.Op(parentOp, left.Children[1-idx], right.Children[1-idx])
		if idx == 0 {
			out = append(out, exprtree.Op(op, shared, inner))
		} else {
			out = append(out, exprtree.Op(op, inner, shared))
		}
	}
	return out
}

// synthesizeTimesOne turns a bare immediate into "bare * 1" or "bare / 1",
// aligned to whichever child index of other's operator holds a matching
// operand, so distributeReversePair can find the common factor.
func synthesizeTimesOne(bare, other *exprtree.Node) (*exprtree.Node, bool) {
	if bare.Kind != exprtree.Immediate || other.Kind != exprtree.Operator {
		return nil, false
	}
	op := other.Character
	if op != "*" && op != "/" {
		return nil, false
	}
	for idx := 0; idx < 2; idx++ {
		if op == "/" && idx != 0 {
			continue
		}
		if other.Children[idx].ID() != bare.ID() {
			continue
		}
		one := exprtree.Leaf("1")
		if idx == 0 {
			return exprtree.Op(op, bare, one), true
		}
		return exprtree.Op(op, one, bare), true
	}
	return nil, false
}

// deriveFractionForm returns deriveFracFloat's canonical rewritings of an
// immediate leaf, excluding the leaf's own current form.
func deriveFractionForm(n *exprtree.Node) []*exprtree.Node {
	if n.Kind != exprtree.Immediate {
		return nil
	}
	val, ok := parseOperand(n.Character)
	if !ok {
		return nil
	}
	var out []*exprtree.Node
	for _, v := range deriveFracFloat(n.Character, val) {
		if v.ID() != n.ID() {
			out = append(out, v)
		}
	}
	return out
}
