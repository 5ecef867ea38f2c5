package exprjudge

import (
	"strconv"

	"github.com/gradecheck/exprjudge/packages/exprtree"
	"github.com/gradecheck/exprjudge/packages/rational"
)

var evalCache = newSyncMap[[]*exprtree.Node]()

// EvalTree evaluates t to a list of immediate values (memoized on id). A
// leaf evaluates to itself. An operator tree is collapsed one node at a
// time via constringe until a single immediate remains; the ok result is
// false if any operand along the way is a symbolic atom that cannot be
// parsed as a fraction or decimal (division by zero counts the same way),
// mirroring the "no value" outcome a caller should treat as "cannot
// determine" rather than a hard failure.
func EvalTree(t *exprtree.Node) ([]*exprtree.Node, bool) {
	if v, ok := evalCache.get(t.ID()); ok {
		return v, true
	}
	result, ok := evalTreeUncached(t)
	if !ok {
		return nil, false
	}
	evalCache.set(t.ID(), result)
	return result, true
}

func evalTreeUncached(t *exprtree.Node) ([]*exprtree.Node, bool) {
	if t.Kind == exprtree.Immediate {
		return []*exprtree.Node{t}, true
	}
	cur := t
	var list []*exprtree.Node
	for {
		opts, ok := constringe(cur)
		if !ok {
			return nil, false
		}
		list = opts
		if opts[0].Kind == exprtree.Immediate {
			break
		}
		cur = opts[0]
	}
	var out []*exprtree.Node
	for _, n := range list {
		if n.Kind == exprtree.Immediate {
			out = append(out, n)
		}
	}
	return out, true
}

// constringe rewrites the deepest operator node of t whose both children
// are immediate into a new immediate (or small operator subtree) carrying
// evalNode's result, returning one candidate parent tree per admissible
// decoration of that new value. Ties between equally deep candidates in
// different branches favor the left branch.
func constringe(t *exprtree.Node) ([]*exprtree.Node, bool) {
	left, right := t.Left(), t.Right()

	var height func(n *exprtree.Node) int
	height = func(n *exprtree.Node) int {
		if n.Kind != exprtree.Operator {
			return 0
		}
		return 1 + max(height(n.Left()), height(n.Right()))
	}
	if left.Kind == exprtree.Operator && (right.Kind != exprtree.Operator || height(left) >= height(right)) {
		opts, ok := constringe(left)
		if !ok {
			return nil, false
		}
		out := make([]*exprtree.Node, len(opts))
		for i, o := range opts {
			out[i] = t.WithChild(0, o)
		}
		return out, true
	}
	if right.Kind == exprtree.Operator {
		opts, ok := constringe(right)
		if !ok {
			return nil, false
		}
		out := make([]*exprtree.Node, len(opts))
		for i, o := range opts {
			out[i] = t.WithChild(1, o)
		}
		return out, true
	}

	val, ok := evalNode(left.Character, right.Character, t.Character)
	if !ok {
		return nil, false
	}
	return deriveFracFloat(val.StringifyFrac(), val), true
}

// evalNode parses each operand as a fraction-or-decimal literal and
// performs mixed arithmetic per op. It reports false ("no value") if
// either operand is a symbolic atom, or if op is / and the divisor is
// zero.
func evalNode(aText, bText, op string) (rational.Rational, bool) {
	a, ok := parseOperand(aText)
	if !ok {
		return rational.Rational{}, false
	}
	b, ok := parseOperand(bText)
	if !ok {
		return rational.Rational{}, false
	}
	switch op {
	case "+":
		return a.Add(b), true
	case "-":
		return a.Sub(b), true
	case "*":
		return a.Mul(b), true
	case "/":
		return a.Div(b)
	default:
		return rational.Rational{}, false
	}
}

func parseOperand(text string) (rational.Rational, bool) {
	if v, ok := rational.ParseFrac(text); ok {
		return v, true
	}
	return rational.ParseFloat(text)
}

// deriveFracFloat returns every canonically-equivalent rewriting of an
// immediate value: the string it was already carrying, its reduced mixed
// form, its improper form, an explicit "integer + fraction" operator tree
// when both the integer and fractional parts are non-zero, and a
// terminating decimal form when
// the denominator's only prime factors are 2 and 5 within 10 digits.
// Duplicate ids are folded together.
func deriveFracFloat(original string, val rational.Rational) []*exprtree.Node {
	seen := make(map[string]bool)
	var out []*exprtree.Node
	addLeaf := func(text string) {
		if !seen[text] {
			seen[text] = true
			out = append(out, exprtree.Leaf(text))
		}
	}
	addTree := func(n *exprtree.Node) {
		if !seen[n.ID()] {
			seen[n.ID()] = true
			out = append(out, n)
		}
	}

	addLeaf(original)
	addLeaf(val.StringifyFrac())
	addLeaf(val.ToImproper().StringifyFrac())

	if val.Int != 0 && val.Num != 0 {
		fracOnly := rational.Rational{Num: val.Num, Den: val.Den}
		addTree(exprtree.Op("+", exprtree.Leaf(strconv.FormatInt(val.Int, 10)), exprtree.Leaf(fracOnly.StringifyFrac())))
	}

	if dec, ok := decimalForm(val); ok {
		addLeaf(dec)
	}
	return out
}

// decimalForm renders val as a terminating decimal literal if its
// denominator (after reduction to an improper fraction) has no prime
// factors other than 2 and 5 and needs at most 10 digits after the point.
func decimalForm(val rational.Rational) (string, bool) {
	imp := val.ToImproper()
	if imp.Num == 0 {
		return strconv.FormatInt(val.Int, 10), true
	}
	den := imp.Den
	twos, fives := 0, 0
	for den%2 == 0 {
		den /= 2
		twos++
	}
	for den%5 == 0 {
		den /= 5
		fives++
	}
	if den != 1 {
		return "", false
	}
	digits := twos
	if fives > digits {
		digits = fives
	}
	if digits > 10 {
		return "", false
	}
	scale := int64(1)
	for i := 0; i < digits; i++ {
		scale *= 10
	}
	numerator := imp.Num * scale
	if numerator%imp.Den != 0 {
		return "", false
	}
	whole := numerator / imp.Den
	sign := ""
	if whole < 0 {
		sign = "-"
		whole = -whole
	}
	s := strconv.FormatInt(whole, 10)
	for len(s) <= digits {
		s = "0" + s
	}
	if digits == 0 {
		return sign + s, true
	}
	cut := len(s) - digits
	return sign + s[:cut] + "." + s[cut:], true
}
