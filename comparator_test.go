package exprjudge

import "testing"

func TestCompareFormulasArithmeticReduction(t *testing.T) {
	got, ok, err := CompareFormulas("1+2*3", "7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok || got != 2 {
		t.Fatalf("compareFormulas(1+2*3,7) = %d,%v, want 2,true", got, ok)
	}
}

func TestCompareFormulasBracketedReduction(t *testing.T) {
	got, ok, err := CompareFormulas("(1+2)*3", "9")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok || got != 2 {
		t.Fatalf("compareFormulas((1+2)*3,9) = %d,%v, want 2,true", got, ok)
	}
	got, ok, err = CompareFormulas("9", "(1+2)*3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok || got != -2 {
		t.Fatalf("compareFormulas(9,(1+2)*3) = %d,%v, want -2,true", got, ok)
	}
}

func TestCompareFormulasFractionSum(t *testing.T) {
	got, ok, err := CompareFormulas(`\frac{1}{2}+\frac{1}{3}`, `\frac{5}{6}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok || got != 1 {
		t.Fatalf(`compareFormulas(1/2+1/3,5/6) = %d,%v, want 1,true`, got, ok)
	}
}

func TestCompareFormulasCommutedSumIsEqual(t *testing.T) {
	got, ok, err := CompareFormulas("2+3", "3+2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok || got != 0 {
		t.Fatalf("compareFormulas(2+3,3+2) = %d,%v, want 0,true", got, ok)
	}
}

func TestCompareFormulasSymbolicAtomsAreUnrelated(t *testing.T) {
	_, ok, err := CompareFormulas("a+b", "c+d")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatalf("expected unrelated symbolic formulas to report none")
	}
}

func TestCompareFormulasDistributedProductIsEqual(t *testing.T) {
	got, ok, err := CompareFormulas("(a+b)*c", "a*c+b*c")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok || got != 0 {
		t.Fatalf("compareFormulas((a+b)*c,a*c+b*c) = %d,%v, want 0,true", got, ok)
	}
}

func TestJudgeTreeDenominatorReducedScenario(t *testing.T) {
	tree, err := GenerateTree(`\frac{2}{4}+1`)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if JudgeTreeDenominatorReduced(tree) {
		t.Fatalf("expected unreduced 2/4 to report false")
	}
	reduced := traversalReduceFrac(tree)
	if !JudgeTreeDenominatorReduced(reduced) {
		t.Fatalf("expected fully reduced tree to report true")
	}
}

func TestJudgeTreeEqualIds(t *testing.T) {
	tree, err := GenerateTree("1+2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, ok := JudgeTree(tree, tree); !ok || v != 0 {
		t.Fatalf("JudgeTree(t,t) = %d,%v, want 0,true", v, ok)
	}
}

func TestJudgeTreeContainment(t *testing.T) {
	outer, err := GenerateTree("1+2*3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	inner, err := GenerateTree("2*3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, ok := JudgeTree(outer, inner)
	if !ok || v != 1 {
		t.Fatalf("JudgeTree(outer,inner) = %d,%v, want 1,true", v, ok)
	}
}

func TestCompareTreesAntisymmetric(t *testing.T) {
	a, err := GenerateTree("1+2*3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := GenerateTree("7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fwd, ok := CompareTrees(a, b)
	if !ok {
		t.Fatalf("expected a relation between a and b")
	}
	rev, ok := CompareTrees(b, a)
	if !ok || rev != -fwd {
		t.Fatalf("CompareTrees(b,a) = %d, want %d", rev, -fwd)
	}
}
