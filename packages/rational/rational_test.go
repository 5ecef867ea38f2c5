package rational

import "testing"

func TestParseFracMixed(t *testing.T) {
	r, ok := ParseFrac(`2\frac{1}{3}`)
	if !ok {
		t.Fatalf("expected parse to succeed")
	}
	if r != (Rational{Int: 2, Num: 1, Den: 3}) {
		t.Fatalf("unexpected result: %+v", r)
	}
}

func TestParseFracNoIntegerPart(t *testing.T) {
	r, ok := ParseFrac(`\frac{5}{6}`)
	if !ok {
		t.Fatalf("expected parse to succeed")
	}
	if r != (Rational{Int: 0, Num: 5, Den: 6}) {
		t.Fatalf("unexpected result: %+v", r)
	}
}

func TestParseFracReducesImproperInput(t *testing.T) {
	r, ok := ParseFrac(`\frac{6}{4}`)
	if !ok {
		t.Fatalf("expected parse to succeed")
	}
	if r != (Rational{Int: 1, Num: 1, Den: 2}) {
		t.Fatalf("unexpected reduction: %+v", r)
	}
}

func TestParseFracRejectsMalformed(t *testing.T) {
	for _, s := range []string{"", "1/2", `\frac{1}{}`, `2\frac{1}{2}extra`} {
		if _, ok := ParseFrac(s); ok {
			t.Fatalf("expected %q to fail parsing", s)
		}
	}
}

func TestParseFloat(t *testing.T) {
	r, ok := ParseFloat("2.50")
	if !ok {
		t.Fatalf("expected parse to succeed")
	}
	if r != (Rational{Int: 2, Num: 1, Den: 2}) {
		t.Fatalf("unexpected result: %+v", r)
	}
}

func TestParseFloatPlainInteger(t *testing.T) {
	r, ok := ParseFloat("7")
	if !ok {
		t.Fatalf("expected parse to succeed")
	}
	if r != FromInt(7) {
		t.Fatalf("unexpected result: %+v", r)
	}
}

func TestParseFloatRejectsMalformed(t *testing.T) {
	for _, s := range []string{"", ".5", "5.", "a.b"} {
		if _, ok := ParseFloat(s); ok {
			t.Fatalf("expected %q to fail parsing", s)
		}
	}
}

func TestStringifyFrac(t *testing.T) {
	cases := []struct {
		in   Rational
		want string
	}{
		{FromInt(7), "7"},
		{Rational{Int: 0, Num: 1, Den: 3}, `\frac{1}{3}`},
		{Rational{Int: 2, Num: 1, Den: 3}, `2\frac{1}{3}`},
	}
	for _, c := range cases {
		if got := c.in.StringifyFrac(); got != c.want {
			t.Fatalf("StringifyFrac(%+v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestReduceFracMigratesOverflow(t *testing.T) {
	r := Rational{Int: 0, Num: 7, Den: 3}.Reduce()
	if r != (Rational{Int: 2, Num: 1, Den: 3}) {
		t.Fatalf("unexpected result: %+v", r)
	}
}

func TestReduceFracZeroNumerator(t *testing.T) {
	r := Rational{Int: 4, Num: 0, Den: 5}.Reduce()
	if r != (Rational{Int: 4, Num: 0, Den: 1}) {
		t.Fatalf("unexpected result: %+v", r)
	}
}

func TestReduceFracNegativeNumerator(t *testing.T) {
	r := Rational{Int: 0, Num: -1, Den: 3}.Reduce()
	if r != (Rational{Int: -1, Num: 2, Den: 3}) {
		t.Fatalf("unexpected result: %+v", r)
	}
}

func TestToImproper(t *testing.T) {
	r := Rational{Int: 2, Num: 1, Den: 3}.ToImproper()
	if r != (Rational{Int: 0, Num: 7, Den: 3}) {
		t.Fatalf("unexpected result: %+v", r)
	}
}

func TestCommonDenominator(t *testing.T) {
	a := Rational{Int: 0, Num: 1, Den: 2}
	b := Rational{Int: 0, Num: 1, Den: 3}
	out := CommonDenominator(a, b)
	if out[0].Den != 6 || out[1].Den != 6 {
		t.Fatalf("expected shared denominator 6, got %+v", out)
	}
	if out[0].Num != 3 || out[1].Num != 2 {
		t.Fatalf("unexpected scaled numerators: %+v", out)
	}
}

func TestAdd(t *testing.T) {
	a, _ := ParseFrac(`\frac{1}{2}`)
	b, _ := ParseFrac(`\frac{1}{3}`)
	got := a.Add(b)
	want := Rational{Int: 0, Num: 5, Den: 6}
	if got != want {
		t.Fatalf("1/2 + 1/3 = %+v, want %+v", got, want)
	}
}

func TestSub(t *testing.T) {
	a := FromInt(1)
	b, _ := ParseFrac(`\frac{1}{3}`)
	got := a.Sub(b)
	want := Rational{Int: 0, Num: 2, Den: 3}
	if got != want {
		t.Fatalf("1 - 1/3 = %+v, want %+v", got, want)
	}
}

func TestMul(t *testing.T) {
	a, _ := ParseFrac(`\frac{2}{3}`)
	b, _ := ParseFrac(`\frac{3}{4}`)
	got := a.Mul(b)
	want := Rational{Int: 0, Num: 1, Den: 2}
	if got != want {
		t.Fatalf("2/3 * 3/4 = %+v, want %+v", got, want)
	}
}

func TestDiv(t *testing.T) {
	a, _ := ParseFrac(`\frac{1}{2}`)
	b, _ := ParseFrac(`\frac{1}{4}`)
	got, ok := a.Div(b)
	if !ok {
		t.Fatalf("expected division to succeed")
	}
	if got != FromInt(2) {
		t.Fatalf("1/2 / 1/4 = %+v, want 2", got)
	}
}

func TestDivByZeroFails(t *testing.T) {
	a := FromInt(1)
	if _, ok := a.Div(Zero); ok {
		t.Fatalf("expected division by zero to fail")
	}
}

func TestEqualAcrossRepresentations(t *testing.T) {
	a := Rational{Int: 0, Num: 6, Den: 4}
	b := Rational{Int: 1, Num: 1, Den: 2}
	if !a.Equal(b) {
		t.Fatalf("expected %+v to equal %+v after reduction", a, b)
	}
}

func TestFloat64(t *testing.T) {
	r := Rational{Int: 1, Num: 1, Den: 4}
	if got := r.Float64(); got != 1.25 {
		t.Fatalf("Float64() = %v, want 1.25", got)
	}
}
