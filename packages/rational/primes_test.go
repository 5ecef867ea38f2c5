package rational

import (
	"reflect"
	"testing"
)

func TestPrimeFactorizationComposite(t *testing.T) {
	c := NewPrimeCache()
	got := c.PrimeFactorization(60)
	want := []int64{2, 2, 3, 5}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("PrimeFactorization(60) = %v, want %v", got, want)
	}
}

func TestPrimeFactorizationPrime(t *testing.T) {
	c := NewPrimeCache()
	got := c.PrimeFactorization(97)
	want := []int64{97}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("PrimeFactorization(97) = %v, want %v", got, want)
	}
}

func TestPrimeFactorizationBelowTwo(t *testing.T) {
	c := NewPrimeCache()
	if got := c.PrimeFactorization(1); got != nil {
		t.Fatalf("PrimeFactorization(1) = %v, want nil", got)
	}
}

func TestPrimeFactorizationReconstructsProduct(t *testing.T) {
	c := NewPrimeCache()
	for _, v := range []int64{2, 3, 4, 12, 17, 60, 100, 101} {
		factors := c.PrimeFactorization(v)
		product := int64(1)
		for _, p := range factors {
			product *= p
		}
		if product != v {
			t.Fatalf("product of factors of %d = %d", v, product)
		}
	}
}

func TestPrimeFactorizationOutOfOrderSmallAfterLarge(t *testing.T) {
	c := NewPrimeCache()
	// Force the cache to extend well past a small prime before asking for it,
	// so the small prime is answered from the already-extended list.
	c.PrimeFactorization(9973) // a larger prime
	got := c.PrimeFactorization(13)
	want := []int64{13}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("PrimeFactorization(13) = %v, want %v", got, want)
	}
}

func TestGCD(t *testing.T) {
	c := NewPrimeCache()
	if g := c.GCD(12, 18); g != 6 {
		t.Fatalf("GCD(12,18) = %d, want 6", g)
	}
	if g := c.GCD(7, 13); g != 1 {
		t.Fatalf("GCD(7,13) = %d, want 1", g)
	}
	if g := c.GCD(0, 5); g != 5 {
		t.Fatalf("GCD(0,5) = %d, want 5", g)
	}
}

func TestGCDVariadic(t *testing.T) {
	c := NewPrimeCache()
	if g := c.GCD(24, 36, 60); g != 12 {
		t.Fatalf("GCD(24,36,60) = %d, want 12", g)
	}
}

func TestLCM(t *testing.T) {
	c := NewPrimeCache()
	if l := c.LCM(4, 6); l != 12 {
		t.Fatalf("LCM(4,6) = %d, want 12", l)
	}
}

func TestLCMVariadic(t *testing.T) {
	c := NewPrimeCache()
	if l := c.LCM(2, 3, 4); l != 12 {
		t.Fatalf("LCM(2,3,4) = %d, want 12", l)
	}
}

func TestPackageLevelHelpersShareDefaultCache(t *testing.T) {
	if g := GCD(12, 18); g != 6 {
		t.Fatalf("GCD(12,18) = %d, want 6", g)
	}
	if l := LCM(4, 6); l != 12 {
		t.Fatalf("LCM(4,6) = %d, want 12", l)
	}
	got := PrimeFactorization(60)
	want := []int64{2, 2, 3, 5}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("PrimeFactorization(60) = %v, want %v", got, want)
	}
}

func BenchmarkPrimeFactorization(b *testing.B) {
	c := NewPrimeCache()
	for i := 0; i < b.N; i++ {
		c.PrimeFactorization(104729) // 10000th prime
	}
}
