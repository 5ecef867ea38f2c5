package rational

import (
	"math"
	"sync"
)

// PrimeCache is a process-local, monotonically growing list of primes used
// to factor integers without repeating trial division from scratch. It is
// safe for concurrent use: every read or extension of the prime list
// happens under a single mutex (PrimeFactorization holds it for its whole
// duration; GCD and LCM hold it around each factorization they perform),
// matching the concurrency guidance for re-implementations of a cache that
// the reference design left unsynchronized.
type PrimeCache struct {
	mu     sync.Mutex
	primes []int64
}

// NewPrimeCache returns a cache seeded with the first two primes.
func NewPrimeCache() *PrimeCache {
	return &PrimeCache{primes: []int64{2, 3}}
}

// defaultPrimes backs the package-level PrimeFactorization/GCD/LCM
// convenience functions used throughout the rational and derivation
// packages, so the prime list is shared and grows once per process.
var defaultPrimes = NewPrimeCache()

// PrimeFactorization returns the prime factorization of v (with
// multiplicity, ascending), or nil for v < 2 (spec treats non-integers as
// out of scope for this operation; callers only ever pass integers here).
func PrimeFactorization(v int64) []int64 {
	return defaultPrimes.PrimeFactorization(v)
}

// GCD returns the greatest common divisor of the given non-negative
// integers, reduced pairwise left to right. GCD() (no arguments) returns 0.
func GCD(nums ...int64) int64 {
	return defaultPrimes.GCD(nums...)
}

// LCM returns the least common multiple of the given positive integers,
// reduced pairwise left to right. LCM() (no arguments) returns 1.
func LCM(nums ...int64) int64 {
	return defaultPrimes.LCM(nums...)
}

// PrimeFactorization returns the prime factorization of v (with
// multiplicity, ascending order), extending the cache's persistent prime
// list on demand.
func (c *PrimeCache) PrimeFactorization(v int64) []int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.factorLocked(v)
}

func (c *PrimeCache) factorLocked(v int64) []int64 {
	if v < 2 {
		return nil
	}
	limit := isqrt(v)
	c.extendToLocked(limit)
	for _, p := range c.primes {
		if p > limit {
			break
		}
		if v%p == 0 {
			return append([]int64{p}, c.factorLocked(v/p)...)
		}
	}
	// No factor at or below floor(sqrt(v)) was found: v is prime itself.
	// It is not appended here: the list only grows through extendToLocked,
	// which checks every candidate in order, so no prime is skipped.
	return []int64{v}
}

// extendToLocked grows the persistent prime list, one candidate at a time,
// until its largest member is at least limit. Each candidate is verified
// prime by recursively factoring it — the same routine used for ordinary
// factorization — before being cached, which is what keeps the list gap-free.
func (c *PrimeCache) extendToLocked(limit int64) {
	for c.primes[len(c.primes)-1] < limit {
		cand := c.primes[len(c.primes)-1] + 1
		for {
			f := c.factorLocked(cand)
			if len(f) == 1 && f[0] == cand {
				break
			}
			cand++
		}
		c.primes = append(c.primes, cand)
	}
}

// GCD returns the greatest common divisor of nums, reduced pairwise. Per
// the reference design, the divisor is assembled from a's prime
// factorization: each prime factor of a (with multiplicity) that still
// divides the running residual of b is folded into the result and divided
// out of the residual.
func (c *PrimeCache) GCD(nums ...int64) int64 {
	if len(nums) == 0 {
		return 0
	}
	g := abs64(nums[0])
	for _, n := range nums[1:] {
		g = c.gcdPair(g, abs64(n))
	}
	return g
}

func (c *PrimeCache) gcdPair(a, b int64) int64 {
	if a == 0 {
		return b
	}
	if b == 0 {
		return a
	}
	c.mu.Lock()
	factors := c.factorLocked(a)
	c.mu.Unlock()
	g := int64(1)
	residual := b
	for _, p := range factors {
		if residual%p == 0 {
			g *= p
			residual /= p
		}
	}
	return g
}

// LCM returns the least common multiple of nums, reduced pairwise,
// dividing before multiplying to keep intermediate values smaller.
func (c *PrimeCache) LCM(nums ...int64) int64 {
	if len(nums) == 0 {
		return 1
	}
	l := abs64(nums[0])
	for _, n := range nums[1:] {
		n = abs64(n)
		if l == 0 || n == 0 {
			l = 0
			continue
		}
		l = (l / c.gcdPair(l, n)) * n
	}
	return l
}

func isqrt(v int64) int64 {
	if v < 0 {
		return 0
	}
	r := int64(math.Sqrt(float64(v)))
	for r > 0 && r*r > v {
		r--
	}
	for (r+1)*(r+1) <= v {
		r++
	}
	return r
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
