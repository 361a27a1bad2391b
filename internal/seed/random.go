package seed

import (
	"math"
	"math/rand"
	"time"
)

// Provider is the single source of randomness for one run. FK placement never
// uses it (that is the coverage formula's job); only non-key attributes do.
type Provider struct {
	rng *rand.Rand
}

func NewProvider() *Provider {
	return NewSeededProvider(time.Now().UnixNano())
}

// NewSeededProvider pins the sequence for tests.
func NewSeededProvider(seed int64) *Provider {
	return &Provider{rng: rand.New(rand.NewSource(seed))}
}

// UniformInt returns an integer in [1, n].
func (p *Provider) UniformInt(n int) int {
	if n < 1 {
		return 1
	}
	return p.rng.Intn(n) + 1
}

// UniformReal returns a value in [min, max] rounded to the given number of
// decimal places.
func (p *Provider) UniformReal(min, max float64, decimals int) float64 {
	v := min + p.rng.Float64()*(max-min)
	pow := math.Pow10(decimals)
	return math.Round(v*pow) / pow
}

// UniformCents returns a fixed-point amount in [min, max].
func (p *Provider) UniformCents(min, max Cents) Cents {
	if max <= min {
		return min
	}
	return min + Cents(p.rng.Int63n(int64(max-min)+1))
}

// PastDate returns a date between maxDaysBack days ago and today, truncated
// to day granularity.
func (p *Provider) PastDate(maxDaysBack int) time.Time {
	if maxDaysBack < 0 {
		maxDaysBack = 0
	}
	t := time.Now().AddDate(0, 0, -p.rng.Intn(maxDaysBack+1))
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
