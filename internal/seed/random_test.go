package seed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUniformIntBounds(t *testing.T) {
	rnd := NewSeededProvider(1)

	for i := 0; i < 1000; i++ {
		v := rnd.UniformInt(5)
		assert.GreaterOrEqual(t, v, 1)
		assert.LessOrEqual(t, v, 5)
	}

	assert.Equal(t, 1, rnd.UniformInt(1))
	assert.Equal(t, 1, rnd.UniformInt(0))
	assert.Equal(t, 1, rnd.UniformInt(-3))
}

func TestUniformRealBoundsAndRounding(t *testing.T) {
	rnd := NewSeededProvider(2)

	for i := 0; i < 1000; i++ {
		v := rnd.UniformReal(10.0, 20.0, 2)
		assert.GreaterOrEqual(t, v, 10.0)
		assert.LessOrEqual(t, v, 20.0)
		assert.InDelta(t, v, float64(int64(v*100+0.5))/100, 1e-9)
	}
}

func TestUniformCentsBounds(t *testing.T) {
	rnd := NewSeededProvider(3)

	for i := 0; i < 1000; i++ {
		v := rnd.UniformCents(1_00, 999_00)
		assert.GreaterOrEqual(t, v, Cents(1_00))
		assert.LessOrEqual(t, v, Cents(999_00))
	}

	assert.Equal(t, Cents(500), rnd.UniformCents(500, 500))
	assert.Equal(t, Cents(500), rnd.UniformCents(500, 100))
}

func TestPastDateTruncatesToDay(t *testing.T) {
	rnd := NewSeededProvider(4)

	for i := 0; i < 100; i++ {
		d := rnd.PastDate(365)
		assert.Equal(t, time.UTC, d.Location())
		assert.Zero(t, d.Hour())
		assert.Zero(t, d.Minute())
		assert.Zero(t, d.Second())
		assert.Zero(t, d.Nanosecond())
		assert.False(t, d.After(time.Now()))
	}

	d := rnd.PastDate(0)
	now := time.Now().UTC()
	assert.Equal(t, now.Year(), d.Year())
	assert.Equal(t, now.YearDay(), d.YearDay())
}

func TestSeededProviderIsDeterministic(t *testing.T) {
	a := NewSeededProvider(42)
	b := NewSeededProvider(42)

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.UniformInt(1000), b.UniformInt(1000))
	}
}
