package function

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ucalc/number"
)

func TestFromName(t *testing.T) {
	tests := []struct {
		name string
		want Builtin
	}{
		{"sin", Sin}, {"sqrt", Sqrt}, {"sum", Sum},
		{"arctan", Atan}, {"atan", Atan2}, {"if", If},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FromName(tt.name)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFromNameUnknown(t *testing.T) {
	_, ok := FromName("bogus")
	assert.False(t, ok)
}

func TestNameRoundTripsFromName(t *testing.T) {
	for name, b := range map[string]Builtin{"sin": Sin, "sum": Sum, "atan": Atan2, "arctan": Atan} {
		assert.Equal(t, name, b.Name())
	}
}

func TestInputsArity(t *testing.T) {
	assert.Equal(t, 1, Sin.Inputs())
	assert.Equal(t, 2, Atan2.Inputs())
	assert.Equal(t, 2, Max.Inputs())
	assert.Equal(t, 3, Sum.Inputs())
	assert.Equal(t, 3, If.Inputs())
}

func TestCompactDefersTrailingArgs(t *testing.T) {
	assert.Equal(t, 1, Sum.Compact())
	assert.Equal(t, 1, Prod.Compact())
	assert.Equal(t, 1, Iter.Compact())
	assert.Equal(t, 2, If.Compact())
	assert.Equal(t, 0, Sin.Compact())
}

func TestComputeSin(t *testing.T) {
	a := number.FromReal(0)
	Sin.Compute(&a, nil)
	assert.InDelta(t, 0, a.Real, 1e-9)
}

func TestComputeMax(t *testing.T) {
	a := number.FromReal(3)
	Max.Compute(&a, []number.Number{number.FromReal(7)})
	assert.Equal(t, number.FromReal(7), a)
}
