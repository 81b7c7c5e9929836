package history

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ucalc/number"
)

func TestShowHistoryWithNoFilePrintsMessage(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	assert.NoError(t, ShowHistory())
}

func TestAddHistoryThenShowRoundTrips(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	assert.NoError(t, AddHistory("1+2", "1 2 +", number.FromReal(3)))
	assert.NoError(t, AddHistory("1/0", "1 0 /", number.Infinity))
	assert.NoError(t, AddHistory("i*i", "i i *", number.FromReal(-1)))

	path, err := Path()
	assert.NoError(t, err)
	assert.FileExists(t, path)

	assert.NoError(t, ShowHistory())
}

func TestNumberJSONMarshalsSpecialValues(t *testing.T) {
	tests := []struct {
		name string
		in   number.Number
		want string
	}{
		{"finite real", number.FromReal(2.5), "2.5"},
		{"positive infinity", number.Infinity, `"+∞"`},
		{"negative infinity", number.NegInf, `"-∞"`},
		{"nan", number.NaN, `"NaN"`},
		{"complex", number.New(1, 2), `"1+2i"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := NumberJSON(tt.in).MarshalJSON()
			assert.NoError(t, err)
			assert.Equal(t, tt.want, string(data))
		})
	}
}

func TestNumberJSONRoundTrips(t *testing.T) {
	for _, n := range []number.Number{number.FromReal(3), number.Infinity, number.NegInf} {
		data, err := NumberJSON(n).MarshalJSON()
		assert.NoError(t, err)

		var got NumberJSON
		assert.NoError(t, got.UnmarshalJSON(data))
		assert.Equal(t, n, number.Number(got))
	}
}
