package money_test

import (
	"math"
	"testing"

	"github.com/amirasaad/balance/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		cents   int64
		wantErr error
	}{
		{name: "plain", input: "100.00", cents: 10000},
		{name: "no decimals", input: "42", cents: 4200},
		{name: "one decimal", input: "0.5", cents: 50},
		{name: "trailing zeros", input: "1.500", cents: 150},
		{name: "negative", input: "-3.25", cents: -325},
		{name: "zero", input: "0", cents: 0},
		{name: "sub-cent", input: "0.005", wantErr: money.ErrTooManyDecimals},
		{name: "garbage", input: "ten dollars", wantErr: money.ErrInvalidAmount},
		{name: "empty", input: "", wantErr: money.ErrInvalidAmount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := money.Parse(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.cents, m.Cents())
		})
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "100.00", money.FromCents(10000).String())
	assert.Equal(t, "0.00", money.Zero.String())
	assert.Equal(t, "0.05", money.FromCents(5).String())
	assert.Equal(t, "-3.25", money.FromCents(-325).String())
}

func TestAddSub(t *testing.T) {
	a := money.MustParse("100.00")
	b := money.MustParse("40.00")

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, "140.00", sum.String())

	diff, err := a.Sub(b)
	require.NoError(t, err)
	assert.Equal(t, "60.00", diff.String())
}

func TestAddOverflow(t *testing.T) {
	a := money.FromCents(math.MaxInt64)
	_, err := a.Add(money.FromCents(1))
	require.ErrorIs(t, err, money.ErrOverflow)

	b := money.FromCents(math.MinInt64)
	_, err = b.Sub(money.FromCents(1))
	require.ErrorIs(t, err, money.ErrOverflow)
}

func TestComparisons(t *testing.T) {
	assert.True(t, money.MustParse("0.01").IsPositive())
	assert.False(t, money.Zero.IsPositive())
	assert.True(t, money.FromCents(-1).IsNegative())
	assert.True(t, money.MustParse("39.99").LessThan(money.MustParse("40.00")))
	assert.False(t, money.MustParse("40.00").LessThan(money.MustParse("40.00")))
}

func TestRoundTrip(t *testing.T) {
	for _, s := range []string{"0.00", "0.01", "12.34", "99999999.99"} {
		m, err := money.Parse(s)
		require.NoError(t, err)
		assert.Equal(t, s, m.String())
	}
}
