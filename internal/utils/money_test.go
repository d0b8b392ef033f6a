package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "integer", raw: "100", want: "100"},
		{name: "decimal", raw: "12.5", want: "12.5"},
		{name: "rounds to cents", raw: "12.345", want: "12.35"},
		{name: "surrounding whitespace", raw: "  7.25 ", want: "7.25"},
		{name: "exponent", raw: "1e3", want: "1000"},
		{name: "largest storable", raw: "999999999999.99", want: "999999999999.99"},
		{name: "rounds down into range", raw: "999999999999.994", want: "999999999999.99"},
		{name: "empty", raw: "", wantErr: true},
		{name: "zero", raw: "0", wantErr: true},
		{name: "negative", raw: "-5", wantErr: true},
		{name: "rounds to zero", raw: "0.004", wantErr: true},
		{name: "not a number", raw: "abc", wantErr: true},
		{name: "trailing garbage", raw: "12abc", wantErr: true},
		{name: "NaN", raw: "NaN", wantErr: true},
		{name: "infinity", raw: "Inf", wantErr: true},
		{name: "negative infinity", raw: "-Infinity", wantErr: true},
		{name: "above column precision", raw: "10000000000000", wantErr: true},
		{name: "rounds up past the limit", raw: "999999999999.995", wantErr: true},
		{name: "large exponent", raw: "1e20", wantErr: true},
		{name: "huge exponent", raw: "1e300", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAmount)
				assert.True(t, got.IsZero())
				return
			}
			assert.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}
}
