package normalize

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		ok       bool
	}{
		{"25.99", "25.99", true},
		{"1,234.56", "1234.56", true},
		{"Rs. 12,345.67", "12345.67", true},
		{"Rs 12,345.67", "12345.67", true},
		{"₹1,23,456.78", "123456.78", true},
		{"INR 5,000", "5000", true},
		{"$1,234.56", "1234.56", true},
		{"€99.00", "99", true},
		{"£25.99", "25.99", true},
		{"540.00 Cr", "540", true},
		{"1,200.00Dr", "1200", true},
		{" 25.99 ", "25.99", true},
		{"-25.99", "-25.99", true},
		{"", "", false},
		{"N/A", "", false},
		{"12.34.56", "", false},
		{"Rs.", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseAmount(tt.input)
			require.Equal(t, tt.ok, ok)
			if !tt.ok {
				return
			}
			want := decimal.RequireFromString(tt.expected)
			assert.True(t, want.Equal(got), "got %s, want %s", got, want)
		})
	}
}

func TestParseAmount_GroupingDoesNotChangeValue(t *testing.T) {
	indian, ok := ParseAmount("₹1,23,456.78")
	require.True(t, ok)
	plain, ok := ParseAmount("123456.78")
	require.True(t, ok)
	western, ok := ParseAmount("$123,456.78")
	require.True(t, ok)

	assert.True(t, indian.Equal(plain))
	assert.True(t, western.Equal(plain))
}

func TestParseAmount_SymbolGroupedSuffixedShapes(t *testing.T) {
	symbols := []string{"", "₹", "Rs.", "Rs. ", "$", "€", "£"}
	groupings := []string{"1,23,45,678", "12,345,678", "12345678"}
	suffixes := []string{"", "Cr", " Cr", "Dr", " Dr"}
	want := decimal.RequireFromString("12345678.90")

	for _, sym := range symbols {
		for _, grouped := range groupings {
			for _, suffix := range suffixes {
				input := sym + grouped + ".90" + suffix
				got, ok := ParseAmount(input)
				if assert.True(t, ok, input) {
					assert.True(t, want.Equal(got), "%q: got %s", input, got)
				}
			}
		}
	}
}

func TestParseIndianAmount(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		ok       bool
	}{
		{"1,23,456.78", "123456.78", true},
		{"₹ 10,00,000", "1000000", true},
		{"Rs. 12,345.67", "12345.67", true},
		{"999", "999", true},
		{"1,234,567.00", "", false},
		{"", "", false},
		{"abc", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseIndianAmount(tt.input)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, decimal.RequireFromString(tt.expected).Equal(got), "got %s", got)
			}
		})
	}
}

func TestFirstAmount(t *testing.T) {
	got, ok := FirstAmount("Rs. 12,345.67 Minimum Amount Due Rs. 600.00")
	require.True(t, ok)
	assert.Equal(t, "12345.67", got.String())

	_, ok = FirstAmount("nothing numeric here")
	assert.False(t, ok)
}

func TestParseAmountLoose(t *testing.T) {
	got, ok := ParseAmountLoose("12,345.67 as on 15-Jan-2024")
	require.True(t, ok)
	assert.Equal(t, "12345.67", got.String())
}

func TestIsCredit(t *testing.T) {
	assert.True(t, IsCredit("1,200.00 Cr"))
	assert.True(t, IsCredit("540.00Cr"))
	assert.True(t, IsCredit("540.00 CR."))
	assert.False(t, IsCredit("540.00"))
	assert.False(t, IsCredit("540.00 Dr"))
	assert.False(t, IsCredit("Credit"))
}

func TestIsValidAmount(t *testing.T) {
	assert.True(t, IsValidAmount(decimal.RequireFromString("0.01")))
	assert.True(t, IsValidAmount(decimal.RequireFromString("99999999.99")))
	assert.False(t, IsValidAmount(decimal.Zero))
	assert.False(t, IsValidAmount(decimal.RequireFromString("-1")))
	assert.False(t, IsValidAmount(MaxAmount))

	assert.True(t, IsValidAmountOrZero(decimal.Zero))
	assert.False(t, IsValidAmountOrZero(decimal.RequireFromString("-0.01")))
	assert.False(t, IsValidAmountOrZero(decimal.RequireFromString("250000000")))
}
