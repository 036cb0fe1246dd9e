package parser

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLargestAmount(t *testing.T) {
	text := "Purchases Rs. 1,200.00 Payments ₹15,000.50 Fees INR 99 Limit Rs. 25,00,00,000.00"

	got, raw, ok := LargestAmount(text)
	require.True(t, ok)
	// 25 crore is above the sanity ceiling and skipped
	assert.Equal(t, "15000.5", got.String())
	assert.Equal(t, "15,000.50", raw)

	_, _, ok = LargestAmount("no money here 123.45")
	assert.False(t, ok)
}

func TestFirstDate(t *testing.T) {
	now := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	text := "Opened 01 Jan 1999. Statement 05-Feb-2024, due 25/02/2024"

	got, raw, ok := FirstDate(text, now)
	require.True(t, ok)
	assert.Equal(t, civil.Date{Year: 2024, Month: time.February, Day: 5}, got)
	assert.Equal(t, "05-Feb-2024", raw)

	_, _, ok = FirstDate("no dates", now)
	assert.False(t, ok)
}

func TestDetector(t *testing.T) {
	d := newDetector(Detection{
		Strong:  []string{"Acme Card"},
		Brand:   []string{"acme", "ACME"},
		Context: []string{"statement"},
	})

	assert.True(t, d.detect("ACME CARD services"))
	assert.True(t, d.detect("acme monthly statement"))
	assert.False(t, d.detect("paid acme"))
	assert.False(t, d.detect("statement"))
	assert.False(t, d.detect(""))
}

func TestPhraseMatcher_Longest(t *testing.T) {
	m := newPhraseMatcher([]string{"Regalia", "Regalia Gold", "Infinia"})

	got, ok := m.longest("Your REGALIA GOLD card")
	require.True(t, ok)
	assert.Equal(t, "Regalia Gold", got)

	_, ok = m.longest("Millennia")
	assert.False(t, ok)

	_, ok = newPhraseMatcher(nil).longest("Regalia")
	assert.False(t, ok)
}
