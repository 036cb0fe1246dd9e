package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLastFour(t *testing.T) {
	tests := []struct{ in, want string }{
		{"4321", "4321"},
		{"XXXX XXXX XXXX 4321", "4321"},
		{"5246 12** **** 9981", "9981"},
		{"15-Jan-2024", ""},
		{"Regalia", ""},
		{"12", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, lastFour(tt.in), tt.in)
	}
}

func TestCleanName(t *testing.T) {
	assert.Equal(t, "Arjun Mehta", cleanName("Mr. Arjun  Mehta"))
	assert.Equal(t, "PRIYA NAIR", cleanName(" PRIYA NAIR "))
	assert.Equal(t, "", cleanName("Regalia"))
	assert.Equal(t, "", cleanName("Rs. 540.00 due"))
}
