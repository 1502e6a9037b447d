package twd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeNumeric(t *testing.T) {
	t.Parallel()

	testTable := []struct {
		name     string
		input    string
		expected string
	}{
		{
			"labeled numeral",
			"本行即期買入31.5280",
			"31.5280",
		},
		{
			"bare numeral",
			"31.50",
			"31.50",
		},
		{
			"integer numeral",
			"31",
			"31",
		},
		{
			"padded numeral",
			"  4.3050\n",
			"4.3050",
		},
		{
			"empty input",
			"",
			"-",
		},
		{
			"blank input",
			"   ",
			"-",
		},
		{
			"no numeral",
			"  abc ",
			"abc",
		},
		{
			"localized no numeral",
			"暫停報價",
			"暫停報價",
		},
	}

	for _, testCase := range testTable {
		testCase := testCase

		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expected, sanitizeNumeric(testCase.input))
		})
	}
}
