package utils_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/felizhandmade/feliz-store/utils"
)

func TestFormatMMK(t *testing.T) {
	assert.Equal(t, "MMK 0", utils.FormatMMK(0))
	assert.Equal(t, "MMK 900", utils.FormatMMK(900))
	assert.Equal(t, "MMK 12,000", utils.FormatMMK(12000))
	assert.Equal(t, "MMK 181,000", utils.FormatMMK(181000))
	assert.Equal(t, "MMK 1,234,567", utils.FormatMMK(1234567))
}

func TestMakeOrderCodeShape(t *testing.T) {
	re := regexp.MustCompile(`^FZ-[0-9A-F]{6}$`)
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		code := utils.MakeOrderCode()
		assert.Regexp(t, re, code)
		seen[code] = true
	}
	// Random codes should not all collapse to one value.
	assert.Greater(t, len(seen), 1)
}
