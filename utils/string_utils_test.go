package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitle(t *testing.T) {
	assert.Equal(t, "Home Decor", Title("home   DECOR"))
	assert.Equal(t, "", Title(""))
}

func TestNormalizeTags(t *testing.T) {
	assert.Equal(t, []string{"wireless", "audio"}, NormalizeTags([]string{" Wireless", "audio", "WIRELESS", ""}))
}

func TestParseUintParam(t *testing.T) {
	id, ok := ParseUintParam("42")
	assert.True(t, ok)
	assert.Equal(t, uint(42), id)

	for _, bad := range []string{"", "0", "-1", "abc"} {
		_, ok := ParseUintParam(bad)
		assert.False(t, ok, bad)
	}
}

func TestParseOrderNumber(t *testing.T) {
	n, ok := ParseOrderNumber("#1001")
	assert.True(t, ok)
	assert.Equal(t, int64(1001), n)

	_, ok = ParseOrderNumber("x1")
	assert.False(t, ok)
}
