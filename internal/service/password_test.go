package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeneratePassword_Length(t *testing.T) {
	assert.Len(t, generatePassword(16), 16)
	assert.Len(t, generatePassword(32), 32)
	// below the floor gets bumped up
	assert.Len(t, generatePassword(4), passwordLength)
	assert.Len(t, generatePassword(0), passwordLength)
}

func TestGeneratePassword_ContainsAllClasses(t *testing.T) {
	for i := 0; i < 50; i++ {
		pw := generatePassword(passwordLength)
		assert.True(t, strings.ContainsAny(pw, passwordLower), "missing lowercase: %s", pw)
		assert.True(t, strings.ContainsAny(pw, passwordUpper), "missing uppercase: %s", pw)
		assert.True(t, strings.ContainsAny(pw, passwordDigits), "missing digit: %s", pw)
		assert.True(t, strings.ContainsAny(pw, passwordSymbols), "missing symbol: %s", pw)
	}
}

func TestGeneratePassword_NoAmbiguousGlyphs(t *testing.T) {
	for i := 0; i < 50; i++ {
		pw := generatePassword(passwordLength)
		assert.False(t, strings.ContainsAny(pw, "0O1lI"), "ambiguous glyph in %s", pw)
	}
}

func TestGeneratePassword_NotDeterministic(t *testing.T) {
	assert.NotEqual(t, generatePassword(24), generatePassword(24))
}
