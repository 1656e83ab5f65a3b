package service

import (
	"crypto/rand"
	"math/big"
)

const passwordLength = 16

// Character classes for generated root passwords. Ambiguous glyphs
// (0/O, 1/l/I) are excluded because operators read these over chat.
const (
	passwordLower   = "abcdefghijkmnopqrstuvwxyz"
	passwordUpper   = "ABCDEFGHJKLMNPQRSTUVWXYZ"
	passwordDigits  = "23456789"
	passwordSymbols = "!@#$%^&*-_=+"
)

// generatePassword returns a random password of length n (minimum
// passwordLength) containing at least one character of every class.
func generatePassword(n int) string {
	if n < passwordLength {
		n = passwordLength
	}

	classes := []string{passwordLower, passwordUpper, passwordDigits, passwordSymbols}
	all := passwordLower + passwordUpper + passwordDigits + passwordSymbols

	buf := make([]byte, n)
	for i, class := range classes {
		buf[i] = class[randomIndex(len(class))]
	}
	for i := len(classes); i < n; i++ {
		buf[i] = all[randomIndex(len(all))]
	}

	// Fisher-Yates so the guaranteed class characters are not positional.
	for i := n - 1; i > 0; i-- {
		j := randomIndex(i + 1)
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}

func randomIndex(limit int) int {
	idx, err := rand.Int(rand.Reader, big.NewInt(int64(limit)))
	if err != nil {
		panic(err)
	}
	return int(idx.Int64())
}
