package helpers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFingerprintKnownVector(t *testing.T) {
	// SHA-256 of "password", hex, uppercased.
	require.Equal(t,
		"5E884898DA28047151D0E56F8DC6292773603D0D6AABBDD62A11EF721D1542D8",
		Fingerprint("password"))
}

func TestFingerprintDeterministic(t *testing.T) {
	for i := 0; i < 3; i++ {
		assert.Equal(t, Fingerprint("secret"), Fingerprint("secret"))
	}
	assert.NotEqual(t, Fingerprint("secret"), Fingerprint("Secret"))
}

func TestFingerprintCaseNormalized(t *testing.T) {
	fp := Fingerprint("anything at all")
	assert.Equal(t, strings.ToUpper(fp), fp)
}

func TestFingerprintEqual(t *testing.T) {
	fp := Fingerprint("hunter2")
	assert.True(t, FingerprintEqual(fp, strings.ToLower(fp)))
	assert.False(t, FingerprintEqual(fp, Fingerprint("hunter3")))
}
