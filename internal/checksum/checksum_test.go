package checksum

import (
	"crypto/sha1"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sha1hex(s string) string {
	sum := sha1.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}

func TestCreateSortsByKey(t *testing.T) {
	secret := "s3cret"

	got := Create(map[string]string{"b": "1", "a": "2"}, secret)
	assert.Equal(t, sha1hex("21"+secret), got)

	// Map iteration order must not leak into the digest.
	same := Create(map[string]string{"a": "2", "b": "1"}, secret)
	assert.Equal(t, got, same)
}

func TestCreateEmptyParamsHashesSecretAlone(t *testing.T) {
	assert.Equal(t, sha1hex("s3cret"), Create(nil, "s3cret"))
	assert.Equal(t, sha1hex("s3cret"), Create(map[string]string{}, "s3cret"))
}

func TestCreateIsLowercaseHex(t *testing.T) {
	got := Create(map[string]string{"Amount": "10.00"}, "s3cret")
	require.Len(t, got, 40)
	for _, r := range got {
		assert.True(t, (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f'), "unexpected digest rune %q", r)
	}
}

func TestValidateTransactionRoundTrip(t *testing.T) {
	const (
		id     = "12345"
		code   = "TX-CODE"
		status = "1"
		salt   = "pepper"
	)
	sum := sha1hex(id + code + status + salt)

	assert.True(t, ValidateTransaction(sum, id, code, status, salt))

	// Mutating any one field flips the result.
	assert.False(t, ValidateTransaction(sum, "12346", code, status, salt))
	assert.False(t, ValidateTransaction(sum, id, "TX-CODF", status, salt))
	assert.False(t, ValidateTransaction(sum, id, code, "0", salt))
	assert.False(t, ValidateTransaction(sum, id, code, status, "salt"))
	assert.False(t, ValidateTransaction("deadbeef", id, code, status, salt))
}
