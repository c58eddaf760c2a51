// Package checksum implements the Qantani SHA1 checksums.
//
// The checksum proves knowledge of the merchant secret without ever sending
// the secret itself.
package checksum

import (
	"crypto/sha1"
	"encoding/hex"
	"sort"
	"strings"
)

// Create computes the checksum sent in the Merchant block of a request:
//
//  1. Order parameters by key (lexicographic).
//  2. Concatenate the values in that order.
//  3. Append the merchant secret.
//  4. SHA1 over the UTF-8 bytes, lowercase hex digest.
//
// An empty parameter map yields the hash of the secret alone.
func Create(params map[string]string, secret string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(params[k])
	}
	b.WriteString(secret)

	sum := sha1.Sum([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}

// ValidateTransaction verifies the checksum Qantani appends to the return
// URL after a transaction. That checksum is the SHA1 hex digest of
// transaction id, transaction code, status and salt, concatenated without
// separators.
func ValidateTransaction(checksum, transactionID, transactionCode, status, salt string) bool {
	sum := sha1.Sum([]byte(transactionID + transactionCode + status + salt))
	return hex.EncodeToString(sum[:]) == checksum
}
