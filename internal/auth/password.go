package auth

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

// Stored hashes are "salt:hexkey" where salt is a random 16-byte value in hex
// and the key is PBKDF2-SHA512 over the password with the hex salt string,
// 1000 iterations, 64-byte output. The parameters are fixed by existing rows;
// changing them invalidates every stored credential.
const (
	saltBytes  = 16
	iterations = 1000
	keyLength  = 64
)

// HashPassword derives a salted hash for storage and discards the plaintext.
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltBytes)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	saltHex := hex.EncodeToString(salt)
	key := pbkdf2.Key([]byte(password), []byte(saltHex), iterations, keyLength, sha512.New)
	return saltHex + ":" + hex.EncodeToString(key), nil
}

// VerifyPassword re-derives the key from the supplied password and the stored
// salt and compares in constant time. Malformed or truncated stored hashes
// verify as false, never panic.
func VerifyPassword(password, storedHash string) bool {
	salt, keyHex, found := strings.Cut(storedHash, ":")
	if !found || salt == "" || keyHex == "" {
		return false
	}

	storedKey, err := hex.DecodeString(keyHex)
	if err != nil {
		return false
	}

	derived := pbkdf2.Key([]byte(password), []byte(salt), iterations, keyLength, sha512.New)
	if len(derived) != len(storedKey) {
		return false
	}

	return subtle.ConstantTimeCompare(derived, storedKey) == 1
}
