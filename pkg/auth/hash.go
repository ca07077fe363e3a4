package auth

import (
	"encoding/base64"

	"golang.org/x/crypto/argon2"
)

// argon2id parameters. Fixed so digests are deterministic for a given
// password/pepper pair — Service.Authenticate compares hashes byte for
// byte, which rules out per-hash random salts.
const (
	hashTime    = 1
	hashMemory  = 64 * 1024
	hashThreads = 4
	hashKeyLen  = 32
)

// HashPassword derives a deterministic argon2id digest of password using
// pepper as the salt. The pepper is an application-wide secret; two
// deployments with different peppers produce unrelated digests for the
// same password.
func HashPassword(password, pepper string) string {
	key := argon2.IDKey([]byte(password), []byte(pepper), hashTime, hashMemory, hashThreads, hashKeyLen)
	return base64.RawStdEncoding.EncodeToString(key)
}
