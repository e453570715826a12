// Package password wraps bcrypt hashing and verification of user credentials.
package password

import "golang.org/x/crypto/bcrypt"

// Cost is the bcrypt work factor applied to new digests. The salt and cost
// are embedded in the digest itself, so Verify needs no extra parameters.
const Cost = 10

type Hasher struct {
	cost int
}

func NewHasher() *Hasher {
	return &Hasher{cost: Cost}
}

// Hash produces a salted digest of plain. A fresh salt is drawn on every
// call, so two hashes of the same plaintext differ.
func (h *Hasher) Hash(plain string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plain matches digest. It fails closed: a malformed
// digest or a mismatch both return false, never an error to branch on.
func (h *Hasher) Verify(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
