package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher converts plaintext passwords into irreversible stored
// representations and verifies login attempts against them.
//
// Implementations must embed any salt and cost parameters inside the hash
// itself so that Verify needs no external state.
type PasswordHasher interface {
	// Hash returns the one-way hash of plaintext. The output differs
	// between calls for the same input (fresh salt), but every output
	// verifies against the original plaintext.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches the previously hashed
	// value. The comparison is resistant to timing attacks.
	Verify(plaintext, hashed string) bool
}
