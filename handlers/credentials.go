package handlers

// CredentialVerifier decides whether a supplied password matches the
// stored credential. Login is its only call site; a hashing scheme
// replaces the implementation here without touching handlers.
type CredentialVerifier interface {
	Verify(stored, supplied string) bool
}

// PlaintextVerifier compares passwords with plain string equality,
// which is what the store currently holds. Known open issue: no
// hashing on either side of the comparison.
type PlaintextVerifier struct{}

func (PlaintextVerifier) Verify(stored, supplied string) bool {
	return stored == supplied
}
