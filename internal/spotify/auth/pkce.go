package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
)

const (
	// CodeVerifierLength is the length of the PKCE code verifier (43-128).
	CodeVerifierLength = 64

	// StateLength is the length of the state parameter for CSRF protection.
	StateLength = 32
)

// PKCE holds the code verifier and challenge for OAuth PKCE flow.
type PKCE struct {
	Verifier  string
	Challenge string
	State     string
}

// NewPKCE generates a new PKCE code verifier, challenge, and state.
func NewPKCE() (*PKCE, error) {
	verifier, err := generateRandomString(CodeVerifierLength)
	if err != nil {
		return nil, err
	}

	state, err := generateRandomString(StateLength)
	if err != nil {
		return nil, err
	}

	challenge := generateChallenge(verifier)

	return &PKCE{
		Verifier:  verifier,
		Challenge: challenge,
		State:     state,
	}, nil
}

// MatchesState reports whether state is the one sent with the authorization
// request.
func (p *PKCE) MatchesState(state string) bool {
	return subtle.ConstantTimeCompare([]byte(p.State), []byte(state)) == 1
}

// generateRandomString returns length URL-safe base64 characters.
func generateRandomString(length int) (string, error) {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf)[:length], nil
}

// generateChallenge creates the S256 code challenge from a verifier.
// challenge = base64url(sha256(verifier))
func generateChallenge(verifier string) string {
	hash := sha256.Sum256([]byte(verifier))
	return base64.RawURLEncoding.EncodeToString(hash[:])
}
