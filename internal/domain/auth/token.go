package auth

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// tokenPattern matches `user-<id>.<expiration>.<signature>`.
var tokenPattern = regexp.MustCompile(`^user-([0-9]+)\.([^.]+)\.([^.]+)$`)

// ErrMalformedToken is returned by ParseToken for any input that is not a well formed token.
var ErrMalformedToken = errors.New("token wrong format")

// Token is the parsed form of the auth cookie value.
// Expiration and Signature are carried but not validated.
type Token struct {
	UserID     uint64
	Expiration string
	Signature  string
}

// String formats the token as `user-<id>.<exp>.<sig>`.
func (t Token) String() string {
	return fmt.Sprintf("user-%d.%s.%s", t.UserID, t.Expiration, t.Signature)
}

// ParseToken parses a token of format `user-<id>.<expiration>.<signature>`.
func ParseToken(raw string) (Token, error) {
	m := tokenPattern.FindStringSubmatch(raw)
	if m == nil {
		return Token{}, ErrMalformedToken
	}

	userID, err := strconv.ParseUint(m[1], 10, 64)
	if err != nil {
		return Token{}, fmt.Errorf("%w: user id: %w", ErrMalformedToken, err)
	}

	return Token{UserID: userID, Expiration: m[2], Signature: m[3]}, nil
}
