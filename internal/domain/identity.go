package domain

import "context"

// UserIdentity is the display identity of the person using the application.
// It is supplied by an IdentityProvider and rendered as-is; nothing in the
// presentation layer transforms it.
type UserIdentity struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar"`
}

// IdentityProvider resolves the identity for the current request.
// Session management lives outside this application; implementations
// only look the identity up.
type IdentityProvider interface {
	Identity(ctx context.Context) (UserIdentity, error)
}

// StaticIdentity is an IdentityProvider that always returns the same identity.
type StaticIdentity struct {
	User UserIdentity
}

// Identity implements IdentityProvider.
func (s StaticIdentity) Identity(ctx context.Context) (UserIdentity, error) {
	return s.User, nil
}
