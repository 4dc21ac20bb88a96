package ports

import "context"

// AuthenticateInput carries the login request: the identifier is either an
// email address or a phone number, tried against both fields.
type AuthenticateInput struct {
	Identifier    string
	Password      string
	ClaimedRoleID int
}

// AuthResult is returned on a successful login.
type AuthResult struct {
	UserID string
	Token  string
}

// AuthService implements the credential-based login and logout flows.
type AuthService interface {
	Authenticate(ctx context.Context, input AuthenticateInput) (*AuthResult, error)
	// Logout never fails: it clears session state best-effort and reports
	// success unconditionally.
	Logout(ctx context.Context, userID string)
}
