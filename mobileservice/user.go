package mobileservice

// User represents an end user logged in to a mobile service. The user id is
// fixed at construction; the authentication token may be replaced over the
// user's lifetime as an external login flow issues fresh credentials. While
// a token is present, the transport attaches it to outbound requests so the
// client can act with authenticated-user permissions.
//
// A User belongs to a single logical session at a time. It performs no
// locking; mutating the token from multiple goroutines requires external
// synchronization by the caller.
type User struct {
	userID string
	token  string
}

// NewUser returns a user with the given id and no authentication token.
// The id is not validated; any string, including empty, is accepted.
func NewUser(userID string) *User {
	return &User{userID: userID}
}

// UserID reports the identifier assigned at construction. It never changes.
func (u *User) UserID() string { return u.userID }

// AuthenticationToken returns the current token, or "" when absent.
func (u *User) AuthenticationToken() string { return u.token }

// SetAuthenticationToken replaces the token unconditionally. The empty
// string clears it. Token format and expiry are the caller's concern.
func (u *User) SetAuthenticationToken(token string) { u.token = token }

// Clone returns an independent copy carrying the same id and token at the
// moment of the call. Mutating either copy afterward does not affect the
// other.
func (u *User) Clone() *User {
	c := *u
	return &c
}
