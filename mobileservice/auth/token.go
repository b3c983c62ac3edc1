// Package auth keeps track of the logged-in mobile service user: it builds
// users from service-issued tokens, holds the current session, and persists
// it through a pluggable credential store.
package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/brettsam/azure-mobile-services/mobileservice"
)

// uidClaim is the claim mobile service tokens carry the end-user id in.
const uidClaim = "uid"

// UserFromToken builds a User from a service-issued JWT, with the token
// already attached. The signature is not verified: the client holds no
// service key, and the token was issued to it by the service that did the
// authenticating. The user id is read from the "uid" claim, falling back to
// the registered subject.
func UserFromToken(token string) (*mobileservice.User, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	userID, _ := claims[uidClaim].(string)
	if userID == "" {
		sub, err := claims.GetSubject()
		if err != nil || sub == "" {
			return nil, ErrNoUserID
		}
		userID = sub
	}

	u := mobileservice.NewUser(userID)
	u.SetAuthenticationToken(token)
	return u, nil
}
