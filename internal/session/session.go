// Package session holds the signed-in user and bearer credential for the
// lifetime of a client process, plus the persisted blob that restores it on
// the next launch. It replaces the original client's ambient login state:
// sessions are passed explicitly into whatever needs them.
package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/cherryapp/cherry-client/internal/api"
)

// Session is one signed-in user plus the credential the backend issued.
type Session struct {
	User  api.User `json:"user"`
	Token string   `json:"jwt"`
}

// New creates a session from a login result.
func New(result api.LoginResult) *Session {
	return &Session{User: result.User, Token: result.JWT}
}

// Auth returns the credential pair for RemoteClient calls.
func (s *Session) Auth() api.Auth {
	return api.Auth{Token: s.Token, UserID: s.User.UserID}
}

// SetWeight records an updated current weight on the in-memory user, so
// later days seed their daily weight from the new value.
func (s *Session) SetWeight(weight string) {
	s.User.Weight = weight
}

// Expired reports whether the stored token's exp claim has passed. The
// token is parsed unverified: signature checking is the backend's job, this
// is only a pre-flight check to avoid a guaranteed 401. Tokens without an
// exp claim, or that fail to parse, count as expired.
func (s *Session) Expired(now time.Time) bool {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(s.Token, claims); err != nil {
		return true
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return true
	}
	return now.After(exp.Time)
}
