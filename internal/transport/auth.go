package transport

import (
	"net/http"
)

// Authenticator applies credentials to HTTP requests.
type Authenticator interface {
	Apply(req *http.Request)
}

// NoAuth implements no authentication.
type NoAuth struct{}

// Apply implements the Authenticator interface for NoAuth.
func (a *NoAuth) Apply(_ *http.Request) {}

// BasicAuth implements HTTP basic authentication, as used by E-Link accounts.
type BasicAuth struct {
	Username string
	Password string
}

// Apply implements the Authenticator interface for BasicAuth.
func (a *BasicAuth) Apply(req *http.Request) {
	req.SetBasicAuth(a.Username, a.Password)
}

// BearerAuth implements Bearer token authentication.
type BearerAuth struct {
	Token string
}

// Apply implements the Authenticator interface for BearerAuth.
func (a *BearerAuth) Apply(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+a.Token)
}

// NewAuthenticator picks an authenticator from the configured credentials.
// A token wins over a username and password.
func NewAuthenticator(username, password, token string) Authenticator {
	switch {
	case token != "":
		return &BearerAuth{Token: token}
	case username != "":
		return &BasicAuth{Username: username, Password: password}
	default:
		return &NoAuth{}
	}
}
