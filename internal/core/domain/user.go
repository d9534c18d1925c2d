package domain

import "time"

type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
)

type User struct {
	ID         int
	Email      string
	Username   string
	FirstName  string
	LastName   string
	Role       Role
	Active     bool
	DateJoined time.Time
}

// TokenPair is the credential pair issued on login. The access token is
// attached to every outgoing request; the refresh token renews it.
type TokenPair struct {
	Access  string
	Refresh string
}

func (t TokenPair) Empty() bool {
	return t.Access == "" && t.Refresh == ""
}

// Session is what survives a restart: the user record and the token pair,
// stored under the two local-store keys.
type Session struct {
	User  User
	Token TokenPair
}

// Registration is the sign-up request. A successful registration does not
// log the user in; a separate login follows.
type Registration struct {
	Email     string
	Username  string
	Password  string
	FirstName string
	LastName  string
	Role      Role
}
