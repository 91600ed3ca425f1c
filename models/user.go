package models

import "golang.org/x/crypto/bcrypt"

// Role is the coarse access level carried in the auth cookie. There are no
// per-user accounts; a role flag gates each route prefix.
type Role string

const (
	RoleCitizen Role = "citizen"
	RoleAdmin   Role = "admin"
)

func (r Role) IsValid() bool {
	return r == RoleCitizen || r == RoleAdmin
}

// CheckPasscode compares a bcrypt hash against a candidate passcode.
func CheckPasscode(hash, candidate string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(candidate))
	return err == nil
}
