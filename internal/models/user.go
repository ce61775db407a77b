package models

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/checkmygrade/internal/common"
)

// Role gates what a logged-in user may do.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleStudent   Role = "student"
	RoleProfessor Role = "professor"
)

// ParseRole accepts a role name in any case.
func ParseRole(s string) (Role, error) {
	switch r := Role(strings.ToLower(strings.TrimSpace(s))); r {
	case RoleAdmin, RoleStudent, RoleProfessor:
		return r, nil
	default:
		return "", fmt.Errorf("%w: unknown role %q", common.ErrorInvalidInput, s)
	}
}

func (r Role) String() string { return string(r) }

// User carries the identity fields shared by students and professors.
type User struct {
	ID        string
	Email     string
	FirstName string
	LastName  string
}

// FullName joins first and last name.
func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Validate checks the fields every stored user needs.
func (u User) Validate() error {
	if strings.TrimSpace(u.ID) == "" {
		return fmt.Errorf("%w: id is required", common.ErrorInvalidInput)
	}
	if !strings.Contains(u.Email, "@") {
		return fmt.Errorf("%w: email %q", common.ErrorInvalidInput, u.Email)
	}
	return nil
}

// UserPatch holds replacement identity fields; empty strings keep the stored value.
type UserPatch struct {
	Email     string
	FirstName string
	LastName  string
}

func (p UserPatch) apply(u User) User {
	u.Email = keep(u.Email, p.Email)
	u.FirstName = keep(u.FirstName, p.FirstName)
	u.LastName = keep(u.LastName, p.LastName)
	return u
}

func keep(old, replacement string) string {
	if replacement == "" {
		return old
	}
	return replacement
}
