package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/checkmygrade/internal/common"
	"github.com/dmitrijs2005/checkmygrade/internal/models"
	"github.com/dmitrijs2005/checkmygrade/internal/session"
)

// Login prompts for credentials, verifies them and starts a session whose
// token expires after the configured TTL. The password is wiped before
// returning.
func (a *App) Login(ctx context.Context) error {
	email, err := a.ask("Enter email")
	if err != nil {
		return err
	}
	password, err := GetPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	role, err := a.auth.Verify(ctx, email, password)
	if err != nil {
		return err
	}

	token, err := session.Issue(email, role, a.secret, a.config.SessionTTL)
	if err != nil {
		return err
	}
	a.token = token
	a.who = session.Identity{Email: email, Role: role}

	a.log.Info(ctx, "login", "email", email, "role", role)
	success(a.out, fmt.Sprintf("Welcome, %s (%s)", email, role))
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.log.Info(ctx, "logout", "email", a.who.Email)
	a.clearSession()
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *App) changePassword(ctx context.Context, _ []string) error {
	current, err := GetPassword(a.reader, "Current password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(current)

	next, err := a.newPassword("New password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(next)

	if err := a.auth.Rotate(ctx, a.who.Email, current, next); err != nil {
		return err
	}
	success(a.out, "Password changed")
	return nil
}

// ensureAdmin enrols an administrator interactively when the credential
// store has none.
func (a *App) ensureAdmin(ctx context.Context) error {
	ok, err := a.auth.HasRole(ctx, models.RoleAdmin)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}

	warn(a.out, "No administrator account found, create one now")
	email, err := a.ask("Administrator email")
	if err != nil {
		return err
	}
	password, err := a.newPassword("Administrator password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.auth.Register(ctx, email, password, models.RoleAdmin); err != nil {
		return err
	}
	success(a.out, "Administrator created")
	return nil
}
