package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/checkmygrade/internal/common"
	"github.com/dmitrijs2005/checkmygrade/internal/cryptox"
	"github.com/dmitrijs2005/checkmygrade/internal/logging"
	"github.com/dmitrijs2005/checkmygrade/internal/models"
	"github.com/dmitrijs2005/checkmygrade/internal/repositories/credentials"
)

// AuthService is the credential store.
//
// Contract:
//   - Register appends a freshly salted entry. Duplicate emails are not
//     rejected here; entity repositories deduplicate by id upstream.
//   - Verify returns the role of the first entry for the email, or
//     common.ErrorAuthFailure without saying what did not match.
//   - Rotate re-salts and re-hashes one entry after verifying the old password.
//   - HasRole reports whether any entry carries the role.
//
// Passwords are never stored, logged or retained; callers own the slices.
type AuthService interface {
	Register(ctx context.Context, email string, password []byte, role models.Role) error
	Verify(ctx context.Context, email string, password []byte) (models.Role, error)
	Rotate(ctx context.Context, email string, oldPassword, newPassword []byte) error
	HasRole(ctx context.Context, role models.Role) (bool, error)
}

type authService struct {
	repo   credentials.Repository
	hasher *cryptox.PasswordHasher
	log    logging.Logger
}

func NewAuthService(repo credentials.Repository, hasher *cryptox.PasswordHasher, log logging.Logger) AuthService {
	return &authService{repo: repo, hasher: hasher, log: log.With("service", "auth")}
}

func (a *authService) Register(ctx context.Context, email string, password []byte, role models.Role) error {
	if _, err := models.ParseRole(string(role)); err != nil {
		return err
	}
	if err := validateEmail(email); err != nil {
		return err
	}
	entry, err := a.newEntry(email, password, role)
	if err != nil {
		return err
	}
	if err := a.repo.Append(ctx, entry); err != nil {
		a.log.Error(ctx, "credential not stored", "email", email, "error", err)
		return err
	}
	a.log.Info(ctx, "credential registered", "email", email, "role", role)
	return nil
}

func (a *authService) Verify(ctx context.Context, email string, password []byte) (models.Role, error) {
	entry, err := a.repo.FindFirst(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			a.log.Warn(ctx, "verification failed", "email", email)
			return "", common.ErrorAuthFailure
		}
		return "", err
	}

	if !a.hasher.Check(password, entry.Salt, entry.Hash) {
		a.log.Warn(ctx, "verification failed", "email", email)
		return "", common.ErrorAuthFailure
	}

	role, err := models.ParseRole(string(entry.Role))
	if err != nil {
		a.log.Warn(ctx, "stored role rejected", "email", email, "role", entry.Role)
		return "", common.ErrorAuthFailure
	}
	return role, nil
}

func (a *authService) Rotate(ctx context.Context, email string, oldPassword, newPassword []byte) error {
	role, err := a.Verify(ctx, email, oldPassword)
	if err != nil {
		return err
	}
	entry, err := a.newEntry(email, newPassword, role)
	if err != nil {
		return err
	}
	if err := a.repo.ReplaceFirst(ctx, entry); err != nil {
		a.log.Error(ctx, "password rotation not stored", "email", email, "error", err)
		return err
	}
	a.log.Info(ctx, "password rotated", "email", email)
	return nil
}

func (a *authService) HasRole(ctx context.Context, role models.Role) (bool, error) {
	all, err := a.repo.List(ctx)
	if err != nil {
		return false, err
	}
	for _, c := range all {
		if c.Role == role {
			return true, nil
		}
	}
	return false, nil
}

func (a *authService) newEntry(email string, password []byte, role models.Role) (models.Credential, error) {
	if len(password) == 0 {
		return models.Credential{}, fmt.Errorf("%w: password is empty", common.ErrorInvalidInput)
	}
	salt, err := a.hasher.NewSalt()
	if err != nil {
		return models.Credential{}, fmt.Errorf("generate salt: %w", err)
	}
	hash, err := a.hasher.Hash(password, salt)
	if err != nil {
		return models.Credential{}, err
	}
	return models.Credential{Email: email, Hash: hash, Salt: salt, Role: role}, nil
}

func validateEmail(email string) error {
	if strings.TrimSpace(email) == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("%w: email %q", common.ErrorInvalidInput, email)
	}
	return nil
}
