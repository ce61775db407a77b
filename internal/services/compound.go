package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/checkmygrade/internal/common"
	"github.com/dmitrijs2005/checkmygrade/internal/logging"
	"github.com/dmitrijs2005/checkmygrade/internal/models"
	"github.com/dmitrijs2005/checkmygrade/internal/repositories/entity"
)

// insertWithCredential is the two-step compound insert shared by students and
// professors: step one appends the entity row, step two registers the login.
// When step two fails the row stays and a *common.PartialInsertError is
// returned so the caller can repair the account.
func insertWithCredential[T any](
	ctx context.Context,
	repo entity.Repository[T],
	auth AuthService,
	log logging.Logger,
	name string,
	rec T,
	user models.User,
	password []byte,
	role models.Role,
) error {
	if err := user.Validate(); err != nil {
		return err
	}
	if len(password) == 0 {
		return fmt.Errorf("%w: password is empty", common.ErrorInvalidInput)
	}

	if err := repo.Insert(ctx, rec); err != nil {
		return err
	}

	if err := auth.Register(ctx, user.Email, password, role); err != nil {
		log.Error(ctx, "compound insert left without credential", "entity", name, "key", user.ID, "error", err)
		return &common.PartialInsertError{Entity: name, Key: user.ID, Err: err}
	}

	log.Info(ctx, name+" added", "key", user.ID)
	return nil
}
