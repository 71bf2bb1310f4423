package repositories

import (
	"errors"

	"github.com/arkodeep/socially/backend/internal/apperr"
	"github.com/arkodeep/socially/backend/internal/models"
	"gorm.io/gorm"
)

// ToggleOutcome reports which half of a toggle ran.
type ToggleOutcome int

const (
	ToggleCreated ToggleOutcome = iota
	ToggleRemoved
)

func (o ToggleOutcome) String() string {
	if o == ToggleCreated {
		return "created"
	}
	return "removed"
}

// toggleSpec describes one create-or-remove write path. exists, create and
// remove operate on the relation row; notify builds the notification
// emitted on the create half, or returns nil to suppress it (self-action).
type toggleSpec struct {
	exists func(tx *gorm.DB) (bool, error)
	create func(tx *gorm.DB) error
	remove func(tx *gorm.DB) error
	notify func() *models.Notification
}

// runToggle executes a toggle in a single transaction: the relation row and
// its notification both commit or neither does. A unique-index violation
// from a racing duplicate create surfaces as Conflict; the losing caller
// sees a no-op rather than corrupted state.
func runToggle(db *gorm.DB, spec toggleSpec) (ToggleOutcome, error) {
	var outcome ToggleOutcome
	err := db.Transaction(func(tx *gorm.DB) error {
		found, err := spec.exists(tx)
		if err != nil {
			return err
		}
		if found {
			if err := spec.remove(tx); err != nil {
				return err
			}
			outcome = ToggleRemoved
			return nil
		}
		if err := spec.create(tx); err != nil {
			return err
		}
		if n := spec.notify(); n != nil {
			if err := tx.Create(n).Error; err != nil {
				return err
			}
		}
		outcome = ToggleCreated
		return nil
	})
	if err != nil {
		var appErr *apperr.Error
		if errors.As(err, &appErr) {
			return 0, appErr
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, apperr.Wrap(apperr.CodeConflict, "already exists", err)
		}
		return 0, apperr.Wrap(apperr.CodeTransaction, "write failed", err)
	}
	return outcome, nil
}
