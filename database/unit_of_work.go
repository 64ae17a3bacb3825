package database

import (
	"context"

	"github.com/fundflow/backend/errs"
	"github.com/fundflow/backend/models"
	"gorm.io/gorm"
)

// Factory hands out unit-of-work instances over the shared connection pool.
type Factory struct {
	db *gorm.DB
}

func NewFactory(db *gorm.DB) *Factory {
	return &Factory{db: db}
}

// UnitOfWork bounds one transaction and the repositories active within it.
// Either every write performed through its repositories is committed
// together or none is. One instance serves exactly one logical request and
// must not be shared across goroutines.
type UnitOfWork struct {
	db     *gorm.DB
	ctx    context.Context
	tx     *gorm.DB
	closed bool

	Categories *Repo[models.Category]
	Projects   *RelRepo[models.Project]
	Donations  *RelRepo[models.Donation]
	Rewards    *Repo[models.Reward]
	Users      *RelRepo[models.User]
	Roles      *RelRepo[models.Role]
}

// Begin opens a transaction and constructs one repository per entity kind,
// each bound to it. The context is retained so a commit-and-continue reopens
// under the same cancellation scope.
func (f *Factory) Begin(ctx context.Context) (*UnitOfWork, error) {
	u := &UnitOfWork{db: f.db, ctx: ctx}
	if err := u.begin(); err != nil {
		return nil, err
	}
	if err := u.bindRepos(); err != nil {
		_ = u.tx.Rollback()
		return nil, err
	}
	return u, nil
}

func (u *UnitOfWork) begin() error {
	tx := u.db.WithContext(u.ctx).Begin()
	if tx.Error != nil {
		return errs.NewTransactionFailedError("begin", tx.Error)
	}
	u.tx = tx
	return nil
}

func (u *UnitOfWork) bindRepos() error {
	var err error
	if u.Categories, err = newRepo[models.Category](u.db, u); err != nil {
		return err
	}
	if u.Projects, err = newRelRepo[models.Project](u.db, u, "Creator", "Category", "Donations", "Rewards"); err != nil {
		return err
	}
	if u.Donations, err = newRelRepo[models.Donation](u.db, u, "Project", "User"); err != nil {
		return err
	}
	if u.Rewards, err = newRepo[models.Reward](u.db, u); err != nil {
		return err
	}
	if u.Users, err = newRelRepo[models.User](u.db, u, "Role"); err != nil {
		return err
	}
	if u.Roles, err = newRelRepo[models.Role](u.db, u, "Users"); err != nil {
		return err
	}
	return nil
}

// handle implements txSource; repositories read their transaction through it
// so an explicit commit transparently rebinds them to the next one.
func (u *UnitOfWork) handle() *gorm.DB {
	return u.tx
}

// Commit makes every write performed so far durable, then opens a fresh
// transaction so the caller can keep using the same repositories. A failure
// on either step closes the unit of work; the finished transaction is never
// re-driven by a later Close.
func (u *UnitOfWork) Commit() error {
	if u.closed {
		return errs.NewTransactionFailedError("commit", gorm.ErrInvalidTransaction)
	}
	if err := u.tx.Commit().Error; err != nil {
		u.closed = true
		return errs.NewTransactionFailedError("commit", err)
	}
	if err := u.begin(); err != nil {
		u.closed = true
		return err
	}
	return nil
}

// Rollback discards every uncommitted write, then opens a fresh transaction.
// Like Commit, a failure closes the unit of work.
func (u *UnitOfWork) Rollback() error {
	if u.closed {
		return errs.NewTransactionFailedError("rollback", gorm.ErrInvalidTransaction)
	}
	if err := u.tx.Rollback().Error; err != nil {
		u.closed = true
		return errs.NewTransactionFailedError("rollback", err)
	}
	if err := u.begin(); err != nil {
		u.closed = true
		return err
	}
	return nil
}

// Close ends the unit of work: a nil outcome commits, anything else rolls
// back. The underlying connection is released on every path, including
// cancellation; closing twice is a no-op. Rollback failures are reported,
// not swallowed.
func (u *UnitOfWork) Close(outcome error) error {
	if u.closed {
		return nil
	}
	u.closed = true
	if outcome != nil {
		if err := u.tx.Rollback().Error; err != nil {
			return errs.NewTransactionFailedError("rollback", err)
		}
		return nil
	}
	if err := u.tx.Commit().Error; err != nil {
		return errs.NewTransactionFailedError("commit", err)
	}
	return nil
}
