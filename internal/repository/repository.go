// Package repository is the only code that reads or writes wings, activities and photos.
package repository

import (
	"anvaya-club/internal/global/errs"
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const (
	activityOrder = "activity_date DESC, id DESC"
	photoOrder    = "uploaded_at DESC, id DESC"
)

type Repository struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) conn(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

// write runs fn in one transaction. Errors already carrying a kind pass through,
// everything else becomes a storage failure.
func (r *Repository) write(ctx context.Context, op string, fn func(tx *gorm.DB) error) error {
	err := r.conn(ctx).Transaction(fn)
	if err == nil {
		return nil
	}
	if _, ok := errs.As(err); ok {
		return err
	}
	return errs.Wrap(errs.ErrStorage, err, op)
}

// first loads one row into dst, mapping a missing row to notFound.
func (r *Repository) first(ctx context.Context, dst any, notFound *errs.Error, query any, args ...any) error {
	err := r.conn(ctx).Where(query, args...).Take(dst).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return storage(err, "load row")
}

func storage(err error, op string) error {
	if err == nil {
		return nil
	}
	return errs.Wrap(errs.ErrStorage, err, op)
}
