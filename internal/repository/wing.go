package repository

import (
	"anvaya-club/internal/global/errs"
	"anvaya-club/internal/model"
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// WingWithRelations is a wing plus its activities (newest date first) and photos (newest first).
type WingWithRelations struct {
	model.Wing
	Activities []model.Activity `json:"activities"`
	Photos     []model.Photo    `json:"photos"`
}

// WingContentUpdate replaces the descriptive fields of a wing. The slug never changes.
type WingContentUpdate struct {
	Name    string
	About   string
	Vision  string
	Mission string
}

func (r *Repository) ListWings(ctx context.Context) ([]model.Wing, error) {
	wings := make([]model.Wing, 0)
	err := r.conn(ctx).Order("id ASC").Find(&wings).Error
	return wings, storage(err, "list wings")
}

func (r *Repository) GetWingBySlug(ctx context.Context, slug string) (*model.Wing, error) {
	var wing model.Wing
	if err := r.first(ctx, &wing, errs.NotFound("Wing", slug), "slug = ?", slug); err != nil {
		return nil, err
	}
	return &wing, nil
}

func (r *Repository) GetWingByID(ctx context.Context, id uint) (*model.Wing, error) {
	var wing model.Wing
	if err := r.first(ctx, &wing, errs.NotFound("Wing", id), "id = ?", id); err != nil {
		return nil, err
	}
	return &wing, nil
}

func (r *Repository) GetWingWithRelations(ctx context.Context, slug string) (*WingWithRelations, error) {
	wing, err := r.GetWingBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	out := &WingWithRelations{
		Wing:       *wing,
		Activities: make([]model.Activity, 0),
		Photos:     make([]model.Photo, 0),
	}
	if err := r.conn(ctx).Where("wing_id = ?", wing.ID).Order(activityOrder).Find(&out.Activities).Error; err != nil {
		return nil, storage(err, "load wing activities")
	}
	if err := r.conn(ctx).Where("wing_id = ?", wing.ID).Order(photoOrder).Find(&out.Photos).Error; err != nil {
		return nil, storage(err, "load wing photos")
	}
	return out, nil
}

func (r *Repository) CreateWing(ctx context.Context, wing *model.Wing) error {
	return r.write(ctx, "create wing", func(tx *gorm.DB) error {
		return tx.Create(wing).Error
	})
}

func (r *Repository) UpdateWingContent(ctx context.Context, slug string, u WingContentUpdate) (*model.Wing, error) {
	var wing model.Wing
	err := r.write(ctx, "update wing", func(tx *gorm.DB) error {
		if err := tx.Where("slug = ?", slug).Take(&wing).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NotFound("Wing", slug)
			}
			return err
		}
		wing.Name, wing.About, wing.Vision, wing.Mission = u.Name, u.About, u.Vision, u.Mission
		// Select writes empty strings too
		return tx.Model(&wing).Select("name", "about", "vision", "mission").Updates(&wing).Error
	})
	if err != nil {
		return nil, err
	}
	return &wing, nil
}
