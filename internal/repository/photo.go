package repository

import (
	"anvaya-club/internal/global/errs"
	"anvaya-club/internal/model"
	"context"

	"gorm.io/gorm"
)

func (r *Repository) GetPhotosByWing(ctx context.Context, wingID uint, limit, offset int) ([]model.Photo, error) {
	photos := make([]model.Photo, 0)
	err := r.conn(ctx).Where("wing_id = ?", wingID).Order(photoOrder).Limit(limit).Offset(offset).Find(&photos).Error
	return photos, storage(err, "list wing photos")
}

func (r *Repository) GetPhotoByID(ctx context.Context, id uint) (*model.Photo, error) {
	var photo model.Photo
	if err := r.first(ctx, &photo, errs.NotFound("Photo", id), "id = ?", id); err != nil {
		return nil, err
	}
	return &photo, nil
}

func (r *Repository) CreatePhoto(ctx context.Context, photo *model.Photo) error {
	return r.write(ctx, "create photo", func(tx *gorm.DB) error {
		return tx.Create(photo).Error
	})
}

// CreatePhotosBulk stores every photo or none of them.
func (r *Repository) CreatePhotosBulk(ctx context.Context, photos []model.Photo) error {
	if len(photos) == 0 {
		return nil
	}
	return r.write(ctx, "create photos", func(tx *gorm.DB) error {
		return tx.Create(&photos).Error
	})
}

func (r *Repository) DeletePhoto(ctx context.Context, id uint) (bool, error) {
	var deleted bool
	err := r.write(ctx, "delete photo", func(tx *gorm.DB) error {
		res := tx.Delete(&model.Photo{}, id)
		deleted = res.RowsAffected > 0
		return res.Error
	})
	return deleted, err
}
