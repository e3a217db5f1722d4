package repository

import (
	"context"

	"lawsite-api/internal/dto"
	"lawsite-api/internal/model"

	"gorm.io/gorm"
)

type GalleryRepository interface {
	List(ctx context.Context, q dto.ListQuery) ([]model.GalleryItem, int64, error)
	GetPublished(ctx context.Context, id uint) (*model.GalleryItem, error)
	Create(ctx context.Context, item *model.GalleryItem) error
	Update(ctx context.Context, id uint, item *model.GalleryItem) error
	SoftDelete(ctx context.Context, id uint) error
}

type galleryRepoImpl struct {
	db *gorm.DB
}

func NewGalleryRepository(db *gorm.DB) GalleryRepository {
	return &galleryRepoImpl{db: db}
}

func (r *galleryRepoImpl) List(ctx context.Context, q dto.ListQuery) ([]model.GalleryItem, int64, error) {
	var items []model.GalleryItem
	total, err := listPublished(ctx, r.db, &model.GalleryItem{}, &items, q,
		"display_order ASC, created_at DESC", "title", "description")
	return items, total, err
}

func (r *galleryRepoImpl) GetPublished(ctx context.Context, id uint) (*model.GalleryItem, error) {
	var item model.GalleryItem
	err := r.db.WithContext(ctx).
		Where("id = ? AND status = ?", id, model.ContentPublished).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *galleryRepoImpl) Create(ctx context.Context, item *model.GalleryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *galleryRepoImpl) Update(ctx context.Context, id uint, item *model.GalleryItem) error {
	result := r.db.WithContext(ctx).Model(&model.GalleryItem{ID: id}).Updates(item)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *galleryRepoImpl) SoftDelete(ctx context.Context, id uint) error {
	return softDelete(ctx, r.db, &model.GalleryItem{}, id)
}
