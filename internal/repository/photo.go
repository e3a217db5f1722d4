package repository

import (
	"context"

	"lawsite-api/internal/dto"
	"lawsite-api/internal/model"

	"gorm.io/gorm"
)

type PhotoRepository interface {
	List(ctx context.Context, q dto.ListQuery) ([]model.ThoughtLeadershipPhoto, int64, error)
	Create(ctx context.Context, p *model.ThoughtLeadershipPhoto) error
	Update(ctx context.Context, id uint, p *model.ThoughtLeadershipPhoto) error
	SoftDelete(ctx context.Context, id uint) error
}

type photoRepoImpl struct {
	db *gorm.DB
}

func NewPhotoRepository(db *gorm.DB) PhotoRepository {
	return &photoRepoImpl{db: db}
}

func (r *photoRepoImpl) List(ctx context.Context, q dto.ListQuery) ([]model.ThoughtLeadershipPhoto, int64, error) {
	var photos []model.ThoughtLeadershipPhoto
	total, err := listPublished(ctx, r.db, &model.ThoughtLeadershipPhoto{}, &photos, q,
		"display_order ASC, created_at DESC", "title", "description")
	return photos, total, err
}

func (r *photoRepoImpl) Create(ctx context.Context, p *model.ThoughtLeadershipPhoto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *photoRepoImpl) Update(ctx context.Context, id uint, p *model.ThoughtLeadershipPhoto) error {
	result := r.db.WithContext(ctx).Model(&model.ThoughtLeadershipPhoto{ID: id}).Updates(p)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *photoRepoImpl) SoftDelete(ctx context.Context, id uint) error {
	return softDelete(ctx, r.db, &model.ThoughtLeadershipPhoto{}, id)
}
