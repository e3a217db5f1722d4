package repository

import (
	"context"

	"lawsite-api/internal/dto"
	"lawsite-api/internal/model"

	"gorm.io/gorm"
)

type TemplateRepository interface {
	List(ctx context.Context, q dto.ListQuery) ([]model.Template, int64, error)
	GetPublished(ctx context.Context, id uint) (*model.Template, error)
	Get(ctx context.Context, id uint) (*model.Template, error)
	Create(ctx context.Context, t *model.Template) error
	Update(ctx context.Context, id uint, t *model.Template) error
	SoftDelete(ctx context.Context, id uint) error
}

type templateRepoImpl struct {
	db *gorm.DB
}

func NewTemplateRepository(db *gorm.DB) TemplateRepository {
	return &templateRepoImpl{db: db}
}

func (r *templateRepoImpl) List(ctx context.Context, q dto.ListQuery) ([]model.Template, int64, error) {
	var templates []model.Template
	total, err := listPublished(ctx, r.db, &model.Template{}, &templates, q,
		"display_order ASC, created_at DESC", "title", "description")
	return templates, total, err
}

func (r *templateRepoImpl) GetPublished(ctx context.Context, id uint) (*model.Template, error) {
	var t model.Template
	err := r.db.WithContext(ctx).
		Where("id = ? AND status = ?", id, model.ContentPublished).
		First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *templateRepoImpl) Get(ctx context.Context, id uint) (*model.Template, error) {
	var t model.Template
	if err := r.db.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *templateRepoImpl) Create(ctx context.Context, t *model.Template) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *templateRepoImpl) Update(ctx context.Context, id uint, t *model.Template) error {
	result := r.db.WithContext(ctx).Model(&model.Template{ID: id}).Updates(t)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *templateRepoImpl) SoftDelete(ctx context.Context, id uint) error {
	return softDelete(ctx, r.db, &model.Template{}, id)
}
