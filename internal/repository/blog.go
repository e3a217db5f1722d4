package repository

import (
	"context"

	"lawsite-api/internal/dto"
	"lawsite-api/internal/model"

	"gorm.io/gorm"
)

type BlogRepository interface {
	List(ctx context.Context, q dto.ListQuery) ([]model.Blog, int64, error)
	GetPublished(ctx context.Context, id uint) (*model.Blog, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*model.Blog, error)
	Create(ctx context.Context, b *model.Blog) error
	Update(ctx context.Context, id uint, b *model.Blog) error
	SoftDelete(ctx context.Context, id uint) error
}

type blogRepoImpl struct {
	db *gorm.DB
}

func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &blogRepoImpl{db: db}
}

func (r *blogRepoImpl) List(ctx context.Context, q dto.ListQuery) ([]model.Blog, int64, error) {
	var blogs []model.Blog
	// tags is a serialized JSON column; a substring match over it is how
	// tag search behaves on the public site.
	total, err := listPublished(ctx, r.db, &model.Blog{}, &blogs, q,
		"created_at DESC", "title", "description", "tags")
	return blogs, total, err
}

func (r *blogRepoImpl) GetPublished(ctx context.Context, id uint) (*model.Blog, error) {
	var b model.Blog
	err := r.db.WithContext(ctx).
		Where("id = ? AND status = ?", id, model.ContentPublished).
		First(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *blogRepoImpl) GetPublishedBySlug(ctx context.Context, slug string) (*model.Blog, error) {
	var b model.Blog
	err := r.db.WithContext(ctx).
		Where("slug = ? AND status = ?", slug, model.ContentPublished).
		First(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *blogRepoImpl) Create(ctx context.Context, b *model.Blog) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *blogRepoImpl) Update(ctx context.Context, id uint, b *model.Blog) error {
	result := r.db.WithContext(ctx).Model(&model.Blog{ID: id}).Updates(b)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *blogRepoImpl) SoftDelete(ctx context.Context, id uint) error {
	return softDelete(ctx, r.db, &model.Blog{}, id)
}
