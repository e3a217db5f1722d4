package repository

import (
	"context"

	"lawsite-api/internal/dto"
	"lawsite-api/internal/model"

	"gorm.io/gorm"
)

type GalleryBlogRepository interface {
	List(ctx context.Context, q dto.ListQuery) ([]model.GalleryBlog, int64, error)
	GetPublished(ctx context.Context, id uint) (*model.GalleryBlog, error)
	Create(ctx context.Context, b *model.GalleryBlog) error
	Update(ctx context.Context, id uint, b *model.GalleryBlog) error
	SoftDelete(ctx context.Context, id uint) error
}

type galleryBlogRepoImpl struct {
	db *gorm.DB
}

func NewGalleryBlogRepository(db *gorm.DB) GalleryBlogRepository {
	return &galleryBlogRepoImpl{db: db}
}

func (r *galleryBlogRepoImpl) List(ctx context.Context, q dto.ListQuery) ([]model.GalleryBlog, int64, error) {
	var blogs []model.GalleryBlog
	total, err := listPublished(ctx, r.db, &model.GalleryBlog{}, &blogs, q,
		"created_at DESC", "title", "description", "tags")
	return blogs, total, err
}

func (r *galleryBlogRepoImpl) GetPublished(ctx context.Context, id uint) (*model.GalleryBlog, error) {
	var b model.GalleryBlog
	err := r.db.WithContext(ctx).
		Where("id = ? AND status = ?", id, model.ContentPublished).
		First(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *galleryBlogRepoImpl) Create(ctx context.Context, b *model.GalleryBlog) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *galleryBlogRepoImpl) Update(ctx context.Context, id uint, b *model.GalleryBlog) error {
	result := r.db.WithContext(ctx).Model(&model.GalleryBlog{ID: id}).Updates(b)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *galleryBlogRepoImpl) SoftDelete(ctx context.Context, id uint) error {
	return softDelete(ctx, r.db, &model.GalleryBlog{}, id)
}
