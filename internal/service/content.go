package service

import (
	"context"
	"errors"

	"lawsite-api/internal/apperr"
	"lawsite-api/internal/dto"
	"lawsite-api/internal/model"
	"lawsite-api/internal/repository"

	"gorm.io/gorm"
)

// ContentService backs both the public read endpoints (published records
// only) and the admin console writes for the five content collections.
type ContentService interface {
	ListTemplates(ctx context.Context, q dto.ListQuery) ([]model.Template, dto.Pagination, error)
	GetTemplate(ctx context.Context, id uint) (*model.Template, error)
	CreateTemplate(ctx context.Context, t *model.Template) error
	UpdateTemplate(ctx context.Context, id uint, t *model.Template) error
	DeleteTemplate(ctx context.Context, id uint) error

	ListBlogs(ctx context.Context, q dto.ListQuery) ([]model.Blog, dto.Pagination, error)
	GetBlog(ctx context.Context, id uint) (*model.Blog, error)
	GetBlogBySlug(ctx context.Context, slug string) (*model.Blog, error)
	CreateBlog(ctx context.Context, b *model.Blog) error
	UpdateBlog(ctx context.Context, id uint, b *model.Blog) error
	DeleteBlog(ctx context.Context, id uint) error

	ListGalleryItems(ctx context.Context, q dto.ListQuery) ([]model.GalleryItem, dto.Pagination, error)
	GetGalleryItem(ctx context.Context, id uint) (*model.GalleryItem, error)
	CreateGalleryItem(ctx context.Context, item *model.GalleryItem) error
	UpdateGalleryItem(ctx context.Context, id uint, item *model.GalleryItem) error
	DeleteGalleryItem(ctx context.Context, id uint) error

	ListGalleryBlogs(ctx context.Context, q dto.ListQuery) ([]model.GalleryBlog, dto.Pagination, error)
	GetGalleryBlog(ctx context.Context, id uint) (*model.GalleryBlog, error)
	CreateGalleryBlog(ctx context.Context, b *model.GalleryBlog) error
	UpdateGalleryBlog(ctx context.Context, id uint, b *model.GalleryBlog) error
	DeleteGalleryBlog(ctx context.Context, id uint) error

	ListPhotos(ctx context.Context, q dto.ListQuery) ([]model.ThoughtLeadershipPhoto, dto.Pagination, error)
	CreatePhoto(ctx context.Context, p *model.ThoughtLeadershipPhoto) error
	UpdatePhoto(ctx context.Context, id uint, p *model.ThoughtLeadershipPhoto) error
	DeletePhoto(ctx context.Context, id uint) error
}

type contentServiceImpl struct {
	templateRepo    repository.TemplateRepository
	blogRepo        repository.BlogRepository
	galleryRepo     repository.GalleryRepository
	galleryBlogRepo repository.GalleryBlogRepository
	photoRepo       repository.PhotoRepository
}

func NewContentService(
	templateRepo repository.TemplateRepository,
	blogRepo repository.BlogRepository,
	galleryRepo repository.GalleryRepository,
	galleryBlogRepo repository.GalleryBlogRepository,
	photoRepo repository.PhotoRepository,
) ContentService {
	return &contentServiceImpl{
		templateRepo:    templateRepo,
		blogRepo:        blogRepo,
		galleryRepo:     galleryRepo,
		galleryBlogRepo: galleryBlogRepo,
		photoRepo:       photoRepo,
	}
}

func notFoundOr(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFoundf(msg)
	}
	return err
}

// -------- templates --------

func (s *contentServiceImpl) ListTemplates(ctx context.Context, q dto.ListQuery) ([]model.Template, dto.Pagination, error) {
	q.Normalize()
	templates, total, err := s.templateRepo.List(ctx, q)
	if err != nil {
		return nil, dto.Pagination{}, err
	}
	return templates, dto.NewPagination(q.Page, q.Limit, total), nil
}

func (s *contentServiceImpl) GetTemplate(ctx context.Context, id uint) (*model.Template, error) {
	t, err := s.templateRepo.GetPublished(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "template not found")
	}
	return t, nil
}

func (s *contentServiceImpl) CreateTemplate(ctx context.Context, t *model.Template) error {
	if t.Title == "" {
		return apperr.Validationf("title is required")
	}
	if t.Status == "" {
		t.Status = model.ContentDraft
	}
	return s.templateRepo.Create(ctx, t)
}

func (s *contentServiceImpl) UpdateTemplate(ctx context.Context, id uint, t *model.Template) error {
	if err := s.templateRepo.Update(ctx, id, t); err != nil {
		return notFoundOr(err, "template not found")
	}
	return nil
}

func (s *contentServiceImpl) DeleteTemplate(ctx context.Context, id uint) error {
	if err := s.templateRepo.SoftDelete(ctx, id); err != nil {
		return notFoundOr(err, "template not found")
	}
	return nil
}

// -------- blogs --------

func (s *contentServiceImpl) ListBlogs(ctx context.Context, q dto.ListQuery) ([]model.Blog, dto.Pagination, error) {
	q.Normalize()
	blogs, total, err := s.blogRepo.List(ctx, q)
	if err != nil {
		return nil, dto.Pagination{}, err
	}
	return blogs, dto.NewPagination(q.Page, q.Limit, total), nil
}

func (s *contentServiceImpl) GetBlog(ctx context.Context, id uint) (*model.Blog, error) {
	b, err := s.blogRepo.GetPublished(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "blog not found")
	}
	return b, nil
}

func (s *contentServiceImpl) GetBlogBySlug(ctx context.Context, slug string) (*model.Blog, error) {
	b, err := s.blogRepo.GetPublishedBySlug(ctx, slug)
	if err != nil {
		return nil, notFoundOr(err, "blog not found")
	}
	return b, nil
}

func (s *contentServiceImpl) CreateBlog(ctx context.Context, b *model.Blog) error {
	if b.Title == "" {
		return apperr.Validationf("title is required")
	}
	if b.Status == "" {
		b.Status = model.ContentDraft
	}
	return s.blogRepo.Create(ctx, b)
}

func (s *contentServiceImpl) UpdateBlog(ctx context.Context, id uint, b *model.Blog) error {
	if err := s.blogRepo.Update(ctx, id, b); err != nil {
		return notFoundOr(err, "blog not found")
	}
	return nil
}

func (s *contentServiceImpl) DeleteBlog(ctx context.Context, id uint) error {
	if err := s.blogRepo.SoftDelete(ctx, id); err != nil {
		return notFoundOr(err, "blog not found")
	}
	return nil
}

// -------- gallery items --------

func (s *contentServiceImpl) ListGalleryItems(ctx context.Context, q dto.ListQuery) ([]model.GalleryItem, dto.Pagination, error) {
	q.Normalize()
	items, total, err := s.galleryRepo.List(ctx, q)
	if err != nil {
		return nil, dto.Pagination{}, err
	}
	return items, dto.NewPagination(q.Page, q.Limit, total), nil
}

func (s *contentServiceImpl) GetGalleryItem(ctx context.Context, id uint) (*model.GalleryItem, error) {
	item, err := s.galleryRepo.GetPublished(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "gallery item not found")
	}
	return item, nil
}

func (s *contentServiceImpl) CreateGalleryItem(ctx context.Context, item *model.GalleryItem) error {
	if item.Title == "" || item.ImageURL == "" {
		return apperr.Validationf("title and imageUrl are required")
	}
	if item.Status == "" {
		item.Status = model.ContentDraft
	}
	return s.galleryRepo.Create(ctx, item)
}

func (s *contentServiceImpl) UpdateGalleryItem(ctx context.Context, id uint, item *model.GalleryItem) error {
	if err := s.galleryRepo.Update(ctx, id, item); err != nil {
		return notFoundOr(err, "gallery item not found")
	}
	return nil
}

func (s *contentServiceImpl) DeleteGalleryItem(ctx context.Context, id uint) error {
	if err := s.galleryRepo.SoftDelete(ctx, id); err != nil {
		return notFoundOr(err, "gallery item not found")
	}
	return nil
}

// -------- gallery blogs --------

func (s *contentServiceImpl) ListGalleryBlogs(ctx context.Context, q dto.ListQuery) ([]model.GalleryBlog, dto.Pagination, error) {
	q.Normalize()
	blogs, total, err := s.galleryBlogRepo.List(ctx, q)
	if err != nil {
		return nil, dto.Pagination{}, err
	}
	return blogs, dto.NewPagination(q.Page, q.Limit, total), nil
}

func (s *contentServiceImpl) GetGalleryBlog(ctx context.Context, id uint) (*model.GalleryBlog, error) {
	b, err := s.galleryBlogRepo.GetPublished(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "gallery blog not found")
	}
	return b, nil
}

func (s *contentServiceImpl) CreateGalleryBlog(ctx context.Context, b *model.GalleryBlog) error {
	if b.Title == "" {
		return apperr.Validationf("title is required")
	}
	if b.Status == "" {
		b.Status = model.ContentDraft
	}
	return s.galleryBlogRepo.Create(ctx, b)
}

func (s *contentServiceImpl) UpdateGalleryBlog(ctx context.Context, id uint, b *model.GalleryBlog) error {
	if err := s.galleryBlogRepo.Update(ctx, id, b); err != nil {
		return notFoundOr(err, "gallery blog not found")
	}
	return nil
}

func (s *contentServiceImpl) DeleteGalleryBlog(ctx context.Context, id uint) error {
	if err := s.galleryBlogRepo.SoftDelete(ctx, id); err != nil {
		return notFoundOr(err, "gallery blog not found")
	}
	return nil
}

// -------- thought leadership photos --------

func (s *contentServiceImpl) ListPhotos(ctx context.Context, q dto.ListQuery) ([]model.ThoughtLeadershipPhoto, dto.Pagination, error) {
	q.Normalize()
	photos, total, err := s.photoRepo.List(ctx, q)
	if err != nil {
		return nil, dto.Pagination{}, err
	}
	return photos, dto.NewPagination(q.Page, q.Limit, total), nil
}

func (s *contentServiceImpl) CreatePhoto(ctx context.Context, p *model.ThoughtLeadershipPhoto) error {
	if p.ImageURL == "" {
		return apperr.Validationf("imageUrl is required")
	}
	if p.Status == "" {
		p.Status = model.ContentDraft
	}
	return s.photoRepo.Create(ctx, p)
}

func (s *contentServiceImpl) UpdatePhoto(ctx context.Context, id uint, p *model.ThoughtLeadershipPhoto) error {
	if err := s.photoRepo.Update(ctx, id, p); err != nil {
		return notFoundOr(err, "photo not found")
	}
	return nil
}

func (s *contentServiceImpl) DeletePhoto(ctx context.Context, id uint) error {
	if err := s.photoRepo.SoftDelete(ctx, id); err != nil {
		return notFoundOr(err, "photo not found")
	}
	return nil
}
