package service

import (
	"context"
	"fmt"
	"testing"

	"lawsite-api/internal/apperr"
	"lawsite-api/internal/dto"
	"lawsite-api/internal/model"
	"lawsite-api/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newContentFixture(t *testing.T) (ContentService, *gorm.DB) {
	db := newTestDB(t)
	svc := NewContentService(
		repository.NewTemplateRepository(db),
		repository.NewBlogRepository(db),
		repository.NewGalleryRepository(db),
		repository.NewGalleryBlogRepository(db),
		repository.NewPhotoRepository(db),
	)
	return svc, db
}

func TestListTemplatesSearchAndPagination(t *testing.T) {
	svc, db := newContentFixture(t)
	ctx := context.Background()

	// 12 published matches, ordered 1..12 by display order
	for i := 1; i <= 12; i++ {
		require.NoError(t, db.Create(&model.Template{
			Title:        fmt.Sprintf("Contract Template %02d", i),
			Description:  "standard terms",
			Price:        decimal.NewFromInt(100),
			Currency:     "INR",
			Status:       model.ContentPublished,
			DisplayOrder: i,
		}).Error)
	}
	// noise that must never appear: draft, deleted, and non-matching
	require.NoError(t, db.Create(&model.Template{
		Title: "Contract Draft", Status: model.ContentDraft,
	}).Error)
	require.NoError(t, db.Create(&model.Template{
		Title: "Contract Removed", Status: model.ContentDeleted,
	}).Error)
	require.NoError(t, db.Create(&model.Template{
		Title: "Partnership Deed", Status: model.ContentPublished,
	}).Error)

	t.Run("page 2 of 12 matches", func(t *testing.T) {
		templates, p, err := svc.ListTemplates(ctx, dto.ListQuery{Search: "contract", Page: 2, Limit: 5})
		require.NoError(t, err)

		assert.Equal(t, dto.Pagination{Page: 2, Limit: 5, Total: 12, Pages: 3}, p)
		require.Len(t, templates, 5)
		// records 6..10 in display order
		for i, tpl := range templates {
			assert.Equal(t, fmt.Sprintf("Contract Template %02d", i+6), tpl.Title)
		}
	})

	t.Run("search is case-insensitive over title and description", func(t *testing.T) {
		templates, p, err := svc.ListTemplates(ctx, dto.ListQuery{Search: "CONTRACT"})
		require.NoError(t, err)
		assert.EqualValues(t, 12, p.Total)

		byDescription, _, err := svc.ListTemplates(ctx, dto.ListQuery{Search: "Standard Terms"})
		require.NoError(t, err)
		assert.Len(t, byDescription, 10) // default limit

		for _, tpl := range templates {
			assert.Equal(t, model.ContentPublished, tpl.Status)
		}
	})

	t.Run("no match", func(t *testing.T) {
		templates, p, err := svc.ListTemplates(ctx, dto.ListQuery{Search: "maritime"})
		require.NoError(t, err)
		assert.Empty(t, templates)
		assert.EqualValues(t, 0, p.Total)
		assert.Equal(t, 0, p.Pages)
	})
}

func TestListTemplatesCategoryFilter(t *testing.T) {
	svc, db := newContentFixture(t)
	ctx := context.Background()

	for _, cat := range []string{"employment", "employment", "property"} {
		require.NoError(t, db.Create(&model.Template{
			Title: cat + " template", Category: cat, Status: model.ContentPublished,
		}).Error)
	}

	templates, p, err := svc.ListTemplates(ctx, dto.ListQuery{Category: "employment"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, p.Total)
	for _, tpl := range templates {
		assert.Equal(t, "employment", tpl.Category)
	}
}

func TestGetTemplateOnlyPublished(t *testing.T) {
	svc, db := newContentFixture(t)
	ctx := context.Background()

	draft := model.Template{Title: "Draft NDA", Status: model.ContentDraft}
	require.NoError(t, db.Create(&draft).Error)

	_, err := svc.GetTemplate(ctx, draft.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestBlogQueries(t *testing.T) {
	svc, _ := newContentFixture(t)
	ctx := context.Background()

	blog := &model.Blog{
		Title:       "Reading the Fine Print",
		Slug:        "reading-the-fine-print",
		Description: "what to look for before signing",
		Tags:        []string{"contracts", "advice"},
		Status:      model.ContentPublished,
	}
	require.NoError(t, svc.CreateBlog(ctx, blog))
	require.NoError(t, svc.CreateBlog(ctx, &model.Blog{
		Title: "Unrelated Post", Slug: "unrelated", Status: model.ContentPublished,
	}))

	t.Run("slug lookup", func(t *testing.T) {
		got, err := svc.GetBlogBySlug(ctx, "reading-the-fine-print")
		require.NoError(t, err)
		assert.Equal(t, blog.ID, got.ID)

		_, err = svc.GetBlogBySlug(ctx, "missing")
		require.Error(t, err)
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})

	t.Run("search matches tags", func(t *testing.T) {
		blogs, p, err := svc.ListBlogs(ctx, dto.ListQuery{Search: "contracts"})
		require.NoError(t, err)
		assert.EqualValues(t, 1, p.Total)
		require.Len(t, blogs, 1)
		assert.Equal(t, blog.ID, blogs[0].ID)
	})

	t.Run("soft delete hides from public reads", func(t *testing.T) {
		require.NoError(t, svc.DeleteBlog(ctx, blog.ID))

		_, err := svc.GetBlogBySlug(ctx, "reading-the-fine-print")
		require.Error(t, err)

		_, p, err := svc.ListBlogs(ctx, dto.ListQuery{})
		require.NoError(t, err)
		assert.EqualValues(t, 1, p.Total)
	})
}

func TestGalleryDisplayOrder(t *testing.T) {
	svc, db := newContentFixture(t)
	ctx := context.Background()

	for i, title := range []string{"third", "first", "second"} {
		order := []int{3, 1, 2}[i]
		require.NoError(t, db.Create(&model.GalleryItem{
			Title: title, ImageURL: "https://cdn.example/" + title + ".jpg",
			Status: model.ContentPublished, DisplayOrder: order,
		}).Error)
	}

	items, _, err := svc.ListGalleryItems(ctx, dto.ListQuery{})
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "first", items[0].Title)
	assert.Equal(t, "second", items[1].Title)
	assert.Equal(t, "third", items[2].Title)
}

func TestContentCreateDefaultsToDraft(t *testing.T) {
	svc, _ := newContentFixture(t)
	ctx := context.Background()

	item := &model.GalleryItem{Title: "New photo", ImageURL: "https://cdn.example/p.jpg"}
	require.NoError(t, svc.CreateGalleryItem(ctx, item))
	assert.Equal(t, model.ContentDraft, item.Status)

	// drafts are invisible publicly until published
	_, p, err := svc.ListGalleryItems(ctx, dto.ListQuery{})
	require.NoError(t, err)
	assert.EqualValues(t, 0, p.Total)

	require.NoError(t, svc.UpdateGalleryItem(ctx, item.ID, &model.GalleryItem{Status: model.ContentPublished}))
	_, p, err = svc.ListGalleryItems(ctx, dto.ListQuery{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, p.Total)
}

func TestContentValidation(t *testing.T) {
	svc, _ := newContentFixture(t)
	ctx := context.Background()

	require.Error(t, svc.CreateTemplate(ctx, &model.Template{}))
	require.Error(t, svc.CreateGalleryItem(ctx, &model.GalleryItem{Title: "no image"}))
	require.Error(t, svc.CreatePhoto(ctx, &model.ThoughtLeadershipPhoto{}))

	err := svc.DeleteTemplate(ctx, 404)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
