package handler

import (
	"net/http"
	"strconv"

	"lawsite-api/internal/apperr"
	"lawsite-api/internal/dto"
	"lawsite-api/internal/model"
	"lawsite-api/internal/service"

	"github.com/labstack/echo/v4"
)

type ContentHandler struct {
	contentService service.ContentService
}

func NewContentHandler(contentService service.ContentService) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

func bindListQuery(c echo.Context) (dto.ListQuery, error) {
	var q dto.ListQuery
	if err := c.Bind(&q); err != nil {
		return q, apperr.Validationf("invalid query parameters")
	}
	return q, nil
}

func pathID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, apperr.Validationf("invalid id")
	}
	return uint(id), nil
}

// -------- templates --------

func (h *ContentHandler) ListTemplates(c echo.Context) error {
	q, err := bindListQuery(c)
	if err != nil {
		return err
	}
	templates, p, err := h.contentService.ListTemplates(c.Request().Context(), q)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.ListResponse{Data: templates, Pagination: p})
}

func (h *ContentHandler) GetTemplate(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	t, err := h.contentService.GetTemplate(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, t)
}

func (h *ContentHandler) CreateTemplate(c echo.Context) error {
	var t model.Template
	if err := c.Bind(&t); err != nil {
		return apperr.Validationf("invalid request body")
	}
	if err := h.contentService.CreateTemplate(c.Request().Context(), &t); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, t)
}

func (h *ContentHandler) UpdateTemplate(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var t model.Template
	if err := c.Bind(&t); err != nil {
		return apperr.Validationf("invalid request body")
	}
	if err := h.contentService.UpdateTemplate(c.Request().Context(), id, &t); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "updated"})
}

func (h *ContentHandler) DeleteTemplate(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.contentService.DeleteTemplate(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "deleted"})
}

// -------- blogs --------

func (h *ContentHandler) ListBlogs(c echo.Context) error {
	q, err := bindListQuery(c)
	if err != nil {
		return err
	}
	blogs, p, err := h.contentService.ListBlogs(c.Request().Context(), q)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.ListResponse{Data: blogs, Pagination: p})
}

func (h *ContentHandler) GetBlog(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	b, err := h.contentService.GetBlog(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, b)
}

func (h *ContentHandler) GetBlogBySlug(c echo.Context) error {
	b, err := h.contentService.GetBlogBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, b)
}

func (h *ContentHandler) CreateBlog(c echo.Context) error {
	var b model.Blog
	if err := c.Bind(&b); err != nil {
		return apperr.Validationf("invalid request body")
	}
	if err := h.contentService.CreateBlog(c.Request().Context(), &b); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, b)
}

func (h *ContentHandler) UpdateBlog(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var b model.Blog
	if err := c.Bind(&b); err != nil {
		return apperr.Validationf("invalid request body")
	}
	if err := h.contentService.UpdateBlog(c.Request().Context(), id, &b); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "updated"})
}

func (h *ContentHandler) DeleteBlog(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.contentService.DeleteBlog(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "deleted"})
}

// -------- gallery items --------

func (h *ContentHandler) ListGalleryItems(c echo.Context) error {
	q, err := bindListQuery(c)
	if err != nil {
		return err
	}
	items, p, err := h.contentService.ListGalleryItems(c.Request().Context(), q)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.ListResponse{Data: items, Pagination: p})
}

func (h *ContentHandler) GetGalleryItem(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	item, err := h.contentService.GetGalleryItem(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

func (h *ContentHandler) CreateGalleryItem(c echo.Context) error {
	var item model.GalleryItem
	if err := c.Bind(&item); err != nil {
		return apperr.Validationf("invalid request body")
	}
	if err := h.contentService.CreateGalleryItem(c.Request().Context(), &item); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, item)
}

func (h *ContentHandler) UpdateGalleryItem(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var item model.GalleryItem
	if err := c.Bind(&item); err != nil {
		return apperr.Validationf("invalid request body")
	}
	if err := h.contentService.UpdateGalleryItem(c.Request().Context(), id, &item); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "updated"})
}

func (h *ContentHandler) DeleteGalleryItem(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.contentService.DeleteGalleryItem(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "deleted"})
}

// -------- gallery blogs --------

func (h *ContentHandler) ListGalleryBlogs(c echo.Context) error {
	q, err := bindListQuery(c)
	if err != nil {
		return err
	}
	blogs, p, err := h.contentService.ListGalleryBlogs(c.Request().Context(), q)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.ListResponse{Data: blogs, Pagination: p})
}

func (h *ContentHandler) GetGalleryBlog(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	b, err := h.contentService.GetGalleryBlog(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, b)
}

func (h *ContentHandler) CreateGalleryBlog(c echo.Context) error {
	var b model.GalleryBlog
	if err := c.Bind(&b); err != nil {
		return apperr.Validationf("invalid request body")
	}
	if err := h.contentService.CreateGalleryBlog(c.Request().Context(), &b); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, b)
}

func (h *ContentHandler) UpdateGalleryBlog(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var b model.GalleryBlog
	if err := c.Bind(&b); err != nil {
		return apperr.Validationf("invalid request body")
	}
	if err := h.contentService.UpdateGalleryBlog(c.Request().Context(), id, &b); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "updated"})
}

func (h *ContentHandler) DeleteGalleryBlog(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.contentService.DeleteGalleryBlog(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "deleted"})
}

// -------- thought leadership photos --------

func (h *ContentHandler) ListPhotos(c echo.Context) error {
	q, err := bindListQuery(c)
	if err != nil {
		return err
	}
	photos, p, err := h.contentService.ListPhotos(c.Request().Context(), q)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.ListResponse{Data: photos, Pagination: p})
}

func (h *ContentHandler) CreatePhoto(c echo.Context) error {
	var p model.ThoughtLeadershipPhoto
	if err := c.Bind(&p); err != nil {
		return apperr.Validationf("invalid request body")
	}
	if err := h.contentService.CreatePhoto(c.Request().Context(), &p); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *ContentHandler) UpdatePhoto(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var p model.ThoughtLeadershipPhoto
	if err := c.Bind(&p); err != nil {
		return apperr.Validationf("invalid request body")
	}
	if err := h.contentService.UpdatePhoto(c.Request().Context(), id, &p); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "updated"})
}

func (h *ContentHandler) DeletePhoto(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.contentService.DeletePhoto(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "deleted"})
}
