package handler

import (
	"net/http"
	"strconv"

	"lawsite-api/internal/apperr"
	"lawsite-api/internal/dto"
	"lawsite-api/internal/middleware"
	"lawsite-api/internal/service"

	"github.com/labstack/echo/v4"
)

type AdminHandler struct {
	adminService service.AdminService
}

func NewAdminHandler(adminService service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// Bootstrap creates the very first super-admin. The store-level singleton
// guard (not this handler) is what makes it single-shot.
func (h *AdminHandler) Bootstrap(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.BootstrapRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validationf("invalid request body")
	}

	admin, err := h.adminService.CreateFirstAdmin(ctx, req.Email, req.Password, req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, admin)
}

func (h *AdminHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validationf("invalid request body")
	}

	token, admin, err := h.adminService.Login(ctx, req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.LoginResponse{Token: token, Admin: admin})
}

func (h *AdminHandler) CreateAdmin(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CreateAdminRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validationf("invalid request body")
	}

	admin, err := h.adminService.CreateAdmin(ctx, middleware.AdminID(c), &req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, admin)
}

func (h *AdminHandler) ListAdmins(c echo.Context) error {
	ctx := c.Request().Context()

	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	admins, total, err := h.adminService.ListAdmins(ctx, page, limit)
	if err != nil {
		return err
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return c.JSON(http.StatusOK, dto.ListResponse{
		Data:       admins,
		Pagination: dto.NewPagination(page, limit, total),
	})
}

func (h *AdminHandler) DeactivateAdmin(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return apperr.Validationf("invalid admin id")
	}

	if err := h.adminService.DeactivateAdmin(ctx, uint(id)); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "deactivated"})
}
