package server

import (
	"net/http"

	"lawsite-api/internal/apperr"
	"lawsite-api/internal/handler"
	mw "lawsite-api/internal/middleware"
	"lawsite-api/internal/model"
	"lawsite-api/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	echo           *echo.Echo
	adminHandler   *handler.AdminHandler
	contentHandler *handler.ContentHandler
	paymentHandler *handler.PaymentHandler
	jwtSecret      string
}

func NewServer(
	adminService service.AdminService,
	contentService service.ContentService,
	paymentService service.PaymentService,
	jwtSecret, baseURL string,
) *Server {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{
		echo:           e,
		adminHandler:   handler.NewAdminHandler(adminService),
		contentHandler: handler.NewContentHandler(contentService),
		paymentHandler: handler.NewPaymentHandler(paymentService, baseURL),
		jwtSecret:      jwtSecret,
	}

	e.HTTPErrorHandler = s.handleError
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	// -------- public content --------
	api.GET("/templates", s.contentHandler.ListTemplates)
	api.GET("/templates/:id", s.contentHandler.GetTemplate)
	api.GET("/blogs", s.contentHandler.ListBlogs)
	api.GET("/blogs/:id", s.contentHandler.GetBlog)
	api.GET("/blogs/slug/:slug", s.contentHandler.GetBlogBySlug)
	api.GET("/gallery", s.contentHandler.ListGalleryItems)
	api.GET("/gallery/:id", s.contentHandler.GetGalleryItem)
	api.GET("/gallery-blogs", s.contentHandler.ListGalleryBlogs)
	api.GET("/gallery-blogs/:id", s.contentHandler.GetGalleryBlog)
	api.GET("/photos", s.contentHandler.ListPhotos)

	// -------- checkout / payments --------
	api.POST("/orders", s.paymentHandler.Checkout)
	api.GET("/payment/callback", s.paymentHandler.Callback)
	api.GET("/payment/verify", s.paymentHandler.Verify)
	api.POST("/payment/webhook", s.paymentHandler.Webhook)

	// -------- admin console --------
	admin := api.Group("/admin")
	admin.POST("/bootstrap", s.adminHandler.Bootstrap)
	admin.POST("/login", s.adminHandler.Login)

	authed := admin.Group("", mw.JWT(s.jwtSecret))

	super := authed.Group("/admins", mw.RequireRole(model.RoleSuperAdmin))
	super.GET("", s.adminHandler.ListAdmins)
	super.POST("", s.adminHandler.CreateAdmin)
	super.DELETE("/:id", s.adminHandler.DeactivateAdmin)

	editors := authed.Group("", mw.RequireRole(model.RoleAdmin))
	editors.POST("/templates", s.contentHandler.CreateTemplate)
	editors.PUT("/templates/:id", s.contentHandler.UpdateTemplate)
	editors.DELETE("/templates/:id", s.contentHandler.DeleteTemplate)
	editors.POST("/blogs", s.contentHandler.CreateBlog)
	editors.PUT("/blogs/:id", s.contentHandler.UpdateBlog)
	editors.DELETE("/blogs/:id", s.contentHandler.DeleteBlog)
	editors.POST("/gallery", s.contentHandler.CreateGalleryItem)
	editors.PUT("/gallery/:id", s.contentHandler.UpdateGalleryItem)
	editors.DELETE("/gallery/:id", s.contentHandler.DeleteGalleryItem)
	editors.POST("/gallery-blogs", s.contentHandler.CreateGalleryBlog)
	editors.PUT("/gallery-blogs/:id", s.contentHandler.UpdateGalleryBlog)
	editors.DELETE("/gallery-blogs/:id", s.contentHandler.DeleteGalleryBlog)
	editors.POST("/photos", s.contentHandler.CreatePhoto)
	editors.PUT("/photos/:id", s.contentHandler.UpdatePhoto)
	editors.DELETE("/photos/:id", s.contentHandler.DeletePhoto)
}

// handleError maps the apperr taxonomy to status codes. Internal detail is
// only logged; the client sees a generic message.
func (s *Server) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	if he, ok := err.(*echo.HTTPError); ok {
		_ = c.JSON(he.Code, map[string]interface{}{"error": he.Message})
		return
	}

	status := apperr.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		c.Logger().Error(err)
	}
	_ = c.JSON(status, map[string]string{"error": apperr.Message(err)})
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}

// Echo exposes the router for tests.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}
