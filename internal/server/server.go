package server

import (
	"context"
	"net/http"

	"circula/internal/auth"
	"circula/internal/handler"
	authmw "circula/internal/middleware"
	"circula/internal/repository"
	"circula/internal/service"
	"circula/internal/storage"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"
)

// Services groups what the HTTP layer calls into.
type Services struct {
	User      service.UserService
	Category  service.CategoryService
	Item      service.ItemService
	Wishlist  service.WishlistService
	Order     service.OrderService
	Payment   service.PaymentService
	Card      service.CardService
	Feedback  service.FeedbackService
	Purchase  service.PurchaseService
	Dashboard service.DashboardService
}

type Server struct {
	echo   *echo.Echo
	logger *logrus.Logger

	requireAuth  echo.MiddlewareFunc
	requireAdmin []echo.MiddlewareFunc

	userHandler     *handler.UserHandler
	categoryHandler *handler.CategoryHandler
	itemHandler     *handler.ItemHandler
	wishlistHandler *handler.WishlistHandler
	orderHandler    *handler.OrderHandler
	cardHandler     *handler.CardHandler
	feedbackHandler *handler.FeedbackHandler
	adminHandler    *handler.AdminHandler
}

func NewServer(
	services Services,
	tokens auth.TokenManager,
	customerRepo repository.CustomerRepository,
	uploadDir string,
	logger *logrus.Logger,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = handler.ErrorHandler(logger)

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return ulid.Make().String() },
	}))
	e.Use(requestLogger(logger))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit("12M"))

	e.Static(storage.URLPrefix, uploadDir)

	requireAuth := authmw.AuthMiddleware(tokens)

	s := &Server{
		echo:            e,
		logger:          logger,
		requireAuth:     requireAuth,
		requireAdmin:    []echo.MiddlewareFunc{requireAuth, authmw.RequireAdmin(customerRepo)},
		userHandler:     handler.NewUserHandler(services.User),
		categoryHandler: handler.NewCategoryHandler(services.Category),
		itemHandler:     handler.NewItemHandler(services.Item),
		wishlistHandler: handler.NewWishlistHandler(services.Wishlist),
		orderHandler:    handler.NewOrderHandler(services.Order, services.Payment),
		cardHandler:     handler.NewCardHandler(services.Card),
		feedbackHandler: handler.NewFeedbackHandler(services.Feedback),
		adminHandler:    handler.NewAdminHandler(services.Purchase, services.Dashboard),
	}

	s.setupRoutes()
	return s
}

func requestLogger(logger *logrus.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			entry := logger.WithFields(logrus.Fields{
				"method":     v.Method,
				"uri":        v.URI,
				"status":     v.Status,
				"latency":    v.Latency.String(),
				"request_id": v.RequestID,
			})
			if v.Error != nil && v.Status >= http.StatusInternalServerError {
				entry.WithError(v.Error).Error("request failed")
				return nil
			}
			entry.Info("request")
			return nil
		},
	})
}

func (s *Server) setupRoutes() {
	authed := s.requireAuth
	admin := s.requireAdmin

	s.echo.POST("/signup", s.userHandler.Signup)
	s.echo.POST("/login", s.userHandler.Login)

	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// -------- accounts --------
	api.POST("/logout", s.userHandler.Logout, authed)
	api.GET("/profile", s.userHandler.GetProfile, authed)
	api.PUT("/profile", s.userHandler.UpdateProfile, authed)
	api.GET("/users", s.userHandler.ListUsers, admin...)
	api.PUT("/users/:id/status", s.userHandler.UpdateUserStatus, admin...)

	// -------- categories --------
	api.GET("/categories", s.categoryHandler.ListCategories)
	api.POST("/categories", s.categoryHandler.CreateCategory, admin...)
	api.PUT("/categories/:id", s.categoryHandler.UpdateCategory, admin...)
	api.DELETE("/categories/:id", s.categoryHandler.DeleteCategory, admin...)
	api.GET("/subcategories/:categoryId", s.categoryHandler.ListSubcategories)
	api.POST("/subcategories", s.categoryHandler.CreateSubcategory, admin...)
	api.PUT("/subcategories/:id", s.categoryHandler.UpdateSubcategory, admin...)
	api.DELETE("/subcategories/:id", s.categoryHandler.DeleteSubcategory, admin...)

	// -------- items --------
	api.POST("/items", s.itemHandler.CreateItem, authed)
	api.GET("/items", s.itemHandler.ListItems, authed)
	api.GET("/items/:id", s.itemHandler.GetItem)
	api.DELETE("/items/:id", s.itemHandler.DeleteItem, authed)
	api.GET("/users/:id/items", s.itemHandler.ListUserItems, authed)
	api.GET("/user/products", s.itemHandler.ListProducts, authed)
	api.PUT("/products/:id", s.itemHandler.UpdateProduct, authed)
	api.DELETE("/products/:id", s.itemHandler.DeleteProduct, authed)

	// -------- wishlist --------
	api.GET("/wishlist", s.wishlistHandler.GetWishlist, authed)
	api.POST("/wishlist/toggle", s.wishlistHandler.Toggle, authed)
	api.GET("/wishlist/items", s.wishlistHandler.GetWishlistItems, authed)

	// -------- orders / payments --------
	api.POST("/orders", s.orderHandler.CreateOrder, authed)
	api.GET("/orders/:orderId", s.orderHandler.GetOrder, authed)
	api.POST("/payments", s.orderHandler.Pay, authed)
	api.GET("/user/purchased", s.orderHandler.Purchased, authed)
	api.GET("/user/sold", s.orderHandler.Sold, authed)

	api.GET("/user/card", s.cardHandler.GetCard, authed)
	api.POST("/user/card", s.cardHandler.SaveCard, authed)
	api.PUT("/user/card", s.cardHandler.UpdateCard, authed)
	api.DELETE("/user/card", s.cardHandler.DeleteCard, authed)

	// -------- feedback --------
	api.POST("/feedback", s.feedbackHandler.Submit, authed)
	api.GET("/feedbacks", s.feedbackHandler.List, admin...)

	// -------- admin --------
	api.GET("/purchases", s.adminHandler.ListPurchases, admin...)
	api.GET("/purchases/metrics", s.adminHandler.PurchaseMetrics, admin...)
	api.GET("/purchases/export/pdf", s.adminHandler.ExportPurchasesPDF, admin...)
	api.GET("/purchases/:id", s.adminHandler.GetPurchase, admin...)
	api.PUT("/purchases/:id/status", s.adminHandler.UpdatePurchaseStatus, admin...)

	api.GET("/dashboard/metrics", s.adminHandler.DashboardMetrics, admin...)
	api.GET("/admin/dashboard-stats", s.adminHandler.DashboardStats, admin...)
	api.GET("/admin/sales-data", s.adminHandler.SalesData, admin...)
	api.GET("/top-sellers", s.adminHandler.TopSellers, admin...)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

func (s *Server) Start(address string) error {
	s.logger.WithField("address", address).Info("starting HTTP server")
	return s.echo.Start(address)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
