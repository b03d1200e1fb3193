package httpserver

import (
	"context"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ritu-rajkumar/Ri-Eat/internal/domain"
	analyticsrepo "github.com/ritu-rajkumar/Ri-Eat/internal/repository/analytics"
	adminsvc "github.com/ritu-rajkumar/Ri-Eat/internal/service/admin"
	customersvc "github.com/ritu-rajkumar/Ri-Eat/internal/service/customer"
	feedbacksvc "github.com/ritu-rajkumar/Ri-Eat/internal/service/feedback"
	menusvc "github.com/ritu-rajkumar/Ri-Eat/internal/service/menu"
	ordersvc "github.com/ritu-rajkumar/Ri-Eat/internal/service/order"
	rewardsvc "github.com/ritu-rajkumar/Ri-Eat/internal/service/reward"
)

// Deps carries the services the router exposes.
type Deps struct {
	Customers customerService
	Menu      menuService
	Orders    orderService
	Rewards   rewardService
	Feedback  feedbackService
	Analytics analyticsService
	Admins    adminService
}

type customerService interface {
	Create(ctx context.Context, in customersvc.CreateInput) (*domain.Customer, error)
	Get(ctx context.Context, id string) (*domain.Customer, error)
	List(ctx context.Context, query, sort string) ([]domain.Customer, error)
	Update(ctx context.Context, id string, in customersvc.UpdateInput) (*domain.Customer, error)
	Delete(ctx context.Context, id string) error
}

type menuService interface {
	Create(ctx context.Context, in menusvc.Input) (*domain.MenuItem, error)
	Get(ctx context.Context, id string) (*domain.MenuItem, error)
	List(ctx context.Context) ([]domain.MenuItem, error)
	ListPublic(ctx context.Context) ([]domain.MenuItem, error)
	Update(ctx context.Context, id string, in menusvc.Input) (*domain.MenuItem, error)
	Delete(ctx context.Context, id string) error
}

type orderService interface {
	Create(ctx context.Context, in ordersvc.Input) (*domain.Order, error)
	Get(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context, customerID string) ([]domain.Order, error)
	Update(ctx context.Context, id string, in ordersvc.Input) (*domain.Order, error)
	Delete(ctx context.Context, id string) error
}

type rewardService interface {
	Lookup(ctx context.Context, code string) (*rewardsvc.Snapshot, error)
	Submit(ctx context.Context, in rewardsvc.SubmitInput) (*domain.RewardClaim, error)
	Complete(ctx context.Context, id string, nextTargetOrders int) (*domain.RewardClaim, error)
	GetClaim(ctx context.Context, id string) (*domain.RewardClaim, error)
	ListClaims(ctx context.Context, status, customerID string) ([]domain.RewardClaim, error)
}

type feedbackService interface {
	Create(ctx context.Context, in feedbacksvc.Input) (*domain.Feedback, error)
	List(ctx context.Context) ([]domain.Feedback, error)
}

type analyticsService interface {
	TopItems(ctx context.Context) ([]analyticsrepo.TopItem, error)
	Summary(ctx context.Context) (*analyticsrepo.Summary, error)
	SalesDaily(ctx context.Context, days int) ([]analyticsrepo.DailySales, error)
	TopCustomers(ctx context.Context, limit int) ([]analyticsrepo.TopCustomer, error)
}

type adminService interface {
	Login(ctx context.Context, username, password string) (*adminsvc.Session, error)
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (*domain.Admin, error)
	ChangePassword(ctx context.Context, adminID, current, next string) error
	ForgotPassword(ctx context.Context, username string) error
	ResetPassword(ctx context.Context, token, next string) error
}

// buildRouter wires all API routes.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
	}))
	router.Use(tracingMiddleware())

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	a := &api{deps: deps, logger: logger}

	public := router.Group("/api")
	{
		public.POST("/admin/login", a.login)
		public.POST("/admin/forgot-password", a.forgotPassword)
		public.POST("/admin/reset-password", a.resetPassword)

		public.GET("/menu/public", a.listPublicMenu)
		public.GET("/loyalty/:customerId", a.loyaltyLookup)
		public.POST("/loyalty/claim", a.submitClaim)
		public.POST("/feedback", a.createFeedback)
	}

	authed := router.Group("/api", authMiddleware(deps.Admins))
	{
		authed.POST("/admin/logout", a.logout)
		authed.POST("/settings/change-password", a.changePassword)

		authed.GET("/menu", a.listMenu)
		authed.GET("/menu/:id", a.getMenuItem)
		authed.POST("/menu", a.createMenuItem)
		authed.PUT("/menu/:id", a.updateMenuItem)
		authed.DELETE("/menu/:id", a.deleteMenuItem)

		authed.GET("/customers", a.listCustomers)
		authed.GET("/customers/:id", a.getCustomer)
		authed.GET("/customers/:id/orders", a.listCustomerOrders)
		authed.POST("/customers", a.createCustomer)
		authed.PUT("/customers/:id", a.updateCustomer)
		authed.DELETE("/customers/:id", a.deleteCustomer)

		authed.GET("/orders", a.listOrders)
		authed.GET("/orders/:id", a.getOrder)
		authed.POST("/orders", a.createOrder)
		authed.PUT("/orders/:id", a.updateOrder)
		authed.DELETE("/orders/:id", a.deleteOrder)

		authed.GET("/reward-claims", a.listClaims)
		authed.GET("/reward-claims/:id", a.getClaim)
		authed.PATCH("/reward-claims/:id/complete", a.completeClaim)

		authed.GET("/feedback", a.listFeedback)

		authed.GET("/analytics/top-items", a.topItems)
		authed.GET("/analytics/summary", a.summary)
		authed.GET("/analytics/sales-daily", a.salesDaily)
		authed.GET("/analytics/top-customers", a.topCustomers)
	}

	return router
}

type api struct {
	deps   Deps
	logger *log.Logger
}
