package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rentalhub/internal/access"
	"rentalhub/internal/middleware"
	"rentalhub/internal/modules/auth"
	"rentalhub/internal/modules/catalog"
	"rentalhub/internal/modules/customer"
	"rentalhub/internal/modules/dashboard"
	"rentalhub/internal/modules/finance"
	"rentalhub/internal/modules/maintenance"
	"rentalhub/internal/modules/rental"
	jwtsvc "rentalhub/internal/pkg/jwt"
	"rentalhub/internal/pkg/ratelimit"
	"rentalhub/internal/pkg/response"
	"rentalhub/internal/pkg/validator"
	"rentalhub/internal/repository"
)

type Deps struct {
	Store       *repository.Store
	Tokens      *jwtsvc.Service
	Limiter     ratelimit.Limiter
	CORSOrigins []string
}

// NewRouter wires every module onto one engine. Permission guards sit on
// the groups, so handlers only see callers already allowed in.
func NewRouter(d Deps) *gin.Engine {
	validator.Setup()

	limiter := d.Limiter
	if limiter == nil {
		limiter = ratelimit.Disabled{}
	}

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.ErrorLogger(),
		middleware.CORS(d.CORSOrigins),
	)

	r.GET("/health", func(c *gin.Context) {
		if err := d.Store.Ping(c.Request.Context()); err != nil {
			response.Error(c, http.StatusServiceUnavailable, "database unavailable")
			return
		}
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	authHandler := auth.NewHandler(auth.NewService(d.Store.Users(), d.Tokens))
	catalogHandler := catalog.NewHandler(catalog.NewService(d.Store))
	customerHandler := customer.NewHandler(customer.NewService(d.Store))
	rentalHandler := rental.NewHandler(rental.NewService(d.Store))
	maintenanceHandler := maintenance.NewHandler(maintenance.NewService(d.Store))
	financeService := finance.NewService(d.Store)
	financeHandler := finance.NewHandler(financeService)
	dashboardHandler := dashboard.NewHandler(dashboard.NewService(d.Store, financeService))

	v1 := r.Group("/api/v1")
	{
		authHandler.RegisterPublicRoutes(v1, middleware.LoginThrottle(limiter))

		protected := v1.Group("")
		protected.Use(middleware.JWTAuth(d.Tokens))
		{
			authHandler.RegisterProtectedRoutes(protected)
			authHandler.RegisterAdminRoutes(guarded(protected, access.UserManage))

			catalogHandler.RegisterRoutes(guarded(protected, access.InventoryManage))
			customerHandler.RegisterRoutes(guarded(protected, access.CustomerManage))
			rentalHandler.RegisterRoutes(guarded(protected, access.RentalManage))
			maintenanceHandler.RegisterRoutes(guarded(protected, access.MaintenanceManage))
			financeHandler.RegisterRoutes(guarded(protected, access.FinanceManage))

			dashboardHandler.RegisterRoutes(protected)
		}
	}

	return r
}

func guarded(rg *gin.RouterGroup, p access.Permission) *gin.RouterGroup {
	return rg.Group("", middleware.RequirePermission(p))
}
