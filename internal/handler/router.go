package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"barbershop-api/internal/domain/user"
	"barbershop-api/internal/handler/api"
	"barbershop-api/internal/handler/middleware"
	"barbershop-api/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, authHandler *api.AuthHandler, appointmentHandler *api.AppointmentHandler, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, appointmentHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, authHandler *api.AuthHandler, appointmentHandler *api.AppointmentHandler, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: authHandler.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		appointments := apiGroup.Group("/appointments")
		appointments.Use(authMiddleware.RequireAuth())
		{
			receptionist := authMiddleware.RequireRoleAtLeast(user.RoleReceptionist)
			addRoutes(appointments, []route{
				{Method: http.MethodPost, Path: "", Handler: appointmentHandler.CreateAppointment, Mw: []gin.HandlerFunc{receptionist}},
				{Method: http.MethodGet, Path: "/:id", Handler: appointmentHandler.GetAppointment},
				{Method: http.MethodPost, Path: "/:id/confirm", Handler: appointmentHandler.ConfirmAppointment, Mw: []gin.HandlerFunc{receptionist}},
				{Method: http.MethodPost, Path: "/:id/start", Handler: appointmentHandler.StartAppointment},
				{Method: http.MethodPost, Path: "/:id/complete", Handler: appointmentHandler.CompleteAppointment},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: appointmentHandler.CancelAppointment, Mw: []gin.HandlerFunc{receptionist}},
				{Method: http.MethodPost, Path: "/:id/no-show", Handler: appointmentHandler.MarkNoShow, Mw: []gin.HandlerFunc{receptionist}},
				{Method: http.MethodPost, Path: "/:id/reschedule", Handler: appointmentHandler.RescheduleAppointment, Mw: []gin.HandlerFunc{receptionist}},
			})
		}

		clients := apiGroup.Group("/clients")
		clients.Use(authMiddleware.RequireAuth())
		{
			addRoutes(clients, []route{
				{Method: http.MethodGet, Path: "/:id/appointments", Handler: appointmentHandler.ListClientAppointments},
			})
		}

		barbers := apiGroup.Group("/barbers")
		barbers.Use(authMiddleware.RequireAuth())
		{
			addRoutes(barbers, []route{
				{Method: http.MethodGet, Path: "/:id/appointments", Handler: appointmentHandler.ListBarberAppointments},
				{Method: http.MethodGet, Path: "/:id/availability", Handler: appointmentHandler.GetBarberAvailability},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
