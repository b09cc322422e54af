package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"clinicbook/config"
	"clinicbook/handlers"
	"clinicbook/middleware"
)

// Handlers bundles the constructed handlers for route registration.
type Handlers struct {
	Public       *handlers.PublicHandler
	Appointment  *handlers.AppointmentHandler
	Schedule     *handlers.ScheduleHandler
	Notification *handlers.NotificationHandler
}

// RegisterPublicRoutes registers the unauthenticated endpoints, rate limited
// per client IP.
func RegisterPublicRoutes(r *gin.Engine, h *Handlers) {
	publicLimiter := middleware.RateLimitMiddleware("public", config.AppConfig.RateLimitPerMin)

	api := r.Group("/api/public")
	{
		api.Use(publicLimiter)
		api.GET("/availability", h.Public.GetAvailability)
		api.POST("/appointments", h.Public.CreateAppointment)
	}

	notifications := r.Group("/api/notifications")
	{
		notifications.Use(publicLimiter)
		notifications.POST("/telegram", h.Notification.SendTelegram)
	}
}

// RegisterAuthRoutes registers the admin login endpoint behind a stricter
// limiter.
func RegisterAuthRoutes(r *gin.Engine) {
	api := r.Group("/api/auth")
	{
		api.Use(middleware.RateLimitMiddleware("login", config.AppConfig.LoginRateLimitPerMin))
		api.POST("/login", handlers.Login)
	}
}

// RegisterAdminRoutes registers appointment CRUD and schedule management,
// all behind admin JWT auth.
func RegisterAdminRoutes(r *gin.Engine, h *Handlers) {
	appointments := r.Group("/api/appointments")
	{
		appointments.Use(middleware.JWTAuthAdminMiddleware())
		appointments.GET("", h.Appointment.List)
		appointments.POST("", h.Appointment.Create)
		appointments.PUT("/:id", h.Appointment.Update)
		appointments.DELETE("/:id", h.Appointment.Delete)
	}

	schedule := r.Group("/api/schedule")
	{
		schedule.Use(middleware.JWTAuthAdminMiddleware())
		schedule.GET("", h.Schedule.Get)
		schedule.PUT("", h.Schedule.Put)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.Health)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, h *Handlers) {
	origins := []string{"*"}
	if config.AppConfig.CORSOrigin != "" && config.AppConfig.CORSOrigin != "*" {
		origins = []string{config.AppConfig.CORSOrigin}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r)
	RegisterPublicRoutes(r, h)
	RegisterAdminRoutes(r, h)
}
