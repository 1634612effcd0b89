package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	"github.com/BruksfildServices01/barbershop-booking/internal/auth"
	"github.com/BruksfildServices01/barbershop-booking/internal/config"
	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/handlers"
	"github.com/BruksfildServices01/barbershop-booking/internal/infra/avatar"
	"github.com/BruksfildServices01/barbershop-booking/internal/infra/lock"
	"github.com/BruksfildServices01/barbershop-booking/internal/infra/session"
	"github.com/BruksfildServices01/barbershop-booking/internal/metrics"
	"github.com/BruksfildServices01/barbershop-booking/internal/middleware"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
	ucAppointment "github.com/BruksfildServices01/barbershop-booking/internal/usecase/appointment"
)

// Deps são os singletons montados no main (ou nos testes).
type Deps struct {
	Config *config.Config
	Policy domain.Policy
	Now    func() time.Time

	Appointments domain.Repository
	Users        handlers.UserStore
	Services     handlers.ServiceStore
	AuditLogs    handlers.AuditStore

	Audit     *audit.Dispatcher
	Locker    lock.Locker
	Blacklist session.Blacklist
	Avatars   avatar.Store
	Metrics   *metrics.Metrics

	// nil usa a checagem de DNS padrão
	EmailDomainOK func(email string) bool
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Config

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestID())
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins...))
	if d.Metrics != nil {
		r.Use(d.Metrics.Middleware())
	}
	r.Use(middleware.Timeout(cfg.RequestTimeout))

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	issuer := auth.NewIssuer(cfg.JWTSecret, cfg.JWTTTL)
	loginLimiter := middleware.NewRateLimiter(cfg.LoginRatePerMinute, 0)

	// ======================================================
	// 🧠 USE CASES (APPOINTMENTS)
	// ======================================================
	bookUC := ucAppointment.NewBookAppointment(
		d.Appointments,
		d.Locker,
		d.Audit,
		d.Policy,
		d.Now,
	)
	availabilityUC := ucAppointment.NewGetAvailability(d.Appointments, d.Policy, d.Now)
	changeStatusUC := ucAppointment.NewChangeStatus(d.Appointments, d.Audit)
	deleteUC := ucAppointment.NewDeleteAppointment(d.Appointments, d.Audit)
	listUC := ucAppointment.NewListAppointments(d.Appointments)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(d.Users, issuer, d.Blacklist, d.Audit)
	if d.EmailDomainOK != nil {
		authHandler.EmailDomainOK = d.EmailDomainOK
	}
	userHandler := handlers.NewUserHandler(d.Users, d.Avatars, d.Audit)
	serviceHandler := handlers.NewServiceHandler(d.Services, d.Audit)
	appointmentHandler := handlers.NewAppointmentHandler(
		bookUC,
		availabilityUC,
		changeStatusUC,
		deleteUC,
		listUC,
		d.Policy.Zone,
		d.Metrics,
	)
	auditLogsHandler := handlers.NewAuditLogsHandler(d.AuditLogs, d.Policy.Zone)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if d.Metrics != nil {
		r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))
	}

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 PÚBLICO
		// ------------------------------
		api.POST("/auth/register", loginLimiter.Middleware(), authHandler.Register)
		api.POST("/auth/login", loginLimiter.Middleware(), authHandler.Login)

		api.GET("/services", serviceHandler.List)
		api.GET("/users/barbers", userHandler.ListBarbers)
		api.GET("/barbers/:barberId/services/:serviceId/availability", appointmentHandler.Availability)

		// ------------------------------
		// 🔐 PRIVADO
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(issuer, d.Blacklist))
		{
			secured.POST("/auth/logout", authHandler.Logout)

			secured.GET("/me", userHandler.GetMe)
			secured.PUT("/me", userHandler.UpdateMe)
			secured.DELETE("/me", userHandler.DeleteMe)
			secured.PUT("/me/avatar", userHandler.UploadAvatar)

			secured.GET("/users/:id", userHandler.GetByID)
			secured.PATCH("/users/:id/role", middleware.RequireRole(models.RoleAdmin), userHandler.SetRole)

			secured.POST("/services", middleware.RequireRole(models.RoleAdmin), serviceHandler.Create)
			secured.DELETE("/services/:id", middleware.RequireRole(models.RoleAdmin), serviceHandler.Delete)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/barbers/:barberId/services/:serviceId/appointments", appointmentHandler.Create)
			secured.GET("/appointments", appointmentHandler.ListAll)
			secured.GET("/appointments/barber", appointmentHandler.ListForBarber)
			secured.GET("/appointments/client", appointmentHandler.ListForClient)
			secured.GET("/appointments/:id", appointmentHandler.GetByID)
			secured.PATCH("/appointments/:id", appointmentHandler.ChangeStatus)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)

			secured.GET("/audit-logs", middleware.RequireRole(models.RoleAdmin), auditLogsHandler.List)
		}
	}
}
