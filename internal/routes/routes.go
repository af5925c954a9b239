package routes

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/appsalute/clinic-booking/internal/audit"
	"github.com/appsalute/clinic-booking/internal/config"
	dbpkg "github.com/appsalute/clinic-booking/internal/db"
	"github.com/appsalute/clinic-booking/internal/handlers"
	"github.com/appsalute/clinic-booking/internal/httperr"
	infraRepo "github.com/appsalute/clinic-booking/internal/infra/repository"
	"github.com/appsalute/clinic-booking/internal/middleware"
	"github.com/appsalute/clinic-booking/internal/session"
	"github.com/appsalute/clinic-booking/internal/storage"
	"github.com/appsalute/clinic-booking/internal/timezone"
	ucAuth "github.com/appsalute/clinic-booking/internal/usecase/auth"
	ucBooking "github.com/appsalute/clinic-booking/internal/usecase/booking"
	"github.com/appsalute/clinic-booking/internal/validators"
)

// NewRouter builds the engine with the global middleware, health check and API routes.
// The returned func flushes pending audit events and must be called on shutdown.
func NewRouter(db *gorm.DB, cfg *config.Config, store session.Store) (*gin.Engine, func()) {
	r := gin.New()

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		slog.ErrorContext(c.Request.Context(), "panic recovered",
			"method", c.Request.Method, "path", c.Request.URL.Path, "panic", recovered)
		httperr.Abort(c, http.StatusInternalServerError, "internal_error", "Errore interno del server.")
	}))
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	r.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := dbpkg.Ping(ctx, db); err != nil {
			slog.ErrorContext(ctx, "health check failed", "err", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.NoRoute(func(c *gin.Context) {
		httperr.NotFound(c, "not_found", "Risorsa non trovata.")
	})

	shutdown := RegisterRoutes(r, db, cfg, store)
	return r, shutdown
}

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, store session.Store) func() {
	if err := validators.Register(); err != nil {
		slog.Warn("booking validators not registered", "err", err)
	}

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	userRepo := infraRepo.NewUserGormRepository(db)

	auditDispatcher := audit.NewDispatcher(audit.New(db))
	sessions := session.NewManager(cfg.SessionSecret, cfg.SessionTTL, store)
	clock := timezone.NewClock(cfg.ClinicTimezone)
	images := storage.NewImageResolver(cfg)

	// ======================================================
	// USE CASES
	// ======================================================
	loginUC := ucAuth.NewLogin(ucAuth.NewAuthenticate(userRepo), sessions, auditDispatcher)
	logoutUC := ucAuth.NewLogout(sessions, auditDispatcher)

	listDoctorsUC := ucBooking.NewListDoctors(bookingRepo, images, cfg.DoctorCacheTTL)
	availableSlotsUC := ucBooking.NewAvailableSlots(bookingRepo)
	createBookingUC := ucBooking.NewCreateBooking(bookingRepo, auditDispatcher, clock)
	getBookingUC := ucBooking.NewGetBooking(bookingRepo)
	updateBookingUC := ucBooking.NewUpdateBooking(bookingRepo, auditDispatcher, clock)
	deleteBookingUC := ucBooking.NewDeleteBooking(bookingRepo, auditDispatcher)
	myBookingsUC := ucBooking.NewMyBookings(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(loginUC, logoutUC, cfg.SessionCookieName, cfg.CookieSecure)
	doctorHandler := handlers.NewDoctorHandler(listDoctorsUC)
	meHandler := handlers.NewMeHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)
	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		availableSlotsUC,
		getBookingUC,
		updateBookingUC,
		deleteBookingUC,
		myBookingsUC,
	)

	// ======================================================
	// PUBLIC
	// ======================================================
	r.POST("/login", authHandler.Login)
	r.POST("/logout", authHandler.Logout)
	r.GET("/doctors", doctorHandler.List)
	r.GET("/available-time-slots", bookingHandler.AvailableSlots)

	// ======================================================
	// SESSION REQUIRED
	// ======================================================
	secured := r.Group("/")
	secured.Use(middleware.AuthMiddleware(sessions, cfg.SessionCookieName))
	{
		secured.POST("/book-appointment", bookingHandler.Create)
		secured.GET("/my-bookings", bookingHandler.MyBookings)
		secured.GET("/get-booking/:id", bookingHandler.Get)
		secured.PUT("/update-booking/:id", bookingHandler.Update)
		secured.DELETE("/delete-booking/:id", bookingHandler.Delete)

		secured.GET("/me", meHandler.GetMe)
		secured.GET("/my-activity", auditLogsHandler.List)
	}

	return auditDispatcher.Close
}
