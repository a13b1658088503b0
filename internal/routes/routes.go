package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/studiofade/barber-manager/internal/audit"
	"github.com/studiofade/barber-manager/internal/config"
	"github.com/studiofade/barber-manager/internal/handlers"
	infraRepo "github.com/studiofade/barber-manager/internal/infra/repository"
	"github.com/studiofade/barber-manager/internal/middleware"
	"github.com/studiofade/barber-manager/internal/refresh"
	"github.com/studiofade/barber-manager/internal/timer"
	ucAppointment "github.com/studiofade/barber-manager/internal/usecase/appointment"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	tracker *timer.Tracker,
	refresher *refresh.Refresher,
	notifier *refresh.Notifier,
) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// 🧠 USE CASES — APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	startAppointmentUC := ucAppointment.NewStartAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	cancelAppointmentUC := ucAppointment.NewCancelAppointment(
		appointmentRepo,
		tracker,
		auditDispatcher,
	)

	completeAppointmentUC := ucAppointment.NewCompleteAppointment(
		appointmentRepo,
		tracker,
		auditDispatcher,
	)

	startTimerUC := ucAppointment.NewStartTimer(
		appointmentRepo,
		tracker,
		auditDispatcher,
	)

	listByDateUC := ucAppointment.NewListByDate(appointmentRepo)
	listByMonthUC := ucAppointment.NewListByMonth(appointmentRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	shopHandler := handlers.NewShopHandler(db)

	serviceHandler := handlers.NewServiceHandler(db)
	clientHandler := handlers.NewClientHandler(db)
	planHandler := handlers.NewPlanHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		startAppointmentUC,
		cancelAppointmentUC,
		completeAppointmentUC,
		listByDateUC,
		listByMonthUC,
		notifier,
	)

	timerHandler := handlers.NewTimerHandler(startTimerUC, tracker)

	dashboardHandler := handlers.NewDashboardHandler(db, refresher)
	reportHandler := handlers.NewReportHandler(db, refresher)
	searchHandler := handlers.NewSearchHandler(refresher)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	publicHandler := handlers.NewPublicHandler(db, createAppointmentUC, notifier)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/services", publicHandler.ListServices)
			publicAPI.POST("/appointments", publicHandler.CreateBooking)
		}

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/shop", shopHandler.Get)
			secured.PATCH("/me/shop", shopHandler.Update)

			secured.GET("/me/services", serviceHandler.List)
			secured.POST("/me/services", serviceHandler.Create)
			secured.PATCH("/me/services/:id", serviceHandler.Update)

			secured.GET("/me/clients", clientHandler.List)
			secured.POST("/me/clients", clientHandler.Create)
			secured.GET("/me/clients/:id", clientHandler.Get)
			secured.PATCH("/me/clients/:id", clientHandler.Update)
			secured.GET("/me/clients/:id/stats", clientHandler.Stats)

			secured.GET("/me/plans", planHandler.List)
			secured.POST("/me/plans", planHandler.Create)
			secured.PATCH("/me/plans/:id", planHandler.Update)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/me/appointments", appointmentHandler.Create)
			secured.GET("/me/appointments", appointmentHandler.ListByDate)
			secured.GET("/me/appointments/month", appointmentHandler.ListByMonth)
			secured.PATCH("/me/appointments/:id/start", appointmentHandler.Start)
			secured.PATCH("/me/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.PATCH("/me/appointments/:id/complete", appointmentHandler.Complete)

			// ------------------------------
			// TIMER DE ATENDIMENTO
			// ------------------------------
			secured.POST("/me/appointments/:id/timer/start", timerHandler.Start)
			secured.POST("/me/appointments/:id/timer/pause", timerHandler.Pause)
			secured.POST("/me/appointments/:id/timer/stop", timerHandler.Stop)
			secured.GET("/me/appointments/:id/timer", timerHandler.Status)

			// ------------------------------
			// DASHBOARD / RELATÓRIOS / BUSCA
			// ------------------------------
			secured.GET("/me/dashboard", dashboardHandler.Get)
			secured.GET("/me/reports/revenue", reportHandler.Revenue)
			secured.GET("/me/reports/breakdown", reportHandler.Breakdown)
			secured.GET("/me/search", searchHandler.Search)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
