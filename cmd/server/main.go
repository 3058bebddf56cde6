package main

import (
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"sesamebooking/internal/api"
	"sesamebooking/internal/auth"
	"sesamebooking/internal/config"
	"sesamebooking/internal/repository"
	"sesamebooking/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger := newLogger(cfg.Environment)
	defer logger.Sync()

	store, err := repository.NewBookingStore(cfg.DataDir, logger)
	if err != nil {
		logger.Fatal("failed to initialize booking store", zap.Error(err))
	}
	authRepo := repository.NewAdminAuthRepository(cfg.DataDir)

	authSvc := service.NewAdminAuthService(authRepo, cfg.JWTSecret)
	if err := authSvc.Bootstrap(cfg.AdminPassword); err != nil {
		logger.Fatal("failed to bootstrap admin password", zap.Error(err))
	}

	var generator service.MessageGenerator = service.TemplateGenerator{}
	if cfg.GeminiAPIKey != "" {
		generator = service.NewGeminiGenerator(cfg.GeminiAPIKey, logger)
	}

	notify := service.NewNotifyService(logger)
	bookingSvc := service.NewBookingService(store, generator, logger)
	jobs := service.NewJobService(store, bookingSvc, notify, logger, cfg.DataDir, cfg.TeacherEmail, cfg.TeacherPhone)

	bookingHandler := api.NewBookingHandler(bookingSvc)
	adminHandler := api.NewAdminHandler(bookingSvc, notify, generator)
	adminAuthHandler := api.NewAdminAuthHandler(authSvc)

	r := mux.NewRouter()

	// Public endpoints
	r.HandleFunc("/api/slots", bookingHandler.GetSlots).Methods("GET")
	r.HandleFunc("/api/occupied", bookingHandler.ListOccupied).Methods("GET")
	r.HandleFunc("/api/draft/toggle", bookingHandler.ToggleDraft).Methods("POST")
	r.HandleFunc("/api/bookings", bookingHandler.CreateBooking).Methods("POST")
	r.HandleFunc("/api/schedule", bookingHandler.GetWeekSchedule).Methods("GET")
	r.HandleFunc("/api/admin/login", adminAuthHandler.Login).Methods("POST")

	// Admin endpoints (protected)
	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(auth.AdminAuthMiddleware(cfg.JWTSecret))
	admin.HandleFunc("/bookings", adminHandler.ListBookings).Methods("GET")
	admin.HandleFunc("/slots", adminHandler.DeleteSlot).Methods("DELETE")
	admin.HandleFunc("/notify", adminHandler.NotifyStudent).Methods("POST")

	c := cron.New()
	if _, err := c.AddFunc("0 3 * * *", jobs.SnapshotStore); err != nil {
		logger.Fatal("failed to schedule store snapshot job", zap.Error(err))
	}
	if _, err := c.AddFunc("0 7 * * 1", jobs.SendWeeklySchedule); err != nil {
		logger.Fatal("failed to schedule weekly schedule job", zap.Error(err))
	}
	c.Start()
	defer c.Stop()

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	logger.Info("server running", zap.String("port", cfg.Port), zap.String("dataDir", cfg.DataDir))
	if err := http.ListenAndServe(":"+cfg.Port, cors(handlers.LoggingHandler(os.Stdout, r))); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(env string) *zap.Logger {
	var zcfg zap.Config
	if env == "production" {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.OutputPaths = []string{"stdout"}

	logger, err := zcfg.Build()
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	return logger
}
