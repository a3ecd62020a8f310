package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/darshan/books-service/internal/config"
	"github.com/darshan/books-service/internal/database"
	"github.com/darshan/books-service/internal/handler"
	"github.com/darshan/books-service/internal/jobs"
	"github.com/darshan/books-service/internal/middleware"
	"github.com/darshan/books-service/internal/repository"
	"github.com/darshan/books-service/internal/service"
	"github.com/darshan/books-service/internal/utils/email"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

func main() {
	_ = godotenv.Load()

	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// Initialize database
	db, err := database.Open(cfg.DBConn)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	if err := database.Migrate(db); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize layers
	repo := repository.NewRepository(db)
	sender := email.NewSender(cfg, logger)
	svc := service.NewService(repo, logger)
	authSvc := service.NewAuthService(repo, repo, sender, cfg, logger)
	reminderJob := jobs.NewReminderJob(repo, sender, cfg.ReminderEmail, logger)
	h := handler.NewHandler(svc, authSvc, reminderJob, logger)

	// Schedule the loan EMI reminder job
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.ReminderCron, func() {
		if _, err := reminderJob.Run(); err != nil {
			logger.Errorf("Loan reminder job error: %v", err)
		}
	}); err != nil {
		logger.Fatalf("Invalid reminder schedule %q: %v", cfg.ReminderCron, err)
	}
	scheduler.Start()
	defer scheduler.Stop()
	logger.Infof("Loan EMI reminder job scheduled: %s", cfg.ReminderCron)

	// Setup router
	r := mux.NewRouter()
	r.Use(middleware.RequestLogger(logger))

	// Public routes
	r.HandleFunc("/api/auth/register", h.Register).Methods("POST")
	r.HandleFunc("/api/auth/login", h.Login).Methods("POST")
	r.HandleFunc("/api/auth/verify", h.Verify).Methods("POST")

	// Protected routes
	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.AuthMiddleware(cfg))
	api.HandleFunc("/auth/me", h.Me).Methods("GET")

	api.HandleFunc("/firm", h.CreateFirm).Methods("POST")
	api.HandleFunc("/firm", h.ListFirms).Methods("GET")
	api.HandleFunc("/firm/stats/count", h.FirmCount).Methods("GET")
	api.HandleFunc("/firm/stats/today", h.FirmTodayStats).Methods("GET")
	api.HandleFunc("/firm/{id}", h.GetFirm).Methods("GET")
	api.HandleFunc("/firm/{id}", h.UpdateFirm).Methods("PUT")
	api.HandleFunc("/firm/{id}", h.DeleteFirm).Methods("DELETE")

	api.HandleFunc("/vehicle", h.CreateVehicle).Methods("POST")
	api.HandleFunc("/vehicle", h.ListVehicles).Methods("GET")
	api.HandleFunc("/vehicle/stats/count", h.VehicleCount).Methods("GET")
	api.HandleFunc("/vehicle/{id}", h.GetVehicle).Methods("GET")
	api.HandleFunc("/vehicle/{id}", h.UpdateVehicle).Methods("PUT")
	api.HandleFunc("/vehicle/{id}", h.DeleteVehicle).Methods("DELETE")

	api.HandleFunc("/pricing", h.CreatePricing).Methods("POST")
	api.HandleFunc("/pricing", h.ListPricing).Methods("GET")
	api.HandleFunc("/pricing/{id}", h.GetPricing).Methods("GET")
	api.HandleFunc("/pricing/{id}", h.UpdatePricing).Methods("PUT")
	api.HandleFunc("/pricing/{id}", h.DeletePricing).Methods("DELETE")

	api.HandleFunc("/transaction", h.CreateTransaction).Methods("POST")
	api.HandleFunc("/transaction", h.ListTransactions).Methods("GET")
	api.HandleFunc("/transaction/export/excel", h.ExportTransactionsExcel).Methods("GET")
	api.HandleFunc("/transaction/stats/ton/today", h.TodayTonStats).Methods("GET")
	api.HandleFunc("/transaction/stats/ton/weekly", h.WeeklyTonStats).Methods("GET")
	api.HandleFunc("/transaction/stats/amount/today", h.TodayAmountStats).Methods("GET")
	api.HandleFunc("/transaction/stats/loads/weekly", h.WeeklyLoadCount).Methods("GET")
	api.HandleFunc("/transaction/{id}", h.GetTransaction).Methods("GET")
	api.HandleFunc("/transaction/{id}", h.UpdateTransaction).Methods("PUT")
	api.HandleFunc("/transaction/{id}", h.DeleteTransaction).Methods("DELETE")

	api.HandleFunc("/quick-transaction", h.CreateQuickTransaction).Methods("POST")
	api.HandleFunc("/quick-transaction", h.ListQuickTransactions).Methods("GET")
	api.HandleFunc("/quick-transaction/export/excel", h.ExportQuickTransactionsExcel).Methods("GET")
	api.HandleFunc("/quick-transaction/stats/today", h.QuickTodayTotals).Methods("GET")
	api.HandleFunc("/quick-transaction/stats/weekly", h.QuickWeeklyTotals).Methods("GET")
	api.HandleFunc("/quick-transaction/payment-summary", h.QuickPaymentSummary).Methods("GET")
	api.HandleFunc("/quick-transaction/{id}", h.GetQuickTransaction).Methods("GET")
	api.HandleFunc("/quick-transaction/{id}", h.UpdateQuickTransaction).Methods("PUT")
	api.HandleFunc("/quick-transaction/{id}", h.DeleteQuickTransaction).Methods("DELETE")

	api.HandleFunc("/note", h.CreateNote).Methods("POST")
	api.HandleFunc("/note", h.ListNotes).Methods("GET")
	api.HandleFunc("/note/{id}", h.GetNote).Methods("GET")
	api.HandleFunc("/note/{id}", h.UpdateNote).Methods("PUT")
	api.HandleFunc("/note/{id}", h.DeleteNote).Methods("DELETE")

	api.HandleFunc("/loan-audit", h.SaveLoanAudit).Methods("POST")
	api.HandleFunc("/loan-audit", h.ListLoanAudits).Methods("GET")
	api.HandleFunc("/loan-audit/reminder/run", h.RunReminderJob).Methods("POST")
	api.HandleFunc("/loan-audit/{id}", h.GetLoanAudit).Methods("GET")
	api.HandleFunc("/loan-audit/{id}", h.DeleteLoanAudit).Methods("DELETE")

	api.HandleFunc("/interest", h.CreateInterestEntry).Methods("POST")
	api.HandleFunc("/interest", h.ListInterestEntries).Methods("GET")
	api.HandleFunc("/interest/{id}", h.GetInterestEntry).Methods("GET")
	api.HandleFunc("/interest/{id}", h.UpdateInterestEntry).Methods("PUT")
	api.HandleFunc("/interest/{id}", h.DeleteInterestEntry).Methods("DELETE")

	api.HandleFunc("/land", h.CreateLandEntry).Methods("POST")
	api.HandleFunc("/land", h.ListLandEntries).Methods("GET")
	api.HandleFunc("/land/{id}", h.GetLandEntry).Methods("GET")
	api.HandleFunc("/land/{id}", h.UpdateLandEntry).Methods("PUT")
	api.HandleFunc("/land/{id}", h.DeleteLandEntry).Methods("DELETE")

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	logger.Infof("Starting server on %s", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("Server failed: %v", err)
	}
}
