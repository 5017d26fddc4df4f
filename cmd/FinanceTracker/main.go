package main

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	database "github.com/fintrack/FinanceTracker/db"
	"github.com/fintrack/FinanceTracker/internal/finance/application"
	"github.com/fintrack/FinanceTracker/internal/finance/infrastructure"
	"github.com/fintrack/FinanceTracker/internal/finance/interfaces"
	"github.com/fintrack/FinanceTracker/internal/user"
)

type Response struct {
	Message string `json:"message"`
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("Started %s %s", r.Method, r.URL.Path)

		next.ServeHTTP(w, r)

		log.Printf("Completed %s in %v", r.URL.Path, time.Since(start))
	})
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]interface{}{
		"status":  "error",
		"message": message,
		"code":    status,
	})
}

type Server struct {
	router         *http.ServeMux
	dbService      *database.DBService
	userHandler    *user.Handler
	incomeHandler  *interfaces.IncomeHandler
	expenseHandler *interfaces.ExpenseHandler
	statsHandler   *interfaces.StatsHandler
}

func NewServer(
	dbService *database.DBService,
	userHandler *user.Handler,
	incomeHandler *interfaces.IncomeHandler,
	expenseHandler *interfaces.ExpenseHandler,
	statsHandler *interfaces.StatsHandler,
) *Server {
	return &Server{
		router:         http.NewServeMux(),
		dbService:      dbService,
		userHandler:    userHandler,
		incomeHandler:  incomeHandler,
		expenseHandler: expenseHandler,
		statsHandler:   statsHandler,
	}
}

func notFoundHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	json.NewEncoder(w).Encode(Response{Message: "Path not found"})
}

func checkConfiguration() error {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, continuing with system environment variables")
	}

	if os.Getenv("DB_CONNECTION_STRING") == "" {
		return errors.New("no DB_CONNECTION_STRING provided")
	}
	return nil
}

func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	health := s.dbService.Health()
	status := http.StatusOK
	if health["status"] != "up" {
		status = http.StatusServiceUnavailable
	}
	respondJSON(w, status, health)
}

func (s *Server) RegisterRoutes() {
	router := http.NewServeMux()

	router.Handle("GET /api/ready", http.HandlerFunc(s.handleReady))

	// USERS API
	router.Handle("POST /api/users", http.HandlerFunc(s.userHandler.HandleCreateUser))
	router.Handle("GET /api/users", http.HandlerFunc(s.userHandler.HandleGetAllUsers))
	router.Handle("GET /api/users/{id}", http.HandlerFunc(s.userHandler.HandleGetUser))
	router.Handle("PUT /api/users/{id}", http.HandlerFunc(s.userHandler.HandleUpdateUser))
	router.Handle("DELETE /api/users/{id}", http.HandlerFunc(s.userHandler.HandleDeleteUser))

	// INCOME API
	router.Handle("POST /api/income", http.HandlerFunc(s.incomeHandler.CreateIncome))
	router.Handle("GET /api/income", http.HandlerFunc(s.incomeHandler.GetAllIncome))
	router.Handle("GET /api/income/{id}", http.HandlerFunc(s.incomeHandler.GetIncomeByID))
	router.Handle("PUT /api/income/{id}", http.HandlerFunc(s.incomeHandler.UpdateIncome))
	router.Handle("DELETE /api/income/{id}", http.HandlerFunc(s.incomeHandler.DeleteIncome))
	router.Handle("GET /api/income/user/{userId}", http.HandlerFunc(s.incomeHandler.GetAllIncomeByUser))
	router.Handle("GET /api/income/user/{userId}/total", http.HandlerFunc(s.incomeHandler.GetTotalIncomeByUser))

	// EXPENSE API
	router.Handle("POST /api/expense", http.HandlerFunc(s.expenseHandler.CreateExpense))
	router.Handle("GET /api/expense", http.HandlerFunc(s.expenseHandler.GetAllExpenses))
	router.Handle("GET /api/expense/{id}", http.HandlerFunc(s.expenseHandler.GetExpenseByID))
	router.Handle("PUT /api/expense/{id}", http.HandlerFunc(s.expenseHandler.UpdateExpense))
	router.Handle("DELETE /api/expense/{id}", http.HandlerFunc(s.expenseHandler.DeleteExpense))
	router.Handle("GET /api/expense/user/{userId}", http.HandlerFunc(s.expenseHandler.GetAllExpensesByUser))
	router.Handle("GET /api/expense/user/{userId}/total", http.HandlerFunc(s.expenseHandler.GetTotalExpenseByUser))

	// STATS API
	router.Handle("GET /api/stats/{userId}", http.HandlerFunc(s.statsHandler.GetUserStats))

	router.Handle("/", http.HandlerFunc(notFoundHandler))

	s.router = router
}

func main() {
	if err := checkConfiguration(); err != nil {
		log.Fatalf("Missing configuration, update to start server")
	}

	dbService, err := database.NewDBService()
	if err != nil {
		log.Fatalf("Could not initialize database: %v", err)
	}
	defer dbService.Close()

	if err := database.RunMigrations(dbService.DB); err != nil {
		log.Fatalf("Could not run database migrations: %v", err)
	}

	userRepo := user.NewUserRepository(dbService.DB)
	userService := user.NewUserService(userRepo)
	userHandler := user.NewHandler(userService)

	incomeRepo := infrastructure.NewIncomeRepository(dbService.DB)
	expenseRepo := infrastructure.NewExpenseRepository(dbService.DB)

	incomeService := application.NewIncomeService(incomeRepo, userService)
	expenseService := application.NewExpenseService(expenseRepo, userService)
	statsService := application.NewStatsService(userService, incomeRepo, expenseRepo)

	incomeHandler := interfaces.NewIncomeHandler(incomeService, respondJSON, respondError)
	expenseHandler := interfaces.NewExpenseHandler(expenseService, respondJSON, respondError)
	statsHandler := interfaces.NewStatsHandler(statsService, respondJSON, respondError)

	server := NewServer(dbService, userHandler, incomeHandler, expenseHandler, statsHandler)
	server.RegisterRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	handler := loggingMiddleware(server.router)
	log.Printf("Server starting on port %s...", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
