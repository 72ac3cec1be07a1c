// Package httpapi exposes the service over HTTP/JSON: routing, the bearer
// token guard, and the request handlers.
package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/pennywise/internal/logging"
	"github.com/dmitrijs2005/pennywise/internal/server/services"
)

// HTTPServer bundles the route handlers with their dependencies.
type HTTPServer struct {
	address   string
	logger    logging.Logger
	users     *services.UserService
	shopping  *services.ShoppingService
	budget    *services.BudgetService
	expenses  *services.ExpenseService
	jwtSecret []byte
}

// NewHTTPServer constructs the HTTP transport for the given services.
func NewHTTPServer(a string, l logging.Logger, us *services.UserService, ss *services.ShoppingService,
	bs *services.BudgetService, es *services.ExpenseService, secretKey string) *HTTPServer {
	return &HTTPServer{
		address:   a,
		logger:    l.With("module", "http_server"),
		users:     us,
		shopping:  ss,
		budget:    bs,
		expenses:  es,
		jwtSecret: []byte(secretKey),
	}
}

// Routes builds the full route table. Protected routes are wrapped in the
// bearer token guard; the expense endpoints stay open except for delete,
// which demands a valid token without any ownership check.
func (s *HTTPServer) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleRoot)

	mux.HandleFunc("POST /auth/signup", s.handleSignup)
	mux.HandleFunc("POST /auth/login", s.handleLogin)
	mux.Handle("GET /auth/me", s.requireAuth(http.HandlerFunc(s.handleMe)))
	mux.HandleFunc("POST /auth/reset-password", s.handleResetPassword)

	// collection routes answer with and without the trailing slash
	mux.Handle("GET /budget", s.requireAuth(http.HandlerFunc(s.handleGetBudget)))
	mux.Handle("GET /budget/{$}", s.requireAuth(http.HandlerFunc(s.handleGetBudget)))
	mux.Handle("PUT /budget", s.requireAuth(http.HandlerFunc(s.handleUpdateBudget)))
	mux.Handle("PUT /budget/{$}", s.requireAuth(http.HandlerFunc(s.handleUpdateBudget)))
	mux.Handle("GET /budget/check-threshold", s.requireAuth(http.HandlerFunc(s.handleCheckThreshold)))

	mux.Handle("POST /shopping-list", s.requireAuth(http.HandlerFunc(s.handleAddItem)))
	mux.Handle("POST /shopping-list/{$}", s.requireAuth(http.HandlerFunc(s.handleAddItem)))
	mux.Handle("GET /shopping-list", s.requireAuth(http.HandlerFunc(s.handleListItems)))
	mux.Handle("GET /shopping-list/{$}", s.requireAuth(http.HandlerFunc(s.handleListItems)))
	mux.Handle("PUT /shopping-list/{id}", s.requireAuth(http.HandlerFunc(s.handleUpdateItem)))
	mux.Handle("DELETE /shopping-list/{id}", s.requireAuth(http.HandlerFunc(s.handleDeleteItem)))

	mux.HandleFunc("POST /expenses", s.handleLogExpense)
	mux.HandleFunc("POST /expenses/{$}", s.handleLogExpense)
	mux.HandleFunc("GET /expenses", s.handleListExpenses)
	mux.HandleFunc("GET /expenses/{$}", s.handleListExpenses)
	mux.HandleFunc("GET /expenses/total", s.handleExpensesTotal)
	mux.Handle("DELETE /expenses/{id}", s.requireAuth(http.HandlerFunc(s.handleDeleteExpense)))

	return s.requestLogger(mux)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Routes(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		_ = srv.Shutdown(context.Background())
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *HTTPServer) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Hello, world! This route does not need a token.",
	})
}
