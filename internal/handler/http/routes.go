package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.health)
		r.Get("/api/version", h.getServerVersion)
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
	})

	// every expense route sits behind the identity gate; handlers read the
	// user id from the request context only
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/expenses", h.getAllExpenses)
		r.Post("/api/expenses/range", h.getExpensesByRange)
		r.Get("/api/expenses/date/{date}", h.getExpensesByDate)
		r.Post("/api/expenses/date/{date}", h.saveExpensesForDate)
		r.Put("/api/expenses/{id}", h.updateExpense)
		r.Delete("/api/expenses/{id}", h.deleteExpense)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
