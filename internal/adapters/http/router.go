// Package http is the inbound HTTP adapter: the route table and the server
// lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/timekeeper/internal/adapters/http/dto"
	"github.com/jsamuelsen11/timekeeper/internal/adapters/http/handlers"
)

// NewRouter mounts the health checks and the /api/v1 resources behind
// middlewares, applied in the order given. Unknown paths and methods get
// problem responses like every other failure.
func NewRouter(
	employees *handlers.EmployeeHandler,
	timesheets *handlers.TimesheetHandler,
	health *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewares...)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteProblem(w, req, http.StatusNotFound, "no route for "+req.URL.Path)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteProblem(w, req, http.StatusMethodNotAllowed, req.Method+" is not supported on "+req.URL.Path)
	})

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", health.Liveness)
		r.Get("/ready", health.Readiness)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/employees", func(r chi.Router) {
			r.Get("/", employees.ListEmployees)
			r.Post("/", employees.CreateEmployee)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", employees.GetEmployee)
				r.Put("/status", employees.ChangeStatus)
				r.Post("/terminate", employees.TerminateEmployee)
				r.Get("/balance", employees.GetBalance)
				r.Get("/timesheets", timesheets.ListEmployeeTimesheets)
			})
		})
		r.Route("/timesheets", func(r chi.Router) {
			r.Post("/", timesheets.SubmitTimesheet)
			r.Post("/bulk-approve", timesheets.BulkApprove)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", timesheets.GetTimesheet)
				r.Post("/approve", timesheets.ApproveTimesheet)
				r.Post("/reject", timesheets.RejectTimesheet)
			})
		})
	})

	return r
}
