package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"deal_service/pkg/logx"
	"deal_service/pkg/middlewarex"
)

type RouterOptions struct {
	Metrics             middlewarex.HTTPMetrics
	SensitiveDataMasker logx.SensitiveDataMaskerInterface
	LogFieldMaxLen      int
}

// Router собирает обработчик со стеком middleware.
func (s Server) Router(opts RouterOptions) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middlewarex.TraceID,
		middlewarex.Logger,
		middlewarex.RequestLogging(opts.SensitiveDataMasker, opts.LogFieldMaxLen),
		middlewarex.ResponseLogging(opts.SensitiveDataMasker, opts.LogFieldMaxLen),
		middlewarex.Recovery(internalError),
		opts.Metrics.Middleware,
		// "/deals/" и "/deals" обслуживает один маршрут
		middleware.StripSlashes,
	)

	s.RegisterRoutes(r)

	return r
}

func (s Server) RegisterRoutes(r chi.Router) {
	r.Route("/deals", func(r chi.Router) {
		r.Get("/", handler(s.listDeals))
		r.Post("/", handler(s.createDeal))
		r.Get("/{id}", handler(s.getDeal))
		r.Put("/{id}", handler(s.updateDeal))
		r.Delete("/{id}", handler(s.deleteDeal))
	})

	r.Route("/companies", func(r chi.Router) {
		r.Get("/", handler(s.listCompanies))
		r.Post("/", handler(s.createCompany))
		r.Get("/{id}", handler(s.getCompany))
		r.Delete("/{id}", handler(s.deleteCompany))
	})

	r.Route("/distributors", func(r chi.Router) {
		r.Get("/", handler(s.listDistributors))
		r.Post("/", handler(s.createDistributor))
		r.Get("/{id}", handler(s.getDistributor))
		r.Delete("/{id}", handler(s.deleteDistributor))
	})

	r.Route("/tags", func(r chi.Router) {
		r.Get("/", handler(s.listTags))
		r.Post("/", handler(s.createTag))
		r.Get("/{id}", handler(s.getTag))
		r.Delete("/{id}", handler(s.deleteTag))
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			writeError(r.Context(), w, err)
		}
	}
}
