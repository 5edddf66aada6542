// Package web provides the liveness http endpoint
package web

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

// Server is a minimal http server answering liveness probes
type Server struct {
	log  *logrus.Logger
	http *http.Server
}

// NewServer provides a liveness server listening on addr
func NewServer(addr string, log *logrus.Logger) *Server {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	ok := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}

	router.Get("/", ok)
	router.Get("/healthz", ok)

	return &Server{
		log: log,
		http: &http.Server{
			Addr:    addr,
			Handler: router,
		},
	}
}

// Start serves in the background until Shutdown
func (s *Server) Start() {
	go func() {
		err := s.http.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			s.log.WithError(err).Error("Serving http", s.http.Addr)
		}
	}()
}

// Shutdown stops the server gracefully
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
