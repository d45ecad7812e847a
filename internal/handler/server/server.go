package server

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/cors"
	"github.com/rs/zerolog/log"

	"github.com/bagdasarian/team-roster/internal/handler"
)

type Server struct {
	handler *handler.Handler
	server  *http.Server
}

func NewServer(h *handler.Handler, addr string) *Server {
	mux := http.NewServeMux()
	SetupRoutes(mux, h)

	// React-фронтенд ходит с другого origin
	c := cors.New(cors.Options{
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
			http.MethodDelete,
		},
		AllowedHeaders: []string{"Content-Type", "X-User-Id", "X-User-Role"},
	})

	return &Server{
		handler: h,
		server: &http.Server{
			Addr:    addr,
			Handler: c.Handler(logRequests(mux)),
		},
	}
}

func (s *Server) Start() error {
	log.Info().Str("addr", s.server.Addr).Msg("server starting")
	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	log.Info().Msg("shutting down")
	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}
	log.Info().Msg("server stopped")
	return nil
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("duration", time.Since(start)).
			Msg("request handled")
	})
}
