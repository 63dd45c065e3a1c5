package server

import "github.com/querylens/querylens/internal/server/handlers"

// registerRoutes registers all HTTP routes.
func (s *Server) registerRoutes() {
	s.router.Get("/search", handlers.SearchHandler)
	s.router.Get("/health", handlers.HealthHandler)
	s.router.Get("/version", handlers.VersionHandler)
}
