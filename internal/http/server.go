package http

import (
	"github.com/gin-gonic/gin"
)

// Server wraps the configured gin engine so callers outside the app wiring
// (smoke tooling, embedded use) can serve the CRM routes without knowing the
// router setup.
type Server struct {
	Engine *gin.Engine
}

func NewServer(cfg RouterConfig) *Server {
	return &Server{Engine: NewRouter(cfg)}
}

// Run blocks serving on address until the listener fails.
func (s *Server) Run(address string) error {
	return s.Engine.Run(address)
}
