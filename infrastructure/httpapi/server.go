// Package httpapi exposes the core operations over JSON HTTP. Clients are
// expected to poll; nothing is pushed. Every response uses the
// {success, data|error} envelope.
package httpapi

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"task-lab/services"
)

type Server struct {
	log      *slog.Logger
	secret   []byte
	auth     services.IAuthService
	areas    services.IAreaService
	tasks    services.ITaskService
	comments services.ICommentService
}

func NewServer(log *slog.Logger, secret []byte,
	auth services.IAuthService, areas services.IAreaService,
	tasks services.ITaskService, comments services.ICommentService) *Server {
	return &Server{
		log:      log,
		secret:   secret,
		auth:     auth,
		areas:    areas,
		tasks:    tasks,
		comments: comments,
	}
}

// Router assembles the gin engine: request-id + logging on everything,
// JWT auth on the board routes, login and health left open.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogging(s.log))

	r.GET("/healthz", s.handleHealth)

	v1 := r.Group("/api/v1")
	v1.POST("/login", s.handleLogin)

	board := v1.Group("", RequireAuth(s.secret))
	board.GET("/project-areas", s.handleListAreas)
	board.GET("/project-areas/:areaId", s.handleGetArea)
	board.GET("/subpoints", s.handleListAllSubPoints)
	board.GET("/subpoints/:areaId", s.handleListSubPoints)
	board.POST("/subpoints/:areaId", s.handleCreateSubPoint)
	board.PUT("/subpoints/:areaId/:ts", s.handleEditSubPoint)
	board.POST("/subpoints/:areaId/:ts/toggle", s.handleToggleComplete)
	board.POST("/subpoints/:areaId/:ts/claim", s.handleClaimResponsibility)
	board.DELETE("/subpoints/:areaId/:ts", s.handleDeleteSubPoint)
	board.GET("/comments/:areaId", s.handleListComments)
	board.POST("/comments/:areaId", s.handleAddComment)
	board.GET("/stats", s.handleStats)

	return r
}
