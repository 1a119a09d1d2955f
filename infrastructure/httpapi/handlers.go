package httpapi

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"task-lab/auth"
	"task-lab/domain/board"
	apperrors "task-lab/errors"
)

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleLogin(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%w: %v", apperrors.ErrValidation, err))
		return
	}
	token, err := s.auth.Login(req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"token": token, "username": req.Username})
}

func (s *Server) handleListAreas(c *gin.Context) {
	areas, err := s.areas.List()
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, areas)
}

func (s *Server) handleGetArea(c *gin.Context) {
	area, err := s.areas.Get(c.Param("areaId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, area)
}

func (s *Server) handleListAllSubPoints(c *gin.Context) {
	subpoints, err := s.tasks.ListAll()
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, subpoints)
}

func (s *Server) handleListSubPoints(c *gin.Context) {
	subpoints, err := s.tasks.ListByArea(c.Param("areaId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, subpoints)
}

type createSubPointRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	DependsOn   string `json:"dependsOn"`
}

func (s *Server) handleCreateSubPoint(c *gin.Context) {
	var req createSubPointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%w: %v", apperrors.ErrValidation, err))
		return
	}
	sp, err := s.tasks.Create(board.CreateSubPointCommand{
		AreaID:      c.Param("areaId"),
		Title:       req.Title,
		Description: req.Description,
		DependsOn:   req.DependsOn,
		CreatedBy:   Actor(c),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, sp)
}

type editSubPointRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	DependsOn   *string `json:"dependsOn"`
}

func (s *Server) handleEditSubPoint(c *gin.Context) {
	var req editSubPointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%w: %v", apperrors.ErrValidation, err))
		return
	}
	sp, err := s.tasks.Edit(board.EditSubPointCommand{
		ID:          subPointID(c),
		Editor:      Actor(c),
		Title:       req.Title,
		Description: req.Description,
		DependsOn:   req.DependsOn,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, sp)
}

func (s *Server) handleToggleComplete(c *gin.Context) {
	sp, err := s.tasks.ToggleComplete(subPointID(c), Actor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, sp)
}

func (s *Server) handleClaimResponsibility(c *gin.Context) {
	sp, err := s.tasks.ClaimResponsibility(subPointID(c), Actor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, sp)
}

func (s *Server) handleDeleteSubPoint(c *gin.Context) {
	if err := s.tasks.Delete(subPointID(c), Actor(c)); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, nil)
}

func (s *Server) handleListComments(c *gin.Context) {
	comments, err := s.comments.ListByArea(c.Param("areaId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, comments)
}

type addCommentRequest struct {
	Message string `json:"message"`
}

func (s *Server) handleAddComment(c *gin.Context) {
	var req addCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%w: %v", apperrors.ErrValidation, err))
		return
	}
	comment, err := s.comments.Add(board.AddCommentCommand{
		AreaID:   c.Param("areaId"),
		Username: Actor(c),
		Message:  req.Message,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, comment)
}

func (s *Server) handleStats(c *gin.Context) {
	stats, err := s.areas.Stats()
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, stats)
}

// subPointID rebuilds the colon-separated identifier from its path
// segments; identifiers cannot travel as a single segment because they
// contain the key separator.
func subPointID(c *gin.Context) string {
	return fmt.Sprintf("subpoint:%s:%s", c.Param("areaId"), c.Param("ts"))
}
