package services

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"

	"task-lab/domain/board"
	apperrors "task-lab/errors"
	"task-lab/repositories"
)

type ICommentService interface {
	Add(cmd board.AddCommentCommand) (board.Comment, error)
	ListByArea(areaID string) ([]board.Comment, error)
}

type CommentService struct {
	log      *slog.Logger
	areas    repositories.IAreaRepository
	comments repositories.ICommentRepository
	validate *validator.Validate
	now      func() time.Time
}

func NewCommentService(log *slog.Logger, areas repositories.IAreaRepository, comments repositories.ICommentRepository) *CommentService {
	return &CommentService{
		log:      log,
		areas:    areas,
		comments: comments,
		validate: validator.New(),
		now:      time.Now,
	}
}

// Add appends a comment to an area's log. Comments carry no derived state
// and never trigger progress recomputation.
func (s *CommentService) Add(cmd board.AddCommentCommand) (board.Comment, error) {
	if err := s.validate.Struct(cmd); err != nil {
		return board.Comment{}, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	if _, err := s.areas.Get(cmd.AreaID); err != nil {
		return board.Comment{}, err
	}

	comment := board.Comment{
		Username:  cmd.Username,
		Message:   cmd.Message,
		Timestamp: s.now().UnixMilli(),
	}
	return s.comments.Append(cmd.AreaID, comment)
}

func (s *CommentService) ListByArea(areaID string) ([]board.Comment, error) {
	return s.comments.ListByArea(areaID)
}
