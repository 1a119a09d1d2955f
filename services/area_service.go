package services

import (
	"log/slog"

	"github.com/samber/lo"

	"task-lab/domain/board"
	"task-lab/repositories"
)

type IAreaService interface {
	Init() error
	List() ([]board.Area, error)
	Get(areaID string) (board.Area, error)
	Stats() (board.Stats, error)
}

type AreaService struct {
	log       *slog.Logger
	areas     repositories.IAreaRepository
	subpoints repositories.ISubPointRepository
	comments  repositories.ICommentRepository
}

func NewAreaService(log *slog.Logger, areas repositories.IAreaRepository,
	subpoints repositories.ISubPointRepository, comments repositories.ICommentRepository) *AreaService {
	return &AreaService{log: log, areas: areas, subpoints: subpoints, comments: comments}
}

// Init upserts the fixed area catalog. Safe to call on every startup.
func (s *AreaService) Init() error {
	return s.areas.EnsureCatalog(board.DefaultAreas())
}

func (s *AreaService) List() ([]board.Area, error) {
	return s.areas.List()
}

func (s *AreaService) Get(areaID string) (board.Area, error) {
	return s.areas.Get(areaID)
}

// Stats aggregates board-wide dashboard counters from the live record sets.
func (s *AreaService) Stats() (board.Stats, error) {
	subpoints, err := s.subpoints.ListAll()
	if err != nil {
		return board.Stats{}, err
	}
	totalComments, err := s.comments.CountAll()
	if err != nil {
		return board.Stats{}, err
	}
	return board.Stats{
		TotalComments:      totalComments,
		TotalSubPoints:     len(subpoints),
		CompletedSubPoints: lo.CountBy(subpoints, func(sp board.SubPoint) bool { return sp.Completed }),
	}, nil
}
