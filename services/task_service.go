package services

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"task-lab/domain/board"
	apperrors "task-lab/errors"
	"task-lab/repositories"
)

// ITaskService is the task lifecycle manager: every sub-point mutation goes
// through here so dependency gating and progress recomputation are applied
// uniformly.
type ITaskService interface {
	Create(cmd board.CreateSubPointCommand) (board.SubPoint, error)
	Edit(cmd board.EditSubPointCommand) (board.SubPoint, error)
	ToggleComplete(id, actor string) (board.SubPoint, error)
	ClaimResponsibility(id, actor string) (board.SubPoint, error)
	Delete(id, actor string) error
	ListByArea(areaID string) ([]board.SubPoint, error)
	ListAll() ([]board.SubPoint, error)
}

type TaskService struct {
	log       *slog.Logger
	areas     repositories.IAreaRepository
	subpoints repositories.ISubPointRepository
	validate  *validator.Validate
	now       func() time.Time
}

func NewTaskService(log *slog.Logger, areas repositories.IAreaRepository, subpoints repositories.ISubPointRepository) *TaskService {
	return &TaskService{
		log:       log,
		areas:     areas,
		subpoints: subpoints,
		validate:  validator.New(),
		now:       time.Now,
	}
}

// Create validates the command, checks the proposed dependency against the
// full universe, persists the sub-point and recomputes the area progress.
func (s *TaskService) Create(cmd board.CreateSubPointCommand) (board.SubPoint, error) {
	cmd.Title = strings.TrimSpace(cmd.Title)
	if err := s.validate.Struct(cmd); err != nil {
		return board.SubPoint{}, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	// Unknown areas fail closed instead of creating an orphan partition.
	if _, err := s.areas.Get(cmd.AreaID); err != nil {
		return board.SubPoint{}, err
	}

	sp := board.SubPoint{
		Title:       cmd.Title,
		Description: cmd.Description,
		Completed:   false,
		CreatedBy:   cmd.CreatedBy,
		Timestamp:   s.now().UnixMilli(),
		DependsOn:   cmd.DependsOn,
	}

	if cmd.DependsOn != "" {
		universe, err := s.universe()
		if err != nil {
			return board.SubPoint{}, err
		}
		if _, ok := universe[cmd.DependsOn]; !ok {
			return board.SubPoint{}, fmt.Errorf("%w: dependency %s", apperrors.ErrNotFound, cmd.DependsOn)
		}
		// A fresh identifier cannot appear in any existing chain, but the
		// bounded walk still rejects assignments into already-cyclic data.
		candidate := board.SubPointKey(cmd.AreaID, sp.Timestamp)
		if board.WouldCreateCycle(candidate, cmd.DependsOn, universe) {
			return board.SubPoint{}, fmt.Errorf("%w: %s -> %s", apperrors.ErrDependencyCycle, candidate, cmd.DependsOn)
		}
	}

	created, err := s.subpoints.Insert(cmd.AreaID, sp)
	if err != nil {
		return board.SubPoint{}, err
	}
	s.log.Info("Sub-point created", "id", created.ID, "by", created.CreatedBy)
	if err := s.recomputeArea(cmd.AreaID); err != nil {
		return board.SubPoint{}, err
	}
	return created, nil
}

// Edit applies creator-only field updates. Completion state, responsibility,
// creator and timestamp are never touched and progress is unaffected.
func (s *TaskService) Edit(cmd board.EditSubPointCommand) (board.SubPoint, error) {
	if err := s.validate.Struct(cmd); err != nil {
		return board.SubPoint{}, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	sp, err := s.subpoints.Get(cmd.ID)
	if err != nil {
		return board.SubPoint{}, err
	}
	if sp.CreatedBy != cmd.Editor {
		return board.SubPoint{}, fmt.Errorf("%w: %s is not the creator of %s", apperrors.ErrNotCreator, cmd.Editor, cmd.ID)
	}

	if cmd.Title != nil {
		title := strings.TrimSpace(*cmd.Title)
		if title == "" {
			return board.SubPoint{}, fmt.Errorf("%w: title must not be empty", apperrors.ErrValidation)
		}
		sp.Title = title
	}
	if cmd.Description != nil {
		sp.Description = *cmd.Description
	}
	if cmd.DependsOn != nil {
		dependsOn := *cmd.DependsOn
		if dependsOn != "" {
			universe, err := s.universe()
			if err != nil {
				return board.SubPoint{}, err
			}
			if _, ok := universe[dependsOn]; !ok {
				return board.SubPoint{}, fmt.Errorf("%w: dependency %s", apperrors.ErrNotFound, dependsOn)
			}
			if board.WouldCreateCycle(sp.ID, dependsOn, universe) {
				return board.SubPoint{}, fmt.Errorf("%w: %s -> %s", apperrors.ErrDependencyCycle, sp.ID, dependsOn)
			}
		}
		sp.DependsOn = dependsOn
	}

	if err := s.subpoints.Put(sp); err != nil {
		return board.SubPoint{}, err
	}
	return sp, nil
}

// ToggleComplete flips the completion flag. The incomplete-to-complete
// transition is gated on the dependency being satisfied at this moment; the
// reverse transition is always allowed and dependents are not cascaded or
// re-validated.
func (s *TaskService) ToggleComplete(id, actor string) (board.SubPoint, error) {
	sp, err := s.subpoints.Get(id)
	if err != nil {
		return board.SubPoint{}, err
	}

	if !sp.Completed {
		universe, err := s.universe()
		if err != nil {
			return board.SubPoint{}, err
		}
		if !board.Satisfied(sp, universe) {
			return board.SubPoint{}, fmt.Errorf("%w: %s depends on %s", apperrors.ErrDependencyUnmet, id, sp.DependsOn)
		}
	}

	sp.Completed = !sp.Completed
	if err := s.subpoints.Put(sp); err != nil {
		return board.SubPoint{}, err
	}
	s.log.Info("Sub-point toggled", "id", id, "completed", sp.Completed, "by", actor)

	areaID, _, err := board.ParseSubPointID(id)
	if err != nil {
		return board.SubPoint{}, err
	}
	if err := s.recomputeArea(areaID); err != nil {
		return board.SubPoint{}, err
	}
	return sp, nil
}

// ClaimResponsibility sets the responsible user, first claim wins. There is
// no release or reassignment path.
func (s *TaskService) ClaimResponsibility(id, actor string) (board.SubPoint, error) {
	sp, err := s.subpoints.Get(id)
	if err != nil {
		return board.SubPoint{}, err
	}
	if sp.ResponsibleUser != "" {
		return board.SubPoint{}, fmt.Errorf("%w: %s claimed by %s", apperrors.ErrAlreadyClaimed, id, sp.ResponsibleUser)
	}
	sp.ResponsibleUser = actor
	if err := s.subpoints.Put(sp); err != nil {
		return board.SubPoint{}, err
	}
	return sp, nil
}

// Delete removes a sub-point (creator only). References pointing at the
// deleted id are left dangling and fail closed from then on; only the
// deleted sub-point's own area is recomputed.
func (s *TaskService) Delete(id, actor string) error {
	sp, err := s.subpoints.Get(id)
	if err != nil {
		return err
	}
	if sp.CreatedBy != actor {
		return fmt.Errorf("%w: %s is not the creator of %s", apperrors.ErrNotCreator, actor, id)
	}

	if err := s.subpoints.Delete(id); err != nil {
		return err
	}
	s.log.Info("Sub-point deleted", "id", id, "by", actor)

	areaID, _, err := board.ParseSubPointID(id)
	if err != nil {
		return err
	}
	return s.recomputeArea(areaID)
}

func (s *TaskService) ListByArea(areaID string) ([]board.SubPoint, error) {
	return s.subpoints.ListByArea(areaID)
}

func (s *TaskService) ListAll() ([]board.SubPoint, error) {
	return s.subpoints.ListAll()
}

func (s *TaskService) universe() (map[string]board.SubPoint, error) {
	all, err := s.subpoints.ListAll()
	if err != nil {
		return nil, err
	}
	return board.Index(all), nil
}

// recomputeArea recomputes and persists the area progress from the live
// sub-point set. Pure recomputation rather than counter maintenance: a
// stale overwrite is corrected by the next mutation.
func (s *TaskService) recomputeArea(areaID string) error {
	subpoints, err := s.subpoints.ListByArea(areaID)
	if err != nil {
		return err
	}
	return s.areas.SetProgress(areaID, board.RecomputeProgress(subpoints))
}
