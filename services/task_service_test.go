package services

import (
	"errors"
	"fmt"
	"log/slog"
	"testing"
	"time"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"task-lab/domain/board"
	apperrors "task-lab/errors"
	"task-lab/mocks"
	"task-lab/repositories"
)

type taskFixture struct {
	tasks *TaskService
	areas *repositories.AreaRepository
	clock int64
}

// newTaskFixture wires the task service onto real repositories backed by an
// in-memory database, with a deterministic clock advancing one millisecond
// per creation.
func newTaskFixture(t *testing.T) *taskFixture {
	t.Helper()
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	log := slog.Default()
	store := repositories.NewBadgerStore(db, log)
	areas := repositories.NewAreaRepository(store, log)
	subpoints := repositories.NewSubPointRepository(store, log)
	require.NoError(t, areas.EnsureCatalog(board.DefaultAreas()))

	f := &taskFixture{
		tasks: NewTaskService(log, areas, subpoints),
		areas: areas,
		clock: 1700000000000,
	}
	f.tasks.now = func() time.Time {
		f.clock++
		return time.UnixMilli(f.clock)
	}
	return f
}

func (f *taskFixture) mustCreate(t *testing.T, areaID, title, creator, dependsOn string) board.SubPoint {
	t.Helper()
	sp, err := f.tasks.Create(board.CreateSubPointCommand{
		AreaID:    areaID,
		Title:     title,
		CreatedBy: creator,
		DependsOn: dependsOn,
	})
	require.NoError(t, err)
	return sp
}

func TestTaskService_CreateValidation(t *testing.T) {
	req := require.New(t)
	f := newTaskFixture(t)

	_, err := f.tasks.Create(board.CreateSubPointCommand{AreaID: "ai", Title: "   ", CreatedBy: "Juanito"})
	req.True(errors.Is(err, apperrors.ErrValidation))

	_, err = f.tasks.Create(board.CreateSubPointCommand{AreaID: "warehouse", Title: "x", CreatedBy: "Juanito"})
	req.True(errors.Is(err, apperrors.ErrNotFound))

	_, err = f.tasks.Create(board.CreateSubPointCommand{
		AreaID: "ai", Title: "x", CreatedBy: "Juanito", DependsOn: "subpoint:ai:999",
	})
	req.True(errors.Is(err, apperrors.ErrNotFound))
}

func TestTaskService_DependencyGating(t *testing.T) {
	req := require.New(t)
	f := newTaskFixture(t)

	prereq := f.mustCreate(t, "hardware-code", "Wire firmware", "Alfonso", "")
	dependent := f.mustCreate(t, "ai", "Calibrate model", "Juanito", prereq.ID)

	// Blocked while the prerequisite is incomplete.
	_, err := f.tasks.ToggleComplete(dependent.ID, "Juanito")
	req.True(errors.Is(err, apperrors.ErrDependencyUnmet))

	_, err = f.tasks.ToggleComplete(prereq.ID, "Alfonso")
	req.NoError(err)

	done, err := f.tasks.ToggleComplete(dependent.ID, "Juanito")
	req.NoError(err)
	req.True(done.Completed)

	// Un-completing the prerequisite is allowed and does not cascade.
	reverted, err := f.tasks.ToggleComplete(prereq.ID, "Alfonso")
	req.NoError(err)
	req.False(reverted.Completed)

	still, err := f.tasks.ListByArea("ai")
	req.NoError(err)
	req.True(still[0].Completed)

	// But the dependent cannot be re-completed once un-done again.
	_, err = f.tasks.ToggleComplete(dependent.ID, "Juanito")
	req.NoError(err)
	_, err = f.tasks.ToggleComplete(dependent.ID, "Juanito")
	req.True(errors.Is(err, apperrors.ErrDependencyUnmet))
}

func TestTaskService_CycleRejected(t *testing.T) {
	req := require.New(t)
	f := newTaskFixture(t)

	a := f.mustCreate(t, "ai", "a", "Juanito", "")
	b := f.mustCreate(t, "interfaz", "b", "Juanito", a.ID)

	// Closing the loop a -> b while b -> a already holds.
	_, err := f.tasks.Edit(board.EditSubPointCommand{ID: a.ID, Editor: "Juanito", DependsOn: &b.ID})
	req.True(errors.Is(err, apperrors.ErrDependencyCycle))

	// Longer chain: c -> b -> a, then a -> c closes a three-node loop.
	c := f.mustCreate(t, "base-datos", "c", "Juanito", b.ID)
	_, err = f.tasks.Edit(board.EditSubPointCommand{ID: a.ID, Editor: "Juanito", DependsOn: &c.ID})
	req.True(errors.Is(err, apperrors.ErrDependencyCycle))

	// Self-reference is the one-hop cycle.
	_, err = f.tasks.Edit(board.EditSubPointCommand{ID: a.ID, Editor: "Juanito", DependsOn: &a.ID})
	req.True(errors.Is(err, apperrors.ErrDependencyCycle))
}

func TestTaskService_EditCreatorOnly(t *testing.T) {
	req := require.New(t)
	f := newTaskFixture(t)

	sp := f.mustCreate(t, "ai", "original", "Juanito", "")

	title := "renamed"
	_, err := f.tasks.Edit(board.EditSubPointCommand{ID: sp.ID, Editor: "Ximena", Title: &title})
	req.True(errors.Is(err, apperrors.ErrNotCreator))

	edited, err := f.tasks.Edit(board.EditSubPointCommand{ID: sp.ID, Editor: "Juanito", Title: &title})
	req.NoError(err)
	req.Equal("renamed", edited.Title)

	// A pointer to the empty string clears the dependency.
	dep := f.mustCreate(t, "ai", "dep", "Juanito", "")
	withDep, err := f.tasks.Edit(board.EditSubPointCommand{ID: sp.ID, Editor: "Juanito", DependsOn: &dep.ID})
	req.NoError(err)
	req.Equal(dep.ID, withDep.DependsOn)

	empty := ""
	cleared, err := f.tasks.Edit(board.EditSubPointCommand{ID: sp.ID, Editor: "Juanito", DependsOn: &empty})
	req.NoError(err)
	req.Empty(cleared.DependsOn)
}

func TestTaskService_ClaimFirstWins(t *testing.T) {
	req := require.New(t)
	f := newTaskFixture(t)

	sp := f.mustCreate(t, "impresion", "Print casing", "Jessy", "")

	claimed, err := f.tasks.ClaimResponsibility(sp.ID, "Andres")
	req.NoError(err)
	req.Equal("Andres", claimed.ResponsibleUser)

	_, err = f.tasks.ClaimResponsibility(sp.ID, "Jessy")
	req.True(errors.Is(err, apperrors.ErrAlreadyClaimed))

	// The creator has no special claim rights either.
	kept, err := f.tasks.ListByArea("impresion")
	req.NoError(err)
	req.Equal("Andres", kept[0].ResponsibleUser)
}

func TestTaskService_DeleteLeavesDanglingReference(t *testing.T) {
	req := require.New(t)
	f := newTaskFixture(t)

	prereq := f.mustCreate(t, "hardware-code", "prereq", "Alfonso", "")
	dependent := f.mustCreate(t, "ai", "dependent", "Juanito", prereq.ID)

	req.True(errors.Is(f.tasks.Delete(prereq.ID, "Ximena"), apperrors.ErrNotCreator))
	req.NoError(f.tasks.Delete(prereq.ID, "Alfonso"))

	// The dangling reference blocks completion permanently.
	_, err := f.tasks.ToggleComplete(dependent.ID, "Juanito")
	req.True(errors.Is(err, apperrors.ErrDependencyUnmet))
}

func TestTaskService_ProgressScenario(t *testing.T) {
	req := require.New(t)
	f := newTaskFixture(t)

	train := f.mustCreate(t, "ai", "Train model", "Juanito", "")
	deploy := f.mustCreate(t, "ai", "Deploy", "Juanito", train.ID)

	area, err := f.areas.Get("ai")
	req.NoError(err)
	req.Equal(0, area.Progress)

	_, err = f.tasks.ToggleComplete(train.ID, "Juanito")
	req.NoError(err)
	area, err = f.areas.Get("ai")
	req.NoError(err)
	req.Equal(50, area.Progress)

	_, err = f.tasks.ToggleComplete(deploy.ID, "Juanito")
	req.NoError(err)
	area, err = f.areas.Get("ai")
	req.NoError(err)
	req.Equal(100, area.Progress)

	req.NoError(f.tasks.Delete(deploy.ID, "Juanito"))
	area, err = f.areas.Get("ai")
	req.NoError(err)
	req.Equal(100, area.Progress)
}

func TestTaskService_StoreErrorPropagates(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)

	areas := mocks.NewMockIAreaRepository(ctrl)
	subpoints := mocks.NewMockISubPointRepository(ctrl)
	svc := NewTaskService(slog.Default(), areas, subpoints)

	boom := fmt.Errorf("disk gone")
	subpoints.EXPECT().Get("subpoint:ai:1").Return(board.SubPoint{}, boom)

	_, err := svc.ToggleComplete("subpoint:ai:1", "Juanito")
	req.ErrorIs(err, boom)
}
