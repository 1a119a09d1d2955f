package services

import (
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"task-lab/domain/board"
	"task-lab/mocks"
)

func TestAreaService_Stats(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)

	areas := mocks.NewMockIAreaRepository(ctrl)
	subpoints := mocks.NewMockISubPointRepository(ctrl)
	comments := mocks.NewMockICommentRepository(ctrl)
	svc := NewAreaService(slog.Default(), areas, subpoints, comments)

	subpoints.EXPECT().ListAll().Return([]board.SubPoint{
		{ID: "subpoint:ai:1", Completed: true},
		{ID: "subpoint:ai:2"},
		{ID: "subpoint:interfaz:3", Completed: true},
	}, nil)
	comments.EXPECT().CountAll().Return(7, nil)

	stats, err := svc.Stats()
	req.NoError(err)
	req.Equal(board.Stats{TotalComments: 7, TotalSubPoints: 3, CompletedSubPoints: 2}, stats)
}

func TestAreaService_StatsStoreError(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)

	areas := mocks.NewMockIAreaRepository(ctrl)
	subpoints := mocks.NewMockISubPointRepository(ctrl)
	comments := mocks.NewMockICommentRepository(ctrl)
	svc := NewAreaService(slog.Default(), areas, subpoints, comments)

	boom := fmt.Errorf("scan failed")
	subpoints.EXPECT().ListAll().Return(nil, boom)

	_, err := svc.Stats()
	req.ErrorIs(err, boom)
}
