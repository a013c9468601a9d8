package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shanuka19697/LMS-sub001/internal/domain/model"
	"github.com/shanuka19697/LMS-sub001/internal/mocks"
)

func newTestPaperMarkService(t *testing.T, ctrl *gomock.Controller) (*PaperMarkService, *mocks.MockPaperMarkRepository, *mocks.MockPaperRepository) {
	t.Helper()
	marks := mocks.NewMockPaperMarkRepository(ctrl)
	papers := mocks.NewMockPaperRepository(ctrl)
	svc, err := NewPaperMarkService(PaperMarkServiceOptions{Marks: marks, Papers: papers})
	require.NoError(t, err)
	return svc, marks, papers
}

func TestNewPaperMarkService_RequiredDependencies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	marks := mocks.NewMockPaperMarkRepository(ctrl)
	papers := mocks.NewMockPaperRepository(ctrl)

	_, err := NewPaperMarkService(PaperMarkServiceOptions{Papers: papers})
	assert.Error(t, err)

	_, err = NewPaperMarkService(PaperMarkServiceOptions{Marks: marks})
	assert.Error(t, err)
}

func TestPaperMarkService_Create_RejectsOutOfRangeMark(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestPaperMarkService(t, ctrl)
	req := &model.CreatePaperMarkRequest{
		PaperID:   "p-1",
		StudentID: "s-1",
		MCQMark:   101,
	}
	mark, err := svc.Create(context.Background(), req)
	assert.Nil(t, mark)
	assert.Error(t, err)
}

func TestPaperMarkService_ResultsForStudent_ComputesTotals(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, marks, papers := newTestPaperMarkService(t, ctrl)
	ctx := context.Background()

	marks.EXPECT().
		ListByStudent(ctx, "s-1", 50, 0).
		Return([]*model.PaperMark{
			{ID: "m-1", PaperID: "p-mcq", StudentID: "s-1", MCQMark: 70, StructuredMark: 55},
			{ID: "m-2", PaperID: "p-str", StudentID: "s-1", MCQMark: 40, StructuredMark: 35},
		}, nil)
	papers.EXPECT().
		GetByID(ctx, "p-mcq").
		Return(&model.Paper{ID: "p-mcq", Type: model.PaperTypeMCQ}, nil)
	papers.EXPECT().
		GetByID(ctx, "p-str").
		Return(&model.Paper{ID: "p-str", Type: model.PaperTypeStructured}, nil)

	results, err := svc.ResultsForStudent(ctx, "s-1", 50, 0)
	require.NoError(t, err)
	require.Len(t, results, 2)

	// MCQ papers count only the MCQ component.
	assert.Equal(t, 70, results[0].Total)
	// Structured papers sum both components.
	assert.Equal(t, 75, results[1].Total)
}

func TestPaperMarkService_ResultsForStudent_PaperLookupError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, marks, papers := newTestPaperMarkService(t, ctrl)
	ctx := context.Background()

	marks.EXPECT().
		ListByStudent(ctx, "s-1", 50, 0).
		Return([]*model.PaperMark{{ID: "m-1", PaperID: "p-gone", StudentID: "s-1"}}, nil)
	papers.EXPECT().
		GetByID(ctx, "p-gone").
		Return(nil, assert.AnError)

	results, err := svc.ResultsForStudent(ctx, "s-1", 50, 0)
	assert.Nil(t, results)
	assert.ErrorIs(t, err, assert.AnError)
}
