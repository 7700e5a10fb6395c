package engine

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/gantt/internal/calendar"
	"github.com/julianstephens/gantt/internal/drag"
	"github.com/julianstephens/gantt/internal/geometry"
	"github.com/julianstephens/gantt/internal/logger"
	"github.com/julianstephens/gantt/internal/models"
	"github.com/julianstephens/gantt/internal/sample"
	"github.com/julianstephens/gantt/internal/viewport"
)

// layout gives a 600px wide, 170px high canvas: four visible rows.
var layout = viewport.Layout{
	ContainerWidth:  1000,
	ContainerHeight: 238,
	TaskPanelWidth:  400,
}

type recorder struct {
	got []Mutation
}

func (r *recorder) sink(m Mutation) {
	r.got = append(r.got, m)
}

func newEngine(t *testing.T) (*Engine, *recorder) {
	t.Helper()
	rec := &recorder{}
	e, err := New(Options{
		Start: models.YearMonth{Year: 2022, Month: 11},
		End:   models.YearMonth{Year: 2022, Month: 12},
		Today: models.MustParseDate("2022-11-20"),
		Sink:  rec.sink,
	}, sample.Categories(), sample.Tasks())
	require.NoError(t, err)
	e.Resize(layout)
	return e, rec
}

func rowIDs(rows []models.DisplayRow) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		prefix := "t"
		if r.Kind == models.RowCategory {
			prefix = "c"
		}
		out[i] = prefix + string(rune('0'+r.ID()))
	}
	return out
}

func rowOf(t *testing.T, e *Engine, kind models.RowKind, id int) models.DisplayRow {
	t.Helper()
	for _, r := range e.Rows() {
		if r.Kind == kind && r.ID() == id {
			return r
		}
	}
	t.Fatalf("no %s row %d", kind, id)
	return models.DisplayRow{}
}

func TestNew_InvalidRange(t *testing.T) {
	_, err := New(Options{
		Start: models.YearMonth{Year: 2023, Month: 2},
		End:   models.YearMonth{Year: 2022, Month: 4},
	}, nil, nil)

	var rangeErr *calendar.InvalidRangeError
	require.ErrorAs(t, err, &rangeErr)
}

func TestNew_Defaults(t *testing.T) {
	e, err := New(Options{
		Start: models.YearMonth{Year: 2022, Month: 4},
		End:   models.YearMonth{Year: 2022, Month: 4},
	}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 30, e.BlockSize())
	assert.False(t, e.Snapshot().Today.IsZero())
}

func TestSnapshot_AfterResize(t *testing.T) {
	e, _ := newEngine(t)
	s := e.Snapshot()

	assert.Equal(t, 600, s.CanvasWidth)
	assert.Equal(t, 170, s.CanvasHeight)
	assert.Equal(t, 8, s.TotalRows)
	assert.Equal(t, 61*30, s.ContentWidth)
	assert.Len(t, s.Calendar, 2)
	assert.Equal(t, []string{"c1", "t1", "t2", "t3"}, rowIDs(s.VisibleRows))
	require.Len(t, s.RowGeometry, 4)
	assert.False(t, s.RowGeometry[0].HasBar)
	assert.Equal(t, 17*30, s.RowGeometry[1].Left)
	assert.Equal(t, 50, s.RowGeometry[1].Top)
	assert.Equal(t, drag.Idle, s.Dragging.Mode)
	assert.Nil(t, s.DraggedRow)
	assert.Empty(t, s.Orphans)
}

func TestResize_CentersTodayOnce(t *testing.T) {
	e, _ := newEngine(t)

	// (19 + 1) * 30 - 600/2
	assert.Equal(t, 300, e.Snapshot().ScrollOffset)
	assert.Equal(t, 300, e.Snapshot().ScrollX)

	e.ScrollBy(100)
	e.Resize(viewport.Layout{ContainerWidth: 1100, ContainerHeight: 238, TaskPanelWidth: 400})
	assert.Equal(t, 400, e.Snapshot().ScrollX, "later resizes keep the user's scroll")
}

func TestScrollToToday(t *testing.T) {
	e, _ := newEngine(t)

	e.ScrollBy(-300)
	require.Equal(t, 0, e.Snapshot().ScrollX)
	e.ScrollToToday()
	assert.Equal(t, 300, e.Snapshot().ScrollX)
}

func TestResize_WaitsForUsableCanvas(t *testing.T) {
	e, err := New(Options{
		Start: models.YearMonth{Year: 2022, Month: 11},
		End:   models.YearMonth{Year: 2022, Month: 12},
		Today: models.MustParseDate("2022-11-20"),
	}, sample.Categories(), sample.Tasks())
	require.NoError(t, err)

	e.Resize(viewport.Layout{ContainerWidth: 300, TaskPanelWidth: 300})
	assert.Equal(t, 0, e.Snapshot().ScrollX)

	e.Resize(layout)
	assert.Equal(t, 300, e.Snapshot().ScrollX)
}

func TestWheel_StaysInBounds(t *testing.T) {
	e, _ := newEngine(t)

	for i := 0; i < 20; i++ {
		e.Wheel(120)
	}
	s := e.Snapshot()
	assert.Equal(t, 4, s.PositionID)
	assert.Equal(t, []string{"t4", "t5", "c2", "t6"}, rowIDs(s.VisibleRows))
	assert.Equal(t, 10, s.RowGeometry[0].Top, "geometry is relative to the first visible row")

	for i := 0; i < 20; i++ {
		e.Wheel(-120)
	}
	assert.Equal(t, 0, e.Snapshot().PositionID)
	assert.False(t, e.Wheel(0))
}

func TestPointerGesture_Move(t *testing.T) {
	e, rec := newEngine(t)

	require.NoError(t, e.PointerDown(100, Target{TaskID: 1, Part: geometry.PartBody}))
	assert.Equal(t, drag.Moving, e.Snapshot().Dragging.Mode)

	commit, ok, err := e.PointerUp(160)
	require.NoError(t, err)
	require.True(t, ok)
	assert.False(t, commit.Reverted)

	task, found := e.Task(1)
	require.True(t, found)
	assert.Equal(t, "2022-11-20", models.FormatDate(task.StartDate))
	assert.Equal(t, "2022-11-22", models.FormatDate(task.EndDate))
	assert.Equal(t, drag.Idle, e.Snapshot().Dragging.Mode)

	require.Len(t, rec.got, 1)
	m := rec.got[0]
	assert.Equal(t, MutationMoved, m.Kind)
	assert.Equal(t, 1, m.TaskID)
	assert.Equal(t, "2022-11-18", models.FormatDate(m.Before.StartDate))
	assert.Equal(t, task, m.After)
	assert.Equal(t, commit.GestureID.String(), m.GestureID)

	assert.Equal(t, 19*30, e.Snapshot().RowGeometry[1].Left)
}

func TestPointerGesture_RightResizeClamp(t *testing.T) {
	e, rec := newEngine(t)

	// Task 4 runs 2022-11-21..2022-11-30.
	require.NoError(t, e.PointerDown(500, Target{TaskID: 4, Part: geometry.PartRightHandle}))
	_, _, err := e.PointerUp(-100)
	require.NoError(t, err)

	task, _ := e.Task(4)
	assert.Equal(t, task.StartDate, task.EndDate)
	require.Len(t, rec.got, 1)
	assert.Equal(t, MutationResizedEnd, rec.got[0].Kind)
}

func TestPointerGesture_LeftResize(t *testing.T) {
	e, rec := newEngine(t)

	require.NoError(t, e.PointerDown(300, Target{TaskID: 2, Part: geometry.PartLeftHandle}))
	_, _, err := e.PointerUp(240)
	require.NoError(t, err)

	task, _ := e.Task(2)
	assert.Equal(t, "2022-11-17", models.FormatDate(task.StartDate))
	assert.Equal(t, "2022-11-23", models.FormatDate(task.EndDate))
	require.Len(t, rec.got, 1)
	assert.Equal(t, MutationResizedStart, rec.got[0].Kind)
}

func TestPointerGesture_DeadZoneEmitsNothing(t *testing.T) {
	e, rec := newEngine(t)
	before, _ := e.Task(1)

	require.NoError(t, e.PointerDown(100, Target{TaskID: 1, Part: geometry.PartBody}))
	e.PointerMove(110)
	commit, ok, err := e.PointerUp(110)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, commit.Reverted)

	after, _ := e.Task(1)
	assert.Equal(t, before, after)
	assert.Empty(t, rec.got)
	assert.Equal(t, 17*30, e.Snapshot().RowGeometry[1].Left, "preview snaps back")
}

func TestPointerMove_PreviewIsSeparateFromCommittedData(t *testing.T) {
	e, _ := newEngine(t)
	before, _ := e.Task(1)

	require.NoError(t, e.PointerDown(100, Target{TaskID: 1, Part: geometry.PartBody}))
	assert.True(t, e.PointerMove(130))

	s := e.Snapshot()
	assert.Equal(t, 17*30+30, s.RowGeometry[1].Left)
	assert.Equal(t, 18*30, s.RowGeometry[2].Left, "other bars keep their geometry")

	after, _ := e.Task(1)
	assert.Equal(t, before, after)
}

func TestPointerDown_Errors(t *testing.T) {
	t.Run("busy", func(t *testing.T) {
		e, _ := newEngine(t)
		require.NoError(t, e.PointerDown(100, Target{TaskID: 1, Part: geometry.PartBody}))
		err := e.PointerDown(100, Target{TaskID: 2, Part: geometry.PartLeftHandle})
		assert.ErrorIs(t, err, drag.ErrBusy)
		assert.Equal(t, 1, e.Snapshot().Dragging.TaskID)
	})

	t.Run("unknown task", func(t *testing.T) {
		e, _ := newEngine(t)
		err := e.PointerDown(100, Target{TaskID: 99, Part: geometry.PartBody})
		assert.ErrorIs(t, err, ErrUnknownTask)
		assert.Equal(t, drag.Idle, e.Snapshot().Dragging.Mode)
	})

	t.Run("no part", func(t *testing.T) {
		e, _ := newEngine(t)
		assert.Error(t, e.PointerDown(100, Target{TaskID: 1}))
	})
}

func TestPointerUp_Idle(t *testing.T) {
	e, rec := newEngine(t)
	_, ok, err := e.PointerUp(50)
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, rec.got)
}

func TestPointerUp_TaskRemovedMidGesture(t *testing.T) {
	e, _ := newEngine(t)
	require.NoError(t, e.PointerDown(100, Target{TaskID: 2, Part: geometry.PartBody}))
	require.NoError(t, e.RemoveTask(2))

	assert.Equal(t, drag.Idle, e.Snapshot().Dragging.Mode)
	_, ok, err := e.PointerUp(40)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestPointerDownAt(t *testing.T) {
	e, _ := newEngine(t)

	hit, ok, err := e.PointerDownAt(550, 60, geometry.DefaultHandles)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1, hit.Rect.ID)
	assert.Equal(t, geometry.PartBody, hit.Part)
	assert.Equal(t, drag.Moving, e.Snapshot().Dragging.Mode)

	_, _, err = e.PointerUp(550)
	require.NoError(t, err)

	_, ok, err = e.PointerDownAt(550, 20, geometry.DefaultHandles)
	assert.NoError(t, err)
	assert.False(t, ok, "category rows have no bar")
}

func TestDragOver_ReordersLive(t *testing.T) {
	e, rec := newEngine(t)

	e.DragStart(rowOf(t, e, models.RowTask, 5))
	assert.NotNil(t, e.Snapshot().DraggedRow)

	require.True(t, e.DragOver(rowOf(t, e, models.RowTask, 2)))
	assert.Equal(t, []string{"c1", "t1", "t5", "t2", "t3", "t4", "c2", "t6"}, rowIDs(e.Rows()))

	require.Len(t, rec.got, 1)
	m := rec.got[0]
	assert.Equal(t, MutationReordered, m.Kind)
	assert.Equal(t, 5, m.TaskID)
	assert.Equal(t, []int{1, 5, 2, 3, 4, 6}, m.Order)
	assert.Equal(t, 1, m.After.Position)

	require.True(t, e.DragOver(rowOf(t, e, models.RowCategory, 2)))
	assert.Equal(t, []string{"c1", "t1", "t2", "t3", "t4", "c2", "t5", "t6"}, rowIDs(e.Rows()))
	require.Len(t, rec.got, 2)
	assert.Equal(t, MutationRecategorized, rec.got[1].Kind)
	assert.Equal(t, 2, rec.got[1].After.CategoryID)

	e.DragEnd()
	assert.Nil(t, e.Snapshot().DraggedRow)
	assert.False(t, e.DragOver(rowOf(t, e, models.RowTask, 1)))
}

func TestDragOver_NoOps(t *testing.T) {
	e, rec := newEngine(t)

	assert.False(t, e.DragOver(rowOf(t, e, models.RowTask, 1)), "nothing dragged")

	e.DragStart(rowOf(t, e, models.RowCategory, 1))
	assert.False(t, e.DragOver(rowOf(t, e, models.RowCategory, 2)))
	assert.False(t, e.DragOver(rowOf(t, e, models.RowTask, 6)))

	e.DragStart(rowOf(t, e, models.RowTask, 3))
	assert.False(t, e.DragOver(rowOf(t, e, models.RowTask, 3)))
	assert.False(t, e.DragOver(rowOf(t, e, models.RowCategory, 1)), "already in that category")

	assert.Empty(t, rec.got)
}

func TestOrphans_ReportedAndLoggedOnce(t *testing.T) {
	var buf bytes.Buffer
	logger.InitWriter(&buf, false)
	defer func() { logger.Logger = nil }()

	tasks := append(sample.Tasks(), models.Task{
		ID:         7,
		CategoryID: 99,
		Name:       "Lost",
		StartDate:  models.MustParseDate("2022-11-01"),
		EndDate:    models.MustParseDate("2022-11-02"),
	})
	e, err := New(Options{
		Start: models.YearMonth{Year: 2022, Month: 11},
		End:   models.YearMonth{Year: 2022, Month: 12},
		Today: models.MustParseDate("2022-11-20"),
	}, sample.Categories(), tasks)
	require.NoError(t, err)

	s := e.Snapshot()
	require.Len(t, s.Orphans, 1)
	assert.Equal(t, 7, s.Orphans[0].ID)
	assert.Equal(t, 8, s.TotalRows)

	require.NoError(t, e.PutTask(models.Task{
		ID:         8,
		CategoryID: 1,
		Name:       "New",
		StartDate:  models.MustParseDate("2022-11-03"),
		EndDate:    models.MustParseDate("2022-11-03"),
	}))
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("unknown category")))
}

func TestPutAndRemoveTask(t *testing.T) {
	e, _ := newEngine(t)

	err := e.PutTask(models.Task{
		ID:         7,
		CategoryID: 2,
		Name:       "Launch",
		StartDate:  models.MustParseDate("2022-12-10"),
		EndDate:    models.MustParseDate("2022-12-12"),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"c1", "t1", "t2", "t3", "t4", "t5", "c2", "t6", "t7"}, rowIDs(e.Rows()))
	added, _ := e.Task(7)
	assert.Equal(t, 6, added.Position)

	added.Name = "Launch v2"
	require.NoError(t, e.PutTask(added))
	got, _ := e.Task(7)
	assert.Equal(t, "Launch v2", got.Name)
	assert.Len(t, e.Tasks(), 7)

	inverted := added
	inverted.StartDate = models.MustParseDate("2022-12-20")
	assert.Error(t, e.PutTask(inverted))

	require.NoError(t, e.RemoveTask(7))
	assert.Len(t, e.Tasks(), 6)
	assert.ErrorIs(t, e.RemoveTask(7), ErrUnknownTask)
}

func TestSetData_ClampsViewport(t *testing.T) {
	e, _ := newEngine(t)
	for i := 0; i < 10; i++ {
		e.Wheel(1)
	}
	require.Equal(t, 4, e.Snapshot().PositionID)

	e.SetData(sample.Categories()[:1], sample.Tasks()[:2])
	assert.Equal(t, 0, e.Snapshot().PositionID)
	assert.Len(t, e.Categories(), 1)
}
