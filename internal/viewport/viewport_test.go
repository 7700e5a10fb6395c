package viewport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/gantt/internal/models"
)

// layoutFor returns a layout whose canvas is canvasW x canvasH pixels.
func layoutFor(canvasW, canvasH int) Layout {
	return Layout{
		ContainerWidth:  canvasW + 300,
		ContainerHeight: canvasH + 80 + 48 + 20,
		TaskPanelWidth:  300,
		TaskPanelHeight: 80,
	}
}

func rows(n int) []models.DisplayRow {
	out := make([]models.DisplayRow, n)
	for i := range out {
		out[i] = models.TaskRow(models.Task{ID: i + 1})
	}
	return out
}

func TestCanvasDimensions(t *testing.T) {
	m := New()
	m.SetLayout(Layout{ContainerWidth: 1280, ContainerHeight: 800, TaskPanelWidth: 400, TaskPanelHeight: 80})

	assert.Equal(t, 880, m.CanvasWidth())
	assert.Equal(t, 800-80-48-20, m.CanvasHeight())
	assert.Equal(t, (800-80-48-20)/40, m.VisibleRowCount())
}

func TestVisibleRowCount_NeverNegative(t *testing.T) {
	m := New()
	m.SetLayout(Layout{ContainerHeight: 10, TaskPanelHeight: 80})
	assert.Equal(t, 0, m.VisibleRowCount())
}

func TestWheel_DownStopsAtLastPage(t *testing.T) {
	m := New()
	m.SetLayout(layoutFor(600, 170))
	m.SetRowCount(10)
	require.Equal(t, 4, m.VisibleRowCount())
	require.Equal(t, 0, m.PositionID())

	assert.True(t, m.Wheel(3.5))
	assert.Equal(t, 1, m.PositionID())

	for i := 0; i < 20; i++ {
		m.Wheel(120)
	}
	assert.Equal(t, 6, m.PositionID())
	assert.False(t, m.Wheel(1))
}

func TestWheel_ExactFitStillStopsAtLastPage(t *testing.T) {
	m := New()
	m.SetLayout(layoutFor(600, 160))
	m.SetRowCount(10)

	for i := 0; i < 20; i++ {
		m.Wheel(1)
	}
	assert.Equal(t, 6, m.PositionID())
}

func TestWheel_UpStopsAtZero(t *testing.T) {
	m := New()
	m.SetLayout(layoutFor(600, 170))
	m.SetRowCount(10)
	m.Wheel(1)
	m.Wheel(1)

	assert.True(t, m.Wheel(-1))
	assert.Equal(t, 1, m.PositionID())
	assert.True(t, m.Wheel(-0.01))
	assert.False(t, m.Wheel(-1))
	assert.Equal(t, 0, m.PositionID())
}

func TestWheel_ZeroDeltaIgnored(t *testing.T) {
	m := New()
	m.SetLayout(layoutFor(600, 170))
	m.SetRowCount(10)
	assert.False(t, m.Wheel(0))
	assert.Equal(t, 0, m.PositionID())
}

func TestWheel_ShortListDoesNotScroll(t *testing.T) {
	m := New()
	m.SetLayout(layoutFor(600, 400))
	m.SetRowCount(3)
	assert.False(t, m.Wheel(1))
	assert.Equal(t, 0, m.PositionID())
}

func TestResize_ReclampsCursor(t *testing.T) {
	m := New()
	m.SetLayout(layoutFor(600, 170))
	m.SetRowCount(10)
	for i := 0; i < 6; i++ {
		m.Wheel(1)
	}
	require.Equal(t, 6, m.PositionID())

	m.SetLayout(layoutFor(600, 330)) // 8 rows visible
	assert.Equal(t, 2, m.PositionID())

	m.SetRowCount(5)
	assert.Equal(t, 0, m.PositionID())
}

func TestVisibleRows(t *testing.T) {
	m := New()
	m.SetLayout(layoutFor(600, 170))
	all := rows(10)
	m.SetRowCount(len(all))
	m.Wheel(1)
	m.Wheel(1)

	vis := m.VisibleRows(all)
	require.Len(t, vis, 4)
	assert.Equal(t, 3, vis[0].ID())
	assert.Equal(t, 6, vis[3].ID())

	m.SetRowCount(0)
	assert.Empty(t, m.VisibleRows(nil))
}

func TestScrollX_Bounded(t *testing.T) {
	m := New()
	m.SetLayout(layoutFor(600, 170))
	m.SetContentWidth(1000)

	m.SetScrollX(250)
	assert.Equal(t, 250, m.ScrollX())
	m.ScrollBy(1000)
	assert.Equal(t, 400, m.ScrollX())
	m.ScrollBy(-5000)
	assert.Equal(t, 0, m.ScrollX())
}

func TestInitialScrollOffset(t *testing.T) {
	start, err := models.ParseYearMonth("2022-11")
	require.NoError(t, err)

	today := models.MustParseDate("2022-11-18")
	// 17 days after Nov 1, plus one block, minus half the canvas.
	assert.Equal(t, 18*30-400, InitialScrollOffset(today, start, 30, 800))
	assert.Equal(t, 30-300, InitialScrollOffset(start.FirstDay(), start, 30, 600))
}
