package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/gantt/internal/models"
)

func sampleRows() []models.DisplayRow {
	return []models.DisplayRow{
		models.CategoryRow(models.Category{ID: 1, Name: "Design"}),
		models.TaskRow(models.Task{
			ID:         10,
			CategoryID: 1,
			Name:       "Wireframes",
			StartDate:  models.MustParseDate("2022-11-18"),
			EndDate:    models.MustParseDate("2022-11-20"),
		}),
		models.TaskRow(models.Task{
			ID:         11,
			CategoryID: 1,
			Name:       "Review",
			StartDate:  models.MustParseDate("2022-12-01"),
			EndDate:    models.MustParseDate("2022-12-01"),
		}),
	}
}

func TestProject(t *testing.T) {
	start := models.YearMonth{Year: 2022, Month: 11}
	rects := Project(sampleRows(), start, 30)
	require.Len(t, rects, 3)

	cat := rects[0]
	assert.False(t, cat.HasBar)
	assert.Equal(t, models.RowCategory, cat.Kind)
	assert.Equal(t, 1, cat.ID)
	assert.Equal(t, 10, cat.Top)

	bar := rects[1]
	assert.True(t, bar.HasBar)
	assert.Equal(t, 1, bar.RowIndex)
	assert.Equal(t, 17*30, bar.Left)
	assert.Equal(t, 90, bar.Width)
	assert.Equal(t, 50, bar.Top)
	assert.Equal(t, 600, bar.Right())

	single := rects[2]
	assert.Equal(t, 30*30, single.Left)
	assert.Equal(t, 30, single.Width, "a one-day task is one block wide")
	assert.Equal(t, 90, single.Top)
}

func TestProject_AcrossMonths(t *testing.T) {
	// April through October 2022 is 214 days.
	start := models.YearMonth{Year: 2022, Month: 4}
	rects := Project(sampleRows()[1:2], start, 30)
	require.Len(t, rects, 1)
	assert.Equal(t, (214+17)*30, rects[0].Left)
	assert.Equal(t, 10, rects[0].Top, "row index restarts at the first row passed in")
}

func TestProject_BeforeChartStart(t *testing.T) {
	start := models.YearMonth{Year: 2022, Month: 12}
	rects := Project(sampleRows()[1:2], start, 30)
	assert.Equal(t, -13*30, rects[0].Left)
}

func TestHitTest(t *testing.T) {
	start := models.YearMonth{Year: 2022, Month: 11}
	rects := Project(sampleRows(), start, 30)

	tests := []struct {
		name   string
		x, y   int
		wantOK bool
		part   Part
		id     int
	}{
		{"body", 550, 60, true, PartBody, 10},
		{"left handle outside edge", 505, 60, true, PartLeftHandle, 10},
		{"left handle inside edge", 511, 60, true, PartLeftHandle, 10},
		{"just past left handle", 512, 60, true, PartBody, 10},
		{"right handle inside edge", 598, 60, true, PartRightHandle, 10},
		{"right handle outside edge", 605, 60, true, PartRightHandle, 10},
		{"past right handle", 606, 60, false, PartNone, 0},
		{"above bar within row", 550, 45, false, PartNone, 0},
		{"category row", 550, 20, false, PartNone, 0},
		{"second task", 910, 95, true, PartBody, 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := HitTest(rects, tt.x, tt.y, DefaultHandles)
			require.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.part, hit.Part)
			if ok {
				assert.Equal(t, tt.id, hit.Rect.ID)
			}
		})
	}
}

func TestHitTest_CustomHandles(t *testing.T) {
	start := models.YearMonth{Year: 2022, Month: 11}
	rects := Project(sampleRows(), start, 30)
	cells := Handles{Inset: 10}

	hit, ok := HitTest(rects, 515, 60, cells)
	require.True(t, ok)
	assert.Equal(t, PartLeftHandle, hit.Part)

	_, ok = HitTest(rects, 505, 60, cells)
	assert.False(t, ok)

	hit, ok = HitTest(rects, 595, 60, cells)
	require.True(t, ok)
	assert.Equal(t, PartRightHandle, hit.Part)
}

func TestPartString(t *testing.T) {
	assert.Equal(t, "body", PartBody.String())
	assert.Equal(t, "left-handle", PartLeftHandle.String())
	assert.Equal(t, "right-handle", PartRightHandle.String())
	assert.Equal(t, "none", PartNone.String())
}
