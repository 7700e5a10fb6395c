package system

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/julianstephens/gantt/internal/cli"
	"github.com/julianstephens/gantt/internal/engine"
	"github.com/julianstephens/gantt/internal/geometry"
	"github.com/julianstephens/gantt/internal/models"
	"github.com/julianstephens/gantt/internal/viewport"
)

// DebugCmd groups commands for troubleshooting a chart.
type DebugCmd struct {
	DBPath   DebugDBPathCmd   `cmd:"" name:"db-path" help:"Print the database path."`
	DumpTask DebugDumpTaskCmd `cmd:"" name:"dump-task" help:"Dump a task as JSON."`
	Geometry DebugGeometryCmd `cmd:"" help:"Dump the visible rows and bar geometry as JSON."`
}

type DebugDBPathCmd struct{}

func (c *DebugDBPathCmd) Run(ctx *cli.Context) error {
	fmt.Println(ctx.Store.GetConfigPath())
	return nil
}

type DebugDumpTaskCmd struct {
	ID int `arg:"" help:"Task ID to dump."`
}

func (c *DebugDumpTaskCmd) Run(ctx *cli.Context) error {
	task, err := ctx.Store.GetTask(c.ID)
	if err != nil {
		return fmt.Errorf("failed to get task %d: %w", c.ID, err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(task)
}

// DebugGeometryCmd lays the chart out in a container of the given pixel
// size and prints what the engine would draw.
type DebugGeometryCmd struct {
	Width  int `help:"Container width in pixels." default:"1280"`
	Height int `help:"Container height in pixels." default:"720"`
	Panel  int `help:"Task panel width in pixels." default:"400"`
}

type geometryRow struct {
	Kind string         `json:"kind"`
	ID   int            `json:"id"`
	Name string         `json:"name"`
	Bar  *geometry.Rect `json:"bar,omitempty"`
}

type geometryDump struct {
	CanvasWidth  int           `json:"canvas_width"`
	CanvasHeight int           `json:"canvas_height"`
	ScrollX      int           `json:"scroll_x"`
	TotalRows    int           `json:"total_rows"`
	Rows         []geometryRow `json:"rows"`
	Orphans      []models.Task `json:"orphans,omitempty"`
}

func (c *DebugGeometryCmd) Run(ctx *cli.Context) error {
	eng, err := ctx.LoadEngine()
	if err != nil {
		return err
	}
	eng.Resize(viewport.Layout{
		ContainerWidth:  c.Width,
		ContainerHeight: c.Height,
		TaskPanelWidth:  c.Panel,
	})

	dump := buildGeometryDump(eng.Snapshot())

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(dump)
}

func buildGeometryDump(snap engine.Snapshot) geometryDump {
	dump := geometryDump{
		CanvasWidth:  snap.CanvasWidth,
		CanvasHeight: snap.CanvasHeight,
		ScrollX:      snap.ScrollX,
		TotalRows:    snap.TotalRows,
		Rows:         make([]geometryRow, len(snap.VisibleRows)),
		Orphans:      snap.Orphans,
	}
	for i, row := range snap.VisibleRows {
		r := geometryRow{Kind: row.Kind.String(), ID: row.ID(), Name: row.Name()}
		if rect := snap.RowGeometry[i]; rect.HasBar {
			r.Bar = &rect
		}
		dump.Rows[i] = r
	}
	return dump
}
