package constants

// Chart geometry, in pixels. These are fixed for every chart instance.
const (
	BlockSize          = 30 // width of one day cell
	RowHeight          = 40 // height of one display row
	HeaderOffset       = 48 // page header above the chart
	ScrollbarAllowance = 20 // horizontal scrollbar below the canvas
	BarTopInset        = 10 // vertical inset of a task bar within its row
	BarHeight          = 20
	HandleInset        = 2 // resize handle extent inside the bar edge
	HandleOutset       = 6 // resize handle extent outside the bar edge

	// Default chart range, used when no chart config exists.
	DefaultStartMonth = "2022-04"
	DefaultEndMonth   = "2023-02"
)
