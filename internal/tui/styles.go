package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(lipgloss.Color("236")).
			Padding(0, 1).
			Bold(true)

	rangeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	taskStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(lipgloss.Color("236"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	dangerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Italic(true)

	docStyle = lipgloss.NewStyle().Padding(1, 2)
)

// Chart cell styles, indexed by cellStyle.
type cellStyle int

const (
	cellPlain cellStyle = iota
	cellSaturday
	cellSunday
	cellToday
	cellBar
	cellProgress
	cellActive
	cellDayNumber
	cellMonth
)

var cellStyles = []lipgloss.Style{
	cellPlain:     lipgloss.NewStyle(),
	cellSaturday:  lipgloss.NewStyle().Background(lipgloss.Color("17")),
	cellSunday:    lipgloss.NewStyle().Background(lipgloss.Color("52")),
	cellToday:     lipgloss.NewStyle().Background(lipgloss.Color("58")),
	cellBar:       lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
	cellProgress:  lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	cellActive:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
	cellDayNumber: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	cellMonth:     headerStyle,
}
