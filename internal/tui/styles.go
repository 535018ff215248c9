package tui

import "github.com/charmbracelet/lipgloss"

var (
	FrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170"))

	ProgressStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	PromptStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252"))
	OptionStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	SelectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	CorrectStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	WrongStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	MutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	HelpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
	ErrorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

var gradeColors = map[string]lipgloss.Color{
	"green":  lipgloss.Color("42"),
	"blue":   lipgloss.Color("39"),
	"yellow": lipgloss.Color("220"),
	"orange": lipgloss.Color("214"),
	"red":    lipgloss.Color("196"),
}

// GradeStyle colors a grade label by its band color name.
func GradeStyle(color string) lipgloss.Style {
	c, ok := gradeColors[color]
	if !ok {
		c = lipgloss.Color("252")
	}
	return lipgloss.NewStyle().Foreground(c).Bold(true)
}
