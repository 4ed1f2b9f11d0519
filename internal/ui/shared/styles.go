package shared

import "github.com/charmbracelet/lipgloss"

// k9s-like palette used across screens.
var (
	TitleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true)
	HeaderStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")).Underline(true)
	SelectedStyle = lipgloss.NewStyle().Background(lipgloss.Color("51")).Foreground(lipgloss.Color("0")).Bold(true)
	NormalStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	HintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	LabelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	ValueStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	KeyStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("201")).Bold(true)
	StatusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	ErrorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	SuccessStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
)
