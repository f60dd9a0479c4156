package ui

import (
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Dark-background brand colors.
const (
	ColorPrimary   = "#38BDF8"
	ColorSecondary = "#A78BFA"
	ColorSuccess   = "#34D399"
	ColorWarning   = "#FBBF24"
	ColorError     = "#F87171"
	ColorText      = "#E5E7EB"
	ColorMuted     = "#6B7280"
	ColorBorder    = "#374151"
)

// Palette holds the adaptive colors used by a Theme.
type Palette struct {
	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor
	Success   lipgloss.AdaptiveColor
	Warning   lipgloss.AdaptiveColor
	Error     lipgloss.AdaptiveColor
	Text      lipgloss.AdaptiveColor
	Muted     lipgloss.AdaptiveColor
	Border    lipgloss.AdaptiveColor
}

// Theme carries the terminal styling for CLI output. With NoColor set every
// style renders plain text.
type Theme struct {
	NoColor bool
	Colors  Palette
}

// NewTheme returns the secforge theme. noColor disables all styling.
func NewTheme(noColor bool) *Theme {
	return &Theme{
		NoColor: noColor,
		Colors: Palette{
			Primary:   lipgloss.AdaptiveColor{Light: "#0369A1", Dark: ColorPrimary},
			Secondary: lipgloss.AdaptiveColor{Light: "#5B21B6", Dark: ColorSecondary},
			Success:   lipgloss.AdaptiveColor{Light: "#059669", Dark: ColorSuccess},
			Warning:   lipgloss.AdaptiveColor{Light: "#B45309", Dark: ColorWarning},
			Error:     lipgloss.AdaptiveColor{Light: "#DC2626", Dark: ColorError},
			Text:      lipgloss.AdaptiveColor{Light: "#111827", Dark: ColorText},
			Muted:     lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: ColorMuted},
			Border:    lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: ColorBorder},
		},
	}
}

// ThemeFromEnv returns NewTheme with NoColor set when NO_COLOR is non-empty
// or TERM is "dumb".
func ThemeFromEnv() *Theme {
	noColor := strings.TrimSpace(os.Getenv("NO_COLOR")) != "" || os.Getenv("TERM") == "dumb"
	return NewTheme(noColor)
}

func (t *Theme) style(c lipgloss.AdaptiveColor) lipgloss.Style {
	if t.NoColor {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(c)
}

// Title renders s as a heading.
func (t *Theme) Title(s string) string {
	if t.NoColor {
		return s
	}
	return t.style(t.Colors.Primary).Bold(true).Render(s)
}

// Success renders s in the success color.
func (t *Theme) Success(s string) string { return t.style(t.Colors.Success).Render(s) }

// Warn renders s in the warning color.
func (t *Theme) Warn(s string) string { return t.style(t.Colors.Warning).Render(s) }

// Error renders s in the error color.
func (t *Theme) Error(s string) string { return t.style(t.Colors.Error).Render(s) }

// Muted renders s in the muted color.
func (t *Theme) Muted(s string) string { return t.style(t.Colors.Muted).Render(s) }

// Card wraps body in a rounded border. NoColor returns body unchanged.
func (t *Theme) Card(body string) string {
	if t.NoColor {
		return body
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Colors.Border).
		Padding(0, 1).
		Render(body)
}

// Form returns a huh theme in the secforge colors.
func (t *Theme) Form() *huh.Theme {
	if t.NoColor {
		return huh.ThemeBase()
	}
	c := t.Colors
	f := huh.ThemeBase()

	f.Focused.Base = f.Focused.Base.BorderForeground(c.Border)
	f.Focused.Card = f.Focused.Base
	f.Focused.Title = f.Focused.Title.Foreground(c.Primary).Bold(true)
	f.Focused.NoteTitle = f.Focused.NoteTitle.Foreground(c.Primary).Bold(true).MarginBottom(1)
	f.Focused.Description = f.Focused.Description.Foreground(c.Muted)
	f.Focused.ErrorIndicator = f.Focused.ErrorIndicator.Foreground(c.Error)
	f.Focused.ErrorMessage = f.Focused.ErrorMessage.Foreground(c.Error)
	f.Focused.SelectSelector = f.Focused.SelectSelector.Foreground(c.Primary).SetString("▸ ")
	f.Focused.NextIndicator = f.Focused.NextIndicator.Foreground(c.Primary)
	f.Focused.PrevIndicator = f.Focused.PrevIndicator.Foreground(c.Primary)
	f.Focused.Option = f.Focused.Option.Foreground(c.Text)
	f.Focused.MultiSelectSelector = f.Focused.MultiSelectSelector.Foreground(c.Primary)
	f.Focused.SelectedOption = f.Focused.SelectedOption.Foreground(c.Success)
	f.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(c.Success).SetString("◆ ")
	f.Focused.UnselectedOption = f.Focused.UnselectedOption.Foreground(c.Text)
	f.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(c.Muted).SetString("◇ ")
	f.Focused.TextInput.Cursor = f.Focused.TextInput.Cursor.Foreground(c.Primary)
	f.Focused.TextInput.Placeholder = f.Focused.TextInput.Placeholder.Foreground(c.Muted)
	f.Focused.TextInput.Prompt = f.Focused.TextInput.Prompt.Foreground(c.Secondary)
	f.Focused.FocusedButton = f.Focused.FocusedButton.
		Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}).
		Background(c.Primary)
	f.Focused.BlurredButton = f.Focused.BlurredButton.
		Foreground(c.Text).
		Background(lipgloss.AdaptiveColor{Light: "#E5E7EB", Dark: "#374151"})
	f.Focused.Next = f.Focused.FocusedButton

	f.Blurred = f.Focused
	f.Blurred.Base = f.Focused.Base.BorderStyle(lipgloss.HiddenBorder())
	f.Blurred.Card = f.Blurred.Base
	f.Blurred.NextIndicator = lipgloss.NewStyle()
	f.Blurred.PrevIndicator = lipgloss.NewStyle()

	f.Group.Title = f.Focused.Title
	f.Group.Description = f.Focused.Description

	return f
}
