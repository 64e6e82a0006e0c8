package tui

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin palettes, true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

type palette struct {
	Pink     lipgloss.Color
	Mauve    lipgloss.Color
	Red      lipgloss.Color
	Yellow   lipgloss.Color
	Green    lipgloss.Color
	Teal     lipgloss.Color
	Blue     lipgloss.Color
	Lavender lipgloss.Color

	Text     lipgloss.Color
	Subtext1 lipgloss.Color
	Subtext0 lipgloss.Color
	Overlay1 lipgloss.Color
	Overlay0 lipgloss.Color
	Surface2 lipgloss.Color
	Surface1 lipgloss.Color
	Surface0 lipgloss.Color
	Base     lipgloss.Color
	Mantle   lipgloss.Color
}

// mocha is the dark flavour.
var mocha = palette{
	Pink:     "#f5c2e7",
	Mauve:    "#cba6f7",
	Red:      "#f38ba8",
	Yellow:   "#f9e2af",
	Green:    "#a6e3a1",
	Teal:     "#94e2d5",
	Blue:     "#89b4fa",
	Lavender: "#b4befe",

	Text:     "#cdd6f4",
	Subtext1: "#bac2de",
	Subtext0: "#a6adc8",
	Overlay1: "#7f849c",
	Overlay0: "#6c7086",
	Surface2: "#585b70",
	Surface1: "#45475a",
	Surface0: "#313244",
	Base:     "#1e1e2e",
	Mantle:   "#181825",
}

// latte is the light flavour.
var latte = palette{
	Pink:     "#ea76cb",
	Mauve:    "#8839ef",
	Red:      "#d20f39",
	Yellow:   "#df8e1d",
	Green:    "#40a02b",
	Teal:     "#179299",
	Blue:     "#1e66f5",
	Lavender: "#7287fd",

	Text:     "#4c4f69",
	Subtext1: "#5c5f77",
	Subtext0: "#6c6f85",
	Overlay1: "#8c8fa1",
	Overlay0: "#9ca0b0",
	Surface2: "#acb0be",
	Surface1: "#bcc0cc",
	Surface0: "#ccd0da",
	Base:     "#eff1f5",
	Mantle:   "#e6e9ef",
}

// colors lists every palette entry, for tests.
func (p palette) colors() []lipgloss.Color {
	return []lipgloss.Color{
		p.Pink, p.Mauve, p.Red, p.Yellow, p.Green, p.Teal, p.Blue, p.Lavender,
		p.Text, p.Subtext1, p.Subtext0, p.Overlay1, p.Overlay0,
		p.Surface2, p.Surface1, p.Surface0, p.Base, p.Mantle,
	}
}

// theme holds the styles derived from one palette.
type theme struct {
	dark bool
	p    palette

	headerBar  lipgloss.Style
	headerApp  lipgloss.Style
	title      lipgloss.Style
	tableHead  lipgloss.Style
	row        lipgloss.Style
	cursorRow  lipgloss.Style
	cursor     lipgloss.Style
	dim        lipgloss.Style
	statusBar  lipgloss.Style
	footer     lipgloss.Style
	helpKey    lipgloss.Style
	helpDesc   lipgloss.Style
	modal      lipgloss.Style
	label      lipgloss.Style
	fieldError lipgloss.Style
	warning    lipgloss.Style
}

func newTheme(dark bool) theme {
	p := latte
	if dark {
		p = mocha
	}
	return theme{
		dark: dark,
		p:    p,

		headerBar: lipgloss.NewStyle().
			Foreground(p.Text).
			Background(p.Mantle).
			Padding(0, 2),
		headerApp: lipgloss.NewStyle().
			Foreground(p.Pink).
			Bold(true),
		title:     lipgloss.NewStyle().Foreground(p.Pink).Bold(true),
		tableHead: lipgloss.NewStyle().Foreground(p.Subtext0).Bold(true),
		row:       lipgloss.NewStyle().Foreground(p.Text),
		cursorRow: lipgloss.NewStyle().
			Foreground(p.Text).
			Background(p.Surface0),
		cursor: lipgloss.NewStyle().Foreground(p.Pink).Bold(true),
		dim:    lipgloss.NewStyle().Foreground(p.Overlay1),
		statusBar: lipgloss.NewStyle().
			Foreground(p.Subtext1).
			Background(p.Surface0).
			Padding(0, 2),
		footer: lipgloss.NewStyle().
			Foreground(p.Subtext0).
			Background(p.Mantle).
			Padding(0, 2),
		helpKey:  lipgloss.NewStyle().Foreground(p.Pink).Bold(true),
		helpDesc: lipgloss.NewStyle().Foreground(p.Subtext0),
		modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Pink).
			Padding(0, 1),
		label:      lipgloss.NewStyle().Foreground(p.Lavender),
		fieldError: lipgloss.NewStyle().Foreground(p.Red),
		warning:    lipgloss.NewStyle().Foreground(p.Yellow).Bold(true),
	}
}
