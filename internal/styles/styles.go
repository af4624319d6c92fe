// Package styles defines the color themes and lipgloss styles used across
// the timeline UI.
package styles

import (
	"regexp"
	"sort"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// themeMu protects access to the theme registry and current theme.
var themeMu sync.RWMutex

// hexColorRegex validates hex color codes (#RRGGBB)
var hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// ColorPalette holds all theme colors.
type ColorPalette struct {
	// Brand colors
	Primary string `json:"primary"`
	Accent  string `json:"accent"`

	// Status colors
	Warning string `json:"warning"`
	Error   string `json:"error"`

	// Text colors
	TextPrimary   string `json:"textPrimary"`
	TextSecondary string `json:"textSecondary"`
	TextMuted     string `json:"textMuted"`

	// Background colors
	BgPrimary   string `json:"bgPrimary"`
	BgSecondary string `json:"bgSecondary"`
	BgSelection string `json:"bgSelection"`
	BgDim       string `json:"bgDim"`

	// Border colors
	BorderNormal string `json:"borderNormal"`
	BorderActive string `json:"borderActive"`

	// Timeline colors
	HoverGuide  string   `json:"hoverGuide"`
	Handle      string   `json:"handle"`
	HandleHover string   `json:"handleHover"`
	SpanColors  []string `json:"spanColors"`

	// Button colors
	Button        string `json:"button"`
	ButtonHoverBg string `json:"buttonHoverBg"`
}

// Theme represents a complete theme configuration.
type Theme struct {
	Name        string       `json:"name"`
	DisplayName string       `json:"displayName"`
	Colors      ColorPalette `json:"colors"`
}

var (
	// DefaultTheme is the built-in dark theme.
	DefaultTheme = Theme{
		Name:        "default",
		DisplayName: "Default Dark",
		Colors: ColorPalette{
			Primary: "#7C3AED",
			Accent:  "#F59E0B",

			Warning: "#F59E0B",
			Error:   "#EF4444",

			TextPrimary:   "#F9FAFB",
			TextSecondary: "#9CA3AF",
			TextMuted:     "#6B7280",

			BgPrimary:   "#111827",
			BgSecondary: "#1F2937",
			BgSelection: "#374151",
			BgDim:       "#0B101B",

			BorderNormal: "#374151",
			BorderActive: "#7C3AED",

			HoverGuide:  "#4B5563",
			Handle:      "#9CA3AF",
			HandleHover: "#F9FAFB",
			SpanColors:  []string{"#3B82F6", "#10B981", "#F59E0B", "#EC4899", "#8B5CF6"},

			Button:        "#E5E7EB",
			ButtonHoverBg: "#9D174D",
		},
	}

	// NordTheme is an arctic-blue palette.
	NordTheme = Theme{
		Name:        "nord",
		DisplayName: "Nord",
		Colors: ColorPalette{
			Primary: "#88C0D0",
			Accent:  "#EBCB8B",

			Warning: "#EBCB8B",
			Error:   "#BF616A",

			TextPrimary:   "#ECEFF4",
			TextSecondary: "#D8DEE9",
			TextMuted:     "#4C566A",

			BgPrimary:   "#2E3440",
			BgSecondary: "#3B4252",
			BgSelection: "#434C5E",
			BgDim:       "#272C36",

			BorderNormal: "#434C5E",
			BorderActive: "#88C0D0",

			HoverGuide:  "#4C566A",
			Handle:      "#D8DEE9",
			HandleHover: "#ECEFF4",
			SpanColors:  []string{"#81A1C1", "#A3BE8C", "#EBCB8B", "#B48EAD", "#D08770"},

			Button:        "#ECEFF4",
			ButtonHoverBg: "#5E81AC",
		},
	}

	// MonoTheme renders without strong hues, for limited palettes.
	MonoTheme = Theme{
		Name:        "mono",
		DisplayName: "Monochrome",
		Colors: ColorPalette{
			Primary: "#D4D4D4",
			Accent:  "#FFFFFF",

			Warning: "#D4D4D4",
			Error:   "#FFFFFF",

			TextPrimary:   "#E8E8E8",
			TextSecondary: "#A8A8A8",
			TextMuted:     "#686868",

			BgPrimary:   "#101010",
			BgSecondary: "#1C1C1C",
			BgSelection: "#383838",
			BgDim:       "#0A0A0A",

			BorderNormal: "#383838",
			BorderActive: "#D4D4D4",

			HoverGuide:  "#505050",
			Handle:      "#A8A8A8",
			HandleHover: "#FFFFFF",
			SpanColors:  []string{"#909090", "#B0B0B0", "#707070", "#D0D0D0", "#585858"},

			Button:        "#E8E8E8",
			ButtonHoverBg: "#505050",
		},
	}
)

var themeRegistry = map[string]Theme{
	"default": DefaultTheme,
	"nord":    NordTheme,
	"mono":    MonoTheme,
}

var currentTheme = "default"
var currentThemeValue = DefaultTheme

// IsValidHexColor reports whether hex looks like #RRGGBB.
func IsValidHexColor(hex string) bool {
	return hexColorRegex.MatchString(hex)
}

// IsValidTheme reports whether name is registered.
func IsValidTheme(name string) bool {
	themeMu.RLock()
	defer themeMu.RUnlock()
	_, ok := themeRegistry[name]
	return ok
}

// GetCurrentTheme returns the active theme.
func GetCurrentTheme() Theme {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return currentThemeValue
}

// ListThemes returns registered theme names, sorted.
func ListThemes() []string {
	themeMu.RLock()
	defer themeMu.RUnlock()
	names := make([]string, 0, len(themeRegistry))
	for name := range themeRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyTheme activates a theme by name with per-color overrides. Unknown
// names fall back to the default theme; invalid override values are
// ignored.
func ApplyTheme(name string, overrides map[string]string) {
	themeMu.Lock()
	theme, ok := themeRegistry[name]
	if !ok {
		theme = DefaultTheme
		name = "default"
	}
	applyOverrides(&theme.Colors, overrides)
	currentTheme = name
	currentThemeValue = theme
	themeMu.Unlock()

	rebuildStyles(theme.Colors)
}

func applyOverrides(p *ColorPalette, overrides map[string]string) {
	for key, value := range overrides {
		if !IsValidHexColor(value) {
			continue
		}
		switch key {
		case "primary":
			p.Primary = value
		case "accent":
			p.Accent = value
		case "textPrimary":
			p.TextPrimary = value
		case "textSecondary":
			p.TextSecondary = value
		case "textMuted":
			p.TextMuted = value
		case "bgSelection":
			p.BgSelection = value
		case "bgDim":
			p.BgDim = value
		case "hoverGuide":
			p.HoverGuide = value
		case "handle":
			p.Handle = value
		case "handleHover":
			p.HandleHover = value
		}
	}
}

// Package-level styles, rebuilt whenever a theme is applied.
var (
	Title       lipgloss.Style
	Muted       lipgloss.Style
	Footer      lipgloss.Style
	TrackName   lipgloss.Style
	AxisLabel   lipgloss.Style
	AxisTick    lipgloss.Style
	Handle      lipgloss.Style
	HandleHover lipgloss.Style
	HoverGuide  lipgloss.Style
	RangeLabel  lipgloss.Style
	Button      lipgloss.Style
	ButtonHover lipgloss.Style
	HelpPanel   lipgloss.Style
	Toast       lipgloss.Style
	ToastError  lipgloss.Style

	spanStyles []lipgloss.Style
)

func rebuildStyles(c ColorPalette) {
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.TextPrimary))

	Muted = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.TextMuted))

	Footer = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.TextSecondary)).
		Background(lipgloss.Color(c.BgSecondary))

	TrackName = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.TextSecondary))

	AxisLabel = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.TextMuted))

	AxisTick = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.BorderNormal))

	Handle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Handle)).
		Background(lipgloss.Color(c.BgSelection)).
		Bold(true)

	HandleHover = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.HandleHover)).
		Background(lipgloss.Color(c.BgSelection)).
		Bold(true)

	HoverGuide = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.HoverGuide))

	RangeLabel = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Accent)).
		Bold(true)

	Button = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Button)).
		Background(lipgloss.Color(c.BgSelection))

	ButtonHover = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Button)).
		Background(lipgloss.Color(c.ButtonHoverBg))

	HelpPanel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(c.BorderActive)).
		Padding(0, 1)

	Toast = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.TextPrimary)).
		Background(lipgloss.Color(c.BgSecondary)).
		Padding(0, 1)

	ToastError = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.TextPrimary)).
		Background(lipgloss.Color(c.Error)).
		Padding(0, 1)

	spanStyles = spanStyles[:0]
	for _, col := range c.SpanColors {
		spanStyles = append(spanStyles, lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.BgPrimary)).
			Background(lipgloss.Color(col)))
	}
}

// SpanStyle returns the style for track index i, cycling the palette.
func SpanStyle(i int) lipgloss.Style {
	themeMu.RLock()
	defer themeMu.RUnlock()
	if len(spanStyles) == 0 {
		return lipgloss.NewStyle()
	}
	return spanStyles[i%len(spanStyles)]
}

func init() {
	rebuildStyles(DefaultTheme.Colors)
}
