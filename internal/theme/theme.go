package theme

import "github.com/charmbracelet/lipgloss"

// Palette holds the six color roles every theme defines.
type Palette struct {
	Accent     lipgloss.Color
	Background lipgloss.Color
	Surface    lipgloss.Color
	Container  lipgloss.Color
	Text       lipgloss.Color
	Error      lipgloss.Color
}

// Theme is one selectable color theme.
type Theme struct {
	Name        string
	Description string
	Dark        bool
	Palette     Palette
}

// DefaultThemeName is used when the settings row names an unknown theme.
const DefaultThemeName = "Onyx"

// Themes lists every built-in theme in picker order.
var Themes = []Theme{
	{
		Name:        "Onyx",
		Description: "Deep black for high contrast and OLED.",
		Dark:        true,
		Palette: Palette{
			Accent:     "#9575CD",
			Background: "#000000",
			Surface:    "#121212",
			Container:  "#808080",
			Text:       "#FFFFFF",
			Error:      "#CF6679",
		},
	},
	{
		Name:        "Midnight",
		Description: "Dark theme with cool blue tones.",
		Dark:        true,
		Palette: Palette{
			Accent:     "#4FC3F7",
			Background: "#0A1C2C",
			Surface:    "#1E3A4D",
			Container:  "#8C9EAA",
			Text:       "#FFFFFF",
			Error:      "#CF6679",
		},
	},
	{
		Name:        "Burgundy",
		Description: "Rich dark theme with deep reds.",
		Dark:        true,
		Palette: Palette{
			Accent:     "#FF6B6B",
			Background: "#6D3C45",
			Surface:    "#8A4651",
			Container:  "#BD9B94",
			Text:       "#FFFFFF",
			Error:      "#CF6679",
		},
	},
	{
		Name:        "Graphene",
		Description: "Soft, modern graphite tones.",
		Dark:        true,
		Palette: Palette{
			Accent:     "#B39DDB",
			Background: "#1E1E1E",
			Surface:    "#2D2D2D",
			Container:  "#808B81",
			Text:       "#FFFFFF",
			Error:      "#CF6679",
		},
	},
	{
		Name:        "Lumen",
		Description: "Bright, clean light theme.",
		Palette: Palette{
			Accent:     "#5E35B1",
			Background: "#FAFAFA",
			Surface:    "#FFFFFF",
			Container:  "#E0E0E0",
			Text:       "#1A1A1A",
			Error:      "#B00020",
		},
	},
	{
		Name:        "Beige",
		Description: "Warm and cozy light hues.",
		Palette: Palette{
			Accent:     "#8D6E63",
			Background: "#F5F0E6",
			Surface:    "#FFF8EE",
			Container:  "#D7CCC8",
			Text:       "#3E2723",
			Error:      "#B00020",
		},
	},
	{
		Name:        "Amethyst",
		Description: "Dark theme with subtle purple.",
		Dark:        true,
		Palette: Palette{
			Accent:     "#A390FF",
			Background: "#5B467B",
			Surface:    "#6D5A91",
			Container:  "#AB9DC2",
			Text:       "#FFFFFF",
			Error:      "#CF6679",
		},
	},
	{
		Name:        "Lavender",
		Description: "Airy light with purple accents.",
		Palette: Palette{
			Accent:     "#7E57C2",
			Background: "#F3EFFB",
			Surface:    "#FBF9FF",
			Container:  "#D1C4E9",
			Text:       "#2A2139",
			Error:      "#B00020",
		},
	},
	{
		Name:        "Aqua",
		Description: "Refreshing light water-inspired.",
		Palette: Palette{
			Accent:     "#0097A7",
			Background: "#E6F7FA",
			Surface:    "#F4FCFD",
			Container:  "#B2EBF2",
			Text:       "#103338",
			Error:      "#B00020",
		},
	},
	{
		Name:        "Mint",
		Description: "Crisp, cool light theme.",
		Palette: Palette{
			Accent:     "#2E7D5B",
			Background: "#EAF7F0",
			Surface:    "#F6FDF9",
			Container:  "#C8E6D5",
			Text:       "#12352A",
			Error:      "#B00020",
		},
	},
}

// ByName returns the theme with the given name, falling back to the
// default theme for unknown names.
func ByName(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ByName(DefaultThemeName)
}

// Names returns every theme name in picker order.
func Names() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
