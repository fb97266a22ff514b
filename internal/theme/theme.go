package theme

import "sort"

// DefaultName is the theme applied when no preference has been saved.
const DefaultName = "Steam"

// Theme is a named set of UI colors. Field names on disk match the
// launcher's themes.json format.
type Theme struct {
	BgDark  string `json:"bg_dark"`
	Bg      string `json:"bg"`
	Fg      string `json:"fg"`
	Hover   string `json:"hover"`
	Click   string `json:"click"`
	LabelBg string `json:"label_bg"`
	LabelFg string `json:"label_fg"`
}

// BuiltIn returns the hardcoded palettes. These are never persisted;
// user-saved themes overlay them by name.
func BuiltIn() map[string]Theme {
	return map[string]Theme{
		"Steam": {
			BgDark:  "#1b2838",
			Bg:      "#3b526b",
			Fg:      "white",
			Hover:   "#2a475e",
			Click:   "#417a9b",
			LabelBg: "#1b2838",
			LabelFg: "white",
		},
		"Dark": {
			BgDark:  "#2c3e50",
			Bg:      "#34495e",
			Fg:      "white",
			Hover:   "#3b526b",
			Click:   "#4a6078",
			LabelBg: "#2c3e50",
			LabelFg: "white",
		},
		"Nintendo": {
			BgDark:  "#E60012",
			Bg:      "#FF0018",
			Fg:      "white",
			Hover:   "#CC0010",
			Click:   "#B3000E",
			LabelBg: "#E60012",
			LabelFg: "white",
		},
		"PlayStation": {
			BgDark:  "#003399",
			Bg:      "#004C99",
			Fg:      "white",
			Hover:   "#002B7A",
			Click:   "#002566",
			LabelBg: "#003399",
			LabelFg: "white",
		},
		"Xbox": {
			BgDark:  "#107C10",
			Bg:      "#28A745",
			Fg:      "white",
			Hover:   "#0C6A0C",
			Click:   "#0A550A",
			LabelBg: "#107C10",
			LabelFg: "white",
		},
		"Ubisoft": {
			BgDark:  "#000000",
			Bg:      "#1E2C3D",
			Fg:      "#0090FF",
			Hover:   "#2A3C50",
			Click:   "#3A4E65",
			LabelBg: "#000000",
			LabelFg: "#0090FF",
		},
		"Blizzard": {
			BgDark:  "#0070D7",
			Bg:      "#1783D6",
			Fg:      "white",
			Hover:   "#005CBF",
			Click:   "#0050A4",
			LabelBg: "#0070D7",
			LabelFg: "white",
		},
	}
}

// Merge overlays user themes over the built-ins. User themes win on
// name collision.
func Merge(user map[string]Theme) map[string]Theme {
	all := BuiltIn()
	for name, t := range user {
		all[name] = t
	}
	return all
}

// Names returns the sorted theme names of the given set.
func Names(themes map[string]Theme) []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve looks up name in the merged set, falling back to the default
// built-in when the name is unknown.
func Resolve(name string, user map[string]Theme) Theme {
	if t, ok := Merge(user)[name]; ok {
		return t
	}
	return BuiltIn()[DefaultName]
}
