package styles

// DefaultTheme is the baseline palette.
var DefaultTheme = Theme{
	Name: "default",
	Tokens: ThemeTokens{
		Background: "#0B0F14",
		Panel:      "#121821",
		Text:       "#E6EDF3",
		TextMuted:  "#8B9AAE",
		Border:     "#223043",
		Accent:     "#5B8DEF",
		Focus:      "#7AA2F7",
		Success:    "#3FB950",
		Warning:    "#D29922",
		Error:      "#F85149",
		Info:       "#58A6FF",
		Blocks: map[string]string{
			"blue":    "#3B82F6",
			"red":     "#EF4444",
			"pink":    "#EC4899",
			"orange":  "#F97316",
			"green":   "#22C55E",
			"gray":    "#6B7280",
			"cyan":    "#06B6D4",
			"emerald": "#10B981",
			"amber":   "#F59E0B",
			"rose":    "#F43F5E",
		},
	},
}
