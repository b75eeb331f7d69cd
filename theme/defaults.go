package theme

// Defaults returns the built-in themes.
func Defaults() []Theme {
	return []Theme{
		{
			Name:   "faces",
			Emojis: []string{"😀", "😅", "😡", "🤬", "😱", "🤯", "😳", "🥵", "🥶", "😶‍🌫️", "😨", "😰"},
			Color:  "red",
		},
		{
			Name:   "vehicles",
			Emojis: []string{"🚗", "🚕", "🚙", "🚌", "🚎", "🏎️", "🚓", "🚑", "🚒", "🚐", "🛻", "🚚", "🚲", "🛵", "✈️", "🚀"},
			Pairs:  8,
			Color:  "blue",
		},
		{
			Name:   "animals",
			Emojis: []string{"🐶", "🐱", "🐭", "🐹", "🐰", "🦊", "🐻", "🐼", "🐨", "🐯"},
			Pairs:  6,
			Color:  "#ff9500",
		},
		{
			Name:   "spooky",
			Emojis: []string{"👻", "🎃", "💀", "☠️", "👽", "👾", "🤖", "🤡", "💩"},
			Color:  "purple",
		},
	}
}
