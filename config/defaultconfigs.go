package config

var DefaultConfig Config
var DefaultTheme Theme

func init() {
	DefaultTheme = Theme{
		FullWidthLetters: false,
		Colors: ConfigColors{
			BoardColor:        180,
			LineColor:         94,
			BlackColor:        232,
			WhiteColor:        255,
			CursorColorBG:     4,
			LastPlayedColorBG: 2,
		},
		Symbols: ConfigSymbols{
			BlackStone: '●',
			WhiteStone: '○',
		},
	}

	DefaultConfig = Config{
		Theme: DefaultTheme,
		Records: RecordsConfig{
			Autosave: true,
			Dir:      "",
		},
	}
}
