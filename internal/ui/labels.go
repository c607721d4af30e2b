package ui

import "davar/internal/scripture"

// labels holds the user-facing strings for one language.
type labels struct {
	Tagline     string
	SwipeHint   string
	TapHint     string
	Meanings    string
	Instances   string
	Root        string
	NoEntry     string
	TapNavigate string

	Settings    string
	Theme       string
	DarkMode    string
	LightMode   string
	Language    string
	Alternate   string
	AltDesc     string
	FullChapter string
	FullDesc    string
	HebrewOnly  string
	HebrewDesc  string

	Books    string
	Chapter  string
	Verse    string
	TodayIs  string
	Continue string
	GoTo     string
	Loading  string
}

var labelTable = map[scripture.Language]labels{
	scripture.English: {
		Tagline:     "focus on what's really important",
		SwipeHint:   "Swipe to navigate",
		TapHint:     "Tap a word to explore",
		Meanings:    "Meanings",
		Instances:   "Instances",
		Root:        "Root",
		NoEntry:     "No lexicon entry",
		TapNavigate: "Tap to Navigate",
		Settings:    "Settings",
		Theme:       "Theme",
		DarkMode:    "Dark Mode",
		LightMode:   "Light Mode",
		Language:    "Language",
		Alternate:   "Qumran Variants",
		AltDesc:     "Show Dead Sea Scrolls text",
		FullChapter: "Full Chapter",
		FullDesc:    "Show full chapter text",
		HebrewOnly:  "Hebrew Only",
		HebrewDesc:  "Show text in Hebrew only",
		Books:       "Books",
		Chapter:     "Chapter",
		Verse:       "Verse",
		TodayIs:     "Today is",
		Continue:    "Continue reading",
		GoTo:        "Go to (e.g. Psalms 23:1)",
		Loading:     "Loading...",
	},
	scripture.Spanish: {
		Tagline:     "enfócate en lo que realmente importa",
		SwipeHint:   "Desliza para navegar",
		TapHint:     "Toca una palabra para explorar",
		Meanings:    "Significados",
		Instances:   "Apariciones",
		Root:        "Raíz",
		NoEntry:     "Sin entrada léxica",
		TapNavigate: "Toca para navegar",
		Settings:    "Ajustes",
		Theme:       "Tema",
		DarkMode:    "Modo Oscuro",
		LightMode:   "Modo Claro",
		Language:    "Idioma",
		Alternate:   "Variantes de Qumrán",
		AltDesc:     "Mostrar texto de los Rollos del Mar Muerto",
		FullChapter: "Capítulo Completo",
		FullDesc:    "Mostrar texto completo del capítulo",
		HebrewOnly:  "Sólo Hebreo",
		HebrewDesc:  "Mostrar texto solo en hebreo",
		Books:       "Libros",
		Chapter:     "Capítulo",
		Verse:       "Versículo",
		TodayIs:     "Hoy es",
		Continue:    "Seguir leyendo",
		GoTo:        "Ir a (p. ej. Psalms 23:1)",
		Loading:     "Cargando...",
	},
	scripture.Hebrew: {
		Tagline:     "להתמקד במה שבאמת חשוב",
		SwipeHint:   "החלק כדי לנווט",
		TapHint:     "הקש על מילה כדי לחקור",
		Meanings:    "משמעויות",
		Instances:   "מופעים",
		Root:        "שורש",
		NoEntry:     "אין ערך במילון",
		TapNavigate: "הקש כדי לנווט",
		Settings:    "הגדרות",
		Theme:       "עיצוב",
		DarkMode:    "מצב כהה",
		LightMode:   "מצב בהיר",
		Language:    "שפה",
		Alternate:   "גרסאות קומראן",
		AltDesc:     "הצג טקסט מגילות מדבר יהודה",
		FullChapter: "פרק שלם",
		FullDesc:    "הצג טקסט של פרק שלם",
		HebrewOnly:  "עברית בלבד",
		HebrewDesc:  "הצג טקסט רק בעברית",
		Books:       "ספרים",
		Chapter:     "פרק",
		Verse:       "פסוק",
		TodayIs:     "היום הוא",
		Continue:    "המשך קריאה",
		GoTo:        "מעבר אל (Psalms 23:1)",
		Loading:     "טוען...",
	},
}

func labelsFor(lang scripture.Language) labels {
	if l, ok := labelTable[lang]; ok {
		return l
	}
	return labelTable[scripture.English]
}
