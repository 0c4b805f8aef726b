package i18n

import "golang.org/x/text/language"

var translations = map[language.Tag]map[Key]string{
	language.English: {
		Title:        "Memory Pairs",
		SubtitlePlay: "Find all matching pairs",
		SubtitleWon:  "Every pair found!",
		Moves:        "Moves: %d",
		Time:         "Time: %s",
		Best:         "Best: %s",
		Matched:      "Pairs: %d/%d",
		WinHeading:   "You win!",
		WinSummary:   "%d moves in %s",
		WinPrompt:    "Press n for a new game",
		HelpFlip:     "flip",
		HelpMove:     "move",
		HelpNew:      "new game",
		HelpReset:    "reset",
		HelpSet:      "symbols",
		HelpLevel:    "difficulty",
		HelpLanguage: "language",
		HelpTheme:    "light/dark",
		HelpHelp:     "help",
		HelpQuit:     "quit",
		Difficulty:   "Level: %s",
		VisualSet:    "Symbols: %s",
	},
	language.Spanish: {
		Title:        "Parejas de memoria",
		SubtitlePlay: "Encuentra todas las parejas",
		SubtitleWon:  "¡Encontraste todas las parejas!",
		Moves:        "Movimientos: %d",
		Time:         "Tiempo: %s",
		Best:         "Mejor: %s",
		Matched:      "Parejas: %d/%d",
		WinHeading:   "¡Ganaste!",
		WinSummary:   "%d movimientos en %s",
		WinPrompt:    "Pulsa n para una nueva partida",
		HelpFlip:     "voltear",
		HelpMove:     "mover",
		HelpNew:      "nueva partida",
		HelpReset:    "reiniciar",
		HelpSet:      "símbolos",
		HelpLevel:    "dificultad",
		HelpLanguage: "idioma",
		HelpTheme:    "claro/oscuro",
		HelpHelp:     "ayuda",
		HelpQuit:     "salir",
		Difficulty:   "Nivel: %s",
		VisualSet:    "Símbolos: %s",
	},
	language.French: {
		Title:        "Paires de mémoire",
		SubtitlePlay: "Trouvez toutes les paires",
		SubtitleWon:  "Toutes les paires sont trouvées !",
		Moves:        "Coups : %d",
		Time:         "Temps : %s",
		Best:         "Record : %s",
		Matched:      "Paires : %d/%d",
		WinHeading:   "Gagné !",
		WinSummary:   "%d coups en %s",
		WinPrompt:    "Appuyez sur n pour une nouvelle partie",
		HelpFlip:     "retourner",
		HelpMove:     "déplacer",
		HelpNew:      "nouvelle partie",
		HelpReset:    "recommencer",
		HelpSet:      "symboles",
		HelpLevel:    "difficulté",
		HelpLanguage: "langue",
		HelpTheme:    "clair/sombre",
		HelpHelp:     "aide",
		HelpQuit:     "quitter",
		Difficulty:   "Niveau : %s",
		VisualSet:    "Symboles : %s",
	},
	language.German: {
		Title:        "Memory-Paare",
		SubtitlePlay: "Finde alle passenden Paare",
		SubtitleWon:  "Alle Paare gefunden!",
		Moves:        "Züge: %d",
		Time:         "Zeit: %s",
		Best:         "Bestzeit: %s",
		Matched:      "Paare: %d/%d",
		WinHeading:   "Gewonnen!",
		WinSummary:   "%d Züge in %s",
		WinPrompt:    "Drücke n für ein neues Spiel",
		HelpFlip:     "umdrehen",
		HelpMove:     "bewegen",
		HelpNew:      "neues Spiel",
		HelpReset:    "zurücksetzen",
		HelpSet:      "Symbole",
		HelpLevel:    "Schwierigkeit",
		HelpLanguage: "Sprache",
		HelpTheme:    "hell/dunkel",
		HelpHelp:     "Hilfe",
		HelpQuit:     "beenden",
		Difficulty:   "Stufe: %s",
		VisualSet:    "Symbole: %s",
	},
}
