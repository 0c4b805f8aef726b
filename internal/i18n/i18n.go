// Package i18n holds the game's user-facing strings in the supported
// locales.
package i18n

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Key identifies a translatable message.
type Key string

const (
	Title        Key = "title"
	SubtitlePlay Key = "subtitle.play"
	SubtitleWon  Key = "subtitle.won"
	Moves        Key = "moves"
	Time         Key = "time"
	Best         Key = "best"
	Matched      Key = "matched"
	WinHeading   Key = "win.heading"
	WinSummary   Key = "win.summary"
	WinPrompt    Key = "win.prompt"
	HelpFlip     Key = "help.flip"
	HelpMove     Key = "help.move"
	HelpNew      Key = "help.new"
	HelpReset    Key = "help.reset"
	HelpSet      Key = "help.set"
	HelpLevel    Key = "help.level"
	HelpLanguage Key = "help.language"
	HelpTheme    Key = "help.theme"
	HelpHelp     Key = "help.help"
	HelpQuit     Key = "help.quit"
	Difficulty   Key = "difficulty"
	VisualSet    Key = "visual_set"
)

// Supported lists the locales with a full translation, default first.
var Supported = []language.Tag{
	language.English,
	language.Spanish,
	language.French,
	language.German,
}

var matcher = language.NewMatcher(Supported)

var cat = buildCatalog()

// Match resolves a user-supplied locale ("pt-BR", "es_MX", "de") to the
// closest supported tag. Unparseable input falls back to English.
func Match(s string) language.Tag {
	tag, err := language.Parse(s)
	if err != nil {
		return Supported[0]
	}
	_, index, conf := matcher.Match(tag)
	if conf == language.No {
		return Supported[0]
	}
	return Supported[index]
}

// Next returns the supported locale after tag, wrapping around.
func Next(tag language.Tag) language.Tag {
	for i, t := range Supported {
		if t == tag {
			return Supported[(i+1)%len(Supported)]
		}
	}
	return Supported[0]
}

// Translator renders messages for one locale.
type Translator struct {
	tag     language.Tag
	printer *message.Printer
}

// New returns a Translator for the closest supported match of locale.
func New(locale string) *Translator {
	tag := Match(locale)
	return &Translator{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(cat)),
	}
}

// Tag returns the resolved locale
func (t *Translator) Tag() language.Tag {
	return t.tag
}

// T renders key with args substituted.
func (t *Translator) T(key Key, args ...any) string {
	return t.printer.Sprintf(string(key), args...)
}

// Duration formats whole seconds as m:ss.
func (t *Translator) Duration(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

func buildCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(Supported[0]))
	for tag, msgs := range translations {
		for key, msg := range msgs {
			if err := b.SetString(tag, string(key), msg); err != nil {
				panic(fmt.Sprintf("i18n: %s/%s: %v", tag, key, err))
			}
		}
	}
	return b
}
