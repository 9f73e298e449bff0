// Package i18n looks up the user-facing strings of the trainer by locale.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Key identifies a message
type Key string

const (
	ContinuePrompt  Key = "continuePrompt"
	Yes             Key = "yes"
	TranslatePrompt Key = "translatePrompt"
	Box             Key = "box"
	NoWords         Key = "noWords"
	Correct         Key = "correct"
	Wrong           Key = "wrong"
)

var translations = map[language.Tag]map[Key]string{
	language.English: {
		ContinuePrompt:  "A saved session was found. Continue it? (yes/no)",
		Yes:             "yes",
		TranslatePrompt: "Translate:",
		Box:             "Box %d:",
		NoWords:         "There are no words to practise.",
		Correct:         "Correct!",
		Wrong:           "Wrong! The correct answer is: %s",
	},
	language.German: {
		ContinuePrompt:  "Eine gespeicherte Sitzung wurde gefunden. Fortsetzen? (ja/nein)",
		Yes:             "ja",
		TranslatePrompt: "Übersetze:",
		Box:             "Box %d:",
		NoWords:         "Es gibt keine Wörter zum Üben.",
		Correct:         "Richtig!",
		Wrong:           "Falsch! Die richtige Antwort ist: %s",
	},
	language.Russian: {
		ContinuePrompt:  "Найдена сохранённая сессия. Продолжить? (да/нет)",
		Yes:             "да",
		TranslatePrompt: "Переведите:",
		Box:             "Коробка %d:",
		NoWords:         "Нет слов для повторения.",
		Correct:         "Верно!",
		Wrong:           "Неверно! Правильный ответ: %s",
	},
}

// Supported lists the available locales; the first one is the fallback
var Supported = []language.Tag{language.English, language.German, language.Russian}

var (
	messages = buildCatalog()
	matcher  = language.NewMatcher(Supported)
)

func buildCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(Supported[0]))
	for tag, msgs := range translations {
		for key, text := range msgs {
			if err := b.SetString(tag, string(key), text); err != nil {
				panic(err)
			}
		}
	}
	return b
}

// Messages formats messages for one locale
type Messages struct {
	tag     language.Tag
	printer *message.Printer
}

// New creates messages for the closest supported match of locale.
// POSIX forms such as "de_DE.UTF-8" are accepted.
func New(locale string) *Messages {
	tag := Match(locale)
	return &Messages{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(messages)),
	}
}

// Match returns the supported locale closest to locale
func Match(locale string) language.Tag {
	requested, err := language.Parse(normalize(locale))
	if err != nil {
		return Supported[0]
	}
	_, index, _ := matcher.Match(requested)
	return Supported[index]
}

// Tag returns the selected locale
func (m *Messages) Tag() language.Tag {
	return m.tag
}

// Get formats the message for key
func (m *Messages) Get(key Key, args ...interface{}) string {
	return m.printer.Sprintf(string(key), args...)
}

// IsYes checks a reply against the localized "yes"
func (m *Messages) IsYes(reply string) bool {
	return strings.EqualFold(strings.TrimSpace(reply), m.Get(Yes))
}

func normalize(locale string) string {
	locale = strings.TrimSpace(locale)
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	if locale == "C" || locale == "POSIX" {
		return ""
	}
	return strings.ReplaceAll(locale, "_", "-")
}
