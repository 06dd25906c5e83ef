package dateformat

import (
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// Message IDs. Month and weekday names are keyed by their English
// time.Month and time.Weekday names.
const (
	MsgNoDate             = "NoDate"
	MsgInvalidDate        = "InvalidDate"
	MsgDateError          = "DateError"
	MsgToday              = "Today"
	MsgTomorrow           = "Tomorrow"
	MsgDayAfterTomorrow   = "DayAfterTomorrow"
	MsgInDays             = "InDays"
	MsgSecondsAgo         = "SecondsAgo"
	MsgMinutesAgo         = "MinutesAgo"
	MsgHoursAgo           = "HoursAgo"
	MsgYesterday          = "Yesterday"
	MsgDayBeforeYesterday = "DayBeforeYesterday"
)

var localeFiles = []string{"locales/active.en.json", "locales/active.he.json"}

// Catalog renders user-facing phrases in one language.
type Catalog struct {
	lang      language.Tag
	localizer *i18n.Localizer
}

// NewCatalog loads the embedded messages and selects lang ("en", "he").
// Phrases missing in lang fall back to English.
func NewCatalog(lang string) (*Catalog, error) {
	tag, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("parse language %q: %w", lang, err)
	}

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
	for _, path := range localeFiles {
		if _, err := bundle.LoadMessageFileFS(localeFS, path); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}

	return &Catalog{
		lang:      tag,
		localizer: i18n.NewLocalizer(bundle, tag.String(), language.English.String()),
	}, nil
}

// Language returns the selected language tag.
func (c *Catalog) Language() language.Tag {
	return c.lang
}

// Message returns the phrase for id, or id itself when it is unknown.
func (c *Catalog) Message(id string) string {
	return c.localize(&i18n.LocalizeConfig{MessageID: id})
}

// Count returns the plural form of id for n, with n available to the
// template as {{.Count}}.
func (c *Catalog) Count(id string, n int) string {
	return c.localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: map[string]any{"Count": n},
		PluralCount:  n,
	})
}

func (c *Catalog) localize(cfg *i18n.LocalizeConfig) string {
	msg, err := c.localizer.Localize(cfg)
	if err != nil {
		slog.Debug("translation missing",
			"component", "dateformat",
			"key", cfg.MessageID,
			"lang", c.lang.String(),
			"error", err,
		)
	}
	if msg == "" {
		return cfg.MessageID
	}
	return msg
}
