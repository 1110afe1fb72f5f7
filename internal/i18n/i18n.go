package i18n

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/active.*.toml
var embeddedLocales embed.FS

type Translations struct {
	bundle   *i18n.Bundle
	localize *i18n.Localizer
}

// NewTranslations loads the embedded locales plus any active.*.toml found in
// localesDir, which may be empty.
func NewTranslations(defaultLang string, localesDir string) (*Translations, error) {
	if defaultLang == "" {
		return nil, errors.New("language cannot be empty")
	}

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	embedded, err := fs.Glob(embeddedLocales, "locales/active.*.toml")
	if err != nil {
		return nil, fmt.Errorf("error reading embedded locales: %w", err)
	}
	for _, name := range embedded {
		data, err := embeddedLocales.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("error reading embedded locale %s: %w", name, err)
		}
		if _, err := bundle.ParseMessageFileBytes(data, path.Base(name)); err != nil {
			return nil, fmt.Errorf("error parsing embedded locale %s: %w", name, err)
		}
	}

	if localesDir != "" {
		files, err := filepath.Glob(filepath.Join(localesDir, "active.*.toml"))
		if err != nil {
			return nil, fmt.Errorf("error reading locales: %w", err)
		}

		for _, file := range files {
			if _, err := bundle.LoadMessageFile(file); err != nil {
				return nil, fmt.Errorf("error loading locale file %s: %w", file, err)
			}
		}
	}

	return &Translations{
		bundle:   bundle,
		localize: i18n.NewLocalizer(bundle, defaultLang),
	}, nil
}

// Default returns English translations from the embedded locales.
func Default() *Translations {
	t, err := NewTranslations("en", "")
	if err != nil {
		panic("i18n: embedded locales are invalid: " + err.Error())
	}
	return t
}

func (t *Translations) SetLanguage(lang string) error {
	for _, tag := range t.bundle.LanguageTags() {
		if tag.String() == lang {
			t.localize = i18n.NewLocalizer(t.bundle, lang)
			return nil
		}
	}
	return fmt.Errorf("language '%s' not supported", lang)
}

// Languages lists the tags with loaded messages.
func (t *Translations) Languages() []string {
	tags := t.bundle.LanguageTags()
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		out = append(out, tag.String())
	}
	return out
}

func (t *Translations) GetMessage(messageID string, count int, templateData map[string]interface{}) string {
	if t == nil || t.localize == nil {
		return "Translation missing: " + messageID
	}
	localized, err := t.localize.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{
			ID: messageID,
		},
		PluralCount:  count,
		TemplateData: templateData,
	})
	if err != nil {
		return "Translation missing: " + messageID
	}
	return localized
}
