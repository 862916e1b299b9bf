// Package i18n translates user-facing content strings.
package i18n

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Translator maps a message id to its text in the active locale
type Translator interface {
	Translate(msgid string) string
}

// Passthrough returns every message id untranslated
type Passthrough struct{}

// Translate returns msgid unchanged
func (Passthrough) Translate(msgid string) string {
	return msgid
}

// LocaleFile is the on-disk form of a translation catalog
type LocaleFile struct {
	Locale   string            `json:"locale"`
	Messages map[string]string `json:"messages"`
}

// CatalogTranslator translates through an x/text message catalog.
// Lookups are cached; message ids without a translation are returned as-is.
type CatalogTranslator struct {
	tag     language.Tag
	printer *message.Printer
	known   map[string]struct{}
	cache   *lru.Cache[string, string]
}

// NewCatalogTranslator builds a translator for locale from msgid -> text pairs
func NewCatalogTranslator(locale string, messages map[string]string) (*CatalogTranslator, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgInvalidLocaleTag, locale, err)
	}

	b := catalog.NewBuilder(catalog.Fallback(language.English))
	known := make(map[string]struct{}, len(messages))
	for msgid, text := range messages {
		// catalog entries are format strings
		if err := b.SetString(tag, msgid, strings.ReplaceAll(text, "%", "%%")); err != nil {
			return nil, fmt.Errorf(ErrMsgAddMessageFailed, msgid, err)
		}
		known[msgid] = struct{}{}
	}

	// no TTL: an expiring cache runs a sweeper goroutine that outlives the translator
	cache, err := lru.New[string, string](DefaultCacheSize)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCreateCacheFailed, err)
	}

	return &CatalogTranslator{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(b)),
		known:   known,
		cache:   cache,
	}, nil
}

// LoadLocaleFile reads a JSON locale file and builds a translator from it
func LoadLocaleFile(path string) (*CatalogTranslator, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadLocaleFileFailed, err)
	}

	var lf LocaleFile
	if err := json.Unmarshal(data, &lf); err != nil {
		return nil, fmt.Errorf(ErrMsgParseLocaleFileFailed, err)
	}

	t, err := NewCatalogTranslator(lf.Locale, lf.Messages)
	if err != nil {
		return nil, err
	}

	slog.Default().Info(LogMsgLocaleLoaded, "locale", t.tag.String(), "messages", len(lf.Messages))
	return t, nil
}

// Tag returns the locale served by the translator
func (t *CatalogTranslator) Tag() language.Tag {
	return t.tag
}

// Translate returns the localized text for msgid
func (t *CatalogTranslator) Translate(msgid string) string {
	if msgid == "" {
		return ""
	}
	if _, ok := t.known[msgid]; !ok {
		return msgid
	}
	if text, ok := t.cache.Get(msgid); ok {
		return text
	}
	text := t.printer.Sprintf(msgid)
	t.cache.Add(msgid, text)
	return text
}
