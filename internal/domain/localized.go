package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"golang.org/x/text/language"
)

// DefaultLanguage is the fallback language used when a requested translation is missing
const DefaultLanguage = "en"

// LocalizedText is either a plain string or a mapping from language code to string.
// The zero value is an empty plain string.
type LocalizedText struct {
	plain        string
	translations map[string]string
}

// Plain creates a LocalizedText that has the same value for every language
func Plain(s string) LocalizedText {
	return LocalizedText{plain: s}
}

// Localized creates a LocalizedText from a language-code keyed mapping
func Localized(translations map[string]string) LocalizedText {
	copied := make(map[string]string, len(translations))
	for lang, s := range translations {
		copied[normalizeLanguage(lang)] = s
	}
	return LocalizedText{translations: copied}
}

// IsLocalized reports whether the text carries per-language values
func (t LocalizedText) IsLocalized() bool {
	return t.translations != nil
}

// Translations returns a copy of the per-language values, nil for plain text
func (t LocalizedText) Translations() map[string]string {
	if t.translations == nil {
		return nil
	}
	copied := make(map[string]string, len(t.translations))
	for k, v := range t.translations {
		copied[k] = v
	}
	return copied
}

// Resolve returns the text for lang.
// Fallback chain: lang, its base language ("pt-BR" -> "pt"), DefaultLanguage, then the
// first available translation in language-code order.
func (t LocalizedText) Resolve(lang string) string {
	if t.translations == nil {
		return t.plain
	}
	if len(t.translations) == 0 {
		return ""
	}

	lang = normalizeLanguage(lang)
	if s, ok := t.translations[lang]; ok {
		return s
	}
	if base := baseLanguage(lang); base != lang {
		if s, ok := t.translations[base]; ok {
			return s
		}
	}
	if s, ok := t.translations[DefaultLanguage]; ok {
		return s
	}

	keys := make([]string, 0, len(t.translations))
	for k := range t.translations {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return t.translations[keys[0]]
}

// String resolves the text in DefaultLanguage
func (t LocalizedText) String() string {
	return t.Resolve(DefaultLanguage)
}

// MarshalJSON writes plain text as a JSON string and localized text as an object
func (t LocalizedText) MarshalJSON() ([]byte, error) {
	if t.translations != nil {
		return json.Marshal(t.translations)
	}
	return json.Marshal(t.plain)
}

// UnmarshalJSON accepts either a JSON string or an object of language -> string
func (t *LocalizedText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*t = LocalizedText{}
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Plain(s)
		return nil
	case '{':
		var m map[string]string
		if err := json.Unmarshal(data, &m); err != nil {
			return err
		}
		*t = Localized(m)
		return nil
	default:
		return fmt.Errorf("%w: localized text must be a string or an object", ErrInvalidInput)
	}
}

// normalizeLanguage canonicalizes a language code ("EN_us" -> "en-US").
// Unparseable codes are kept as given so that lookups still work for exotic keys.
func normalizeLanguage(lang string) string {
	if lang == "" {
		return DefaultLanguage
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return lang
	}
	return tag.String()
}

func baseLanguage(lang string) string {
	tag, err := language.Parse(lang)
	if err != nil {
		return lang
	}
	base, _ := tag.Base()
	return base.String()
}
