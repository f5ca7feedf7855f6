package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalizedText_Resolve(t *testing.T) {
	text := Localized(map[string]string{
		"en": "Wires",
		"de": "Kabel",
		"pt": "Fios",
	})

	tests := []struct {
		lang string
		want string
	}{
		{"en", "Wires"},
		{"de", "Kabel"},
		{"DE", "Kabel"},
		{"pt-BR", "Fios"},
		{"fr", "Wires"},
		{"", "Wires"},
	}

	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			assert.Equal(t, tt.want, text.Resolve(tt.lang))
		})
	}
}

func TestLocalizedText_ResolveWithoutDefault(t *testing.T) {
	text := Localized(map[string]string{"fr": "Câbles", "de": "Kabel"})

	assert.Equal(t, "Kabel", text.Resolve("ja"))
	assert.Equal(t, "Câbles", text.Resolve("fr-CA"))
	assert.Equal(t, "", Localized(map[string]string{}).Resolve("en"))
}

func TestLocalizedText_Plain(t *testing.T) {
	text := Plain("Battery")

	assert.False(t, text.IsLocalized())
	assert.Nil(t, text.Translations())
	assert.Equal(t, "Battery", text.Resolve("de"))
	assert.Equal(t, "Battery", text.String())
	assert.Equal(t, "", LocalizedText{}.String())
}

func TestLocalizedText_NormalizesKeys(t *testing.T) {
	text := Localized(map[string]string{"en-us": "Color", "en-gb": "Colour"})

	assert.Equal(t, map[string]string{"en-US": "Color", "en-GB": "Colour"}, text.Translations())
	assert.Equal(t, "Colour", text.Resolve("en-GB"))
}

func TestLocalizedText_JSON(t *testing.T) {
	var item struct {
		Name        LocalizedText `json:"name"`
		Description LocalizedText `json:"description"`
		Note        LocalizedText `json:"note"`
	}
	data := `{"name": {"en": "Durable Cloth", "de": "Robuster Stoff"}, "description": "Sturdy.", "note": null}`

	require.NoError(t, json.Unmarshal([]byte(data), &item))
	assert.True(t, item.Name.IsLocalized())
	assert.Equal(t, "Robuster Stoff", item.Name.Resolve("de"))
	assert.Equal(t, "Sturdy.", item.Description.Resolve("de"))
	assert.Equal(t, "", item.Note.String())

	out, err := json.Marshal(item.Description)
	require.NoError(t, err)
	assert.JSONEq(t, `"Sturdy."`, string(out))

	out, err = json.Marshal(item.Name)
	require.NoError(t, err)
	assert.JSONEq(t, `{"en": "Durable Cloth", "de": "Robuster Stoff"}`, string(out))
}

func TestLocalizedText_UnmarshalRejectsOtherTypes(t *testing.T) {
	var text LocalizedText
	err := json.Unmarshal([]byte(`42`), &text)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
