package validation

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const personSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"name": {"type": "string"},
		"age": {"type": "integer", "minimum": 0}
	},
	"required": ["name"]
}`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"person.schema.json": &fstest.MapFile{Data: []byte(personSchema)},
		"broken.schema.json": &fstest.MapFile{Data: []byte(`{not json`)},
	}
}

func TestSchemaValidator_ValidateBytes(t *testing.T) {
	v := NewSchemaValidator(testFS())

	tests := []struct {
		name     string
		data     string
		errorMsg string
	}{
		{"valid data", `{"name": "John", "age": 30}`, ""},
		{"optional field omitted", `{"name": "Jane"}`, ""},
		{"missing required field", `{"age": 25}`, "required"},
		{"wrong type", `{"name": "John", "age": "thirty"}`, "/age"},
		{"below minimum", `{"name": "John", "age": -1}`, "minimum"},
		{"invalid JSON", `{"name": `, "failed to parse JSON data"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBytes([]byte(tt.data), "person.schema.json")
			if tt.errorMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestSchemaValidator_SchemaErrors(t *testing.T) {
	v := NewSchemaValidator(testFS())

	err := v.ValidateBytes([]byte(`{}`), "missing.schema.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load schema missing.schema.json")

	err = v.ValidateBytes([]byte(`{}`), "broken.schema.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse schema JSON")
}

func TestSchemaName(t *testing.T) {
	assert.Equal(t, "items.schema.json", SchemaName("items"))
}
