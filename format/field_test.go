package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestField_Tags(t *testing.T) {
	tests := []struct {
		field Field
		open  string
		close string
		name  string
	}{
		{FieldRecord, "[FILE]", "[/FILE]", "record"},
		{FieldName, "[NAME]", "[/NAME]", "name"},
		{FieldExtension, "[EXT]", "[/EXT]", "extension"},
		{FieldContent, "[CON]", "[/CON]", "content"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.open, string(tt.field.Open()))
			assert.Equal(t, tt.close, string(tt.field.Close()))
			assert.Equal(t, tt.name, tt.field.String())
		})
	}

	assert.Equal(t, "unknown", Field(42).String())
}
