package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrinterText(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, false)

	p.Success("Category '%s' created successfully.", "Resistors")
	p.Error("Category with ID %d not found.", 4)
	p.Line("%d: %s", 1, "Resistors")
	p.Prompt("Enter category name")

	out := buf.String()
	assert.Contains(t, out, "✓ Category 'Resistors' created successfully.\n")
	assert.Contains(t, out, "✗ Category with ID 4 not found.\n")
	assert.Contains(t, out, "1: Resistors\n")
	assert.True(t, bytes.HasSuffix(buf.Bytes(), []byte("Enter category name: ")))
	assert.NotContains(t, out, "\x1b[", "no ANSI codes when not writing to a terminal")
}

func TestPrinterJSON(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, true)
	assert.True(t, p.JSON())

	p.Error("No product found with the name '%s'.", "x")

	var got map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "error", got["status"])
	assert.Equal(t, "No product found with the name 'x'.", got["message"])
}
