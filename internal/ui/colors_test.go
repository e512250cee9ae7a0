package ui

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestInitColors(t *testing.T) {
	t.Run("NO_COLOR disables colors", func(t *testing.T) {
		orig := color.NoColor
		defer func() { color.NoColor = orig }()

		t.Setenv("NO_COLOR", "1")
		InitColors()
		assert.True(t, color.NoColor)
	})

	t.Run("TERM=dumb disables colors", func(t *testing.T) {
		orig := color.NoColor
		defer func() { color.NoColor = orig }()

		t.Setenv("NO_COLOR", "")
		t.Setenv("TERM", "dumb")
		InitColors()
		assert.True(t, color.NoColor)
	})
}

func TestFprintError(t *testing.T) {
	orig := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = orig }()

	var buf bytes.Buffer
	FprintError(&buf, "no runnable binary (%d locations searched)", 6)

	assert.Contains(t, buf.String(), "Error: no runnable binary (6 locations searched)")
}

func TestPrintSearchTable(t *testing.T) {
	locations := []string{
		"/tmp/x/whatsappbot",
		"whatsappbot (system PATH)",
		"/tmp/x/clawdbot",
	}

	var buf bytes.Buffer
	PrintSearchTable(&buf, locations)

	out := buf.String()
	for _, loc := range locations {
		assert.Contains(t, out, loc)
	}
	// Priority column reflects list order.
	assert.Contains(t, out, "1")
	assert.Contains(t, out, "3")
}
