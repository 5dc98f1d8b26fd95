package styles

import (
	"strings"
	"testing"

	"github.com/thenoetrevino/hecho/internal/config"
)

func TestCheckbox(t *testing.T) {
	if !strings.Contains(Checkbox(true), "[x]") {
		t.Errorf("Expected a checked box, got %q", Checkbox(true))
	}
	if !strings.Contains(Checkbox(false), "[ ]") {
		t.Errorf("Expected an empty box, got %q", Checkbox(false))
	}
}

func TestStatus(t *testing.T) {
	if !strings.Contains(Status(true), "done") {
		t.Errorf("Expected done, got %q", Status(true))
	}
	if !strings.Contains(Status(false), "open") {
		t.Errorf("Expected open, got %q", Status(false))
	}
}

func TestInit_PartialScheme(t *testing.T) {
	t.Cleanup(func() { Init(config.DefaultColorScheme()) })

	// Empty colors are filled from the preset instead of panicking or rendering blank
	Init(config.ColorScheme{Accent: "#FF0000"})

	card := RenderCard("hello")
	if !strings.Contains(card, "hello") {
		t.Errorf("Expected card to contain its content, got %q", card)
	}
	if !strings.Contains(card, "╭") {
		t.Errorf("Expected a rounded border, got %q", card)
	}
}

func TestFormTheme(t *testing.T) {
	if FormTheme == nil {
		t.Fatal("Expected a form theme after Init")
	}
	for _, dark := range []bool{true, false} {
		if FormTheme.Theme(dark) == nil {
			t.Errorf("Expected styles for isDark=%v", dark)
		}
	}
}
