package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"testing"
)

// ============================================================================
// Mock Types for Testing
// ============================================================================

type mockDataWithID struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func (m mockDataWithID) GetID() int {
	return m.ID
}

type mockDataWithIDs struct {
	IDs []int
}

func (m mockDataWithIDs) GetIDs() []int {
	return m.IDs
}

type mockHumanData struct {
	Text string
}

func (m mockHumanData) PrintHuman(w io.Writer) error {
	_, err := fmt.Fprintf(w, "human: %s\n", m.Text)
	return err
}

func newTestFormatter(jsonMode, quiet bool) (*OutputFormatter, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return &OutputFormatter{JSON: jsonMode, Quiet: quiet, Out: &out, Err: &errOut}, &out, &errOut
}

// ============================================================================
// Success
// ============================================================================

func TestOutputFormatter_Success_JSON(t *testing.T) {
	f, out, _ := newTestFormatter(true, false)

	if err := f.Success(mockDataWithID{ID: 7, Name: "Buy milk"}); err != nil {
		t.Fatalf("Success returned error: %v", err)
	}

	var result struct {
		Success bool           `json:"success"`
		Data    mockDataWithID `json:"data"`
	}
	if err := json.Unmarshal(out.Bytes(), &result); err != nil {
		t.Fatalf("Output is not valid JSON: %v\n%s", err, out.String())
	}
	if !result.Success {
		t.Error("Expected success to be true")
	}
	if result.Data.ID != 7 || result.Data.Name != "Buy milk" {
		t.Errorf("Unexpected data: %+v", result.Data)
	}
}

func TestOutputFormatter_Success_Quiet(t *testing.T) {
	tests := []struct {
		name     string
		data     any
		expected string
	}{
		{"single ID", mockDataWithID{ID: 42}, "42\n"},
		{"multiple IDs", mockDataWithIDs{IDs: []int{1, 2, 3}}, "1\n2\n3\n"},
		{"no IDs", mockDataWithIDs{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, out, _ := newTestFormatter(false, true)
			if err := f.Success(tt.data); err != nil {
				t.Fatalf("Success returned error: %v", err)
			}
			if out.String() != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, out.String())
			}
		})
	}
}

func TestOutputFormatter_Success_QuietWinsOverJSON(t *testing.T) {
	f, out, _ := newTestFormatter(true, true)
	if err := f.Success(mockDataWithID{ID: 3}); err != nil {
		t.Fatalf("Success returned error: %v", err)
	}
	if out.String() != "3\n" {
		t.Errorf("Expected quiet output, got %q", out.String())
	}
}

func TestOutputFormatter_Success_Human(t *testing.T) {
	f, out, _ := newTestFormatter(false, false)
	if err := f.Success(mockHumanData{Text: "hello"}); err != nil {
		t.Fatalf("Success returned error: %v", err)
	}
	if out.String() != "human: hello\n" {
		t.Errorf("Unexpected human output: %q", out.String())
	}

	// Data without a printer falls back to %+v
	out.Reset()
	if err := f.Success(mockDataWithID{ID: 1, Name: "x"}); err != nil {
		t.Fatalf("Success returned error: %v", err)
	}
	if !strings.Contains(out.String(), "ID:1") {
		t.Errorf("Expected fallback formatting, got %q", out.String())
	}
}

// ============================================================================
// Errors
// ============================================================================

func TestOutputFormatter_Error_JSON(t *testing.T) {
	f, out, errOut := newTestFormatter(true, false)

	if err := f.ErrorWithSuggestion("TODO_NOT_FOUND", "todo not found", "list them"); err != nil {
		t.Fatalf("ErrorWithSuggestion returned error: %v", err)
	}
	if errOut.Len() != 0 {
		t.Errorf("JSON errors go to stdout, stderr got %q", errOut.String())
	}

	var result struct {
		Success bool `json:"success"`
		Error   struct {
			Code       string `json:"code"`
			Message    string `json:"message"`
			Suggestion string `json:"suggestion"`
		} `json:"error"`
	}
	if err := json.Unmarshal(out.Bytes(), &result); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if result.Success {
		t.Error("Expected success to be false")
	}
	if result.Error.Code != "TODO_NOT_FOUND" || result.Error.Message != "todo not found" || result.Error.Suggestion != "list them" {
		t.Errorf("Unexpected error body: %+v", result.Error)
	}
}

func TestOutputFormatter_Error_JSONOmitsEmptySuggestion(t *testing.T) {
	f, out, _ := newTestFormatter(true, false)
	if err := f.Error("ERROR", "boom"); err != nil {
		t.Fatalf("Error returned error: %v", err)
	}
	if strings.Contains(out.String(), "suggestion") {
		t.Errorf("Expected no suggestion key, got %s", out.String())
	}
}

func TestOutputFormatter_Error_Human(t *testing.T) {
	f, out, errOut := newTestFormatter(false, false)

	if err := f.ErrorWithSuggestion("ERROR", "boom", "try again"); err != nil {
		t.Fatalf("ErrorWithSuggestion returned error: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("Human errors go to stderr, stdout got %q", out.String())
	}
	expected := "Error: boom\nSuggestion: try again\n"
	if errOut.String() != expected {
		t.Errorf("Expected %q, got %q", expected, errOut.String())
	}
}
