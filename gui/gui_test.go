package gui

import (
	"strings"
	"testing"

	"fyne.io/fyne/v2/test"
)

func newTestGUI(t *testing.T) *GUI {
	t.Helper()
	return newGUI(test.NewApp())
}

// TestGUICreation tests that the GUI can be created without errors.
func TestGUICreation(t *testing.T) {
	g := newTestGUI(t)
	if g == nil {
		t.Fatal("GUI creation returned nil")
	}
	if g.Entry == nil {
		t.Error("Entry not initialized")
	}
	if g.ValueLabel == nil {
		t.Error("ValueLabel not initialized")
	}
	if g.StatusLabel == nil {
		t.Error("StatusLabel not initialized")
	}
	if g.LogGrid == nil {
		t.Error("LogGrid not initialized")
	}
}

func TestEvaluateUpdatesValueLabel(t *testing.T) {
	g := newTestGUI(t)

	g.evaluate("6 * 7")

	if g.LastValue() != "42" {
		t.Fatalf("LastValue() = %q, want 42", g.LastValue())
	}
	if g.ValueLabel.Text != "42" {
		t.Errorf("ValueLabel.Text = %q, want 42", g.ValueLabel.Text)
	}
}

func TestEvaluateErrorReportsStatusWithoutClobberingValue(t *testing.T) {
	g := newTestGUI(t)

	g.evaluate("6 * 7")
	g.evaluate("1 - 2")

	if g.LastValue() != "42" {
		t.Errorf("a failed evaluation must not clobber the last good value, got %q", g.LastValue())
	}
	if !strings.Contains(g.StatusLabel.Text, "error") {
		t.Errorf("StatusLabel should report the error, got %q", g.StatusLabel.Text)
	}
}

func TestEvaluateIgnoresBlankInput(t *testing.T) {
	g := newTestGUI(t)

	g.evaluate("   ")

	if g.LastValue() != "" {
		t.Errorf("blank input should not evaluate anything, got %q", g.LastValue())
	}
}

func TestEntrySubmissionClearsField(t *testing.T) {
	g := newTestGUI(t)

	g.Entry.SetText("2 + 2")
	g.Entry.OnSubmitted("2 + 2")

	if g.Entry.Text != "" {
		t.Errorf("entry should be cleared after submission, got %q", g.Entry.Text)
	}
	if g.LastValue() != "4" {
		t.Errorf("LastValue() = %q, want 4", g.LastValue())
	}
}
