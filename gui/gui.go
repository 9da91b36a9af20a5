// Package gui implements a minimal graphical front end over the same
// repl expression evaluator the tui and command-line repl drive, using
// fyne's usual app/window/widget wiring: an entry field, a text grid
// console, and a status label.
package gui

import (
	"fmt"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/lookbusy1344/bignum/repl"
)

// GUI is the graphical calculator window: an expression entry field, a
// value label showing the most recent result, a scrolling log of every
// evaluated expression, and a status label.
type GUI struct {
	App    fyne.App
	Window fyne.Window

	Entry       *widget.Entry
	ValueLabel  *widget.Label
	StatusLabel *widget.Label
	LogGrid     *widget.TextGrid

	lastValue string

	logMu  sync.Mutex
	logBuf strings.Builder
}

// New creates a GUI window backed by a fresh fyne application.
func New() *GUI {
	return newGUI(app.New())
}

// newGUI builds a GUI over an already-constructed fyne.App, so tests
// can supply fyne.io/fyne/v2/test's headless app instead of a real one.
func newGUI(myApp fyne.App) *GUI {
	myWindow := myApp.NewWindow("bignum calculator")

	g := &GUI{
		App:    myApp,
		Window: myWindow,
	}

	g.initializeViews()
	g.buildLayout()

	myWindow.Resize(fyne.NewSize(640, 480))

	return g
}

func (g *GUI) initializeViews() {
	g.Entry = widget.NewEntry()
	g.Entry.SetPlaceHolder("enter an expression, e.g. pow(2, 64) + 1")
	g.Entry.OnSubmitted = func(text string) {
		g.evaluate(text)
		g.Entry.SetText("")
	}

	g.ValueLabel = widget.NewLabel("")
	g.ValueLabel.Wrapping = fyne.TextWrapWord

	g.StatusLabel = widget.NewLabel("ready")

	g.LogGrid = widget.NewTextGrid()
	g.LogGrid.SetText("")
}

func (g *GUI) buildLayout() {
	top := container.NewVBox(g.Entry, g.ValueLabel, g.StatusLabel)
	content := container.NewBorder(top, nil, nil, nil, container.NewVScroll(g.LogGrid))
	g.Window.SetContent(content)
}

func (g *GUI) evaluate(expr string) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return
	}

	result, err := repl.Evaluate(expr)
	if err != nil {
		g.StatusLabel.SetText(fmt.Sprintf("error: %v", err))
		g.appendLog(fmt.Sprintf("%s -> error: %v", expr, err))
		return
	}

	g.lastValue = result.String()
	g.ValueLabel.SetText(g.lastValue)
	g.StatusLabel.SetText(fmt.Sprintf("ok (%d decimal digits)", len(g.lastValue)))
	g.appendLog(fmt.Sprintf("%s = %s", expr, g.lastValue))
}

func (g *GUI) appendLog(line string) {
	g.logMu.Lock()
	defer g.logMu.Unlock()

	g.logBuf.WriteString(line)
	g.logBuf.WriteByte('\n')
	g.LogGrid.SetText(g.logBuf.String())
}

// LastValue returns the decimal string of the most recently computed
// result, or "" if nothing has been evaluated yet.
func (g *GUI) LastValue() string {
	return g.lastValue
}

// Run shows the window and blocks until it is closed.
func (g *GUI) Run() {
	g.Window.ShowAndRun()
}
