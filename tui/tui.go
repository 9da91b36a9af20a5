// Package tui implements a terminal front end over the repl expression
// evaluator, using tview's usual flex
// layout: view panels for current state, a scrolling log, and a command
// input feeding one interpreter.
package tui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/lookbusy1344/bignum/repl"
)

// TUI is the text user interface: a value panel showing the most
// recent computed result, a scrolling log of every evaluated
// expression, a status bar, and a command input line.
type TUI struct {
	App   *tview.Application
	Pages *tview.Pages

	MainLayout *tview.Flex

	ValueView  *tview.TextView
	LogView    *tview.TextView
	StatusView *tview.TextView
	Input      *tview.InputField

	repl *repl.REPL

	lastValue string
}

// New creates a TUI driven by a repl for expression evaluation.
func New(r *repl.REPL) *TUI {
	return newTUI(r, tview.NewApplication())
}

// NewWithScreen creates a TUI bound to an explicit tcell.Screen, for
// tests that drive the interface against a simulation screen instead
// of a real terminal.
func NewWithScreen(r *repl.REPL, screen tcell.Screen) *TUI {
	app := tview.NewApplication().SetScreen(screen)
	return newTUI(r, app)
}

func newTUI(r *repl.REPL, app *tview.Application) *TUI {
	t := &TUI{
		App:  app,
		repl: r,
	}

	t.initializeViews()
	t.buildLayout()
	t.setupKeyBindings()

	return t
}

func (t *TUI) initializeViews() {
	t.ValueView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(false)
	t.ValueView.SetBorder(true).SetTitle(" Value ")

	t.LogView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(false)
	t.LogView.SetBorder(true).SetTitle(" Log ")

	t.StatusView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(false)
	t.StatusView.SetBorder(true).SetTitle(" Status ")
	t.StatusView.SetText("[green]ready[white] — enter an expression below")

	t.Input = tview.NewInputField().
		SetLabel("> ").
		SetFieldWidth(0)
	t.Input.SetBorder(true).SetTitle(" Command ")
	t.Input.SetDoneFunc(t.handleCommand)
}

func (t *TUI) buildLayout() {
	top := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(t.ValueView, 0, 2, false).
		AddItem(t.StatusView, 0, 1, false)

	t.MainLayout = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(top, 7, 0, false).
		AddItem(t.LogView, 0, 1, false).
		AddItem(t.Input, 3, 0, true)

	t.Pages = tview.NewPages().
		AddPage("main", t.MainLayout, true, true)
}

func (t *TUI) setupKeyBindings() {
	t.App.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyCtrlC:
			t.App.Stop()
			return nil
		case tcell.KeyCtrlL:
			t.LogView.Clear()
			return nil
		}
		return event
	})
}

func (t *TUI) handleCommand(key tcell.Key) {
	if key != tcell.KeyEnter {
		return
	}
	line := strings.TrimSpace(t.Input.GetText())
	if line == "" {
		return
	}
	t.Input.SetText("")

	if line == "exit" || line == "quit" {
		t.App.Stop()
		return
	}

	t.evaluate(line)
}

func (t *TUI) evaluate(line string) {
	result, err := repl.Evaluate(line)
	if err != nil {
		t.appendLog(fmt.Sprintf("[red]%s[white] -> error: %v", line, err))
		t.StatusView.SetText(fmt.Sprintf("[red]error:[white] %v", err))
		return
	}

	t.lastValue = result.String()
	t.ValueView.SetText(t.lastValue)
	t.appendLog(fmt.Sprintf("[yellow]%s[white] = %s", line, t.lastValue))
	t.StatusView.SetText(fmt.Sprintf("[green]ok[white] — %d decimal digits", len(t.lastValue)))
}

func (t *TUI) appendLog(line string) {
	fmt.Fprintln(t.LogView, line)
	t.LogView.ScrollToEnd()
}

// Run starts the terminal application, blocking until the user exits.
func (t *TUI) Run() error {
	return t.App.SetRoot(t.Pages, true).EnableMouse(true).Run()
}

// LastValue returns the decimal string of the most recently computed
// result, or "" if nothing has been evaluated yet. Exposed for tests
// and for callers embedding the TUI in a larger program.
func (t *TUI) LastValue() string {
	return t.lastValue
}
