// Package tui is the primary interactive frontend: a tcell/tview text
// interface over a session.Session, grounded on the teacher's
// debugger/tui.go (panelled layout, a global tcell.EventKey capture for
// navigation, an input field committed on Enter, a full-repaint
// RefreshAll after every command).
package tui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/joshm20/gridsheet/config"
	"github.com/joshm20/gridsheet/session"
)

// TUI is the terminal spreadsheet frontend.
type TUI struct {
	Session *session.Session
	Config  *config.Config

	App   *tview.Application
	Pages *tview.Pages

	MainLayout  *tview.Flex
	GridView    *tview.TextView
	EditorInput *tview.InputField
	ErrorView   *tview.TextView
	OutputView  *tview.TextView

	CursorRow int
	CursorCol int
	EditMode  bool
}

// NewTUI builds a TUI over an already-loaded session.
func NewTUI(sess *session.Session, cfg *config.Config) *TUI {
	t := &TUI{
		Session: sess,
		Config:  cfg,
	}
	t.App = tview.NewApplication()

	t.initializeViews()
	t.buildLayout()
	t.setupKeyBindings()

	return t
}

func (t *TUI) initializeViews() {
	t.GridView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(false)
	t.GridView.SetBorder(true).SetTitle(" Grid ")

	t.EditorInput = tview.NewInputField().
		SetLabel("> ").
		SetFieldWidth(0)
	t.EditorInput.SetBorder(true).SetTitle(" Editor ")
	t.EditorInput.SetDoneFunc(t.handleEditorDone)

	t.ErrorView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(false)
	t.ErrorView.SetBorder(true).SetTitle(" Error ")

	t.OutputView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(true)
	t.OutputView.SetBorder(true).SetTitle(" Output ")
}

func (t *TUI) buildLayout() {
	bottom := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(t.ErrorView, 3, 0, false).
		AddItem(t.OutputView, 0, 1, false)

	t.MainLayout = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(t.GridView, 0, 4, false).
		AddItem(bottom, 6, 0, false).
		AddItem(t.EditorInput, 3, 0, true)

	t.Pages = tview.NewPages().
		AddPage("main", t.MainLayout, true, true)
}

func (t *TUI) setupKeyBindings() {
	t.App.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if t.EditMode {
			if event.Key() == tcell.KeyEscape {
				t.EditMode = false
				t.EditorInput.SetText("")
				t.App.SetFocus(t.GridView)
				t.RefreshAll()
				return nil
			}
			return event
		}

		switch event.Key() {
		case tcell.KeyUp:
			t.moveCursor(-1, 0)
			return nil
		case tcell.KeyDown:
			t.moveCursor(1, 0)
			return nil
		case tcell.KeyLeft:
			t.moveCursor(0, -1)
			return nil
		case tcell.KeyRight:
			t.moveCursor(0, 1)
			return nil
		case tcell.KeyEnter:
			t.enterEditMode()
			return nil
		case tcell.KeyCtrlC:
			t.App.Stop()
			return nil
		case tcell.KeyCtrlL:
			t.RefreshAll()
			return nil
		}
		return event
	})
}

func (t *TUI) moveCursor(dr, dc int) {
	r, c := t.CursorRow+dr, t.CursorCol+dc
	if r < 0 || r >= t.Session.Grid.Rows() || c < 0 || c >= t.Session.Grid.Cols() {
		return
	}
	t.CursorRow, t.CursorCol = r, c
	t.RefreshAll()
}

func (t *TUI) enterEditMode() {
	t.EditMode = true
	t.EditorInput.SetText(t.Session.RenderSource(t.CursorRow, t.CursorCol))
	t.App.SetFocus(t.EditorInput)
}

func (t *TUI) handleEditorDone(key tcell.Key) {
	if key != tcell.KeyEnter {
		return
	}
	src := t.EditorInput.GetText()
	t.Session.EditCell(t.CursorRow, t.CursorCol, src)
	t.EditMode = false
	t.App.SetFocus(t.GridView)
	t.RefreshAll()
}

// RefreshAll repaints every pane and the current cursor position.
func (t *TUI) RefreshAll() {
	t.updateGridView()
	t.updateErrorView()
	t.App.Draw()
}

func (t *TUI) updateGridView() {
	width := t.Config.Grid.CellWidth
	g := t.Session.Grid
	var b strings.Builder
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			cell := truncatePad(t.Session.RenderValue(r, c), width)
			if r == t.CursorRow && c == t.CursorCol {
				b.WriteString("[white:black:r]")
				b.WriteString(tview.Escape(cell))
				b.WriteString("[-:-:-]")
			} else {
				b.WriteString(tview.Escape(cell))
			}
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}
	t.GridView.SetText(b.String())
}

func (t *TUI) updateErrorView() {
	msg := t.Session.RenderError(t.CursorRow, t.CursorCol)
	if msg == "" {
		t.ErrorView.SetText("")
		return
	}
	t.ErrorView.SetText(fmt.Sprintf("[red]%s[white]", tview.Escape(msg)))
}

// truncatePad truncates and right-pads a cell's rendered value to width
// characters, the fixed-column display rule from the original interface's
// drawGridPrimitives.
func truncatePad(s string, width int) string {
	if width <= 0 {
		return s
	}
	if len(s) > width {
		return s[:width]
	}
	return s + strings.Repeat(" ", width-len(s))
}

// Run starts the interactive terminal UI.
func (t *TUI) Run() error {
	t.RefreshAll()
	t.OutputView.SetText("Arrow keys move the cursor, Enter edits a cell, Esc cancels, Ctrl-C quits.\n")
	return t.App.SetRoot(t.Pages, true).SetFocus(t.GridView).Run()
}

// Stop halts the application's event loop.
func (t *TUI) Stop() {
	t.App.Stop()
}
