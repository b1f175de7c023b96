// Package gui is an optional desktop frontend over the same session
// façade as the tui package, grounded on the teacher's debugger/gui.go:
// fyne.App/Window, widget.TextGrid panels, a container.NewBorder layout,
// and a toolbar driving the same session operations a keyboard shortcut
// would in the TUI.
package gui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/joshm20/gridsheet/config"
	"github.com/joshm20/gridsheet/session"
)

// GUI is the fyne-backed desktop spreadsheet window.
type GUI struct {
	Session *session.Session
	Config  *config.Config

	App    fyne.App
	Window fyne.Window

	GridView    *widget.TextGrid
	EditorEntry *widget.Entry
	ErrorLabel  *widget.Label
	Toolbar     *widget.Toolbar

	CursorRow int
	CursorCol int
}

// Run builds and shows the GUI window, blocking until it is closed.
func Run(sess *session.Session, cfg *config.Config) {
	g := newGUI(sess, cfg)
	g.Window.ShowAndRun()
}

func newGUI(sess *session.Session, cfg *config.Config) *GUI {
	myApp := app.New()
	myWindow := myApp.NewWindow("gridsheet")

	g := &GUI{
		Session: sess,
		Config:  cfg,
		App:     myApp,
		Window:  myWindow,
	}

	g.initializeViews()
	g.setupToolbar()
	g.buildLayout()
	g.refreshViews()

	myWindow.Resize(fyne.NewSize(1000, 700))
	return g
}

func (g *GUI) initializeViews() {
	g.GridView = widget.NewTextGrid()

	g.EditorEntry = widget.NewEntry()
	g.EditorEntry.SetPlaceHolder("formula for the selected cell")
	g.EditorEntry.OnSubmitted = func(text string) {
		g.Session.EditCell(g.CursorRow, g.CursorCol, text)
		g.refreshViews()
	}

	g.ErrorLabel = widget.NewLabel("")
}

func (g *GUI) buildLayout() {
	gridPanel := container.NewBorder(
		widget.NewLabel("Grid"),
		nil, nil, nil,
		container.NewScroll(g.GridView),
	)

	editorPanel := container.NewBorder(
		widget.NewLabel("Editor"),
		nil, nil, nil,
		g.EditorEntry,
	)

	bottom := container.NewVBox(editorPanel, g.ErrorLabel)

	content := container.NewBorder(g.Toolbar, bottom, nil, nil, gridPanel)
	g.Window.SetContent(content)
}

func (g *GUI) setupToolbar() {
	g.Toolbar = widget.NewToolbar(
		widget.NewToolbarAction(theme.NavigateBackIcon(), func() { g.moveCursor(0, -1) }),
		widget.NewToolbarAction(theme.NavigateNextIcon(), func() { g.moveCursor(0, 1) }),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.ViewRefreshIcon(), func() { g.refreshViews() }),
	)
}

func (g *GUI) moveCursor(dr, dc int) {
	r, c := g.CursorRow+dr, g.CursorCol+dc
	if r < 0 || r >= g.Session.Grid.Rows() || c < 0 || c >= g.Session.Grid.Cols() {
		return
	}
	g.CursorRow, g.CursorCol = r, c
	g.refreshViews()
}

func (g *GUI) refreshViews() {
	g.updateGrid()
	g.EditorEntry.SetText(g.Session.RenderSource(g.CursorRow, g.CursorCol))
	if msg := g.Session.RenderError(g.CursorRow, g.CursorCol); msg != "" {
		g.ErrorLabel.SetText(fmt.Sprintf("error: %s", msg))
	} else {
		g.ErrorLabel.SetText("")
	}
}

func (g *GUI) updateGrid() {
	width := g.Config.Grid.CellWidth
	grid := g.Session.Grid
	var b strings.Builder
	for r := 0; r < grid.Rows(); r++ {
		for c := 0; c < grid.Cols(); c++ {
			cell := truncatePad(g.Session.RenderValue(r, c), width)
			if r == g.CursorRow && c == g.CursorCol {
				cell = "[" + strings.TrimRight(cell, " ") + "]"
				cell = truncatePad(cell, width)
			}
			b.WriteString(cell)
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}
	g.GridView.SetText(b.String())
}

func truncatePad(s string, width int) string {
	if width <= 0 {
		return s
	}
	if len(s) > width {
		return s[:width]
	}
	return s + strings.Repeat(" ", width-len(s))
}
