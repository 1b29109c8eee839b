package ui

import (
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/making3/Comments/command"
	"github.com/making3/Comments/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWindow struct {
	moves []models.Point
}

func (w *fakeWindow) Size() models.Size { return models.Size{Width: 300, Height: 40} }

func (w *fakeWindow) Move(to models.Point) { w.moves = append(w.moves, to) }

type fakeViewer struct{}

func (fakeViewer) Open(string) error { return nil }

func newTestNote(t *testing.T) (*NoteWindow, *fakeWindow) {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)

	settings := models.DefaultSettings()
	settings.DisplayPreviousLog = false
	win := &fakeWindow{}
	nw := NewNoteWindow(a, Config{
		Settings: settings,
		Screens:  []models.Rect{{Width: 1920, Height: 1080}},
		LogDir:   filepath.Join(t.TempDir(), "logs"),
		Viewer:   fakeViewer{},
		Window:   win,
	})
	t.Cleanup(func() { _ = nw.Session().Close() })
	return nw, win
}

func TestSubmitAppendsEntryAndClears(t *testing.T) {
	nw, _ := newTestNote(t)

	nw.entry.SetText("  wrote the release notes ")
	nw.submit()
	assert.Empty(t, nw.entry.Text)

	data, err := os.ReadFile(nw.Session().LogPath())
	require.NoError(t, err)
	assert.Contains(t, string(data), " - wrote the release notes\n\n")
}

func TestSubmitIgnoresWhitespace(t *testing.T) {
	nw, _ := newTestNote(t)

	nw.entry.SetText("   ")
	nw.submit()
	assert.Equal(t, "   ", nw.entry.Text)
	assert.NoFileExists(t, nw.Session().LogPath())
}

func TestSubmitPositionCommandMovesWindow(t *testing.T) {
	nw, win := newTestNote(t)
	require.NoError(t, nw.Session().Start())

	nw.entry.SetText("/pos TopRight")
	nw.submit()
	require.NotEmpty(t, win.moves)
	assert.Equal(t, models.Point{X: 1620, Y: 0}, win.moves[len(win.moves)-1])
	assert.NoFileExists(t, nw.Session().LogPath())
}

func TestHoverPanelReportsChanges(t *testing.T) {
	p := NewHoverPanel(widget.NewLabel("x"))
	test.WidgetRenderer(p)

	var opacities []float64
	p.OnHoverChanged = func(hovered bool) { opacities = append(opacities, opacityFor(hovered)) }

	p.MouseIn(nil)
	assert.True(t, p.Hovered())
	p.MouseMoved(nil)
	p.MouseIn(nil)
	p.MouseOut()
	assert.False(t, p.Hovered())

	assert.Equal(t, []float64{fullOpacity, dimOpacity}, opacities)
}

func TestOpacityValue(t *testing.T) {
	assert.Equal(t, uint32(0), opacityValue(-1))
	assert.Equal(t, uint32(0xffffffff), opacityValue(1))
	assert.Equal(t, uint32(0xffffffff), opacityValue(2))
	assert.InDelta(t, 0.15*0xffffffff, float64(opacityValue(dimOpacity)), 1)

	args := opacityArgs("Comments", fullOpacity)
	assert.Equal(t, []string{"-name", "Comments"}, args[:2])
	assert.Equal(t, "4294967295", args[len(args)-1])
}

func TestWindowManagerMatchesExactTitle(t *testing.T) {
	assert.Equal(t, []string{"-F", "-r", "Comments", "-e", "0,10,20,-1,-1"}, moveArgs("Comments", "0,10,20,-1,-1"))
	assert.Equal(t, []string{"-F", "-r", "Comments", "-b", "add,above"}, keepAboveArgs("Comments"))
}

func TestHelpTextListsEveryCommand(t *testing.T) {
	text := helpText()
	for _, u := range command.Reference() {
		assert.Contains(t, text, u.Commands)
	}
}
