package internal

import (
	tea "charm.land/bubbletea/v2"
	"errors"
	"github.com/charmbracelet/x/ansi"
	"github.com/google/go-cmp/cmp"
	"github.com/robinovitch61/vlist/internal/command"
	"github.com/robinovitch61/vlist/internal/fileio"
	"github.com/robinovitch61/vlist/internal/keymap"
	"github.com/robinovitch61/vlist/internal/message"
	"github.com/robinovitch61/vlist/internal/source"
	"github.com/robinovitch61/vlist/internal/util"
	"github.com/robinovitch61/vlist/internal/viewport"
	"github.com/robinovitch61/vlist/internal/viewport/window"
	"strings"
	"testing"
)

func keyMsg(s string) tea.KeyPressMsg {
	r := []rune(s)[0]
	return tea.KeyPressMsg{Code: r, Text: s}
}

func testConfig(t *testing.T) Config {
	return Config{
		KeyMap:         keymap.DefaultKeyMap(),
		ViewportKeyMap: viewport.DefaultKeyMap(),
		ItemHeight:     1,
		Buffer:         3,
		SaveDir:        t.TempDir(),
		Version:        "test",
	}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	nm, cmd := m.Update(msg)
	return nm.(Model), cmd
}

// newTestModel returns an initialized model 80 wide and 10 tall with n generated items
func newTestModel(t *testing.T, c Config, n int) Model {
	t.Helper()
	m := InitialModel(c)
	m, _ = update(t, m, command.ItemsLoadedMsg{Items: source.Generate(n)})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 10})
	if m.Err() != nil {
		t.Fatalf("unexpected error: %v", m.Err())
	}
	return m
}

func plainLines(m Model) []string {
	return strings.Split(ansi.Strip(m.view()), "\n")
}

func expectQuit(t *testing.T, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		t.Fatalf("expected quit command, got nil")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected quit command")
	}
}

func TestApp_LoadThenResize(t *testing.T) {
	m := newTestModel(t, testConfig(t), 100)
	lines := plainLines(m)
	if len(lines) != 10 {
		t.Fatalf("expected 10 lines, got %d:\n%s", len(lines), strings.Join(lines, "\n"))
	}
	if !strings.HasPrefix(lines[0], "vlist test   1-9 of 100   window [0, 12)") {
		t.Errorf("unexpected top bar %q", lines[0])
	}
	if !strings.HasSuffix(lines[0], "q to quit / ? for help") {
		t.Errorf("unexpected top bar %q", lines[0])
	}
	util.CmpStr(t, "   1 Item 1", strings.TrimRight(lines[1], " "))
	util.CmpStr(t, "   8 Item 8", strings.TrimRight(lines[8], " "))
	// toast replaces the last line
	if !strings.Contains(lines[9], "Loaded 100 items") {
		t.Errorf("expected load toast, got %q", lines[9])
	}
}

func TestApp_ResizeThenLoad(t *testing.T) {
	m := InitialModel(testConfig(t))
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 10})
	if !strings.Contains(plainLines(m)[0], "Loading...") {
		t.Errorf("expected loading top bar, got %q", plainLines(m)[0])
	}
	m, _ = update(t, m, command.ItemsLoadedMsg{Items: source.Generate(1000)})
	lines := plainLines(m)
	util.CmpStr(t, "    1 Item 1", strings.TrimRight(lines[1], " "))
	if diff := cmp.Diff(window.Window{Start: 0, End: 12, TotalExtent: 1000}, m.settled); diff != "" {
		t.Errorf("Diff (-expected +actual):\n%s", diff)
	}
}

func TestApp_Resize(t *testing.T) {
	m := newTestModel(t, testConfig(t), 100)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 20})
	if m.viewport.Height() != 19 || m.viewport.Width() != 40 {
		t.Errorf("expected 40x19 viewport, got %dx%d", m.viewport.Width(), m.viewport.Height())
	}
	if len(plainLines(m)) != 20 {
		t.Errorf("expected 20 lines, got %d", len(plainLines(m)))
	}

	// tiny terminals still get a row
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 1})
	if m.Err() != nil || m.viewport.Height() != 1 {
		t.Errorf("expected 1 row viewport, got %d (err %v)", m.viewport.Height(), m.Err())
	}
}

func TestApp_FooterReducesViewportHeight(t *testing.T) {
	c := testConfig(t)
	c.FooterEnabled = true
	m := newTestModel(t, c, 100)
	if m.viewport.Height() != 8 {
		t.Errorf("expected 8 content rows, got %d", m.viewport.Height())
	}
	if len(plainLines(m)) != 10 {
		t.Errorf("expected 10 lines, got %d", len(plainLines(m)))
	}
}

func TestApp_ScrollSettles(t *testing.T) {
	m := newTestModel(t, testConfig(t), 100)
	m, cmd := update(t, m, keyMsg("j"))
	if cmd == nil || m.settleID == "" {
		t.Fatalf("expected settle to be scheduled")
	}
	firstID := m.settleID
	m, _ = update(t, m, keyMsg("j"))
	if m.settleID == firstID {
		t.Fatalf("expected a new settle id")
	}

	// stale settle is ignored
	m, _ = update(t, m, message.ScrollSettledMsg{UUID: firstID})
	if m.settled.End != 12 {
		t.Errorf("expected settled window unchanged, got %+v", m.settled)
	}

	m, _ = update(t, m, message.ScrollSettledMsg{UUID: m.settleID})
	expected := window.Window{Start: 0, End: 14, Offset: 0, TotalExtent: 100}
	if diff := cmp.Diff(expected, m.settled); diff != "" {
		t.Errorf("Diff (-expected +actual):\n%s", diff)
	}
	if !strings.HasPrefix(plainLines(m)[0], "vlist test   3-11 of 100   window [0, 14)") {
		t.Errorf("unexpected top bar %q", plainLines(m)[0])
	}
}

func TestApp_NoSettleWithoutScroll(t *testing.T) {
	m := newTestModel(t, testConfig(t), 100)
	m, cmd := update(t, m, keyMsg("k"))
	if cmd != nil || m.settleID != "" {
		t.Errorf("expected no settle when already at the top")
	}
}

func TestApp_MouseWheel(t *testing.T) {
	m := newTestModel(t, testConfig(t), 100)
	m, _ = update(t, m, tea.MouseWheelMsg{Button: tea.MouseWheelDown})
	if m.viewport.TopItemIdx() != 3 {
		t.Errorf("expected top item 3, got %d", m.viewport.TopItemIdx())
	}
}

func TestApp_Bookmarks(t *testing.T) {
	m := newTestModel(t, testConfig(t), 100)
	m, _ = update(t, m, keyMsg("m"))
	for i := 0; i < 5; i++ {
		m, _ = update(t, m, keyMsg("j"))
	}
	m, _ = update(t, m, keyMsg("m"))
	if diff := cmp.Diff([]int{0, 5}, m.renderer.bookmarks.Indexes()); diff != "" {
		t.Errorf("Diff (-expected +actual):\n%s", diff)
	}
	if !strings.Contains(plainLines(m)[0], "2 bookmarked") {
		t.Errorf("expected bookmark count in top bar, got %q", plainLines(m)[0])
	}
	if !strings.HasPrefix(plainLines(m)[1], "▌  6 Item 6") {
		t.Errorf("expected bookmark marker, got %q", plainLines(m)[1])
	}

	m, _ = update(t, m, keyMsg("g"))
	for _, tt := range []struct {
		key      string
		expected int
	}{
		{key: "n", expected: 5},
		{key: "n", expected: 0},
		{key: "N", expected: 5},
	} {
		m, _ = update(t, m, keyMsg(tt.key))
		if m.viewport.TopItemIdx() != tt.expected {
			t.Errorf("after %s expected top item %d, got %d", tt.key, tt.expected, m.viewport.TopItemIdx())
		}
	}

	// toggling again removes it
	m, _ = update(t, m, keyMsg("m"))
	if diff := cmp.Diff([]int{0}, m.renderer.bookmarks.Indexes()); diff != "" {
		t.Errorf("Diff (-expected +actual):\n%s", diff)
	}
}

func TestApp_ReloadPrunesBookmarks(t *testing.T) {
	m := newTestModel(t, testConfig(t), 100)
	m.viewport.ScrollToItem(50)
	m, _ = update(t, m, keyMsg("m"))
	m, _ = update(t, m, command.ItemsLoadedMsg{Items: source.Generate(10)})
	if m.renderer.bookmarks.Len() != 0 {
		t.Errorf("expected bookmarks to be pruned, got %v", m.renderer.bookmarks.Indexes())
	}
	if m.viewport.TopItemIdx() != 1 {
		t.Errorf("expected top item clamped to 1, got %d", m.viewport.TopItemIdx())
	}
}

func TestApp_Wrap(t *testing.T) {
	m := newTestModel(t, testConfig(t), 10)
	m, _ = update(t, m, keyMsg("w"))
	if !m.viewport.GetWrapText() {
		t.Errorf("expected wrap on")
	}
	m, _ = update(t, m, keyMsg("w"))
	if m.viewport.GetWrapText() {
		t.Errorf("expected wrap off")
	}
}

func TestApp_Help(t *testing.T) {
	m := newTestModel(t, testConfig(t), 10)
	m, _ = update(t, m, keyMsg("?"))
	if !strings.Contains(ansi.Strip(m.view()), "Help (press any key to hide)") {
		t.Errorf("expected help to be shown")
	}
	// any key dismisses help without scrolling
	m, _ = update(t, m, keyMsg("j"))
	if m.helpText != "" || m.viewport.TopItemIdx() != 0 {
		t.Errorf("expected help dismissed and no scroll")
	}
}

func TestApp_Quit(t *testing.T) {
	m := newTestModel(t, testConfig(t), 10)
	_, cmd := update(t, m, keyMsg("q"))
	expectQuit(t, cmd)
	_, cmd = update(t, m, tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	expectQuit(t, cmd)
}

func TestApp_Save(t *testing.T) {
	c := testConfig(t)
	m := newTestModel(t, c, 100)
	m, _ = update(t, m, keyMsg("j"))
	_, cmd := update(t, m, tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatalf("expected save command")
	}
	saved, ok := cmd().(fileio.SaveCompleteMsg)
	if !ok {
		t.Fatalf("expected SaveCompleteMsg")
	}
	if saved.ErrMessage != "" || saved.NumItems != 9 || !strings.HasPrefix(saved.FullPath, c.SaveDir) {
		t.Errorf("unexpected save %+v", saved)
	}

	m, _ = update(t, m, saved)
	lines := plainLines(m)
	if !strings.Contains(lines[len(lines)-1], "Saved 9 items to") {
		t.Errorf("expected save toast, got %q", lines[len(lines)-1])
	}
}

func TestApp_CopyToast(t *testing.T) {
	m := newTestModel(t, testConfig(t), 100)
	m, _ = update(t, m, command.ContentCopiedToClipboardMsg{NumItems: 9})
	lines := plainLines(m)
	if !strings.Contains(lines[len(lines)-1], "Copied 9 items to clipboard") {
		t.Errorf("expected copy toast, got %q", lines[len(lines)-1])
	}

	m, _ = update(t, m, command.ContentCopiedToClipboardMsg{Err: errors.New("no clipboard")})
	lines = plainLines(m)
	if !strings.Contains(lines[len(lines)-1], "Error copying to clipboard: no clipboard") {
		t.Errorf("expected copy error toast, got %q", lines[len(lines)-1])
	}

	m, _ = update(t, m, m.toast.Timeout(0)())
	if m.toast.Visible {
		t.Errorf("expected toast to time out")
	}
}

func TestApp_VisibleItemTexts(t *testing.T) {
	m := newTestModel(t, testConfig(t), 100)
	m.viewport.ScrollToItem(10)
	texts := m.visibleItemTexts()
	if len(texts) != 9 || texts[0] != "Item 11" || texts[8] != "Item 19" {
		t.Errorf("unexpected visible texts %v", texts)
	}
}

func TestApp_InvalidItemHeight(t *testing.T) {
	c := testConfig(t)
	c.ItemHeight = 0
	m := InitialModel(c)
	m, cmd := update(t, m, tea.WindowSizeMsg{Width: 80, Height: 10})
	if !errors.Is(m.Err(), window.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", m.Err())
	}
	expectQuit(t, cmd)
	if !strings.HasPrefix(ansi.Strip(m.view()), "Error") {
		t.Errorf("expected error view")
	}
}

func TestApp_LoadError(t *testing.T) {
	m := InitialModel(testConfig(t))
	m, cmd := update(t, m, command.ItemsLoadedMsg{Err: errors.New("boom")})
	if m.Err() == nil {
		t.Errorf("expected error")
	}
	expectQuit(t, cmd)

	// keys other than quit are ignored
	m, cmd = update(t, m, keyMsg("j"))
	if cmd != nil {
		t.Errorf("expected no command")
	}
}
