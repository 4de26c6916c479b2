package internal

// NOTE: Searching for `// #` will walk you through the main flow of the application

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"fmt"
	"github.com/charmbracelet/x/ansi"
	"github.com/google/uuid"
	"github.com/muesli/reflow/wrap"
	"github.com/robinovitch61/vlist/internal/bookmark"
	"github.com/robinovitch61/vlist/internal/command"
	"github.com/robinovitch61/vlist/internal/constants"
	"github.com/robinovitch61/vlist/internal/dev"
	"github.com/robinovitch61/vlist/internal/fileio"
	"github.com/robinovitch61/vlist/internal/help"
	"github.com/robinovitch61/vlist/internal/keymap"
	"github.com/robinovitch61/vlist/internal/message"
	"github.com/robinovitch61/vlist/internal/source"
	"github.com/robinovitch61/vlist/internal/style"
	"github.com/robinovitch61/vlist/internal/toast"
	"github.com/robinovitch61/vlist/internal/util"
	"github.com/robinovitch61/vlist/internal/viewport"
	"github.com/robinovitch61/vlist/internal/viewport/window"
	"strconv"
	"strings"
	"time"
)

// itemRenderer renders list items with a bookmark marker and line number gutter. It's shared by pointer with the
// viewport's RenderFunc so bookmark changes show up on the next Refresh
type itemRenderer struct {
	bookmarks   bookmark.Set
	numberWidth int
	styles      style.Styles
}

func (r *itemRenderer) render(item source.Item, idx int) string {
	marker := " "
	if r.bookmarks.Has(idx) {
		marker = r.styles.Bookmark.Render("▌")
	}
	number := r.styles.LineNumber.Render(fmt.Sprintf("%*d", r.numberWidth, item.Number))
	return marker + number + " " + item.Text
}

type Model struct {
	config        Config
	keyMap        keymap.KeyMap
	styles        style.Styles
	width, height int
	initialized   bool
	loaded        bool
	items         []source.Item
	renderer      *itemRenderer
	viewport      viewport.Model[source.Item]
	toast         toast.Model
	helpText      string
	err           error

	// settleID identifies the latest scroll. Only its ScrollSettledMsg updates settled
	settleID string
	settled  window.Window
}

func InitialModel(c Config) Model {
	styles := style.New(c.HasDarkBackground)
	return Model{
		config:   c,
		keyMap:   c.KeyMap,
		styles:   styles,
		renderer: &itemRenderer{styles: styles, numberWidth: 1},
	}
}

// #1: Loading the items starts immediately, in parallel with waiting for the terminal size
func (m Model) Init() tea.Cmd {
	return command.LoadItemsCmd(m.config.FilePath, m.config.Count)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	dev.DebugUpdateMsg("App", msg)
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	switch msg := msg.(type) {
	// #4: The user presses a key. Global keys are handled here, everything else scrolls the viewport
	case tea.KeyPressMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseWheelMsg:
		if m.err != nil || !m.initialized || m.helpText != "" {
			return m, nil
		}
		return m.scrollViewport(msg)

	// #2: WindowSizeMsg arrives once on startup, then again every time the window is resized
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if !m.initialized {
			m = m.initialize()
		} else {
			m = m.handleWindowSizeMsg()
		}
		if m.err != nil {
			return m, tea.Quit
		}
		return m, nil

	// #3: The items are loaded. If the viewport already exists, they replace its (empty) contents
	case command.ItemsLoadedMsg:
		if msg.Err != nil {
			m.err = msg.Err
			return m, tea.Quit
		}
		m = m.setItems(msg.Items)
		m, cmd = m.showToast(fmt.Sprintf("Loaded %s items", util.FormatCount(len(msg.Items))))
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)

	// #5: Scrolling stopped for a moment, so record where it ended up
	case message.ScrollSettledMsg:
		if msg.UUID == m.settleID && m.initialized {
			m.settled = m.viewport.Window()
			dev.Debug(fmt.Sprintf("scroll settled at offset %v, window [%d, %d)", m.viewport.ScrollOffset(), m.settled.Start, m.settled.End))
		}
		return m, nil

	case fileio.SaveCompleteMsg:
		toastMsg := msg.SuccessMessage
		if toastMsg == "" {
			toastMsg = fmt.Sprintf("Error saving: %s", msg.ErrMessage)
		}
		return m.showToast(toastMsg)

	case command.ContentCopiedToClipboardMsg:
		toastMsg := fmt.Sprintf("Copied %d items to clipboard", msg.NumItems)
		if msg.Err != nil {
			toastMsg = fmt.Sprintf("Error copying to clipboard: %s", msg.Err.Error())
		}
		return m.showToast(toastMsg)

	case toast.TimeoutMsg:
		m.toast, cmd = m.toast.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) View() tea.View {
	v := tea.NewView(m.view())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	return v
}

// Err returns the error that stopped the app, if any
func (m Model) Err() error {
	return m.err
}

func (m Model) view() string {
	if m.err != nil {
		errString := wrap.String(m.err.Error(), max(1, m.width))
		return lipgloss.JoinVertical(
			lipgloss.Left,
			"Error",
			"",
			errString,
		)
	}
	if !m.initialized {
		return ""
	}
	topBar := m.topBar()
	if m.helpText != "" {
		centeredHelp := lipgloss.Place(m.width, m.height-lipgloss.Height(topBar), lipgloss.Center, lipgloss.Center, m.helpText)
		return lipgloss.JoinVertical(lipgloss.Left, topBar, centeredHelp)
	}
	viewLines := []string{topBar}
	viewLines = append(viewLines, strings.Split(m.viewport.View(), "\n")...)
	if m.toast.Visible {
		toastView := ansi.Truncate(m.toast.View(), m.width, "")
		viewLines[len(viewLines)-1] = toastView
	}
	return strings.Join(viewLines, "\n")
}

func (m Model) topBar() string {
	padding := "   "
	left := fmt.Sprintf("vlist %s", m.config.Version)
	if m.config.FilePath != "" {
		left += padding + m.config.FilePath
	}
	if !m.loaded {
		left += padding + "Loading..."
	} else if len(m.items) > 0 {
		left += padding + fmt.Sprintf(
			"%s-%s of %s",
			util.FormatCount(m.viewport.TopItemIdx()+1),
			util.FormatCount(m.viewport.BottomItemIdx()+1),
			util.FormatCount(len(m.items)),
		)
		left += padding + fmt.Sprintf("window [%d, %d)", m.settled.Start, m.settled.End)
	}
	if n := m.renderer.bookmarks.Len(); n > 0 {
		left += padding + fmt.Sprintf("%d bookmarked", n)
	}

	right := fmt.Sprintf("%s to quit / %s for help", m.keyMap.Quit.Help().Key, m.keyMap.Help.Help().Key)
	toJoin := []string{left, ""}
	if lipgloss.Width(left)+len(padding)+len(right) < m.width {
		toJoin = []string{left, right}
	}
	return m.styles.TopBar.Render(util.JoinWithEqualSpacing(m.width, toJoin...))
}

// startup & bubble tea builtin messages
// ---
func (m Model) initialize() Model {
	dev.Debug("initializing")
	defer dev.Debug("done initializing")
	dev.Debug("------------")

	vp, err := viewport.New[source.Item](viewport.Config[source.Item]{
		Items:            m.items,
		RenderItem:       m.renderer.render,
		KeyMap:           m.config.ViewportKeyMap,
		Width:            m.width,
		Height:           m.viewportHeight(),
		ItemHeight:       m.config.ItemHeight,
		Buffer:           m.config.Buffer,
		WrapText:         m.config.WrapText,
		ScrollbarEnabled: m.config.ScrollbarEnabled,
		FooterEnabled:    m.config.FooterEnabled,
	})
	if err != nil {
		m.err = fmt.Errorf("creating viewport: %w", err)
		return m
	}
	vp.FooterStyle = m.styles.ViewportFooterStyle
	vp.ScrollbarTrackStyle = m.styles.ScrollbarTrack
	vp.ScrollbarThumbStyle = m.styles.ScrollbarThumb
	m.viewport = vp
	m.settled = vp.Window()
	m.initialized = true
	return m
}

func (m Model) handleWindowSizeMsg() Model {
	m.viewport.SetWidth(m.width)
	if err := m.viewport.SetHeight(m.viewportHeight()); err != nil {
		m.err = fmt.Errorf("resizing viewport: %w", err)
		return m
	}
	m.settled = m.viewport.Window()
	return m
}

// viewportHeight is the number of content rows left after the top bar and footer
func (m Model) viewportHeight() int {
	height := m.height - 1
	if m.config.FooterEnabled {
		height--
	}
	return max(constants.MinHeight, height)
}

func (m Model) setItems(items []source.Item) Model {
	m.items = items
	m.loaded = true
	m.renderer.numberWidth = len(strconv.Itoa(len(items)))
	m.renderer.bookmarks.Prune(len(items))
	if m.initialized {
		m.viewport.SetItems(items)
		m.settled = m.viewport.Window()
	}
	return m
}

func (m Model) showToast(s string) (Model, tea.Cmd) {
	m.toast = toast.New(s, m.styles.Toast)
	return m, m.toast.Timeout(constants.ToastDuration)
}

// key messages
// ---
func (m Model) handleKeyMsg(msg tea.KeyPressMsg) (Model, tea.Cmd) {
	// #6: User exits the app
	if key.Matches(msg, m.keyMap.Quit) {
		return m, tea.Quit
	}

	// ignore key messages other than exit if an error is present or nothing is shown yet
	if m.err != nil || !m.initialized {
		return m, nil
	}

	// if help text visible, pressing any key will dismiss it
	if m.helpText != "" {
		m.helpText = ""
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keyMap.Help):
		m.helpText = help.MakeHelp(m.keyMap, m.config.ViewportKeyMap, m.styles.KeyHelpStyle)
		return m, nil

	case key.Matches(msg, m.keyMap.Wrap):
		m.viewport.SetWrapText(!m.viewport.GetWrapText())
		return m, nil

	case key.Matches(msg, m.keyMap.Bookmark):
		if len(m.items) == 0 {
			return m, nil
		}
		m.renderer.bookmarks.Toggle(m.viewport.TopItemIdx())
		m.viewport.Refresh()
		return m, nil

	case key.Matches(msg, m.keyMap.NextBookmark):
		if idx, ok := m.renderer.bookmarks.Next(m.viewport.TopItemIdx()); ok {
			m.viewport.ScrollToItem(idx)
			return m.settleScroll()
		}
		return m, nil

	case key.Matches(msg, m.keyMap.PrevBookmark):
		if idx, ok := m.renderer.bookmarks.Prev(m.viewport.TopItemIdx()); ok {
			m.viewport.ScrollToItem(idx)
			return m.settleScroll()
		}
		return m, nil

	case key.Matches(msg, m.keyMap.Copy):
		return m, command.CopyItemsToClipboardCmd(m.visibleItemTexts())

	case key.Matches(msg, m.keyMap.Save):
		return m, fileio.SaveItemsCmd(m.config.SaveDir, m.visibleItemTexts())
	}

	return m.scrollViewport(msg)
}

// scrollViewport passes msg to the viewport and, if it scrolled, schedules a settle
func (m Model) scrollViewport(msg tea.Msg) (Model, tea.Cmd) {
	before := m.viewport.ScrollOffset()
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	if m.viewport.ScrollOffset() == before {
		return m, cmd
	}
	m, settleCmd := m.settleScroll()
	return m, tea.Batch(cmd, settleCmd)
}

// settleScroll schedules a ScrollSettledMsg. Any earlier pending one is superseded
func (m Model) settleScroll() (Model, tea.Cmd) {
	m.settleID = uuid.NewString()
	id := m.settleID
	return m, tea.Tick(constants.ScrollSettleInterval, func(time.Time) tea.Msg {
		return message.ScrollSettledMsg{UUID: id}
	})
}

func (m Model) visibleItemTexts() []string {
	var texts []string
	for _, n := range m.viewport.VisibleNodes() {
		texts = append(texts, m.items[n.Index].Text)
	}
	return texts
}
