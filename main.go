package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/philtim/clockboard/board"
	"github.com/philtim/clockboard/config"
	"github.com/philtim/clockboard/logging"
	"github.com/philtim/clockboard/tzdir"
)

// viewState represents the current view state
type viewState int

const (
	viewBoard viewState = iota
	viewSearch
)

// editFocus identifies the clock field the cursor is on while editing a card.
type editFocus int

const (
	focusNone editFocus = iota
	focusDate
	focusHour
	focusMinute
	focusMeridiem
)

// tickMsg is sent every second to advance the board while it is live
type tickMsg time.Time

// model represents the application state
type model struct {
	// Core data
	cfg *config.Config
	log zerolog.Logger
	dir []tzdir.Info

	// clocks is replaced wholesale on every mutation; all clocks always
	// denote the same instant except for one that may be mid-edit.
	clocks board.Board

	// live advances the board from the real clock every second until the
	// user's first edit freezes it.
	live bool

	// View state
	state    viewState
	viewport viewport.Model
	ready    bool
	err      error
	width    int
	height   int
	quitting bool

	// Search state
	searchInput       textinput.Model
	searchResults     []tzdir.Info
	selectedResult    int
	justEnteredSearch bool // Flag to prevent initial key from appearing in input

	// Card selection and edit state
	selected    int
	focus       editFocus
	dateInput   textinput.Model
	hourInput   textinput.Model
	minuteInput textinput.Model
	dateInvalid bool
}

// Init initializes the model
func (m model) Init() tea.Cmd {
	return tickCmd()
}

// Update handles messages and updates the model
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd = m.handleKeyPress(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		if !m.ready {
			// Reserve space for the command bar
			m.viewport = viewport.New(msg.Width, msg.Height-2)
			m.viewport.YPosition = 0
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 2
		}

	case tickMsg:
		if m.live && m.state == viewBoard && m.focus == focusNone {
			m.clocks = m.clocks.Sync(time.Time(msg))
		}
		cmds = append(cmds, tickCmd())
	}

	// Route typed input into the active component
	switch m.state {
	case viewSearch:
		// Only update searchInput if we didn't just enter search mode
		// (prevents the triggering key from appearing in the input field)
		if !m.justEnteredSearch {
			m.searchInput, cmd = m.searchInput.Update(msg)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
			// Re-derive the ranked results from the current query
			m.searchResults = tzdir.Rank(m.searchInput.Value(), m.dir)
			if m.selectedResult >= len(m.searchResults) {
				m.selectedResult = 0
			}
		} else {
			m.justEnteredSearch = false
		}

	case viewBoard:
		cmd = m.updateFieldInputs(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	if m.focus == focusNone {
		m.viewport, cmd = m.viewport.Update(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

// updateFieldInputs feeds msg to the focused field input and applies the
// resulting text to the board as an edit whenever it actually changed.
func (m *model) updateFieldInputs(msg tea.Msg) tea.Cmd {
	e, ok := m.selectedEntry()
	if !ok || m.focus == focusNone {
		return nil
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusDate:
		m.dateInput, cmd = m.dateInput.Update(msg)

	case focusHour:
		prev := m.hourInput.Value()
		m.hourInput, cmd = m.hourInput.Update(msg)
		if m.hourInput.Value() != prev {
			m.clocks = m.clocks.Apply(e.ID, board.HourEdit{Text: m.hourInput.Value()})
		}

	case focusMinute:
		prev := m.minuteInput.Value()
		m.minuteInput, cmd = m.minuteInput.Update(msg)
		if m.minuteInput.Value() != prev {
			m.clocks = m.clocks.Apply(e.ID, board.MinuteEdit{Text: m.minuteInput.Value()})
		}
	}
	return cmd
}

// handleKeyPress handles keyboard input based on current view state
func (m *model) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	switch m.state {
	case viewBoard:
		if m.focus != focusNone {
			return m.handleEditKeys(msg)
		}
		return m.handleBoardKeys(msg)
	case viewSearch:
		return m.handleSearchKeys(msg)
	}
	return nil
}

// handleBoardKeys handles keys in the board view when no field is focused
func (m *model) handleBoardKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return tea.Quit

	case "a", "/":
		// Enter search mode
		m.state = viewSearch
		m.searchInput.Reset()
		m.searchResults = nil
		m.selectedResult = 0
		m.justEnteredSearch = true
		m.searchInput.Focus()
		return textinput.Blink

	case "left", "h":
		if m.selected > 0 {
			m.selected--
		}

	case "right", "l":
		if m.selected < len(m.clocks.Entries)-1 {
			m.selected++
		}

	case "enter", "e":
		return m.startEdit()

	case "x", "d":
		if e, ok := m.selectedEntry(); ok {
			m.clocks = m.clocks.Remove(e.ID)
			if m.selected >= len(m.clocks.Entries) && m.selected > 0 {
				m.selected--
			}
			m.log.Info().Str("timezone", e.Timezone.Key).Msg("clock removed")
		}

	case "t":
		use24 := !m.clocks.Use24Hour
		m.clocks = m.clocks.SetUse24Hour(use24)
		m.cfg.Use24Hour = use24
		if err := m.cfg.Save(); err != nil {
			m.log.Warn().Err(err).Msg("failed to save hour format preference")
		}

	case "r":
		m.live = true
	}

	return nil
}

// handleEditKeys handles keys while a clock field is focused
func (m *model) handleEditKeys(msg tea.KeyMsg) tea.Cmd {
	e, ok := m.selectedEntry()
	if !ok {
		m.focus = focusNone
		return nil
	}

	switch msg.String() {
	case "esc":
		m.leaveField()
		m.focus = focusNone
		return nil

	case "tab":
		return m.setFocus(m.nextFocus(1))

	case "shift+tab":
		return m.setFocus(m.nextFocus(-1))

	case "enter":
		if m.focus == focusDate {
			m.commitDate(e.ID)
			return nil
		}
		m.leaveField()
		m.focus = focusNone
		return nil
	}

	if m.focus == focusMeridiem {
		switch msg.String() {
		case "a":
			m.applyMeridiem(e.ID, false)
		case "p":
			m.applyMeridiem(e.ID, true)
		case " ":
			m.applyMeridiem(e.ID, !e.IsPM())
		}
	}

	return nil
}

// handleSearchKeys handles keys in search view
func (m *model) handleSearchKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		// Cancel and return to the board
		m.state = viewBoard
		return nil

	case "up":
		if m.selectedResult > 0 {
			m.selectedResult--
		}

	case "down":
		if m.selectedResult < len(m.searchResults)-1 {
			m.selectedResult++
		}

	case "enter":
		// Add a clock for the selected timezone and collapse the panel
		if len(m.searchResults) > 0 && m.selectedResult < len(m.searchResults) {
			tz := m.searchResults[m.selectedResult]
			m.clocks = m.clocks.Add(tz, time.Now())
			m.searchInput.Reset()
			m.searchResults = nil
			m.state = viewBoard
			m.selected = len(m.clocks.Entries) - 1
			m.log.Info().Str("timezone", tz.Key).Int("clocks", len(m.clocks.Entries)).Msg("clock added")
		}
	}

	return nil
}

// startEdit begins editing the selected card, starting on the date field.
func (m *model) startEdit() tea.Cmd {
	e, ok := m.selectedEntry()
	if !ok {
		return nil
	}
	m.live = false
	m.dateInvalid = false
	m.dateInput.SetValue(e.DisplayDate())
	m.hourInput.SetValue(e.DisplayHour)
	m.minuteInput.SetValue(e.DisplayMinute)
	return m.setFocus(focusDate)
}

// nextFocus returns the focus target delta steps away in the field cycle
// date -> hour -> minute -> meridiem. The meridiem control only exists in
// 12-hour mode.
func (m *model) nextFocus(delta int) editFocus {
	order := []editFocus{focusDate, focusHour, focusMinute}
	if !m.clocks.Use24Hour {
		order = append(order, focusMeridiem)
	}
	cur := 0
	for i, f := range order {
		if f == m.focus {
			cur = i
			break
		}
	}
	return order[(cur+delta+len(order))%len(order)]
}

// setFocus moves the edit cursor to field f, blurring the field it leaves.
func (m *model) setFocus(f editFocus) tea.Cmd {
	m.leaveField()
	m.focus = f

	m.dateInput.Blur()
	m.hourInput.Blur()
	m.minuteInput.Blur()

	// Refresh the input buffers from the (possibly just snapped-back) entry
	if e, ok := m.selectedEntry(); ok {
		m.dateInput.SetValue(e.DisplayDate())
		m.hourInput.SetValue(e.DisplayHour)
		m.minuteInput.SetValue(e.DisplayMinute)
	}

	switch f {
	case focusDate:
		m.dateInput.Focus()
		return textinput.Blink
	case focusHour:
		m.hourInput.Focus()
		return textinput.Blink
	case focusMinute:
		m.minuteInput.Focus()
		return textinput.Blink
	}
	return nil
}

// leaveField commits or discards the field the cursor is currently on. An
// invalid hour or minute snaps back to the last good value; a date buffer is
// committed if it parses and discarded otherwise.
func (m *model) leaveField() {
	e, ok := m.selectedEntry()
	if !ok {
		return
	}
	switch m.focus {
	case focusDate:
		m.commitDate(e.ID)
	case focusHour:
		m.clocks = m.clocks.Blur(e.ID, board.FieldHour)
	case focusMinute:
		m.clocks = m.clocks.Blur(e.ID, board.FieldMinute)
	}
}

// commitDate applies the date buffer to the board if it parses as
// yyyy-MM-dd. Malformed dates never reach the shared instant.
func (m *model) commitDate(id string) {
	d, err := board.ParseDate(m.dateInput.Value())
	if err != nil {
		m.dateInvalid = true
		if e, ok := m.clocks.Get(id); ok {
			m.dateInput.SetValue(e.DisplayDate())
		}
		return
	}
	m.dateInvalid = false
	m.clocks = m.clocks.Apply(id, d)
	m.log.Debug().Str("clock", id).Int("year", d.Year).Int("month", d.Month).Int("day", d.Day).Msg("date applied")
}

// applyMeridiem switches the selected clock between AM and PM and refreshes
// the hour input from the recomputed buffer.
func (m *model) applyMeridiem(id string, pm bool) {
	m.clocks = m.clocks.Apply(id, board.MeridiemEdit{PM: pm})
	if e, ok := m.clocks.Get(id); ok {
		m.hourInput.SetValue(e.DisplayHour)
	}
}

// selectedEntry returns the entry under the cursor.
func (m *model) selectedEntry() (board.Entry, bool) {
	if m.selected < 0 || m.selected >= len(m.clocks.Entries) {
		return board.Entry{}, false
	}
	return m.clocks.Entries[m.selected], true
}

// View renders the UI
func (m model) View() string {
	if m.err != nil {
		return fmt.Sprintf("Error: %v\n\nPress 'q' to quit", m.err)
	}

	if m.quitting {
		return "Goodbye!\n"
	}

	if !m.ready {
		return "Initializing..."
	}

	switch m.state {
	case viewBoard:
		return m.renderBoard()
	case viewSearch:
		return m.renderSearch()
	}

	return ""
}

// renderBoard renders the clock card grid with the command bar below
func (m model) renderBoard() string {
	content := m.renderClockCards()
	m.viewport.SetContent(content)

	return fmt.Sprintf("%s\n%s", m.viewport.View(), m.renderCommandBar())
}

// renderSearch renders the timezone search view
func (m model) renderSearch() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("205")).
		Padding(1, 0)
	b.WriteString(titleStyle.Render("Add Clock"))
	b.WriteString("\n\n")

	b.WriteString("Search timezone:\n")
	b.WriteString(m.searchInput.View())
	b.WriteString("\n\n")

	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	if strings.TrimSpace(m.searchInput.Value()) == "" {
		b.WriteString(dimStyle.Render("Type a city, region or abbreviation..."))
	} else if len(m.searchResults) == 0 {
		b.WriteString(dimStyle.Render("No timezones found"))
	} else {
		b.WriteString(fmt.Sprintf("Results (%d):\n", len(m.searchResults)))
		// Keep the selection visible inside a fixed-size window
		maxVisible := 10
		start := 0
		if m.selectedResult >= maxVisible {
			start = m.selectedResult - maxVisible + 1
		}
		end := start + maxVisible
		if end > len(m.searchResults) {
			end = len(m.searchResults)
		}

		for i := start; i < end; i++ {
			tz := m.searchResults[i]
			line := fmt.Sprintf("  %s  %s (%s)", tz.OffsetLabel(), tz.Display, tz.Key)

			if i == m.selectedResult {
				line = lipgloss.NewStyle().
					Foreground(lipgloss.Color("205")).
					Bold(true).
					Render("> " + line)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("↑/↓: Navigate | Enter: Add | ESC: Cancel"))

	return b.String()
}

// renderClockCards renders all clocks in a grid layout
func (m model) renderClockCards() string {
	entries := m.clocks.Entries
	if len(entries) == 0 {
		helpStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Align(lipgloss.Center).
			Padding(2, 4)
		return helpStyle.Render("Press 'a' to search for a timezone and add a clock")
	}

	cols := m.calculateColumns()
	rows := (len(entries) + cols - 1) / cols

	// Border (2) + padding (4) + margins (2) per card
	cardOverhead := 8
	cardWidth := m.width/cols - cardOverhead
	if cardWidth < 26 {
		cardWidth = 26
	}

	var cards []string
	for i, e := range entries {
		cards = append(cards, m.renderClockCard(e, i, cardWidth))
	}

	var rowContents []string
	for row := 0; row < rows; row++ {
		var rowCards []string
		for col := 0; col < cols; col++ {
			idx := row*cols + col
			if idx < len(cards) {
				rowCards = append(rowCards, cards[idx])
			}
		}
		if len(rowCards) > 0 {
			rowContents = append(rowContents, lipgloss.JoinHorizontal(lipgloss.Top, rowCards...))
		}
	}

	return strings.Join(rowContents, "\n")
}

// renderClockCard renders a single clock card
func (m model) renderClockCard(e board.Entry, idx, width int) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("86")).
		Align(lipgloss.Center).
		Width(width).
		PaddingTop(1).
		PaddingBottom(1)

	timeStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("205")).
		Align(lipgloss.Center).
		Width(width).
		MarginBottom(1)

	dateStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Align(lipgloss.Center).
		Width(width).
		PaddingBottom(1)

	borderColor := lipgloss.Color("62")
	if idx == m.selected {
		borderColor = lipgloss.Color("205")
	}
	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 2).
		Margin(1, 1, 0, 1)

	title := titleStyle.Render(strings.ToUpper(e.Timezone.Display))

	var timeStr, dateStr string
	if idx == m.selected && m.focus != focusNone {
		timeStr = timeStyle.Render(m.renderFieldInputs(e))
		dateStr = dateStyle.Render(m.renderOffsets(e))
	} else {
		clock := e.DisplayHour + ":" + e.DisplayMinute
		if !m.clocks.Use24Hour {
			clock += " " + e.Meridiem()
		}
		timeStr = timeStyle.Render(clock)
		dateStr = dateStyle.Render(e.DisplayDate() + "  " + m.renderOffsets(e))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, title, timeStr, dateStr)

	return cardStyle.Render(content)
}

// renderFieldInputs renders the editable date/hour/minute/meridiem controls
// for the card under edit. Invalid fields are marked red.
func (m model) renderFieldInputs(e board.Entry) string {
	invalidStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	focusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)

	date := m.dateInput.View()
	if m.dateInvalid {
		date = invalidStyle.Render(date)
	}

	hour := m.hourInput.View()
	if !e.HourValid {
		hour = invalidStyle.Render(hour)
	}

	minute := m.minuteInput.View()
	if !e.MinuteValid {
		minute = invalidStyle.Render(minute)
	}

	parts := []string{date, hour + ":" + minute}
	if !m.clocks.Use24Hour {
		meridiem := "[" + e.Meridiem() + "]"
		if m.focus == focusMeridiem {
			meridiem = focusStyle.Render(meridiem)
		}
		parts = append(parts, meridiem)
	}

	return strings.Join(parts, " ")
}

// renderOffsets renders the GMT offset of the clock and, for every clock but
// the first, its offset relative to the first clock.
func (m model) renderOffsets(e board.Entry) string {
	label := board.UTCOffsetLabel(e.Time)
	if len(m.clocks.Entries) > 0 {
		if rel := board.RelativeOffsetLabel(m.clocks.Entries[0], e); rel != "" {
			label += "  " + rel
		}
	}
	return label
}

// renderCommandBar renders the command bar at the bottom
func (m model) renderCommandBar() string {
	barBg := lipgloss.Color("235")
	sideStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Background(barBg).
		Padding(0, 1)

	var commands string
	if m.focus != focusNone {
		commands = "Tab: Next Field | Enter: Done | ESC: Cancel"
	} else {
		commands = "a: Add | e: Edit | x: Remove | t: 12/24h | r: Resume Live | q: Quit"
	}
	leftContent := sideStyle.Render(commands)

	status := "edited"
	if m.live {
		status = "live"
	}
	if m.clocks.Use24Hour {
		status += " | 24h"
	} else {
		status += " | 12h"
	}
	rightContent := sideStyle.Render(status)

	spacingWidth := m.width - lipgloss.Width(leftContent) - lipgloss.Width(rightContent)
	if spacingWidth < 0 {
		spacingWidth = 0
	}
	spacing := strings.Repeat(" ", spacingWidth)

	barStyle := lipgloss.NewStyle().Background(barBg)
	return barStyle.Render(leftContent + spacing + rightContent)
}

// calculateColumns determines the number of columns based on terminal width
// and display name lengths
func (m model) calculateColumns() int {
	maxNameLen := 0
	for _, e := range m.clocks.Entries {
		if l := len(e.Timezone.Display); l > maxNameLen {
			maxNameLen = l
		}
	}

	// The offsets line ("2025-12-03  GMT+01:00  +9h 30m") is the widest
	minContentWidth := maxNameLen
	if minContentWidth < 30 {
		minContentWidth = 30
	}

	minCardWidth := minContentWidth + 8

	if m.width >= minCardWidth*4 {
		return 4
	}
	if m.width >= minCardWidth*2 {
		return 2
	}
	return 1
}

// tickCmd returns a command that sends a tick message every second
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	logCfg, err := logging.FromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading log settings: %v\n", err)
		os.Exit(1)
	}
	logger, logCloser, err := logging.Open(logCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log: %v\n", err)
		os.Exit(1)
	}
	defer logCloser.Close()

	// Load the timezone directory
	dir, err := tzdir.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading timezone directory: %v\n", err)
		os.Exit(1)
	}

	// Seed the board from the configured startup zones
	clocks := board.New(cfg.Use24Hour)
	now := time.Now()
	for _, key := range cfg.StartupZones {
		info, err := tzdir.Resolve(dir, key, now)
		if err != nil {
			logger.Warn().Err(err).Str("timezone", key).Msg("skipping startup zone")
			continue
		}
		clocks = clocks.Add(info, now)
	}

	// Initialize inputs
	searchInput := textinput.New()
	searchInput.Placeholder = "Search timezone..."
	searchInput.CharLimit = 40
	searchInput.Width = 40

	dateInput := textinput.New()
	dateInput.CharLimit = 10
	dateInput.Width = 10

	hourInput := textinput.New()
	hourInput.CharLimit = 4
	hourInput.Width = 4

	minuteInput := textinput.New()
	minuteInput.CharLimit = 4
	minuteInput.Width = 4

	// Initialize model
	m := model{
		cfg:         cfg,
		log:         logger,
		dir:         dir,
		clocks:      clocks,
		live:        true,
		state:       viewBoard,
		searchInput: searchInput,
		dateInput:   dateInput,
		hourInput:   hourInput,
		minuteInput: minuteInput,
	}

	logger.Info().
		Int("clocks", len(clocks.Entries)).
		Bool("use_24_hour", cfg.Use24Hour).
		Int("directory_size", len(dir)).
		Msg("starting clockboard")

	// Run the program
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}
