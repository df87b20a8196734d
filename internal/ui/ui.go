package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"gorm.io/gorm"

	"github.com/traces-dev/traces-tui/internal/coach"
	"github.com/traces-dev/traces-tui/internal/engine"
	"github.com/traces-dev/traces-tui/internal/store"
	"github.com/traces-dev/traces-tui/internal/text"
	"github.com/traces-dev/traces-tui/internal/util"
)

const (
	viewMainMenu = "main_menu"
	viewWizard   = "wizard"
	viewLibrary  = "library"
	viewWisdom   = "wisdom"
	viewCoach    = "coach"
	viewHelp     = "help"
)

const (
	tickInterval    = 100 * time.Millisecond
	progressPerTick = 0.02
)

// genTickMsg drives the generation progress loop. The id guards against stale
// ticks after a cancel: only the current loop's messages are honored.
type genTickMsg struct{ id int }

type model struct {
	ctx    context.Context
	db     *store.DB
	scribe text.Scribe
	cfg    util.Config
	seed   engine.SessionSeed

	wizard   engine.Wizard
	genCount int // distinct stream per generation

	// wizard inputs
	decisionInput textinput.Model
	styleIndex    int
	toneIndex     int

	// generation progress
	generating  bool
	progress    float64
	lastQuarter int
	currentFact string
	genID       int
	prog        progress.Model
	spin        spinner.Model

	// review
	reviewMD   string
	saveStatus string

	// library browser
	library      []store.TimelineRecord
	libraryIndex int
	libraryPaths []store.PathRecord
	libraryOpen  bool

	// wisdom / feed
	wisdom []engine.WisdomItem
	feed   []engine.ActivityItem

	lifeCoach *coach.Coach

	view   string
	status string
	width  int
	height int

	styles struct{ title lipgloss.Style }
}

// initialModel boots to main menu; nothing is persisted until a timeline is
// accepted in review.
func initialModel(ctx context.Context, db *store.DB, scribe text.Scribe, lifeCoach *coach.Coach, cfg util.Config) model {
	seed, err := engine.NewSessionSeed(cfg.SeedText)
	if err != nil {
		seed, _ = engine.NewSessionSeed("fallback-seed")
	}
	ti := textinput.New()
	ti.Placeholder = "Should I take the new job in another city?"
	ti.CharLimit = 280
	ti.Width = 64
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot

	m := model{
		ctx:           ctx,
		db:            db,
		scribe:        scribe,
		cfg:           cfg,
		seed:          seed,
		wizard:        engine.NewWizard(),
		decisionInput: ti,
		prog:          progress.New(progress.WithDefaultGradient()),
		spin:          sp,
		lifeCoach:     lifeCoach,
	}
	if cfg.TimelineLength > 0 {
		m.wizard.TimelineLength = cfg.TimelineLength
	}
	if cfg.PathCount > 0 {
		m.wizard.PathCount = cfg.PathCount
	}
	m.syncSelectionCursors()
	m.styles.title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	m.view = viewMainMenu
	return m
}

func (m *model) syncSelectionCursors() {
	for i, s := range engine.AllStyles {
		if s == m.wizard.Style {
			m.styleIndex = i
		}
	}
	for i, t := range engine.AllTones {
		if t == m.wizard.Tone {
			m.toneIndex = i
		}
	}
}

// startNewTimeline resets the wizard and applies persisted defaults when the
// stored values still validate.
func (m *model) startNewTimeline() {
	m.wizard.Reset()
	m.reviewMD = ""
	m.saveStatus = ""
	m.decisionInput.SetValue("")
	m.decisionInput.Focus()
	if m.db != nil {
		sr := store.NewSettingsRepo(m.db)
		if s, err := sr.Get(m.ctx); err == nil {
			if style := engine.TimelineStyle(s.Style); style.Validate() {
				m.wizard.Style = style
			}
			if tone := engine.EmotionalTone(s.Tone); tone.Validate() {
				m.wizard.Tone = tone
			}
			if s.TimelineLength > 0 {
				m.wizard.TimelineLength = s.TimelineLength
			}
			if s.PathCount > 0 {
				m.wizard.PathCount = s.PathCount
			}
		}
	}
	m.syncSelectionCursors()
	m.view = viewWizard
}

func (m *model) beginGeneration() tea.Cmd {
	m.wizard.BeginGeneration()
	if m.wizard.Step != engine.StepGeneration {
		return nil
	}
	m.generating = true
	m.progress = 0
	m.lastQuarter = 0
	m.currentFact = ""
	m.genCount++
	m.genID++
	return tea.Batch(m.spin.Tick, m.tickCmd())
}

func (m *model) tickCmd() tea.Cmd {
	id := m.genID
	return tea.Tick(tickInterval, func(time.Time) tea.Msg { return genTickMsg{id: id} })
}

func (m *model) cancelGeneration() {
	m.generating = false
	m.progress = 0
	m.lastQuarter = 0
	m.currentFact = ""
	m.genID++ // orphan any in-flight tick
	m.wizard.CancelGeneration()
}

// advanceProgress applies one tick: monotonic increment, a fresh fact at every
// quarter boundary, clamp-and-finish at full progress.
func (m *model) advanceProgress() {
	m.progress += progressPerTick
	quarter := int(m.progress / 0.25)
	if quarter > m.lastQuarter && quarter < 4 {
		m.lastQuarter = quarter
		m.currentFact = engine.RandomFact(m.factStream(quarter))
	}
	if m.progress >= 1.0 {
		m.progress = 1.0
		m.finishGeneration()
	}
}

func (m *model) factStream(quarter int) *engine.Stream {
	return m.seed.Stream(fmt.Sprintf("facts:%d:%d", m.genCount, quarter))
}

func (m *model) finishGeneration() {
	m.generating = false
	stream := m.seed.Stream(fmt.Sprintf("timeline:%d", m.genCount))
	tl, err := engine.GenerateTimeline(stream, m.wizard.DecisionText, m.wizard.Style, m.wizard.Tone, m.wizard.PathCount)
	if err != nil {
		m.status = "Generation failed: " + err.Error()
		m.wizard.CancelGeneration()
		return
	}
	m.wizard.CompleteGeneration(tl)
	m.reviewMD = m.renderSummary(tl)
}

// renderSummary produces the review markdown, served from the summary cache
// when the timeline content hash matches a prior render.
func (m *model) renderSummary(tl engine.Timeline) string {
	var md string
	var hash []byte
	if m.db != nil {
		cacheRepo := store.NewSummaryCacheRepo(m.db)
		if h, err := text.SummaryCacheKey(tl); err == nil {
			hash = h
			if cached, ok, err := cacheRepo.Get(m.ctx, nil, h); err == nil && ok {
				md = cached
			}
		}
	}
	if md == "" {
		generated, err := m.scribe.Summary(m.ctx, tl)
		if err != nil {
			fallback := text.NewMinimalFallbackScribe()
			generated, _ = fallback.Summary(m.ctx, tl)
		}
		md = generated
		if hash != nil {
			_ = store.NewSummaryCacheRepo(m.db).Put(m.ctx, nil, hash, md)
		}
	}
	renderer, _ := glamour.NewTermRenderer(glamour.WithAutoStyle())
	rendered, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return rendered
}

// saveTimeline persists the accepted timeline plus current wizard defaults.
func (m *model) saveTimeline() {
	if m.wizard.Generated == nil || m.db == nil {
		m.saveStatus = "nothing to save"
		return
	}
	if err := store.SaveTimeline(m.ctx, m.db, *m.wizard.Generated); err != nil {
		m.saveStatus = "save failed: " + err.Error()
		return
	}
	sr := store.NewSettingsRepo(m.db)
	_ = sr.Upsert(m.ctx, store.Settings{
		Style:          string(m.wizard.Style),
		Tone:           string(m.wizard.Tone),
		TimelineLength: m.wizard.TimelineLength,
		PathCount:      m.wizard.PathCount,
	})
	m.saveStatus = "saved to library"
}

func (m *model) refreshLibrary() {
	if m.db == nil {
		return
	}
	tr := store.NewTimelineRepo(m.db)
	if recs, err := tr.List(m.ctx, 40); err == nil {
		m.library = recs
		if m.libraryIndex >= len(m.library) {
			m.libraryIndex = len(m.library) - 1
		}
		if m.libraryIndex < 0 {
			m.libraryIndex = 0
		}
	}
}

// refreshWisdom snapshots a fresh mock batch into the store, then reads the
// ranked view back so repeated visits accumulate community data.
func (m *model) refreshWisdom() {
	wisdom := engine.MockWisdomItems(m.seed.Stream(fmt.Sprintf("wisdom:%d", m.genCount)), 5)
	feed := engine.MockActivityFeed(m.seed.Stream(fmt.Sprintf("feed:%d", m.genCount)), 8)
	if m.db == nil {
		m.wisdom = wisdom
		m.feed = feed
		return
	}
	wr := store.NewWisdomRepo(m.db)
	ar := store.NewActivityRepo(m.db)
	err := m.db.WithTx(m.ctx, func(tx *gorm.DB) error {
		if err := wr.BulkInsert(m.ctx, tx, wisdom); err != nil {
			return err
		}
		return ar.BulkInsert(m.ctx, tx, feed)
	})
	if err != nil {
		m.wisdom = wisdom
		m.feed = feed
		return
	}
	if top, err := wr.ListTop(m.ctx, 5); err == nil && len(top) > 0 {
		m.wisdom = top
	} else {
		m.wisdom = wisdom
	}
	if recent, err := ar.ListRecent(m.ctx, 8); err == nil && len(recent) > 0 {
		m.feed = recent
	} else {
		m.feed = feed
	}
}

// tea.Model implementation ---------------------------------------------------

func (m model) Init() tea.Cmd { return textinput.Blink }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.prog.Width = clampInt(msg.Width-20, 10, 60)
		return m, nil
	case spinner.TickMsg:
		if !m.generating {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	case genTickMsg:
		if msg.id != m.genID || !m.generating {
			return m, nil
		}
		m.advanceProgress()
		if m.generating {
			return m, m.tickCmd()
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := msg.String()
	if k == "ctrl+c" {
		return m, tea.Quit
	}
	switch m.view {
	case viewMainMenu:
		switch k {
		case "1":
			m.startNewTimeline()
		case "2":
			m.refreshLibrary()
			m.libraryOpen = false
			m.view = viewLibrary
		case "3":
			m.refreshWisdom()
			m.view = viewWisdom
		case "4":
			if m.lifeCoach != nil {
				m.lifeCoach.Start()
			}
			m.view = viewCoach
		case "?":
			m.view = viewHelp
		case "q":
			return m, tea.Quit
		}
		return m, nil
	case viewWizard:
		return m.handleWizardKey(msg)
	case viewLibrary:
		switch k {
		case "up", "k":
			if m.libraryIndex > 0 {
				m.libraryIndex--
			}
		case "down", "j":
			if m.libraryIndex < len(m.library)-1 {
				m.libraryIndex++
			}
		case "enter":
			m.libraryOpen = !m.libraryOpen
			if m.libraryOpen && len(m.library) > 0 {
				pr := store.NewPathRepo(m.db)
				if paths, err := pr.ListForTimeline(m.ctx, m.library[m.libraryIndex].ID); err == nil {
					m.libraryPaths = paths
				}
			}
		case "esc", "q":
			if m.libraryOpen {
				m.libraryOpen = false
			} else {
				m.view = viewMainMenu
			}
		}
		return m, nil
	case viewWisdom, viewCoach, viewHelp:
		switch k {
		case "esc", "q", "m":
			m.view = viewMainMenu
		}
		return m, nil
	}
	return m, nil
}

func (m model) handleWizardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := msg.String()
	switch m.wizard.Step {
	case engine.StepDecisionInput:
		switch k {
		case "enter":
			m.wizard.DecisionText = m.decisionInput.Value()
			m.wizard.Next()
			return m, nil
		case "esc":
			m.view = viewMainMenu
			return m, nil
		}
		var cmd tea.Cmd
		m.decisionInput, cmd = m.decisionInput.Update(msg)
		m.wizard.DecisionText = m.decisionInput.Value()
		return m, cmd
	case engine.StepStyleSelection:
		switch k {
		case "up", "k":
			if m.styleIndex > 0 {
				m.styleIndex--
			}
		case "down", "j":
			if m.styleIndex < len(engine.AllStyles)-1 {
				m.styleIndex++
			}
		case "enter":
			m.wizard.Next()
		case "esc":
			m.wizard.Previous()
		}
		m.wizard.Style = engine.AllStyles[m.styleIndex]
		return m, nil
	case engine.StepParameterTuning:
		switch k {
		case "t":
			m.toneIndex = (m.toneIndex + 1) % len(engine.AllTones)
			m.wizard.Tone = engine.AllTones[m.toneIndex]
		case "+", "=":
			if m.wizard.PathCount < 8 {
				m.wizard.PathCount++
			}
		case "-", "_":
			if m.wizard.PathCount > 1 {
				m.wizard.PathCount--
			}
		case "]":
			if m.wizard.TimelineLength < 10.0 {
				m.wizard.TimelineLength += 0.5
			}
		case "[":
			if m.wizard.TimelineLength > 1.0 {
				m.wizard.TimelineLength -= 0.5
			}
		case "enter":
			return m, m.beginGeneration()
		case "esc":
			m.wizard.Previous()
		}
		return m, nil
	case engine.StepGeneration:
		if k == "esc" {
			m.cancelGeneration()
		}
		return m, nil
	case engine.StepReview:
		switch k {
		case "s":
			m.saveTimeline()
		case "n":
			m.startNewTimeline()
		case "esc", "m":
			m.view = viewMainMenu
		}
		return m, nil
	}
	return m, nil
}

// Layout rendering -----------------------------------------------------------

func (m model) View() string {
	switch m.view {
	case viewMainMenu:
		return m.renderMainMenu()
	case viewWizard:
		return m.renderWizard()
	case viewLibrary:
		return m.renderLibrary()
	case viewWisdom:
		return m.renderWisdom()
	case viewCoach:
		return m.renderCoach()
	case viewHelp:
		return m.renderHelp()
	}
	return ""
}

func (m *model) renderMainMenu() string {
	box := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2).Width(50)
	var b strings.Builder
	b.WriteString("TRACES — MAIN MENU\n\n")
	for i, a := range engine.AllQuickActions {
		b.WriteString(fmt.Sprintf("[%d] %s\n", i+1, a.Title()))
	}
	b.WriteString("\n[?] Help  [Q] Quit")
	if m.status != "" {
		b.WriteString("\n\n" + m.status)
	}
	return box.Render(b.String())
}

func (m *model) renderWizard() string {
	pal := paletteFor(m.wizard.Style)
	title := lipgloss.NewStyle().Bold(true).Foreground(pal.Accent).Render(
		fmt.Sprintf("TIMELINE CREATOR — %s (%d/%d)", m.wizard.Step.Title(), stepNumber(m.wizard.Step), len(engine.StepOrder)))
	body := ""
	switch m.wizard.Step {
	case engine.StepDecisionInput:
		body = "Describe the decision you're weighing.\n\n" + m.decisionInput.View() +
			"\n\n[Enter] continue  [Esc] menu"
	case engine.StepStyleSelection:
		var b strings.Builder
		b.WriteString("How should your futures look?\n\n")
		for i, s := range engine.AllStyles {
			cursor := "  "
			if i == m.styleIndex {
				cursor = "> "
			}
			b.WriteString(fmt.Sprintf("%s%-10s %s\n", cursor, s, s.Description()))
		}
		b.WriteString("\n[Up/Down] select  [Enter] continue  [Esc] back")
		body = b.String()
	case engine.StepParameterTuning:
		body = fmt.Sprintf("Tone: %s — %s\nClip length: %.1fs\nPaths: %d\n\n[T] cycle tone  [+/-] paths  [[/]] length  [Enter] generate  [Esc] back",
			m.wizard.Tone, m.wizard.Tone.Description(), m.wizard.TimelineLength, m.wizard.PathCount)
	case engine.StepGeneration:
		var b strings.Builder
		b.WriteString(m.spin.View() + " Exploring your possible futures...\n\n")
		b.WriteString(m.prog.ViewAs(m.progress) + "\n")
		if m.currentFact != "" {
			b.WriteString("\n" + lipgloss.NewStyle().Foreground(pal.Muted).Italic(true).Render(m.currentFact) + "\n")
		}
		b.WriteString("\n[Esc] cancel")
		body = b.String()
	case engine.StepReview:
		var b strings.Builder
		b.WriteString(m.reviewMD)
		b.WriteString("\n[S] save to library  [N] new timeline  [M] menu")
		if m.saveStatus != "" {
			b.WriteString("  (" + m.saveStatus + ")")
		}
		body = b.String()
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, "", body)
}

func (m *model) renderLibrary() string {
	if len(m.library) == 0 {
		return "LIBRARY\n(no saved timelines yet)\nEsc to return"
	}
	if m.libraryOpen {
		rec := m.library[m.libraryIndex]
		var b strings.Builder
		b.WriteString(fmt.Sprintf("LIBRARY DETAIL (%d/%d)\n", m.libraryIndex+1, len(m.library)))
		b.WriteString(fmt.Sprintf("%s\n%s • %s • %d paths\n", rec.Title, rec.Style, rec.Tone, rec.PathCount))
		b.WriteString("Decision: " + rec.Decision + "\n")
		b.WriteString("Video: " + rec.VideoURL + "\n\n")
		for _, p := range m.libraryPaths {
			b.WriteString(fmt.Sprintf("[%d] %s — %.0f%% (%s)\n", p.Idx+1, p.Title, p.Probability*100, p.Indicator))
			for _, km := range p.KeyMoments {
				b.WriteString("    - " + km + "\n")
			}
		}
		b.WriteString("\nEnter toggle list  Esc back")
		return b.String()
	}
	var b strings.Builder
	b.WriteString("LIBRARY (Up/Down, Enter view, Esc back)\n")
	for i, rec := range m.library {
		cursor := "  "
		if i == m.libraryIndex {
			cursor = "> "
		}
		b.WriteString(fmt.Sprintf("%s%-32s %-10s %-11s %d paths\n", cursor, truncate(rec.Title, 32), rec.Style, rec.Tone, rec.PathCount))
	}
	return b.String()
}

func (m *model) renderWisdom() string {
	var b strings.Builder
	b.WriteString(m.styles.title.Render("DAILY WISDOM") + "\n\n")
	for _, w := range m.wisdom {
		b.WriteString(fmt.Sprintf("“%s”\n  — %s  (%.1f★, %d saves)\n\n", w.Quote, w.Source, w.Rating, w.Saves))
	}
	b.WriteString("COMMUNITY\n")
	for _, a := range m.feed {
		b.WriteString(fmt.Sprintf("- %s %s %q (%d likes)\n", a.Username, a.Action, a.Subject, a.Likes))
	}
	b.WriteString("\nEsc back")
	return b.String()
}

func (m *model) renderCoach() string {
	var b strings.Builder
	b.WriteString(m.styles.title.Render("COACH") + "\n\n")
	if m.lifeCoach == nil {
		b.WriteString("Coach unavailable.\n")
	} else {
		b.WriteString("Location access: " + string(m.lifeCoach.Status()) + "\n")
		if insight := m.lifeCoach.Insight(); insight != "" {
			b.WriteString(fmt.Sprintf("\nNear %s:\n%s\n", m.lifeCoach.Nearest().Name, insight))
		} else {
			b.WriteString("\nNo insight nearby right now.\n")
		}
	}
	b.WriteString("\nEsc back")
	return b.String()
}

func (m *model) renderHelp() string {
	return "ABOUT\n\nTRACES turns a life decision into a timeline of possible futures." +
		" Describe the decision, pick a visual style and an emotional tone, tune the" +
		" clip length and path count, and let the generator explore the branches." +
		" Each path carries a probability; together they always cover 100%." +
		" Accepted timelines land in your library.\n\nGeneration is simulated locally" +
		" with a seeded mock engine; media links are placeholders.\n\n" +
		fmt.Sprintf("Session seed: %s • %s\n\nEsc back", m.seed.Text, m.cfg.Version)
}

func stepNumber(step engine.WizardStep) int {
	for i, s := range engine.StepOrder {
		if s == step {
			return i + 1
		}
	}
	return 0
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return s[:n-3] + "..."
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
