// Package tui renders the vault in the terminal: a list view with debounced
// search and filters, a timeline grouped by time bucket, a discover view
// backed by the external lookup client, and a stats summary. All catalog
// mutations go through the vault service; this package never persists
// anything itself.
package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/smymedia/mediavault/internal/domain"
	"github.com/smymedia/mediavault/internal/lookup"
	"github.com/smymedia/mediavault/internal/query"
	"github.com/smymedia/mediavault/internal/store"
	"github.com/smymedia/mediavault/internal/tui/styles"
	"github.com/smymedia/mediavault/internal/vault"
)

type viewTab int

const (
	tabVault viewTab = iota
	tabTimeline
	tabDiscover
	tabStats
)

var tabNames = []string{"Vault", "Timeline", "Discover", "Stats"}

// tabFromName resolves a configured view name, falling back to the vault.
func tabFromName(name string) viewTab {
	switch name {
	case "timeline":
		return tabTimeline
	case "discover":
		return tabDiscover
	case "stats":
		return tabStats
	default:
		return tabVault
	}
}

// Model is the root bubbletea model.
type Model struct {
	vault  *vault.Service
	st     *store.VaultStore
	client *lookup.Client
	logger *slog.Logger

	tab    viewTab
	width  int
	height int

	// Vault view state
	searchInput textinput.Model
	searching   bool
	searchSeq   int    // Debounce token; bumped on every keystroke
	term        string // Committed search term (after the quiet period)
	filters     query.Filters
	sortSpec    query.SortSpec
	pageNum     int
	pageSize    int
	cursor      int
	page        query.Page

	confirmDelete string // ID awaiting delete confirmation, empty otherwise

	// Timeline view state
	groupBy query.GroupPeriod

	// Discover view state
	discoverInput textinput.Model
	lookupSeq     int // Supersede token for in-flight lookups
	results       []lookup.Result
	lookupErr     error
	lookupBusy    bool

	status    string
	statusErr bool
}

// NewModel builds the root model. The vault must already be loaded.
func NewModel(v *vault.Service, st *store.VaultStore, client *lookup.Client, pageSize int, groupBy query.GroupPeriod, defaultView string, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}

	si := textinput.New()
	si.Placeholder = "Search title, description, tags..."
	si.CharLimit = 120

	di := textinput.New()
	di.Placeholder = "Search movies online..."
	di.CharLimit = 120

	m := Model{
		vault:         v,
		st:            st,
		client:        client,
		logger:        logger,
		tab:           tabFromName(defaultView),
		searchInput:   si,
		discoverInput: di,
		pageNum:       1,
		pageSize:      pageSize,
		sortSpec:      query.SortSpec{Field: query.SortByAddedAt, Descending: true},
		groupBy:       groupBy,
	}
	m.recompute()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

// recompute derives the vault view from the current collection and the
// committed search term, then reslices the current page.
func (m *Model) recompute() {
	view := query.Apply(m.vault.Items(), m.term, m.filters, m.sortSpec)
	m.page = query.Paginate(view, m.pageNum, m.pageSize)

	if len(m.page.Items) == 0 {
		m.cursor = 0
	} else if m.cursor >= len(m.page.Items) {
		m.cursor = len(m.page.Items) - 1
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case searchDebounceMsg:
		// Stale timer: the user typed again after this was scheduled.
		if msg.Seq != m.searchSeq {
			return m, nil
		}
		if m.tab == tabDiscover {
			return m.fireLookup()
		}
		m.term = m.searchInput.Value()
		m.pageNum = 1
		m.recompute()
		return m, nil

	case lookupResultMsg:
		// A newer request superseded this one; drop the late result.
		if msg.Seq != m.lookupSeq {
			return m, nil
		}
		m.lookupBusy = false
		m.results = msg.Results
		m.lookupErr = msg.Err
		m.cursor = 0
		return m, nil

	case statusMsg:
		m.status = msg.Text
		m.statusErr = msg.IsError
		return m, clearStatusCmd()

	case clearStatusMsg:
		m.status = ""
		m.statusErr = false
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Text entry modes capture everything except escape and enter.
	if m.searching {
		return m.handleSearchKey(msg)
	}
	if m.confirmDelete != "" {
		return m.handleConfirmKey(msg)
	}

	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.NextTab):
		m.tab = (m.tab + 1) % viewTab(len(tabNames))
		m.cursor = 0
		return m, nil

	case key.Matches(msg, keys.PrevTab):
		m.tab = (m.tab + viewTab(len(tabNames)) - 1) % viewTab(len(tabNames))
		m.cursor = 0
		return m, nil

	case key.Matches(msg, keys.Search):
		m.searching = true
		if m.tab == tabDiscover {
			m.discoverInput.Focus()
		} else {
			m.searchInput.Focus()
		}
		return m, textinput.Blink
	}

	switch m.tab {
	case tabVault:
		return m.handleVaultKey(msg)
	case tabTimeline:
		return m.handleTimelineKey(msg)
	case tabDiscover:
		return m.handleDiscoverKey(msg)
	}
	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Escape):
		m.searching = false
		m.searchInput.Blur()
		m.discoverInput.Blur()
		return m, nil
	case msg.Type == tea.KeyEnter:
		m.searching = false
		m.searchInput.Blur()
		m.discoverInput.Blur()
		// Commit immediately instead of waiting out the quiet period.
		m.searchSeq++
		if m.tab == tabDiscover {
			return m.fireLookup()
		}
		m.term = m.searchInput.Value()
		m.pageNum = 1
		m.recompute()
		return m, nil
	}

	var cmd tea.Cmd
	if m.tab == tabDiscover {
		m.discoverInput, cmd = m.discoverInput.Update(msg)
	} else {
		m.searchInput, cmd = m.searchInput.Update(msg)
	}

	// Every keystroke replaces the pending debounce timer: the old token
	// goes stale and only the newest timer commits.
	m.searchSeq++
	return m, tea.Batch(cmd, debounceCmd(m.searchSeq))
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.Confirm) {
		id := m.confirmDelete
		m.confirmDelete = ""
		if err := m.vault.Remove(id); err != nil {
			return m.withStatus(err.Error(), true)
		}
		m.recompute()
		return m.withStatus("Entry deleted", false)
	}
	m.confirmDelete = ""
	return m.withStatus("Delete cancelled", false)
}

func (m Model) handleVaultKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.Down):
		if m.cursor < len(m.page.Items)-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.PageNext):
		if m.pageNum < m.page.TotalPages {
			m.pageNum++
			m.cursor = 0
			m.recompute()
		}
	case key.Matches(msg, keys.PagePrev):
		if m.pageNum > 1 {
			m.pageNum--
			m.cursor = 0
			m.recompute()
		}
	case key.Matches(msg, keys.CycleType):
		m.filters.Type = nextType(m.filters.Type)
		m.pageNum = 1
		m.recompute()
	case key.Matches(msg, keys.CycleState):
		m.filters.Status = nextStatus(m.filters.Status)
		m.pageNum = 1
		m.recompute()
	case key.Matches(msg, keys.Favorite):
		if item, ok := m.selected(); ok {
			fav := !item.IsFavorite
			if _, err := m.vault.Update(item.ID, domain.ItemPatch{IsFavorite: &fav}); err != nil {
				return m.withStatus(err.Error(), true)
			}
			m.recompute()
		}
	case key.Matches(msg, keys.Delete):
		if item, ok := m.selected(); ok {
			m.confirmDelete = item.ID
		}
	case key.Matches(msg, keys.Open):
		if item, ok := m.selected(); ok {
			if err := m.vault.Touch(item.ID); err != nil {
				return m.withStatus(err.Error(), true)
			}
			m.recompute()
			return m.withStatus("Marked as viewed: "+item.Title, false)
		}
	case key.Matches(msg, keys.CycleSort):
		m.sortSpec = nextSort(m.sortSpec)
		m.recompute()
	case key.Matches(msg, keys.Escape):
		m.term = ""
		m.searchInput.SetValue("")
		m.filters = query.Filters{}
		m.pageNum = 1
		m.recompute()
	}
	return m, nil
}

func (m Model) handleTimelineKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.CycleGroup) {
		switch m.groupBy {
		case query.GroupByMonth:
			m.groupBy = query.GroupByQuarter
		case query.GroupByQuarter:
			m.groupBy = query.GroupByYear
		default:
			m.groupBy = query.GroupByMonth
		}
	}
	return m, nil
}

func (m Model) handleDiscoverKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.Down):
		if m.cursor < len(m.results)-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.Open):
		if m.cursor < len(m.results) {
			return m.addFromLookup(m.results[m.cursor])
		}
	case msg.String() == "T":
		m.lookupSeq++
		m.lookupBusy = true
		return m, trendingCmd(m.client, m.lookupSeq)
	}
	return m, nil
}

// fireLookup dispatches the discover search for the current input, bumping
// the supersede token so any in-flight result gets dropped on arrival.
func (m Model) fireLookup() (tea.Model, tea.Cmd) {
	q := strings.TrimSpace(m.discoverInput.Value())
	if q == "" {
		return m, nil
	}
	m.lookupSeq++
	m.lookupBusy = true
	return m, lookupCmd(m.client, q, m.lookupSeq)
}

// addFromLookup files an external result into the vault as a to-watch movie.
func (m Model) addFromLookup(r lookup.Result) (tea.Model, tea.Cmd) {
	draft := domain.Draft{
		Title:       r.Title,
		Description: r.Overview,
		URL:         fmt.Sprintf("https://www.themoviedb.org/movie/%d", r.ID),
		Type:        domain.TypeMovie,
		Category:    "Discover",
		Status:      domain.StatusToWatch,
		ImageURL:    lookup.PosterURL(r.PosterPath, "w500"),
		Year:        releaseYear(r.ReleaseDate),
	}
	if _, err := m.vault.Add(draft); err != nil {
		return m.withStatus(err.Error(), true)
	}
	m.recompute()
	return m.withStatus("Added to vault: "+r.Title, false)
}

func releaseYear(date string) int {
	if len(date) < 4 {
		return 0
	}
	var year int
	fmt.Sscanf(date[:4], "%d", &year)
	return year
}

func (m Model) selected() (domain.MediaItem, bool) {
	if m.cursor < 0 || m.cursor >= len(m.page.Items) {
		return domain.MediaItem{}, false
	}
	return m.page.Items[m.cursor], true
}

func (m Model) withStatus(text string, isErr bool) (tea.Model, tea.Cmd) {
	return m, func() tea.Msg { return statusMsg{Text: text, IsError: isErr} }
}

// nextType cycles the type filter through off -> each type -> off.
func nextType(current domain.MediaType) domain.MediaType {
	if current == "" {
		return domain.MediaTypes[0]
	}
	for i, t := range domain.MediaTypes {
		if t == current {
			if i == len(domain.MediaTypes)-1 {
				return ""
			}
			return domain.MediaTypes[i+1]
		}
	}
	return ""
}

func nextStatus(current domain.MediaStatus) domain.MediaStatus {
	if current == "" {
		return domain.MediaStatuses[0]
	}
	for i, s := range domain.MediaStatuses {
		if s == current {
			if i == len(domain.MediaStatuses)-1 {
				return ""
			}
			return domain.MediaStatuses[i+1]
		}
	}
	return ""
}

var sortCycle = []query.SortSpec{
	{Field: query.SortByAddedAt, Descending: true},
	{Field: query.SortByTitle},
	{Field: query.SortByRating, Descending: true},
	{Field: query.SortByYear, Descending: true},
	{Field: query.SortByLastViewed, Descending: true},
}

func nextSort(current query.SortSpec) query.SortSpec {
	for i, s := range sortCycle {
		if s == current {
			return sortCycle[(i+1)%len(sortCycle)]
		}
	}
	return sortCycle[0]
}

func (m Model) View() string {
	var body string
	switch m.tab {
	case tabVault:
		body = m.viewVault()
	case tabTimeline:
		body = m.viewTimeline()
	case tabDiscover:
		body = m.viewDiscover()
	case tabStats:
		body = m.viewStats()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.viewTabs(),
		body,
		m.viewStatusBar(),
	)
}

func (m Model) viewTabs() string {
	parts := make([]string, len(tabNames))
	for i, name := range tabNames {
		if viewTab(i) == m.tab {
			parts[i] = styles.ActiveTabStyle.Render(name)
		} else {
			parts[i] = styles.TabStyle.Render(name)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) viewStatusBar() string {
	if m.confirmDelete != "" {
		return styles.ErrorStyle.Render("Delete this entry? (y/n)")
	}
	if m.status != "" {
		if m.statusErr {
			return styles.ErrorStyle.Render(m.status)
		}
		return styles.SuccessStyle.Render(m.status)
	}
	return styles.StatusBarStyle.Render("tab: views  /: search  t/s: filters  o: sort  f: fav  d: delete  q: quit")
}

func (m Model) viewVault() string {
	var b strings.Builder

	b.WriteString(m.searchInput.View() + "\n")
	b.WriteString(styles.DimStyle.Render(m.filterLine()) + "\n\n")

	if len(m.page.Items) == 0 {
		if m.term != "" {
			b.WriteString(styles.SubtitleStyle.Render("No results found for your search."))
		} else {
			b.WriteString(styles.SubtitleStyle.Render("Start by adding your first media item!"))
		}
		return b.String()
	}

	for i, item := range m.page.Items {
		b.WriteString(m.renderEntry(item, i == m.cursor) + "\n")
	}

	b.WriteString("\n" + styles.DimStyle.Render(
		fmt.Sprintf("Page %d of %d  (%d items)", m.page.Number, m.page.TotalPages, m.page.TotalItems)))
	return b.String()
}

func (m Model) filterLine() string {
	parts := []string{}
	if m.filters.Type != "" {
		parts = append(parts, "type="+string(m.filters.Type))
	}
	if m.filters.Status != "" {
		parts = append(parts, "status="+string(m.filters.Status))
	}
	dir := "asc"
	if m.sortSpec.Descending {
		dir = "desc"
	}
	parts = append(parts, fmt.Sprintf("sort=%s %s", m.sortSpec.Field, dir))
	return strings.Join(parts, "  ")
}

func (m Model) renderEntry(item domain.MediaItem, selected bool) string {
	title := fmt.Sprintf("%s %s", styles.TypeIcon(item.Type), item.Title)
	if item.IsFavorite {
		title += " ♥"
	}

	meta := []string{styles.StatusLabel(item.Status)}
	if stars := styles.Stars(item.Rating); stars != "" {
		meta = append(meta, stars)
	}
	if item.Year > 0 {
		meta = append(meta, fmt.Sprintf("%d", item.Year))
	}
	if item.Platform != "" {
		meta = append(meta, item.Platform)
	}

	line := title + "  " + styles.StatusStyle(item.Status).Render(strings.Join(meta, " · "))
	if selected {
		return styles.SelectedStyle.Render(line)
	}
	return "  " + line
}

func (m Model) viewTimeline() string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Media Timeline") +
		styles.DimStyle.Render("  grouped by "+string(m.groupBy)+"  (g to change)") + "\n\n")

	items := query.Apply(m.vault.Items(), "", query.Filters{},
		query.SortSpec{Field: query.SortByAddedAt, Descending: true})

	for _, group := range query.GroupByPeriod(items, m.groupBy) {
		b.WriteString(styles.AccentStyle.Render(group.Key) +
			styles.DimStyle.Render(fmt.Sprintf("  (%d)", len(group.Items))) + "\n")
		for _, item := range group.Items {
			b.WriteString(fmt.Sprintf("  %s %s  %s\n",
				styles.TypeIcon(item.Type), item.Title,
				styles.DimStyle.Render(styles.StatusLabel(item.Status))))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) viewDiscover() string {
	var b strings.Builder
	b.WriteString(m.discoverInput.View() + "\n")
	b.WriteString(styles.DimStyle.Render("enter: add to vault  T: trending") + "\n\n")

	if !m.client.IsConfigured() {
		b.WriteString(styles.SubtitleStyle.Render(domain.ErrLookupNotConfigured.Error()))
		return b.String()
	}
	if m.lookupBusy {
		b.WriteString(styles.DimStyle.Render("Searching..."))
		return b.String()
	}
	if m.lookupErr != nil {
		b.WriteString(styles.ErrorStyle.Render(m.lookupErr.Error()))
		return b.String()
	}

	for i, r := range m.results {
		line := r.Title
		if y := releaseYear(r.ReleaseDate); y > 0 {
			line += fmt.Sprintf(" (%d)", y)
		}
		line += styles.DimStyle.Render(fmt.Sprintf("  ★ %.1f", r.VoteAverage))
		if i == m.cursor {
			b.WriteString(styles.SelectedStyle.Render(line) + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}
	return b.String()
}

func (m Model) viewStats() string {
	s := m.vault.Stats()
	u := m.st.Usage()

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Collection Stats") + "\n\n")
	b.WriteString(fmt.Sprintf("Total: %d   Favorites: %d   Completed: %d   To Watch: %d\n\n",
		s.Total, s.Favorites, s.Completed, s.ToWatch))

	b.WriteString(styles.AccentStyle.Render("By type") + "\n")
	for _, t := range domain.MediaTypes {
		b.WriteString(fmt.Sprintf("  %s %-12s %d\n", styles.TypeIcon(t), t, s.ByType[t]))
	}

	b.WriteString("\n" + styles.AccentStyle.Render("By status") + "\n")
	for _, st := range domain.MediaStatuses {
		b.WriteString(fmt.Sprintf("  %-12s %d\n", styles.StatusLabel(st), s.ByStatus[st]))
	}

	if len(s.ByCategory) > 0 {
		b.WriteString("\n" + styles.AccentStyle.Render("By category") + "\n")
		for cat, n := range s.ByCategory {
			b.WriteString(fmt.Sprintf("  %-16s %d\n", cat, n))
		}
	}

	b.WriteString("\n" + styles.DimStyle.Render(fmt.Sprintf(
		"Storage: %.2f MB used (%.0f%% of budget)",
		float64(u.UsedBytes)/(1024*1024), u.Percent)))
	return b.String()
}
