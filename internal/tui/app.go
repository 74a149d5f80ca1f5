// Package tui is the terminal interface: a species list with a detail
// dialog for viewing, editing, creating, and deleting records.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"biodex/internal/config"
	"biodex/internal/database/repository"
	"biodex/internal/prefs"
	"biodex/internal/species"
)

// SpeciesStore is the persistence gateway the dialog talks to. Store
// errors are surfaced verbatim in the status line; nothing is retried
// automatically.
type SpeciesStore interface {
	List(ctx context.Context, f repository.SpeciesFilters) ([]species.Species, error)
	Insert(ctx context.Context, sp species.Species) error
	Update(ctx context.Context, id string, p species.Patch) error
	Delete(ctx context.Context, id string) error
}

// ProfileStore resolves author ids to display names.
type ProfileStore interface {
	List(ctx context.Context) ([]species.Profile, error)
}

// App ties together the list view and the detail dialog.
type App struct {
	ctx      context.Context
	cfg      config.Config
	store    SpeciesStore
	profiles ProfileStore

	list        []species.Species // last-known store state, refreshed after every mutation
	visible     []species.Species // list after search ranking
	cursor      int
	profileName map[string]string // id -> display name

	kingdomFilter species.Kingdom // empty = all
	searching     bool
	searchInput   textinput.Model
	query         string

	status    string
	statusErr bool

	width, height int

	detail *detailModel // nil when the dialog is closed
}

func New(ctx context.Context, cfg config.Config, store SpeciesStore, profiles ProfileStore, pf prefs.Prefs) *App {
	in := textinput.New()
	in.Placeholder = "search species"
	in.Prompt = "/"
	in.Width = 40

	a := &App{
		ctx:         ctx,
		cfg:         cfg,
		store:       store,
		profiles:    profiles,
		searchInput: in,
		profileName: map[string]string{},
	}
	if k, err := species.ParseKingdom(pf.Kingdom); err == nil {
		a.kingdomFilter = k
	}
	a.query = pf.Search
	a.searchInput.SetValue(pf.Search)
	return a
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(a.loadSpecies(), a.loadProfiles())
}

// loadSpecies is the refresh signal: batched after every successful
// mutation so the list always reflects the store.
func (a *App) loadSpecies() tea.Cmd {
	return func() tea.Msg {
		list, err := a.store.List(a.ctx, repository.SpeciesFilters{Kingdom: a.kingdomFilter})
		if err != nil {
			return errMsg{err}
		}
		return speciesListMsg(list)
	}
}

func (a *App) loadProfiles() tea.Cmd {
	return func() tea.Msg {
		if a.profiles == nil {
			return profileListMsg(nil)
		}
		ps, err := a.profiles.List(a.ctx)
		if err != nil {
			return errMsg{err}
		}
		return profileListMsg(ps)
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		return a, nil

	case tea.KeyMsg:
		if a.detail != nil {
			return a.handleDetailKey(m)
		}
		if a.searching {
			return a.handleSearchKey(m)
		}
		return a.handleListKey(m)

	case speciesListMsg:
		a.list = []species.Species(m)
		a.applyQuery()
		return a, nil

	case profileListMsg:
		a.profileName = make(map[string]string, len(m))
		for _, p := range m {
			a.profileName[p.ID] = p.DisplayName
		}
		return a, nil

	case speciesSavedMsg:
		return a.handleSaved(m)

	case speciesCreatedMsg:
		return a.handleCreated(m)

	case speciesDeletedMsg:
		return a.handleDeleted(m)

	case statusMsg:
		a.setStatus(string(m))
		return a, nil

	case errMsg:
		a.setError(m.Error())
		return a, nil
	}
	return a, nil
}

func (a *App) handleListKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
	case "down", "j":
		if a.cursor < len(a.visible)-1 {
			a.cursor++
		}
	case "enter":
		if len(a.visible) > 0 {
			a.openDetail(a.visible[a.cursor])
		}
	case "a":
		a.detail = newCreateDialog()
		a.status = ""
	case "/":
		a.searching = true
		a.searchInput.SetValue(a.query)
		a.searchInput.Focus()
	case "f":
		a.cycleKingdomFilter()
		return a, a.loadSpecies()
	case "r":
		return a, a.loadSpecies()
	}
	return a, nil
}

func (a *App) handleSearchKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "ctrl+c":
		return a, tea.Quit
	case "esc":
		a.searching = false
		a.searchInput.SetValue("")
		a.query = ""
		a.applyQuery()
		a.savePrefs()
		return a, nil
	case "enter":
		a.searching = false
		a.query = a.searchInput.Value()
		a.applyQuery()
		a.savePrefs()
		return a, nil
	}
	var cmd tea.Cmd
	a.searchInput, cmd = a.searchInput.Update(m)
	// live filtering while typing
	a.query = a.searchInput.Value()
	a.applyQuery()
	return a, cmd
}

func (a *App) openDetail(sp species.Species) {
	a.detail = newDetail(sp, sp.AuthorID == a.cfg.Profile.ID)
	a.status = ""
}

func (a *App) closeDetail() {
	a.detail = nil
}

func (a *App) applyQuery() {
	a.visible = rankSpecies(a.query, a.list)
	if a.cursor >= len(a.visible) {
		a.cursor = 0
	}
}

func (a *App) cycleKingdomFilter() {
	order := species.Kingdoms()
	if a.kingdomFilter == "" {
		a.kingdomFilter = order[0]
	} else {
		next := 0
		for i, k := range order {
			if k == a.kingdomFilter {
				next = i + 1
				break
			}
		}
		if next >= len(order) {
			a.kingdomFilter = ""
		} else {
			a.kingdomFilter = order[next]
		}
	}
	a.savePrefs()
}

func (a *App) savePrefs() {
	_ = prefs.Save(prefs.Prefs{Kingdom: string(a.kingdomFilter), Search: a.query})
}

func (a *App) setStatus(s string) {
	a.status = s
	a.statusErr = false
}

func (a *App) setError(s string) {
	a.status = s
	a.statusErr = true
}

// mutation results

func (a *App) handleSaved(m speciesSavedMsg) (tea.Model, tea.Cmd) {
	d := a.detail
	if d == nil || d.creating || d.committed.ID != m.id {
		// dialog closed while the request was in flight
		if m.err == nil {
			return a, a.loadSpecies()
		}
		return a, nil
	}
	if m.err != nil {
		// draft untouched so nothing the user typed is lost
		d.mode = detailEditing
		a.setError(m.err.Error())
		return a, nil
	}
	m.patch.Apply(&d.committed)
	d.mode = detailViewing
	d.blurAll()
	a.setStatus("Successfully edited " + m.patch.ScientificName + ".")
	return a, a.loadSpecies()
}

func (a *App) handleCreated(m speciesCreatedMsg) (tea.Model, tea.Cmd) {
	d := a.detail
	if m.err != nil {
		if d != nil && d.creating {
			d.mode = detailEditing
		}
		a.setError(m.err.Error())
		return a, nil
	}
	if d != nil && d.creating {
		a.closeDetail()
	}
	a.setStatus("Successfully added " + m.sp.ScientificName + ".")
	return a, a.loadSpecies()
}

func (a *App) handleDeleted(m speciesDeletedMsg) (tea.Model, tea.Cmd) {
	d := a.detail
	if m.err != nil {
		if d != nil && d.committed.ID == m.id {
			d.mode = detailViewing
			d.deleting = false
		}
		a.setError(m.err.Error())
		return a, nil
	}
	if d != nil && d.committed.ID == m.id {
		a.closeDetail()
	}
	a.setStatus("Species deleted.")
	return a, a.loadSpecies()
}

// commands

func (a *App) updateSpeciesCmd(id string, p species.Patch) tea.Cmd {
	return func() tea.Msg {
		return speciesSavedMsg{id: id, patch: p, err: a.store.Update(a.ctx, id, p)}
	}
}

func (a *App) createSpeciesCmd(p species.Patch) tea.Cmd {
	return func() tea.Msg {
		sp := species.Species{ID: uuid.NewString(), AuthorID: a.cfg.Profile.ID}
		p.Apply(&sp)
		return speciesCreatedMsg{sp: sp, err: a.store.Insert(a.ctx, sp)}
	}
}

func (a *App) deleteSpeciesCmd(id string) tea.Cmd {
	return func() tea.Msg {
		return speciesDeletedMsg{id: id, err: a.store.Delete(a.ctx, id)}
	}
}

// messages

type speciesListMsg []species.Species

type profileListMsg []species.Profile

type speciesSavedMsg struct {
	id    string
	patch species.Patch
	err   error
}

type speciesCreatedMsg struct {
	sp  species.Species
	err error
}

type speciesDeletedMsg struct {
	id  string
	err error
}

type statusMsg string

type errMsg struct{ error }
