package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"biodex/internal/config"
	"biodex/internal/database/repository"
	"biodex/internal/prefs"
	"biodex/internal/species"
)

// fakeStore is an in-memory SpeciesStore. Setting failWith makes every
// mutation fail with that error.
type fakeStore struct {
	rows     map[string]species.Species
	failWith error
	updates  int
	deletes  int
	inserts  int
}

func newFakeStore(rows ...species.Species) *fakeStore {
	f := &fakeStore{rows: map[string]species.Species{}}
	for _, sp := range rows {
		f.rows[sp.ID] = sp
	}
	return f
}

func (f *fakeStore) List(_ context.Context, filters repository.SpeciesFilters) ([]species.Species, error) {
	var out []species.Species
	for _, sp := range f.rows {
		if filters.Kingdom != "" && sp.Kingdom != filters.Kingdom {
			continue
		}
		out = append(out, sp)
	}
	return out, nil
}

func (f *fakeStore) Insert(_ context.Context, sp species.Species) error {
	f.inserts++
	if f.failWith != nil {
		return f.failWith
	}
	f.rows[sp.ID] = sp
	return nil
}

func (f *fakeStore) Update(_ context.Context, id string, p species.Patch) error {
	f.updates++
	if f.failWith != nil {
		return f.failWith
	}
	sp, ok := f.rows[id]
	if !ok {
		return fmt.Errorf("species %s not found", id)
	}
	p.Apply(&sp)
	f.rows[id] = sp
	return nil
}

func (f *fakeStore) Delete(_ context.Context, id string) error {
	f.deletes++
	if f.failWith != nil {
		return f.failWith
	}
	delete(f.rows, id)
	return nil
}

const testUserID = "user-1"

func guineaPig() species.Species {
	common := "Guinea pig"
	pop := int64(300000)
	return species.Species{
		ID:              "sp-1",
		ScientificName:  "Cavia porcellus",
		CommonName:      &common,
		Kingdom:         species.KingdomAnimalia,
		TotalPopulation: &pop,
		AuthorID:        testUserID,
	}
}

func testApp(t *testing.T, store SpeciesStore) *App {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir()) // prefs writes stay in the sandbox
	cfg := config.Config{}
	cfg.Profile.ID = testUserID
	return New(context.Background(), cfg, store, nil, prefs.Prefs{})
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// drive runs one key through the app and returns any produced message.
func drive(t *testing.T, a *App, key string) tea.Msg {
	t.Helper()
	_, cmd := a.Update(keyMsg(key))
	if cmd == nil {
		return nil
	}
	return cmd()
}

func TestOpenDetailStartsViewing(t *testing.T) {
	a := testApp(t, newFakeStore(guineaPig()))
	a.openDetail(guineaPig())

	if a.detail == nil || a.detail.mode != detailViewing {
		t.Fatal("dialog should open in viewing mode")
	}
	if !a.detail.canModify {
		t.Error("author should be allowed to modify")
	}
}

func TestEditRequiresAuthorship(t *testing.T) {
	sp := guineaPig()
	sp.AuthorID = "someone-else"
	a := testApp(t, newFakeStore(sp))
	a.openDetail(sp)

	if a.detail.canModify {
		t.Fatal("non-author should not be able to modify")
	}
	drive(t, a, "e")
	if a.detail.mode != detailViewing {
		t.Error("edit key must be inert for non-authors")
	}
	drive(t, a, "x")
	if a.detail.confirm {
		t.Error("delete key must be inert for non-authors")
	}
	if view := a.renderDetail(); strings.Contains(view, "[e] Edit") {
		t.Error("edit control should not be shown to non-authors")
	}
}

func TestCancelRevertsDraft(t *testing.T) {
	a := testApp(t, newFakeStore(guineaPig()))
	a.openDetail(guineaPig())

	drive(t, a, "e")
	if a.detail.mode != detailEditing {
		t.Fatal("expected editing mode")
	}
	a.detail.inputs[0].SetValue("Cavia aperea")
	a.detail.inputs[1].SetValue("Brazilian guinea pig")

	drive(t, a, "esc")
	if a.detail.mode != detailViewing {
		t.Fatal("cancel should return to viewing")
	}
	if a.detail.committed.ScientificName != "Cavia porcellus" {
		t.Error("committed record must be untouched by cancel")
	}

	// re-entering edit builds a fresh draft from the committed record
	drive(t, a, "e")
	if got := a.detail.inputs[0].Value(); got != "Cavia porcellus" {
		t.Errorf("draft scientific name = %q, want committed value", got)
	}
}

func TestSubmitSuccessCommitsAndNotifies(t *testing.T) {
	store := newFakeStore(guineaPig())
	a := testApp(t, store)
	a.openDetail(guineaPig())

	drive(t, a, "e")
	a.detail.inputs[0].SetValue("Cavia porcellus domestica")
	a.detail.inputs[1].SetValue("   ") // whitespace normalizes to absent

	msg := drive(t, a, "enter")
	if a.detail.mode != detailSubmitting {
		t.Fatal("submit should enter submitting mode")
	}

	a.Update(msg)
	if a.detail.mode != detailViewing {
		t.Fatal("store success should return to viewing")
	}
	if a.detail.committed.ScientificName != "Cavia porcellus domestica" {
		t.Errorf("committed name = %q", a.detail.committed.ScientificName)
	}
	if a.detail.committed.CommonName != nil {
		t.Errorf("whitespace common name should be absent, got %q", *a.detail.committed.CommonName)
	}
	if stored := store.rows["sp-1"]; stored.CommonName != nil {
		t.Error("store should hold the normalized record")
	}
	if a.statusErr || !strings.Contains(a.status, "Successfully edited Cavia porcellus domestica") {
		t.Errorf("status = %q", a.status)
	}
}

func TestSubmitFailureKeepsDraft(t *testing.T) {
	store := newFakeStore(guineaPig())
	store.failWith = errors.New("network timeout")
	a := testApp(t, store)
	a.openDetail(guineaPig())

	drive(t, a, "e")
	a.detail.inputs[0].SetValue("Cavia tschudii")

	msg := drive(t, a, "enter")
	a.Update(msg)

	if a.detail.mode != detailEditing {
		t.Fatal("store failure should return to editing")
	}
	if got := a.detail.inputs[0].Value(); got != "Cavia tschudii" {
		t.Errorf("draft = %q, want typed value retained", got)
	}
	if a.detail.committed.ScientificName != "Cavia porcellus" {
		t.Error("committed record must be unchanged on failure")
	}
	if !a.statusErr || a.status != "network timeout" {
		t.Errorf("status = %q (err=%v), want verbatim store error", a.status, a.statusErr)
	}
}

func TestSubmitBlockedByValidation(t *testing.T) {
	store := newFakeStore(guineaPig())
	a := testApp(t, store)
	a.openDetail(guineaPig())

	drive(t, a, "e")
	a.detail.inputs[0].SetValue("")
	a.detail.inputs[2].SetValue("-5")

	drive(t, a, "enter")
	if a.detail.mode != detailEditing {
		t.Fatal("invalid draft must not leave editing mode")
	}
	if store.updates != 0 {
		t.Error("no store call may happen before validation passes")
	}
	if a.detail.errs[species.FieldScientificName] == "" {
		t.Error("missing scientific name error")
	}
	if a.detail.errs[species.FieldTotalPopulation] != "must be a positive integer" {
		t.Errorf("population error = %q", a.detail.errs[species.FieldTotalPopulation])
	}
}

func TestSubmittingSwallowsFurtherSubmits(t *testing.T) {
	store := newFakeStore(guineaPig())
	a := testApp(t, store)
	a.openDetail(guineaPig())

	drive(t, a, "e")
	drive(t, a, "enter")
	if a.detail.mode != detailSubmitting {
		t.Fatal("expected submitting mode")
	}
	if msg := drive(t, a, "enter"); msg != nil {
		t.Error("second submit while in flight must be ignored")
	}
	if store.updates != 1 {
		t.Errorf("store updates = %d, want 1", store.updates)
	}
}

func TestDeleteFlow(t *testing.T) {
	store := newFakeStore(guineaPig())
	a := testApp(t, store)
	a.openDetail(guineaPig())

	drive(t, a, "x")
	if !a.detail.confirm {
		t.Fatal("delete should ask for confirmation")
	}

	drive(t, a, "n")
	if a.detail.confirm || store.deletes != 0 {
		t.Fatal("declining must not touch the store")
	}

	drive(t, a, "x")
	msg := drive(t, a, "y")
	a.Update(msg)

	if a.detail != nil {
		t.Error("successful delete should close the dialog")
	}
	if _, ok := store.rows["sp-1"]; ok {
		t.Error("record should be gone from the store")
	}
	if a.statusErr || !strings.Contains(a.status, "deleted") {
		t.Errorf("status = %q", a.status)
	}
}

func TestDeleteFailureLeavesRecord(t *testing.T) {
	store := newFakeStore(guineaPig())
	store.failWith = errors.New("store unavailable")
	a := testApp(t, store)
	a.openDetail(guineaPig())

	drive(t, a, "x")
	msg := drive(t, a, "y")
	a.Update(msg)

	if a.detail == nil || a.detail.mode != detailViewing {
		t.Fatal("failed delete should stay on the viewing dialog")
	}
	if !a.statusErr || a.status != "store unavailable" {
		t.Errorf("status = %q", a.status)
	}
}

func TestCloseWhileSubmittingHidesStaleResult(t *testing.T) {
	store := newFakeStore(guineaPig())
	a := testApp(t, store)
	a.openDetail(guineaPig())

	drive(t, a, "e")
	msg := drive(t, a, "enter")

	drive(t, a, "esc") // close the dialog mid-flight
	if a.detail != nil {
		t.Fatal("close must not be blocked by an in-flight request")
	}

	a.Update(msg)
	if a.detail != nil {
		t.Error("stale result must not reopen the dialog")
	}
	if a.statusErr {
		t.Errorf("stale result must not surface an error, status = %q", a.status)
	}
}

func TestCreateDialogInsertsWithFreshID(t *testing.T) {
	store := newFakeStore()
	a := testApp(t, store)

	drive(t, a, "a")
	if a.detail == nil || !a.detail.creating || a.detail.mode != detailEditing {
		t.Fatal("add dialog should open straight into editing")
	}

	a.detail.inputs[0].SetValue("Amanita muscaria")
	msg := drive(t, a, "enter")
	a.Update(msg)

	if a.detail != nil {
		t.Fatal("successful create should close the dialog")
	}
	if store.inserts != 1 || len(store.rows) != 1 {
		t.Fatalf("inserts = %d, rows = %d", store.inserts, len(store.rows))
	}
	for id, sp := range store.rows {
		if id == "" {
			t.Error("create must mint an id")
		}
		if sp.AuthorID != testUserID {
			t.Errorf("AuthorID = %q, want active profile", sp.AuthorID)
		}
		if sp.ScientificName != "Amanita muscaria" {
			t.Errorf("ScientificName = %q", sp.ScientificName)
		}
	}
}

func TestLiveValidationWhileTyping(t *testing.T) {
	a := testApp(t, newFakeStore(guineaPig()))
	a.openDetail(guineaPig())
	drive(t, a, "e")

	// focus population and type a non-numeric character
	a.detail.focusField(fieldPopulation)
	drive(t, a, "x")

	if a.detail.errs[species.FieldTotalPopulation] != "must be a positive integer" {
		t.Errorf("live errs = %v, want population error", a.detail.errs)
	}
}
