package tui

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"biodex/internal/species"
)

// detailMode tracks the dialog state. Submitting is a guarded sub-state of
// editing: exactly one store request is in flight and further submits are
// swallowed until its result message arrives.
type detailMode int

const (
	detailViewing detailMode = iota
	detailEditing
	detailSubmitting
)

// Editor field order, top to bottom.
const (
	fieldScientific = iota
	fieldCommon
	fieldKingdom
	fieldPopulation
	fieldImageURL
	fieldDescription
	fieldCount
)

// detailModel is the species dialog: read-only detail view plus the
// toggleable editor over a draft of the committed record.
type detailModel struct {
	committed  species.Species
	mode       detailMode
	creating   bool // add dialog: no viewing mode, esc discards
	canModify  bool // active profile is the record's author
	confirm    bool // delete confirmation pending
	deleting   bool // the in-flight request is a delete, not a save
	focus      int
	inputs     [4]textinput.Model // scientific, common, population, image URL
	kingdomIdx int
	desc       textarea.Model
	errs       species.FieldErrors
}

// input slots for the textinput-backed fields
func inputSlot(field int) (int, bool) {
	switch field {
	case fieldScientific:
		return 0, true
	case fieldCommon:
		return 1, true
	case fieldPopulation:
		return 2, true
	case fieldImageURL:
		return 3, true
	}
	return 0, false
}

func newDetail(sp species.Species, canModify bool) *detailModel {
	d := &detailModel{committed: sp, canModify: canModify}
	d.buildWidgets()
	return d
}

func newCreateDialog() *detailModel {
	d := &detailModel{creating: true, canModify: true, mode: detailEditing}
	d.committed = species.Species{Kingdom: species.KingdomAnimalia}
	d.buildWidgets()
	d.setDraft(species.NewDraft(d.committed))
	d.focusField(fieldScientific)
	return d
}

func (d *detailModel) buildWidgets() {
	placeholders := [4]string{"Cavia porcellus", "Guinea pig", "300000", "https://example.org/photo.jpg"}
	for i := range d.inputs {
		in := textinput.New()
		in.Placeholder = placeholders[i]
		in.Width = 44
		in.Prompt = ""
		d.inputs[i] = in
	}
	d.desc = textarea.New()
	d.desc.Placeholder = "Free-text description"
	d.desc.SetWidth(46)
	d.desc.SetHeight(3)
}

// startEditing switches to the editor with a fresh draft of the committed
// record. Caller must have checked authorship.
func (d *detailModel) startEditing() {
	d.mode = detailEditing
	d.errs = nil
	d.setDraft(species.NewDraft(d.committed))
	d.focusField(fieldScientific)
}

// cancelEditing discards the draft and reverts to the committed record.
func (d *detailModel) cancelEditing() {
	d.mode = detailViewing
	d.errs = nil
	d.blurAll()
}

func (d *detailModel) setDraft(draft species.Draft) {
	d.inputs[0].SetValue(draft.ScientificName)
	d.inputs[1].SetValue(draft.CommonName)
	d.inputs[2].SetValue(draft.TotalPopulation)
	d.inputs[3].SetValue(draft.ImageURL)
	d.desc.SetValue(draft.Description)
	d.kingdomIdx = 0
	for i, k := range species.Kingdoms() {
		if string(k) == draft.Kingdom {
			d.kingdomIdx = i
			break
		}
	}
}

func (d *detailModel) draft() species.Draft {
	return species.Draft{
		ScientificName:  d.inputs[0].Value(),
		CommonName:      d.inputs[1].Value(),
		Kingdom:         string(species.Kingdoms()[d.kingdomIdx]),
		TotalPopulation: d.inputs[2].Value(),
		ImageURL:        d.inputs[3].Value(),
		Description:     d.desc.Value(),
	}
}

func (d *detailModel) focusField(field int) {
	d.focus = field
	d.blurAll()
	if slot, ok := inputSlot(field); ok {
		d.inputs[slot].Focus()
	} else if field == fieldDescription {
		d.desc.Focus()
	}
}

func (d *detailModel) blurAll() {
	for i := range d.inputs {
		d.inputs[i].Blur()
	}
	d.desc.Blur()
}

func (d *detailModel) nextField(delta int) {
	d.focusField((d.focus + delta + fieldCount) % fieldCount)
}

// handleEditorKey forwards a keystroke to the focused widget and re-runs
// validation so inline errors track every change.
func (d *detailModel) handleEditorKey(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	if d.focus == fieldKingdom {
		switch msg.String() {
		case "left", "h":
			d.kingdomIdx = (d.kingdomIdx + len(species.Kingdoms()) - 1) % len(species.Kingdoms())
		case "right", "l", " ":
			d.kingdomIdx = (d.kingdomIdx + 1) % len(species.Kingdoms())
		}
	} else if slot, ok := inputSlot(d.focus); ok {
		d.inputs[slot], cmd = d.inputs[slot].Update(msg)
	} else {
		d.desc, cmd = d.desc.Update(msg)
	}
	_, d.errs = d.draft().Validate()
	return cmd
}

// handleDetailKey routes keys for the open dialog.
func (a *App) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	d := a.detail
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	if d.mode == detailSubmitting {
		// One request in flight: submits are swallowed, but closing the
		// dialog is never blocked. A result arriving afterwards is not shown.
		if msg.String() == "esc" {
			a.closeDetail()
		}
		return a, nil
	}

	if d.confirm {
		switch msg.String() {
		case "y", "Y":
			d.confirm = false
			d.deleting = true
			d.mode = detailSubmitting
			return a, a.deleteSpeciesCmd(d.committed.ID)
		case "n", "N", "esc":
			d.confirm = false
		}
		return a, nil
	}

	switch d.mode {
	case detailViewing:
		switch msg.String() {
		case "esc", "q":
			a.closeDetail()
		case "e":
			if d.canModify {
				d.startEditing()
			}
		case "x":
			if d.canModify {
				d.confirm = true
			}
		}
		return a, nil

	case detailEditing:
		switch msg.String() {
		case "esc":
			if d.creating {
				a.closeDetail()
				return a, nil
			}
			d.cancelEditing()
			return a, nil
		case "tab", "down":
			if d.focus == fieldDescription && msg.String() == "down" {
				break // let the textarea move its own cursor
			}
			d.nextField(1)
			return a, nil
		case "shift+tab", "up":
			if d.focus == fieldDescription && msg.String() == "up" {
				break
			}
			d.nextField(-1)
			return a, nil
		case "ctrl+s":
			return a.submitDetail()
		case "enter":
			if d.focus != fieldDescription {
				return a.submitDetail()
			}
		}
		return a, d.handleEditorKey(msg)
	}
	return a, nil
}

// submitDetail validates the draft once more and, if clean, issues the
// single outstanding store request.
func (a *App) submitDetail() (tea.Model, tea.Cmd) {
	d := a.detail
	p, errs := d.draft().Validate()
	if errs != nil {
		d.errs = errs
		a.setError("fix the highlighted fields")
		return a, nil
	}
	d.errs = nil
	d.mode = detailSubmitting
	if d.creating {
		return a, a.createSpeciesCmd(p)
	}
	return a, a.updateSpeciesCmd(d.committed.ID, p)
}
