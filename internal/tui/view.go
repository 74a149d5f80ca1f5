package tui

import (
	"fmt"
	"strings"

	"biodex/internal/species"
)

func (a *App) View() string {
	body := a.renderList()
	if a.detail != nil {
		dialog := a.renderDetail()
		if a.width > 0 && a.height > 0 {
			return renderPopup(body, dialog, a.width, a.height)
		}
		body += "\n\n" + dialog
	}
	return body
}

func (a *App) renderList() string {
	var b strings.Builder

	title := "Biodex"
	if a.kingdomFilter != "" {
		title += "  ·  " + string(a.kingdomFilter)
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")

	if a.searching {
		b.WriteString(a.searchInput.View() + "\n")
	} else if a.query != "" {
		b.WriteString(dimStyle.Render("search: "+a.query) + "\n")
	}

	b.WriteString(headerStyle.Render(fmt.Sprintf("  %-28s %-20s %-10s %12s", "Scientific name", "Common name", "Kingdom", "Population")))
	b.WriteString("\n")

	if len(a.visible) == 0 {
		b.WriteString(dimStyle.Render("  no species match") + "\n")
	}
	for i, sp := range a.visible {
		names := fmt.Sprintf("%-28s %-20s",
			truncate(sp.ScientificName, 28),
			truncate(textOr(sp.CommonName, ""), 20))
		kingdom := fmt.Sprintf("%-10s", sp.Kingdom)
		pop := fmt.Sprintf("%12s", populationLabel(sp.TotalPopulation))
		if i == a.cursor {
			// the selected row is a single styled span, no nested colors
			b.WriteString(selectedStyle.Render("▶ " + names + " " + kingdom + " " + pop))
		} else {
			b.WriteString("  " + names + " " + kingdomStyle(sp.Kingdom).Render(kingdom) + " " + pop)
		}
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("[enter] Details  [a] Add  [/] Search  [f] Kingdom filter  [r] Reload  [q] Quit"))
	if a.status != "" {
		b.WriteString("\n")
		if a.statusErr {
			b.WriteString(errorStyle.Render(a.status))
		} else {
			b.WriteString(statusStyle.Render(a.status))
		}
	}
	return b.String()
}

var fieldLabels = [fieldCount]string{
	"Scientific name",
	"Common name",
	"Kingdom",
	"Total population",
	"Image URL",
	"Description",
}

func (a *App) renderDetail() string {
	d := a.detail
	if d.mode == detailViewing || (d.mode == detailSubmitting && d.deleting) {
		return a.renderDetailView()
	}
	return a.renderDetailEditor()
}

func (a *App) renderDetailView() string {
	d := a.detail
	sp := d.committed
	var b strings.Builder

	b.WriteString(titleStyle.Render("Species Information") + "\n\n")
	writeField := func(label, value string) {
		b.WriteString(labelStyle.Render(label) + "\n")
		if value == "" {
			b.WriteString(dimStyle.Render("—") + "\n")
		} else {
			b.WriteString(value + "\n")
		}
	}
	writeField(fieldLabels[fieldScientific], sp.ScientificName)
	writeField(fieldLabels[fieldCommon], textOr(sp.CommonName, ""))
	b.WriteString(labelStyle.Render(fieldLabels[fieldKingdom]) + "\n")
	b.WriteString(kingdomStyle(sp.Kingdom).Render(string(sp.Kingdom)) + "\n")
	writeField(fieldLabels[fieldPopulation], populationLabel(sp.TotalPopulation))
	writeField(fieldLabels[fieldImageURL], textOr(sp.ImageURL, ""))
	writeField(fieldLabels[fieldDescription], textOr(sp.Description, ""))

	author := a.profileName[sp.AuthorID]
	if author == "" {
		author = sp.AuthorID
	}
	b.WriteString("\n" + dimStyle.Render(fmt.Sprintf("added by %s · updated %s", author, sp.UpdatedAt.Format(a.dateFormat()))))
	b.WriteString("\n\n")

	switch {
	case d.mode == detailSubmitting && d.deleting:
		b.WriteString(dimStyle.Render("deleting..."))
	case d.confirm:
		b.WriteString(errorStyle.Render(fmt.Sprintf("Delete %s? [y]/[n]", sp.ScientificName)))
	case d.canModify:
		b.WriteString(helpStyle.Render("[e] Edit  [x] Delete  [esc] Close"))
	default:
		b.WriteString(helpStyle.Render("[esc] Close"))
	}
	return b.String()
}

func (a *App) renderDetailEditor() string {
	d := a.detail
	var b strings.Builder

	if d.creating {
		b.WriteString(titleStyle.Render("Add Species") + "\n\n")
	} else {
		b.WriteString(titleStyle.Render("Edit Species") + "\n\n")
	}

	writeErr := func(field string) {
		if msg, ok := d.errs[field]; ok {
			b.WriteString(fieldErrStyle.Render(msg) + "\n")
		}
	}
	label := func(field int) {
		l := fieldLabels[field]
		if d.focus == field {
			b.WriteString(labelStyle.Render("› "+l) + "\n")
		} else {
			b.WriteString(labelStyle.Render("  "+l) + "\n")
		}
	}

	label(fieldScientific)
	b.WriteString(d.inputs[0].View() + "\n")
	writeErr(species.FieldScientificName)

	label(fieldCommon)
	b.WriteString(d.inputs[1].View() + "\n")

	label(fieldKingdom)
	b.WriteString(a.renderKingdomSelect() + "\n")
	writeErr(species.FieldKingdom)

	label(fieldPopulation)
	b.WriteString(d.inputs[2].View() + "\n")
	writeErr(species.FieldTotalPopulation)

	label(fieldImageURL)
	b.WriteString(d.inputs[3].View() + "\n")
	writeErr(species.FieldImageURL)

	label(fieldDescription)
	b.WriteString(d.desc.View() + "\n")

	b.WriteString("\n")
	if d.mode == detailSubmitting {
		b.WriteString(dimStyle.Render("saving..."))
	} else {
		b.WriteString(helpStyle.Render("[enter] Save  [tab] Next field  [esc] Cancel"))
	}
	return b.String()
}

func (a *App) renderKingdomSelect() string {
	d := a.detail
	current := species.Kingdoms()[d.kingdomIdx]
	line := string(current)
	if d.focus == fieldKingdom && d.mode == detailEditing {
		return "◀ " + kingdomStyle(current).Render(line) + " ▶"
	}
	return kingdomStyle(current).Render(line)
}

func (a *App) dateFormat() string {
	if a.cfg.UI.DateFormat != "" {
		return a.cfg.UI.DateFormat
	}
	return "2 Jan 2006"
}

func textOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}

func populationLabel(n *int64) string {
	if n == nil {
		return "—"
	}
	return fmt.Sprintf("%d", *n)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 1 {
		return s[:max]
	}
	return s[:max-1] + "…"
}
