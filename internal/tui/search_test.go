package tui

import (
	"testing"

	"biodex/internal/species"
)

func named(id, scientific, common string) species.Species {
	sp := species.Species{ID: id, ScientificName: scientific, Kingdom: species.KingdomAnimalia}
	if common != "" {
		sp.CommonName = &common
	}
	return sp
}

func ids(list []species.Species) []string {
	out := make([]string, 0, len(list))
	for _, sp := range list {
		out = append(out, sp.ID)
	}
	return out
}

func TestRankSpecies(t *testing.T) {
	catalog := []species.Species{
		named("cavy", "Cavia porcellus", "Guinea pig"),
		named("redwood", "Sequoia sempervirens", "Coast redwood"),
		named("fly", "Amanita muscaria", "Fly agaric"),
	}

	t.Run("empty query returns everything", func(t *testing.T) {
		if got := rankSpecies("", catalog); len(got) != 3 {
			t.Fatalf("got %d results", len(got))
		}
	})

	t.Run("substring matches common name", func(t *testing.T) {
		got := rankSpecies("guinea", catalog)
		if len(got) != 1 || got[0].ID != "cavy" {
			t.Fatalf("got %v", ids(got))
		}
	})

	t.Run("typo still finds the name", func(t *testing.T) {
		got := rankSpecies("guinea pyg", catalog)
		if len(got) == 0 || got[0].ID != "cavy" {
			t.Fatalf("got %v", ids(got))
		}
	})

	t.Run("prefix outranks a later substring hit", func(t *testing.T) {
		withAperea := append([]species.Species{named("aperea", "Cavia aperea", "")}, catalog...)
		got := rankSpecies("cavia", withAperea)
		if len(got) < 2 {
			t.Fatalf("got %v", ids(got))
		}
		for _, sp := range got[:2] {
			if sp.ID != "cavy" && sp.ID != "aperea" {
				t.Fatalf("unexpected leading results %v", ids(got))
			}
		}
	})

	t.Run("garbage matches nothing", func(t *testing.T) {
		if got := rankSpecies("zzzzqqqq", catalog); len(got) != 0 {
			t.Fatalf("got %v", ids(got))
		}
	})
}
