package species

import "testing"

func TestParseKingdom(t *testing.T) {
	for _, k := range Kingdoms() {
		got, err := ParseKingdom(string(k))
		if err != nil {
			t.Fatalf("ParseKingdom(%s): %v", k, err)
		}
		if got != k {
			t.Errorf("ParseKingdom(%s) = %s", k, got)
		}
	}

	for _, bad := range []string{"", "animalia", "Mineralia", "ANIMALIA"} {
		if _, err := ParseKingdom(bad); err == nil {
			t.Errorf("ParseKingdom(%q) should fail", bad)
		}
	}
}

func TestKingdomsCount(t *testing.T) {
	if got := len(Kingdoms()); got != 6 {
		t.Fatalf("len(Kingdoms()) = %d, want 6", got)
	}
}
