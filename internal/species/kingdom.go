package species

import "fmt"

// Kingdom is the taxonomic kingdom of a species. The set is closed; a
// Kingdom value that is not one of the six constants below never reaches
// the store.
type Kingdom string

const (
	KingdomAnimalia Kingdom = "Animalia"
	KingdomPlantae  Kingdom = "Plantae"
	KingdomFungi    Kingdom = "Fungi"
	KingdomProtista Kingdom = "Protista"
	KingdomArchaea  Kingdom = "Archaea"
	KingdomBacteria Kingdom = "Bacteria"
)

// Kingdoms returns the full kingdom set in display order.
func Kingdoms() []Kingdom {
	return []Kingdom{
		KingdomAnimalia,
		KingdomPlantae,
		KingdomFungi,
		KingdomProtista,
		KingdomArchaea,
		KingdomBacteria,
	}
}

// ParseKingdom validates a raw string against the kingdom set.
func ParseKingdom(s string) (Kingdom, error) {
	for _, k := range Kingdoms() {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown kingdom %q", s)
}

func (k Kingdom) String() string { return string(k) }
