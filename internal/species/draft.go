package species

import (
	"net/url"
	"strconv"
	"strings"
)

// Field keys used by FieldErrors. They match the store's column names.
const (
	FieldScientificName  = "scientific_name"
	FieldCommonName      = "common_name"
	FieldKingdom         = "kingdom"
	FieldTotalPopulation = "total_population"
	FieldImageURL        = "image_url"
	FieldDescription     = "description"
)

// FieldErrors maps a field key to a human-readable validation message.
type FieldErrors map[string]string

// Draft is the transient, editable copy of a record's fields as raw text,
// the shape a form holds while the user types. A Draft is discarded on
// cancel and only reaches the store after Validate.
type Draft struct {
	ScientificName  string
	CommonName      string
	Kingdom         string
	TotalPopulation string
	ImageURL        string
	Description     string
}

// NewDraft builds a draft from a committed record, rendering absent
// optional fields as empty text.
func NewDraft(sp Species) Draft {
	return Draft{
		ScientificName:  sp.ScientificName,
		CommonName:      textOrEmpty(sp.CommonName),
		Kingdom:         string(sp.Kingdom),
		TotalPopulation: populationText(sp.TotalPopulation),
		ImageURL:        textOrEmpty(sp.ImageURL),
		Description:     textOrEmpty(sp.Description),
	}
}

// Validate normalizes the draft and checks every field. It returns either
// a fully-typed patch or the per-field error messages; never both.
// Normalization trims whitespace first, then collapses emptied optional
// fields to absent.
func (d Draft) Validate() (Patch, FieldErrors) {
	errs := FieldErrors{}
	var p Patch

	p.ScientificName = strings.TrimSpace(d.ScientificName)
	if p.ScientificName == "" {
		errs[FieldScientificName] = "scientific name is required"
	}

	p.CommonName = optionalText(d.CommonName)

	k, err := ParseKingdom(strings.TrimSpace(d.Kingdom))
	if err != nil {
		errs[FieldKingdom] = "must be one of the six kingdoms"
	} else {
		p.Kingdom = k
	}

	if raw := strings.TrimSpace(d.TotalPopulation); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n < 1 {
			errs[FieldTotalPopulation] = "must be a positive integer"
		} else {
			p.TotalPopulation = &n
		}
	}

	if u := optionalText(d.ImageURL); u != nil {
		if !validURL(*u) {
			errs[FieldImageURL] = "must be a valid URL"
		} else {
			p.ImageURL = u
		}
	}

	p.Description = optionalText(d.Description)

	if len(errs) > 0 {
		return Patch{}, errs
	}
	return p, nil
}

// optionalText trims s and returns nil when nothing remains.
func optionalText(s string) *string {
	t := strings.TrimSpace(s)
	if t == "" {
		return nil
	}
	return &t
}

func validURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}

func textOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func populationText(n *int64) string {
	if n == nil {
		return ""
	}
	return strconv.FormatInt(*n, 10)
}
