package domain

import "strconv"

// SurveyResponse is one respondent's data after all parsing and
// categorization, in fixed-shape form. Every field except Avantages and
// Conseil is either a non-negative integer or a value from a closed label
// set; "Non renseigné" and "Autre" are the catch-all labels.
//
// SalaireBrut and Primes keep the verbatim bracket labels (e.g. "30-35k€");
// their numeric midpoints are derived on demand by the normalize package.
type SurveyResponse struct {
	AnneeDiplome  int    `json:"annee_diplome"`
	Sexe          string `json:"sexe"`
	Departement   string `json:"departement"`
	Secteur       string `json:"secteur"`
	TypeStructure string `json:"type_structure"`
	Poste         string `json:"poste"`
	Experience    int    `json:"experience"`
	SalaireBrut   string `json:"salaire_brut"`
	Primes        string `json:"primes"`
	Avantages     string `json:"avantages"`
	Conseil       string `json:"conseil"`
	XPGroup       string `json:"xp_group"`
}

// Filterable field keys. These double as JSON keys in the filter payload.
const (
	FieldAnneeDiplome  = "annee_diplome"
	FieldSexe          = "sexe"
	FieldXPGroup       = "xp_group"
	FieldPoste         = "poste"
	FieldSecteur       = "secteur"
	FieldTypeStructure = "type_structure"
	FieldDepartement   = "departement"
)

// FilterKeys lists the fields the dashboard can filter on, in the order the
// filters payload reports them.
var FilterKeys = []string{
	FieldAnneeDiplome,
	FieldSexe,
	FieldXPGroup,
	FieldPoste,
	FieldSecteur,
	FieldTypeStructure,
	FieldDepartement,
}

// FieldValue returns the stringified value of a record field by its JSON
// key, the form used both for filter matching and facet counting. Every
// record field resolves; unknown keys return "", so a filter on one can
// never match.
func (r SurveyResponse) FieldValue(key string) string {
	switch key {
	case FieldAnneeDiplome:
		return strconv.Itoa(r.AnneeDiplome)
	case FieldSexe:
		return r.Sexe
	case FieldXPGroup:
		return r.XPGroup
	case FieldPoste:
		return r.Poste
	case FieldSecteur:
		return r.Secteur
	case FieldTypeStructure:
		return r.TypeStructure
	case FieldDepartement:
		return r.Departement
	case "experience":
		return strconv.Itoa(r.Experience)
	case "salaire_brut":
		return r.SalaireBrut
	case "primes":
		return r.Primes
	case "avantages":
		return r.Avantages
	case "conseil":
		return r.Conseil
	}
	return ""
}
