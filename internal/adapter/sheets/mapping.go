package sheets

import (
	"strings"

	"github.com/alumni-sante/sondage-backend/internal/domain"
	"github.com/alumni-sante/sondage-backend/internal/normalize"
)

// columnMapping binds record fields to the form's column headers. Header
// text drifts between form revisions, so lookup falls back to a substring
// match when the exact header is absent.
var columnMapping = map[string]string{
	domain.FieldAnneeDiplome:  "Année de diplôme",
	domain.FieldSexe:          "Sexe",
	domain.FieldDepartement:   "Département actuel de travail",
	domain.FieldSecteur:       "Secteur d’activité",
	domain.FieldTypeStructure: "Type de structure",
	domain.FieldPoste:         "Poste actuel",
	"experience":              "Nombre d’années d’expérience (depuis le diplôme)",
	"salaire_brut":            "Salaire brut annuel actuel (hors primes)",
	"primes":                  "Primes / variable annuel",
	"avantages":               "Avantages particuliers (optionnel)",
	"conseil":                 "Un conseil, un retour d’expérience, une anecdote ? (facultatif)",
}

// BuildRecords converts raw sheet rows into normalized survey records using
// the header row for column lookup. Missing columns leave the zero value;
// xp_group is derived from the parsed experience.
func BuildRecords(headers []string, rows [][]string) []domain.SurveyResponse {
	index := make(map[string]int, len(columnMapping))
	for field, header := range columnMapping {
		if i, ok := findColumn(headers, header); ok {
			index[field] = i
		}
	}

	records := make([]domain.SurveyResponse, 0, len(rows))
	for _, row := range rows {
		rec := domain.SurveyResponse{XPGroup: normalize.NotProvided}

		for field, i := range index {
			if i >= len(row) {
				continue
			}
			value := row[i]

			switch field {
			case domain.FieldAnneeDiplome:
				rec.AnneeDiplome = normalize.ParseYear(value)
			case domain.FieldSexe:
				rec.Sexe = strings.TrimSpace(value)
			case domain.FieldDepartement:
				rec.Departement = normalize.Region(value)
			case domain.FieldSecteur:
				rec.Secteur = normalize.Sector(value)
			case domain.FieldTypeStructure:
				rec.TypeStructure = normalize.Structure(value)
			case domain.FieldPoste:
				rec.Poste = normalize.Job(value)
			case "experience":
				rec.Experience = normalize.ParseExperience(value)
			case "salaire_brut":
				rec.SalaireBrut = strings.TrimSpace(value)
			case "primes":
				rec.Primes = strings.TrimSpace(value)
			case "avantages":
				rec.Avantages = strings.TrimSpace(value)
			case "conseil":
				rec.Conseil = strings.TrimSpace(value)
			}
		}

		rec.XPGroup = normalize.ExperienceGroup(rec.Experience)
		records = append(records, rec)
	}

	return records
}

// findColumn locates a header by exact match first, then by the first
// header containing it as a substring.
func findColumn(headers []string, want string) (int, bool) {
	for i, h := range headers {
		if h == want {
			return i, true
		}
	}
	for i, h := range headers {
		if strings.Contains(h, want) {
			return i, true
		}
	}
	return 0, false
}
