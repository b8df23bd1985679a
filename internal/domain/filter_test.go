package domain

import "testing"

func sample() []SurveyResponse {
	return []SurveyResponse{
		{AnneeDiplome: 2020, Sexe: "Femme", Poste: "Data / BI", Secteur: "Éditeur Logiciel Santé", XPGroup: "2-3 ans", Departement: "Occitanie"},
		{AnneeDiplome: 2020, Sexe: "Homme", Poste: "Développeur / Ingénieur", Secteur: "ESN / Conseil", XPGroup: "2-3 ans", Departement: "Île-de-France"},
		{AnneeDiplome: 2015, Sexe: "Homme", Poste: "Data / BI", Secteur: "Éditeur Logiciel Santé", XPGroup: "10+ ans", Departement: "Occitanie"},
	}
}

func TestSanitizeFilters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  map[string][]string
		want int // number of surviving keys
	}{
		{name: "nil input", raw: nil, want: 0},
		{name: "blank values dropped", raw: map[string][]string{"sexe": {"  ", ""}}, want: 0},
		{name: "values trimmed", raw: map[string][]string{"sexe": {" Femme "}}, want: 1},
		{name: "non-facet record field kept", raw: map[string][]string{"salaire_brut": {"30-35k€"}}, want: 1},
		{name: "unknown key kept", raw: map[string][]string{"bogus": {"x"}}, want: 1},
		{name: "mixed", raw: map[string][]string{"sexe": {"Femme"}, "poste": {""}, "bogus": {"x"}}, want: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := SanitizeFilters(tt.raw)
			if len(got) != tt.want {
				t.Errorf("SanitizeFilters(%v) kept %d keys, want %d", tt.raw, len(got), tt.want)
			}
		})
	}
}

func TestSanitizeFilters_TrimsValues(t *testing.T) {
	t.Parallel()

	got := SanitizeFilters(map[string][]string{"sexe": {" Femme "}})
	if got["sexe"][0] != "Femme" {
		t.Errorf("value not trimmed: %q", got["sexe"][0])
	}
}

func TestApply_EmptyFilterMatchesAll(t *testing.T) {
	t.Parallel()

	records := sample()
	got := Apply(records, FilterSet{})
	if len(got) != len(records) {
		t.Errorf("empty filter kept %d of %d records", len(got), len(records))
	}
}

func TestApply_SingleField(t *testing.T) {
	t.Parallel()

	got := Apply(sample(), FilterSet{FieldSecteur: {"Éditeur Logiciel Santé"}})
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}
	for _, r := range got {
		if r.Secteur != "Éditeur Logiciel Santé" {
			t.Errorf("unexpected sector %q", r.Secteur)
		}
	}
}

func TestApply_MultiValueIsUnion(t *testing.T) {
	t.Parallel()

	got := Apply(sample(), FilterSet{FieldDepartement: {"Occitanie", "Île-de-France"}})
	if len(got) != 3 {
		t.Errorf("got %d records, want 3", len(got))
	}
}

func TestApply_MultiFieldIsIntersection(t *testing.T) {
	t.Parallel()

	got := Apply(sample(), FilterSet{
		FieldSecteur: {"Éditeur Logiciel Santé"},
		FieldSexe:    {"Homme"},
	})
	if len(got) != 1 {
		t.Fatalf("got %d records, want 1", len(got))
	}
	if got[0].AnneeDiplome != 2015 {
		t.Errorf("got annee_diplome %d, want 2015", got[0].AnneeDiplome)
	}
}

func TestApply_IntFieldMatchesStringified(t *testing.T) {
	t.Parallel()

	got := Apply(sample(), FilterSet{FieldAnneeDiplome: {"2020"}})
	if len(got) != 2 {
		t.Errorf("got %d records, want 2", len(got))
	}
}

func TestWithout(t *testing.T) {
	t.Parallel()

	f := FilterSet{FieldSexe: {"Femme"}, FieldPoste: {"Data / BI"}}
	got := f.Without(FieldSexe)

	if _, ok := got[FieldSexe]; ok {
		t.Error("Without did not remove the field")
	}
	if _, ok := got[FieldPoste]; !ok {
		t.Error("Without dropped an unrelated field")
	}
	if _, ok := f[FieldSexe]; !ok {
		t.Error("Without mutated the receiver")
	}
}

func TestApply_UnknownKeyMatchesNothing(t *testing.T) {
	t.Parallel()

	got := Apply(sample(), FilterSet{"bogus": {"x"}})
	if len(got) != 0 {
		t.Errorf("got %d records, want 0: a key naming no field constrains on \"\"", len(got))
	}
}

func TestApply_NonFacetField(t *testing.T) {
	t.Parallel()

	records := sample()
	records[0].SalaireBrut = "30-35k€"

	got := Apply(records, FilterSet{"salaire_brut": {"30-35k€"}})
	if len(got) != 1 {
		t.Errorf("got %d records, want 1", len(got))
	}
}

func TestFieldValue_UnknownKey(t *testing.T) {
	t.Parallel()

	if got := (SurveyResponse{}).FieldValue("bogus"); got != "" {
		t.Errorf("FieldValue(unknown) = %q, want empty", got)
	}
}
