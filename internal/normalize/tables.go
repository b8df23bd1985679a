package normalize

// The four categorizer tables. Rule order is a deliberate priority: health
// software before generic software, department names before their 2-digit
// codes, remote/international before any French region. Reorder only with
// the matching test updates — overlapping keywords make order part of the
// contract.

var sectorRules = []Rule{
	{Label: "Éditeur Logiciel Santé", Keywords: []string{"logiciel santé", "logiciel médical"}},
	{Label: "Structure de Soins", Keywords: []string{"établissement de santé", "médico-social", "hôpital", "clinique", "laboratoire", "soins"}},
	{Label: "Institution Publique", Keywords: []string{"public", "ars", "ans", "ministère", "gip", "doctorat", "recherche"}},
	{Label: "ESN / Conseil", Keywords: []string{"esn", "conseil", "freelance", "client"}},
	{Label: "Industrie Santé", Keywords: []string{"pharma", "medtech", "biotech", "dispositif médical"}},
	{Label: "Banque / Assurance", Keywords: []string{"banque", "bancaire", "assurance", "insurtech", "finance"}},
	{Label: "Éditeur Logiciel (Autre)", Keywords: []string{"éditeur", "logiciel", "saas", "platform"}},
	{Label: "Tech / Industrie / Autre", Keywords: []string{"tech", "startup", "industrie", "télécom", "sécurité", "security", "recherche", "compagnie", "autre", "client", "free-lance", "défense", "gestion"}},
}

var jobRules = []Rule{
	{Label: "Product Owner / Product Manager", Keywords: []string{"product", "po"}},
	{Label: "Chef de Projet", Keywords: []string{"chef de projet", "cheffe de projet", "projet", "agile", "scrum"}},
	{Label: "Développeur / Ingénieur", Keywords: []string{"développeur", "développeuse", "dev", "software", "ingénieur logiciel", "programmer", "java", "web"}},
	{Label: "Tech Lead / Architecte", Keywords: []string{"tech lead", "lead", "architecte", "principal"}},
	{Label: "Data / BI", Keywords: []string{"data", "bi ", "business analyst"}, Suffixes: []string{" bi"}},
	{Label: "DevOps / Infra / Sécurité", Keywords: []string{"devops", "système", "réseau", "sécurité", "admin", "cloud", "sre", "cyber"}},
	{Label: "Consultant / Intégrateur", Keywords: []string{"consultant", "intégrateur", "intératrice", "support"}},
	{Label: "Manager / Directeur", Keywords: []string{"manager", "directeur", "responsable", "head of"}},
	{Label: "Recherche / R&D", Keywords: []string{"recherche", "r&d", "doctorant", "thèse"}},
}

var structureRules = []Rule{
	{Label: "Start-up", Keywords: []string{"start-up", "startup", "scale"}},
	{Label: "PME", Keywords: []string{"pme"}},
	{Label: "ETI", Keywords: []string{"eti"}},
	{Label: "Grand groupe", Keywords: []string{"grand groupe", "entreprise"}},
	{Label: "Administration publique", Keywords: []string{"public", "administration", "gip", "groupement", "université", "recherche", "numih", "hôpital"}},
	{Label: "Freelance / Indépendant", Keywords: []string{"freelance", "indépendant"}},
}

// regionRules matches either a department name or its 2-digit code as a
// substring. Bare 2-digit codes can fire inside unrelated numbers; that
// permissiveness is intentional for free-text department answers.
var regionRules = []Rule{
	{Label: "Full Télétravail", Keywords: []string{"télétravail"}},
	{Label: "International", Keywords: []string{"autre pays", "monaco", "suisse", "luxembourg", "belgique", "royaume-uni", "allemagne", "canada"}},
	{Label: "Occitanie", Keywords: []string{"haute-garonne", "31", "tarn", "81", "ariège", "09", "gers", "32", "hérault", "34", "lot", "46", "hautes-pyrenées", "65", "pyrenées-orientales", "66", "tarn-et-garonne", "82", "aveyron", "12", "lozère", "48", "aude", "11", "gard", "30"}},
	{Label: "Île-de-France", Keywords: []string{"paris", "75", "hauts-de-seine", "92", "seine-saint-denis", "93", "val-de-marne", "94", "seine-et-marne", "77", "yvelines", "78", "essonne", "91", "val-d'oise", "95"}},
	{Label: "Nouvelle-Aquitaine", Keywords: []string{"gironde", "33", "haute-vienne", "87", "pyrénées-atlantiques", "64", "landes", "40", "dordogne", "24", "lot-et-garonne", "47"}},
	{Label: "Auvergne-Rhône-Alpes", Keywords: []string{"rhône", "69", "puy-de-dôme", "63", "isère", "38", "ain", "01", "loire", "42", "savoie", "73", "74"}},
	{Label: "Bretagne", Keywords: []string{"finistère", "29", "morbihan", "56", "ille-et-vilaine", "35", "côtes-d'armor", "22"}},
	{Label: "Pays de la Loire", Keywords: []string{"loire-atlantique", "44", "maine-et-loire", "49", "mayenne", "53", "sarthe", "72", "vendée", "85"}},
	{Label: "PACA / Sud", Keywords: []string{"bouches-du-rhône", "13", "var", "83", "alpes-maritimes", "06", "vaucluse", "84"}},
	{Label: "Grand Est", Keywords: []string{"bas-rhin", "67", "haut-rhin", "68", "moselle", "57", "meurthe-et-moselle", "54"}},
	{Label: "Centre-Val de Loire", Keywords: []string{"indre-et-loire", "37", "loiret", "45"}},
	{Label: "DOM-TOM", Keywords: []string{"réunion", "974", "polynésie", "987", "guadeloupe", "971", "martinique", "972", "guyane", "973"}},
}

// Sector maps a free-text sector answer onto the fixed sector label set.
func Sector(s string) string { return Classify(s, sectorRules, "Autre") }

// Job maps a free-text job title onto the fixed role label set.
func Job(s string) string { return Classify(s, jobRules, "Autre") }

// Structure maps a free-text structure-type answer onto the fixed label set.
func Structure(s string) string { return Classify(s, structureRules, "Autre") }

// Region maps a free-text work-department answer onto a region label.
func Region(s string) string { return Classify(s, regionRules, "Autre Région") }
