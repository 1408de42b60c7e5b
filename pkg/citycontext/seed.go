package citycontext

// BrusselsTemplate returns the documented example city context published
// alongside the module (§6.4: "a template configuration is published with
// all fields documented"). It also doubles as the reference fixture for
// the scoring engine's literal end-to-end test scenarios (§8), carried
// forward from the Brussels seed data in the original source.
func BrusselsTemplate() *Config {
	cfg := &Config{
		CityName:    "Brussels",
		Country:     "Belgium",
		CentroidLat: 50.8503,
		CentroidLng: 4.3517,
		DefaultZoom: 13,
		Timezone:    "Europe/Brussels",

		TouristEpicenter: NamedPoint{Name: "Grand-Place", Lat: 50.8467, Lng: 4.3525},
		ExpatCenter:      NamedPoint{Name: "Schuman", Lat: 50.8437, Lng: 4.3800},

		TouristTrapNeighborhood: "rue_des_bouchers",

		Districts: map[string]Place{
			"Bruxelles":  {Lat: 50.8467, Lng: 4.3525, Tier: "tourist_heavy"},
			"Ixelles":    {Lat: 50.8333, Lng: 4.3667, Tier: "diaspora_hub", CuisineAffinity: []string{"Congolese", "African"}},
			"Etterbeek":  {Lat: 50.8375, Lng: 4.3897, Tier: "local_foodie"},
			"Schaerbeek": {Lat: 50.8676, Lng: 4.3739, Tier: "underexplored"},
			"Uccle":      {Lat: 50.8008, Lng: 4.3378, Tier: "mixed"},
			"Schuman":    {Lat: 50.8437, Lng: 4.3800, Tier: "expat_bubble"},
		},

		Neighborhoods: map[string]Place{
			"rue_des_bouchers": {Lat: 50.8490, Lng: 4.3531, Tier: "tourist_trap", Radius: 120},
			"matonge":          {Lat: 50.8280, Lng: 4.3654, Tier: "diaspora_hub", CuisineAffinity: []string{"Congolese", "African"}, Radius: 400},
		},

		DiasporaStreets: map[string]DiasporaStreet{
			"Chaussée de Wavre (Matongé)": {Lat: 50.8280, Lng: 4.3654, Radius: 500, Cuisines: []string{"Congolese", "African"}},
		},

		TierWeights: map[string]float64{
			"tourist_heavy": 0.20, "tourist_trap": 0.20, "mixed": 0.20,
			"local_foodie": 0.10, "diaspora_hub": 0.10, "underexplored": 0.10,
			"expat_bubble": 0.15,
		},

		DiasporaAuthenticityTable: map[string]map[string]float64{
			"Congolese": {"Ixelles": 1.0, "Schaerbeek": 0.3},
			"Moroccan":  {"Schaerbeek": 0.9, "Molenbeek": 0.7},
			"Turkish":   {"Schaerbeek": 0.8},
		},
		DiasporaCuisines: []string{"Congolese", "African", "Moroccan", "Turkish", "Vietnamese", "Portuguese"},

		RareCuisineWeightTable: map[string]float64{
			"Congolese": 0.9, "Vietnamese": 0.6, "Portuguese": 0.5, "Brazilian": 0.5,
		},
		CuisineSpecificityTable: map[string]float64{
			"Belgian": 0.6, "French": 0.5, "Congolese": 0.9, "Moroccan": 0.8, "Other": 0.1,
		},

		ChainPatterns: []string{
			`\bmcdonald'?s\b`, `\bquick\b`, `\bexki\b`, `\bstarbucks\b`, `\bo'?tacos\b`,
		},
		NonRestaurantPatterns: []string{
			`\bneuhaus\b`, `\bchocolaterie\b`, `\bpharmacie\b`, `\bsupermarch[eé]\b`,
		},
		NonFoodTypes: []string{"store", "hotel", "spa", "lodging", "shopping_mall"},

		MultiStarGuide: map[string]int{
			"comme chez soi": 2,
			"la paix":        1,
		},
		ValueGuide:    []string{"fin de siecle"},
		RegionalGuide: []string{"viva m'boma"},

		LocalInstitutions: map[string]LocalInstitution{
			"maison antoine": {Score: 1.0, District: "Etterbeek"},
		},

		CommunityEndorsementSource: "r/brussels",
		CommunityMentionsTable: map[string]int{
			"maison antoine": 10,
		},

		VolumeExceptionNames: []string{
			"maison antoine", "frit flagey", "martin's frietjes",
		},

		HipsterFusionKeywords: []string{
			"fusion", "concept", "experience", "gastro-bar", "speakeasy",
		},
		NonRestaurantLocationKeywords: []string{
			"wolf", "food market", "food hall", "casino", "viage",
			"hotel restaurant", "station", "gare", "sncb", "nmbs",
		},
		FamilyNamePatterns: []string{
			`(?i)\bchez\b`, `(?i)\bla maison de\b`, `(?i)\bau bon\b`, `(?i)\bau vieux\b`,
			`(?i)\bau petit\b`, `(?i)\bbij\b`, `(?i)\b't\b`,
		},
	}
	cfg.BoundingBox.MinLat, cfg.BoundingBox.MaxLat = 50.76, 50.91
	cfg.BoundingBox.MinLng, cfg.BoundingBox.MaxLng = 4.22, 4.48
	cfg.Compile()
	return cfg
}
