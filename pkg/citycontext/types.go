// Package citycontext exposes pure, read-only lookup functions over
// static, city-specific knowledge: district/neighborhood geography,
// diaspora food streets, guide lists, and the assorted mapping tables the
// scoring engine consults. A Config is loaded once at process start and is
// immutable for the life of the process (§4.3, §9 "no hidden global
// state").
package citycontext

import "localfare/pkg/config"

// Place is the shape shared by districts and neighborhoods (§6.4: "same
// shape"): a named point with a tier label, an optional cuisine affinity,
// and an optional radius override used when the place acts as a
// neighborhood containment zone.
type Place struct {
	Lat             float64          `yaml:"lat"`
	Lng             float64          `yaml:"lng"`
	Tier            string           `yaml:"tier,omitempty"`
	CuisineAffinity []string         `yaml:"cuisine_affinity,omitempty"`
	Radius          config.Distance  `yaml:"radius,omitempty"`
}

// DiasporaStreet is a named commercial street/area with a known
// immigrant-community food identity, matched by point-in-circle.
type DiasporaStreet struct {
	Lat      float64         `yaml:"lat"`
	Lng      float64         `yaml:"lng"`
	Radius   config.Distance `yaml:"radius"`
	Cuisines []string        `yaml:"cuisines"`
}

// LocalInstitution is a curated bruxellois_local entry: a name pattern with
// a base score and an optional district that earns a district-specific
// weight multiplier (fry-shops are "authentic" in their home district and
// merely present elsewhere).
type LocalInstitution struct {
	Score    float64 `yaml:"score"`
	District string  `yaml:"district,omitempty"`
}

// NamedPoint is a single labeled reference point (tourist epicenter, expat
// center).
type NamedPoint struct {
	Name string  `yaml:"name"`
	Lat  float64 `yaml:"lat"`
	Lng  float64 `yaml:"lng"`
}

// Config is the immutable city-context bundle: every static table the
// scoring engine and feature engineering consult (§2 stage 1, §6.4).
type Config struct {
	CityName    string  `yaml:"city_name"`
	Country     string  `yaml:"country"`
	CentroidLat float64 `yaml:"centroid_lat"`
	CentroidLng float64 `yaml:"centroid_lng"`
	DefaultZoom int     `yaml:"default_zoom"`
	Timezone    string  `yaml:"timezone"`

	BoundingBox struct {
		MinLat float64 `yaml:"min_lat"`
		MaxLat float64 `yaml:"max_lat"`
		MinLng float64 `yaml:"min_lng"`
		MaxLng float64 `yaml:"max_lng"`
	} `yaml:"bounding_box"`

	TouristEpicenter NamedPoint `yaml:"tourist_epicenter"`
	ExpatCenter      NamedPoint `yaml:"expat_center"`

	// TouristTrapNeighborhood names the one neighborhood (in addition to any
	// neighborhood tagged tier "tourist_trap") explicitly carved out as the
	// tourist-trap zone per §4.4's tourist_trap definition.
	TouristTrapNeighborhood string `yaml:"tourist_trap_neighborhood,omitempty"`

	Districts     map[string]Place `yaml:"districts"`
	Neighborhoods map[string]Place `yaml:"neighborhoods"`

	DiasporaStreets map[string]DiasporaStreet `yaml:"diaspora_streets"`

	// TierWeights maps a district tier to the weight bruxellois_local adds to
	// a local institution's score when the record sits in that institution's
	// own district. The review-adjustment high-volume cap does not read this
	// table; it comes from TierHighVolumeCap.
	TierWeights map[string]float64 `yaml:"tier_weights"`

	// DiasporaAuthenticityTable is cuisine -> district -> weight in [0,1].
	DiasporaAuthenticityTable map[string]map[string]float64 `yaml:"diaspora_authenticity"`
	DiasporaCuisines          []string                       `yaml:"diaspora_cuisines"`

	RareCuisineWeightTable  map[string]float64 `yaml:"rare_cuisine_weight"`
	CuisineSpecificityTable map[string]float64 `yaml:"cuisine_specificity"`

	ChainPatterns         []string `yaml:"chain_patterns"`
	NonRestaurantPatterns []string `yaml:"non_restaurant_patterns"`
	NonFoodTypes          []string `yaml:"non_food_types"`

	// MultiStarGuide is name pattern -> star count (1 or 2+).
	MultiStarGuide map[string]int `yaml:"multi_star_guide"`
	ValueGuide     []string       `yaml:"value_guide"`
	RegionalGuide  []string       `yaml:"regional_guide"`

	LocalInstitutions map[string]LocalInstitution `yaml:"local_institutions"`

	CommunityEndorsementSource string          `yaml:"community_endorsement_source"`
	CommunityMentionsTable     map[string]int  `yaml:"community_mentions,omitempty"`
	HygieneFlagsTable          map[string]bool `yaml:"hygiene_flags,omitempty"`

	// VolumeExceptionNames are literal lowercase names (classic fry shops)
	// that skip the review_adjustment high-volume penalty when cuisine is
	// Belgian or venue type is Fast_food (§4.4, supplemented per
	// original_source).
	VolumeExceptionNames []string `yaml:"volume_exception_names"`

	// HipsterFusionKeywords and NonRestaurantLocationKeywords back the
	// diaspora-bonus filters (§4.4).
	HipsterFusionKeywords         []string `yaml:"hipster_fusion_keywords"`
	NonRestaurantLocationKeywords []string `yaml:"non_restaurant_location_keywords"`

	// FamilyNamePatterns back the family_name signal (§4.4): "Chez X", "La
	// Maison de X", etc. Stored as data so new languages/patterns don't
	// require a code change.
	FamilyNamePatterns []string `yaml:"family_name_patterns"`

	compiled *compiledTables
}
