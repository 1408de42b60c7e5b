package citycontext

import (
	"strings"

	"localfare/pkg/geo"
	"localfare/pkg/textnorm"
)

// InCity reports whether (lat, lng) falls inside the configured city
// bounding box.
func (c *Config) InCity(lat, lng float64) bool {
	return geo.BoundingBox{
		MinLat: c.BoundingBox.MinLat, MaxLat: c.BoundingBox.MaxLat,
		MinLng: c.BoundingBox.MinLng, MaxLng: c.BoundingBox.MaxLng,
	}.Contains(lat, lng)
}

// DistrictOf returns the name of the nearest district centroid by
// great-circle distance. Every in-city point is assigned to exactly one
// district (§3 invariant "district totality"); callers should only invoke
// this for points that passed InCity, though DistrictOf itself never fails
// as long as at least one district is configured.
func (c *Config) DistrictOf(lat, lng float64) (name string, ok bool) {
	if len(c.compiled.districtNames) == 0 {
		return "", false
	}
	p := geo.Point{Lat: lat, Lon: lng}
	best := ""
	bestDist := -1.0
	for _, dn := range c.compiled.districtNames {
		d := c.Districts[dn]
		dist := geo.Distance(p, geo.Point{Lat: d.Lat, Lon: d.Lng})
		if bestDist < 0 || dist < bestDist {
			bestDist = dist
			best = dn
		}
	}
	return best, true
}

// DistrictTier returns the tier of a named district, or "" if unknown.
func (c *Config) DistrictTier(district string) string {
	return c.Districts[district].Tier
}

// defaultNeighborhoodRadiusMeters is used when a neighborhood does not
// override its containment radius (§3 District: "default 0.5 km when used
// as a neighborhood").
const defaultNeighborhoodRadiusMeters = 500.0

// NeighborhoodOf returns the unique neighborhood whose (point, radius)
// contains (lat, lng), or ok=false if none does. Overlapping neighborhoods
// are a data-quality invariant the city-context author must avoid (§4.3);
// the first match found is returned.
func (c *Config) NeighborhoodOf(lat, lng float64) (name string, data Place, ok bool) {
	p := geo.Point{Lat: lat, Lon: lng}
	for _, nn := range c.compiled.neighborhoodNames {
		n := c.Neighborhoods[nn]
		radius := float64(n.Radius)
		if radius <= 0 {
			radius = defaultNeighborhoodRadiusMeters
		}
		if geo.InCircle(geo.Point{Lat: n.Lat, Lon: n.Lng}, p, radius) {
			return nn, n, true
		}
	}
	return "", Place{}, false
}

// OnDiasporaStreet returns the first matching diaspora food street by
// point-in-circle containment.
func (c *Config) OnDiasporaStreet(lat, lng float64) (name string, ok bool) {
	p := geo.Point{Lat: lat, Lon: lng}
	for sn, s := range c.DiasporaStreets {
		if geo.InCircle(geo.Point{Lat: s.Lat, Lon: s.Lng}, p, float64(s.Radius)) {
			return sn, true
		}
	}
	return "", false
}

// DiasporaStreetCuisines returns the cuisine word list associated with a
// diaspora street, or nil if unknown.
func (c *Config) DiasporaStreetCuisines(name string) []string {
	s, ok := c.DiasporaStreets[name]
	if !ok {
		return nil
	}
	return s.Cuisines
}

// DistanceToTouristEpicenterKm returns the Haversine distance in km.
func (c *Config) DistanceToTouristEpicenterKm(lat, lng float64) float64 {
	return geo.DistanceKm(geo.Point{Lat: lat, Lon: lng},
		geo.Point{Lat: c.TouristEpicenter.Lat, Lon: c.TouristEpicenter.Lng})
}

// DistanceToExpatCenterKm returns the Haversine distance in km.
func (c *Config) DistanceToExpatCenterKm(lat, lng float64) float64 {
	return geo.DistanceKm(geo.Point{Lat: lat, Lon: lng},
		geo.Point{Lat: c.ExpatCenter.Lat, Lon: c.ExpatCenter.Lng})
}

// IsNonFoodType reports whether primaryType is in the configured non-food
// closed set (hotels, spas, retail, etc.), used by the ingest filter and
// the reranker's non-food exclusion pass.
func (c *Config) IsNonFoodType(primaryType string) bool {
	for _, t := range c.NonFoodTypes {
		if strings.EqualFold(t, primaryType) {
			return true
		}
	}
	return false
}

// ChainMatch reports whether name matches any compiled chain pattern,
// case-insensitively and after diacritic folding, anywhere in the string.
func (c *Config) ChainMatch(name string) bool {
	folded := textnorm.Fold(name)
	for _, re := range c.compiled.chainPatterns {
		if re.MatchString(folded) {
			return true
		}
	}
	return false
}

// NonRestaurantShop reports whether name matches any compiled
// non-restaurant-shop pattern, case-insensitively and after diacritic
// folding.
func (c *Config) NonRestaurantShop(name string) bool {
	folded := textnorm.Fold(name)
	for _, re := range c.compiled.nonRestaurantPatterns {
		if re.MatchString(folded) {
			return true
		}
	}
	return false
}

// genericEstablishmentPrefixes are descriptor words a provider sometimes
// prepends to a curated guide name ("Restaurant La Paix" for the guide's
// "La Paix"). Stripping only these known tokens at the boundary of the
// folded name, rather than matching the guide entry as a substring anywhere
// in the name, is what keeps "glacier de la paix" from matching "la paix":
// "glacier" is not a descriptor word, so nothing is stripped and the
// full-string comparison fails (§8 invariant 13).
var genericEstablishmentPrefixes = map[string]bool{
	"restaurant": true, "brasserie": true, "bistro": true, "bistrot": true,
	"cafe": true, "taverne": true, "friterie": true, "chez": true,
}

// boundaryMatch reports whether folded (an already textnorm.Fold'd name)
// equals entry, either directly or after stripping a single leading
// generic-establishment word. It never matches entry as a substring of an
// unrelated longer name.
func boundaryMatch(folded, entry string) bool {
	if folded == entry {
		return true
	}
	first, rest, ok := strings.Cut(folded, " ")
	return ok && genericEstablishmentPrefixes[first] && rest == entry
}

// MichelinStars returns 0, 1, or 2 for the given restaurant name, matched
// against the curated multi-star table after diacritic folding. An exact
// fold match always wins; §4.3's boundary pattern match (stripping a
// leading generic descriptor word) is only consulted when no curated entry
// is an exact match, so specified exact-match entries override boundary
// matching.
func (c *Config) MichelinStars(name string) int {
	folded := textnorm.Fold(name)
	if stars, ok := c.compiled.multiStarGuide[folded]; ok {
		return stars
	}
	for entry, stars := range c.compiled.multiStarGuide {
		if boundaryMatch(folded, entry) {
			return stars
		}
	}
	return 0
}

// HasValueGuide reports membership in the value-guide table, by exact fold
// match or §4.3 boundary pattern match.
func (c *Config) HasValueGuide(name string) bool {
	return guideBoundaryLookup(c.compiled.valueGuide, name)
}

// HasRegionalGuide reports membership in the regional-guide table, by exact
// fold match or §4.3 boundary pattern match.
func (c *Config) HasRegionalGuide(name string) bool {
	return guideBoundaryLookup(c.compiled.regionalGuide, name)
}

func guideBoundaryLookup(table map[string]bool, name string) bool {
	folded := textnorm.Fold(name)
	if table[folded] {
		return true
	}
	for entry := range table {
		if boundaryMatch(folded, entry) {
			return true
		}
	}
	return false
}

// DiasporaAuthenticity returns the authenticity weight for a cuisine in a
// district; a missing pair is 0.
func (c *Config) DiasporaAuthenticity(cuisine, district string) float64 {
	return c.DiasporaAuthenticityTable[cuisine][district]
}

// DiasporaAuthenticityByCuisine exposes the full district map for a
// cuisine, so callers can apply the "outside its typical districts" floor
// from §4.4 without iterating every district.
func (c *Config) DiasporaAuthenticityByCuisine(cuisine string) (map[string]float64, bool) {
	m, ok := c.DiasporaAuthenticityTable[cuisine]
	return m, ok
}

// CuisineSpecificity returns the specificity bonus for a cuisine; unknown
// cuisines contribute 0.
func (c *Config) CuisineSpecificity(cuisine string) float64 {
	return c.CuisineSpecificityTable[cuisine]
}

// RareCuisineWeight returns the rarity lookup weight for a cuisine; unknown
// cuisines contribute 0.
func (c *Config) RareCuisineWeight(cuisine string) float64 {
	return c.RareCuisineWeightTable[cuisine]
}

// IsDiasporaCuisine reports whether cuisine is in the configured
// diaspora-cuisine closed set, used by the query surface's diaspora_only
// filter.
func (c *Config) IsDiasporaCuisine(cuisine string) bool {
	for _, d := range c.DiasporaCuisines {
		if d == cuisine {
			return true
		}
	}
	return false
}

// TierHighVolumeCap returns the review_adjustment high-volume penalty cap
// for a district tier (§4.4): gentler in local/diaspora/underexplored,
// steeper in tourist/mixed.
func (c *Config) TierHighVolumeCap(tier string) float64 {
	switch tier {
	case "local_foodie", "diaspora_hub", "underexplored":
		return -0.10
	default:
		return -0.20
	}
}

// LocalInstitution looks up the curated bruxellois_local table entry for
// name, folding diacritics before comparison.
func (c *Config) LocalInstitution(name string) (LocalInstitution, bool) {
	inst, ok := c.compiled.localInstitutions[textnorm.Fold(name)]
	return inst, ok
}

// IsVolumeException reports whether name is a configured classic fry-shop
// exempted from the high-volume review_adjustment penalty.
func (c *Config) IsVolumeException(name string) bool {
	return c.compiled.volumeExceptions[textnorm.Fold(name)]
}

// HasHipsterFusionKeyword reports whether name contains any configured
// hipster/fusion keyword.
func (c *Config) HasHipsterFusionKeyword(name string) bool {
	folded := textnorm.Fold(name)
	for _, kw := range c.compiled.hipsterFusion {
		if contains(folded, kw) {
			return true
		}
	}
	return false
}

// HasNonRestaurantLocationKeyword reports whether name or address contains
// any configured non-restaurant-location keyword (e.g. "hotel restaurant",
// "gare").
func (c *Config) HasNonRestaurantLocationKeyword(name, address string) bool {
	folded := textnorm.Fold(name + " " + address)
	for _, kw := range c.compiled.nonRestaurantLoc {
		if contains(folded, kw) {
			return true
		}
	}
	return false
}

// MatchesFamilyNamePattern reports whether name matches any configured
// family-naming pattern ("Chez X", "La Maison de X", ...).
func (c *Config) MatchesFamilyNamePattern(name string) bool {
	for _, re := range c.compiled.familyNamePatterns {
		if re.MatchString(name) {
			return true
		}
	}
	return false
}

// CommunityMentions returns the exact-normalized mention count for name, or
// 0 if unmentioned. Matching is exact, never fuzzy (§4.4 reddit_community).
func (c *Config) CommunityMentions(name string) int {
	return c.CommunityMentionsTable[textnorm.Fold(name)]
}

// HygieneFlag reports whether name carries a configured hygiene flag.
func (c *Config) HygieneFlag(name string) bool {
	return c.HygieneFlagsTable[textnorm.Fold(name)]
}

func contains(haystack, needle string) bool {
	return needle != "" && strings.Contains(haystack, needle)
}
