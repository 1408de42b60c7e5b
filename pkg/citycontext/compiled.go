package citycontext

import (
	"regexp"

	"localfare/pkg/textnorm"
)

// compiledTables holds the regex/lookup structures built once from Config's
// declarative pattern lists, so hot-path lookups (§4.3: "O(small
// constant)") never recompile a pattern.
type compiledTables struct {
	chainPatterns         []*regexp.Regexp
	nonRestaurantPatterns []*regexp.Regexp
	familyNamePatterns    []*regexp.Regexp

	multiStarGuide map[string]int // folded name -> stars
	valueGuide     map[string]bool
	regionalGuide  map[string]bool

	localInstitutions map[string]LocalInstitution

	volumeExceptions map[string]bool
	hipsterFusion     []string
	nonRestaurantLoc  []string

	districtNames []string
	districtPts   [][2]float64

	neighborhoodNames []string
}

// Compile builds the regex/lookup tables backing the pattern-matching
// lookups from Config's declarative fields. Load calls this automatically;
// callers constructing or mutating a Config directly (tests, in-process
// defaults) must call it before using pattern-matching methods.
func (c *Config) Compile() {
	c.compile()
}

func (c *Config) compile() {
	ct := &compiledTables{
		multiStarGuide:    make(map[string]int, len(c.MultiStarGuide)),
		valueGuide:        make(map[string]bool, len(c.ValueGuide)),
		regionalGuide:     make(map[string]bool, len(c.RegionalGuide)),
		localInstitutions: make(map[string]LocalInstitution, len(c.LocalInstitutions)),
		volumeExceptions:  make(map[string]bool, len(c.VolumeExceptionNames)),
		hipsterFusion:     c.HipsterFusionKeywords,
		nonRestaurantLoc:  c.NonRestaurantLocationKeywords,
	}

	for _, p := range c.ChainPatterns {
		if re, err := regexp.Compile("(?i)" + p); err == nil {
			ct.chainPatterns = append(ct.chainPatterns, re)
		}
	}
	for _, p := range c.NonRestaurantPatterns {
		if re, err := regexp.Compile("(?i)" + p); err == nil {
			ct.nonRestaurantPatterns = append(ct.nonRestaurantPatterns, re)
		}
	}
	for _, p := range c.FamilyNamePatterns {
		if re, err := regexp.Compile(p); err == nil {
			ct.familyNamePatterns = append(ct.familyNamePatterns, re)
		}
	}

	for name, stars := range c.MultiStarGuide {
		ct.multiStarGuide[textnorm.Fold(name)] = stars
	}
	for _, name := range c.ValueGuide {
		ct.valueGuide[textnorm.Fold(name)] = true
	}
	for _, name := range c.RegionalGuide {
		ct.regionalGuide[textnorm.Fold(name)] = true
	}
	for name, inst := range c.LocalInstitutions {
		ct.localInstitutions[textnorm.Fold(name)] = inst
	}
	for _, name := range c.VolumeExceptionNames {
		ct.volumeExceptions[textnorm.Fold(name)] = true
	}

	for name := range c.Districts {
		ct.districtNames = append(ct.districtNames, name)
	}
	for name := range c.Neighborhoods {
		ct.neighborhoodNames = append(ct.neighborhoodNames, name)
	}

	c.compiled = ct
}
