// Package persist stores and retrieves the scored corpus in SQLite (§6.2),
// following the teacher's db.Init (WAL mode, single-writer connection,
// idempotent migration) adapted to the restaurant row schema.
package persist

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"localfare/pkg/citycontext"
	"localfare/pkg/model"
)

// Store wraps the sql.DB connection holding one generation of the scored
// corpus (§5: "the scored corpus has a single writer ... replaced atomically
// between builds").
type Store struct {
	*sql.DB
}

// Open opens (creating if absent) the SQLite file at path and ensures the
// corpus table exists.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("persist: create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("persist: open db: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("persist: ping db: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		return nil, fmt.Errorf("persist: enable WAL mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout=30000;"); err != nil {
		return nil, fmt.Errorf("persist: set busy timeout: %w", err)
	}
	db.SetMaxOpenConns(1)

	s := &Store{db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("persist: migration failed: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	_, err := s.Exec(`CREATE TABLE IF NOT EXISTS restaurants (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		address TEXT,
		lat REAL NOT NULL,
		lng REAL NOT NULL,
		rating REAL NOT NULL,
		review_count INTEGER NOT NULL,
		cuisine TEXT,
		venue_type TEXT,
		price_numeric INTEGER,
		is_chain BOOLEAN,
		predicted_rating REAL,
		residual REAL,
		canonical_provider_url TEXT,
		district TEXT,
		neighborhood TEXT,
		diaspora_street TEXT,
		district_tier TEXT,
		restaurant_tier TEXT,
		composite_score REAL,

		score_base_quality REAL, score_ml_residual REAL, score_review_adjustment REAL,
		score_tourist_trap REAL, score_diaspora REAL, score_independent REAL, score_chain REAL,
		score_cuisine_rarity REAL, score_expat_bubble REAL, score_price_quality REAL,
		score_value_bonus REAL, score_scarcity REAL, score_guide_recognition REAL,
		score_reddit_community REAL, score_low_review REAL, score_family_name REAL,
		score_specificity REAL, score_bruxellois_local REAL, score_non_restaurant REAL,

		scarcity_review REAL, scarcity_horseshoe REAL, scarcity_cuisine_global REAL,
		horseshoe_type TEXT,

		closes_early BOOLEAN, typical_close_hour REAL, weekdays_only BOOLEAN,
		closed_sunday BOOLEAN, days_open_count INTEGER,

		is_rare_cuisine BOOLEAN,
		opening_hours TEXT,
		michelin_stars INTEGER,
		value_guide_flag BOOLEAN,
		regional_guide_flag BOOLEAN,
		community_mentions INTEGER,
		hygiene_flag BOOLEAN,

		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`)
	return err
}

// Replace atomically swaps the corpus table's contents: it writes into a
// fresh transaction and deletes any prior rows first, so readers either see
// the old generation or the new one in full, never a partial mix.
func (s *Store) Replace(records []*model.Restaurant, ctx *citycontext.Config) error {
	tx, err := s.Begin()
	if err != nil {
		return fmt.Errorf("persist: begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM restaurants"); err != nil {
		return fmt.Errorf("persist: clear corpus: %w", err)
	}

	stmt, err := tx.Prepare(insertSQL)
	if err != nil {
		return fmt.Errorf("persist: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		if _, err := stmt.Exec(rowValues(r, ctx.DistrictTier(r.District))...); err != nil {
			return fmt.Errorf("persist: insert %s: %w", r.ID, err)
		}
	}

	return tx.Commit()
}

const insertSQL = `INSERT INTO restaurants (
	id, name, address, lat, lng, rating, review_count, cuisine, venue_type, price_numeric,
	is_chain, predicted_rating, residual, canonical_provider_url, district, neighborhood,
	diaspora_street, district_tier, restaurant_tier, composite_score,
	score_base_quality, score_ml_residual, score_review_adjustment, score_tourist_trap,
	score_diaspora, score_independent, score_chain, score_cuisine_rarity, score_expat_bubble,
	score_price_quality, score_value_bonus, score_scarcity, score_guide_recognition,
	score_reddit_community, score_low_review, score_family_name, score_specificity,
	score_bruxellois_local, score_non_restaurant,
	scarcity_review, scarcity_horseshoe, scarcity_cuisine_global, horseshoe_type,
	closes_early, typical_close_hour, weekdays_only, closed_sunday, days_open_count,
	is_rare_cuisine, opening_hours, michelin_stars, value_guide_flag, regional_guide_flag,
	community_mentions, hygiene_flag
) VALUES (?,?,?,?,?,?,?,?,?,?, ?,?,?,?,?,?, ?,?,?,?, ?,?,?,?, ?,?,?,?,?, ?,?,?,?, ?,?,?,?, ?,?, ?,?,?,?, ?,?,?,?,?, ?,?,?,?,?, ?,?)`

func rowValues(r *model.Restaurant, districtTier string) []any {
	c := r.Components
	var horseshoeType any
	if c.HorseshoeType != "" {
		horseshoeType = c.HorseshoeType
	}
	return []any{
		r.ID, r.Name, r.Address, r.Lat, r.Lng, r.Rating, r.ReviewCount, r.Cuisine, r.VenueType, r.PriceNumeric,
		r.IsChain, r.PredictedRating, r.Residual, r.ProviderURI, r.District, r.Neighborhood,
		r.DiasporaStreet, nullIfEmpty(districtTier), r.Tier, r.CompositeScore,
		c.BaseQuality, c.MLResidual, c.ReviewAdjustment, c.TouristTrap,
		c.Diaspora, c.Independent, c.Chain, c.CuisineRarity, c.ExpatBubble,
		c.PriceQuality, c.ValueBonus, c.Scarcity, c.GuideRecognition,
		c.RedditCommunity, c.LowReview, c.FamilyName, c.Specificity,
		c.BruxelloisLocal, c.NonRestaurant,
		c.ScarcityReview, c.ScarcityHorseshoe, c.ScarcityCuisineGlobal, horseshoeType,
		r.Hours.ClosesLate, r.Hours.TypicalCloseHour, r.Hours.WeekdaysOnly, r.Hours.ClosedSunday, r.Hours.DaysOpenCount,
		r.IsRareCuisine, joinHours(r.OpeningHours), c.MichelinStars, c.ValueGuideFlag, c.RegionalGuideFlag,
		c.CommunityMentions, c.HygieneFlag,
	}
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func joinHours(lines []string) any {
	if len(lines) == 0 {
		return nil
	}
	out := lines[0]
	for _, l := range lines[1:] {
		out += "\n" + l
	}
	return out
}
