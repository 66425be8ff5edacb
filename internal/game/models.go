/*
Package game
File: models.go
Description:
    Defines all data structures (Structs) used by the Clover Cat engine.
    This file serves as the "schema" for the application, mapping directly to
    YAML configuration files and JSON API responses.

    No logic is performed here; this file is strictly for type definitions.
*/

package game

import "time"

// GameBalance stores global tuning variables loaded from 'catalog.yaml'.
// These values control click rewards, fever behavior, petting throttles
// and the sampling windows of the session.
type GameBalance struct {
	ClickBase         float64     `yaml:"click_base" json:"click_base"`                   // Flat clover granted per tap before bonuses
	ClickPPSShare     float64     `yaml:"click_pps_share" json:"click_pps_share"`         // Fraction of base PPS added to every tap
	CostGrowth        float64     `yaml:"cost_growth" json:"cost_growth"`                 // Geometric price ratio per owned unit
	FeverThreshold    int         `yaml:"fever_threshold" json:"fever_threshold"`         // Combo needed to enter fever
	FeverStartMult    float64     `yaml:"fever_start_multiplier" json:"fever_start_mult"` // Multiplier applied on fever entry
	FeverStep         float64     `yaml:"fever_step" json:"fever_step"`                   // Multiplier gained per click while in fever
	FeverMaxMult      float64     `yaml:"fever_max_multiplier" json:"fever_max_mult"`     // Multiplier ceiling
	ComboDecayMs      int         `yaml:"combo_decay_ms" json:"combo_decay_ms"`           // Inactivity window before the combo resets
	StrokeValue       float64     `yaml:"stroke_value" json:"stroke_value"`               // Clover granted per registered petting stroke
	StrokeMinDistance float64     `yaml:"stroke_min_distance" json:"stroke_min_distance"` // Pixels of movement required between strokes
	StrokeMinGapMs    int         `yaml:"stroke_min_gap_ms" json:"stroke_min_gap_ms"`     // Minimum time between registered strokes
	PettingCap        float64     `yaml:"petting_cap" json:"petting_cap"`                 // Affection score ceiling per reset window
	PettingWindowSec  int         `yaml:"petting_window_sec" json:"petting_window_sec"`   // Seconds until the affection score resets
	HistoryLimit      int         `yaml:"history_limit" json:"history_limit"`             // Retained balance samples for charting
	AnnotationTTLMs   int         `yaml:"annotation_ttl_ms" json:"annotation_ttl_ms"`     // Lifetime of floating reward text
	OracleCosts       OracleCosts `yaml:"oracle_costs" json:"oracle_costs"`
}

// ComboDecay returns the combo inactivity window as a Duration.
func (b GameBalance) ComboDecay() time.Duration {
	return time.Duration(b.ComboDecayMs) * time.Millisecond
}

// StrokeMinGap returns the petting throttle interval as a Duration.
func (b GameBalance) StrokeMinGap() time.Duration {
	return time.Duration(b.StrokeMinGapMs) * time.Millisecond
}

// PettingWindow returns the affection reset window as a Duration.
func (b GameBalance) PettingWindow() time.Duration {
	return time.Duration(b.PettingWindowSec) * time.Second
}

// AnnotationTTL returns the floating text lifetime as a Duration.
func (b GameBalance) AnnotationTTL() time.Duration {
	return time.Duration(b.AnnotationTTLMs) * time.Millisecond
}

// OracleCosts maps each oracle mode to its clover price.
type OracleCosts struct {
	Wisdom float64 `yaml:"wisdom" json:"wisdom"`
	Name   float64 `yaml:"name" json:"name"`
	Story  float64 `yaml:"story" json:"story"`
}

// Upgrade represents a purchasable item granting passive clover income.
// Static fields come from YAML; Count and CurrentCost mutate at runtime.
type Upgrade struct {
	ID          string  `yaml:"id" json:"id"`                   // Unique ID (e.g., "clover_leaf")
	Name        string  `yaml:"name" json:"name"`               // Display name
	Description string  `yaml:"description" json:"description"` // Flavor text
	Icon        string  `yaml:"icon" json:"icon"`               // Emoji shown by the frontend
	BaseCost    float64 `yaml:"base_cost" json:"base_cost"`     // Price of the first unit
	CPS         float64 `yaml:"cps" json:"cps"`                 // Clover per second granted by one unit
	CurrentCost float64 `json:"current_cost"`                   // Price of the next unit (derived)
	Count       int     `json:"count"`                          // Units owned this session
}

// Ledger holds the session's currency balance and lifetime totals.
// TotalProduced and PettingTotal only ever grow; spending reduces Balance alone.
type Ledger struct {
	Balance       float64 `json:"balance"`
	TotalProduced float64 `json:"total_produced"`
	ClickCount    int     `json:"click_count"`
	PettingTotal  float64 `json:"petting_total"`
}

// ComboFeverState tracks the consecutive-click combo and the fever multiplier.
type ComboFeverState struct {
	Combo           int     `json:"combo"`
	FeverActive     bool    `json:"fever_active"`
	FeverMultiplier float64 `json:"fever_multiplier"`
}

// PettingState tracks the saturating affection accumulator.
type PettingState struct {
	Score       float64   `json:"score"`
	NextResetAt time.Time `json:"next_reset_at"`
}

// HistorySample is one charting data point: the balance at a moment in time.
type HistorySample struct {
	Time    time.Time `json:"time"`
	Balance float64   `json:"balance"`
}

// Annotation is a transient floating reward text shown over the cat.
// The frontend renders it until ExpiresAt; the frame loop prunes it afterwards.
type Annotation struct {
	ID        int64     `json:"id"`
	X         float64   `json:"x"`
	Y         float64   `json:"y"`
	Text      string    `json:"text"`
	Fever     bool      `json:"fever"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Snapshot is a read-only copy of the full session state handed to the
// render collaborator. It carries derived rates so the frontend never
// recomputes economy math.
type Snapshot struct {
	Ledger       Ledger          `json:"ledger"`
	Fever        ComboFeverState `json:"fever"`
	Petting      PettingState    `json:"petting"`
	BasePPS      float64         `json:"base_pps"`
	EffectivePPS float64         `json:"effective_pps"`
	StartedAt    time.Time       `json:"started_at"`
	Annotations  []Annotation    `json:"annotations"`
}
