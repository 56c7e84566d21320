package compare

import (
	"time"

	"xml-compare-api/core/xmldiff"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Run kinds.
const (
	RunKindXML = "xml"
	RunKindURL = "url"
)

// Run is one persisted comparison outcome.
type Run struct {
	// ID is the auto-incremented row id.
	ID uint `gorm:"primaryKey" json:"id"`
	// Kind is the comparison kind (xml, url).
	Kind string `gorm:"size:16;index" json:"kind"`
	// Matched reports whether the documents matched.
	Matched bool `json:"matched"`
	// MatchRatio is the matched/total element ratio.
	MatchRatio float64 `json:"match_ratio"`
	// TotalElements is the larger of the two documents' element counts.
	TotalElements int `json:"total_elements"`
	// MatchedElements counts elements without diffs.
	MatchedElements int `json:"matched_elements"`
	// DiffCount is the number of reported diffs.
	DiffCount int `json:"diff_count"`
	// DurationMS is the comparison wall time in milliseconds.
	DurationMS int64 `json:"duration_ms"`
	// CreatedAt is the insertion timestamp.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the history table name.
func (Run) TableName() string {
	return "comparison_runs"
}

// Recorder persists comparison outcomes.
type Recorder struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewRecorder creates a recorder and migrates the history table.
func NewRecorder(db *gorm.DB, logger *zap.Logger) (*Recorder, error) {
	if err := db.AutoMigrate(&Run{}); err != nil {
		return nil, err
	}
	return &Recorder{db: db, logger: logger}, nil
}

// Record persists one outcome. Persistence failures are logged, never
// surfaced: history must not break a comparison.
func (r *Recorder) Record(kind string, result xmldiff.Result, took time.Duration) {
	run := Run{
		Kind:            kind,
		Matched:         result.Matched,
		MatchRatio:      result.MatchRatio,
		TotalElements:   result.TotalElements,
		MatchedElements: result.MatchedElements,
		DiffCount:       len(result.Diffs),
		DurationMS:      took.Milliseconds(),
	}
	if err := r.db.Create(&run).Error; err != nil {
		r.logger.Warn("Failed to record comparison run", zap.Error(err))
	}
}

// Recent returns the most recent runs, newest first.
func (r *Recorder) Recent(limit int) ([]Run, error) {
	runs := []Run{}
	err := r.db.Order("id desc").Limit(limit).Find(&runs).Error
	return runs, err
}
