// Package classify implements the lead classification engine: a pure,
// declarative rule set that derives operational categories ("call today",
// "awaiting visit", "unpriced", ...) from a loosely-typed lead record.
//
// The engine is read-only and never fails: malformed fields degrade to
// "attribute absent", which degrades every dependent predicate to false.
// Counts, filtered lists, and per-lead badges all run through the same
// predicate code path, so a sidebar count can never disagree with the list a
// user sees after clicking it.
package classify

import "time"

// Record is a raw lead row as stored. Lead payloads are loosely typed and may
// carry the same fact under several historical field names and encodings; the
// engine resolves them through ordered alias lists.
type Record map[string]any

// Config carries the deploy-time knobs of the engine.
type Config struct {
	// UTCOffset is the fixed business timezone offset. All calendar-date
	// comparisons happen in this zone, independent of the host locale.
	UTCOffset time.Duration

	// UnpricedCutoff gates the unpriced category: only leads whose inquiry
	// date is on/after this date qualify. Canonical YYYY-MM-DD form.
	UnpricedCutoff string

	// CallStartCutoff gates the call-not-started category the same way.
	CallStartCutoff string
}

// Engine evaluates category membership for lead records. It holds no mutable
// state; concurrent use needs no synchronization.
type Engine struct {
	loc             *time.Location
	unpricedCutoff  string
	callStartCutoff string
}

const (
	defaultUTCOffset       = 9 * time.Hour
	defaultUnpricedCutoff  = "2024-01-01"
	defaultCallStartCutoff = "2024-07-01"
)

// New creates an engine from config, filling unset values with the reference
// deployment defaults (UTC+9).
func New(cfg Config) *Engine {
	offset := cfg.UTCOffset
	if offset == 0 {
		offset = defaultUTCOffset
	}

	unpriced := cfg.UnpricedCutoff
	if unpriced == "" {
		unpriced = defaultUnpricedCutoff
	}

	callStart := cfg.CallStartCutoff
	if callStart == "" {
		callStart = defaultCallStartCutoff
	}

	return &Engine{
		loc:             time.FixedZone("business", int(offset.Seconds())),
		unpricedCutoff:  unpriced,
		callStartCutoff: callStart,
	}
}

// Default returns an engine with the reference deployment settings.
func Default() *Engine {
	return New(Config{})
}

// Today returns the current calendar date in the business timezone as a
// canonical YYYY-MM-DD string. Batch operations compute it once so every
// record in a batch sees a consistent "today".
func (e *Engine) Today() string {
	return time.Now().In(e.loc).Format(canonicalDateLayout)
}
