package classify

import "fmt"

// Membership pairs a matched category with its formatted display label.
type Membership struct {
	Category Category `json:"category"`
	Label    string   `json:"label"`
}

// matches is the single authoritative predicate for every category. Counts,
// filters, and per-lead badges all dispatch through it, so the three surfaces
// can never diverge.
func (e *Engine) matches(c Category, v view, today string) bool {
	switch c {
	case CategoryAll:
		return true

	// The visit pair deliberately does not require the active-follow-up
	// marker: a scheduled visit is itself evidence of active engagement.
	case CategoryVisitScheduled:
		return v.visitAssignee != "" && onOrAfter(v.visitDate, today)
	case CategoryVisitCompleted:
		return v.visitAssignee != "" && strictlyBefore(v.visitDate, today)

	case CategoryCallAssigned:
		return v.isActive() && v.visitAssignee != "" && onOrBefore(v.nextCallDate, today)

	case CategoryCallDueNoInfo:
		return e.callDue(v, today) && !v.hasContactInfo()
	case CategoryCallDueWithInfo:
		return e.callDue(v, today) && v.hasContactInfo()

	case CategoryUnpriced:
		return v.isActive() &&
			v.visitAssignee == "" &&
			v.mailingStatus != mailingUnnecessary &&
			!v.hasValuation &&
			onOrAfter(v.inquiryDate, e.unpricedCutoff)

	case CategoryMailingPending:
		return v.mailingStatus == mailingPendingValue

	case CategoryCallNotStarted:
		return e.matches(CategoryCallDueNoInfo, v, today) &&
			v.unreachable == "" &&
			onOrAfter(v.inquiryDate, e.callStartCutoff)

	case CategoryPinrichMissing:
		return e.matches(CategoryCallDueNoInfo, v, today) && v.pinrich == ""

	default:
		return false
	}
}

// callDue is the shared base of the due-today pair: actively worked,
// unassigned, and next call on/before today.
func (e *Engine) callDue(v view, today string) bool {
	return v.isActive() && v.visitAssignee == "" && onOrBefore(v.nextCallDate, today)
}

// label formats the display text for a matched category. Only the with-info
// label embeds live field content.
func (e *Engine) label(c Category, v view) string {
	switch c {
	case CategoryVisitScheduled:
		return "visit scheduled"
	case CategoryVisitCompleted:
		return "visited"
	case CategoryCallAssigned:
		return "call assigned"
	case CategoryCallDueNoInfo:
		return "call today (no preference)"
	case CategoryCallDueWithInfo:
		return fmt.Sprintf("call today (%s)", v.preferredContact())
	case CategoryUnpriced:
		return "unpriced"
	case CategoryMailingPending:
		return "mail valuation pending"
	case CategoryCallNotStarted:
		return "call not started"
	case CategoryPinrichMissing:
		return "pinrich not synced"
	default:
		return string(c)
	}
}

// MatchesAt reports membership of a single record in a single category,
// against an explicit "today". It dispatches through the same predicate as
// the batch operations. CategoryAll always matches.
func (e *Engine) MatchesAt(rec Record, c Category, today string) bool {
	return e.matches(c, e.normalize(rec), today)
}

// Classify returns the full, non-exclusive set of categories the lead belongs
// to, in precedence order, each paired with its label. "Today" is computed
// per call; use ClassifyAt for batch consistency or deterministic tests.
func (e *Engine) Classify(rec Record) []Membership {
	return e.ClassifyAt(rec, e.Today())
}

// ClassifyAt evaluates every predicate independently against the given
// "today". A lead legitimately belongs to zero, one, or several categories.
func (e *Engine) ClassifyAt(rec Record, today string) []Membership {
	v := e.normalize(rec)

	memberships := make([]Membership, 0, 2)
	for _, c := range categories {
		if e.matches(c, v, today) {
			memberships = append(memberships, Membership{Category: c, Label: e.label(c, v)})
		}
	}
	return memberships
}

// Primary returns the single highest-precedence membership, for callers that
// need one authoritative verdict (a status-badge column). The second return
// is false when the lead matches no category.
func (e *Engine) Primary(rec Record) (Membership, bool) {
	return e.PrimaryAt(rec, e.Today())
}

// PrimaryAt is Primary with an explicit "today".
func (e *Engine) PrimaryAt(rec Record, today string) (Membership, bool) {
	v := e.normalize(rec)
	for _, c := range categories {
		if e.matches(c, v, today) {
			return Membership{Category: c, Label: e.label(c, v)}, true
		}
	}
	return Membership{}, false
}
