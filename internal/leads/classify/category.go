package classify

// Category identifies one operational bucket a lead can belong to.
// Membership is non-exclusive: a lead legitimately belongs to zero, one, or
// several categories at once.
type Category string

const (
	// CategoryAll is the synthetic pass-through category: the full input.
	CategoryAll Category = "all"
	// CategoryVisitScheduled is an assigned visit on/after today.
	CategoryVisitScheduled Category = "visitScheduled"
	// CategoryVisitCompleted is an assigned visit strictly before today.
	CategoryVisitCompleted Category = "visitCompleted"
	// CategoryCallAssigned is an assigned lead whose next call is due.
	CategoryCallAssigned Category = "callAssigned"
	// CategoryCallDueNoInfo is an unassigned due call with no known
	// communication preference.
	CategoryCallDueNoInfo Category = "callDueNoInfo"
	// CategoryCallDueWithInfo is an unassigned due call with at least one
	// known communication preference.
	CategoryCallDueWithInfo Category = "callDueWithInfo"
	// CategoryUnpriced is an active unassigned lead with no valuation amount.
	CategoryUnpriced Category = "unpriced"
	// CategoryMailingPending is a lead in the mail-valuation workflow.
	CategoryMailingPending Category = "mailingPending"
	// CategoryCallNotStarted refines callDueNoInfo: outreach never attempted.
	CategoryCallNotStarted Category = "callNotStarted"
	// CategoryPinrichMissing refines callDueNoInfo: not yet synced to the
	// Pinrich marketing platform.
	CategoryPinrichMissing Category = "pinrichMissing"
)

// categories lists every real category in precedence order. The order matters
// for Primary (single-verdict callers) and keeps Classify output stable.
var categories = []Category{
	CategoryVisitScheduled,
	CategoryVisitCompleted,
	CategoryCallAssigned,
	CategoryCallDueNoInfo,
	CategoryCallDueWithInfo,
	CategoryUnpriced,
	CategoryMailingPending,
	CategoryCallNotStarted,
	CategoryPinrichMissing,
}

// Categories returns every real category in precedence order.
// The synthetic "all" category is excluded.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// ParseCategory resolves a wire identifier to a Category. "all" is accepted.
func ParseCategory(s string) (Category, bool) {
	if Category(s) == CategoryAll {
		return CategoryAll, true
	}
	for _, c := range categories {
		if Category(s) == c {
			return c, true
		}
	}
	return "", false
}
