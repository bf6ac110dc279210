package classify

import (
	"strconv"
	"strings"
)

// Sentinels embedded in the lead data.
const (
	// activeFollowUpMarker must appear in the status for a lead to count as
	// actively worked.
	activeFollowUpMarker = "follow-up"
	// noAssigneeSentinel is the explicit "nobody assigned" token some rows
	// carry instead of an empty assignee.
	noAssigneeSentinel = "unassign"
	// mailingUnnecessary suppresses valuation-required categories.
	mailingUnnecessary = "unnecessary"
	// mailingPendingValue marks the mail-valuation workflow.
	mailingPendingValue = "pending"
)

// Alias lists per logical attribute. The data carries two naming conventions
// (camelCase and snake_case) plus legacy field names; the first non-empty
// value in declared order wins. Keeping the lists here keeps the rule
// predicates free of naming concerns.
var (
	statusAliases = []string{"situationCompany", "situation_company", "status"}

	nextCallDateAliases = []string{"nextCallDate", "next_call_date", "nextCallDay"}

	visitDateAliases = []string{"visitDate", "visit_date", "visitScheduleDate"}

	visitAssigneeAliases = []string{"visitAssignee", "visit_assignee", "visitStaff"}

	contactMethodAliases = []string{"contactMethod", "contact_method"}

	preferredTimeAliases = []string{"preferredContactTime", "preferred_contact_time"}

	contactPersonAliases = []string{"phoneContactPerson", "phone_contact_person"}

	// The detailed inquiry datetime outranks the plain inquiry date.
	inquiryDateAliases = []string{
		"inquiryDetailedDatetime", "inquiry_detailed_datetime",
		"inquiryDate", "inquiry_date",
	}

	valuationMethodAliases = []string{"valuationMethod", "valuation_method"}

	mailingStatusAliases = []string{"mailingStatus", "mailing_status"}

	unreachableAliases = []string{"unreachableStatus", "unreachable_status"}

	pinrichAliases = []string{"pinrichStatus", "pinrich_status"}

	// Six logical valuation amount fields (three automatic, three manual);
	// the presence of any one means a price estimate already exists.
	valuationAmountAliases = [][]string{
		{"valuationAmount1", "valuation_amount_1"},
		{"valuationAmount2", "valuation_amount_2"},
		{"valuationAmount3", "valuation_amount_3"},
		{"manualValuationAmount1", "manual_valuation_amount_1"},
		{"manualValuationAmount2", "manual_valuation_amount_2"},
		{"manualValuationAmount3", "manual_valuation_amount_3"},
	}
)

// view is the canonical, alias-resolved, timezone-corrected representation of
// one lead. It lives for a single evaluation call; the source record is never
// mutated.
type view struct {
	status          string
	nextCallDate    string // canonical YYYY-MM-DD, "" when absent
	visitDate       string
	visitAssignee   string
	contactMethod   string
	preferredTime   string
	contactPerson   string
	inquiryDate     string
	valuationMethod string
	hasValuation    bool
	mailingStatus   string
	unreachable     string
	pinrich         string
}

// normalize resolves a raw record into its canonical view. It cannot fail:
// anything it does not understand resolves to absent.
func (e *Engine) normalize(rec Record) view {
	v := view{
		status:          stringField(rec, statusAliases),
		nextCallDate:    e.dateField(rec, nextCallDateAliases),
		visitDate:       e.dateField(rec, visitDateAliases),
		visitAssignee:   stringField(rec, visitAssigneeAliases),
		contactMethod:   stringField(rec, contactMethodAliases),
		preferredTime:   stringField(rec, preferredTimeAliases),
		contactPerson:   stringField(rec, contactPersonAliases),
		inquiryDate:     e.dateField(rec, inquiryDateAliases),
		valuationMethod: stringField(rec, valuationMethodAliases),
		mailingStatus:   stringField(rec, mailingStatusAliases),
		unreachable:     stringField(rec, unreachableAliases),
		pinrich:         stringField(rec, pinrichAliases),
	}

	if strings.EqualFold(v.visitAssignee, noAssigneeSentinel) {
		v.visitAssignee = ""
	}

	for _, aliases := range valuationAmountAliases {
		if numberPresent(rec, aliases) {
			v.hasValuation = true
			break
		}
	}

	return v
}

func (v view) isActive() bool {
	return strings.Contains(v.status, activeFollowUpMarker)
}

func (v view) hasContactInfo() bool {
	return v.contactMethod != "" || v.preferredTime != "" || v.contactPerson != ""
}

// preferredContact picks the single preference value a label may surface:
// contact method, then preferred time, then contact person.
func (v view) preferredContact() string {
	switch {
	case v.contactMethod != "":
		return v.contactMethod
	case v.preferredTime != "":
		return v.preferredTime
	default:
		return v.contactPerson
	}
}

// stringField returns the first non-empty string among the aliases.
// Whitespace-only values count as absent; non-string values are skipped.
func stringField(rec Record, aliases []string) string {
	for _, key := range aliases {
		raw, ok := rec[key]
		if !ok || raw == nil {
			continue
		}
		s, ok := raw.(string)
		if !ok {
			continue
		}
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

// dateField resolves the first present alias to a canonical date. The first
// alias carrying a non-empty value wins; when that value is malformed the
// attribute is absent rather than falling through to a stale secondary field.
func (e *Engine) dateField(rec Record, aliases []string) string {
	for _, key := range aliases {
		raw, ok := rec[key]
		if !ok || raw == nil {
			continue
		}
		if s, ok := raw.(string); ok && strings.TrimSpace(s) == "" {
			continue
		}
		return e.canonicalDate(raw)
	}
	return ""
}

// numberPresent reports whether any alias carries a numeric value. JSON
// decoding yields float64; rows imported from the spreadsheet sync may carry
// numeric strings instead.
func numberPresent(rec Record, aliases []string) bool {
	for _, key := range aliases {
		raw, ok := rec[key]
		if !ok || raw == nil {
			continue
		}
		switch n := raw.(type) {
		case float64, float32, int, int32, int64:
			return true
		case string:
			trimmed := strings.TrimSpace(n)
			if trimmed == "" {
				continue
			}
			if _, err := strconv.ParseFloat(strings.ReplaceAll(trimmed, ",", ""), 64); err == nil {
				return true
			}
		}
	}
	return false
}
