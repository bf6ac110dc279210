package classify

import (
	"reflect"
	"testing"
)

func fixtureLeads() []Record {
	return []Record{
		{
			"situationCompany": "follow-up in progress",
			"nextCallDate":     testToday,
			"inquiryDate":      "2025-06-01",
		},
		{
			"situationCompany": "follow-up in progress",
			"nextCallDate":     "2025/6/10",
			"contactMethod":    "phone",
		},
		{
			"situationCompany": "follow-up in progress",
			"visitAssignee":    "Y",
			"visitDate":        "2025-06-20",
			"nextCallDate":     testToday,
		},
		{
			"visitAssignee": "T",
			"visitDate":     "2025-06-01",
		},
		{
			"mailingStatus": "pending",
		},
		{
			"situationCompany": "contract signed",
			"nextCallDate":     testToday,
		},
		{
			"situationCompany": "follow-up in progress",
			"nextCallDate":     "not-a-date",
		},
		{
			"situation_company": "follow-up in progress",
			"next_call_date":    "2025-06-14",
		},
	}
}

func TestCountsMatchFilteredLengths(t *testing.T) {
	e := Default()
	leads := fixtureLeads()

	counts := e.CountsAt(leads, testToday)
	for _, c := range Categories() {
		filtered := e.FilterAt(leads, c, testToday)
		if counts[c] != len(filtered) {
			t.Fatalf("category %s: count %d != filtered length %d", c, counts[c], len(filtered))
		}
	}
	if counts[CategoryAll] != len(leads) {
		t.Fatalf("all count %d != %d", counts[CategoryAll], len(leads))
	}
}

func TestCountsIncludeEveryCategory(t *testing.T) {
	e := Default()

	counts := e.CountsAt(nil, testToday)
	if counts[CategoryAll] != 0 {
		t.Fatalf("empty collection should count 0, got %d", counts[CategoryAll])
	}
	for _, c := range Categories() {
		if _, ok := counts[c]; !ok {
			t.Fatalf("category %s missing from counts", c)
		}
	}
}

func TestFilterAllReturnsInputUnchanged(t *testing.T) {
	e := Default()
	leads := fixtureLeads()

	got := e.FilterAt(leads, CategoryAll, testToday)
	if len(got) != len(leads) {
		t.Fatalf("all must pass through, got %d of %d", len(got), len(leads))
	}
	for i := range leads {
		if !reflect.DeepEqual(got[i], leads[i]) {
			t.Fatalf("record %d changed identity", i)
		}
	}

	empty := e.FilterAt([]Record{}, CategoryAll, testToday)
	if len(empty) != 0 {
		t.Fatal("empty collection must pass through empty")
	}
}

func TestFilterPreservesInputOrder(t *testing.T) {
	e := Default()
	leads := fixtureLeads()

	filtered := e.FilterAt(leads, CategoryCallDueNoInfo, testToday)
	if len(filtered) != 2 {
		t.Fatalf("expected the two no-preference due leads, got %d", len(filtered))
	}
	if filtered[0]["inquiryDate"] != "2025-06-01" {
		t.Fatal("filtered output must keep input order")
	}
}

func TestClassificationIsDeterministic(t *testing.T) {
	e := Default()

	rec := fixtureLeads()[0]
	first := e.ClassifyAt(rec, testToday)
	second := e.ClassifyAt(rec, testToday)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated classification diverged: %v vs %v", first, second)
	}
}

func TestAggregationDoesNotMutateInput(t *testing.T) {
	e := Default()

	leads := fixtureLeads()
	before := make([]Record, len(leads))
	for i, rec := range leads {
		clone := make(Record, len(rec))
		for k, val := range rec {
			clone[k] = val
		}
		before[i] = clone
	}

	e.CountsAt(leads, testToday)
	for _, c := range Categories() {
		e.FilterAt(leads, c, testToday)
	}

	for i := range leads {
		if !reflect.DeepEqual(leads[i], before[i]) {
			t.Fatalf("record %d was mutated", i)
		}
	}
}
