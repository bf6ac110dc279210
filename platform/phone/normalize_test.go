package phone

import "testing"

func TestNormalizeE164(t *testing.T) {
	if got := NormalizeE164("090-1234-5678"); got != "+819012345678" {
		t.Fatalf("expected +819012345678, got %q", got)
	}
	if got := NormalizeE164("+819012345678"); got != "+819012345678" {
		t.Fatalf("already-normalized number changed: %q", got)
	}
	if got := NormalizeE164("  "); got != "" {
		t.Fatalf("blank input should stay blank, got %q", got)
	}
	if got := NormalizeE164("not a number"); got != "not a number" {
		t.Fatalf("unparseable input is returned trimmed, got %q", got)
	}
}
