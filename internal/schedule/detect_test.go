package schedule

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"concrete-booking-service/internal/domain"

	"github.com/shopspring/decimal"
)

func event(id, site string, start time.Time, durationMinutes int, qtyM3 int64) domain.DeliveryEvent {
	return domain.DeliveryEvent{
		ID:              domain.BookingID(id),
		Site:            domain.SiteID(site),
		Start:           start,
		DurationMinutes: durationMinutes,
		Quantity:        decimal.NewFromInt(qtyM3),
	}
}

func kinds(warnings []domain.Warning) []domain.WarningKind {
	out := make([]domain.WarningKind, 0, len(warnings))
	for _, w := range warnings {
		out = append(out, w.Kind)
	}
	return out
}

func TestCheckDayOverlapWarning(t *testing.T) {
	sites := siteDirectory()
	cfg := DefaultCheckConfig()

	existing := []domain.DeliveryEvent{event("b1", "s1", at(9, 0), 60, 4)}
	proposed := event("new", "s1", at(9, 30), 30, 2)

	warnings := CheckDay(existing, proposed, sites, cfg)

	if len(warnings) != 2 {
		t.Fatalf("expected 2 warnings, got %d: %v", len(warnings), warnings)
	}
	if warnings[0].Kind != domain.WarnOverlap {
		t.Fatalf("first warning kind = %s, want %s", warnings[0].Kind, domain.WarnOverlap)
	}
	if !strings.Contains(warnings[0].Text, "09:00") || !strings.Contains(warnings[0].Text, "10:00") {
		t.Fatalf("overlap warning does not cite the 09:00 to 10:00 window: %q", warnings[0].Text)
	}
	// The proposed event also starts before its predecessor ends.
	if warnings[1].Kind != domain.WarnPredecessorGap {
		t.Fatalf("second warning kind = %s, want %s", warnings[1].Kind, domain.WarnPredecessorGap)
	}
}

func TestCheckDayBackToBackSameSiteIsClean(t *testing.T) {
	sites := siteDirectory()
	cfg := DefaultCheckConfig()

	// Ends exactly when the proposal starts, same site: zero required
	// buffer, zero gap, no warning.
	existing := []domain.DeliveryEvent{event("b1", "s1", at(9, 0), 60, 4)}
	proposed := event("new", "s1", at(10, 0), 30, 2)

	warnings := CheckDay(existing, proposed, sites, cfg)
	if len(warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", warnings)
	}
}

func TestCheckDayPredecessorShortfall(t *testing.T) {
	sites := siteDirectory()
	cfg := DefaultCheckConfig()

	// s1 -> s2 travel is 12 min plus 45 min quarry reload: 57 min needed,
	// only 10 available.
	existing := []domain.DeliveryEvent{event("b1", "s1", at(9, 0), 60, 4)}
	proposed := event("new", "s2", at(10, 10), 60, 2)

	warnings := CheckDay(existing, proposed, sites, cfg)

	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d: %v", len(warnings), warnings)
	}
	w := warnings[0]
	if w.Kind != domain.WarnPredecessorGap {
		t.Fatalf("warning kind = %s, want %s", w.Kind, domain.WarnPredecessorGap)
	}
	for _, fragment := range []string{"Only 10 min", "57 min", "47 min short", "10:57"} {
		if !strings.Contains(w.Text, fragment) {
			t.Fatalf("warning %q missing %q", w.Text, fragment)
		}
	}
}

func TestCheckDaySmallShortfallAddsHint(t *testing.T) {
	sites := siteDirectory()
	cfg := DefaultCheckConfig()

	// 40 min gap against 57 required: 17 min short, small enough for the
	// soft shift hint on top of the hard warning.
	existing := []domain.DeliveryEvent{event("b1", "s1", at(9, 0), 60, 4)}
	proposed := event("new", "s2", at(10, 40), 60, 2)

	warnings := CheckDay(existing, proposed, sites, cfg)

	want := []domain.WarningKind{domain.WarnPredecessorGap, domain.WarnMinorAdjustment}
	if !reflect.DeepEqual(kinds(warnings), want) {
		t.Fatalf("warning kinds = %v, want %v", kinds(warnings), want)
	}
	if !strings.Contains(warnings[1].Text, "17 min") {
		t.Fatalf("hint %q does not name the 17 min shift", warnings[1].Text)
	}
}

func TestCheckDaySuccessorShortfall(t *testing.T) {
	sites := siteDirectory()
	cfg := DefaultCheckConfig()

	// Proposed run ends at 09:00; the next delivery at the other site
	// starts 09:10. Suggested start moves back by required plus duration.
	existing := []domain.DeliveryEvent{event("b1", "s1", at(9, 10), 60, 4)}
	proposed := event("new", "s2", at(8, 0), 60, 2)

	warnings := CheckDay(existing, proposed, sites, cfg)

	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d: %v", len(warnings), warnings)
	}
	w := warnings[0]
	if w.Kind != domain.WarnSuccessorGap {
		t.Fatalf("warning kind = %s, want %s", w.Kind, domain.WarnSuccessorGap)
	}
	for _, fragment := range []string{"Only 10 min", "57 min", "47 min short", "07:13"} {
		if !strings.Contains(w.Text, fragment) {
			t.Fatalf("warning %q missing %q", w.Text, fragment)
		}
	}
}

func TestCheckDayMissingCoordinatesUseDefaultTravel(t *testing.T) {
	sites := siteDirectory()
	cfg := DefaultCheckConfig()

	// s3 has no coordinates: 30 min default travel plus 45 min reload.
	existing := []domain.DeliveryEvent{event("b1", "s3", at(9, 0), 60, 4)}
	proposed := event("new", "s1", at(10, 20), 60, 2)

	warnings := CheckDay(existing, proposed, sites, cfg)

	if len(warnings) != 1 || warnings[0].Kind != domain.WarnPredecessorGap {
		t.Fatalf("expected one predecessor warning, got %v", warnings)
	}
	if !strings.Contains(warnings[0].Text, "75 min") {
		t.Fatalf("warning %q does not use the 75 min default-based requirement", warnings[0].Text)
	}
}

func TestCheckDayVolumeAdvisoryByCount(t *testing.T) {
	sites := siteDirectory()
	cfg := DefaultCheckConfig()

	// Three deliveries, 10 m3 total: under the volume threshold, but the
	// count alone triggers the advisory.
	existing := []domain.DeliveryEvent{
		event("b1", "s1", at(8, 0), 60, 4),
		event("b2", "s1", at(12, 0), 60, 4),
	}
	proposed := event("new", "s1", at(10, 0), 30, 2)

	warnings := CheckDay(existing, proposed, sites, cfg)

	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d: %v", len(warnings), warnings)
	}
	w := warnings[0]
	if w.Kind != domain.WarnVolumeAdvisory {
		t.Fatalf("warning kind = %s, want %s", w.Kind, domain.WarnVolumeAdvisory)
	}
	for _, fragment := range []string{"3 deliveries", "10 m3", "45 min"} {
		if !strings.Contains(w.Text, fragment) {
			t.Fatalf("advisory %q missing %q", w.Text, fragment)
		}
	}
}

func TestCheckDayVolumeAdvisoryByQuantity(t *testing.T) {
	sites := siteDirectory()
	cfg := DefaultCheckConfig()

	// Two deliveries totalling 13 m3: over twice the 6 m3 drum capacity.
	existing := []domain.DeliveryEvent{event("b1", "s1", at(8, 0), 60, 7)}
	proposed := event("new", "s1", at(11, 0), 30, 6)

	warnings := CheckDay(existing, proposed, sites, cfg)

	if len(warnings) != 1 || warnings[0].Kind != domain.WarnVolumeAdvisory {
		t.Fatalf("expected one volume advisory, got %v", warnings)
	}
	if !strings.Contains(warnings[0].Text, "13 m3") {
		t.Fatalf("advisory %q does not cite the 13 m3 total", warnings[0].Text)
	}
}

func TestCheckDayLoneProposalIsClean(t *testing.T) {
	sites := siteDirectory()
	cfg := DefaultCheckConfig()

	proposed := event("new", "s1", at(9, 0), 60, 4)

	warnings := CheckDay(nil, proposed, sites, cfg)
	if len(warnings) != 0 {
		t.Fatalf("expected no warnings for a lone proposal, got %v", warnings)
	}
}

func TestCheckDayOverlapSymmetry(t *testing.T) {
	sites := siteDirectory()
	cfg := DefaultCheckConfig()

	a := event("a", "s1", at(9, 0), 60, 2)
	b := event("b", "s1", at(9, 30), 60, 2)

	withA := CheckDay([]domain.DeliveryEvent{b}, a, sites, cfg)
	withB := CheckDay([]domain.DeliveryEvent{a}, b, sites, cfg)

	assertOverlapCiting := func(warnings []domain.Warning, from, to string) {
		t.Helper()
		for _, w := range warnings {
			if w.Kind == domain.WarnOverlap && strings.Contains(w.Text, from) && strings.Contains(w.Text, to) {
				return
			}
		}
		t.Fatalf("no overlap warning citing %s to %s in %v", from, to, warnings)
	}

	assertOverlapCiting(withA, "09:30", "10:30")
	assertOverlapCiting(withB, "09:00", "10:00")
}

func TestCheckDayIdempotent(t *testing.T) {
	sites := siteDirectory()
	cfg := DefaultCheckConfig()

	existing := []domain.DeliveryEvent{event("b1", "s1", at(9, 0), 60, 4)}
	proposed := event("new", "s2", at(10, 40), 60, 2)

	first := CheckDay(existing, proposed, sites, cfg)
	second := CheckDay(existing, proposed, sites, cfg)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated check diverged:\n%v\n%v", first, second)
	}
}

func TestCheckDayEditDoesNotConflictWithItself(t *testing.T) {
	sites := siteDirectory()
	cfg := DefaultCheckConfig()

	existing := []domain.DeliveryEvent{event("bk-1", "s1", at(9, 0), 60, 4)}
	// Same record, shifted half an hour into its own old window.
	proposed := event("bk-1", "s1", at(9, 30), 60, 4)

	warnings := CheckDay(existing, proposed, sites, cfg)
	if len(warnings) != 0 {
		t.Fatalf("edited booking conflicted with itself: %v", warnings)
	}
}

func TestDetectConflictsUnresolvedProposedIndex(t *testing.T) {
	sites := siteDirectory()
	cfg := DefaultCheckConfig()

	events := []domain.DeliveryEvent{event("b1", "s1", at(9, 0), 60, 4)}

	if got := DetectConflicts(events, -1, sites, cfg); len(got) != 0 {
		t.Fatalf("expected no warnings for index -1, got %v", got)
	}
	if got := DetectConflicts(events, len(events), sites, cfg); len(got) != 0 {
		t.Fatalf("expected no warnings for out-of-range index, got %v", got)
	}
	// In range but not actually the proposed event.
	if got := DetectConflicts(events, 0, sites, cfg); len(got) != 0 {
		t.Fatalf("expected no warnings for unmarked event, got %v", got)
	}
}
