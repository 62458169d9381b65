package schedule

import (
	"fmt"
	"math"
	"time"

	"concrete-booking-service/internal/domain"

	"github.com/shopspring/decimal"
)

// A day with this many deliveries gets the reload advisory regardless of
// total volume.
const busyDayEventCount = 3

// Gap timing between the proposed event and one committed neighbor.
type neighborGap struct {
	event      domain.DeliveryEvent
	gapMinutes int
	reqMinutes int
}

// DetectConflicts walks the assembled day and produces advisory warnings
// for the proposed event: direct time overlaps, insufficient travel/reload
// buffer against the immediate neighbors, small-shift hints, and a
// high-volume-day advisory.
//
// The result is deterministic and order-stable for identical inputs. The
// check never fails and never blocks a save; a proposed index that cannot
// be resolved yields an empty list (no neighbors, nothing to report).
func DetectConflicts(
	ordered []domain.DeliveryEvent,
	proposedIdx int,
	sites map[domain.SiteID]domain.SiteLocation,
	cfg CheckConfig,
) []domain.Warning {
	if proposedIdx < 0 || proposedIdx >= len(ordered) || !ordered[proposedIdx].Proposed {
		return []domain.Warning{}
	}

	proposed := ordered[proposedIdx]
	warnings := make([]domain.Warning, 0, 4)

	// Direct interval overlaps against every other booking of the day.
	for i, e := range ordered {
		if i == proposedIdx {
			continue
		}
		if proposed.Start.Before(e.End()) && proposed.End().After(e.Start) {
			warnings = append(warnings, domain.Warning{
				Kind: domain.WarnOverlap,
				Text: fmt.Sprintf(
					"This delivery overlaps an existing booking at %s scheduled %s to %s.",
					siteName(sites, e.Site), hhmm(e.Start), hhmm(e.End()),
				),
			})
		}
	}

	var prev, next *neighborGap
	if proposedIdx > 0 {
		prev = gapBefore(ordered[proposedIdx-1], proposed, sites, cfg)
		warnings = append(warnings, predecessorWarnings(*prev, sites)...)
	}
	if proposedIdx < len(ordered)-1 {
		next = gapAfter(proposed, ordered[proposedIdx+1], sites, cfg)
		warnings = append(warnings, successorWarnings(*next, proposed, sites)...)
	}

	// Soft hints for small shortfalls, in addition to the hard warnings
	// above. The original booking screen emitted both for the same
	// neighbor; that behavior is kept.
	if prev != nil {
		if short := prev.reqMinutes - prev.gapMinutes; prev.gapMinutes >= 0 && short > 0 && short <= cfg.SmallShiftMinutes {
			warnings = append(warnings, domain.Warning{
				Kind: domain.WarnMinorAdjustment,
				Text: fmt.Sprintf(
					"Shifting this delivery or the earlier booking at %s by just %d min would leave enough turnaround time.",
					siteName(sites, prev.event.Site), short,
				),
			})
		}
	}
	if next != nil {
		if short := next.reqMinutes - next.gapMinutes; next.gapMinutes >= 0 && short > 0 && short <= cfg.SmallShiftMinutes {
			warnings = append(warnings, domain.Warning{
				Kind: domain.WarnMinorAdjustment,
				Text: fmt.Sprintf(
					"Shifting this delivery or the later booking at %s by just %d min would leave enough turnaround time.",
					siteName(sites, next.event.Site), short,
				),
			})
		}
	}

	// One generic reload advisory for busy days, independent of which pair
	// tripped the checks above.
	total := decimal.Zero
	for _, e := range ordered {
		total = total.Add(e.Quantity)
	}
	threshold := cfg.TruckCapacityM3.Mul(decimal.NewFromInt(cfg.DayVolumeMultiplier))
	if len(ordered) >= busyDayEventCount || total.GreaterThan(threshold) {
		warnings = append(warnings, domain.Warning{
			Kind: domain.WarnVolumeAdvisory,
			Text: fmt.Sprintf(
				"%d deliveries totalling %s m3 are booked for this day; allow about %d min at the quarry to reload between runs.",
				len(ordered), total.String(), cfg.QuarryReloadMinutes,
			),
		})
	}

	return warnings
}

// CheckDay assembles the day's sequence and runs conflict detection for the
// proposed event. This is the single public entry point of the core check:
// a pure function from (committed events, proposed event, site directory)
// to advisory warnings.
func CheckDay(
	existing []domain.DeliveryEvent,
	proposed domain.DeliveryEvent,
	sites map[domain.SiteID]domain.SiteLocation,
	cfg CheckConfig,
) []domain.Warning {
	ordered, idx := AssembleDay(existing, proposed)
	return DetectConflicts(ordered, idx, sites, cfg)
}

// Buffer needed between two consecutive events: travel between their sites,
// plus a quarry reload whenever the truck switches site.
func requiredBufferMinutes(from, to domain.SiteID, sites map[domain.SiteID]domain.SiteLocation, cfg CheckConfig) int {
	required := TravelMinutes(from, to, sites, cfg)
	if from != to {
		required += cfg.QuarryReloadMinutes
	}
	return required
}

func gapBefore(prev, proposed domain.DeliveryEvent, sites map[domain.SiteID]domain.SiteLocation, cfg CheckConfig) *neighborGap {
	return &neighborGap{
		event:      prev,
		gapMinutes: minutesBetween(prev.End(), proposed.Start),
		reqMinutes: requiredBufferMinutes(prev.Site, proposed.Site, sites, cfg),
	}
}

func gapAfter(proposed, next domain.DeliveryEvent, sites map[domain.SiteID]domain.SiteLocation, cfg CheckConfig) *neighborGap {
	return &neighborGap{
		event:      next,
		gapMinutes: minutesBetween(proposed.End(), next.Start),
		reqMinutes: requiredBufferMinutes(proposed.Site, next.Site, sites, cfg),
	}
}

func predecessorWarnings(g neighborGap, sites map[domain.SiteID]domain.SiteLocation) []domain.Warning {
	prev := g.event
	suggest := prev.End().Add(time.Duration(g.reqMinutes) * time.Minute)

	switch {
	case g.gapMinutes < 0:
		return []domain.Warning{{
			Kind: domain.WarnPredecessorGap,
			Text: fmt.Sprintf(
				"This delivery starts before the previous one at %s finishes at %s. Consider starting at %s or later.",
				siteName(sites, prev.Site), hhmm(prev.End()), hhmm(suggest),
			),
		}}
	case g.gapMinutes < g.reqMinutes:
		return []domain.Warning{{
			Kind: domain.WarnPredecessorGap,
			Text: fmt.Sprintf(
				"Only %d min after the previous delivery at %s ends at %s, but about %d min are needed for travel and quarry reload (%d min short). Consider starting at %s or later.",
				g.gapMinutes, siteName(sites, prev.Site), hhmm(prev.End()),
				g.reqMinutes, g.reqMinutes-g.gapMinutes, hhmm(suggest),
			),
		}}
	}
	return nil
}

func successorWarnings(g neighborGap, proposed domain.DeliveryEvent, sites map[domain.SiteID]domain.SiteLocation) []domain.Warning {
	next := g.event
	suggest := next.Start.Add(-time.Duration(g.reqMinutes+proposed.DurationMinutes) * time.Minute)

	switch {
	case g.gapMinutes < 0:
		return []domain.Warning{{
			Kind: domain.WarnSuccessorGap,
			Text: fmt.Sprintf(
				"This delivery runs past the start of the next one at %s at %s. Consider starting by %s instead.",
				siteName(sites, next.Site), hhmm(next.Start), hhmm(suggest),
			),
		}}
	case g.gapMinutes < g.reqMinutes:
		return []domain.Warning{{
			Kind: domain.WarnSuccessorGap,
			Text: fmt.Sprintf(
				"Only %d min before the next delivery at %s starts at %s, but about %d min are needed for travel and quarry reload (%d min short). Consider starting by %s instead.",
				g.gapMinutes, siteName(sites, next.Site), hhmm(next.Start),
				g.reqMinutes, g.reqMinutes-g.gapMinutes, hhmm(suggest),
			),
		}}
	}
	return nil
}

func minutesBetween(from, to time.Time) int {
	return int(math.Round(to.Sub(from).Minutes()))
}

func hhmm(t time.Time) string {
	return t.Format("15:04")
}

func siteName(sites map[domain.SiteID]domain.SiteLocation, id domain.SiteID) string {
	if id == "" {
		return "an unrecorded site"
	}
	if s, ok := sites[id]; ok {
		return s.DisplayName()
	}
	return string(id)
}
