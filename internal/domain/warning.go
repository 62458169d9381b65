package domain

// Machine-readable classification of a scheduling warning. All warnings are
// uniformly advisory; the kind never blocks a booking from being saved.
type WarningKind string

const (
	WarnOverlap         WarningKind = "overlap"
	WarnPredecessorGap  WarningKind = "insufficient-predecessor-gap"
	WarnSuccessorGap    WarningKind = "insufficient-successor-gap"
	WarnMinorAdjustment WarningKind = "minor-adjustment"
	WarnVolumeAdvisory  WarningKind = "volume-advisory"
)

// A single advisory produced by the conflict check. Text is the literal
// user-facing sentence (HH:mm times, minute counts, site names) shown
// verbatim before the user decides to proceed.
type Warning struct {
	Kind WarningKind
	Text string
}
