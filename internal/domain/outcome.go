package domain

import "time"

// OutcomeKind classifies the result of syncing one (parent, file) pair
type OutcomeKind int

const (
	OutcomeCreated OutcomeKind = iota
	OutcomeSkipped
	OutcomeErrored
)

// String returns the string representation of the kind
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeCreated:
		return "created"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeErrored:
		return "errored"
	default:
		return "unknown"
	}
}

// ParseOutcomeKind is the inverse of OutcomeKind.String
func ParseOutcomeKind(s string) (OutcomeKind, bool) {
	switch s {
	case "created":
		return OutcomeCreated, true
	case "skipped":
		return OutcomeSkipped, true
	case "errored":
		return OutcomeErrored, true
	default:
		return 0, false
	}
}

// SyncOutcome is the result for a single (parent, file) pair
type SyncOutcome struct {
	Parent ParentPageRef
	File   SourceFile
	Kind   OutcomeKind
	URL    string // Set when Kind is OutcomeCreated
	Err    string // Set when Kind is OutcomeErrored
}

// Key identifies the pair in reports (e.g., "TASK_5/model_a.txt")
func (o SyncOutcome) Key() string {
	return o.Parent.Label() + "/" + o.File.Title
}

// DefaultSampleSize is the number of created-page URLs kept in a RunSummary
const DefaultSampleSize = 5

// RunSummary aggregates the outcomes of one run
type RunSummary struct {
	Created    int
	Skipped    int
	Errored    int
	SampleURLs []string
	Errors     []SyncOutcome
	StartedAt  time.Time
	FinishedAt time.Time
}

// Total returns the number of outcomes counted
func (s RunSummary) Total() int {
	return s.Created + s.Skipped + s.Errored
}

// Summarize counts outcomes and keeps the first sampleSize created URLs in
// processing order.
func Summarize(outcomes []SyncOutcome, sampleSize int) RunSummary {
	var s RunSummary
	for _, o := range outcomes {
		switch o.Kind {
		case OutcomeCreated:
			s.Created++
			if o.URL != "" && len(s.SampleURLs) < sampleSize {
				s.SampleURLs = append(s.SampleURLs, o.URL)
			}
		case OutcomeSkipped:
			s.Skipped++
		case OutcomeErrored:
			s.Errored++
			s.Errors = append(s.Errors, o)
		}
	}
	return s
}
