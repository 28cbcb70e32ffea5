package interfaces

import "time"

// ITransitionMetrics observes transition attempts and poll cycles.
type ITransitionMetrics interface {
	ObserveTransition(action, outcome string, elapsed time.Duration)
	ObservePoll(outcome string, records int, skipped int)
}
