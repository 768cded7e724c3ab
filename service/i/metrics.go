package i

import (
	"time"

	dmn "github.com/beka-birhanu/vinom-explorer/domain"
)

// TrialRecorder receives the outcome of runs for monitoring.
type TrialRecorder interface {
	ObserveTrial(trial *dmn.Trial, elapsed time.Duration)
	ObserveBatch(summary *dmn.BatchSummary, elapsed time.Duration)
	ObserveFailure(mapName string)
}
