package database

import (
	"time"

	"github.com/rishumehrotra/engioscope-sub003/pkg/clients/devopsapi"
	"github.com/rishumehrotra/engioscope-sub003/pkg/clients/sonarapi"
)

// StateChange is one entry in a work item's collapsed state history
type StateChange struct {
	State string    `json:"state"`
	Date  time.Time `json:"date"`
}

// BuildTimeline pairs a build id with its fetched timeline for bulk upserts
type BuildTimeline struct {
	BuildID  int
	Timeline devopsapi.Timeline
}

// BuildCoverage pairs a build id with its coverage payload for bulk upserts
type BuildCoverage struct {
	BuildID  int
	Coverage []devopsapi.CoverageData
}

// MeasureSnapshot holds the sonar measures taken at one analysis date
type MeasureSnapshot struct {
	SonarProjectKey string
	MeasuredAt      time.Time
	Measures        []sonarapi.Measure
	QualityGate     string
}
