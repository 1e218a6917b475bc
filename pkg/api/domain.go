package api

// Scope is the two-level tenancy key every synced record carries; all
// queries and writes are bound to exactly one scope.
type Scope struct {
	Collection string
	Project    string
}

func (s Scope) String() string {
	return s.Collection + "/" + s.Project
}

// EntityKind identifies a synced entity type for watermark bookkeeping.
type EntityKind string

const (
	EntityKindBuild    EntityKind = "build"
	EntityKindWorkItem EntityKind = "workitem"
)
