package sonarapi

import "time"

// Measure is a single metric value for a component
type Measure struct {
	Metric string `json:"metric"`
	Value  string `json:"value,omitempty"`
}

// ComponentMeasures holds the current measures for one project
type ComponentMeasures struct {
	Key      string    `json:"key"`
	Name     string    `json:"name,omitempty"`
	Measures []Measure `json:"measures"`
}

type measuresResponse struct {
	Component ComponentMeasures `json:"component"`
}

// Analysis is one historical analysis of a project
type Analysis struct {
	Key            string          `json:"key"`
	Date           time.Time       `json:"date"`
	ProjectVersion string          `json:"projectVersion,omitempty"`
	Events         []AnalysisEvent `json:"events,omitempty"`
}

// AnalysisEvent marks a notable event attached to an analysis
type AnalysisEvent struct {
	Category string `json:"category"`
	Name     string `json:"name"`
}

type paging struct {
	PageIndex int `json:"pageIndex"`
	PageSize  int `json:"pageSize"`
	Total     int `json:"total"`
}

type analysesResponse struct {
	Paging   paging     `json:"paging"`
	Analyses []Analysis `json:"analyses"`
}

// QualityGate is the current quality gate verdict for a project
type QualityGate struct {
	Status     string                 `json:"status"`
	Conditions []QualityGateCondition `json:"conditions,omitempty"`
}

// QualityGateCondition is a single gate condition and its actual value
type QualityGateCondition struct {
	Status         string `json:"status"`
	MetricKey      string `json:"metricKey"`
	Comparator     string `json:"comparator,omitempty"`
	ErrorThreshold string `json:"errorThreshold,omitempty"`
	ActualValue    string `json:"actualValue,omitempty"`
}

type qualityGateResponse struct {
	ProjectStatus QualityGate `json:"projectStatus"`
}
