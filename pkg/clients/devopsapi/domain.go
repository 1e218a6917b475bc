package devopsapi

import (
	"time"
)

// Well-known work item field reference names
const (
	FieldTeamProject  = "System.TeamProject"
	FieldWorkItemType = "System.WorkItemType"
	FieldState        = "System.State"
	FieldTitle        = "System.Title"
	FieldChangedDate  = "System.ChangedDate"
	FieldCreatedDate  = "System.CreatedDate"
	FieldClosedDate   = "Microsoft.VSTS.Common.ClosedDate"
)

// Build represents a single build as returned by the builds listing
type Build struct {
	ID           int                 `json:"id"`
	BuildNumber  string              `json:"buildNumber,omitempty"`
	Status       string              `json:"status,omitempty"`
	Result       string              `json:"result,omitempty"`
	QueueTime    *time.Time          `json:"queueTime,omitempty"`
	StartTime    *time.Time          `json:"startTime,omitempty"`
	FinishTime   *time.Time          `json:"finishTime,omitempty"`
	SourceBranch string              `json:"sourceBranch,omitempty"`
	Deleted      bool                `json:"deleted,omitempty"`
	Definition   BuildDefinitionRef  `json:"definition"`
	Repository   RepositoryRef       `json:"repository"`
	Project      ProjectRef          `json:"project"`
}

// BuildDefinitionRef references the definition a build ran for
type BuildDefinitionRef struct {
	ID   int    `json:"id"`
	Name string `json:"name,omitempty"`
}

// RepositoryRef references the repository a build ran against
type RepositoryRef struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// ProjectRef references a team project
type ProjectRef struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

type buildsResponse struct {
	Count int     `json:"count"`
	Value []Build `json:"value"`
}

// Timeline is the nested list of execution records for one build
type Timeline struct {
	ID      string           `json:"id"`
	Records []TimelineRecord `json:"records"`
}

// TimelineRecord is a single stage, phase, job or task execution
type TimelineRecord struct {
	ID           string     `json:"id"`
	ParentID     string     `json:"parentId,omitempty"`
	Type         string     `json:"type"`
	Name         string     `json:"name"`
	StartTime    *time.Time `json:"startTime,omitempty"`
	FinishTime   *time.Time `json:"finishTime,omitempty"`
	Result       string     `json:"result,omitempty"`
	Order        int        `json:"order,omitempty"`
	ErrorCount   int        `json:"errorCount,omitempty"`
	WarningCount int        `json:"warningCount,omitempty"`
	WorkerName   string     `json:"workerName,omitempty"`
}

// CoverageData is one flavor of coverage statistics for a build
type CoverageData struct {
	CoverageStats []CoverageStats `json:"coverageStats"`
}

// CoverageStats holds covered/total counts for one coverage label
type CoverageStats struct {
	Label            string  `json:"label"`
	Total            int     `json:"total"`
	Covered          int     `json:"covered"`
	IsDeltaAvailable bool    `json:"isDeltaAvailable,omitempty"`
	Delta            float64 `json:"delta,omitempty"`
}

type codeCoverageResponse struct {
	CoverageData []CoverageData `json:"coverageData"`
}

// WorkItem is a full work item record including its dynamic field bag
type WorkItem struct {
	ID        int                      `json:"id"`
	Rev       int                      `json:"rev"`
	Fields    map[string]interface{}   `json:"fields"`
	Relations []WorkItemRelation       `json:"relations,omitempty"`
}

// WorkItemRelation is a typed link from one work item to another resource
type WorkItemRelation struct {
	Rel        string                 `json:"rel"`
	URL        string                 `json:"url"`
	Attributes map[string]interface{} `json:"attributes,omitempty"`
}

// WorkItemRevision is a single historical snapshot of a work item's fields
type WorkItemRevision struct {
	ID     int                    `json:"id"`
	Rev    int                    `json:"rev"`
	Fields map[string]interface{} `json:"fields"`
}

type workItemsResponse struct {
	Count int        `json:"count"`
	Value []WorkItem `json:"value"`
}

type workItemRevisionsResponse struct {
	Count int                `json:"count"`
	Value []WorkItemRevision `json:"value"`
}

// WorkItemQuery is the structured filter turned into a wiql query;
// callers never pass free-text wiql
type WorkItemQuery struct {
	WorkItemTypes []string
	ChangedSince  time.Time
}

type wiqlRequest struct {
	Query string `json:"query"`
}

type workItemReference struct {
	ID int `json:"id"`
}

type workItemQueryResponse struct {
	WorkItems []workItemReference `json:"workItems"`
}

// DeletedWorkItem references a work item in the recycle bin
type DeletedWorkItem struct {
	ID          int        `json:"id"`
	Name        string     `json:"name,omitempty"`
	DeletedDate *time.Time `json:"deletedDate,omitempty"`
}

type deletedWorkItemsResponse struct {
	Count int               `json:"count"`
	Value []DeletedWorkItem `json:"value"`
}

// StringField returns a field bag value as string, or empty when absent
func (wi *WorkItem) StringField(name string) string {
	return stringField(wi.Fields, name)
}

// TimeField returns a field bag value parsed as RFC3339 time, or nil
func (wi *WorkItem) TimeField(name string) *time.Time {
	return timeField(wi.Fields, name)
}

// StringField returns a field bag value as string, or empty when absent
func (r *WorkItemRevision) StringField(name string) string {
	return stringField(r.Fields, name)
}

// TimeField returns a field bag value parsed as RFC3339 time, or nil
func (r *WorkItemRevision) TimeField(name string) *time.Time {
	return timeField(r.Fields, name)
}

func stringField(fields map[string]interface{}, name string) string {
	if value, ok := fields[name].(string); ok {
		return value
	}
	return ""
}

func timeField(fields map[string]interface{}, name string) *time.Time {
	value, ok := fields[name].(string)
	if !ok {
		return nil
	}
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil
	}
	return &parsed
}
