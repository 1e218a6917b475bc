package devopsapi

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuildWiql(t *testing.T) {

	t.Run("FiltersOnWorkItemTypesAndChangedDate", func(t *testing.T) {

		query := WorkItemQuery{
			WorkItemTypes: []string{"User Story", "Bug"},
			ChangedSince:  time.Date(2023, 4, 15, 10, 30, 0, 0, time.UTC),
		}

		wiql := buildWiql(query)

		assert.Equal(t, "SELECT [System.Id] FROM workitems WHERE [System.WorkItemType] IN ('User Story', 'Bug') AND [System.ChangedDate] >= '2023-04-15T10:30:00Z' ORDER BY [System.ChangedDate] ASC", wiql)
	})

	t.Run("EscapesSingleQuotesInWorkItemTypes", func(t *testing.T) {

		query := WorkItemQuery{
			WorkItemTypes: []string{"Customer's Request"},
			ChangedSince:  time.Date(2023, 4, 15, 0, 0, 0, 0, time.UTC),
		}

		wiql := buildWiql(query)

		assert.Contains(t, wiql, "'Customer''s Request'")
	})
}

func TestJoinIDs(t *testing.T) {

	t.Run("JoinsIDsWithCommas", func(t *testing.T) {

		assert.Equal(t, "1,2,35", joinIDs([]int{1, 2, 35}))
	})
}

func TestWorkItemFieldAccessors(t *testing.T) {

	t.Run("ReturnsStringFieldWhenPresent", func(t *testing.T) {

		workItem := WorkItem{
			Fields: map[string]interface{}{
				FieldState: "Active",
			},
		}

		assert.Equal(t, "Active", workItem.StringField(FieldState))
	})

	t.Run("ReturnsEmptyStringForMissingField", func(t *testing.T) {

		workItem := WorkItem{
			Fields: map[string]interface{}{},
		}

		assert.Equal(t, "", workItem.StringField(FieldState))
	})

	t.Run("ParsesTimeFieldAsRFC3339", func(t *testing.T) {

		workItem := WorkItem{
			Fields: map[string]interface{}{
				FieldChangedDate: "2023-04-15T10:30:00Z",
			},
		}

		changedDate := workItem.TimeField(FieldChangedDate)

		assert.NotNil(t, changedDate)
		assert.Equal(t, time.Date(2023, 4, 15, 10, 30, 0, 0, time.UTC), *changedDate)
	})

	t.Run("ReturnsNilForUnparsableTimeField", func(t *testing.T) {

		workItem := WorkItem{
			Fields: map[string]interface{}{
				FieldChangedDate: "not a date",
			},
		}

		assert.Nil(t, workItem.TimeField(FieldChangedDate))
	})
}
