package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nawaf-Almansour/prep-manger/internal/apiclient"
)

func TestGroupByStatus(t *testing.T) {
	tasks := []Task{
		{Status: StatusScheduled},
		{Status: StatusLate},
		{Status: StatusOverdue},
		{Status: StatusCompleted},
		{Status: StatusInProgress},
		{Status: "cancelled"},
	}

	g := GroupByStatus(tasks)
	assert.Len(t, g.Late, 2)
	assert.Len(t, g.Scheduled, 1)
	assert.Len(t, g.InProgress, 1)
	assert.Len(t, g.Completed, 1)
	assert.Equal(t, 5, g.Total())
}

func TestTaskNamesFromPopulatedRefs(t *testing.T) {
	var task Task
	raw := `{"_id":"t1","productId":{"_id":"p1","name":"Hummus"},"assignedTo":{"_id":"u1","name":"Sara"},"status":"scheduled"}`
	require.NoError(t, json.Unmarshal([]byte(raw), &task))
	task.NormalizeID()

	assert.Equal(t, "t1", task.ID)
	assert.Equal(t, "p1", task.ProductID.ID)
	assert.Equal(t, "Hummus", task.Product())
	assert.Equal(t, "Sara", task.Assignee())

	task.ProductName = "Hummus Bowl"
	task.AssignedToName = "Sara K"
	assert.Equal(t, "Hummus Bowl", task.Product())
	assert.Equal(t, "Sara K", task.Assignee())
}

func TestCommentAuthor(t *testing.T) {
	c := Comment{UserID: apiclient.Ref{ID: "u1", Name: "Omar"}}
	assert.Equal(t, "Omar", c.Author())
	c.UserName = "Omar A"
	assert.Equal(t, "Omar A", c.Author())
}
