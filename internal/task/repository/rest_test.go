package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nawaf-Almansour/prep-manger/internal/apiclient/apitest"
	"github.com/Nawaf-Almansour/prep-manger/internal/task/domain"
)

func TestListEndpoints(t *testing.T) {
	list := apitest.Reply{Body: `{"success":true,"data":{"tasks":[{"_id":"t1","status":"scheduled"}],"count":1}}`}
	api := apitest.New(t, map[string]apitest.Reply{
		"GET /tasks/all":         list,
		"GET /tasks/today":       list,
		"GET /tasks/my-tasks":    list,
		"GET /tasks/status/late": list,
		"GET /tasks/product/p1":  list,
	})
	repo := NewRESTTaskRepositoryWithTracing(api.Client())
	ctx := context.Background()

	loads := map[string]func() ([]domain.Task, error){
		"all":     func() ([]domain.Task, error) { return repo.All(ctx) },
		"today":   func() ([]domain.Task, error) { return repo.Today(ctx) },
		"mine":    func() ([]domain.Task, error) { return repo.Mine(ctx) },
		"status":  func() ([]domain.Task, error) { return repo.ByStatus(ctx, "late") },
		"product": func() ([]domain.Task, error) { return repo.ByProduct(ctx, "p1") },
	}
	for name, load := range loads {
		t.Run(name, func(t *testing.T) {
			tasks, err := load()
			require.NoError(t, err)
			require.Len(t, tasks, 1)
			assert.Equal(t, "t1", tasks[0].ID)
		})
	}
}

func TestTransitions(t *testing.T) {
	one := apitest.Reply{Body: `{"data":{"task":{"_id":"t1","status":"in_progress"}}}`}
	api := apitest.New(t, map[string]apitest.Reply{
		"PATCH /tasks/t1/start":    one,
		"PATCH /tasks/t1/complete": one,
		"PATCH /tasks/t1/assign":   one,
		"PATCH /tasks/t1/late":     one,
		"PATCH /tasks/t1/usage":    one,
	})
	repo := NewRESTTaskRepository(api.Client())
	ctx := context.Background()

	_, err := repo.Start(ctx, "t1")
	require.NoError(t, err)
	_, err = repo.Complete(ctx, "t1", domain.CompleteForm{Notes: "done"})
	require.NoError(t, err)
	_, err = repo.Assign(ctx, "t1", domain.AssignForm{UserID: "u1", UserName: "Sara"})
	require.NoError(t, err)
	_, err = repo.MarkLate(ctx, "t1")
	require.NoError(t, err)
	_, err = repo.UpdateUsage(ctx, "t1", domain.UsageForm{InventoryUsage: []domain.UsageLine{{ItemID: "i1", QuantityUsed: 2, Unit: "kg"}}})
	require.NoError(t, err)

	calls := api.Calls()
	require.Len(t, calls, 5)
	assert.Empty(t, calls[0].Body)
	assert.Equal(t, "done", calls[1].JSON(t)["notes"])
	assert.Equal(t, "Sara", calls[2].JSON(t)["userName"])
	usage := calls[4].JSON(t)["inventoryUsage"].([]any)
	assert.Equal(t, "i1", usage[0].(map[string]any)["itemId"])
}

func TestCreateTask(t *testing.T) {
	api := apitest.New(t, map[string]apitest.Reply{"POST /tasks": {Status: 201, Body: `{"data":{"task":{"_id":"t9"}}}`}})
	repo := NewRESTTaskRepository(api.Client())

	task, err := repo.Create(context.Background(), domain.CreateTaskRequest{
		ProductID: "p1", ScheduledAt: "2026-10-19T07:00:00Z", TaskType: "daily_recurring", Priority: "medium", AssignmentType: "any_team_member",
	})
	require.NoError(t, err)
	assert.Equal(t, "t9", task.ID)

	body := api.Calls()[0].JSON(t)
	assert.Equal(t, "2026-10-19T07:00:00Z", body["scheduledAt"])
	assert.NotContains(t, body, "assignedTo")
	assert.NotContains(t, body, "notes")
}

func TestComments(t *testing.T) {
	api := apitest.New(t, map[string]apitest.Reply{
		"GET /tasks/t1/comments":  {Body: `{"success":true,"data":[{"_id":"c1","comment":"Needs more salt","userId":{"_id":"u1","name":"Omar"}}]}`},
		"POST /tasks/t1/comments": {Body: `{"data":{"comment":{"_id":"c2","comment":"ok"}}}`},
		"PUT /comments/c1":        {Body: `{"data":{"_id":"c1","comment":"edited"}}`},
		"DELETE /comments/c1":     {Body: `{"success":true}`},
	})
	repo := NewRESTCommentRepositoryWithTracing(api.Client())
	ctx := context.Background()

	comments, err := repo.List(ctx, "t1")
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "Omar", comments[0].Author())

	c, err := repo.Add(ctx, "t1", domain.CommentForm{Comment: "ok", Attachments: []string{"https://img/1.png"}})
	require.NoError(t, err)
	assert.Equal(t, "c2", c.ID)

	c, err = repo.Update(ctx, "c1", domain.CommentForm{Comment: "edited", Attachments: []string{"x"}})
	require.NoError(t, err)
	assert.Equal(t, "edited", c.Comment)
	assert.NotContains(t, api.Calls()[2].JSON(t), "attachments")

	require.NoError(t, repo.Delete(ctx, "c1"))
}
