package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	taskdomain "github.com/Nawaf-Almansour/prep-manger/internal/task/domain"
)

func tasks(statuses ...string) []taskdomain.Task {
	out := make([]taskdomain.Task, len(statuses))
	for i, s := range statuses {
		out[i] = taskdomain.Task{Status: s}
	}
	return out
}

func TestRatesFallback(t *testing.T) {
	tests := []struct {
		name       string
		statuses   []string
		completion int
		onTime     int
	}{
		{"no tasks", nil, 0, 100},
		{"one of three done", []string{"completed", "scheduled", "in_progress"}, 33, 100},
		{"two of three done", []string{"completed", "completed", "scheduled"}, 67, 100},
		{"overdue", []string{"overdue", "completed", "scheduled", "late"}, 25, 75},
		{"all overdue", []string{"overdue", "overdue"}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := StatsFor(tasks(tt.statuses...))
			r := RatesFor(stats, nil)
			assert.Equal(t, len(tt.statuses), r.TotalTasks)
			assert.Equal(t, tt.completion, r.CompletionRate)
			assert.Equal(t, tt.onTime, r.OnTimeRate)
		})
	}
}

func TestRatesPreferAnalytics(t *testing.T) {
	count, completion, onTime, hours := 12, 83.4, 91.6, 1.5
	a := &Analytics{
		TotalTasks:     &CountMetric{Count: &count},
		CompletionRate: &PercentMetric{Percent: &completion},
		OnTimeTasks:    &PercentMetric{Percent: &onTime},
		AvgPrepTime:    &HoursMetric{Hours: &hours},
	}

	r := RatesFor(StatsFor(tasks("overdue")), a)
	assert.Equal(t, Rates{TotalTasks: 12, CompletionRate: 83, OnTimeRate: 92, AvgPrepHours: 1.5}, r)
}

func TestRatesPartialAnalytics(t *testing.T) {
	completion := 50.0
	a := &Analytics{CompletionRate: &PercentMetric{Percent: &completion}, OnTimeTasks: &PercentMetric{}}

	r := RatesFor(StatsFor(tasks("overdue", "scheduled")), a)
	assert.Equal(t, 2, r.TotalTasks)
	assert.Equal(t, 50, r.CompletionRate)
	assert.Equal(t, 50, r.OnTimeRate)
}

func TestStatsFor(t *testing.T) {
	s := StatsFor(tasks("scheduled", "scheduled", "in_progress", "completed", "late", "overdue"))
	assert.Equal(t, TaskStats{Total: 6, Scheduled: 2, InProgress: 1, Completed: 1, Late: 1, Overdue: 1}, s)
}

func TestTrendDirection(t *testing.T) {
	var a Analytics
	require.NoError(t, json.Unmarshal([]byte(`{
		"totalTasks": {"count": 12, "changePercent": -5},
		"completionRate": {"percent": 80, "changePercent": 3},
		"avgPrepTime": {"hours": 1.5, "changePercent": -12}
	}`), &a))

	assert.False(t, a.TotalTasks.Positive())
	assert.Equal(t, -5.0, a.TotalTasks.Change())
	assert.True(t, a.CompletionRate.Positive())

	// Prep time going down is an improvement.
	assert.True(t, a.AvgPrepTime.LowerIsBetter)
	assert.True(t, a.AvgPrepTime.Positive())
	assert.Equal(t, 12.0, a.AvgPrepTime.Change())
	require.NotNil(t, a.AvgPrepTime.Hours)
	assert.Equal(t, 1.5, *a.AvgPrepTime.Hours)

	slower := Trend{ChangePercent: 8, LowerIsBetter: true}
	assert.False(t, slower.Positive())
	assert.Equal(t, 8.0, slower.Change())
}
