package domain

import (
	"context"
	"encoding/json"
	"math"

	inventorydomain "github.com/Nawaf-Almansour/prep-manger/internal/inventory/domain"
	taskdomain "github.com/Nawaf-Almansour/prep-manger/internal/task/domain"
)

// Trend is the period-over-period change the analytics endpoint attaches to
// each metric.
type Trend struct {
	ChangePercent float64 `json:"changePercent"`
	ChangeLabel   string  `json:"changeLabel,omitempty"`
	// LowerIsBetter flips Positive and makes Change unsigned.
	LowerIsBetter bool `json:"-"`
}

// Positive reports whether the change is an improvement.
func (t Trend) Positive() bool {
	if t.LowerIsBetter {
		return t.ChangePercent <= 0
	}
	return t.ChangePercent >= 0
}

// Change is the percentage to display.
func (t Trend) Change() float64 {
	if t.LowerIsBetter {
		return math.Abs(t.ChangePercent)
	}
	return t.ChangePercent
}

type CountMetric struct {
	Count *int `json:"count"`
	Trend
}

type PercentMetric struct {
	Percent *float64 `json:"percent"`
	Trend
}

// HoursMetric is a duration, so a drop is an improvement.
type HoursMetric struct {
	Hours *float64 `json:"hours"`
	Trend
}

func (m *HoursMetric) UnmarshalJSON(data []byte) error {
	type plain HoursMetric
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	p.LowerIsBetter = true
	*m = HoursMetric(p)
	return nil
}

// Analytics is the optional payload of GET /reports/dashboard. Any metric may
// be missing.
type Analytics struct {
	TotalTasks     *CountMetric   `json:"totalTasks,omitempty"`
	CompletionRate *PercentMetric `json:"completionRate,omitempty"`
	AvgPrepTime    *HoursMetric   `json:"avgPrepTime,omitempty"`
	OnTimeTasks    *PercentMetric `json:"onTimeTasks,omitempty"`
}

// TaskStats counts tasks by status.
type TaskStats struct {
	Total      int
	Scheduled  int
	InProgress int
	Completed  int
	Late       int
	Overdue    int
}

func StatsFor(tasks []taskdomain.Task) TaskStats {
	s := TaskStats{Total: len(tasks)}
	for _, t := range tasks {
		switch t.Status {
		case taskdomain.StatusScheduled:
			s.Scheduled++
		case taskdomain.StatusInProgress:
			s.InProgress++
		case taskdomain.StatusCompleted:
			s.Completed++
		case taskdomain.StatusLate:
			s.Late++
		case taskdomain.StatusOverdue:
			s.Overdue++
		}
	}
	return s
}

// Rates are the headline numbers, taken from analytics when present and
// computed from the task counts otherwise.
type Rates struct {
	TotalTasks     int
	CompletionRate int
	OnTimeRate     int
	AvgPrepHours   float64
}

func RatesFor(stats TaskStats, a *Analytics) Rates {
	total := max(stats.Total, 1)
	r := Rates{
		TotalTasks:     stats.Total,
		CompletionRate: percent(stats.Completed, total),
		OnTimeRate:     100 - percent(stats.Overdue, total),
	}
	if a == nil {
		return r
	}
	if a.TotalTasks != nil && a.TotalTasks.Count != nil {
		r.TotalTasks = *a.TotalTasks.Count
	}
	if a.CompletionRate != nil && a.CompletionRate.Percent != nil {
		r.CompletionRate = int(math.Round(*a.CompletionRate.Percent))
	}
	if a.OnTimeTasks != nil && a.OnTimeTasks.Percent != nil {
		r.OnTimeRate = int(math.Round(*a.OnTimeTasks.Percent))
	}
	if a.AvgPrepTime != nil && a.AvgPrepTime.Hours != nil {
		r.AvgPrepHours = *a.AvgPrepTime.Hours
	}
	return r
}

func percent(n, total int) int {
	return int(math.Round(float64(n) / float64(total) * 100))
}

// Overview is everything the dashboard page shows.
type Overview struct {
	Stats     TaskStats
	Rates     Rates
	Analytics *Analytics
	Today     []taskdomain.Task
	Board     taskdomain.StatusGroups
	LowStock  []inventorydomain.Item
}

// Report backs the reports page.
type Report struct {
	Stats     TaskStats
	Rates     Rates
	Analytics *Analytics
}

// ReportsRepository reads server-side analytics.
type ReportsRepository interface {
	Dashboard(ctx context.Context) (*Analytics, error)
}
