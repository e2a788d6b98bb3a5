package derive

import (
	"testing"

	"github.com/awantha2003/portfolio-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(t *testing.T, value string) models.DateOnly {
	t.Helper()
	parsed, err := models.ParseDateOnly(value)
	require.NoError(t, err)
	return parsed
}

func dayPtr(t *testing.T, value string) *models.DateOnly {
	t.Helper()
	parsed := day(t, value)
	return &parsed
}

func TestIsTaskForDate(t *testing.T) {
	// 2025-06-15 was a Sunday
	today := day(t, "2025-06-15")

	tests := []struct {
		name string
		task models.Task
		want bool
	}{
		{
			name: "daily always matches",
			task: models.Task{Recurrence: models.RecurrenceDaily},
			want: true,
		},
		{
			name: "weekly matches same weekday",
			task: models.Task{Recurrence: models.RecurrenceWeekly, ScheduledDate: dayPtr(t, "2025-06-01")},
			want: true,
		},
		{
			name: "weekly other weekday",
			task: models.Task{Recurrence: models.RecurrenceWeekly, ScheduledDate: dayPtr(t, "2025-06-02")},
			want: false,
		},
		{
			name: "weekly without scheduled date",
			task: models.Task{Recurrence: models.RecurrenceWeekly},
			want: false,
		},
		{
			name: "monthly matches day of month",
			task: models.Task{Recurrence: models.RecurrenceMonthly, ScheduledDate: dayPtr(t, "2025-01-15")},
			want: true,
		},
		{
			name: "monthly other day",
			task: models.Task{Recurrence: models.RecurrenceMonthly, ScheduledDate: dayPtr(t, "2025-01-14")},
			want: false,
		},
		{
			name: "one-off matches scheduled date",
			task: models.Task{Recurrence: models.RecurrenceNone, ScheduledDate: dayPtr(t, "2025-06-15")},
			want: true,
		},
		{
			name: "one-off matches due date",
			task: models.Task{Recurrence: models.RecurrenceNone, DueDate: dayPtr(t, "2025-06-15")},
			want: true,
		},
		{
			name: "one-off no date match",
			task: models.Task{Recurrence: models.RecurrenceNone, ScheduledDate: dayPtr(t, "2025-06-10"), DueDate: dayPtr(t, "2025-06-20")},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTaskForDate(tt.task, today))
		})
	}
}

func TestIsOverdue(t *testing.T) {
	today := day(t, "2025-06-15")

	assert.True(t, IsOverdue(models.Task{Status: models.StatusTodo, DueDate: dayPtr(t, "2025-06-10")}, today))
	assert.False(t, IsOverdue(models.Task{Status: models.StatusCompleted, DueDate: dayPtr(t, "2025-06-10")}, today))
	assert.False(t, IsOverdue(models.Task{Status: models.StatusTodo, DueDate: dayPtr(t, "2025-06-15")}, today))
	assert.False(t, IsOverdue(models.Task{Status: models.StatusTodo}, today))
}

func TestIsCarriedForward(t *testing.T) {
	today := day(t, "2025-06-15")

	slipped := models.Task{
		Recurrence:    models.RecurrenceNone,
		Status:        models.StatusTodo,
		ScheduledDate: dayPtr(t, "2025-06-10"),
	}
	assert.True(t, IsCarriedForward(slipped, today))

	slipped.Recurrence = models.RecurrenceDaily
	assert.False(t, IsCarriedForward(slipped, today))

	slipped.Recurrence = models.RecurrenceNone
	slipped.Status = models.StatusCompleted
	assert.False(t, IsCarriedForward(slipped, today))
}

func TestSummarizeTasks(t *testing.T) {
	today := day(t, "2025-06-15")

	tasks := []models.Task{
		{
			Title:         "slipped report",
			Status:        models.StatusTodo,
			Recurrence:    models.RecurrenceNone,
			ScheduledDate: dayPtr(t, "2025-06-10"),
			DueDate:       dayPtr(t, "2025-06-10"),
		},
		{
			Title:         "done today",
			Status:        models.StatusCompleted,
			Recurrence:    models.RecurrenceNone,
			ScheduledDate: dayPtr(t, "2025-06-15"),
		},
		{
			Title:           "standup",
			Status:          models.StatusInProgress,
			Recurrence:      models.RecurrenceDaily,
			ReminderEnabled: true,
		},
		{
			Title:      "next week",
			Status:     models.StatusPending,
			Recurrence: models.RecurrenceNone,
			DueDate:    dayPtr(t, "2025-06-20"),
		},
	}

	summary := SummarizeTasks(tasks, today)

	assert.Equal(t, 4, summary.Total)
	assert.Equal(t, 1, summary.Todo)
	assert.Equal(t, 1, summary.InProgress)
	assert.Equal(t, 1, summary.Completed)
	assert.Equal(t, 1, summary.Pending)
	assert.Equal(t, 25, summary.CompletionRate)
	assert.Equal(t, 1, summary.ReminderCount)

	// Completed tasks show in today's list but never count as due
	assert.Equal(t, 1, summary.DueToday)
	require.Len(t, summary.TasksForToday, 2)

	require.Len(t, summary.Overdue, 1)
	assert.Equal(t, "slipped report", summary.Overdue[0].Title)
	require.Len(t, summary.Upcoming, 1)
	assert.Equal(t, "next week", summary.Upcoming[0].Title)
	require.Len(t, summary.CarriedForward, 1)
	assert.Equal(t, "slipped report", summary.CarriedForward[0].Title)
}

func TestSummarizeTasksEmpty(t *testing.T) {
	summary := SummarizeTasks(nil, day(t, "2025-06-15"))

	assert.Zero(t, summary.Total)
	assert.Zero(t, summary.CompletionRate)
	assert.NotNil(t, summary.TasksForToday)
	assert.NotNil(t, summary.Overdue)
	assert.NotNil(t, summary.Upcoming)
	assert.NotNil(t, summary.CarriedForward)
}
