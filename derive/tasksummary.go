package derive

import (
	"math"

	"github.com/awantha2003/portfolio-backend/models"
)

// TaskSummary is the dashboard view of a task list, computed in one pass
// against a single "today" value.
type TaskSummary struct {
	Total          int           `json:"total"`
	Todo           int           `json:"todo"`
	InProgress     int           `json:"inProgress"`
	Completed      int           `json:"completed"`
	Pending        int           `json:"pending"`
	DueToday       int           `json:"dueToday"`
	CompletionRate int           `json:"completionRate"`
	ReminderCount  int           `json:"reminderCount"`
	TasksForToday  []models.Task `json:"tasksForToday"`
	Overdue        []models.Task `json:"overdue"`
	Upcoming       []models.Task `json:"upcoming"`
	CarriedForward []models.Task `json:"carriedForward"`
}

// IsTaskForDate reports whether a task is active on the given day. Daily
// tasks always are; weekly tasks match the scheduled weekday and monthly
// tasks the scheduled day-of-month (false when no scheduled date exists).
// One-off tasks match when either the scheduled or the due date equals the
// day exactly.
func IsTaskForDate(task models.Task, date models.DateOnly) bool {
	switch task.Recurrence {
	case models.RecurrenceDaily:
		return true
	case models.RecurrenceWeekly:
		return task.ScheduledDate != nil && task.ScheduledDate.Weekday() == date.Weekday()
	case models.RecurrenceMonthly:
		return task.ScheduledDate != nil && task.ScheduledDate.Day() == date.Day()
	default:
		if task.ScheduledDate != nil && task.ScheduledDate.Equal(date) {
			return true
		}
		return task.DueDate != nil && task.DueDate.Equal(date)
	}
}

// IsOverdue reports whether the task's due date has passed without completion.
func IsOverdue(task models.Task, today models.DateOnly) bool {
	return task.DueDate != nil &&
		task.DueDate.Before(today) &&
		task.Status != models.StatusCompleted
}

// IsUpcoming reports whether the task is due after today and not completed.
func IsUpcoming(task models.Task, today models.DateOnly) bool {
	return task.DueDate != nil &&
		task.DueDate.After(today) &&
		task.Status != models.StatusCompleted
}

// IsCarriedForward reports whether a one-off task slipped past its scheduled
// day without being completed.
func IsCarriedForward(task models.Task, today models.DateOnly) bool {
	return task.Recurrence == models.RecurrenceNone &&
		task.ScheduledDate != nil &&
		task.ScheduledDate.Before(today) &&
		task.Status != models.StatusCompleted
}

// SummarizeTasks aggregates a task list into its dashboard summary. The
// caller supplies today once; every comparison inside the pass uses that same
// day so the summary cannot straddle midnight.
func SummarizeTasks(tasks []models.Task, today models.DateOnly) TaskSummary {
	summary := TaskSummary{
		TasksForToday:  []models.Task{},
		Overdue:        []models.Task{},
		Upcoming:       []models.Task{},
		CarriedForward: []models.Task{},
	}
	summary.Total = len(tasks)

	for _, task := range tasks {
		switch task.Status {
		case models.StatusTodo:
			summary.Todo++
		case models.StatusInProgress:
			summary.InProgress++
		case models.StatusCompleted:
			summary.Completed++
		case models.StatusPending:
			summary.Pending++
		}
		if task.ReminderEnabled {
			summary.ReminderCount++
		}
		if IsTaskForDate(task, today) {
			summary.TasksForToday = append(summary.TasksForToday, task)
			if task.Status != models.StatusCompleted {
				summary.DueToday++
			}
		}
		if IsOverdue(task, today) {
			summary.Overdue = append(summary.Overdue, task)
		}
		if IsUpcoming(task, today) {
			summary.Upcoming = append(summary.Upcoming, task)
		}
		if IsCarriedForward(task, today) {
			summary.CarriedForward = append(summary.CarriedForward, task)
		}
	}

	if summary.Total > 0 {
		summary.CompletionRate = int(math.Round(100 * float64(summary.Completed) / float64(summary.Total)))
	}
	return summary
}
