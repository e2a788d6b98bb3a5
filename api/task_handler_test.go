package api

import (
	"testing"

	"github.com/awantha2003/portfolio-backend/errs"
	"github.com/awantha2003/portfolio-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyTaskRequestDefaults(t *testing.T) {
	var task models.Task
	require.NoError(t, applyTaskRequest(&task, taskRequest{Title: "write report"}))

	assert.Equal(t, models.StatusTodo, task.Status)
	assert.Equal(t, models.PriorityMedium, task.Priority)
	assert.Equal(t, models.RecurrenceNone, task.Recurrence)
	assert.True(t, task.ReminderEnabled)
	assert.Nil(t, task.CompletedAt)
}

func TestApplyTaskRequestValidation(t *testing.T) {
	tests := []struct {
		name  string
		req   taskRequest
		field string
	}{
		{"missing title", taskRequest{}, "title"},
		{"unknown status", taskRequest{Title: "x", Status: "DONE"}, "status"},
		{"unknown priority", taskRequest{Title: "x", Priority: "CRITICAL"}, "priority"},
		{"unknown recurrence", taskRequest{Title: "x", Recurrence: "YEARLY"}, "recurrence"},
		{"bad reminder time", taskRequest{Title: "x", ReminderTime: strPtr("9am")}, "reminderTime"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var task models.Task
			err := applyTaskRequest(&task, tt.req)
			require.Error(t, err)

			apiErr, ok := err.(*errs.ApiErr)
			require.True(t, ok)
			assert.Equal(t, tt.field, apiErr.Field)
		})
	}
}

func TestApplyTaskRequestCompletionStamp(t *testing.T) {
	var task models.Task
	require.NoError(t, applyTaskRequest(&task, taskRequest{Title: "x", Status: models.StatusCompleted}))
	require.NotNil(t, task.CompletedAt)
	firstStamp := *task.CompletedAt

	// Staying completed keeps the original stamp
	require.NoError(t, applyTaskRequest(&task, taskRequest{Title: "x", Status: models.StatusCompleted}))
	require.NotNil(t, task.CompletedAt)
	assert.Equal(t, firstStamp, *task.CompletedAt)

	// Reopening clears it
	require.NoError(t, applyTaskRequest(&task, taskRequest{Title: "x", Status: models.StatusTodo}))
	assert.Nil(t, task.CompletedAt)
}

func TestApplyTaskRequestReminderTime(t *testing.T) {
	var task models.Task
	require.NoError(t, applyTaskRequest(&task, taskRequest{Title: "x", ReminderTime: strPtr("09:30")}))
	require.NotNil(t, task.ReminderTime)
	assert.Equal(t, "09:30", *task.ReminderTime)

	// Empty string clears the reminder time
	require.NoError(t, applyTaskRequest(&task, taskRequest{Title: "x", ReminderTime: strPtr("")}))
	assert.Nil(t, task.ReminderTime)
}

func strPtr(s string) *string {
	return &s
}
