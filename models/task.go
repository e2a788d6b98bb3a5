package models

import (
	"time"

	"github.com/google/uuid"
)

type TaskStatus string

const (
	StatusTodo       TaskStatus = "TODO"
	StatusInProgress TaskStatus = "IN_PROGRESS"
	StatusCompleted  TaskStatus = "COMPLETED"
	StatusPending    TaskStatus = "PENDING"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusCompleted, StatusPending:
		return true
	}
	return false
}

type TaskPriority string

const (
	PriorityLow    TaskPriority = "LOW"
	PriorityMedium TaskPriority = "MEDIUM"
	PriorityHigh   TaskPriority = "HIGH"
	PriorityUrgent TaskPriority = "URGENT"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

type TaskRecurrence string

const (
	RecurrenceNone    TaskRecurrence = "NONE"
	RecurrenceDaily   TaskRecurrence = "DAILY"
	RecurrenceWeekly  TaskRecurrence = "WEEKLY"
	RecurrenceMonthly TaskRecurrence = "MONTHLY"
)

func (r TaskRecurrence) Valid() bool {
	switch r {
	case RecurrenceNone, RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly:
		return true
	}
	return false
}

// Task is a personal to-do item surfaced on the admin dashboard. Recurring
// tasks match dates by rule; one-off tasks use scheduledDate/dueDate literally.
type Task struct {
	ID                 uuid.UUID      `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title              string         `json:"title" db:"title" gorm:"type:text;not null"`
	Description        string         `json:"description" db:"description" gorm:"type:text;not null;default:''"`
	Status             TaskStatus     `json:"status" db:"status" gorm:"type:text;not null;default:'TODO'"`
	Priority           TaskPriority   `json:"priority" db:"priority" gorm:"type:text;not null;default:'MEDIUM'"`
	Recurrence         TaskRecurrence `json:"recurrence" db:"recurrence" gorm:"type:text;not null;default:'NONE'"`
	ScheduledDate      *DateOnly      `json:"scheduledDate,omitempty" db:"scheduled_date" gorm:"type:date"`
	DueDate            *DateOnly      `json:"dueDate,omitempty" db:"due_date" gorm:"type:date"`
	ReminderEnabled    bool           `json:"reminderEnabled" db:"reminder_enabled" gorm:"not null;default:true"`
	ReminderTime       *string        `json:"reminderTime,omitempty" db:"reminder_time" gorm:"type:text"`
	CompletedAt        *time.Time     `json:"completedAt,omitempty" db:"completed_at" gorm:"type:timestamp"`
	LastReminderSentAt *time.Time     `json:"-" db:"last_reminder_sent_at" gorm:"type:timestamp"`
	CreatedAt          time.Time      `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;autoCreateTime"`
	UpdatedAt          time.Time      `json:"updatedAt" db:"updated_at" gorm:"type:timestamp;not null;autoUpdateTime"`
}
