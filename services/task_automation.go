package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/awantha2003/portfolio-backend/config"
	"github.com/awantha2003/portfolio-backend/database"
	"github.com/awantha2003/portfolio-backend/derive"
	"github.com/awantha2003/portfolio-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// TaskAutomation runs the recurring task chores: rolling slipped one-off
// tasks forward at the start of each day, a morning digest email and
// per-task reminder emails at their configured times.
type TaskAutomation struct {
	taskRepo   *database.TaskRepo
	mailer     *Mailer
	adminEmail string
	digestHour int
	interval   time.Duration
	logger     zerolog.Logger

	lastCarryDay  string
	lastDigestDay string
}

func NewTaskAutomation(taskRepo *database.TaskRepo, mailer *Mailer, c map[string]string) *TaskAutomation {
	return &TaskAutomation{
		taskRepo:   taskRepo,
		mailer:     mailer,
		adminEmail: config.GetString(c, "ADMIN_EMAIL", ""),
		digestHour: config.GetInt(c, "TASK_DIGEST_HOUR", 7),
		interval:   time.Minute,
		logger:     log.With().Str("service", "taskAutomation").Logger(),
	}
}

// Run ticks once a minute until the context is cancelled. Each pass works
// against a single "now" so a tick straddling midnight cannot mix days.
func (a *TaskAutomation) Run(ctx context.Context) {
	a.logger.Info().Msg("Task automation started")

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	a.tick(time.Now())
	for {
		select {
		case <-ctx.Done():
			a.logger.Info().Msg("Task automation stopped")
			return
		case now := <-ticker.C:
			a.tick(now)
		}
	}
}

func (a *TaskAutomation) tick(now time.Time) {
	today := models.DateOf(now)

	if a.lastCarryDay != today.String() {
		if err := a.carryForward(today); err != nil {
			a.logger.Error().Err(err).Msg("Carry-forward pass failed")
		} else {
			a.lastCarryDay = today.String()
		}
	}

	if a.mailer.Configured() && a.adminEmail != "" {
		if now.Hour() == a.digestHour && a.lastDigestDay != today.String() {
			if err := a.sendDigest(today); err != nil {
				a.logger.Error().Err(err).Msg("Digest email failed")
			} else {
				a.lastDigestDay = today.String()
			}
		}
		if err := a.sendDueReminders(now, today); err != nil {
			a.logger.Error().Err(err).Msg("Reminder pass failed")
		}
	}
}

// carryForward reschedules slipped one-off tasks to today. Tasks still
// marked TODO or IN_PROGRESS drop to PENDING so the dashboard shows them as
// rolled over rather than planned.
func (a *TaskAutomation) carryForward(today models.DateOnly) error {
	tasks, err := a.taskRepo.FindAll()
	if err != nil {
		return fmt.Errorf("load tasks: %w", err)
	}

	var changed []models.Task
	for _, task := range tasks {
		if !derive.IsCarriedForward(task, today) {
			continue
		}
		scheduled := today
		task.ScheduledDate = &scheduled
		if task.Status == models.StatusTodo || task.Status == models.StatusInProgress {
			task.Status = models.StatusPending
		}
		changed = append(changed, task)
	}

	if len(changed) > 0 {
		a.logger.Info().Int("count", len(changed)).Msg("Carrying forward slipped tasks")
	}
	return a.taskRepo.UpdateAll(changed)
}

// sendDigest emails today's task list and the overdue backlog to the admin.
func (a *TaskAutomation) sendDigest(today models.DateOnly) error {
	tasks, err := a.taskRepo.FindAll()
	if err != nil {
		return fmt.Errorf("load tasks: %w", err)
	}

	summary := derive.SummarizeTasks(tasks, today)
	if len(summary.TasksForToday) == 0 && len(summary.Overdue) == 0 {
		return nil
	}

	var body strings.Builder
	body.WriteString(fmt.Sprintf("<h2>Tasks for %s</h2>", today))
	body.WriteString(taskListHTML(summary.TasksForToday))
	if len(summary.Overdue) > 0 {
		body.WriteString("<h2>Overdue</h2>")
		body.WriteString(taskListHTML(summary.Overdue))
	}

	subject := fmt.Sprintf("Daily task digest: %d today, %d overdue", summary.DueToday, len(summary.Overdue))
	return a.mailer.Send(subject, body.String(), []string{a.adminEmail})
}

// sendDueReminders emails tasks whose reminder time matches the current
// minute, at most once per day per task.
func (a *TaskAutomation) sendDueReminders(now time.Time, today models.DateOnly) error {
	tasks, err := a.taskRepo.FindAll()
	if err != nil {
		return fmt.Errorf("load tasks: %w", err)
	}

	clock := now.Format("15:04")
	var reminded []models.Task
	for _, task := range tasks {
		if !task.ReminderEnabled || task.Status == models.StatusCompleted {
			continue
		}
		if task.ReminderTime == nil || *task.ReminderTime != clock {
			continue
		}
		if task.LastReminderSentAt != nil && models.DateOf(*task.LastReminderSentAt).Equal(today) {
			continue
		}
		if !derive.IsTaskForDate(task, today) {
			continue
		}

		subject := fmt.Sprintf("Reminder: %s", task.Title)
		body := fmt.Sprintf("<p><strong>%s</strong></p><p>%s</p>", task.Title, task.Description)
		if err := a.mailer.Send(subject, body, []string{a.adminEmail}); err != nil {
			a.logger.Error().Err(err).Str("taskId", task.ID.String()).Msg("Failed to send reminder")
			continue
		}

		sentAt := now
		task.LastReminderSentAt = &sentAt
		reminded = append(reminded, task)
	}

	return a.taskRepo.UpdateAll(reminded)
}

func taskListHTML(tasks []models.Task) string {
	var b strings.Builder
	b.WriteString("<ul>")
	for _, task := range tasks {
		b.WriteString(fmt.Sprintf("<li>%s (%s, %s)</li>", task.Title, task.Status, task.Priority))
	}
	b.WriteString("</ul>")
	return b.String()
}
