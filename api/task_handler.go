package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/awantha2003/portfolio-backend/database"
	"github.com/awantha2003/portfolio-backend/derive"
	"github.com/awantha2003/portfolio-backend/errs"
	"github.com/awantha2003/portfolio-backend/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type taskHandler struct {
	responder Responder
	logger    zerolog.Logger
	taskRepo  *database.TaskRepo
}

func newTaskHandler(taskRepo *database.TaskRepo) taskHandler {
	logger := log.With().Str("handlerName", "taskHandler").Logger()

	return taskHandler{
		responder: NewResponder(logger),
		logger:    logger,
		taskRepo:  taskRepo,
	}
}

// taskRequest is the write payload for tasks. Pointer fields distinguish
// absent values so defaults apply instead of zero values.
type taskRequest struct {
	Title           string                `json:"title"`
	Description     string                `json:"description"`
	Status          models.TaskStatus     `json:"status"`
	Priority        models.TaskPriority   `json:"priority"`
	Recurrence      models.TaskRecurrence `json:"recurrence"`
	ScheduledDate   *models.DateOnly      `json:"scheduledDate"`
	DueDate         *models.DateOnly      `json:"dueDate"`
	ReminderEnabled *bool                 `json:"reminderEnabled"`
	ReminderTime    *string               `json:"reminderTime"`
}

// applyTaskRequest validates the payload and writes it onto the task.
// Completion timestamps follow the status: entering COMPLETED stamps
// completedAt, leaving it clears the stamp.
func applyTaskRequest(task *models.Task, req taskRequest) error {
	if req.Title == "" {
		return errs.NewValidationError("title", "title is required")
	}

	if req.Status == "" {
		req.Status = models.StatusTodo
	}
	if !req.Status.Valid() {
		return errs.NewValidationError("status", "unknown status")
	}
	if req.Priority == "" {
		req.Priority = models.PriorityMedium
	}
	if !req.Priority.Valid() {
		return errs.NewValidationError("priority", "unknown priority")
	}
	if req.Recurrence == "" {
		req.Recurrence = models.RecurrenceNone
	}
	if !req.Recurrence.Valid() {
		return errs.NewValidationError("recurrence", "unknown recurrence")
	}

	if req.ReminderTime != nil && *req.ReminderTime != "" {
		if _, err := time.Parse("15:04", *req.ReminderTime); err != nil {
			return errs.NewValidationError("reminderTime", "reminderTime must be HH:MM")
		}
	}

	if req.Status == models.StatusCompleted {
		if task.Status != models.StatusCompleted {
			now := time.Now()
			task.CompletedAt = &now
		}
	} else {
		task.CompletedAt = nil
	}

	task.Title = req.Title
	task.Description = req.Description
	task.Status = req.Status
	task.Priority = req.Priority
	task.Recurrence = req.Recurrence
	task.ScheduledDate = req.ScheduledDate
	task.DueDate = req.DueDate
	task.ReminderEnabled = req.ReminderEnabled == nil || *req.ReminderEnabled
	if req.ReminderTime != nil && *req.ReminderTime == "" {
		task.ReminderTime = nil
	} else {
		task.ReminderTime = req.ReminderTime
	}

	return nil
}

// getAllTasks retrieves all tasks
// @Summary Get all tasks
// @Description Retrieves every task, newest first
// @Tags Tasks
// @Produce json
// @Success 200 {array} models.Task "List of tasks"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching tasks"
// @Router /api/tasks [get]
func (h taskHandler) getAllTasks() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Authentication handled by middleware

		tasks, err := h.taskRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find tasks", "tasks", err))
			return
		}

		h.responder.WriteJSON(w, tasks)
	}
}

// getTasksForToday retrieves tasks active today per their recurrence rules
// @Summary Get today's tasks
// @Tags Tasks
// @Produce json
// @Success 200 {array} models.Task "Tasks active today"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching tasks"
// @Router /api/tasks/today [get]
func (h taskHandler) getTasksForToday() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tasks, err := h.taskRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find tasks", "tasks", err))
			return
		}

		today := models.DateOf(time.Now())
		matched := []models.Task{}
		for _, task := range tasks {
			if derive.IsTaskForDate(task, today) {
				matched = append(matched, task)
			}
		}

		h.responder.WriteJSON(w, matched)
	}
}

// getOverdueTasks retrieves tasks past their due date and not completed
// @Summary Get overdue tasks
// @Tags Tasks
// @Produce json
// @Success 200 {array} models.Task "Overdue tasks"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching tasks"
// @Router /api/tasks/overdue [get]
func (h taskHandler) getOverdueTasks() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tasks, err := h.taskRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find tasks", "tasks", err))
			return
		}

		today := models.DateOf(time.Now())
		overdue := []models.Task{}
		for _, task := range tasks {
			if derive.IsOverdue(task, today) {
				overdue = append(overdue, task)
			}
		}

		h.responder.WriteJSON(w, overdue)
	}
}

// getDashboard serves the aggregated task dashboard
// @Summary Get task dashboard
// @Description Aggregates all tasks into counts, completion rate and day buckets
// @Tags Tasks
// @Produce json
// @Success 200 {object} derive.TaskSummary "Dashboard summary"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching tasks"
// @Router /api/tasks/dashboard [get]
func (h taskHandler) getDashboard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tasks, err := h.taskRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find tasks", "tasks", err))
			return
		}

		summary := derive.SummarizeTasks(tasks, models.DateOf(time.Now()))
		h.responder.WriteJSON(w, summary)
	}
}

// createTask creates a new task
// @Summary Create task
// @Tags Tasks
// @Accept json
// @Produce json
// @Param task body taskRequest true "Task data"
// @Success 201 {object} models.Task "Created task"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid task data"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error creating task"
// @Router /api/tasks [post]
func (h taskHandler) createTask() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Authentication handled by middleware

		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		var req taskRequest
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&req); err != nil {
			h.logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode task request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		var task models.Task
		if err := applyTaskRequest(&task, req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.taskRepo.Add(&task); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create task", "task", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, task)
	}
}

// updateTask updates an existing task
// @Summary Update task
// @Tags Tasks
// @Accept json
// @Produce json
// @Param taskID path string true "Task ID" format(uuid)
// @Param task body taskRequest true "Updated task data"
// @Success 200 {object} models.Task "Updated task"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid task data"
// @Failure 404 {object} ErrorResponse "Not Found - Task not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error updating task"
// @Router /api/tasks/{taskID} [put]
func (h taskHandler) updateTask() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Authentication handled by middleware

		taskID, err := uuid.Parse(chi.URLParam(r, "taskID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid taskID"))
			return
		}

		task, err := h.taskRepo.FindByID(taskID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find task", "task", err))
			return
		}
		if task == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("task not found"))
			return
		}

		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		var req taskRequest
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&req); err != nil {
			h.logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode task request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := applyTaskRequest(task, req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.taskRepo.Update(task); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update task", "task", err))
			return
		}

		h.responder.WriteJSON(w, task)
	}
}

// deleteTask deletes a task by ID
// @Summary Delete task
// @Tags Tasks
// @Produce json
// @Param taskID path string true "Task ID" format(uuid)
// @Success 200 {object} map[string]string "Success message"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid taskID"
// @Failure 404 {object} ErrorResponse "Not Found - Task not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error deleting task"
// @Router /api/tasks/{taskID} [delete]
func (h taskHandler) deleteTask() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Authentication handled by middleware

		taskID, err := uuid.Parse(chi.URLParam(r, "taskID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid taskID"))
			return
		}

		task, err := h.taskRepo.FindByID(taskID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find task", "task", err))
			return
		}
		if task == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("task not found"))
			return
		}

		if err := h.taskRepo.Delete(taskID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete task", "task", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "task deleted successfully",
		})
	}
}
