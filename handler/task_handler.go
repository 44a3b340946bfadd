package handler

import (
	"errors"
	"io"

	"tostreak/accrual"
	"tostreak/dto"
	"tostreak/usecase"
	"tostreak/utils"

	"github.com/gin-gonic/gin"
)

type TaskHandler struct {
	tracker *usecase.Tracker
}

func NewTaskHandler(tracker *usecase.Tracker) *TaskHandler {
	return &TaskHandler{tracker: tracker}
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	utils.Success(c, dto.ToTaskResponses(h.tracker.Tasks(), h.tracker.Now()))
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	task, found := h.tracker.Task(c.Param("id"))
	if !found {
		utils.NotFound(c, "Task not found")
		return
	}
	utils.Success(c, dto.ToTaskResponse(task, h.tracker.Now()))
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req dto.TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	input, err := req.ToInput()
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	task, err := h.tracker.AddTask(c.Request.Context(), input)
	if err != nil {
		respondError(c, "create task", err)
		return
	}
	c.Header("Location", utils.GetBaseURL(c)+"/tasks/"+task.ID)
	utils.Created(c, dto.ToTaskResponse(task, h.tracker.Now()))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	var req dto.TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	input, err := req.ToInput()
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	task, found, err := h.tracker.UpdateTask(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		respondError(c, "update task", err)
		return
	}
	if !found {
		utils.NotFound(c, "Task not found")
		return
	}
	utils.SuccessMessage(c, "Task updated", dto.ToTaskResponse(task, h.tracker.Now()))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	found, err := h.tracker.DeleteTask(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "delete task", err)
		return
	}
	if !found {
		utils.NotFound(c, "Task not found")
		return
	}
	utils.SuccessMessage(c, "Task deleted", nil)
}

// ToggleCompletion marks the task done on the given date, or undoes it if
// it was already done then. The body is optional; no date means today.
func (h *TaskHandler) ToggleCompletion(c *gin.Context) {
	var req dto.CompleteRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	date := h.tracker.Now()
	if req.Date != "" {
		parsed, err := accrual.ParseDateKey(req.Date)
		if err != nil {
			utils.BadRequest(c, err.Error())
			return
		}
		date = parsed
	}

	task, outcome, found, err := h.tracker.CompleteTask(c.Request.Context(), c.Param("id"), date)
	if err != nil {
		respondError(c, "toggle completion", err)
		return
	}
	if !found {
		utils.NotFound(c, "Task not found")
		return
	}

	message := "Task marked incomplete"
	if outcome.Completed {
		message = "Task completed"
	}
	utils.SuccessMessage(c, message, dto.CompletionResponse{
		Task:    dto.ToTaskResponse(task, h.tracker.Now()),
		Outcome: outcome,
		Profile: h.tracker.Profile(),
	})
}
