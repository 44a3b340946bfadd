package handler

import (
	"tostreak/dto"
	"tostreak/usecase"
	"tostreak/utils"

	"github.com/gin-gonic/gin"
)

type NoteHandler struct {
	tracker *usecase.Tracker
}

func NewNoteHandler(tracker *usecase.Tracker) *NoteHandler {
	return &NoteHandler{tracker: tracker}
}

func (h *NoteHandler) ListNotes(c *gin.Context) {
	utils.Success(c, h.tracker.Notes())
}

func (h *NoteHandler) CreateNote(c *gin.Context) {
	var req dto.NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	note, err := h.tracker.AddNote(c.Request.Context(), req.ToInput())
	if err != nil {
		respondError(c, "create note", err)
		return
	}
	c.Header("Location", utils.GetBaseURL(c)+"/notes/"+note.ID)
	utils.Created(c, note)
}

func (h *NoteHandler) UpdateNote(c *gin.Context) {
	var req dto.NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	note, found, err := h.tracker.UpdateNote(c.Request.Context(), c.Param("id"), req.ToInput())
	if err != nil {
		respondError(c, "update note", err)
		return
	}
	if !found {
		utils.NotFound(c, "Note not found")
		return
	}
	utils.SuccessMessage(c, "Note updated", note)
}

func (h *NoteHandler) DeleteNote(c *gin.Context) {
	found, err := h.tracker.DeleteNote(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "delete note", err)
		return
	}
	if !found {
		utils.NotFound(c, "Note not found")
		return
	}
	utils.SuccessMessage(c, "Note deleted", nil)
}
