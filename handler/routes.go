package handler

import (
	"tostreak/usecase"

	"github.com/gin-gonic/gin"
)

// Handlers groups every route handler over one tracker.
type Handlers struct {
	Tasks    *TaskHandler
	Notes    *NoteHandler
	Rewards  *RewardHandler
	Profile  *ProfileHandler
	Settings *SettingsHandler
	Views    *ViewHandler
	Health   *HealthHandler
}

func NewHandlers(tracker *usecase.Tracker, backend string) *Handlers {
	return &Handlers{
		Tasks:    NewTaskHandler(tracker),
		Notes:    NewNoteHandler(tracker),
		Rewards:  NewRewardHandler(tracker),
		Profile:  NewProfileHandler(tracker),
		Settings: NewSettingsHandler(tracker),
		Views:    NewViewHandler(tracker),
		Health:   NewHealthHandler(tracker, backend),
	}
}

// Register mounts the API on r. health is registered separately so it can
// stay outside any auth middleware.
func (h *Handlers) Register(r gin.IRouter) {
	tasks := r.Group("/tasks")
	{
		tasks.GET("", h.Tasks.ListTasks)
		tasks.POST("", h.Tasks.CreateTask)
		tasks.GET("/:id", h.Tasks.GetTask)
		tasks.PUT("/:id", h.Tasks.UpdateTask)
		tasks.DELETE("/:id", h.Tasks.DeleteTask)
		tasks.POST("/:id/complete", h.Tasks.ToggleCompletion)
	}

	notes := r.Group("/notes")
	{
		notes.GET("", h.Notes.ListNotes)
		notes.POST("", h.Notes.CreateNote)
		notes.PUT("/:id", h.Notes.UpdateNote)
		notes.DELETE("/:id", h.Notes.DeleteNote)
	}

	rewards := r.Group("/rewards")
	{
		rewards.GET("", h.Rewards.ListRewards)
		rewards.POST("", h.Rewards.CreateReward)
		rewards.POST("/:id/redeem", h.Rewards.RedeemReward)
	}

	profile := r.Group("/profile")
	{
		profile.GET("", h.Profile.GetProfile)
		profile.POST("/check-streaks", h.Profile.CheckStreaks)
	}

	settings := r.Group("/settings")
	{
		settings.GET("", h.Settings.GetSettings)
		settings.PUT("/theme", h.Settings.SetTheme)
		settings.POST("/theme/toggle", h.Settings.ToggleTheme)
		settings.PUT("/api-key", h.Settings.SetAPIKey)
	}

	r.GET("/views/:view", h.Views.GetView)
}

func (h *Handlers) RegisterHealth(r gin.IRouter) {
	r.GET("/health", h.Health.Health)
}
