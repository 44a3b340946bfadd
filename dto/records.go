package dto

import (
	"tostreak/model"
	"tostreak/usecase"
)

type NoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content" binding:"required"`
}

func (r NoteRequest) ToInput() usecase.NoteInput {
	return usecase.NoteInput{Title: r.Title, Content: r.Content}
}

type RewardRequest struct {
	Description string `json:"description" binding:"required"`
	Cost        int    `json:"cost" binding:"required,gt=0"`
}

func (r RewardRequest) ToInput() usecase.RewardInput {
	return usecase.RewardInput{Description: r.Description, Cost: r.Cost}
}

// RewardsResponse pairs the catalogue with the balance it is bought from.
type RewardsResponse struct {
	Rewards []model.CustomReward `json:"rewards"`
	Profile model.UserProfile    `json:"profile"`
}

type RedeemResponse struct {
	Reward  model.CustomReward `json:"reward"`
	Profile model.UserProfile  `json:"profile"`
}

type ThemeRequest struct {
	Theme model.Theme `json:"theme" binding:"required,theme"`
}

type APIKeyRequest struct {
	APIKey string `json:"apiKey"`
}

// SettingsResponse never echoes the key itself.
type SettingsResponse struct {
	Theme     model.Theme `json:"theme"`
	HasAPIKey bool        `json:"hasApiKey"`
	APIKey    string      `json:"apiKey,omitempty"`
}

// ToSettingsResponse masks the stored key down to its last four characters.
func ToSettingsResponse(settings model.Settings) SettingsResponse {
	response := SettingsResponse{Theme: settings.Theme, HasAPIKey: settings.APIKey != ""}
	if n := len(settings.APIKey); n > 0 {
		visible := 4
		if n <= visible {
			visible = 0
		}
		masked := make([]byte, n)
		for i := range masked {
			if i < n-visible {
				masked[i] = '*'
			} else {
				masked[i] = settings.APIKey[i]
			}
		}
		response.APIKey = string(masked)
	}
	return response
}

type HealthResponse struct {
	Status        string  `json:"status"`
	Backend       string  `json:"backend"`
	Tasks         int     `json:"tasks"`
	CPUPercent    float64 `json:"cpu_percent"`
	MemoryPercent float64 `json:"memory_percent"`
}
