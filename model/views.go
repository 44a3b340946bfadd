package model

import "time"

type DashboardView struct {
	Profile UserProfile `json:"profile"`
	Counts  struct {
		Total          int `json:"total"`
		CompletedToday int `json:"completed_today"`
		Overdue        int `json:"overdue"`
		DueToday       int `json:"due_today"`
		Upcoming       int `json:"upcoming"` // Due in next 7 days
	} `json:"counts"`
	Overdue        []Task `json:"overdue"`
	DueToday       []Task `json:"due_today"`
	Upcoming       []Task `json:"upcoming"`
	CompletedToday []Task `json:"completed_today"`
}

type DailyEntry struct {
	Task      Task `json:"task"`
	Completed bool `json:"completed"`
	DueToday  bool `json:"due_today"`
}

type DailyView struct {
	Date    string       `json:"date"`
	Due     []Task       `json:"due"`
	Entries []DailyEntry `json:"entries"`
}

type MonthlyView struct {
	Year        int            `json:"year"`
	Month       time.Month     `json:"month"`
	Days        int            `json:"days"`
	Completions map[string]int `json:"completions"` // YYYY-MM-DD -> count
	Total       int            `json:"total"`
	ActiveDays  int            `json:"active_days"`
}

type DayCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type ReportsView struct {
	TaskStats struct {
		Total          int     `json:"total"`
		EverCompleted  int     `json:"ever_completed"`
		NeverCompleted int     `json:"never_completed"`
		CompletionRate float64 `json:"completion_rate"`
	} `json:"task_stats"`
	CompletionStats struct {
		Total         int                 `json:"total"`
		ByCriticality map[Criticality]int `json:"by_criticality"`
		PointsByLevel map[Criticality]int `json:"points_by_level"`
		LastSevenDays []DayCount          `json:"last_seven_days"`
	} `json:"completion_stats"`
	Profile UserProfile `json:"profile"`
}
