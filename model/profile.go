package model

import "time"

// UserProfile is the single long-lived record stored under "userProfile".
// LastCompletedDate is always UTC midnight when set.
type UserProfile struct {
	Points            int        `json:"points" bson:"points"`
	Streak            int        `json:"streak" bson:"streak"`
	LastCompletedDate *time.Time `json:"lastCompletedDate" bson:"last_completed_date"`
}

func DefaultProfile() UserProfile {
	return UserProfile{}
}

func (p UserProfile) Clone() UserProfile {
	out := p
	if p.LastCompletedDate != nil {
		last := *p.LastCompletedDate
		out.LastCompletedDate = &last
	}
	return out
}
