package model

import (
	"time"
)

type Note struct {
	ID        string    `json:"id" bson:"id"`
	Title     string    `json:"title,omitempty" bson:"title,omitempty"`
	Content   string    `json:"content" bson:"content"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
}
