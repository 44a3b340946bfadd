package model

// CustomReward is a one-time reward bought with points. It is deleted when
// redeemed.
type CustomReward struct {
	ID          string `json:"id" bson:"id"`
	Description string `json:"description" bson:"description"`
	Cost        int    `json:"cost" bson:"cost"`
}
