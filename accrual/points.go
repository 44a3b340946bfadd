package accrual

import "tostreak/model"

// BasePoints is awarded for every completion regardless of criticality.
const BasePoints = 10

// Bonus returns the criticality bonus on top of BasePoints. Unknown levels
// earn no bonus.
func Bonus(c model.Criticality) int {
	switch c {
	case model.CriticalityUrgent:
		return 15
	case model.CriticalityHigh:
		return 10
	case model.CriticalityMedium:
		return 5
	default:
		return 0
	}
}

// PointsFor returns the points earned by one completion of a task with the
// given criticality.
func PointsFor(c model.Criticality) int {
	return BasePoints + Bonus(c)
}
