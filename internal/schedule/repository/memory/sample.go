package memory

import (
	"time"

	"schedule-assistant/internal/model"
)

// SampleDay returns a typical working day on the calendar day of day, in
// day's location. Used to seed demo instances.
func SampleDay(day time.Time) []model.Event {
	at := func(h, m int) time.Time {
		y, mo, d := day.Date()
		return time.Date(y, mo, d, h, m, 0, 0, day.Location())
	}
	return []model.Event{
		{Title: "Team Meeting", Description: "Weekly sync with the product team", StartTime: at(9, 0), EndTime: at(10, 0), Category: model.CategoryMeeting},
		{Title: "Focus Work", Description: "Work on the new feature implementation", StartTime: at(10, 30), EndTime: at(12, 30), Category: model.CategoryWork},
		{Title: "Lunch Break", Description: "Take a break and recharge", StartTime: at(12, 30), EndTime: at(13, 30), Category: model.CategoryBreak},
		{Title: "Gym Session", Description: "Cardio and strength training", StartTime: at(17, 0), EndTime: at(18, 0), Category: model.CategoryGym},
	}
}
