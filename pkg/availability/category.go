package availability

import "strings"

// Category biases the search toward canonical time-of-day windows.
type Category string

const (
	CategoryNone    Category = ""
	CategoryGym     Category = "gym"
	CategoryWork    Category = "work"
	CategoryMeeting Category = "meeting"
)

var categoryAliases = map[string]Category{
	"gym":      CategoryGym,
	"exercise": CategoryGym,
	"workout":  CategoryGym,
	"work":     CategoryWork,
	"focus":    CategoryWork,
	"study":    CategoryWork,
	"meeting":  CategoryMeeting,
	"call":     CategoryMeeting,
}

// ParseCategory normalises a free-text category hint. Unrecognised input
// yields CategoryNone.
func ParseCategory(s string) Category {
	if c, ok := categoryAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return c
	}
	return CategoryNone
}

// hourWindow is a [From, To) wall-clock range on the search day.
type hourWindow struct {
	From int
	To   int
}

// preferredWindows lists the windows of a category in priority order.
var preferredWindows = map[Category][]hourWindow{
	CategoryGym:     {{From: 6, To: 8}, {From: 17, To: 20}},
	CategoryWork:    {{From: 9, To: 12}},
	CategoryMeeting: {{From: 13, To: 16}},
}

// Windows returns the preferred hour windows of c as [from, to) pairs.
func (c Category) Windows() [][2]int {
	ws := preferredWindows[c]
	out := make([][2]int, 0, len(ws))
	for _, w := range ws {
		out = append(out, [2]int{w.From, w.To})
	}
	return out
}
