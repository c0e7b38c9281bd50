package models

import "time"

// Wire formats for meal date and time.
const (
	DateLayout = "01/02/06" // MM/DD/YY
	TimeLayout = "15:04"    // HH:MM, 24-hour
)

// Meal is a single logged meal owned by one user.
type Meal struct {
	ID          int
	Name        string
	Description string
	Date        time.Time // calendar date, midnight UTC
	Time        time.Time // time of day on the zero date
	IsInDiet    bool
	UserID      int
}

// ParseDate parses s strictly as MM/DD/YY.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// ParseClock parses s strictly as HH:MM.
func ParseClock(s string) (time.Time, error) {
	return time.Parse(TimeLayout, s)
}

func (m Meal) FormattedDate() string { return m.Date.Format(DateLayout) }

func (m Meal) FormattedTime() string { return m.Time.Format(TimeLayout) }

// MealPatch holds the fields of a partial update; nil means "keep".
type MealPatch struct {
	Name        *string
	Description *string
	Date        *time.Time
	Time        *time.Time
	IsInDiet    *bool
}

// Empty reports whether the patch changes nothing.
func (p MealPatch) Empty() bool {
	return p.Name == nil && p.Description == nil && p.Date == nil && p.Time == nil && p.IsInDiet == nil
}

// Apply copies every set field onto m.
func (p MealPatch) Apply(m *Meal) {
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.Description != nil {
		m.Description = *p.Description
	}
	if p.Date != nil {
		m.Date = *p.Date
	}
	if p.Time != nil {
		m.Time = *p.Time
	}
	if p.IsInDiet != nil {
		m.IsInDiet = *p.IsInDiet
	}
}

// Dashboard summarizes diet adherence over a user's meals.
type Dashboard struct {
	TotalMeals          int     `json:"total_meals"`
	PercentageOnDiet    float64 `json:"percentage_on_diet"`
	PercentageNotOnDiet float64 `json:"percentage_not_on_diet"`
}

// Summarize builds the dashboard for meals. Percentages are left unrounded.
func Summarize(meals []Meal) Dashboard {
	d := Dashboard{TotalMeals: len(meals)}
	if d.TotalMeals == 0 {
		return d
	}
	onDiet := 0
	for _, m := range meals {
		if m.IsInDiet {
			onDiet++
		}
	}
	d.PercentageOnDiet = float64(onDiet) / float64(d.TotalMeals) * 100
	d.PercentageNotOnDiet = 100 - d.PercentageOnDiet
	return d
}
