// Package catalog holds the static question bank: the seven competency
// areas, their ordered questions, and the per-tier recommendation texts.
// The catalog is defined at build time and never mutated.
package catalog

// MaxScore is the highest option value. Options are indexed 0–5 and the
// index is the option's numeric value.
const MaxScore = 5

// Question is a single questionnaire item. IDs are unique across the
// whole bank, not per area.
type Question struct {
	ID      int
	Text    string
	Options []string
}

// Area is one of the seven fixed competency domains being assessed.
type Area struct {
	ID          int
	Title       string
	ShortTitle  string
	Description string
	Questions   []Question
}

// Areas returns the full catalog in display order.
func Areas() []Area {
	return areas
}

// AreaByID returns the area with the given id, or nil.
func AreaByID(id int) *Area {
	for i := range areas {
		if areas[i].ID == id {
			return &areas[i]
		}
	}
	return nil
}

// TotalQuestions returns the number of questions across all areas.
func TotalQuestions() int {
	total := 0
	for _, a := range areas {
		total += len(a.Questions)
	}
	return total
}

// AreaForQuestion returns the area owning the given question id, or nil.
func AreaForQuestion(questionID int) *Area {
	for i := range areas {
		for _, q := range areas[i].Questions {
			if q.ID == questionID {
				return &areas[i]
			}
		}
	}
	return nil
}
