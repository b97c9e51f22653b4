// Package category classifies swimmers into competition age brackets.
//
// Classification uses birth year only, never month or day: two swimmers born
// in the same calendar year always land in the same bracket regardless of the
// competition date. The club runs its ladder this way on purpose, trading
// precision for administrative simplicity, so the ladder below must not be
// "corrected" to an exact-age computation.
package category

import "time"

// Category is a derived age bracket. It is never stored; it is recomputed
// from a birth year and a competition year.
type Category struct {
	Code string `json:"code"`
	Name string `json:"name"`
	// BirthYearMin/BirthYearMax bound the birth years the bracket represents
	// for a given competition year. Zero means the bound is open: Pre-Mínima
	// has no upper bound (any younger swimmer) and Mayores no lower bound.
	BirthYearMin int `json:"birth_year_min,omitempty"`
	BirthYearMax int `json:"birth_year_max,omitempty"`
}

// ladder maps the year offset (competition year minus birth year) to a
// bracket, youngest first. Offsets at or below the first entry collapse into
// it; offsets past the last entry fall through to Mayores.
var ladder = []struct {
	offset int
	code   string
	name   string
}{
	{7, "pre_minima", "Pre-Mínima"},
	{8, "minima_1", "Mínima 1"},
	{9, "minima_2", "Mínima 2"},
	{10, "infantil_a1", "Infantil A1"},
	{11, "infantil_a2", "Infantil A2"},
	{12, "infantil_b1", "Infantil B1"},
	{13, "infantil_b2", "Infantil B2"},
	{14, "juvenil_a", "Juvenil A"},
	{15, "juvenil_b", "Juvenil B"},
}

const (
	mayoresOffset = 16
	mayoresCode   = "mayores"
	mayoresName   = "Mayores"
)

// Classify maps a birth year to its bracket for the given competition year.
// A zero competitionYear defaults to the current calendar year. The mapping
// is total: every birth year lands in exactly one bracket.
func Classify(birthYear, competitionYear int) Category {
	if competitionYear == 0 {
		competitionYear = time.Now().Year()
	}

	offset := competitionYear - birthYear

	if offset <= ladder[0].offset {
		first := ladder[0]
		return Category{
			Code:         first.code,
			Name:         first.name,
			BirthYearMin: competitionYear - first.offset,
		}
	}

	for _, step := range ladder[1:] {
		if offset == step.offset {
			year := competitionYear - step.offset
			return Category{
				Code:         step.code,
				Name:         step.name,
				BirthYearMin: year,
				BirthYearMax: year,
			}
		}
	}

	return Category{
		Code:         mayoresCode,
		Name:         mayoresName,
		BirthYearMax: competitionYear - mayoresOffset,
	}
}

// ClassifyBirthDate is a convenience wrapper over Classify that discards the
// month and day of the birth date.
func ClassifyBirthDate(birthDate time.Time, competitionYear int) Category {
	return Classify(birthDate.Year(), competitionYear)
}

// DisplayOrder returns the fixed bracket sequence used to order result
// boards, youngest bracket first.
func DisplayOrder() []string {
	codes := make([]string, 0, len(ladder)+1)
	for _, step := range ladder {
		codes = append(codes, step.code)
	}
	return append(codes, mayoresCode)
}

// OrderIndex returns the position of a bracket code in the display sequence.
// Unknown codes sort last.
func OrderIndex(code string) int {
	for i, step := range ladder {
		if step.code == code {
			return i
		}
	}
	if code == mayoresCode {
		return len(ladder)
	}
	return len(ladder) + 1
}

// All enumerates every bracket for a competition year, youngest first.
// Used to render eligible-category pickers.
func All(competitionYear int) []Category {
	if competitionYear == 0 {
		competitionYear = time.Now().Year()
	}
	out := make([]Category, 0, len(ladder)+1)
	for _, step := range ladder {
		out = append(out, Classify(competitionYear-step.offset, competitionYear))
	}
	return append(out, Classify(competitionYear-mayoresOffset, competitionYear))
}

// IsValidCode reports whether code names a bracket in the ladder.
func IsValidCode(code string) bool {
	return OrderIndex(code) <= len(ladder)
}
