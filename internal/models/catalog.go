package models

// GradeLevels is the recommended grade catalog shown by the booking form.
// Submissions are not strictly enum-checked against it; "Other" exists for
// everything the catalog misses.
var GradeLevels = []string{
	"Grade 1-5",
	"Grade 6-8",
	"Grade 9-10",
	"Grade 11-12",
	"College",
	"Competitive Exams",
	"Other",
}

// Subjects is the recommended subject catalog for booking submissions.
var Subjects = []string{
	"Mathematics",
	"Physics",
	"Chemistry",
	"Biology",
	"English",
	"Computer Science",
	"History",
	"Music",
	"Other",
}

// Catalog bundles both lists for the public catalog endpoint.
type Catalog struct {
	GradeLevels []string `json:"grade_levels"`
	Subjects    []string `json:"subjects"`
}
