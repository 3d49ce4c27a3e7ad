package models

// Resume is the document being edited in the client wizard. It exists only
// in client memory: created empty per editing session, mutated by every form
// field change, discarded when the editor closes. It is never sent to the
// server.
//
// No invariants are enforced beyond field presence; every field is optional
// free text.
type Resume struct {
	Personal   PersonalInfo `json:"personal"`
	Education  []Education  `json:"education"`
	Experience []Experience `json:"experience"`
	Skills     []string     `json:"skills"`
	Projects   []Project    `json:"projects"`

	// Template selects the output layout: "modern", "professional" or "ats".
	Template string `json:"template"`
}

// PersonalInfo is the header block of the resume.
type PersonalInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Summary  string `json:"summary"`

	// PhotoPath optionally points at an image file embedded by the
	// rendering pipeline.
	PhotoPath string `json:"photoPath,omitempty"`
}

// Education is a single entry of the ordered education section.
type Education struct {
	School    string `json:"school"`
	Degree    string `json:"degree"`
	Field     string `json:"field"`
	StartYear string `json:"startYear"`
	EndYear   string `json:"endYear"`
}

// Experience is a single entry of the ordered work-experience section.
type Experience struct {
	Company     string `json:"company"`
	Role        string `json:"role"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

// Project is a single entry of the ordered projects section.
type Project struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

// NewResume returns an empty document for a fresh editing session.
func NewResume() *Resume {
	return &Resume{Template: "modern"}
}
