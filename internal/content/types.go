package content

// Profile is the slice of a resume the prompts draw on.
type Profile struct {
	Name            string
	Title           string
	YearsExperience int
	Skills          []string
	// Highlights are short free-text achievements, one per entry.
	Highlights []string
}

// SkillSuggestions splits suggested skills into technical and soft skills.
type SkillSuggestions struct {
	Technical []string `json:"technical"`
	Soft      []string `json:"soft"`
}

// JobPosting is one suggested opening.
type JobPosting struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	Seniority   string   `json:"seniority"`
	Skills      []string `json:"skills"`
	SalaryRange string   `json:"salaryRange"`
	MatchScore  int      `json:"matchScore"`
	Description string   `json:"description"`
}

// ATSReport is the outcome of an applicant tracking system check.
type ATSReport struct {
	// Score is always within [0, 100].
	Score           int      `json:"score"`
	MatchedKeywords []string `json:"matchedKeywords"`
	MissingKeywords []string `json:"missingKeywords"`
	Recommendations []string `json:"recommendations"`
}
