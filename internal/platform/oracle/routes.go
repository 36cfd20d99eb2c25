package oracle

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Route names in DefaultRoutes.
const (
	RouteJobSuggestions   = "job-suggestions"
	RouteSkillSuggestions = "skill-suggestions"
	RouteATSAnalysis      = "ats-analysis"
	RouteCoverLetter      = "cover-letter"
	RouteBulletPoints     = "bullet-points"
	RouteSummary          = "summary"
	RouteSuggestions      = "suggestions"
)

// DefaultRoutes returns the standard dispatch table, most specific first.
// "suggest"+"job" and "suggest"+"skill" precede the bare "suggest" route,
// which would otherwise shadow them.
func DefaultRoutes() []Route {
	return []Route{
		{Name: RouteJobSuggestions, Match: All(Contains("suggest"), Contains("job")), Build: buildJobSuggestions},
		{Name: RouteSkillSuggestions, Match: All(Contains("suggest"), Contains("skill")), Build: buildSkillSuggestions},
		{Name: RouteATSAnalysis, Match: Any(Word("ats"), Contains("applicant tracking")), Build: buildATSAnalysis},
		{Name: RouteCoverLetter, Match: Contains("cover letter"), Build: buildCoverLetter},
		{Name: RouteBulletPoints, Match: Contains("bullet"), Build: buildBulletPoints},
		{Name: RouteSummary, Match: Contains("summary"), Build: buildSummary},
		{Name: RouteSuggestions, Match: Contains("suggest"), Build: buildSuggestions},
	}
}

// JobPosting is the element shape of the job-suggestions payload.
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

var (
	companies  = []string{"Northwind Labs", "Bluepeak Software", "Cobalt Systems", "Lumen Health", "Harbor Analytics", "Quarry Fintech"}
	locations  = []string{"Remote", "Berlin, DE", "Austin, TX", "Toronto, CA", "London, UK", "Lisbon, PT"}
	softSkills = []string{"Communication", "Mentoring", "Stakeholder Management", "Problem Solving", "Ownership", "Collaboration"}

	// jobNamespace keeps posting IDs stable for a given prompt.
	jobNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("resumegen/oracle/jobs"))
)

func buildJobSuggestions(prompt string) string {
	skills := detectSkills(prompt)
	level := seniorityLevels[detectSeniority(prompt)]
	offset := seed(prompt)

	if len(skills) == 0 {
		skills = []skill{{name: "Communication", role: "Software Engineer", related: []string{"Problem Solving"}}}
	}

	// 2 to 4 postings so consumers see lists of different lengths.
	count := 2 + len(skills)%3
	postings := make([]JobPosting, 0, count)
	for i := 0; i < count; i++ {
		lead := skills[i%len(skills)]
		required := []string{lead.name}
		if len(lead.related) > 0 {
			required = append(required, lead.related[i%len(lead.related)])
		}

		score := 92 - i*7 - (len(skills)+offset)%5
		if score < 50 {
			score = 50
		}

		postings = append(postings, JobPosting{
			ID:          uuid.NewSHA1(jobNamespace, []byte(fmt.Sprintf("%s#%d", prompt, i))).String(),
			Title:       level.label + " " + lead.role,
			Company:     pick(companies, offset+i),
			Location:    pick(locations, offset+2*i),
			Seniority:   level.label,
			Skills:      required,
			SalaryRange: level.salary,
			MatchScore:  score,
			Description: fmt.Sprintf("Join the %s team working with %s.", pick(companies, offset+i), strings.Join(required, " and ")),
		})
	}
	return mustJSON(postings)
}

type skillSuggestions struct {
	Technical []string `json:"technical"`
	Soft      []string `json:"soft"`
}

func buildSkillSuggestions(prompt string) string {
	skills := detectSkills(prompt)
	have := map[string]bool{}
	for _, s := range skills {
		have[s.name] = true
	}

	var technical []string
	seen := map[string]bool{}
	for _, s := range skills {
		for _, r := range s.related {
			if !have[r] && !seen[r] {
				seen[r] = true
				technical = append(technical, r)
			}
		}
	}
	if len(technical) == 0 {
		technical = []string{"Git", "SQL", "Cloud Fundamentals"}
	}

	offset := seed(prompt)
	soft := []string{pick(softSkills, offset), pick(softSkills, offset+1), pick(softSkills, offset+2)}
	return mustJSON(skillSuggestions{Technical: technical, Soft: soft})
}

type atsReport struct {
	Score           int      `json:"score"`
	MatchedKeywords []string `json:"matchedKeywords"`
	MissingKeywords []string `json:"missingKeywords"`
	Recommendations []string `json:"recommendations"`
}

func buildATSAnalysis(prompt string) string {
	skills := detectSkills(prompt)
	matched := skillNames(skills)
	if matched == nil {
		matched = []string{}
	}

	have := map[string]bool{}
	for _, m := range matched {
		have[m] = true
	}
	missing := []string{}
	for _, s := range skills {
		for _, r := range s.related {
			if !have[r] && len(missing) < 3 {
				have[r] = true
				missing = append(missing, r)
			}
		}
	}

	score := 40 + 12*len(matched)
	if score > 95 {
		score = 95
	}

	recs := []string{"Quantify achievements with concrete metrics."}
	for _, m := range missing {
		recs = append(recs, fmt.Sprintf("Mention %s if you have used it.", m))
	}
	return mustJSON(atsReport{Score: score, MatchedKeywords: matched, MissingKeywords: missing, Recommendations: recs})
}

func buildCoverLetter(prompt string) string {
	level := seniorityLevels[detectSeniority(prompt)].label
	skills := skillNames(detectSkills(prompt))
	strengths := "a track record of shipping reliable software"
	if len(skills) > 0 {
		strengths = "hands-on experience with " + strings.Join(skills, ", ")
	}
	return fmt.Sprintf("Dear Hiring Manager,\n\n"+
		"I am excited to apply for this %s opportunity. I bring %s and a habit of "+
		"turning ambiguous problems into measurable results.\n\n"+
		"I would welcome the chance to discuss how I can contribute to your team.\n\n"+
		"Sincerely,\nThe Candidate", strings.ToLower(level), strengths)
}

func buildBulletPoints(prompt string) string {
	skills := skillNames(detectSkills(prompt))
	tech := "modern tooling"
	if len(skills) > 0 {
		tech = strings.Join(skills, " and ")
	}
	return mustJSON([]string{
		fmt.Sprintf("Delivered features using %s, cutting release time by 30%%.", tech),
		"Led a cross-functional initiative that raised customer satisfaction scores by 15%.",
		"Automated recurring reporting, saving the team 6 hours per week.",
	})
}

func buildSummary(prompt string) string {
	level := seniorityLevels[detectSeniority(prompt)].label
	skills := skillNames(detectSkills(prompt))
	focus := "building dependable products"
	if len(skills) > 0 {
		focus = "building dependable products with " + strings.Join(skills, ", ")
	}
	return fmt.Sprintf("%s professional focused on %s. Known for clear communication, "+
		"ownership of outcomes and steady delivery in fast-moving teams.", level, focus)
}

func buildSuggestions(prompt string) string {
	return mustJSON(struct {
		Suggestions []string `json:"suggestions"`
	}{
		Suggestions: []string{
			"Lead each bullet with a strong action verb.",
			"Add measurable outcomes to your most recent role.",
			"Keep the resume to one page if you have under ten years of experience.",
		},
	})
}

func buildDefault(prompt string) string {
	return mustJSON(struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}{
		Status:  "ok",
		Message: "Mock response: no text generation backend is configured.",
	})
}
