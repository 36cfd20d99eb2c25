package content

import (
	"fmt"
	"strings"
)

func describeProfile(p Profile) string {
	var b strings.Builder
	if p.Name != "" {
		fmt.Fprintf(&b, "Name: %s\n", p.Name)
	}
	if p.Title != "" {
		fmt.Fprintf(&b, "Current title: %s\n", p.Title)
	}
	if p.YearsExperience > 0 {
		fmt.Fprintf(&b, "Years of experience: %d\n", p.YearsExperience)
	}
	if len(p.Skills) > 0 {
		fmt.Fprintf(&b, "Skills: %s\n", strings.Join(p.Skills, ", "))
	}
	for _, h := range p.Highlights {
		fmt.Fprintf(&b, "- %s\n", h)
	}
	return b.String()
}

func summaryPrompt(p Profile) string {
	return "Write a professional summary of two or three sentences for this candidate. " +
		"Respond with plain text only.\n\n" + describeProfile(p)
}

func bulletsPrompt(role string, bullets []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Rewrite these resume bullet points for a %s role. ", role)
	b.WriteString("Start each with an action verb and add measurable impact where possible. ")
	b.WriteString("Respond with a JSON array of strings and nothing else.\n\n")
	for _, bullet := range bullets {
		fmt.Fprintf(&b, "- %s\n", bullet)
	}
	return b.String()
}

func skillsPrompt(role string, existing []string) string {
	return fmt.Sprintf("Suggest skills a %s should add to their resume. They already list: %s. "+
		`Respond with a JSON object {"technical": [...], "soft": [...]} and nothing else.`,
		role, strings.Join(existing, ", "))
}

func jobsPrompt(p Profile) string {
	return "Suggest job opportunities that fit this candidate. " +
		"Respond with a JSON array of objects with the fields id, title, company, location, seniority, " +
		"skills, salaryRange, matchScore (0-100) and description, and nothing else.\n\n" + describeProfile(p)
}

func atsPrompt(resumeText, jobDescription string) string {
	return "Act as an ATS and score how well the resume matches the job description. " +
		`Respond with a JSON object {"score": 0-100, "matchedKeywords": [...], "missingKeywords": [...], ` +
		`"recommendations": [...]} and nothing else.` +
		"\n\nResume:\n" + resumeText + "\n\nJob description:\n" + jobDescription
}

func coverLetterPrompt(p Profile, company, role string) string {
	return fmt.Sprintf("Write a cover letter for the %s position at %s. "+
		"Keep it under 300 words and respond with the letter text only.\n\n%s",
		role, company, describeProfile(p))
}
