package content

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/SouFien19/Ai-Resume-Builder-sub002/internal/extract"
	"github.com/SouFien19/Ai-Resume-Builder-sub002/internal/generation"
)

// Writer produces resume content through a generation.Generator. It is safe
// for concurrent use if the generator is.
type Writer struct {
	gen    generation.Generator
	logger *slog.Logger
}

// NewWriter creates a Writer.
func NewWriter(gen generation.Generator, logger *slog.Logger) (*Writer, error) {
	if gen == nil {
		return nil, errors.New("generator cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	return &Writer{gen: gen, logger: logger.With("component", "content_writer")}, nil
}

// Summary writes a short professional summary.
func (w *Writer) Summary(ctx context.Context, p Profile) (string, error) {
	text, err := w.gen.GenerateText(ctx, summaryPrompt(p),
		generation.WithMaxTokens(300), generation.WithTemperature(0.7))
	if err != nil {
		return "", fmt.Errorf("generate summary: %w", err)
	}
	return extract.Clean(text), nil
}

// ImproveBullets rewrites bullets for role. If the response holds no usable
// list the input bullets come back unchanged.
func (w *Writer) ImproveBullets(ctx context.Context, role string, bullets []string) ([]string, error) {
	if len(bullets) == 0 {
		return []string{}, nil
	}

	text, err := w.gen.GenerateText(ctx, bulletsPrompt(role, bullets),
		generation.WithMaxTokens(500), generation.WithTemperature(0.6))
	if err != nil {
		return nil, fmt.Errorf("improve bullet points: %w", err)
	}

	out := extract.Extract[[]string](text, nil)
	improved := nonEmpty(out.Value)
	if !out.Recovered || len(improved) == 0 {
		w.logger.WarnContext(ctx, "unusable bullet point response, keeping input",
			"response_length", len(text))
		return append([]string(nil), bullets...), nil
	}
	return improved, nil
}

// SuggestSkills proposes skills for role, leaving out the ones in existing.
func (w *Writer) SuggestSkills(ctx context.Context, role string, existing []string) (SkillSuggestions, error) {
	text, err := w.gen.GenerateText(ctx, skillsPrompt(role, existing),
		generation.WithMaxTokens(400), generation.WithTemperature(0.5))
	if err != nil {
		return SkillSuggestions{}, fmt.Errorf("suggest skills: %w", err)
	}

	out := extract.Extract(text, SkillSuggestions{})
	if !out.Recovered {
		w.logger.WarnContext(ctx, "unusable skill suggestion response",
			"response_length", len(text))
	}

	have := make(map[string]bool, len(existing))
	for _, s := range existing {
		have[strings.ToLower(strings.TrimSpace(s))] = true
	}
	return SkillSuggestions{
		Technical: dedupe(out.Value.Technical, have),
		Soft:      dedupe(out.Value.Soft, have),
	}, nil
}

// SuggestJobs proposes openings for p. Postings that fail schema validation
// are dropped.
func (w *Writer) SuggestJobs(ctx context.Context, p Profile) ([]JobPosting, error) {
	text, err := w.gen.GenerateText(ctx, jobsPrompt(p),
		generation.WithMaxTokens(1500), generation.WithTemperature(0.6))
	if err != nil {
		return nil, fmt.Errorf("suggest jobs: %w", err)
	}

	out := extract.Extract[[]map[string]any](text, nil)
	if !out.Recovered {
		w.logger.WarnContext(ctx, "unusable job suggestion response",
			"response_length", len(text))
		return []JobPosting{}, nil
	}

	jobs := make([]JobPosting, 0, len(out.Value))
	dropped := 0
	for _, raw := range out.Value {
		var job JobPosting
		if err := decodeValid(jobPostingSchema, raw, &job); err != nil {
			dropped++
			continue
		}
		jobs = append(jobs, job)
	}
	if dropped > 0 {
		w.logger.WarnContext(ctx, "dropped invalid job postings",
			"dropped", dropped,
			"kept", len(jobs))
	}
	return jobs, nil
}

// atsPayload accepts a fractional score; ATSReport rounds it.
type atsPayload struct {
	Score           float64  `json:"score"`
	MatchedKeywords []string `json:"matchedKeywords"`
	MissingKeywords []string `json:"missingKeywords"`
	Recommendations []string `json:"recommendations"`
}

// AnalyzeATS scores resumeText against jobDescription. An unusable response
// yields a zero-score report.
func (w *Writer) AnalyzeATS(ctx context.Context, resumeText, jobDescription string) (ATSReport, error) {
	text, err := w.gen.GenerateText(ctx, atsPrompt(resumeText, jobDescription),
		generation.WithMaxTokens(800), generation.WithTemperature(0.2))
	if err != nil {
		return ATSReport{}, fmt.Errorf("analyze resume: %w", err)
	}

	report := emptyReport()
	out := extract.Extract[map[string]any](text, nil)
	if !out.Recovered {
		w.logger.WarnContext(ctx, "unusable ATS response", "response_length", len(text))
		return report, nil
	}

	var payload atsPayload
	if err := decodeValid(atsReportSchema, out.Value, &payload); err != nil {
		w.logger.WarnContext(ctx, "invalid ATS response", "error", err)
		return report, nil
	}

	report.Score = clampScore(payload.Score)
	report.MatchedKeywords = nonEmpty(payload.MatchedKeywords)
	report.MissingKeywords = nonEmpty(payload.MissingKeywords)
	report.Recommendations = nonEmpty(payload.Recommendations)
	return report, nil
}

// CoverLetter writes a cover letter for role at company.
func (w *Writer) CoverLetter(ctx context.Context, p Profile, company, role string) (string, error) {
	text, err := w.gen.GenerateText(ctx, coverLetterPrompt(p, company, role),
		generation.WithMaxTokens(800), generation.WithTemperature(0.8))
	if err != nil {
		return "", fmt.Errorf("generate cover letter: %w", err)
	}
	return extract.Clean(text), nil
}

func emptyReport() ATSReport {
	return ATSReport{
		MatchedKeywords: []string{},
		MissingKeywords: []string{},
		Recommendations: []string{},
	}
}

func clampScore(score float64) int {
	if math.IsNaN(score) {
		return 0
	}
	return int(math.Round(math.Max(0, math.Min(100, score))))
}

// nonEmpty trims entries and drops the blank ones. It never returns nil.
func nonEmpty(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// dedupe is nonEmpty that also skips entries in have, case-insensitively.
func dedupe(in []string, have map[string]bool) []string {
	seen := make(map[string]bool, len(have))
	for k := range have {
		seen[k] = true
	}
	out := make([]string, 0, len(in))
	for _, s := range nonEmpty(in) {
		key := strings.ToLower(s)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
	}
	return out
}
