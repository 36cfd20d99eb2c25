package content_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SouFien19/Ai-Resume-Builder-sub002/internal/content"
	"github.com/SouFien19/Ai-Resume-Builder-sub002/internal/generation"
	"github.com/SouFien19/Ai-Resume-Builder-sub002/internal/mocks"
	"github.com/SouFien19/Ai-Resume-Builder-sub002/internal/platform/logger"
	"github.com/SouFien19/Ai-Resume-Builder-sub002/internal/platform/oracle"
)

var testProfile = content.Profile{
	Name:            "Jane Doe",
	Title:           "Backend Engineer",
	YearsExperience: 6,
	Skills:          []string{"Go", "PostgreSQL", "Docker"},
	Highlights:      []string{"Cut p99 latency of the payments API by 40%"},
}

// newOracleWriter returns a Writer backed by a mock-mode generation service.
func newOracleWriter(t *testing.T) *content.Writer {
	t.Helper()

	_, log := logger.NewTestLogger(t)
	svc, err := generation.NewMockService(log, oracle.New(), generation.StandardDefaults())
	require.NoError(t, err)

	w, err := content.NewWriter(svc, log)
	require.NoError(t, err)
	return w
}

func newMockWriter(t *testing.T, gen *mocks.MockGenerator) (*logger.TestLogBuffer, *content.Writer) {
	t.Helper()

	logBuf, log := logger.NewTestLogger(t)
	w, err := content.NewWriter(gen, log)
	require.NoError(t, err)
	return logBuf, w
}

func TestWriterAgainstOracle(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	w := newOracleWriter(t)

	t.Run("summary", func(t *testing.T) {
		summary, err := w.Summary(ctx, testProfile)
		require.NoError(t, err)
		assert.Contains(t, summary, "professional")
	})

	t.Run("bullets", func(t *testing.T) {
		bullets, err := w.ImproveBullets(ctx, "Backend Engineer", []string{"worked on APIs"})
		require.NoError(t, err)
		assert.Len(t, bullets, 3)
	})

	t.Run("skills", func(t *testing.T) {
		skills, err := w.SuggestSkills(ctx, "Backend Engineer", []string{"Go"})
		require.NoError(t, err)
		assert.NotContains(t, skills.Technical, "Go")
		assert.NotEmpty(t, skills.Technical)
		assert.NotEmpty(t, skills.Soft)
	})

	t.Run("jobs", func(t *testing.T) {
		jobs, err := w.SuggestJobs(ctx, testProfile)
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(jobs), 2)
		require.LessOrEqual(t, len(jobs), 4)
		for _, job := range jobs {
			assert.NotEmpty(t, job.ID)
			assert.NotEmpty(t, job.Title)
			assert.NotEmpty(t, job.Company)
			assert.GreaterOrEqual(t, job.MatchScore, 50)
			assert.LessOrEqual(t, job.MatchScore, 100)
		}
	})

	t.Run("ats", func(t *testing.T) {
		report, err := w.AnalyzeATS(ctx, "Go developer with PostgreSQL and Docker", "Looking for Go and Kubernetes")
		require.NoError(t, err)
		assert.GreaterOrEqual(t, report.Score, 0)
		assert.LessOrEqual(t, report.Score, 100)
		assert.NotEmpty(t, report.Recommendations)
	})

	t.Run("cover letter", func(t *testing.T) {
		letter, err := w.CoverLetter(ctx, testProfile, "Acme", "Staff Engineer")
		require.NoError(t, err)
		assert.Contains(t, letter, "Dear Hiring Manager")
	})
}

func TestImproveBullets(t *testing.T) {
	t.Parallel()

	t.Run("fenced array", func(t *testing.T) {
		t.Parallel()

		gen := mocks.NewMockGeneratorWithText("```json\n[\"Built APIs\", \"  \", \"Shipped features\"]\n```")
		_, w := newMockWriter(t, gen)

		bullets, err := w.ImproveBullets(context.Background(), "Engineer", []string{"did stuff"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Built APIs", "Shipped features"}, bullets)
		assert.Contains(t, gen.LastPrompt(), "did stuff")
		assert.Equal(t, 500, gen.LastRequest().MaxTokens)
	})

	t.Run("prose keeps input", func(t *testing.T) {
		t.Parallel()

		gen := mocks.NewMockGeneratorWithText("I'd be happy to help with your resume!")
		logBuf, w := newMockWriter(t, gen)

		input := []string{"did stuff", "more stuff"}
		bullets, err := w.ImproveBullets(context.Background(), "Engineer", input)
		require.NoError(t, err)
		assert.Equal(t, input, bullets)
		logger.AssertLogContains(t, logBuf, "unusable bullet point response")
	})

	t.Run("no input skips generation", func(t *testing.T) {
		t.Parallel()

		gen := mocks.NewMockGeneratorWithText("unused")
		_, w := newMockWriter(t, gen)

		bullets, err := w.ImproveBullets(context.Background(), "Engineer", nil)
		require.NoError(t, err)
		assert.Empty(t, bullets)
		assert.Zero(t, gen.CallCount())
	})
}

func TestSuggestSkillsDropsExisting(t *testing.T) {
	t.Parallel()

	gen := mocks.NewMockGeneratorWithText(
		`Here you go: {"technical":["Go","Docker","docker"," ","Kubernetes"],"soft":["Mentoring"]}`)
	_, w := newMockWriter(t, gen)

	skills, err := w.SuggestSkills(context.Background(), "Backend Engineer", []string{"go"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Docker", "Kubernetes"}, skills.Technical)
	assert.Equal(t, []string{"Mentoring"}, skills.Soft)
}

func TestSuggestSkillsUnusableResponse(t *testing.T) {
	t.Parallel()

	_, w := newMockWriter(t, mocks.NewMockGeneratorWithText("no idea"))

	skills, err := w.SuggestSkills(context.Background(), "Backend Engineer", nil)
	require.NoError(t, err)
	assert.Empty(t, skills.Technical)
	assert.Empty(t, skills.Soft)
}

func TestSuggestJobsDropsInvalidPostings(t *testing.T) {
	t.Parallel()

	gen := mocks.NewMockGeneratorWithText(`[
		{"title":"Go Engineer","company":"Acme","matchScore":88,"skills":["Go"]},
		{"title":"No Company"},
		{"title":"Bad Score","company":"Initech","matchScore":150},
		{"title":"Data Engineer","company":"Globex"}
	]`)
	logBuf, w := newMockWriter(t, gen)

	jobs, err := w.SuggestJobs(context.Background(), testProfile)
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, "Go Engineer", jobs[0].Title)
	assert.Equal(t, 88, jobs[0].MatchScore)
	assert.Equal(t, []string{"Go"}, jobs[0].Skills)
	assert.Equal(t, "Globex", jobs[1].Company)
	logger.AssertLogContains(t, logBuf, "dropped invalid job postings")
}

func TestSuggestJobsUnusableResponse(t *testing.T) {
	t.Parallel()

	_, w := newMockWriter(t, mocks.NewMockGeneratorWithText(`{"error":"not a list"}`))

	jobs, err := w.SuggestJobs(context.Background(), testProfile)
	require.NoError(t, err)
	assert.NotNil(t, jobs)
	assert.Empty(t, jobs)
}

func TestAnalyzeATS(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		response  string
		wantScore int
		wantMiss  []string
	}{
		{
			name:      "in range",
			response:  `{"score":72.5,"matchedKeywords":["Go"],"missingKeywords":["Kubernetes"],"recommendations":["Add Kubernetes"]}`,
			wantScore: 73,
			wantMiss:  []string{"Kubernetes"},
		},
		{
			name:      "above range",
			response:  "```json\n{\"score\":140}\n```",
			wantScore: 100,
			wantMiss:  []string{},
		},
		{
			name:      "below range",
			response:  `{"score":-5,"missingKeywords":[]}`,
			wantScore: 0,
			wantMiss:  []string{},
		},
		{
			name:      "schema mismatch",
			response:  `{"score":"high"}`,
			wantScore: 0,
			wantMiss:  []string{},
		},
		{
			name:      "no JSON",
			response:  "The resume looks great!",
			wantScore: 0,
			wantMiss:  []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			gen := mocks.NewMockGeneratorWithText(tc.response)
			_, w := newMockWriter(t, gen)

			report, err := w.AnalyzeATS(context.Background(), "resume", "job")
			require.NoError(t, err)
			assert.Equal(t, tc.wantScore, report.Score)
			assert.Equal(t, tc.wantMiss, report.MissingKeywords)
			assert.NotNil(t, report.Recommendations)
			assert.InDelta(t, 0.2, gen.LastRequest().Temperature, 1e-9)
		})
	}
}

func TestGenerationFailuresPropagate(t *testing.T) {
	t.Parallel()

	gen := mocks.MockGeneratorThatFails()
	_, w := newMockWriter(t, gen)
	ctx := context.Background()

	_, err := w.Summary(ctx, testProfile)
	assert.ErrorIs(t, err, generation.ErrQuotaExceeded)

	_, err = w.ImproveBullets(ctx, "Engineer", []string{"x"})
	assert.ErrorIs(t, err, generation.ErrQuotaExceeded)

	_, err = w.SuggestSkills(ctx, "Engineer", nil)
	assert.ErrorIs(t, err, generation.ErrQuotaExceeded)

	_, err = w.SuggestJobs(ctx, testProfile)
	assert.ErrorIs(t, err, generation.ErrQuotaExceeded)

	_, err = w.AnalyzeATS(ctx, "resume", "job")
	assert.ErrorIs(t, err, generation.ErrQuotaExceeded)

	_, err = w.CoverLetter(ctx, testProfile, "Acme", "Engineer")
	assert.ErrorIs(t, err, generation.ErrQuotaExceeded)
	assert.Equal(t, content.MsgTemporarilyUnavailable, content.UserMessage(err))

	assert.Equal(t, 6, gen.CallCount())
}

func TestNewWriterValidation(t *testing.T) {
	t.Parallel()

	_, log := logger.NewTestLogger(t)

	_, err := content.NewWriter(nil, log)
	assert.Error(t, err)

	_, err = content.NewWriter(&mocks.MockGenerator{}, nil)
	assert.Error(t, err)
}
