package oracle

import (
	"hash/fnv"
	"regexp"
	"strings"
)

var tokenPattern = regexp.MustCompile(`[a-z0-9+#.]+`)

// tokenize splits lower-cased text into words, keeping the punctuation that
// appears inside technology names (c++, c#, node.js).
func tokenize(lower string) []string {
	raw := tokenPattern.FindAllString(lower, -1)
	out := raw[:0]
	for _, tok := range raw {
		tok = strings.Trim(tok, ".")
		if tok != "" {
			out = append(out, tok)
		}
	}
	return out
}

type skill struct {
	name    string
	aliases []string
	phrases []string
	// role is the job family suggested for candidates leading with this skill.
	role string
	// related skills are offered as suggestions and ATS gaps.
	related []string
}

var skillCatalog = []skill{
	{name: "Go", aliases: []string{"go", "golang"}, role: "Backend Engineer", related: []string{"gRPC", "PostgreSQL", "Kubernetes"}},
	{name: "Python", aliases: []string{"python"}, role: "Data Engineer", related: []string{"Pandas", "Airflow", "SQL"}},
	{name: "JavaScript", aliases: []string{"javascript", "js"}, role: "Frontend Developer", related: []string{"TypeScript", "React", "Testing Library"}},
	{name: "TypeScript", aliases: []string{"typescript", "ts"}, role: "Full Stack Developer", related: []string{"Node.js", "Next.js", "GraphQL"}},
	{name: "React", aliases: []string{"react", "react.js", "reactjs"}, role: "Frontend Engineer", related: []string{"Next.js", "Redux", "Tailwind CSS"}},
	{name: "Node.js", aliases: []string{"node", "node.js", "nodejs"}, role: "Backend Developer", related: []string{"Express", "MongoDB", "Docker"}},
	{name: "Java", aliases: []string{"java"}, role: "Software Engineer", related: []string{"Spring Boot", "Kafka", "Microservices"}},
	{name: "SQL", aliases: []string{"sql", "postgresql", "postgres", "mysql"}, role: "Data Analyst", related: []string{"dbt", "Data Modeling", "Python"}},
	{name: "AWS", aliases: []string{"aws"}, role: "Cloud Engineer", related: []string{"Terraform", "Lambda", "CloudFormation"}},
	{name: "Docker", aliases: []string{"docker"}, role: "DevOps Engineer", related: []string{"Kubernetes", "CI/CD", "Helm"}},
	{name: "Kubernetes", aliases: []string{"kubernetes", "k8s"}, role: "Platform Engineer", related: []string{"Helm", "Prometheus", "Istio"}},
	{name: "Machine Learning", aliases: []string{"ml"}, phrases: []string{"machine learning"}, role: "Machine Learning Engineer", related: []string{"PyTorch", "MLOps", "Statistics"}},
}

// detectSkills returns catalog skills mentioned in the prompt, in catalog
// order, each at most once.
func detectSkills(prompt string) []skill {
	lower := strings.ToLower(prompt)
	tokens := map[string]bool{}
	for _, tok := range tokenize(lower) {
		tokens[tok] = true
	}

	var found []skill
	for _, s := range skillCatalog {
		hit := false
		for _, a := range s.aliases {
			if tokens[a] {
				hit = true
				break
			}
		}
		for _, ph := range s.phrases {
			if !hit && strings.Contains(lower, ph) {
				hit = true
			}
		}
		if hit {
			found = append(found, s)
		}
	}
	return found
}

func skillNames(skills []skill) []string {
	names := make([]string, 0, len(skills))
	for _, s := range skills {
		names = append(names, s.name)
	}
	return names
}

// seniority levels, checked most senior first.
var seniorityLevels = []struct {
	label    string
	keywords []string
	salary   string
}{
	{"Principal", []string{"principal", "staff", "architect"}, "$190k - $240k"},
	{"Lead", []string{"lead", "head", "manager"}, "$160k - $200k"},
	{"Senior", []string{"senior", "sr"}, "$130k - $170k"},
	{"Mid-level", []string{"mid", "intermediate"}, "$95k - $125k"},
	{"Junior", []string{"junior", "jr", "graduate", "entry"}, "$65k - $85k"},
	{"Intern", []string{"intern", "internship", "student"}, "$25 - $35 / hour"},
}

const defaultSeniority = 3 // Mid-level

// detectSeniority returns the index into seniorityLevels.
func detectSeniority(prompt string) int {
	tokens := map[string]bool{}
	for _, tok := range tokenize(strings.ToLower(prompt)) {
		tokens[tok] = true
	}
	for i, lvl := range seniorityLevels {
		for _, k := range lvl.keywords {
			if tokens[k] {
				return i
			}
		}
	}
	return defaultSeniority
}

// seed gives a stable per-prompt offset for picking from fixed lists.
func seed(prompt string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(prompt))
	return int(h.Sum32() & 0x7fffffff)
}

func pick(list []string, offset int) string {
	return list[offset%len(list)]
}
