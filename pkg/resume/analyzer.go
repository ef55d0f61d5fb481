package resume

import (
	"regexp"
	"strconv"

	"github.com/avikamggh/ai-interviewer/pkg/nlp"
)

// skillPatterns holds the disjunctive keyword pattern for every skill. A
// skill is detected when its pattern matches anywhere in the lower-cased
// text; frequency and position carry no weight.
var skillPatterns = map[Skill]*regexp.Regexp{
	SkillJavaScript: regexp.MustCompile(`javascript|js|node\.?js|react|angular|vue|jquery`),
	SkillPython:     regexp.MustCompile(`python|django|flask|pandas|numpy|fastapi`),
	SkillReact:      regexp.MustCompile(`react|jsx|redux|next\.?js`),
	SkillNodeJS:     regexp.MustCompile(`node\.?js|express|npm|backend`),
	SkillDatabase:   regexp.MustCompile(`sql|mysql|postgresql|mongodb|database|redis`),
	SkillFrontend:   regexp.MustCompile(`html|css|frontend|ui|ux|bootstrap|tailwind`),
	SkillBackend:    regexp.MustCompile(`backend|api|server|microservices|rest`),
}

var yearsPattern = regexp.MustCompile(`(\d+)\s*(?:years?|yrs?)\s*(?:of\s*)?(?:experience|exp)`)

var (
	seniorKeywords = []string{"senior", "lead", "principal", "architect", "manager"}
	midKeywords    = []string{"mid", "intermediate", "experienced"}
)

// Analyze derives a skill profile and an experience estimate from raw resume
// text. It is a pure function and never fails: text without signal yields an
// all-false profile, zero years and the junior level.
func Analyze(rawText string) Analysis {
	text := nlp.Normalize(rawText)

	profile := make(Profile, len(Skills))
	for _, skill := range Skills {
		profile[skill] = skillPatterns[skill].MatchString(text)
	}

	return Analysis{
		Profile: profile,
		Experience: Experience{
			Years: yearsOfExperience(text),
			Level: experienceLevel(text),
		},
		SourceText: rawText,
	}
}

func yearsOfExperience(text string) int {
	m := yearsPattern.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// experienceLevel applies the seniority rules in fixed priority order: the
// first matching rule wins and rules are never combined.
func experienceLevel(text string) Level {
	switch {
	case nlp.ContainsAny(text, seniorKeywords...):
		return LevelSenior
	case nlp.ContainsAny(text, midKeywords...):
		return LevelMid
	default:
		return LevelJunior
	}
}
