package resume

// Skill identifies one detectable skill category.
type Skill string

const (
	SkillJavaScript Skill = "javascript"
	SkillPython     Skill = "python"
	SkillReact      Skill = "react"
	SkillNodeJS     Skill = "nodejs"
	SkillDatabase   Skill = "database"
	SkillFrontend   Skill = "frontend"
	SkillBackend    Skill = "backend"
)

// Skills lists every detectable skill in the order technical questions are
// composed. The order is part of the selection contract and must not change
// between releases.
var Skills = []Skill{
	SkillJavaScript,
	SkillPython,
	SkillReact,
	SkillNodeJS,
	SkillDatabase,
	SkillFrontend,
	SkillBackend,
}

// Level is the estimated seniority of the candidate.
type Level string

const (
	LevelJunior Level = "junior"
	LevelMid    Level = "mid"
	LevelSenior Level = "senior"
)

// Profile maps every skill to whether it was detected in the resume text.
// The mapping is always total: each skill in Skills has an entry.
type Profile map[Skill]bool

// Experience holds the estimated years and seniority level.
type Experience struct {
	Years int   `json:"years"`
	Level Level `json:"level"`
}

// Analysis is the immutable result of analyzing one resume.
type Analysis struct {
	Profile    Profile    `json:"skills"`
	Experience Experience `json:"experience"`
	SourceText string     `json:"fullText"`
}

// DetectedSkills returns the detected skills in the fixed iteration order.
func (a Analysis) DetectedSkills() []Skill {
	var out []Skill
	for _, s := range Skills {
		if a.Profile[s] {
			out = append(out, s)
		}
	}
	return out
}
