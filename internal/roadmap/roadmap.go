package roadmap

import "encoding/json"

// Tier is the priority classification for a skill-to-learn recommendation.
type Tier int

const (
	TierHigh Tier = iota
	TierMedium
	TierLow
)

// Tiers returns all tiers in presentation order.
func Tiers() []Tier {
	return []Tier{TierHigh, TierMedium, TierLow}
}

func (t Tier) String() string {
	switch t {
	case TierHigh:
		return "high"
	case TierMedium:
		return "medium"
	case TierLow:
		return "low"
	default:
		return "unknown"
	}
}

// DisplayName returns a human-readable tier name.
func (t Tier) DisplayName() string {
	switch t {
	case TierHigh:
		return "High Priority"
	case TierMedium:
		return "Medium Priority"
	case TierLow:
		return "Low Priority"
	default:
		return "Unknown"
	}
}

// SkillItem is a single skill-to-learn recommendation. Identity is the name,
// exact match, case-sensitive.
type SkillItem struct {
	Name      string
	Rationale string
}

// CareerPath is a recommended career direction.
type CareerPath struct {
	Title       string
	Description string
}

// MicroProject is a suggested hands-on project.
type MicroProject struct {
	Title       string
	Description string
}

// Roadmap is the canonical, normalized form of a generator reply. It is built
// once per session by Parse and not mutated afterwards.
type Roadmap struct {
	Careers             []CareerPath
	SkillsByTier        map[Tier][]SkillItem
	Projects            []MicroProject
	Tips                []string
	PsychometricAnswers map[string]string
}

// SkillNames returns every recommended skill name across all tiers,
// deduplicated by exact match, in tier order High, Medium, Low.
func (r *Roadmap) SkillNames() []string {
	var names []string
	seen := make(map[string]bool)
	for _, tier := range Tiers() {
		for _, s := range r.SkillsByTier[tier] {
			if seen[s.Name] {
				continue
			}
			seen[s.Name] = true
			names = append(names, s.Name)
		}
	}
	return names
}

// CareerTitles returns the recommended career titles in received order.
func (r *Roadmap) CareerTitles() []string {
	titles := make([]string, 0, len(r.Careers))
	for _, c := range r.Careers {
		titles = append(titles, c.Title)
	}
	return titles
}

// Canonical serialization shape. Primary camelCase aliases only, so that a
// marshal/Parse cycle reproduces the same Roadmap.
type canonicalDoc struct {
	CareerRoadmap  canonicalRoadmap  `json:"careerRoadmap"`
	StudentProfile *canonicalProfile `json:"studentProfile,omitempty"`
}

type canonicalRoadmap struct {
	RecommendedCareerPaths []canonicalCareer  `json:"recommendedCareerPaths"`
	SkillsToLearn          canonicalSkills    `json:"skillsToLearn"`
	SuggestedMicroProjects []canonicalProject `json:"suggestedMicroProjects"`
	InternshipTips         []string           `json:"internshipTips"`
}

type canonicalSkills struct {
	HighPriority   []canonicalSkill `json:"highPriority"`
	MediumPriority []canonicalSkill `json:"mediumPriority"`
	LowPriority    []canonicalSkill `json:"lowPriority"`
}

type canonicalCareer struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

type canonicalProject struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

type canonicalSkill struct {
	Skill  string `json:"skill"`
	Reason string `json:"reason,omitempty"`
}

type canonicalProfile struct {
	PsychometricAnswers map[string]string `json:"psychometricAnswers"`
}

// MarshalCanonical serializes the roadmap under the primary camelCase aliases.
// Parsing the result yields a Roadmap equal to the receiver.
func (r *Roadmap) MarshalCanonical() ([]byte, error) {
	doc := canonicalDoc{
		CareerRoadmap: canonicalRoadmap{
			RecommendedCareerPaths: make([]canonicalCareer, 0, len(r.Careers)),
			SuggestedMicroProjects: make([]canonicalProject, 0, len(r.Projects)),
			InternshipTips:         make([]string, 0, len(r.Tips)),
		},
	}

	for _, c := range r.Careers {
		doc.CareerRoadmap.RecommendedCareerPaths = append(doc.CareerRoadmap.RecommendedCareerPaths, canonicalCareer(c))
	}
	for _, p := range r.Projects {
		doc.CareerRoadmap.SuggestedMicroProjects = append(doc.CareerRoadmap.SuggestedMicroProjects, canonicalProject(p))
	}
	doc.CareerRoadmap.InternshipTips = append(doc.CareerRoadmap.InternshipTips, r.Tips...)

	doc.CareerRoadmap.SkillsToLearn = canonicalSkills{
		HighPriority:   canonicalSkillList(r.SkillsByTier[TierHigh]),
		MediumPriority: canonicalSkillList(r.SkillsByTier[TierMedium]),
		LowPriority:    canonicalSkillList(r.SkillsByTier[TierLow]),
	}

	if len(r.PsychometricAnswers) > 0 {
		doc.StudentProfile = &canonicalProfile{PsychometricAnswers: r.PsychometricAnswers}
	}

	return json.MarshalIndent(doc, "", "  ")
}

func canonicalSkillList(items []SkillItem) []canonicalSkill {
	out := make([]canonicalSkill, 0, len(items))
	for _, s := range items {
		out = append(out, canonicalSkill{Skill: s.Name, Reason: s.Rationale})
	}
	return out
}
