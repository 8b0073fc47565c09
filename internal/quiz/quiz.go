// Package quiz collects the student profile: psychometric answers and the
// selected skill set. The result is returned as an explicit Session value;
// the package holds no state between runs.
package quiz

import (
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/mitchellh/mapstructure"
)

const (
	promptAddCustom = "Add a custom skill"
	promptDone      = "Done selecting"
)

// Question is a single psychometric question with its fixed answer options.
type Question struct {
	Text    string   `mapstructure:"text"`
	Options []string `mapstructure:"options"`
}

// QuestionsFromConfig decodes questionnaire definitions loaded from the
// config file into Questions. Entries without a text or with no options are
// rejected rather than silently skipped, since the config is under the
// operator's control.
func QuestionsFromConfig(raw []map[string]any) ([]Question, error) {
	var questions []Question
	if err := mapstructure.Decode(raw, &questions); err != nil {
		return nil, fmt.Errorf("decoding questionnaire config: %w", err)
	}

	for i, q := range questions {
		if strings.TrimSpace(q.Text) == "" {
			return nil, fmt.Errorf("questionnaire entry %d has no text", i)
		}
		if len(q.Options) == 0 {
			return nil, fmt.Errorf("question %q has no options", q.Text)
		}
	}
	return questions, nil
}

// Session holds everything collected from the student, passed by value into
// the generator and the graph builder.
type Session struct {
	PsychometricAnswers map[string]string
	Skills              []string
}

// Questions returns the psychometric questionnaire in presentation order.
func Questions() []Question {
	return []Question{
		{
			Text:    "How do you prefer working?",
			Options: []string{"Independently", "In a team", "Depends on the task"},
		},
		{
			Text:    "What motivates you most?",
			Options: []string{"Learning new things", "Achieving goals", "Helping others", "Recognition"},
		},
		{
			Text:    "Are you comfortable with uncertainty and change?",
			Options: []string{"Yes", "No", "Sometimes"},
		},
		{
			Text:    "How do you handle challenges?",
			Options: []string{"Face them head-on", "Seek help", "Avoid if possible", "Analyze and plan"},
		},
	}
}

// SkillOptions returns the curated skill list offered during selection.
func SkillOptions() []string {
	return []string{
		"Python", "JavaScript", "Machine Learning", "Data Analysis",
		"React", "Node.js", "SQL", "Cloud Computing", "DevOps",
		"UI/UX Design", "Communication", "Project Management",
	}
}

// Seams for tests; promptui reads the terminal directly.
var (
	runSelect = func(s *promptui.Select) (int, string, error) { return s.Run() }
	runPrompt = func(p *promptui.Prompt) (string, error) { return p.Run() }
)

// Run walks the student through the given psychometric questions and the
// skill selection. It returns an error only when the terminal interaction
// fails or no skill was selected at all.
func Run(questions []Question) (*Session, error) {
	session := &Session{
		PsychometricAnswers: make(map[string]string),
	}

	for _, q := range questions {
		sel := &promptui.Select{
			Label: q.Text,
			Items: q.Options,
		}

		_, answer, err := runSelect(sel)
		if err != nil {
			return nil, fmt.Errorf("psychometric question %q: %w", q.Text, err)
		}

		session.PsychometricAnswers[q.Text] = answer
	}

	skills, err := selectSkills()
	if err != nil {
		return nil, err
	}

	if len(skills) == 0 {
		return nil, fmt.Errorf("at least one skill is required")
	}

	session.Skills = skills
	return session, nil
}

// selectSkills loops a select prompt over the remaining curated options until
// the student is done, with a free-form entry for skills not on the list.
func selectSkills() ([]string, error) {
	var selected []string
	chosen := make(map[string]bool)

	for {
		items := make([]string, 0, len(SkillOptions())+2)
		for _, opt := range SkillOptions() {
			if !chosen[opt] {
				items = append(items, opt)
			}
		}
		items = append(items, promptAddCustom, promptDone)

		sel := &promptui.Select{
			Label: fmt.Sprintf("Select your skills (%d chosen)", len(selected)),
			Items: items,
		}

		_, picked, err := runSelect(sel)
		if err != nil {
			return nil, fmt.Errorf("skill selection: %w", err)
		}

		switch picked {
		case promptDone:
			return selected, nil
		case promptAddCustom:
			prompt := &promptui.Prompt{
				Label: "Enter skills separated by commas",
			}
			entered, err := runPrompt(prompt)
			if err != nil {
				return nil, fmt.Errorf("custom skill entry: %w", err)
			}
			selected = MergeSkills(selected, SplitSkills(entered))
			for _, s := range selected {
				chosen[s] = true
			}
		default:
			if !chosen[picked] {
				chosen[picked] = true
				selected = append(selected, picked)
			}
		}
	}
}

// SplitSkills parses a comma-separated free-form entry into trimmed,
// deduplicated skill names. Empty segments are dropped.
func SplitSkills(s string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, part := range strings.Split(s, ",") {
		skill := strings.TrimSpace(part)
		if skill == "" || seen[skill] {
			continue
		}
		seen[skill] = true
		out = append(out, skill)
	}
	return out
}

// MergeSkills concatenates skill lists, deduplicating by exact name and
// keeping the first occurrence's position.
func MergeSkills(lists ...[]string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, list := range lists {
		for _, skill := range list {
			if skill == "" || seen[skill] {
				continue
			}
			seen[skill] = true
			out = append(out, skill)
		}
	}
	return out
}
