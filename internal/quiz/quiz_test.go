package quiz

import (
	"reflect"
	"testing"

	"github.com/manifoldco/promptui"
)

func TestSplitSkills(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"single", "Rust", []string{"Rust"}},
		{"trims and drops empties", "  Rust , , Go ,", []string{"Rust", "Go"}},
		{"deduplicates", "Go,Go, Go ", []string{"Go"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := SplitSkills(tc.input); !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("SplitSkills(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestMergeSkills(t *testing.T) {
	got := MergeSkills(
		[]string{"Python", "SQL"},
		[]string{"SQL", "Go", ""},
		nil,
		[]string{"Python", "Rust"},
	)

	want := []string{"Python", "SQL", "Go", "Rust"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("MergeSkills() = %v, want %v", got, want)
	}
}

func TestRunCollectsAnswersAndSkills(t *testing.T) {
	originalSelect, originalPrompt := runSelect, runPrompt
	defer func() { runSelect, runPrompt = originalSelect, originalPrompt }()

	// One scripted answer per psychometric question, then the skill loop:
	// pick SQL, add custom skills, done.
	selections := []string{
		"In a team",
		"Learning new things",
		"Sometimes",
		"Analyze and plan",
		"SQL",
		promptAddCustom,
		promptDone,
	}

	var step int
	runSelect = func(_ *promptui.Select) (int, string, error) {
		answer := selections[step]
		step++
		return 0, answer, nil
	}
	runPrompt = func(_ *promptui.Prompt) (string, error) {
		return "Rust, Embedded C", nil
	}

	session, err := Run(Questions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(session.PsychometricAnswers) != len(Questions()) {
		t.Fatalf("expected an answer per question, got %v", session.PsychometricAnswers)
	}

	if got := session.PsychometricAnswers["How do you prefer working?"]; got != "In a team" {
		t.Fatalf("unexpected answer: %q", got)
	}

	want := []string{"SQL", "Rust", "Embedded C"}
	if !reflect.DeepEqual(session.Skills, want) {
		t.Fatalf("unexpected skills: %v", session.Skills)
	}
}

func TestRunRequiresAtLeastOneSkill(t *testing.T) {
	originalSelect := runSelect
	defer func() { runSelect = originalSelect }()

	selections := []string{
		"Independently",
		"Achieving goals",
		"Yes",
		"Seek help",
		promptDone,
	}

	var step int
	runSelect = func(_ *promptui.Select) (int, string, error) {
		answer := selections[step]
		step++
		return 0, answer, nil
	}

	if _, err := Run(Questions()); err == nil {
		t.Fatal("expected an error when no skill is selected")
	}
}

func TestQuestionsFromConfig(t *testing.T) {
	raw := []map[string]any{
		{"text": "Preferred environment?", "options": []string{"Startup", "Enterprise"}},
	}

	questions, err := QuestionsFromConfig(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(questions) != 1 || questions[0].Text != "Preferred environment?" {
		t.Fatalf("unexpected questions: %+v", questions)
	}
	if !reflect.DeepEqual(questions[0].Options, []string{"Startup", "Enterprise"}) {
		t.Fatalf("unexpected options: %v", questions[0].Options)
	}
}

func TestQuestionsFromConfigRejectsInvalidEntries(t *testing.T) {
	cases := []struct {
		name string
		raw  []map[string]any
	}{
		{"missing text", []map[string]any{{"options": []string{"A"}}}},
		{"no options", []map[string]any{{"text": "Q"}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := QuestionsFromConfig(tc.raw); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}
