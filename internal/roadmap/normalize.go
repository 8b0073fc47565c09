// Package roadmap turns the generator's free-form JSON reply into a normalized
// Roadmap value. The generator drifts between key spellings (camelCase vs
// snake_case) and between scalar and object list entries, so every field is
// resolved through an ordered alias list and every entry goes through a single
// scalar-or-object coercion step. Shape irregularities are absorbed by
// defaulting; only fundamentally unparsable input is an error.
package roadmap

import (
	"encoding/json"
	"fmt"
	"strings"
)

// sentinels are null-like replies the generator occasionally produces instead
// of a JSON object. Matched case-insensitively after trimming.
var sentinels = map[string]bool{
	"":          true,
	"none":      true,
	"null":      true,
	"undefined": true,
}

// InvalidPayloadError reports raw text that could not be parsed at all.
// It carries the offending payload for diagnostics.
type InvalidPayloadError struct {
	Raw string
}

func (e *InvalidPayloadError) Error() string {
	return fmt.Sprintf("invalid roadmap payload: %q", preview(e.Raw, 120))
}

func preview(s string, limit int) string {
	runes := []rune(strings.TrimSpace(s))
	if len(runes) <= limit {
		return string(runes)
	}
	return string(runes[:limit]) + "..."
}

// Parse normalizes a raw generator reply into a Roadmap.
//
// The input is expected to be a fence-stripped JSON object, but it is
// re-validated here rather than trusted: an empty string, a null-like sentinel
// token, or anything that does not parse as a JSON object fails with
// *InvalidPayloadError. Missing or misnamed sections never fail; they default
// to empty collections.
func Parse(raw string) (*Roadmap, error) {
	trimmed := strings.TrimSpace(raw)
	if sentinels[strings.ToLower(trimmed)] {
		return nil, &InvalidPayloadError{Raw: raw}
	}

	var doc map[string]any
	if err := json.Unmarshal([]byte(trimmed), &doc); err != nil {
		return nil, &InvalidPayloadError{Raw: raw}
	}

	root := asObject(lookupAny(doc, "careerRoadmap", "roadmap"))
	if root == nil {
		// No recognized wrapper: the sections live at the top level.
		root = doc
	}

	rm := &Roadmap{
		Careers:             careerPaths(lookupAny(root, "recommendedCareerPaths", "recommended_career_paths")),
		SkillsByTier:        skillsByTier(asObject(lookupAny(root, "skillsToLearn", "skills_to_learn"))),
		Projects:            microProjects(lookupAny(root, "suggestedMicroProjects", "suggested_micro_projects", "microProjects", "micro_projects")),
		Tips:                tipList(lookupAny(root, "internshipTips", "internship_tips", "tipsForInternships", "tips_for_internships")),
		PsychometricAnswers: psychometricAnswers(doc, root),
	}

	return rm, nil
}

// lookupAny returns the value of the first alias present in m. A present key
// wins even when its value is empty or null.
func lookupAny(m map[string]any, aliases ...string) any {
	for _, key := range aliases {
		if v, ok := m[key]; ok {
			return v
		}
	}
	return nil
}

func asObject(v any) map[string]any {
	obj, _ := v.(map[string]any)
	return obj
}

func asList(v any) []any {
	list, _ := v.([]any)
	return list
}

// coerceString renders any JSON value as a plain string. Objects and arrays
// fall back to their compact JSON encoding so no entry is silently lost.
func coerceString(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case nil:
		return ""
	default:
		bytes, err := json.Marshal(v)
		if err != nil {
			return strings.TrimSpace(fmt.Sprintf("%v", v))
		}
		return string(bytes)
	}
}

// isPlaceholder reports whether a resolved title is empty or the literal
// "none" placeholder the generator emits for absent recommendations.
func isPlaceholder(title string) bool {
	return title == "" || strings.EqualFold(title, "none")
}

func careerPaths(v any) []CareerPath {
	entries := asList(v)
	out := make([]CareerPath, 0, len(entries))
	for _, entry := range entries {
		title, description := titledEntry(entry, "title", "path")
		if isPlaceholder(title) {
			continue
		}
		out = append(out, CareerPath{Title: title, Description: description})
	}
	return out
}

func microProjects(v any) []MicroProject {
	entries := asList(v)
	out := make([]MicroProject, 0, len(entries))
	for _, entry := range entries {
		title, description := titledEntry(entry, "title", "name", "project")
		if isPlaceholder(title) {
			continue
		}
		out = append(out, MicroProject{Title: title, Description: description})
	}
	return out
}

// titledEntry coerces a scalar-or-object list entry into a (title,
// description) pair. Scalars become the title directly; objects resolve the
// title through the supplied aliases and keep the description as-is.
func titledEntry(entry any, titleAliases ...string) (string, string) {
	obj := asObject(entry)
	if obj == nil {
		return coerceString(entry), ""
	}

	title := coerceString(lookupAny(obj, titleAliases...))
	description := coerceString(lookupAny(obj, "description", "details"))
	return title, description
}

func skillsByTier(section map[string]any) map[Tier][]SkillItem {
	byTier := make(map[Tier][]SkillItem, 3)
	byTier[TierHigh] = skillItems(lookupAny(section, "highPriority", "high_priority"))
	byTier[TierMedium] = skillItems(lookupAny(section, "mediumPriority", "medium_priority"))
	byTier[TierLow] = skillItems(lookupAny(section, "lowPriority", "low_priority"))
	return byTier
}

func skillItems(v any) []SkillItem {
	entries := asList(v)
	out := make([]SkillItem, 0, len(entries))
	for _, entry := range entries {
		item, ok := skillItem(entry)
		if !ok {
			continue
		}
		out = append(out, item)
	}
	return out
}

func skillItem(entry any) (SkillItem, bool) {
	obj := asObject(entry)
	if obj == nil {
		name := coerceString(entry)
		return SkillItem{Name: name}, name != ""
	}

	name := coerceString(lookupAny(obj, "skill", "name"))
	if name == "" {
		// Object with no recognizable name field: keep its JSON encoding
		// rather than dropping the recommendation.
		name = coerceString(entry)
	}
	return SkillItem{
		Name:      name,
		Rationale: coerceString(lookupAny(obj, "reason", "rationale", "why")),
	}, name != ""
}

func tipList(v any) []string {
	entries := asList(v)
	out := make([]string, 0, len(entries))
	for _, entry := range entries {
		var text string
		if obj := asObject(entry); obj != nil {
			text = coerceString(lookupAny(obj, "tip", "text"))
			if text == "" {
				text = coerceString(entry)
			}
		} else {
			text = coerceString(entry)
		}
		if text == "" {
			continue
		}
		out = append(out, text)
	}
	return out
}

// psychometricAnswers echoes studentProfile.psychometricAnswers back as a
// string→string mapping. The generator places the profile either next to the
// roadmap wrapper or inside it.
func psychometricAnswers(doc, root map[string]any) map[string]string {
	for _, scope := range []map[string]any{doc, root} {
		profile := asObject(lookupAny(scope, "studentProfile", "student_profile"))
		if profile == nil {
			continue
		}
		answers := asObject(lookupAny(profile, "psychometricAnswers", "psychometric_answers"))
		if answers == nil {
			continue
		}
		out := make(map[string]string, len(answers))
		for question, answer := range answers {
			out[question] = coerceString(answer)
		}
		return out
	}
	return map[string]string{}
}
