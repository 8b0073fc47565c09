package ai

import "context"

// Profile is the student profile sent to the generator.
type Profile struct {
	PsychometricAnswers map[string]string
	Skills              []string
}

// Generator produces a raw roadmap reply for the given student profile. The
// reply is expected to be a fence-stripped JSON string, but callers must not
// trust that: it goes through roadmap.Parse before use.
type Generator interface {
	GenerateRoadmap(ctx context.Context, profile Profile) (string, error)
}
