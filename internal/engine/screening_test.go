package engine_test

import (
	"math/rand"
	"testing"

	"procurehub/internal/engine"
)

func newScreeningEngine(seed int64) *engine.Engine {
	return engine.New(engine.DefaultConfig(), rand.New(rand.NewSource(seed)))
}

func noJitterEngine() *engine.Engine {
	cfg := engine.DefaultConfig()
	cfg.Screening.JitterMax = 0
	return engine.New(cfg, rand.New(rand.NewSource(1)))
}

func TestScreenCandidate_FullMatch(t *testing.T) {
	e := newScreeningEngine(42)

	result := e.ScreenCandidate(engine.CandidateProfile{
		Skills:          []string{"Python", "JavaScript", "React", "AWS"},
		ExperienceYears: 5,
		Location:        "Remote",
	})

	// 40 skill + 25 experience + 10 location, plus jitter in [0, 10)
	if result.Score < 75 || result.Score > 85 {
		t.Errorf("score = %v, want within [75, 85]", result.Score)
	}
	if result.Recommendation != engine.RecommendInterview {
		t.Errorf("recommendation = %q, want interview", result.Recommendation)
	}
	if result.SkillPoints != 40 {
		t.Errorf("skill points = %v, want 40", result.SkillPoints)
	}
	if result.ExperiencePoints != 25 {
		t.Errorf("experience points = %v, want 25", result.ExperiencePoints)
	}
	if result.LocationBonus != 10 {
		t.Errorf("location bonus = %v, want 10", result.LocationBonus)
	}
}

func TestScreenCandidate_DeterministicWithSeed(t *testing.T) {
	profile := engine.CandidateProfile{
		Skills:          []string{"Python", "AWS"},
		ExperienceYears: 3,
		Location:        "Berlin",
	}

	a := newScreeningEngine(7).ScreenCandidate(profile)
	b := newScreeningEngine(7).ScreenCandidate(profile)

	if a.Score != b.Score {
		t.Errorf("same seed produced different scores: %v and %v", a.Score, b.Score)
	}
	if a.Jitter != b.Jitter {
		t.Errorf("same seed produced different jitter: %v and %v", a.Jitter, b.Jitter)
	}
}

func TestScreenCandidate_ClampedAtExtremes(t *testing.T) {
	e := newScreeningEngine(3)

	manySkills := make([]string, 0, 50)
	for i := 0; i < 50; i++ {
		manySkills = append(manySkills, "Skill")
	}
	manySkills = append(manySkills, "Python", "JavaScript", "React", "AWS")

	tests := []struct {
		name    string
		profile engine.CandidateProfile
	}{
		{"extreme experience", engine.CandidateProfile{Skills: manySkills, ExperienceYears: 1000, Location: "Remote"}},
		{"negative experience", engine.CandidateProfile{ExperienceYears: -5}},
		{"empty profile", engine.CandidateProfile{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := e.ScreenCandidate(tt.profile)
			if result.Score < 0 || result.Score > 100 {
				t.Errorf("score = %v, outside [0, 100]", result.Score)
			}
		})
	}
}

func TestScreenCandidate_ExperienceCap(t *testing.T) {
	e := noJitterEngine()

	result := e.ScreenCandidate(engine.CandidateProfile{
		ExperienceYears: 30,
		Location:        "nowhere",
	})

	if result.ExperiencePoints != 40 {
		t.Errorf("experience points = %v, want capped at 40", result.ExperiencePoints)
	}
	if result.Score != 40 {
		t.Errorf("score = %v, want 40", result.Score)
	}
	if result.Recommendation != engine.RecommendReject {
		t.Errorf("recommendation = %q, want reject", result.Recommendation)
	}
}

func TestScreenCandidate_PartialSkillMatch(t *testing.T) {
	e := noJitterEngine()

	result := e.ScreenCandidate(engine.CandidateProfile{
		Skills:          []string{"python", "aws", "Kubernetes"},
		ExperienceYears: 0,
		Location:        "nowhere",
	})

	// Matching is case-insensitive: 2 of 4 required skills.
	if result.SkillPoints != 20 {
		t.Errorf("skill points = %v, want 20", result.SkillPoints)
	}
	if len(result.MatchedSkills) != 2 {
		t.Errorf("matched skills = %v, want 2 entries", result.MatchedSkills)
	}
}

func TestScreenCandidate_ThresholdIsStrict(t *testing.T) {
	// 8 years (40) + half skills (20) + location (10) = exactly 70 without
	// jitter; "score > 70" means exactly 70 is still a reject.
	e := noJitterEngine()

	result := e.ScreenCandidate(engine.CandidateProfile{
		Skills:          []string{"Python", "JavaScript"},
		ExperienceYears: 8,
		Location:        "Remote",
	})

	if result.Score != 70 {
		t.Fatalf("score = %v, want exactly 70", result.Score)
	}
	if result.Recommendation != engine.RecommendReject {
		t.Errorf("recommendation = %q, want reject at exactly threshold", result.Recommendation)
	}
}

func TestScreenCandidate_LocationBonusCaseInsensitive(t *testing.T) {
	e := noJitterEngine()

	result := e.ScreenCandidate(engine.CandidateProfile{
		Location: "remote",
	})

	if result.LocationBonus != 10 {
		t.Errorf("location bonus = %v, want 10 for case-insensitive match", result.LocationBonus)
	}
}
