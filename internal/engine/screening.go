package engine

import "strings"

// ScreenCandidate scores a candidate profile against the configured screening
// rules. The score is a weighted sum of experience, skill match and location
// bonus plus bounded jitter, clamped to [0, 100]. A score strictly above the
// interview threshold yields an interview recommendation.
func (e *Engine) ScreenCandidate(profile CandidateProfile) ScreeningResult {
	rules := e.cfg.Screening

	expPoints := profile.ExperienceYears * rules.ExperienceWeight
	if expPoints > rules.ExperienceCap {
		expPoints = rules.ExperienceCap
	}
	if expPoints < 0 {
		expPoints = 0
	}

	var matched []string
	for _, required := range rules.RequiredSkills {
		for _, have := range profile.Skills {
			if strings.EqualFold(strings.TrimSpace(have), required) {
				matched = append(matched, required)
				break
			}
		}
	}

	skillPoints := 0.0
	if len(rules.RequiredSkills) > 0 {
		skillPoints = float64(len(matched)) / float64(len(rules.RequiredSkills)) * rules.SkillWeight
	}

	locationBonus := 0.0
	for _, loc := range rules.PreferredLocations {
		if strings.EqualFold(strings.TrimSpace(profile.Location), loc) {
			locationBonus = rules.LocationBonus
			break
		}
	}

	jitter := 0.0
	if rules.JitterMax > 0 {
		jitter = e.rng.Float64() * rules.JitterMax
	}

	score := expPoints + skillPoints + locationBonus + jitter
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}

	recommendation := RecommendReject
	if score > rules.InterviewThreshold {
		recommendation = RecommendInterview
	}

	return ScreeningResult{
		Score:            score,
		ExperiencePoints: expPoints,
		SkillPoints:      skillPoints,
		LocationBonus:    locationBonus,
		Jitter:           jitter,
		MatchedSkills:    matched,
		Recommendation:   recommendation,
	}
}
