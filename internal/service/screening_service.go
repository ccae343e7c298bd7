package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"procurehub/internal/engine"
	"procurehub/internal/model"
	"procurehub/internal/repository"
	ws "procurehub/internal/websocket"

	"github.com/google/uuid"
)

// --- DTOs ---

type CreateCandidateDTO struct {
	Name            string   `json:"name" binding:"required"`
	Email           string   `json:"email" binding:"required,email"`
	Skills          []string `json:"skills" binding:"required"`
	ExperienceYears float64  `json:"experience_years" binding:"gte=0"`
	Location        string   `json:"location"`
}

type UpdateCandidateDTO struct {
	Name            string   `json:"name"`
	Skills          []string `json:"skills"`
	ExperienceYears *float64 `json:"experience_years"`
	Location        string   `json:"location"`
	Status          string   `json:"status"`
}

type ScreenProfileDTO struct {
	Skills          []string `json:"skills" binding:"required"`
	ExperienceYears float64  `json:"experience_years" binding:"gte=0"`
	Location        string   `json:"location"`
}

type CandidateResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Skills          []string `json:"skills"`
	ExperienceYears float64  `json:"experience_years"`
	Location        string   `json:"location"`
	Score           float64  `json:"score"`
	Status          string   `json:"status"`
	ScreenedAt      *string  `json:"screened_at"`
	CreatedAt       string   `json:"created_at"`
}

type ScreenCandidateResponse struct {
	Candidate CandidateResponse      `json:"candidate"`
	Screening engine.ScreeningResult `json:"screening"`
}

// --- Interface ---

type ScreeningService interface {
	CreateCandidate(ctx context.Context, userID string, req CreateCandidateDTO) (CandidateResponse, error)
	GetCandidate(ctx context.Context, id string) (CandidateResponse, error)
	ListCandidates(ctx context.Context, status string, page, limit int) ([]CandidateResponse, int64, error)
	UpdateCandidate(ctx context.Context, userID, id string, req UpdateCandidateDTO) (CandidateResponse, error)
	DeleteCandidate(ctx context.Context, userID, id string) error

	// ScreenCandidate scores a stored candidate and mutates its score/status.
	ScreenCandidate(ctx context.Context, userID, id string) (ScreenCandidateResponse, error)
	// ScreenProfile scores an ad-hoc profile without touching the pipeline.
	ScreenProfile(ctx context.Context, req ScreenProfileDTO) (engine.ScreeningResult, error)
}

type screeningService struct {
	candidateRepo repository.CandidateRepository
	auditRepo     repository.AuditRepository
	txManager     repository.TransactionManager
	hub           *ws.Hub
	rules         engine.ScreeningRules

	// rand.Rand is not safe for concurrent use; the scorer takes the lock.
	mu  sync.Mutex
	rng *rand.Rand
}

// NewScreeningService builds the screening service. A nil rng falls back to a
// time-seeded source; tests pass a fixed seed.
func NewScreeningService(
	candidateRepo repository.CandidateRepository,
	auditRepo repository.AuditRepository,
	txManager repository.TransactionManager,
	hub *ws.Hub,
	rng *rand.Rand,
) ScreeningService {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &screeningService{
		candidateRepo: candidateRepo,
		auditRepo:     auditRepo,
		txManager:     txManager,
		hub:           hub,
		rules:         engine.DefaultScreeningRules(),
		rng:           rng,
	}
}

// --- Implementation ---

func (s *screeningService) CreateCandidate(ctx context.Context, userID string, req CreateCandidateDTO) (CandidateResponse, error) {
	if _, err := s.candidateRepo.GetByEmail(ctx, req.Email); err == nil {
		return CandidateResponse{}, errors.New("candidate email already exists")
	}

	skills, err := json.Marshal(normalizeSkills(req.Skills))
	if err != nil {
		return CandidateResponse{}, fmt.Errorf("failed to serialize skills: %w", err)
	}

	candidate := model.Candidate{
		Name:            strings.TrimSpace(req.Name),
		Email:           strings.ToLower(strings.TrimSpace(req.Email)),
		Skills:          string(skills),
		ExperienceYears: req.ExperienceYears,
		Location:        strings.TrimSpace(req.Location),
		Status:          model.CandidateNew,
	}

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if createErr := s.candidateRepo.Create(txCtx, &candidate); createErr != nil {
			return fmt.Errorf("failed to create candidate: %w", createErr)
		}
		return s.logCandidateAction(txCtx, userID, model.ActionCreateCandidate, candidate, nil)
	})
	if err != nil {
		return CandidateResponse{}, err
	}

	return toCandidateResponse(candidate)
}

func (s *screeningService) GetCandidate(ctx context.Context, id string) (CandidateResponse, error) {
	candidate, err := s.candidateRepo.GetByID(ctx, id)
	if err != nil {
		return CandidateResponse{}, fmt.Errorf("candidate not found: %w", err)
	}
	return toCandidateResponse(*candidate)
}

func (s *screeningService) ListCandidates(ctx context.Context, status string, page, limit int) ([]CandidateResponse, int64, error) {
	if status != "" && !validCandidateStatus(status) {
		return nil, 0, fmt.Errorf("invalid status filter: %s", status)
	}
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}

	candidates, total, err := s.candidateRepo.List(ctx, status, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch candidates: %w", err)
	}

	result := make([]CandidateResponse, 0, len(candidates))
	for _, c := range candidates {
		resp, convErr := toCandidateResponse(c)
		if convErr != nil {
			return nil, 0, convErr
		}
		result = append(result, resp)
	}
	return result, total, nil
}

func (s *screeningService) UpdateCandidate(ctx context.Context, userID, id string, req UpdateCandidateDTO) (CandidateResponse, error) {
	candidate, err := s.candidateRepo.GetByID(ctx, id)
	if err != nil {
		return CandidateResponse{}, fmt.Errorf("candidate not found: %w", err)
	}

	if req.Name != "" {
		candidate.Name = strings.TrimSpace(req.Name)
	}
	if req.Skills != nil {
		skills, marshalErr := json.Marshal(normalizeSkills(req.Skills))
		if marshalErr != nil {
			return CandidateResponse{}, fmt.Errorf("failed to serialize skills: %w", marshalErr)
		}
		candidate.Skills = string(skills)
	}
	if req.ExperienceYears != nil {
		if *req.ExperienceYears < 0 {
			return CandidateResponse{}, errors.New("experience_years must not be negative")
		}
		candidate.ExperienceYears = *req.ExperienceYears
	}
	if req.Location != "" {
		candidate.Location = strings.TrimSpace(req.Location)
	}
	if req.Status != "" {
		if !validCandidateStatus(req.Status) {
			return CandidateResponse{}, fmt.Errorf("invalid status: %s", req.Status)
		}
		candidate.Status = req.Status
	}

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if updateErr := s.candidateRepo.Update(txCtx, candidate); updateErr != nil {
			return fmt.Errorf("failed to update candidate: %w", updateErr)
		}
		return s.logCandidateAction(txCtx, userID, model.ActionUpdateCandidate, *candidate, nil)
	})
	if err != nil {
		return CandidateResponse{}, err
	}

	return toCandidateResponse(*candidate)
}

func (s *screeningService) DeleteCandidate(ctx context.Context, userID, id string) error {
	candidate, err := s.candidateRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("candidate not found: %w", err)
	}

	return s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if deleteErr := s.candidateRepo.Delete(txCtx, id); deleteErr != nil {
			return fmt.Errorf("failed to delete candidate: %w", deleteErr)
		}
		return s.logCandidateAction(txCtx, userID, model.ActionDeleteCandidate, *candidate, nil)
	})
}

func (s *screeningService) ScreenCandidate(ctx context.Context, userID, id string) (ScreenCandidateResponse, error) {
	candidate, err := s.candidateRepo.GetByID(ctx, id)
	if err != nil {
		return ScreenCandidateResponse{}, fmt.Errorf("candidate not found: %w", err)
	}

	var skills []string
	if unmarshalErr := json.Unmarshal([]byte(candidate.Skills), &skills); unmarshalErr != nil {
		return ScreenCandidateResponse{}, fmt.Errorf("corrupt skills for candidate %s: %w", candidate.Email, unmarshalErr)
	}

	result := s.score(engine.CandidateProfile{
		Skills:          skills,
		ExperienceYears: candidate.ExperienceYears,
		Location:        candidate.Location,
	})

	now := time.Now()
	candidate.Score = result.Score
	candidate.ScreenedAt = &now
	if result.Recommendation == engine.RecommendInterview {
		candidate.Status = model.CandidateInterview
	} else {
		candidate.Status = model.CandidateRejected
	}

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if updateErr := s.candidateRepo.Update(txCtx, candidate); updateErr != nil {
			return fmt.Errorf("failed to update candidate: %w", updateErr)
		}
		extra := map[string]interface{}{
			"score":          result.Score,
			"recommendation": result.Recommendation,
		}
		return s.logCandidateAction(txCtx, userID, model.ActionScreenCandidate, *candidate, extra)
	})
	if err != nil {
		return ScreenCandidateResponse{}, err
	}

	s.broadcast("candidate.screened", map[string]interface{}{
		"email":          candidate.Email,
		"score":          result.Score,
		"status":         candidate.Status,
		"recommendation": result.Recommendation,
	})

	resp, err := toCandidateResponse(*candidate)
	if err != nil {
		return ScreenCandidateResponse{}, err
	}
	return ScreenCandidateResponse{Candidate: resp, Screening: result}, nil
}

func (s *screeningService) ScreenProfile(ctx context.Context, req ScreenProfileDTO) (engine.ScreeningResult, error) {
	return s.score(engine.CandidateProfile{
		Skills:          req.Skills,
		ExperienceYears: req.ExperienceYears,
		Location:        req.Location,
	}), nil
}

// --- Helpers ---

func (s *screeningService) score(profile engine.CandidateProfile) engine.ScreeningResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	eng := engine.New(engine.Config{Screening: s.rules}, s.rng)
	return eng.ScreenCandidate(profile)
}

func (s *screeningService) logCandidateAction(ctx context.Context, userID, action string, candidate model.Candidate, extra map[string]interface{}) error {
	var actorID *uuid.UUID
	if userID != "" {
		if parsed, err := uuid.Parse(userID); err == nil {
			actorID = &parsed
		}
	}

	payload := map[string]interface{}{
		"email":  candidate.Email,
		"status": candidate.Status,
	}
	for k, v := range extra {
		payload[k] = v
	}
	details, _ := json.Marshal(payload)

	audit := model.AuditLog{
		UserID:     actorID,
		Action:     action,
		EntityID:   candidate.ID.String(),
		EntityName: candidate.Name,
		Details:    string(details),
	}
	if err := s.auditRepo.Log(ctx, &audit); err != nil {
		return fmt.Errorf("failed to write audit log: %w", err)
	}
	return nil
}

func (s *screeningService) broadcast(event string, data map[string]interface{}) {
	if s.hub == nil {
		return
	}
	payload, err := json.Marshal(map[string]interface{}{"event": event, "data": data})
	if err != nil {
		return
	}
	s.hub.Broadcast <- payload
}

func normalizeSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	seen := map[string]bool{}
	for _, skill := range skills {
		trimmed := strings.TrimSpace(skill)
		if trimmed == "" {
			continue
		}
		key := strings.ToLower(trimmed)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, trimmed)
	}
	return out
}

func validCandidateStatus(status string) bool {
	switch status {
	case model.CandidateNew, model.CandidateScreening, model.CandidateInterview,
		model.CandidateHired, model.CandidateRejected:
		return true
	}
	return false
}

func toCandidateResponse(c model.Candidate) (CandidateResponse, error) {
	var skills []string
	if err := json.Unmarshal([]byte(c.Skills), &skills); err != nil {
		return CandidateResponse{}, fmt.Errorf("corrupt skills for candidate %s: %w", c.Email, err)
	}

	resp := CandidateResponse{
		ID:              c.ID.String(),
		Name:            c.Name,
		Email:           c.Email,
		Skills:          skills,
		ExperienceYears: c.ExperienceYears,
		Location:        c.Location,
		Score:           c.Score,
		Status:          c.Status,
		CreatedAt:       c.CreatedAt.Format(time.RFC3339),
	}
	if c.ScreenedAt != nil {
		t := c.ScreenedAt.Format(time.RFC3339)
		resp.ScreenedAt = &t
	}
	return resp, nil
}
