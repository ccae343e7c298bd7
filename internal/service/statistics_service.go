package service

import (
	"context"
	"fmt"
	"time"

	"procurehub/internal/model"
	"procurehub/internal/repository"
)

type StatisticsService interface {
	GetStatistics(ctx context.Context, startDate, endDate time.Time) (model.StatisticsResponse, error)
}

type statisticsService struct {
	decisionRepo  repository.DecisionRepository
	candidateRepo repository.CandidateRepository
}

func NewStatisticsService(decisionRepo repository.DecisionRepository, candidateRepo repository.CandidateRepository) StatisticsService {
	return &statisticsService{decisionRepo: decisionRepo, candidateRepo: candidateRepo}
}

// GetStatistics aggregates decision history and the candidate pipeline into
// dashboard metrics for the given time range.
func (s *statisticsService) GetStatistics(ctx context.Context, startDate, endDate time.Time) (model.StatisticsResponse, error) {
	var response model.StatisticsResponse
	response.TimeRangeStartDate = startDate
	response.TimeRangeEndDate = endDate

	counts, err := s.decisionRepo.CountByStatus(ctx, startDate, endDate)
	if err != nil {
		return response, fmt.Errorf("failed to count decisions: %w", err)
	}
	response.ApprovedRequests = counts[model.DecisionApproved]
	response.PendingRequests = counts[model.DecisionPending]
	response.RejectedRequests = counts[model.DecisionRejected]
	response.TotalRequests = response.ApprovedRequests + response.PendingRequests + response.RejectedRequests
	if response.TotalRequests > 0 {
		response.ApprovalRate = float64(response.ApprovedRequests) / float64(response.TotalRequests) * 100
	}

	totalValue, totalSavings, err := s.decisionRepo.Totals(ctx, startDate, endDate)
	if err != nil {
		return response, fmt.Errorf("failed to sum decision totals: %w", err)
	}
	response.TotalValue = totalValue
	response.TotalPotentialSavings = totalSavings

	spend, err := s.decisionRepo.SpendByDepartment(ctx, startDate, endDate)
	if err != nil {
		return response, fmt.Errorf("failed to aggregate department spend: %w", err)
	}
	response.SpendByDepartment = spend

	suppliers, err := s.decisionRepo.TopSuppliers(ctx, startDate, endDate, 5)
	if err != nil {
		return response, fmt.Errorf("failed to rank suppliers: %w", err)
	}
	response.TopSuppliers = suppliers

	pipeline, err := s.candidateRepo.CountByStatus(ctx)
	if err != nil {
		return response, fmt.Errorf("failed to count candidates: %w", err)
	}
	response.CandidatePipeline = pipeline

	return response, nil
}
