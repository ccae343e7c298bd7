package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"procurehub/internal/engine"
	"procurehub/internal/model"
	"procurehub/internal/repository"
	ws "procurehub/internal/websocket"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- DTOs ---

type EvaluateRequestDTO struct {
	Item              string `json:"item" binding:"required"`
	Quantity          int    `json:"quantity" binding:"required,gt=0"`
	Department        string `json:"department" binding:"required"`
	Justification     string `json:"justification" binding:"required"`
	PreferredSupplier string `json:"preferred_supplier"`
	MaxBudget         string `json:"max_budget"` // optional decimal string, empty = no cap
}

type DecisionResponse struct {
	ID            string          `json:"id"`
	RequestCode   string          `json:"request_code"`
	Status        string          `json:"status"`
	RequestedBy   *string         `json:"requested_by,omitempty"`
	RequesterName string          `json:"requester_name,omitempty"`
	CreatedAt     string          `json:"created_at"`
	Result        engine.Decision `json:"result"`
}

type DecisionFilter = repository.DecisionFilter

// --- Interface ---

type ProcurementService interface {
	EvaluateRequest(ctx context.Context, userID string, req EvaluateRequestDTO) (DecisionResponse, error)
	GetDecision(ctx context.Context, id string) (DecisionResponse, error)
	ListDecisions(ctx context.Context, filter DecisionFilter) ([]DecisionResponse, int64, error)

	// Preview endpoints run single engine checks without persisting anything.
	PreviewSuppliers(ctx context.Context, item string, quantity int) (engine.SupplierResult, error)
	PreviewBudget(ctx context.Context, department string, amount string) (engine.BudgetResult, error)
	PreviewApproval(ctx context.Context, department string, amount string) (engine.ApprovalResult, error)
	PreviewInventory(ctx context.Context, item string) (engine.InventoryResult, error)
}

type procurementService struct {
	referenceRepo repository.ReferenceRepository
	decisionRepo  repository.DecisionRepository
	auditRepo     repository.AuditRepository
	txManager     repository.TransactionManager
	hub           *ws.Hub
	screening     engine.ScreeningRules
}

func NewProcurementService(
	referenceRepo repository.ReferenceRepository,
	decisionRepo repository.DecisionRepository,
	auditRepo repository.AuditRepository,
	txManager repository.TransactionManager,
	hub *ws.Hub,
) ProcurementService {
	return &procurementService{
		referenceRepo: referenceRepo,
		decisionRepo:  decisionRepo,
		auditRepo:     auditRepo,
		txManager:     txManager,
		hub:           hub,
		screening:     engine.DefaultScreeningRules(),
	}
}

// --- Implementation ---

func (s *procurementService) EvaluateRequest(ctx context.Context, userID string, req EvaluateRequestDTO) (DecisionResponse, error) {
	if strings.TrimSpace(req.Justification) == "" {
		return DecisionResponse{}, errors.New("justification is required")
	}
	if req.Quantity <= 0 {
		return DecisionResponse{}, errors.New("quantity must be positive")
	}

	maxBudget := decimal.Zero
	if req.MaxBudget != "" {
		parsed, err := decimal.NewFromString(req.MaxBudget)
		if err != nil {
			return DecisionResponse{}, fmt.Errorf("invalid max_budget: %w", err)
		}
		if parsed.IsNegative() {
			return DecisionResponse{}, errors.New("max_budget must not be negative")
		}
		maxBudget = parsed
	}

	cfg, err := s.referenceRepo.Snapshot(ctx, s.screening)
	if err != nil {
		return DecisionResponse{}, fmt.Errorf("failed to load reference data: %w", err)
	}

	eng := engine.New(cfg, nil)
	result := eng.Evaluate(engine.Request{
		Item:              strings.ToLower(strings.TrimSpace(req.Item)),
		Quantity:          req.Quantity,
		Department:        strings.TrimSpace(req.Department),
		Justification:     strings.TrimSpace(req.Justification),
		PreferredSupplier: strings.TrimSpace(req.PreferredSupplier),
		MaxBudget:         maxBudget,
	})

	snapshot, err := json.Marshal(result)
	if err != nil {
		return DecisionResponse{}, fmt.Errorf("failed to serialize decision: %w", err)
	}

	var requesterID *uuid.UUID
	if userID != "" {
		if parsed, parseErr := uuid.Parse(userID); parseErr == nil {
			requesterID = &parsed
		}
	}

	decision := model.Decision{
		RequestCode:    newRequestCode(),
		Item:           result.Request.Item,
		Quantity:       result.Request.Quantity,
		Department:     result.Request.Department,
		Justification:  result.Request.Justification,
		RequestedBy:    requesterID,
		BudgetApproved: result.Budget.Approved,
		Shortfall:      result.Budget.Shortfall,
		RequiredTier:   result.Approval.RequiredTier,
		AutoApproved:   result.Approval.AutoApproved,
		Status:         result.OverallStatus,
		Result:         string(snapshot),
	}
	if result.Cost != nil {
		decision.Supplier = result.Cost.Supplier
		decision.UnitPrice = result.Cost.UnitPrice
		decision.TotalCost = result.Cost.TotalCost
		decision.PotentialSavings = result.Cost.PotentialSavings
		decision.LeadTimeDays = result.Cost.LeadTimeDays
	}

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if createErr := s.decisionRepo.Create(txCtx, &decision); createErr != nil {
			return fmt.Errorf("failed to store decision: %w", createErr)
		}

		details, _ := json.Marshal(map[string]interface{}{
			"request_code": decision.RequestCode,
			"item":         decision.Item,
			"quantity":     decision.Quantity,
			"department":   decision.Department,
			"status":       decision.Status,
			"total_cost":   decision.TotalCost.StringFixed(2),
		})
		audit := model.AuditLog{
			UserID:     requesterID,
			Action:     model.ActionEvaluateRequest,
			EntityID:   decision.ID.String(),
			EntityName: decision.RequestCode,
			Details:    string(details),
		}
		if auditErr := s.auditRepo.Log(txCtx, &audit); auditErr != nil {
			return fmt.Errorf("failed to write audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return DecisionResponse{}, err
	}

	s.broadcast("decision.created", map[string]interface{}{
		"request_code": decision.RequestCode,
		"item":         decision.Item,
		"department":   decision.Department,
		"status":       decision.Status,
	})

	stored, err := s.decisionRepo.GetByID(ctx, decision.ID.String())
	if err != nil {
		return DecisionResponse{}, fmt.Errorf("failed to reload decision: %w", err)
	}
	return toDecisionResponse(*stored)
}

func (s *procurementService) GetDecision(ctx context.Context, id string) (DecisionResponse, error) {
	decision, err := s.decisionRepo.GetByID(ctx, id)
	if err != nil {
		return DecisionResponse{}, fmt.Errorf("decision not found: %w", err)
	}
	return toDecisionResponse(*decision)
}

func (s *procurementService) ListDecisions(ctx context.Context, filter DecisionFilter) ([]DecisionResponse, int64, error) {
	decisions, total, err := s.decisionRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch decisions: %w", err)
	}

	result := make([]DecisionResponse, 0, len(decisions))
	for _, d := range decisions {
		resp, convErr := toDecisionResponse(d)
		if convErr != nil {
			return nil, 0, convErr
		}
		result = append(result, resp)
	}

	return result, total, nil
}

func (s *procurementService) PreviewSuppliers(ctx context.Context, item string, quantity int) (engine.SupplierResult, error) {
	eng, err := s.snapshotEngine(ctx)
	if err != nil {
		return engine.SupplierResult{}, err
	}
	return eng.FindSuppliers(strings.ToLower(item), quantity), nil
}

func (s *procurementService) PreviewBudget(ctx context.Context, department string, amount string) (engine.BudgetResult, error) {
	parsed, err := decimal.NewFromString(amount)
	if err != nil {
		return engine.BudgetResult{}, fmt.Errorf("invalid amount: %w", err)
	}
	eng, err := s.snapshotEngine(ctx)
	if err != nil {
		return engine.BudgetResult{}, err
	}
	return eng.CheckBudget(department, parsed), nil
}

func (s *procurementService) PreviewApproval(ctx context.Context, department string, amount string) (engine.ApprovalResult, error) {
	parsed, err := decimal.NewFromString(amount)
	if err != nil {
		return engine.ApprovalResult{}, fmt.Errorf("invalid amount: %w", err)
	}
	eng, err := s.snapshotEngine(ctx)
	if err != nil {
		return engine.ApprovalResult{}, err
	}
	return eng.CheckApproval(parsed, department), nil
}

func (s *procurementService) PreviewInventory(ctx context.Context, item string) (engine.InventoryResult, error) {
	eng, err := s.snapshotEngine(ctx)
	if err != nil {
		return engine.InventoryResult{}, err
	}
	return eng.CheckInventory(strings.ToLower(item)), nil
}

// --- Helpers ---

func (s *procurementService) snapshotEngine(ctx context.Context) (*engine.Engine, error) {
	cfg, err := s.referenceRepo.Snapshot(ctx, s.screening)
	if err != nil {
		return nil, fmt.Errorf("failed to load reference data: %w", err)
	}
	return engine.New(cfg, nil), nil
}

func (s *procurementService) broadcast(event string, data map[string]interface{}) {
	if s.hub == nil {
		return
	}
	payload, err := json.Marshal(map[string]interface{}{"event": event, "data": data})
	if err != nil {
		return
	}
	s.hub.Broadcast <- payload
}

// newRequestCode generates a short human-readable request identifier.
func newRequestCode() string {
	return "PRQ-" + strings.ToUpper(uuid.New().String()[:8])
}

func toDecisionResponse(d model.Decision) (DecisionResponse, error) {
	var result engine.Decision
	if err := json.Unmarshal([]byte(d.Result), &result); err != nil {
		return DecisionResponse{}, fmt.Errorf("corrupt decision snapshot %s: %w", d.RequestCode, err)
	}

	resp := DecisionResponse{
		ID:          d.ID.String(),
		RequestCode: d.RequestCode,
		Status:      d.Status,
		CreatedAt:   d.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		Result:      result,
	}
	if d.RequestedBy != nil {
		id := d.RequestedBy.String()
		resp.RequestedBy = &id
	}
	if d.Requester != nil {
		resp.RequesterName = d.Requester.Username
	}
	return resp, nil
}
