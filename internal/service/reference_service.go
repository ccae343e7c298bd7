package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"procurehub/internal/model"
	"procurehub/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- DTOs ---

type UpsertSupplierDTO struct {
	Item         string  `json:"item" binding:"required"`
	Name         string  `json:"name" binding:"required"`
	UnitPrice    string  `json:"unit_price" binding:"required"`
	Availability int     `json:"availability" binding:"gte=0"`
	LeadTimeDays int     `json:"lead_time_days" binding:"gte=0"`
	Rating       float64 `json:"rating" binding:"gte=0,lte=5"`
}

type UpsertBudgetDTO struct {
	Department string `json:"department" binding:"required"`
	Total      string `json:"total" binding:"required"`
	Used       string `json:"used" binding:"required"`
}

type UpsertApprovalLimitDTO struct {
	Department string `json:"department" binding:"required"`
	Manager    string `json:"manager" binding:"required"`
	Director   string `json:"director" binding:"required"`
	VP         string `json:"vp" binding:"required"`
}

type UpsertInventoryDTO struct {
	Item    string `json:"item" binding:"required"`
	Current int    `json:"current" binding:"gte=0"`
	Minimum int    `json:"minimum" binding:"gte=0"`
	Maximum int    `json:"maximum" binding:"gte=0"`
	OnOrder int    `json:"on_order" binding:"gte=0"`
}

// --- Interface ---

// ReferenceService exposes the engine's lookup tables for admin maintenance.
type ReferenceService interface {
	ListSuppliers(ctx context.Context, item string) ([]model.SupplierOffer, error)
	UpsertSupplier(ctx context.Context, userID string, req UpsertSupplierDTO) (model.SupplierOffer, error)
	ListBudgets(ctx context.Context) ([]model.DepartmentBudget, error)
	UpsertBudget(ctx context.Context, userID string, req UpsertBudgetDTO) (model.DepartmentBudget, error)
	ListApprovalLimits(ctx context.Context) ([]model.ApprovalLimit, error)
	UpsertApprovalLimit(ctx context.Context, userID string, req UpsertApprovalLimitDTO) (model.ApprovalLimit, error)
	ListInventory(ctx context.Context) ([]model.InventoryLevel, error)
	UpsertInventory(ctx context.Context, userID string, req UpsertInventoryDTO) (model.InventoryLevel, error)
}

type referenceService struct {
	referenceRepo repository.ReferenceRepository
	auditRepo     repository.AuditRepository
	txManager     repository.TransactionManager
}

func NewReferenceService(
	referenceRepo repository.ReferenceRepository,
	auditRepo repository.AuditRepository,
	txManager repository.TransactionManager,
) ReferenceService {
	return &referenceService{
		referenceRepo: referenceRepo,
		auditRepo:     auditRepo,
		txManager:     txManager,
	}
}

// --- Implementation ---

func (s *referenceService) ListSuppliers(ctx context.Context, item string) ([]model.SupplierOffer, error) {
	return s.referenceRepo.ListSuppliers(ctx, strings.ToLower(item))
}

func (s *referenceService) UpsertSupplier(ctx context.Context, userID string, req UpsertSupplierDTO) (model.SupplierOffer, error) {
	price, err := decimal.NewFromString(req.UnitPrice)
	if err != nil {
		return model.SupplierOffer{}, fmt.Errorf("invalid unit_price: %w", err)
	}
	if !price.IsPositive() {
		return model.SupplierOffer{}, errors.New("unit_price must be positive")
	}

	item := strings.ToLower(strings.TrimSpace(req.Item))
	offers, err := s.referenceRepo.ListSuppliers(ctx, item)
	if err != nil {
		return model.SupplierOffer{}, fmt.Errorf("failed to load suppliers: %w", err)
	}

	offer := model.SupplierOffer{Item: item, Name: strings.TrimSpace(req.Name)}
	for _, existing := range offers {
		if strings.EqualFold(existing.Name, offer.Name) {
			offer = existing
			break
		}
	}
	offer.UnitPrice = price
	offer.Availability = req.Availability
	offer.LeadTimeDays = req.LeadTimeDays
	offer.Rating = req.Rating

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if upsertErr := s.referenceRepo.UpsertSupplier(txCtx, &offer); upsertErr != nil {
			return fmt.Errorf("failed to save supplier: %w", upsertErr)
		}
		return s.logReferenceChange(txCtx, userID, model.ActionUpdateSupplier, offer.ID.String(), offer.Name, map[string]interface{}{
			"item":       offer.Item,
			"unit_price": offer.UnitPrice.StringFixed(2),
		})
	})
	if err != nil {
		return model.SupplierOffer{}, err
	}
	return offer, nil
}

func (s *referenceService) ListBudgets(ctx context.Context) ([]model.DepartmentBudget, error) {
	return s.referenceRepo.ListBudgets(ctx)
}

func (s *referenceService) UpsertBudget(ctx context.Context, userID string, req UpsertBudgetDTO) (model.DepartmentBudget, error) {
	total, err := decimal.NewFromString(req.Total)
	if err != nil {
		return model.DepartmentBudget{}, fmt.Errorf("invalid total: %w", err)
	}
	used, err := decimal.NewFromString(req.Used)
	if err != nil {
		return model.DepartmentBudget{}, fmt.Errorf("invalid used: %w", err)
	}
	if total.IsNegative() || used.IsNegative() {
		return model.DepartmentBudget{}, errors.New("budget amounts must not be negative")
	}
	if used.GreaterThan(total) {
		return model.DepartmentBudget{}, errors.New("used must not exceed total")
	}

	department := strings.TrimSpace(req.Department)
	budget := model.DepartmentBudget{Department: department}
	budgets, err := s.referenceRepo.ListBudgets(ctx)
	if err != nil {
		return model.DepartmentBudget{}, fmt.Errorf("failed to load budgets: %w", err)
	}
	for _, existing := range budgets {
		if existing.Department == department {
			budget = existing
			break
		}
	}
	budget.Total = total
	budget.Used = used
	// Remaining is derived, never supplied: the ledger invariant holds by construction.
	budget.Remaining = total.Sub(used)

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if upsertErr := s.referenceRepo.UpsertBudget(txCtx, &budget); upsertErr != nil {
			return fmt.Errorf("failed to save budget: %w", upsertErr)
		}
		return s.logReferenceChange(txCtx, userID, model.ActionUpdateBudget, budget.ID.String(), department, map[string]interface{}{
			"total":     budget.Total.StringFixed(2),
			"used":      budget.Used.StringFixed(2),
			"remaining": budget.Remaining.StringFixed(2),
		})
	})
	if err != nil {
		return model.DepartmentBudget{}, err
	}
	return budget, nil
}

func (s *referenceService) ListApprovalLimits(ctx context.Context) ([]model.ApprovalLimit, error) {
	return s.referenceRepo.ListApprovalLimits(ctx)
}

func (s *referenceService) UpsertApprovalLimit(ctx context.Context, userID string, req UpsertApprovalLimitDTO) (model.ApprovalLimit, error) {
	manager, err := decimal.NewFromString(req.Manager)
	if err != nil {
		return model.ApprovalLimit{}, fmt.Errorf("invalid manager limit: %w", err)
	}
	director, err := decimal.NewFromString(req.Director)
	if err != nil {
		return model.ApprovalLimit{}, fmt.Errorf("invalid director limit: %w", err)
	}
	vp, err := decimal.NewFromString(req.VP)
	if err != nil {
		return model.ApprovalLimit{}, fmt.Errorf("invalid vp limit: %w", err)
	}
	// Thresholds must be strictly increasing for the ladder to be unambiguous.
	if !manager.LessThan(director) || !director.LessThan(vp) {
		return model.ApprovalLimit{}, errors.New("limits must satisfy manager < director < vp")
	}

	department := strings.TrimSpace(req.Department)
	limit := model.ApprovalLimit{Department: department}
	limits, err := s.referenceRepo.ListApprovalLimits(ctx)
	if err != nil {
		return model.ApprovalLimit{}, fmt.Errorf("failed to load approval limits: %w", err)
	}
	for _, existing := range limits {
		if existing.Department == department {
			limit = existing
			break
		}
	}
	limit.Manager = manager
	limit.Director = director
	limit.VP = vp

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if upsertErr := s.referenceRepo.UpsertApprovalLimit(txCtx, &limit); upsertErr != nil {
			return fmt.Errorf("failed to save approval limit: %w", upsertErr)
		}
		return s.logReferenceChange(txCtx, userID, model.ActionUpdateApprovals, limit.ID.String(), department, map[string]interface{}{
			"manager":  limit.Manager.StringFixed(2),
			"director": limit.Director.StringFixed(2),
			"vp":       limit.VP.StringFixed(2),
		})
	})
	if err != nil {
		return model.ApprovalLimit{}, err
	}
	return limit, nil
}

func (s *referenceService) ListInventory(ctx context.Context) ([]model.InventoryLevel, error) {
	return s.referenceRepo.ListInventory(ctx)
}

func (s *referenceService) UpsertInventory(ctx context.Context, userID string, req UpsertInventoryDTO) (model.InventoryLevel, error) {
	if req.Current > req.Maximum {
		return model.InventoryLevel{}, errors.New("current stock must not exceed maximum capacity")
	}

	item := strings.ToLower(strings.TrimSpace(req.Item))
	level := model.InventoryLevel{Item: item}
	levels, err := s.referenceRepo.ListInventory(ctx)
	if err != nil {
		return model.InventoryLevel{}, fmt.Errorf("failed to load inventory: %w", err)
	}
	for _, existing := range levels {
		if existing.Item == item {
			level = existing
			break
		}
	}
	level.Current = req.Current
	level.Minimum = req.Minimum
	level.Maximum = req.Maximum
	level.OnOrder = req.OnOrder

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if upsertErr := s.referenceRepo.UpsertInventory(txCtx, &level); upsertErr != nil {
			return fmt.Errorf("failed to save inventory level: %w", upsertErr)
		}
		return s.logReferenceChange(txCtx, userID, model.ActionUpdateInventory, level.ID.String(), item, map[string]interface{}{
			"current": level.Current,
			"minimum": level.Minimum,
			"maximum": level.Maximum,
		})
	})
	if err != nil {
		return model.InventoryLevel{}, err
	}
	return level, nil
}

// --- Helpers ---

func (s *referenceService) logReferenceChange(ctx context.Context, userID, action, entityID, entityName string, payload map[string]interface{}) error {
	var actorID *uuid.UUID
	if userID != "" {
		if parsed, err := uuid.Parse(userID); err == nil {
			actorID = &parsed
		}
	}

	details, _ := json.Marshal(payload)
	audit := model.AuditLog{
		UserID:     actorID,
		Action:     action,
		EntityID:   entityID,
		EntityName: entityName,
		Details:    string(details),
	}
	if err := s.auditRepo.Log(ctx, &audit); err != nil {
		return fmt.Errorf("failed to write audit log: %w", err)
	}
	return nil
}
