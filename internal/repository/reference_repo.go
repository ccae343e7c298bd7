package repository

import (
	"context"

	"procurehub/internal/engine"
	"procurehub/internal/model"

	"gorm.io/gorm"
)

// ReferenceRepository manages the lookup tables the decision engine consumes:
// supplier catalog, department budgets, approval ladders and inventory levels.
type ReferenceRepository interface {
	// Snapshot loads all reference tables into an engine config in one read,
	// so each decision evaluates against a consistent view.
	Snapshot(ctx context.Context, screening engine.ScreeningRules) (engine.Config, error)

	ListSuppliers(ctx context.Context, item string) ([]model.SupplierOffer, error)
	UpsertSupplier(ctx context.Context, offer *model.SupplierOffer) error
	ListBudgets(ctx context.Context) ([]model.DepartmentBudget, error)
	UpsertBudget(ctx context.Context, budget *model.DepartmentBudget) error
	ListApprovalLimits(ctx context.Context) ([]model.ApprovalLimit, error)
	UpsertApprovalLimit(ctx context.Context, limit *model.ApprovalLimit) error
	ListInventory(ctx context.Context) ([]model.InventoryLevel, error)
	UpsertInventory(ctx context.Context, level *model.InventoryLevel) error

	CountSuppliers(ctx context.Context) (int64, error)
}

type referenceRepository struct {
	db *gorm.DB
}

func NewReferenceRepository(db *gorm.DB) ReferenceRepository {
	return &referenceRepository{db: db}
}

func (r *referenceRepository) Snapshot(ctx context.Context, screening engine.ScreeningRules) (engine.Config, error) {
	cfg := engine.Config{
		Catalog:          map[string][]engine.SupplierOffer{},
		Budgets:          map[string]engine.BudgetLedger{},
		ApprovalMatrices: map[string]engine.ApprovalMatrix{},
		DefaultMatrix:    engine.DefaultMatrix(),
		Inventory:        map[string]engine.InventoryRecord{},
		Screening:        screening,
	}

	var offers []model.SupplierOffer
	if err := GetDB(ctx, r.db).Order("item, created_at").Find(&offers).Error; err != nil {
		return engine.Config{}, err
	}
	for _, o := range offers {
		cfg.Catalog[o.Item] = append(cfg.Catalog[o.Item], engine.SupplierOffer{
			Name:         o.Name,
			UnitPrice:    o.UnitPrice,
			Availability: o.Availability,
			LeadTimeDays: o.LeadTimeDays,
			Rating:       o.Rating,
		})
	}

	var budgets []model.DepartmentBudget
	if err := GetDB(ctx, r.db).Find(&budgets).Error; err != nil {
		return engine.Config{}, err
	}
	for _, b := range budgets {
		cfg.Budgets[b.Department] = engine.BudgetLedger{
			Total:     b.Total,
			Used:      b.Used,
			Remaining: b.Remaining,
		}
	}

	var limits []model.ApprovalLimit
	if err := GetDB(ctx, r.db).Find(&limits).Error; err != nil {
		return engine.Config{}, err
	}
	for _, l := range limits {
		cfg.ApprovalMatrices[l.Department] = engine.ApprovalMatrix{
			Manager:  l.Manager,
			Director: l.Director,
			VP:       l.VP,
		}
	}

	var levels []model.InventoryLevel
	if err := GetDB(ctx, r.db).Find(&levels).Error; err != nil {
		return engine.Config{}, err
	}
	for _, lv := range levels {
		cfg.Inventory[lv.Item] = engine.InventoryRecord{
			Current: lv.Current,
			Minimum: lv.Minimum,
			Maximum: lv.Maximum,
			OnOrder: lv.OnOrder,
		}
	}

	return cfg, nil
}

func (r *referenceRepository) ListSuppliers(ctx context.Context, item string) ([]model.SupplierOffer, error) {
	var offers []model.SupplierOffer
	query := GetDB(ctx, r.db).Order("item, name")
	if item != "" {
		query = query.Where("item = ?", item)
	}
	err := query.Find(&offers).Error
	return offers, err
}

func (r *referenceRepository) UpsertSupplier(ctx context.Context, offer *model.SupplierOffer) error {
	return GetDB(ctx, r.db).Save(offer).Error
}

func (r *referenceRepository) ListBudgets(ctx context.Context) ([]model.DepartmentBudget, error) {
	var budgets []model.DepartmentBudget
	err := GetDB(ctx, r.db).Order("department").Find(&budgets).Error
	return budgets, err
}

func (r *referenceRepository) UpsertBudget(ctx context.Context, budget *model.DepartmentBudget) error {
	return GetDB(ctx, r.db).Save(budget).Error
}

func (r *referenceRepository) ListApprovalLimits(ctx context.Context) ([]model.ApprovalLimit, error) {
	var limits []model.ApprovalLimit
	err := GetDB(ctx, r.db).Order("department").Find(&limits).Error
	return limits, err
}

func (r *referenceRepository) UpsertApprovalLimit(ctx context.Context, limit *model.ApprovalLimit) error {
	return GetDB(ctx, r.db).Save(limit).Error
}

func (r *referenceRepository) ListInventory(ctx context.Context) ([]model.InventoryLevel, error) {
	var levels []model.InventoryLevel
	err := GetDB(ctx, r.db).Order("item").Find(&levels).Error
	return levels, err
}

func (r *referenceRepository) UpsertInventory(ctx context.Context, level *model.InventoryLevel) error {
	return GetDB(ctx, r.db).Save(level).Error
}

func (r *referenceRepository) CountSuppliers(ctx context.Context) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).Model(&model.SupplierOffer{}).Count(&count).Error
	return count, err
}
