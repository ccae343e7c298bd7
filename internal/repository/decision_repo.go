package repository

import (
	"context"
	"time"

	"procurehub/internal/model"

	"gorm.io/gorm"
)

// DecisionFilter narrows decision history queries.
type DecisionFilter struct {
	Status     string
	Department string
	Item       string
	Page       int
	Limit      int
}

// DecisionRepository is the append-only decision history store.
type DecisionRepository interface {
	Create(ctx context.Context, decision *model.Decision) error
	GetByID(ctx context.Context, id string) (*model.Decision, error)
	GetByCode(ctx context.Context, code string) (*model.Decision, error)
	List(ctx context.Context, filter DecisionFilter) ([]model.Decision, int64, error)
	CountByStatus(ctx context.Context, start, end time.Time) (map[string]int, error)
	SpendByDepartment(ctx context.Context, start, end time.Time) ([]model.DepartmentSpend, error)
	TopSuppliers(ctx context.Context, start, end time.Time, limit int) ([]model.SupplierRanking, error)
	Totals(ctx context.Context, start, end time.Time) (totalValue, totalSavings float64, err error)
}

type decisionRepository struct {
	db *gorm.DB
}

func NewDecisionRepository(db *gorm.DB) DecisionRepository {
	return &decisionRepository{db: db}
}

func (r *decisionRepository) Create(ctx context.Context, decision *model.Decision) error {
	return GetDB(ctx, r.db).Create(decision).Error
}

func (r *decisionRepository) GetByID(ctx context.Context, id string) (*model.Decision, error) {
	var decision model.Decision
	if err := GetDB(ctx, r.db).Preload("Requester").First(&decision, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &decision, nil
}

func (r *decisionRepository) GetByCode(ctx context.Context, code string) (*model.Decision, error) {
	var decision model.Decision
	if err := GetDB(ctx, r.db).Preload("Requester").First(&decision, "request_code = ?", code).Error; err != nil {
		return nil, err
	}
	return &decision, nil
}

func (r *decisionRepository) List(ctx context.Context, filter DecisionFilter) ([]model.Decision, int64, error) {
	db := GetDB(ctx, r.db)

	query := db.Model(&model.Decision{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Department != "" {
		query = query.Where("department = ?", filter.Department)
	}
	if filter.Item != "" {
		query = query.Where("item = ?", filter.Item)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = 20
	}

	var decisions []model.Decision
	offset := (filter.Page - 1) * filter.Limit
	if err := query.
		Preload("Requester").
		Order("created_at DESC").
		Offset(offset).
		Limit(filter.Limit).
		Find(&decisions).Error; err != nil {
		return nil, 0, err
	}

	return decisions, total, nil
}

func (r *decisionRepository) CountByStatus(ctx context.Context, start, end time.Time) (map[string]int, error) {
	var rows []struct {
		Status string
		Count  int
	}
	err := GetDB(ctx, r.db).Model(&model.Decision{}).
		Select("status, COUNT(*) as count").
		Where("created_at >= ? AND created_at <= ?", start, end).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *decisionRepository) SpendByDepartment(ctx context.Context, start, end time.Time) ([]model.DepartmentSpend, error) {
	var spend []model.DepartmentSpend
	err := GetDB(ctx, r.db).Model(&model.Decision{}).
		Select("department, COUNT(*) as request_count, SUM(total_cost) as total_value").
		Where("created_at >= ? AND created_at <= ?", start, end).
		Group("department").
		Order("total_value DESC").
		Scan(&spend).Error
	return spend, err
}

func (r *decisionRepository) TopSuppliers(ctx context.Context, start, end time.Time, limit int) ([]model.SupplierRanking, error) {
	var ranking []model.SupplierRanking
	err := GetDB(ctx, r.db).Model(&model.Decision{}).
		Select("supplier, COUNT(*) as times_chosen, SUM(total_cost) as total_value, AVG(lead_time_days) as avg_lead_time").
		Where("supplier <> '' AND created_at >= ? AND created_at <= ?", start, end).
		Group("supplier").
		Order("times_chosen DESC").
		Limit(limit).
		Scan(&ranking).Error
	return ranking, err
}

func (r *decisionRepository) Totals(ctx context.Context, start, end time.Time) (float64, float64, error) {
	var totals struct {
		TotalValue   float64
		TotalSavings float64
	}
	err := GetDB(ctx, r.db).Model(&model.Decision{}).
		Select("COALESCE(SUM(total_cost), 0) as total_value, COALESCE(SUM(potential_savings), 0) as total_savings").
		Where("created_at >= ? AND created_at <= ?", start, end).
		Scan(&totals).Error
	return totals.TotalValue, totals.TotalSavings, err
}
