package repository

import (
	"context"

	"procurehub/internal/model"

	"gorm.io/gorm"
)

// CandidateRepository is the data access layer for recruiting candidates.
type CandidateRepository interface {
	Create(ctx context.Context, candidate *model.Candidate) error
	GetByID(ctx context.Context, id string) (*model.Candidate, error)
	GetByEmail(ctx context.Context, email string) (*model.Candidate, error)
	List(ctx context.Context, status string, page, limit int) ([]model.Candidate, int64, error)
	Update(ctx context.Context, candidate *model.Candidate) error
	Delete(ctx context.Context, id string) error
	CountByStatus(ctx context.Context) ([]model.CandidateBucket, error)
}

type candidateRepository struct {
	db *gorm.DB
}

func NewCandidateRepository(db *gorm.DB) CandidateRepository {
	return &candidateRepository{db: db}
}

func (r *candidateRepository) Create(ctx context.Context, candidate *model.Candidate) error {
	return GetDB(ctx, r.db).Create(candidate).Error
}

func (r *candidateRepository) GetByID(ctx context.Context, id string) (*model.Candidate, error) {
	var candidate model.Candidate
	if err := GetDB(ctx, r.db).First(&candidate, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &candidate, nil
}

func (r *candidateRepository) GetByEmail(ctx context.Context, email string) (*model.Candidate, error) {
	var candidate model.Candidate
	if err := GetDB(ctx, r.db).First(&candidate, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &candidate, nil
}

func (r *candidateRepository) List(ctx context.Context, status string, page, limit int) ([]model.Candidate, int64, error) {
	db := GetDB(ctx, r.db)

	query := db.Model(&model.Candidate{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var candidates []model.Candidate
	offset := (page - 1) * limit
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&candidates).Error; err != nil {
		return nil, 0, err
	}

	return candidates, total, nil
}

func (r *candidateRepository) Update(ctx context.Context, candidate *model.Candidate) error {
	return GetDB(ctx, r.db).Save(candidate).Error
}

func (r *candidateRepository) Delete(ctx context.Context, id string) error {
	return GetDB(ctx, r.db).Delete(&model.Candidate{}, "id = ?", id).Error
}

func (r *candidateRepository) CountByStatus(ctx context.Context) ([]model.CandidateBucket, error) {
	var buckets []model.CandidateBucket
	err := GetDB(ctx, r.db).Model(&model.Candidate{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&buckets).Error
	return buckets, err
}
