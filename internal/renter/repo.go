package renter

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

type Repo struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) *Repo {
	return &Repo{db: db}
}

func (r *Repo) withCtx(ctx context.Context) *gorm.DB {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.WithContext(ctx)
}

func (r *Repo) Create(ctx context.Context, cr *CarRenter) error {
	db := r.withCtx(ctx)
	if db == nil {
		return fmt.Errorf("repo db is nil")
	}
	return db.Create(cr).Error
}

func (r *Repo) Update(ctx context.Context, cr *CarRenter) error {
	db := r.withCtx(ctx)
	if db == nil {
		return fmt.Errorf("repo db is nil")
	}
	return db.Save(cr).Error
}

func (r *Repo) Delete(ctx context.Context, id string) error {
	db := r.withCtx(ctx)
	if db == nil {
		return fmt.Errorf("repo db is nil")
	}
	return db.Where("id = ?", id).Delete(&CarRenter{}).Error
}

func (r *Repo) FindByID(ctx context.Context, id string) (*CarRenter, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return nil, fmt.Errorf("repo db is nil")
	}
	var cr CarRenter
	if err := db.Where("id = ?", id).First(&cr).Error; err != nil {
		return nil, err
	}
	return &cr, nil
}

func (r *Repo) List(ctx context.Context, offset, limit int) ([]CarRenter, int64, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return nil, 0, fmt.Errorf("repo db is nil")
	}
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	var total int64
	if err := db.Model(&CarRenter{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var renters []CarRenter
	if err := db.Model(&CarRenter{}).Order("created_at DESC").Offset(offset).Limit(limit).Find(&renters).Error; err != nil {
		return nil, 0, err
	}
	return renters, total, nil
}
