package booking

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

func (r *Repo) Create(ctx context.Context, b *Booking) error {
	db := r.withCtx(ctx)
	if db == nil {
		return fmt.Errorf("repo db is nil")
	}
	return db.Create(b).Error
}

func (r *Repo) Update(ctx context.Context, b *Booking) error {
	db := r.withCtx(ctx)
	if db == nil {
		return fmt.Errorf("repo db is nil")
	}
	return db.Save(b).Error
}

// Delete 物理删除，无软删/回收站。
func (r *Repo) Delete(ctx context.Context, id string) error {
	db := r.withCtx(ctx)
	if db == nil {
		return fmt.Errorf("repo db is nil")
	}
	return db.Where("id = ?", id).Delete(&Booking{}).Error
}

func (r *Repo) GetByID(ctx context.Context, id string) (*Booking, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return nil, fmt.Errorf("repo db is nil")
	}
	var b Booking
	if err := db.Where("id = ?", id).First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

// List 支持按 car_id / status 过滤 + 分页。
func (r *Repo) List(ctx context.Context, carID string, status Status, offset, limit int) ([]Booking, int64, error) {
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

	q := db.Model(&Booking{})
	if carID != "" {
		q = q.Where("car_id = ?", carID)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var bookings []Booking
	if err := q.Order("created_at DESC").Offset(offset).Limit(limit).Find(&bookings).Error; err != nil {
		return nil, 0, err
	}
	return bookings, total, nil
}
