package availability

import (
	"context"
	"errors"
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

// ListAll 拉取全量可租日期行（构建快照用）。
func (r *Repo) ListAll(ctx context.Context) ([]AvailableDate, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return nil, fmt.Errorf("repo db is nil")
	}
	var rows []AvailableDate
	if err := db.Order("car_id, date").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *Repo) FindByCarAndDate(ctx context.Context, carID, date string) (*AvailableDate, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return nil, fmt.Errorf("repo db is nil")
	}
	var row AvailableDate
	if err := db.Where("car_id = ? AND date = ?", carID, date).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *Repo) Create(ctx context.Context, row *AvailableDate) error {
	db := r.withCtx(ctx)
	if db == nil {
		return fmt.Errorf("repo db is nil")
	}
	return db.Create(row).Error
}

func (r *Repo) DeleteByCarAndDate(ctx context.Context, carID, date string) error {
	db := r.withCtx(ctx)
	if db == nil {
		return fmt.Errorf("repo db is nil")
	}
	return db.Where("car_id = ? AND date = ?", carID, date).Delete(&AvailableDate{}).Error
}

// DeleteBefore 删除早于 day 的历史行（定时清理用），返回删除行数。
func (r *Repo) DeleteBefore(ctx context.Context, day string) (int64, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return 0, fmt.Errorf("repo db is nil")
	}
	res := db.Where("date < ?", day).Delete(&AvailableDate{})
	return res.RowsAffected, res.Error
}

// IsNotFound 供上层判断“行不存在”。
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
