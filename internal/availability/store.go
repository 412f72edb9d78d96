package availability

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/prestigedrive/prestigedrive/internal/common/logger"
	"github.com/prestigedrive/prestigedrive/internal/common/middleware"
)

// DateRepo 是 Store 对持久层的最小依赖（由 Repo 实现）。
type DateRepo interface {
	ListAll(ctx context.Context) ([]AvailableDate, error)
	FindByCarAndDate(ctx context.Context, carID, date string) (*AvailableDate, error)
	Create(ctx context.Context, row *AvailableDate) error
	DeleteByCarAndDate(ctx context.Context, carID, date string) error
	DeleteBefore(ctx context.Context, day string) (int64, error)
}

// Store 持有当前快照并负责其读写：
// - 读路径（DatesForCar / IsDateAvailable）只打内存快照
// - Refresh 全量重拉并整体换新
// - Toggle 写库后立即刷新（有则删、无则增，保证 (car, date) 至多一行）
type Store struct {
	repo    DateRepo
	log     logger.Logger
	breaker *middleware.CircuitBreaker

	mu   sync.RWMutex
	snap *Snapshot
}

func NewStore(repo DateRepo, log logger.Logger) *Store {
	return &Store{
		repo:    repo,
		log:     log,
		breaker: middleware.NewCircuitBreaker("availability-refresh", 5, 30*time.Second),
		snap:    NewSnapshot(nil),
	}
}

// Refresh 全量重建快照。DB 连续失败时熔断器打开，直接快速失败而不是反复打库。
func (s *Store) Refresh(ctx context.Context) error {
	if s == nil || s.repo == nil {
		return fmt.Errorf("store not initialized")
	}

	var rows []AvailableDate
	err := s.breaker.Call(ctx, func() error {
		var callErr error
		rows, callErr = s.repo.ListAll(ctx)
		return callErr
	})
	if err != nil {
		return fmt.Errorf("refresh availability snapshot: %w", err)
	}

	next := NewSnapshot(rows)
	s.mu.Lock()
	s.snap = next
	s.mu.Unlock()
	return nil
}

func (s *Store) snapshot() *Snapshot {
	if s == nil {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// DatesForCar 见 Snapshot.DatesForCar。
func (s *Store) DatesForCar(carID string) []string {
	return s.snapshot().DatesForCar(carID)
}

// IsDateAvailable 见 Snapshot.IsDateAvailable。
func (s *Store) IsDateAvailable(carID, date string) bool {
	return s.snapshot().IsDateAvailable(carID, date)
}

// Toggle 翻转某 (car, date) 的可租状态，返回翻转后是否可租。
// 两次连续 Toggle 等价于回到原状态。
func (s *Store) Toggle(ctx context.Context, carID, date string) (bool, error) {
	if s == nil || s.repo == nil {
		return false, fmt.Errorf("store not initialized")
	}
	carID = strings.TrimSpace(carID)
	day := NormalizeDay(strings.TrimSpace(date))
	if carID == "" || day == "" {
		return false, fmt.Errorf("car_id/date required")
	}

	_, err := s.repo.FindByCarAndDate(ctx, carID, day)
	switch {
	case err == nil:
		// 已存在：删除
		if err := s.repo.DeleteByCarAndDate(ctx, carID, day); err != nil {
			return false, err
		}
		s.refreshAfterWrite(ctx)
		return false, nil
	case IsNotFound(err):
		// 不存在：新增
		row := &AvailableDate{
			ID:    uuid.NewString(),
			CarID: carID,
			Date:  day,
		}
		if err := s.repo.Create(ctx, row); err != nil {
			return false, err
		}
		s.refreshAfterWrite(ctx)
		return true, nil
	default:
		return false, err
	}
}

// refreshAfterWrite 写库已成功后的快照刷新。刷新失败只记告警不回传错误：
// 落库状态以 DB 为准，快照由定时任务兜底追平。
func (s *Store) refreshAfterWrite(ctx context.Context) {
	if err := s.Refresh(ctx); err != nil && s.log != nil {
		s.log.Warnf("availability refresh after write failed: %v", err)
	}
}

// PruneBefore 清理早于 day 的历史可租日期并刷新快照。
func (s *Store) PruneBefore(ctx context.Context, day string) (int64, error) {
	if s == nil || s.repo == nil {
		return 0, fmt.Errorf("store not initialized")
	}
	day = NormalizeDay(strings.TrimSpace(day))
	if day == "" {
		return 0, fmt.Errorf("day required")
	}
	n, err := s.repo.DeleteBefore(ctx, day)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		if err := s.Refresh(ctx); err != nil {
			return n, err
		}
	}
	return n, nil
}
