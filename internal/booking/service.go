package booking

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Service 封装预订记录生命周期：提交（含资格检查）、审核流转、删除、查询。
type Service struct {
	repo  *Repo
	avail AvailabilityQuery
}

func NewService(repo *Repo, avail AvailabilityQuery) *Service {
	return &Service{repo: repo, avail: avail}
}

// CreateBookingInput 提交预订的入参。
// Status 字段刻意不存在：新建一律 pending，调用方给什么都不认。
type CreateBookingInput struct {
	CarID         string
	CarName       string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	StartDate     string
	EndDate       string
}

// ListBookingsFilter 查询条件。
type ListBookingsFilter struct {
	CarID  string
	Status Status
	Offset int
	Limit  int
}

// CreateBooking 先过资格检查，通过后以 pending 状态落库。
func (s *Service) CreateBooking(ctx context.Context, in CreateBookingInput) (*Booking, error) {
	if s == nil || s.repo == nil {
		return nil, fmt.Errorf("service not initialized")
	}
	carID := strings.TrimSpace(in.CarID)
	if carID == "" {
		return nil, fmt.Errorf("car_id required")
	}
	if strings.TrimSpace(in.CustomerName) == "" {
		return nil, fmt.Errorf("customer_name required")
	}
	if strings.TrimSpace(in.CustomerEmail) == "" {
		return nil, fmt.Errorf("customer_email required")
	}

	if err := CheckEligibility(s.avail, carID, in.StartDate, in.EndDate); err != nil {
		return nil, err
	}

	b := &Booking{
		ID:            uuid.NewString(),
		CarID:         carID,
		CarName:       strings.TrimSpace(in.CarName),
		CustomerName:  strings.TrimSpace(in.CustomerName),
		CustomerEmail: strings.TrimSpace(in.CustomerEmail),
		CustomerPhone: strings.TrimSpace(in.CustomerPhone),
		StartDate:     strings.TrimSpace(in.StartDate),
		EndDate:       strings.TrimSpace(in.EndDate),
		Status:        StatusPending,
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// SetStatus 管理端审核流转。目标必须是已知状态；已知状态间无条件覆盖（含同值）。
func (s *Service) SetStatus(ctx context.Context, id string, to Status) (*Booking, error) {
	if s == nil || s.repo == nil {
		return nil, fmt.Errorf("service not initialized")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("id required")
	}
	if !ValidStatus(to) {
		return nil, fmt.Errorf("unknown booking status: %s", to)
	}

	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanTransition(b.Status, to) {
		return nil, fmt.Errorf("invalid booking status transition: %s -> %s", b.Status, to)
	}

	b.Status = to
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// DeleteBooking 永久删除，不可恢复。
func (s *Service) DeleteBooking(ctx context.Context, id string) error {
	if s == nil || s.repo == nil {
		return fmt.Errorf("service not initialized")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("id required")
	}
	// 先确认存在，让“删不存在的记录”表现为 not found 而不是静默成功
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) GetBooking(ctx context.Context, id string) (*Booking, error) {
	if s == nil || s.repo == nil {
		return nil, fmt.Errorf("service not initialized")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("id required")
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListBookings(ctx context.Context, f ListBookingsFilter) ([]Booking, int64, error) {
	if s == nil || s.repo == nil {
		return nil, 0, fmt.Errorf("service not initialized")
	}
	return s.repo.List(ctx, strings.TrimSpace(f.CarID), f.Status, f.Offset, f.Limit)
}
