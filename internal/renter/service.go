package renter

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Service 合作商家名录的标准 CRUD。
type Service struct {
	repo *Repo
}

func NewService(repo *Repo) *Service {
	return &Service{repo: repo}
}

// CreateRenterInput 新建商家的入参。
type CreateRenterInput struct {
	Name         string
	Email        string
	Phone        string
	Address      string
	Description  string
	Image        string
	Rating       float64
	ReviewCount  int
	Verification string
	MemberSince  string
	Specialties  []string
	FeaturedCars []string
}

func (s *Service) CreateRenter(ctx context.Context, in CreateRenterInput) (*CarRenter, error) {
	if s == nil || s.repo == nil {
		return nil, fmt.Errorf("service not initialized")
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("name required")
	}

	cr := &CarRenter{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        strings.TrimSpace(in.Email),
		Phone:        strings.TrimSpace(in.Phone),
		Address:      strings.TrimSpace(in.Address),
		Description:  strings.TrimSpace(in.Description),
		Image:        strings.TrimSpace(in.Image),
		Rating:       in.Rating,
		ReviewCount:  in.ReviewCount,
		Verification: strings.TrimSpace(in.Verification),
		MemberSince:  strings.TrimSpace(in.MemberSince),
		Specialties:  in.Specialties,
		FeaturedCars: in.FeaturedCars,
	}
	if err := s.repo.Create(ctx, cr); err != nil {
		return nil, err
	}
	return cr, nil
}

// UpdateRenter 部分更新：只覆盖补丁里给出的字段。name 给了就不能是空串。
func (s *Service) UpdateRenter(ctx context.Context, id string, p Patch) (*CarRenter, error) {
	if s == nil || s.repo == nil {
		return nil, fmt.Errorf("service not initialized")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("id required")
	}
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return nil, fmt.Errorf("name cannot be empty")
	}

	cr, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Apply(cr)
	if err := s.repo.Update(ctx, cr); err != nil {
		return nil, err
	}
	return cr, nil
}

func (s *Service) GetRenter(ctx context.Context, id string) (*CarRenter, error) {
	if s == nil || s.repo == nil {
		return nil, fmt.Errorf("service not initialized")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("id required")
	}
	return s.repo.FindByID(ctx, id)
}

func (s *Service) DeleteRenter(ctx context.Context, id string) error {
	if s == nil || s.repo == nil {
		return fmt.Errorf("service not initialized")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("id required")
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListRenters(ctx context.Context, offset, limit int) ([]CarRenter, int64, error) {
	if s == nil || s.repo == nil {
		return nil, 0, fmt.Errorf("service not initialized")
	}
	return s.repo.List(ctx, offset, limit)
}
