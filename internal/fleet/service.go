package fleet

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Service 封装车辆目录的核心用例（不依赖 HTTP），便于复用和测试。
type Service struct {
	repo *Repo
}

func NewService(repo *Repo) *Service {
	return &Service{repo: repo}
}

// CreateCarInput 录入车辆的入参。
type CreateCarInput struct {
	Name        string
	Category    string
	Price       int64
	PerDay      bool
	Image       string
	Images      []string
	Specs       []string
	Description string
	Features    []string
	Locations   []string
}

// ListCarsFilter 查询条件。
type ListCarsFilter struct {
	Category string
	Offset   int
	Limit    int
}

func (s *Service) CreateCar(ctx context.Context, in CreateCarInput) (*Car, error) {
	if s == nil || s.repo == nil {
		return nil, fmt.Errorf("service not initialized")
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("name required")
	}
	if in.Price < 0 {
		return nil, fmt.Errorf("price must be >= 0")
	}

	c := &Car{
		ID:          uuid.NewString(),
		Name:        name,
		Category:    strings.TrimSpace(in.Category),
		Price:       in.Price,
		PerDay:      in.PerDay,
		Image:       strings.TrimSpace(in.Image),
		Images:      in.Images,
		Specs:       in.Specs,
		Description: strings.TrimSpace(in.Description),
		Features:    in.Features,
		Locations:   in.Locations,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// UpdateCar 管理端全量覆盖编辑（id 不变）。
func (s *Service) UpdateCar(ctx context.Context, id string, in CreateCarInput) (*Car, error) {
	if s == nil || s.repo == nil {
		return nil, fmt.Errorf("service not initialized")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("id required")
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("name required")
	}
	if in.Price < 0 {
		return nil, fmt.Errorf("price must be >= 0")
	}

	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	c.Name = name
	c.Category = strings.TrimSpace(in.Category)
	c.Price = in.Price
	c.PerDay = in.PerDay
	c.Image = strings.TrimSpace(in.Image)
	c.Images = in.Images
	c.Specs = in.Specs
	c.Description = strings.TrimSpace(in.Description)
	c.Features = in.Features
	c.Locations = in.Locations

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) GetCar(ctx context.Context, id string) (*Car, error) {
	if s == nil || s.repo == nil {
		return nil, fmt.Errorf("service not initialized")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("id required")
	}
	return s.repo.FindByID(ctx, id)
}

func (s *Service) DeleteCar(ctx context.Context, id string) error {
	if s == nil || s.repo == nil {
		return fmt.Errorf("service not initialized")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("id required")
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListCars(ctx context.Context, f ListCarsFilter) ([]Car, int64, error) {
	if s == nil || s.repo == nil {
		return nil, 0, fmt.Errorf("service not initialized")
	}
	return s.repo.List(ctx, strings.TrimSpace(f.Category), f.Offset, f.Limit)
}
