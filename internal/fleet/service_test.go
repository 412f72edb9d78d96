package fleet

import (
	"context"
	"testing"
)

func TestCreateCarRequiresName(t *testing.T) {
	svc := NewService(NewRepo(nil))

	if _, err := svc.CreateCar(context.Background(), CreateCarInput{Name: "   ", Price: 100}); err == nil {
		t.Fatalf("expected name required error")
	}
}

func TestCreateCarRejectsNegativePrice(t *testing.T) {
	svc := NewService(NewRepo(nil))

	if _, err := svc.CreateCar(context.Background(), CreateCarInput{Name: "Aventador", Price: -1}); err == nil {
		t.Fatalf("expected negative price rejected")
	}
}

func TestUpdateCarRequiresID(t *testing.T) {
	svc := NewService(NewRepo(nil))

	if _, err := svc.UpdateCar(context.Background(), " ", CreateCarInput{Name: "Aventador"}); err == nil {
		t.Fatalf("expected id required error")
	}
}

func TestServiceNotInitialized(t *testing.T) {
	var svc *Service
	ctx := context.Background()

	if _, err := svc.CreateCar(ctx, CreateCarInput{Name: "x"}); err == nil {
		t.Fatalf("expected error on nil service")
	}
	if err := svc.DeleteCar(ctx, "x"); err == nil {
		t.Fatalf("expected error on nil service")
	}
}
