package booking

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestCreateBookingRequiresFields(t *testing.T) {
	svc := NewService(NewRepo(nil), availFor("car-1", "2025-06-01", "2025-06-05"))
	ctx := context.Background()

	cases := []struct {
		name string
		in   CreateBookingInput
		want string
	}{
		{"missing car_id", CreateBookingInput{CustomerName: "a", CustomerEmail: "a@b.c"}, "car_id"},
		{"missing customer_name", CreateBookingInput{CarID: "car-1", CustomerEmail: "a@b.c"}, "customer_name"},
		{"missing customer_email", CreateBookingInput{CarID: "car-1", CustomerName: "a"}, "customer_email"},
	}
	for _, tc := range cases {
		_, err := svc.CreateBooking(ctx, tc.in)
		if err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("%s: expected error mentioning %q, got %v", tc.name, tc.want, err)
		}
	}
}

func TestCreateBookingRunsEligibilityCheck(t *testing.T) {
	svc := NewService(NewRepo(nil), availFor("car-1", "2025-06-01", "2025-06-05"))
	ctx := context.Background()

	_, err := svc.CreateBooking(ctx, CreateBookingInput{
		CarID:         "car-1",
		CustomerName:  "Alice",
		CustomerEmail: "alice@example.com",
		StartDate:     "2025-06-01",
		EndDate:       "2025-06-09",
	})
	if !errors.Is(err, ErrDateUnavailable) {
		t.Fatalf("expected ErrDateUnavailable, got %v", err)
	}

	_, err = svc.CreateBooking(ctx, CreateBookingInput{
		CarID:         "car-1",
		CustomerName:  "Alice",
		CustomerEmail: "alice@example.com",
		StartDate:     "2025-06-05",
		EndDate:       "2025-06-01",
	})
	if !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}

func TestSetStatusRejectsUnknownStatus(t *testing.T) {
	svc := NewService(NewRepo(nil), nil)

	if _, err := svc.SetStatus(context.Background(), "some-id", Status("archived")); err == nil {
		t.Fatalf("expected unknown status rejected")
	}
}

func TestServiceNotInitialized(t *testing.T) {
	var svc *Service
	ctx := context.Background()

	if _, err := svc.CreateBooking(ctx, CreateBookingInput{}); err == nil {
		t.Fatalf("expected error on nil service")
	}
	if _, err := svc.SetStatus(ctx, "x", StatusApproved); err == nil {
		t.Fatalf("expected error on nil service")
	}
	if err := svc.DeleteBooking(ctx, "x"); err == nil {
		t.Fatalf("expected error on nil service")
	}
}
