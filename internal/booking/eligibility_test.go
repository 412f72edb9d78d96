package booking

import (
	"errors"
	"testing"
)

// fakeAvailability 用内存集合实现 AvailabilityQuery。
type fakeAvailability map[string]map[string]bool

func (f fakeAvailability) IsDateAvailable(carID, date string) bool {
	return f[carID][date]
}

func availFor(carID string, dates ...string) fakeAvailability {
	set := make(map[string]bool, len(dates))
	for _, d := range dates {
		set[d] = true
	}
	return fakeAvailability{carID: set}
}

func TestCheckEligibilityMissingDate(t *testing.T) {
	q := availFor("car-7", "2024-06-01")
	if err := CheckEligibility(q, "car-7", "", "2024-06-01"); !errors.Is(err, ErrMissingDate) {
		t.Fatalf("expected ErrMissingDate, got %v", err)
	}
	if err := CheckEligibility(q, "car-7", "2024-06-01", ""); !errors.Is(err, ErrMissingDate) {
		t.Fatalf("expected ErrMissingDate, got %v", err)
	}
	if err := CheckEligibility(q, "car-7", "  ", "2024-06-01"); !errors.Is(err, ErrMissingDate) {
		t.Fatalf("expected ErrMissingDate for blank date, got %v", err)
	}
}

func TestCheckEligibilityInvalidRange(t *testing.T) {
	// 取车日晚于还车日必须失败，与可租数据无关
	q := availFor("car-7", "2024-06-01", "2024-06-02")
	if err := CheckEligibility(q, "car-7", "2024-06-02", "2024-06-01"); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
	// 没有任何可租数据时同样先报区间错误
	if err := CheckEligibility(fakeAvailability{}, "car-7", "2024-07-02", "2024-07-01"); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange without availability data, got %v", err)
	}
}

func TestCheckEligibilityEndpointsOnly(t *testing.T) {
	// 只校验两个端点：1/1 和 1/5 可租、1/2-1/4 不可租时，整段预订必须通过
	q := availFor("car-1", "2024-01-01", "2024-01-05")
	if err := CheckEligibility(q, "car-1", "2024-01-01", "2024-01-05"); err != nil {
		t.Fatalf("expected endpoints-only check to pass, got %v", err)
	}
}

func TestCheckEligibilityUnavailableEndpoint(t *testing.T) {
	q := availFor("car-7", "2024-06-01", "2024-06-02", "2024-06-03")

	if err := CheckEligibility(q, "car-7", "2024-06-01", "2024-06-02"); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if err := CheckEligibility(q, "car-7", "2024-06-02", "2024-06-01"); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
	// 还车日不在可租集合内
	if err := CheckEligibility(q, "car-7", "2024-06-01", "2024-06-10"); !errors.Is(err, ErrDateUnavailable) {
		t.Fatalf("expected ErrDateUnavailable, got %v", err)
	}
	// 取车日不在可租集合内
	if err := CheckEligibility(q, "car-7", "2024-05-31", "2024-06-02"); !errors.Is(err, ErrDateUnavailable) {
		t.Fatalf("expected ErrDateUnavailable, got %v", err)
	}
}

func TestCheckEligibilityUnknownCar(t *testing.T) {
	q := availFor("car-7", "2024-06-01")
	if err := CheckEligibility(q, "car-8", "2024-06-01", "2024-06-01"); !errors.Is(err, ErrDateUnavailable) {
		t.Fatalf("expected ErrDateUnavailable for unknown car, got %v", err)
	}
}

func TestCheckEligibilityTruncatesTimeOfDay(t *testing.T) {
	q := availFor("car-7", "2024-06-01", "2024-06-02")
	if err := CheckEligibility(q, "car-7", "2024-06-01T10:00:00Z", "2024-06-02T08:00:00Z"); err != nil {
		t.Fatalf("expected day-granularity match, got %v", err)
	}
}

func TestCheckEligibilityNilQuery(t *testing.T) {
	if err := CheckEligibility(nil, "car-7", "2024-06-01", "2024-06-02"); !errors.Is(err, ErrDateUnavailable) {
		t.Fatalf("expected ErrDateUnavailable with nil query, got %v", err)
	}
}
