package availability

import (
	"reflect"
	"testing"
)

func TestEmptySnapshot(t *testing.T) {
	s := NewSnapshot(nil)

	dates := s.DatesForCar("car-1")
	if dates == nil || len(dates) != 0 {
		t.Fatalf("expected empty slice for unknown car, got %#v", dates)
	}
	if s.IsDateAvailable("car-1", "2024-06-01") {
		t.Fatalf("expected no date available for unknown car")
	}
}

func TestSnapshotGroupsAndSorts(t *testing.T) {
	rows := []AvailableDate{
		{CarID: "car-7", Date: "2024-06-03"},
		{CarID: "car-7", Date: "2024-06-01"},
		{CarID: "car-7", Date: "2024-06-02"},
		{CarID: "car-9", Date: "2024-06-01"},
	}
	s := NewSnapshot(rows)

	want := []string{"2024-06-01", "2024-06-02", "2024-06-03"}
	if got := s.DatesForCar("car-7"); !reflect.DeepEqual(got, want) {
		t.Fatalf("dates mismatch: got %#v want %#v", got, want)
	}
	if got := s.DatesForCar("car-9"); len(got) != 1 {
		t.Fatalf("expected one date for car-9, got %#v", got)
	}
	if !s.IsDateAvailable("car-7", "2024-06-02") {
		t.Fatalf("expected 2024-06-02 available for car-7")
	}
	if s.IsDateAvailable("car-9", "2024-06-02") {
		t.Fatalf("expected 2024-06-02 unavailable for car-9")
	}
}

func TestSnapshotDeduplicatesRows(t *testing.T) {
	// (car, date) 重复行只算一次；两次 toggle 往返后数据应与原始一致
	rows := []AvailableDate{
		{CarID: "car-7", Date: "2024-06-01"},
		{CarID: "car-7", Date: "2024-06-01"},
	}
	s := NewSnapshot(rows)
	if got := s.DatesForCar("car-7"); len(got) != 1 {
		t.Fatalf("expected deduplicated single date, got %#v", got)
	}
}

func TestIsDateAvailableTruncatesTimeOfDay(t *testing.T) {
	s := NewSnapshot([]AvailableDate{{CarID: "car-7", Date: "2024-06-01"}})
	if !s.IsDateAvailable("car-7", "2024-06-01T15:04:05Z") {
		t.Fatalf("expected day-granularity match to ignore time of day")
	}
}

func TestNormalizeDay(t *testing.T) {
	if got := NormalizeDay("2024-06-01T15:04:05Z"); got != "2024-06-01" {
		t.Fatalf("NormalizeDay: got %q", got)
	}
	if got := NormalizeDay("2024-06-01"); got != "2024-06-01" {
		t.Fatalf("NormalizeDay: got %q", got)
	}
}
