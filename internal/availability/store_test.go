package availability

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"gorm.io/gorm"
)

// memDateRepo 内存实现，(car, date) 为主键，重复写入直接报错。
type memDateRepo struct {
	rows    map[string]AvailableDate
	listErr error
}

func newMemDateRepo() *memDateRepo {
	return &memDateRepo{rows: make(map[string]AvailableDate)}
}

func rowKey(carID, date string) string { return carID + "|" + date }

func (m *memDateRepo) ListAll(ctx context.Context) ([]AvailableDate, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]AvailableDate, 0, len(m.rows))
	for _, r := range m.rows {
		out = append(out, r)
	}
	return out, nil
}

func (m *memDateRepo) FindByCarAndDate(ctx context.Context, carID, date string) (*AvailableDate, error) {
	r, ok := m.rows[rowKey(carID, date)]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &r, nil
}

func (m *memDateRepo) Create(ctx context.Context, row *AvailableDate) error {
	k := rowKey(row.CarID, row.Date)
	if _, ok := m.rows[k]; ok {
		return fmt.Errorf("duplicate row for %s", k)
	}
	m.rows[k] = *row
	return nil
}

func (m *memDateRepo) DeleteByCarAndDate(ctx context.Context, carID, date string) error {
	delete(m.rows, rowKey(carID, date))
	return nil
}

func (m *memDateRepo) DeleteBefore(ctx context.Context, day string) (int64, error) {
	var n int64
	for k, r := range m.rows {
		if r.Date < day {
			delete(m.rows, k)
			n++
		}
	}
	return n, nil
}

func (m *memDateRepo) countFor(carID, date string) int {
	if _, ok := m.rows[rowKey(carID, date)]; ok {
		return 1
	}
	return 0
}

func TestToggleAddsThenRemoves(t *testing.T) {
	repo := newMemDateRepo()
	store := NewStore(repo, nil)
	ctx := context.Background()

	// 第一次翻转：新增，翻转后可租
	available, err := store.Toggle(ctx, "car-7", "2024-06-01")
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if !available {
		t.Fatalf("expected available=true after adding")
	}
	if !store.IsDateAvailable("car-7", "2024-06-01") {
		t.Fatalf("snapshot should reflect the added date")
	}
	if got := repo.countFor("car-7", "2024-06-01"); got != 1 {
		t.Fatalf("expected exactly one row, got %d", got)
	}

	// 第二次翻转：删除，回到原始状态
	available, err = store.Toggle(ctx, "car-7", "2024-06-01")
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if available {
		t.Fatalf("expected available=false after removing")
	}
	if store.IsDateAvailable("car-7", "2024-06-01") {
		t.Fatalf("snapshot should no longer contain the date")
	}
	if got := repo.countFor("car-7", "2024-06-01"); got != 0 {
		t.Fatalf("expected zero rows after round trip, got %d", got)
	}
}

func TestToggleNeverDuplicatesRow(t *testing.T) {
	repo := newMemDateRepo()
	store := NewStore(repo, nil)
	ctx := context.Background()

	// 连续多次翻转，(car, date) 始终至多一行
	for i := 0; i < 5; i++ {
		if _, err := store.Toggle(ctx, "car-7", "2024-06-01"); err != nil {
			t.Fatalf("toggle %d: %v", i, err)
		}
		if got := repo.countFor("car-7", "2024-06-01"); got > 1 {
			t.Fatalf("toggle %d: duplicate rows (%d)", i, got)
		}
	}
}

func TestToggleRejectsEmptyInput(t *testing.T) {
	store := NewStore(newMemDateRepo(), nil)

	if _, err := store.Toggle(context.Background(), "", "2024-06-01"); err == nil {
		t.Fatalf("expected error for empty car id")
	}
	if _, err := store.Toggle(context.Background(), "car-7", "  "); err == nil {
		t.Fatalf("expected error for blank date")
	}
}

func TestToggleSucceedsWhenRefreshFails(t *testing.T) {
	repo := newMemDateRepo()
	store := NewStore(repo, nil)
	ctx := context.Background()

	// 写库成功但快照刷新失败：操作仍成功，状态以库为准
	repo.listErr = errors.New("db gone")
	available, err := store.Toggle(ctx, "car-7", "2024-06-01")
	if err != nil {
		t.Fatalf("toggle must not fail after a successful write: %v", err)
	}
	if !available {
		t.Fatalf("expected available=true")
	}
	if got := repo.countFor("car-7", "2024-06-01"); got != 1 {
		t.Fatalf("expected the row to be persisted, got %d", got)
	}
}

func TestRefreshSwapsSnapshot(t *testing.T) {
	repo := newMemDateRepo()
	repo.rows[rowKey("car-7", "2024-06-02")] = AvailableDate{CarID: "car-7", Date: "2024-06-02"}
	repo.rows[rowKey("car-7", "2024-06-01")] = AvailableDate{CarID: "car-7", Date: "2024-06-01"}
	store := NewStore(repo, nil)

	if store.IsDateAvailable("car-7", "2024-06-01") {
		t.Fatalf("snapshot must be empty before the first refresh")
	}
	if err := store.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	want := []string{"2024-06-01", "2024-06-02"}
	if got := store.DatesForCar("car-7"); !reflect.DeepEqual(got, want) {
		t.Fatalf("dates mismatch: got %#v want %#v", got, want)
	}
}

func TestRefreshFailureKeepsOldSnapshot(t *testing.T) {
	repo := newMemDateRepo()
	repo.rows[rowKey("car-7", "2024-06-01")] = AvailableDate{CarID: "car-7", Date: "2024-06-01"}
	store := NewStore(repo, nil)
	ctx := context.Background()

	if err := store.Refresh(ctx); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	repo.listErr = errors.New("db gone")
	if err := store.Refresh(ctx); err == nil {
		t.Fatalf("expected refresh error")
	}
	// 旧快照继续可读
	if !store.IsDateAvailable("car-7", "2024-06-01") {
		t.Fatalf("old snapshot should survive a failed refresh")
	}
}

func TestPruneBefore(t *testing.T) {
	repo := newMemDateRepo()
	repo.rows[rowKey("car-7", "2024-05-30")] = AvailableDate{CarID: "car-7", Date: "2024-05-30"}
	repo.rows[rowKey("car-7", "2024-05-31")] = AvailableDate{CarID: "car-7", Date: "2024-05-31"}
	repo.rows[rowKey("car-7", "2024-06-01")] = AvailableDate{CarID: "car-7", Date: "2024-06-01"}
	store := NewStore(repo, nil)
	ctx := context.Background()

	if err := store.Refresh(ctx); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	n, err := store.PruneBefore(ctx, "2024-06-01")
	if err != nil {
		t.Fatalf("prune: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 pruned rows, got %d", n)
	}
	want := []string{"2024-06-01"}
	if got := store.DatesForCar("car-7"); !reflect.DeepEqual(got, want) {
		t.Fatalf("dates mismatch after prune: got %#v want %#v", got, want)
	}
}
