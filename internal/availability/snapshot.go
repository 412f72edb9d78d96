package availability

import "sort"

// Snapshot 是按车辆分组的可租日期只读快照。
// 查询全部走内存，不产生额外网络/DB 访问；刷新由外部统一触发。
type Snapshot struct {
	byCar map[string]map[string]struct{}
}

// NewSnapshot 从拉取到的行构建快照。
func NewSnapshot(rows []AvailableDate) *Snapshot {
	byCar := make(map[string]map[string]struct{})
	for _, row := range rows {
		day := NormalizeDay(row.Date)
		if row.CarID == "" || day == "" {
			continue
		}
		set, ok := byCar[row.CarID]
		if !ok {
			set = make(map[string]struct{})
			byCar[row.CarID] = set
		}
		set[day] = struct{}{}
	}
	return &Snapshot{byCar: byCar}
}

// DatesForCar 返回该车辆已知的可租日期（升序）。
// “尚未加载”与“确无可租日期”不作区分，均返回空切片。
func (s *Snapshot) DatesForCar(carID string) []string {
	if s == nil || s.byCar == nil {
		return []string{}
	}
	set, ok := s.byCar[carID]
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(set))
	for day := range set {
		out = append(out, day)
	}
	sort.Strings(out)
	return out
}

// IsDateAvailable 判断某自然日是否在该车辆的可租集合内。
// 入参先归一到日粒度；缺数据一律按不可租处理，不报错。
func (s *Snapshot) IsDateAvailable(carID, date string) bool {
	if s == nil || s.byCar == nil {
		return false
	}
	set, ok := s.byCar[carID]
	if !ok {
		return false
	}
	_, ok = set[NormalizeDay(date)]
	return ok
}
