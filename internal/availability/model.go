package availability

import "time"

// DayFormat 可租日期统一用 ISO 日字符串（不含时分秒）。
const DayFormat = "2006-01-02"

// AvailableDate 是 available_dates 表的 GORM 模型。
// 每行代表“某辆车在某个自然日可被预订”。
// (car_id, date) 至多一行：写入走 toggle（有则删、无则增），并以联合唯一索引兜底。
type AvailableDate struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CarID     string    `gorm:"index;size:36;not null;uniqueIndex:uk_car_date" json:"car_id"`
	Date      string    `gorm:"size:10;not null;uniqueIndex:uk_car_date" json:"date"` // "2006-01-02"
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// NormalizeDay 把任意日期串截到自然日粒度（丢弃时分秒部分）。
// 入参可能是 "2024-06-01" 或 "2024-06-01T15:04:05Z" 这类带时间的形式。
func NormalizeDay(s string) string {
	if len(s) > len(DayFormat) {
		return s[:len(DayFormat)]
	}
	return s
}
