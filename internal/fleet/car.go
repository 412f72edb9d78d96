package fleet

import (
	"time"
)

// StringList 以 JSON 形式落库的字符串列表（图集、规格、卖点、取车点等）。
type StringList []string

// Car 是 cars 表的 GORM 模型。
// 车辆由平台运营方录入，除管理端编辑外不可变。
type Car struct {
	ID          string     `gorm:"primaryKey;size:36" json:"id"`
	Name        string     `gorm:"size:128;not null" json:"name"`
	Category    string     `gorm:"index;size:32" json:"category"` // 例如 supercar / suv / classic
	Price       int64      `gorm:"not null;default:0" json:"price"`
	PerDay      bool       `gorm:"not null;default:true" json:"per_day"` // 按天计费（否则按次）
	Image       string     `gorm:"size:512" json:"image"`
	Images      StringList `gorm:"serializer:json" json:"images"`
	Specs       StringList `gorm:"serializer:json" json:"specs"`
	Description string     `gorm:"type:text" json:"description"`
	Features    StringList `gorm:"serializer:json" json:"features"`
	Locations   StringList `gorm:"serializer:json" json:"locations"` // 可选取车点
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}
