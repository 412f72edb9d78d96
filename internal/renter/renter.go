package renter

import "time"

// StringList 以 JSON 形式落库的字符串列表。
type StringList []string

// CarRenter 是 car_renters 表的 GORM 模型（合作商家名录条目）。
// 与 Booking / Car 无外键关系，独立 CRUD。
type CarRenter struct {
	ID           string     `gorm:"primaryKey;size:36" json:"id"`
	Name         string     `gorm:"size:128;not null" json:"name"`
	Email        string     `gorm:"size:128" json:"email"`
	Phone        string     `gorm:"size:32" json:"phone"`
	Address      string     `gorm:"size:255" json:"address"`
	Description  string     `gorm:"type:text" json:"description"`
	Image        string     `gorm:"size:512" json:"image"`
	Rating       float64    `gorm:"not null;default:0" json:"rating"`
	ReviewCount  int        `gorm:"not null;default:0" json:"review_count"`
	Verification string     `gorm:"size:32" json:"verification"` // 例如 verified / premium
	MemberSince  string     `gorm:"size:10" json:"member_since"` // "2006-01-02"
	Specialties  StringList `gorm:"serializer:json" json:"specialties"`
	FeaturedCars StringList `gorm:"serializer:json" json:"featured_cars"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// Patch 部分更新：nil 字段表示“保持现值”，非 nil 字段整体覆盖。
type Patch struct {
	Name         *string
	Email        *string
	Phone        *string
	Address      *string
	Description  *string
	Image        *string
	Rating       *float64
	ReviewCount  *int
	Verification *string
	MemberSince  *string
	Specialties  *[]string
	FeaturedCars *[]string
}

// Apply 把补丁套到实体上。
func (p Patch) Apply(r *CarRenter) {
	if r == nil {
		return
	}
	if p.Name != nil {
		r.Name = *p.Name
	}
	if p.Email != nil {
		r.Email = *p.Email
	}
	if p.Phone != nil {
		r.Phone = *p.Phone
	}
	if p.Address != nil {
		r.Address = *p.Address
	}
	if p.Description != nil {
		r.Description = *p.Description
	}
	if p.Image != nil {
		r.Image = *p.Image
	}
	if p.Rating != nil {
		r.Rating = *p.Rating
	}
	if p.ReviewCount != nil {
		r.ReviewCount = *p.ReviewCount
	}
	if p.Verification != nil {
		r.Verification = *p.Verification
	}
	if p.MemberSince != nil {
		r.MemberSince = *p.MemberSince
	}
	if p.Specialties != nil {
		r.Specialties = *p.Specialties
	}
	if p.FeaturedCars != nil {
		r.FeaturedCars = *p.FeaturedCars
	}
}
