package booking

import "time"

// Status 预订审核状态枚举（持久化为字符串）。
type Status string

const (
	StatusPending  Status = "pending"  // 已提交，待审核（创建时强制为该状态）
	StatusApproved Status = "approved" // 管理端已通过
	StatusRejected Status = "rejected" // 管理端已拒绝
)

// AllowTransition 定义审核状态的允许流转关系。
// 三个状态两两可达（含退回 pending 重审），没有终态；删除是独立操作，任意状态下都允许。
var AllowTransition = map[Status][]Status{
	StatusPending:  {StatusApproved, StatusRejected},
	StatusApproved: {StatusPending, StatusRejected},
	StatusRejected: {StatusPending, StatusApproved},
}

// ValidStatus 判断是否为已知状态值。
func ValidStatus(s Status) bool {
	_, ok := AllowTransition[s]
	return ok
}

// CanTransition 判断 from -> to 是否允许。当前规则下已知状态间均可流转，
// 含原地覆盖（管理端界面会屏蔽同值操作，但本操作自身不设防）。
func CanTransition(from, to Status) bool {
	if !ValidStatus(to) {
		return false
	}
	if from == to {
		return true
	}
	allowed, ok := AllowTransition[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// Booking 是 bookings 表的 GORM 模型。
// car_name 为下单时刻的冗余快照，车辆改名不回填。
type Booking struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	CarID         string    `gorm:"index;size:36;not null" json:"car_id"`
	CarName       string    `gorm:"size:128" json:"car_name"`
	CustomerName  string    `gorm:"size:128;not null" json:"customer_name"`
	CustomerEmail string    `gorm:"size:128;not null" json:"customer_email"`
	CustomerPhone string    `gorm:"size:32" json:"customer_phone"`
	StartDate     string    `gorm:"size:10;not null" json:"start_date"` // "2006-01-02"
	EndDate       string    `gorm:"size:10;not null" json:"end_date"`
	Status        Status    `gorm:"type:varchar(16);index;not null" json:"status"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
