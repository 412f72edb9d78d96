package admin

import "time"

// AdminUser 是 admin_users 表的 GORM 模型。
// 只存 bcrypt 摘要，不存明文口令；也不再自动预置默认账号，
// 账号一律通过 adminctl 显式创建。
type AdminUser struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Username     string    `gorm:"uniqueIndex;size:64;not null" json:"username"`
	PasswordHash string    `gorm:"size:128;not null" json:"-"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
