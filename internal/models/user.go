package models

import (
	"time"

	"gorm.io/gorm"
)

// User 用户表。凭证签发由外部认证服务负责，
// 本引擎只校验用户存在且可用。
type User struct {
	ID        uint           `gorm:"primarykey" json:"id"`                                   // 主键
	Email     string         `gorm:"uniqueIndex;not null" json:"email"`                      // 邮箱
	Status    string         `gorm:"type:varchar(20);not null;default:'active'" json:"status"` // 状态（active/disabled）
	CreatedAt time.Time      `gorm:"index" json:"created_at"`                                // 创建时间
	UpdatedAt time.Time      `json:"updated_at"`                                             // 更新时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                                         // 软删除时间
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}
