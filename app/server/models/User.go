package models

import "time"

type User struct {
	ID uint `gorm:"column:id;primaryKey"`

	// 基础信息
	Username string `gorm:"column:username;size:50;uniqueIndex;not null"` // 用户名，全局唯一
	IsActive bool   `gorm:"column:is_active;not null"`                    // 停用的用户不能登录

	// 登录与授权认证相关
	PasswordHash string `gorm:"column:password_hash;size:255;not null"` // 密码，只储存 hash

	CreatedAt time.Time `gorm:"column:created_at"`
}
