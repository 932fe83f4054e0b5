package models

import "time"

type Material struct {
	ID uint `gorm:"column:id;primaryKey" json:"id"`

	Title    string `gorm:"column:title;size:200;not null" json:"title"`             // 标题
	Content  string `gorm:"column:content;type:text;not null" json:"content"`        // 正文
	Category string `gorm:"column:category;size:50;default:general" json:"category"` // 分类

	CreatedAt time.Time `gorm:"column:created_at;index" json:"created_at"` // 创建后不再变化
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}
