package models

import (
	"time"

	"gorm.io/gorm"
)

// Budget 预算模型
// 删除预算时会级联删除其下所有消费记录
type Budget struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	UserID    uint           `json:"user_id" gorm:"index;not null"`
	Name      string         `json:"name" gorm:"size:100;not null"`
	Amount    float64        `json:"amount" gorm:"type:decimal(10,2);not null"`
	Icon      string         `json:"icon" gorm:"size:50"` // emoji 图标
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
	User      User           `json:"-" gorm:"foreignKey:UserID"`
}

// TableName 设置表名
func (Budget) TableName() string {
	return "budgets"
}
