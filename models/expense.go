package models

import (
	"time"

	"gorm.io/gorm"
)

// Expense 消费记录模型
// 必须挂在一个预算下，且预算与消费记录属于同一个用户
type Expense struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	UserID    uint           `json:"user_id" gorm:"index;not null"`
	BudgetID  uint           `json:"budget_id" gorm:"index;not null"`
	Name      string         `json:"name" gorm:"size:100;not null"`
	Amount    float64        `json:"amount" gorm:"type:decimal(10,2);not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
	User      User           `json:"-" gorm:"foreignKey:UserID"`
	Budget    Budget         `json:"-" gorm:"foreignKey:BudgetID"`
}

// TableName 设置表名
func (Expense) TableName() string {
	return "expenses"
}
