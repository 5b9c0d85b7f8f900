package models

import (
	"time"

	"gorm.io/gorm"
)

// Comment 评论模型
// parent_id 为空表示顶层评论，否则指向被回复的评论。
// parent_id 在创建时确定，之后不再变更，因此评论只会构成森林，不会出现环。
type Comment struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	AuthorID  uint           `json:"author_id" gorm:"index;not null"`
	ParentID  *uint          `json:"parent_id" gorm:"index"`
	Text      string         `json:"text" gorm:"size:2000;not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
	Author    User           `json:"-" gorm:"foreignKey:AuthorID"`
}

// TableName 设置表名
func (Comment) TableName() string {
	return "comments"
}
