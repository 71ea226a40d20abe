package models

import (
	"time"
)

// 分类类型常量
const (
	CategoryTypeExpense = "EXPENSE"
	CategoryTypeIncome  = "INCOME"
)

// Category 收支分类（父子树形结构，自引用外键）
// 删除父分类时由数据库级联删除其子分类
type Category struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:50;not null"`
	Type      string    `json:"type" gorm:"size:20;not null"` // EXPENSE / INCOME
	ParentID  *uint     `json:"parent_id" gorm:"index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Parent *Category `json:"-" gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE"`
}

// TableName 设置表名
func (Category) TableName() string {
	return "categories"
}

// IsValidCategoryType 校验分类类型是否合法
func IsValidCategoryType(t string) bool {
	return t == CategoryTypeExpense || t == CategoryTypeIncome
}
