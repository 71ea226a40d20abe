package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account 账户模型（现金、信用卡等）
// 余额不落库，始终由初始余额加交易流水推导（见 service 包）
type Account struct {
	ID             uint            `json:"id" gorm:"primaryKey"`
	Name           string          `json:"name" gorm:"size:50;not null;uniqueIndex"`
	Type           string          `json:"type" gorm:"size:20"` // 账户类型，如 cash / credit
	InitialBalance decimal.Decimal `json:"initial_balance" gorm:"type:decimal(10,2);default:0"`
	BillingDay     *int            `json:"billing_day"` // 信用卡账单日（可选，仅展示用）
	DueDay         *int            `json:"due_day"`     // 信用卡还款日（可选，仅展示用）
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// TableName 设置表名
func (Account) TableName() string {
	return "accounts"
}
