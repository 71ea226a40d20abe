package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// 交易类型常量
const (
	TransactionTypeExpense  = "EXPENSE"
	TransactionTypeIncome   = "INCOME"
	TransactionTypeTransfer = "TRANSFER"
)

// CategoryTransfer 自动转账记录使用的固定分类标识
const CategoryTransfer = "转账"

// Transaction 交易记录模型
// 普通收支只使用 AccountID；TRANSFER 额外使用 TargetAccountID（转入账户）。
// LinkID 指向生成本条记录的支出交易（资金来源自动转账），删除支出时级联删除。
// SortOrder 仅用于同一天内的手动排序，默认 0。
type Transaction struct {
	ID              uint            `json:"id" gorm:"primaryKey"`
	Date            time.Time       `json:"date" gorm:"not null;index"`
	Type            string          `json:"type" gorm:"size:20;not null"` // EXPENSE / INCOME / TRANSFER
	Amount          decimal.Decimal `json:"amount" gorm:"type:decimal(10,2);not null"`
	Category        string          `json:"category" gorm:"size:50;not null"` // 分类名称（冗余存储，非外键）
	Tag             string          `json:"tag" gorm:"size:50"`
	Note            string          `json:"note" gorm:"size:255"`
	AccountID       uint            `json:"account_id" gorm:"not null;index"`
	TargetAccountID *uint           `json:"target_account_id" gorm:"index"`
	LinkID          *uint           `json:"link_id" gorm:"index"`
	SortOrder       int             `json:"sort_order" gorm:"default:0"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`

	Account       Account      `json:"-" gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
	TargetAccount *Account     `json:"-" gorm:"foreignKey:TargetAccountID;constraint:OnDelete:CASCADE"`
	Link          *Transaction `json:"-" gorm:"foreignKey:LinkID;constraint:OnDelete:CASCADE"`
}

// TableName 设置表名
func (Transaction) TableName() string {
	return "transactions"
}

// IsValidTransactionType 校验交易类型是否合法
func IsValidTransactionType(t string) bool {
	switch t {
	case TransactionTypeExpense, TransactionTypeIncome, TransactionTypeTransfer:
		return true
	}
	return false
}
