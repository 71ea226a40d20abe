package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"ledger/models"
)

// 校验错误（对应 HTTP 400）
var (
	ErrInvalidType            = errors.New("无效的交易类型")
	ErrAmountNotPositive      = errors.New("金额必须大于 0")
	ErrTransferTargetRequired = errors.New("转账需指定转入账户")
	ErrTransferSameAccount    = errors.New("转入账户不能与转出账户相同")
	ErrTargetNotAllowed       = errors.New("非转账交易不能指定转入账户")
	ErrFundSameAccount        = errors.New("支出账户和资金来源账户不能相同")
	ErrFundOnlyForExpense     = errors.New("仅支出交易可指定资金来源账户")
)

// IsValidationError 判断是否为交易校验错误（应按 400 返回给调用方）
func IsValidationError(err error) bool {
	switch {
	case errors.Is(err, ErrInvalidType),
		errors.Is(err, ErrAmountNotPositive),
		errors.Is(err, ErrTransferTargetRequired),
		errors.Is(err, ErrTransferSameAccount),
		errors.Is(err, ErrTargetNotAllowed),
		errors.Is(err, ErrFundSameAccount),
		errors.Is(err, ErrFundOnlyForExpense):
		return true
	}
	return false
}

// CreateTransactionInput 创建交易的入参
// FundAccountID 为辅助字段：支出指定资金来源账户时自动生成一条关联转账，
// 该字段本身不落库
type CreateTransactionInput struct {
	Date            time.Time
	Type            string
	Amount          decimal.Decimal
	Category        string
	Tag             string
	Note            string
	AccountID       uint
	TargetAccountID *uint
	FundAccountID   *uint
	SortOrder       int
}

// ValidateTransaction 校验交易类型与账户组合
// TRANSFER 必须指定且区分转入账户；其他类型禁止携带转入账户；
// 支出的资金来源账户不能与支出账户相同
func ValidateTransaction(in CreateTransactionInput) error {
	if !models.IsValidTransactionType(in.Type) {
		return ErrInvalidType
	}
	if !in.Amount.IsPositive() {
		return ErrAmountNotPositive
	}
	if in.Type == models.TransactionTypeTransfer {
		if in.TargetAccountID == nil {
			return ErrTransferTargetRequired
		}
		if *in.TargetAccountID == in.AccountID {
			return ErrTransferSameAccount
		}
	} else if in.TargetAccountID != nil {
		return ErrTargetNotAllowed
	}
	if in.FundAccountID != nil {
		if in.Type != models.TransactionTypeExpense {
			return ErrFundOnlyForExpense
		}
		if *in.FundAccountID == in.AccountID {
			return ErrFundSameAccount
		}
	}
	return nil
}

// CreateTransaction 创建交易记录
// 支出携带资金来源账户时，先写入支出取得主键，再写入一条关联转账
// （资金账户 -> 支出账户，金额相同，link_id 指向支出），两条记录在同一
// 事务内提交，任一失败则全部回滚。
// 返回主记录和关联转账（无关联时为 nil）。
func CreateTransaction(db *gorm.DB, in CreateTransactionInput) (*models.Transaction, *models.Transaction, error) {
	if err := ValidateTransaction(in); err != nil {
		return nil, nil, err
	}

	txn := &models.Transaction{
		Date:            in.Date,
		Type:            in.Type,
		Amount:          in.Amount,
		Category:        in.Category,
		Tag:             in.Tag,
		Note:            in.Note,
		AccountID:       in.AccountID,
		TargetAccountID: in.TargetAccountID,
		SortOrder:       in.SortOrder,
	}
	var linked *models.Transaction

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(txn).Error; err != nil {
			return err
		}
		if in.Type == models.TransactionTypeExpense && in.FundAccountID != nil {
			linkID := txn.ID
			targetID := in.AccountID
			linked = &models.Transaction{
				Date:            in.Date,
				Type:            models.TransactionTypeTransfer,
				Amount:          in.Amount,
				Category:        models.CategoryTransfer,
				Note:            fmt.Sprintf("自动转账 (用于: %s)", in.Category),
				AccountID:       *in.FundAccountID,
				TargetAccountID: &targetID,
				LinkID:          &linkID,
			}
			if err := tx.Create(linked).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return txn, linked, nil
}

// DeleteTransaction 删除交易记录
// 同一事务内先删除所有 link_id 指向该记录的关联转账，再删除记录本身，
// 保证自动生成的转账不会残留。记录不存在时返回 gorm.ErrRecordNotFound。
func DeleteTransaction(db *gorm.DB, id uint) error {
	var txn models.Transaction
	if err := db.First(&txn, id).Error; err != nil {
		return err
	}
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("link_id = ?", id).Delete(&models.Transaction{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Transaction{}, id).Error
	})
}
