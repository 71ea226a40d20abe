package service

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"ledger/models"
)

// ComputeBalance 由初始余额和交易流水推导账户当前余额（纯函数，不访问数据库）
// 规则：作为转出方（account_id）时，INCOME 加、EXPENSE/TRANSFER 减；
// 作为转入方（target_account_id，仅 TRANSFER 会出现）时加。
// 结果保留两位小数。
func ComputeBalance(initial decimal.Decimal, accountID uint, txns []models.Transaction) decimal.Decimal {
	balance := initial
	for _, t := range txns {
		if t.AccountID == accountID {
			switch t.Type {
			case models.TransactionTypeIncome:
				balance = balance.Add(t.Amount)
			case models.TransactionTypeExpense, models.TransactionTypeTransfer:
				balance = balance.Sub(t.Amount)
			}
		}
		if t.TargetAccountID != nil && *t.TargetAccountID == accountID &&
			t.Type == models.TransactionTypeTransfer {
			balance = balance.Add(t.Amount)
		}
	}
	return balance.Round(2)
}

// BalanceDeltas 聚合查询所有账户的余额变动量（不含初始余额）
// 两趟分组聚合：转出侧按 (account_id, type) 求和、转入侧仅取 TRANSFER 按
// target_account_id 求和，避免逐账户逐笔扫描的 O(账户数 × 交易数) 开销。
func BalanceDeltas(db *gorm.DB) (map[uint]decimal.Decimal, error) {
	deltas := make(map[uint]decimal.Decimal)

	type sourceSum struct {
		AccountID uint
		Type      string
		Total     decimal.Decimal
	}
	var srcRows []sourceSum
	if err := db.Model(&models.Transaction{}).
		Select("account_id, type, COALESCE(SUM(amount), 0) AS total").
		Group("account_id, type").
		Scan(&srcRows).Error; err != nil {
		return nil, err
	}
	for _, row := range srcRows {
		switch row.Type {
		case models.TransactionTypeIncome:
			deltas[row.AccountID] = deltas[row.AccountID].Add(row.Total)
		case models.TransactionTypeExpense, models.TransactionTypeTransfer:
			deltas[row.AccountID] = deltas[row.AccountID].Sub(row.Total)
		}
	}

	type targetSum struct {
		AccountID uint
		Total     decimal.Decimal
	}
	var tgtRows []targetSum
	if err := db.Model(&models.Transaction{}).
		Select("target_account_id AS account_id, COALESCE(SUM(amount), 0) AS total").
		Where("type = ? AND target_account_id IS NOT NULL", models.TransactionTypeTransfer).
		Group("target_account_id").
		Scan(&tgtRows).Error; err != nil {
		return nil, err
	}
	for _, row := range tgtRows {
		deltas[row.AccountID] = deltas[row.AccountID].Add(row.Total)
	}

	return deltas, nil
}

// AccountBalance 将账户初始余额与变动量合并为当前余额
func AccountBalance(account models.Account, deltas map[uint]decimal.Decimal) decimal.Decimal {
	return account.InitialBalance.Add(deltas[account.ID]).Round(2)
}
