package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledger/models"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func uintPtr(v uint) *uint {
	return &v
}

func TestComputeBalance(t *testing.T) {
	// 余额 = 初始 + Σ收入(转出方) − Σ支出(转出方) − Σ转账(转出方) + Σ转账(转入方)
	txns := []models.Transaction{
		{ID: 1, Type: models.TransactionTypeIncome, Amount: dec("50.00"), AccountID: 1},
		{ID: 2, Type: models.TransactionTypeExpense, Amount: dec("30.00"), AccountID: 1},
		{ID: 3, Type: models.TransactionTypeTransfer, Amount: dec("20.00"), AccountID: 1, TargetAccountID: uintPtr(2)},
		{ID: 4, Type: models.TransactionTypeTransfer, Amount: dec("40.00"), AccountID: 2, TargetAccountID: uintPtr(1)},
	}

	balance := ComputeBalance(dec("100.00"), 1, txns)
	assert.True(t, dec("140.00").Equal(balance), "期望 140.00，实际 %s", balance)

	// 账户 2 视角：转出 40，转入 20
	balance2 := ComputeBalance(dec("0"), 2, txns)
	assert.True(t, dec("-20.00").Equal(balance2), "期望 -20.00，实际 %s", balance2)
}

func TestComputeBalance_NoTransactions(t *testing.T) {
	// 无交易时余额等于初始余额
	balance := ComputeBalance(dec("88.88"), 1, nil)
	assert.True(t, dec("88.88").Equal(balance))
}

func TestComputeBalance_NegativeAllowed(t *testing.T) {
	// 允许透支为负
	txns := []models.Transaction{
		{ID: 1, Type: models.TransactionTypeExpense, Amount: dec("10.00"), AccountID: 1},
	}
	balance := ComputeBalance(dec("0"), 1, txns)
	assert.True(t, balance.IsNegative())
	assert.True(t, dec("-10.00").Equal(balance))
}

func TestComputeBalance_IgnoresOtherAccounts(t *testing.T) {
	// 其他账户之间的交易不影响本账户
	txns := []models.Transaction{
		{ID: 1, Type: models.TransactionTypeIncome, Amount: dec("100.00"), AccountID: 2},
		{ID: 2, Type: models.TransactionTypeTransfer, Amount: dec("50.00"), AccountID: 2, TargetAccountID: uintPtr(3)},
	}
	balance := ComputeBalance(dec("5.00"), 1, txns)
	assert.True(t, dec("5.00").Equal(balance))
}

func TestComputeBalance_Rounding(t *testing.T) {
	// 结果保留两位小数
	balance := ComputeBalance(dec("10.005"), 1, nil)
	assert.Equal(t, "10.01", balance.StringFixed(2))
}

func TestComputeBalance_DecimalPrecision(t *testing.T) {
	// 定点小数累加，不受二进制浮点误差影响
	var txns []models.Transaction
	for i := 0; i < 10; i++ {
		txns = append(txns, models.Transaction{
			ID:        uint(i + 1),
			Type:      models.TransactionTypeExpense,
			Amount:    dec("0.10"),
			AccountID: 1,
		})
	}
	balance := ComputeBalance(dec("1.00"), 1, txns)
	require.True(t, balance.IsZero(), "期望 0，实际 %s", balance)
}

func TestAccountBalance(t *testing.T) {
	account := models.Account{ID: 1, InitialBalance: dec("100.00")}
	deltas := map[uint]decimal.Decimal{1: dec("-25.50")}
	assert.Equal(t, "74.50", AccountBalance(account, deltas).StringFixed(2))

	// 无变动量的账户返回初始余额
	missing := models.Account{ID: 9, InitialBalance: dec("3.00")}
	assert.Equal(t, "3.00", AccountBalance(missing, deltas).StringFixed(2))
}
