package api

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func accountRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "type", "initial_balance", "billing_day", "due_day",
		"created_at", "updated_at",
	})
}

func TestAccountHandler_List_WithDerivedBalances(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery("SELECT .* FROM `accounts`").
		WillReturnRows(accountRows().
			AddRow(1, "现金", "cash", "100.00", nil, nil, now, now).
			AddRow(2, "信用卡", "credit", "0.00", 5, 25, now, now).
			AddRow(3, "空账户", "cash", "66.00", nil, nil, now, now))

	// 转出侧按 (account_id, type) 聚合
	mock.ExpectQuery("SELECT account_id, type, COALESCE\\(SUM\\(amount\\), 0\\) AS total FROM `transactions` GROUP BY").
		WillReturnRows(sqlmock.NewRows([]string{"account_id", "type", "total"}).
			AddRow(1, "INCOME", "50.00").
			AddRow(1, "EXPENSE", "30.00").
			AddRow(1, "TRANSFER", "20.00").
			AddRow(2, "TRANSFER", "40.00"))

	// 转入侧仅统计 TRANSFER
	mock.ExpectQuery("SELECT target_account_id AS account_id, COALESCE\\(SUM\\(amount\\), 0\\) AS total FROM `transactions`").
		WillReturnRows(sqlmock.NewRows([]string{"account_id", "total"}).
			AddRow(1, "40.00").
			AddRow(2, "20.00"))

	router := newTestRouter()
	router.GET("/accounts", NewAccountHandler().List)

	w := doJSON(router, "GET", "/accounts", "")

	assert.Equal(t, 200, w.Code)
	var resp struct {
		Data []struct {
			ID      uint   `json:"id"`
			Balance string `json:"balance"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 3)

	// 账户1: 100 + 50 − 30 − 20 + 40 = 140
	assert.Equal(t, "140", resp.Data[0].Balance)
	// 账户2: 0 − 40 + 20 = -20
	assert.Equal(t, "-20", resp.Data[1].Balance)
	// 无交易账户：余额等于初始余额
	assert.Equal(t, "66", resp.Data[2].Balance)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountHandler_Create(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	// 名称唯一性检查：无记录
	mock.ExpectQuery("SELECT .* FROM `accounts`").
		WillReturnRows(accountRows())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `accounts`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	router := newTestRouter()
	router.POST("/accounts", NewAccountHandler().Create)

	body := `{"name":"招行储蓄卡","type":"cash","initial_balance":100.50}`
	w := doJSON(router, "POST", "/accounts", body)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "创建成功", resp["message"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountHandler_Create_DuplicateName(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery("SELECT .* FROM `accounts`").
		WillReturnRows(accountRows().
			AddRow(1, "现金", "cash", "0", nil, nil, now, now))

	router := newTestRouter()
	router.POST("/accounts", NewAccountHandler().Create)

	w := doJSON(router, "POST", "/accounts", `{"name":"现金"}`)

	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "账户名称已存在")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountHandler_Delete(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery("SELECT .* FROM `accounts`").
		WillReturnRows(accountRows().
			AddRow(1, "现金", "cash", "0", nil, nil, now, now))

	// 账户名下交易由外键级联删除，这里只删账户行
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `accounts`").
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	router := newTestRouter()
	router.DELETE("/accounts/:id", NewAccountHandler().Delete)

	w := doJSON(router, "DELETE", "/accounts/1", "")

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), "删除成功")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountHandler_Delete_NotFound(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `accounts`").
		WillReturnRows(accountRows())

	router := newTestRouter()
	router.DELETE("/accounts/:id", NewAccountHandler().Delete)

	w := doJSON(router, "DELETE", "/accounts/9", "")

	assert.Equal(t, 404, w.Code)
	assert.Contains(t, w.Body.String(), "账户不存在")
	require.NoError(t, mock.ExpectationsWereMet())
}
