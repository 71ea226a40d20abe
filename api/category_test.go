package api

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func categoryRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "type", "parent_id", "created_at", "updated_at"})
}

func TestCategoryHandler_Create(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `categories`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	router := newTestRouter()
	router.POST("/categories", NewCategoryHandler().Create)

	w := doJSON(router, "POST", "/categories", `{"name":"餐饮","type":"EXPENSE"}`)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "创建成功", resp["message"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryHandler_Create_WithParent(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Now()
	// 父分类存在且类型一致
	mock.ExpectQuery("SELECT .* FROM `categories`").
		WillReturnRows(categoryRows().
			AddRow(1, "餐饮", "EXPENSE", nil, now, now))

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `categories`").
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	router := newTestRouter()
	router.POST("/categories", NewCategoryHandler().Create)

	w := doJSON(router, "POST", "/categories", `{"name":"午餐","type":"EXPENSE","parent_id":1}`)

	assert.Equal(t, 200, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryHandler_Create_ParentTypeMismatch(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Now()
	// 父分类为 INCOME，子分类为 EXPENSE：拒绝
	mock.ExpectQuery("SELECT .* FROM `categories`").
		WillReturnRows(categoryRows().
			AddRow(1, "工资", "INCOME", nil, now, now))

	router := newTestRouter()
	router.POST("/categories", NewCategoryHandler().Create)

	w := doJSON(router, "POST", "/categories", `{"name":"午餐","type":"EXPENSE","parent_id":1}`)

	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "子分类类型必须与父分类一致")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryHandler_Create_InvalidType(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	router := newTestRouter()
	router.POST("/categories", NewCategoryHandler().Create)

	w := doJSON(router, "POST", "/categories", `{"name":"餐饮","type":"FOOD"}`)

	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "EXPENSE 或 INCOME")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryHandler_Delete(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery("SELECT .* FROM `categories`").
		WillReturnRows(categoryRows().
			AddRow(1, "餐饮", "EXPENSE", nil, now, now))

	// 子分类由外键级联删除
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `categories`").
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	router := newTestRouter()
	router.DELETE("/categories/:id", NewCategoryHandler().Delete)

	w := doJSON(router, "DELETE", "/categories/1", "")

	assert.Equal(t, 200, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryHandler_Update_SelfAsParent(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery("SELECT .* FROM `categories`").
		WillReturnRows(categoryRows().
			AddRow(1, "餐饮", "EXPENSE", nil, now, now))

	router := newTestRouter()
	router.PUT("/categories/:id", NewCategoryHandler().Update)

	w := doJSON(router, "PUT", "/categories/1", `{"parent_id":1}`)

	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "父分类不能是自身")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryHandler_Create_ParentForeignKeyViolation(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery("SELECT .* FROM `categories`").
		WillReturnRows(categoryRows().
			AddRow(1, "餐饮", "EXPENSE", nil, now, now))

	// 校验后父分类被并发删除，写入触发外键约束错误，按 400 返回
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `categories`").
		WillReturnError(errors.New("FOREIGN KEY constraint failed"))
	mock.ExpectRollback()

	router := newTestRouter()
	router.POST("/categories", NewCategoryHandler().Create)

	w := doJSON(router, "POST", "/categories", `{"name":"午餐","type":"EXPENSE","parent_id":1}`)

	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "父分类不存在")
	require.NoError(t, mock.ExpectationsWereMet())
}
