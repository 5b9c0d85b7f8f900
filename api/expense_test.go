package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func budgetRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "user_id", "name", "amount", "icon", "created_at", "updated_at", "deleted_at"})
}

func TestExpenseHandler_Create(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	// 预算归属校验
	mock.ExpectQuery("SELECT .* FROM `budgets`").
		WithArgs(uint(3), uint(1)).
		WillReturnRows(budgetRows().
			AddRow(3, 1, "餐饮", 500.0, "🍜", time.Now(), time.Now(), nil))

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `expenses`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.POST("/expenses", NewExpenseHandler().Create)

	body := `{"name":"午餐","amount":39.9,"budget_id":3}`
	req := httptest.NewRequest("POST", "/expenses", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "创建成功", resp["message"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_Create_BudgetOfAnotherUser(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	// 预算存在但属于别人：条件查询不会命中，返回 400 且不落库
	mock.ExpectQuery("SELECT .* FROM `budgets`").
		WithArgs(uint(3), uint(2)).
		WillReturnRows(budgetRows())

	router := gin.New()
	router.Use(setUserIDMiddleware(2))
	router.POST("/expenses", NewExpenseHandler().Create)

	body := `{"name":"蹭饭","amount":10,"budget_id":3}`
	req := httptest.NewRequest("POST", "/expenses", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "预算不存在", resp["message"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_Create_MissingBudgetID(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.POST("/expenses", NewExpenseHandler().Create)

	body := `{"name":"午餐","amount":39.9}`
	req := httptest.NewRequest("POST", "/expenses", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
}

func TestExpenseHandler_List_FilterByBudget(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `expenses`").
		WithArgs(uint(1), uint(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "budget_id", "name", "amount", "created_at", "updated_at", "deleted_at"}).
			AddRow(10, 1, 3, "午餐", 39.9, time.Now(), time.Now(), nil))

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.GET("/expenses", NewExpenseHandler().List)

	req := httptest.NewRequest("GET", "/expenses?budget_id=3", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	list := resp["data"].([]interface{})
	assert.Len(t, list, 1)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_Update(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `expenses`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	mock.ExpectQuery("SELECT .* FROM `expenses`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "budget_id", "name", "amount", "created_at", "updated_at", "deleted_at"}).
			AddRow(10, 1, 3, "晚餐", 59.9, time.Now(), time.Now(), nil))

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.PUT("/expenses/:id", NewExpenseHandler().Update)

	body := `{"name":"晚餐","amount":59.9}`
	req := httptest.NewRequest("PUT", "/expenses/10", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "更新成功", resp["message"])
	require.NoError(t, mock.ExpectationsWereMet())
}
