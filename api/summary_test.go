package api

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryHandler_GetSummary(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Now()

	// 预算
	mock.ExpectQuery("SELECT .* FROM `budgets`").
		WithArgs(uint(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "amount", "icon", "created_at", "updated_at", "deleted_at"}).
			AddRow(1, 1, "餐饮", 500.0, "🍜", now, now, nil).
			AddRow(2, 1, "交通", 200.0, "🚇", now, now, nil))

	// 按预算分组的消费合计
	mock.ExpectQuery("SELECT budget_id, COALESCE").
		WithArgs(uint(1)).
		WillReturnRows(sqlmock.NewRows([]string{"budget_id", "total"}).
			AddRow(1, 320.5))

	// 收入
	mock.ExpectQuery("SELECT .* FROM `incomes`").
		WithArgs(uint(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "amount", "icon", "created_at", "updated_at", "deleted_at"}).
			AddRow(1, 1, "工资", 5000.0, "💰", now, now, nil))

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.GET("/summary", NewSummaryHandler().GetSummary)

	req := httptest.NewRequest("GET", "/summary", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})

	assert.Equal(t, 5000.0, data["total_income"])
	assert.Equal(t, 700.0, data["total_budget"])
	assert.Equal(t, 320.5, data["total_expense"])

	budgets := data["budgets"].([]interface{})
	require.Len(t, budgets, 2)

	first := budgets[0].(map[string]interface{})
	assert.Equal(t, 320.5, first["spent"])
	assert.Equal(t, 179.5, first["remaining"])

	// 没有消费的预算剩余等于额度
	second := budgets[1].(map[string]interface{})
	assert.Equal(t, 0.0, second["spent"])
	assert.Equal(t, 200.0, second["remaining"])

	require.NoError(t, mock.ExpectationsWereMet())
}
