package api

import (
	"fintalk/database"
	"fintalk/middleware"
	"fintalk/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// SummaryHandler 统计处理器
type SummaryHandler struct{}

func NewSummaryHandler() *SummaryHandler {
	return &SummaryHandler{}
}

// BudgetSummary 单个预算的使用情况
type BudgetSummary struct {
	BudgetID  uint    `json:"budget_id"`
	Name      string  `json:"name"`
	Icon      string  `json:"icon"`
	Amount    float64 `json:"amount"`    // 预算额度
	Spent     float64 `json:"spent"`     // 已消费
	Remaining float64 `json:"remaining"` // 剩余额度，可为负
}

// SummaryResponse 汇总响应
type SummaryResponse struct {
	TotalIncome  float64         `json:"total_income"`
	TotalBudget  float64         `json:"total_budget"`
	TotalExpense float64         `json:"total_expense"`
	Budgets      []BudgetSummary `json:"budgets"`
}

// budgetSpent 按预算分组的消费合计
type budgetSpent struct {
	BudgetID uint
	Total    float64
}

// GetSummary 获取收支汇总
// @Summary 获取收支汇总
// @Description 统计当前用户的收入合计、预算合计、消费合计，以及每个预算的已消费与剩余额度
// @Tags 统计
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=SummaryResponse} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/summary [get]
func (h *SummaryHandler) GetSummary(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var budgets []models.Budget
	if err := database.DB.Where("user_id = ?", userID).Order("id ASC").Find(&budgets).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	var spents []budgetSpent
	if err := database.DB.Model(&models.Expense{}).
		Select("budget_id, COALESCE(SUM(amount), 0) AS total").
		Where("user_id = ?", userID).
		Group("budget_id").
		Scan(&spents).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}
	spentByBudget := make(map[uint]float64, len(spents))
	for _, s := range spents {
		spentByBudget[s.BudgetID] = s.Total
	}

	var incomes []models.Income
	if err := database.DB.Where("user_id = ?", userID).Find(&incomes).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	// 金额运算走 decimal，避免 float 累加误差
	totalIncome := decimal.Zero
	for _, in := range incomes {
		totalIncome = totalIncome.Add(decimal.NewFromFloat(in.Amount))
	}

	totalBudget := decimal.Zero
	totalExpense := decimal.Zero
	summaries := make([]BudgetSummary, 0, len(budgets))
	for _, b := range budgets {
		amount := decimal.NewFromFloat(b.Amount)
		spent := decimal.NewFromFloat(spentByBudget[b.ID])
		totalBudget = totalBudget.Add(amount)
		totalExpense = totalExpense.Add(spent)
		summaries = append(summaries, BudgetSummary{
			BudgetID:  b.ID,
			Name:      b.Name,
			Icon:      b.Icon,
			Amount:    b.Amount,
			Spent:     spent.InexactFloat64(),
			Remaining: amount.Sub(spent).InexactFloat64(),
		})
	}

	Success(c, SummaryResponse{
		TotalIncome:  totalIncome.InexactFloat64(),
		TotalBudget:  totalBudget.InexactFloat64(),
		TotalExpense: totalExpense.InexactFloat64(),
		Budgets:      summaries,
	})
}
