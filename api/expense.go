package api

import (
	"strconv"

	"fintalk/database"
	"fintalk/middleware"
	"fintalk/models"

	"github.com/gin-gonic/gin"
)

// ExpenseHandler 消费记录处理器
type ExpenseHandler struct{}

func NewExpenseHandler() *ExpenseHandler {
	return &ExpenseHandler{}
}

// CreateExpenseRequest 创建消费记录请求
type CreateExpenseRequest struct {
	Name     string   `json:"name" binding:"required,min=1,max=100" example:"午餐"`
	Amount   *float64 `json:"amount" binding:"required" example:"39.90"`
	BudgetID uint     `json:"budget_id" binding:"required" example:"1"`
}

// UpdateExpenseRequest 更新消费记录请求（部分字段）
// budget_id 创建后不可变更，消费记录始终挂在最初的预算下
type UpdateExpenseRequest struct {
	Name   *string  `json:"name" binding:"omitempty,min=1,max=100"`
	Amount *float64 `json:"amount"`
}

// Create 创建消费记录
// @Summary 创建消费记录
// @Description 在指定预算下创建一条消费记录。预算必须存在且属于当前用户，否则返回 400 且不落库。
// @Tags 消费
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateExpenseRequest true "消费信息"
// @Success 200 {object} Response{data=models.Expense} "创建成功"
// @Failure 400 {object} Response "请求参数错误或预算不可用"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/expenses [post]
func (h *ExpenseHandler) Create(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	// 预算必须属于当前用户，存在性和归属一次查询
	var budget models.Budget
	if err := database.DB.Where("id = ? AND user_id = ?", req.BudgetID, userID).First(&budget).Error; err != nil {
		BadRequest(c, "预算不存在")
		return
	}

	e := models.Expense{UserID: userID, BudgetID: budget.ID, Name: req.Name, Amount: *req.Amount}
	if err := database.DB.Create(&e).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "创建消费记录失败"))
		return
	}
	SuccessWithMessage(c, "创建成功", e)
}

// List 获取消费记录列表
// @Summary 获取消费记录列表
// @Description 获取当前用户的全部消费记录，可按预算过滤，按创建顺序返回
// @Tags 消费
// @Produce json
// @Security BearerAuth
// @Param budget_id query int false "按预算过滤"
// @Success 200 {object} Response{data=[]models.Expense} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/expenses [get]
func (h *ExpenseHandler) List(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	query := database.DB.Where("user_id = ?", userID)
	if budgetIDStr := c.Query("budget_id"); budgetIDStr != "" {
		budgetID, err := strconv.ParseUint(budgetIDStr, 10, 32)
		if err != nil {
			BadRequest(c, "无效的预算ID")
			return
		}
		query = query.Where("budget_id = ?", uint(budgetID))
	}

	var list []models.Expense
	if err := query.Order("id ASC").Find(&list).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}
	Success(c, list)
}

// Update 更新消费记录
// @Summary 更新消费记录
// @Description 更新指定的消费记录。记录不存在或不属于当前用户时返回 data 为 null 的成功响应，二者不作区分。
// @Tags 消费
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "消费记录ID"
// @Param request body UpdateExpenseRequest true "消费信息"
// @Success 200 {object} Response{data=models.Expense} "更新成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/expenses/{id} [put]
func (h *ExpenseHandler) Update(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}
	var req UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Amount != nil {
		updates["amount"] = *req.Amount
	}
	if len(updates) == 0 {
		SuccessWithMessage(c, "无需更新", nil)
		return
	}

	res := database.DB.Model(&models.Expense{}).
		Where("id = ? AND user_id = ?", uint(id), userID).
		Updates(updates)
	if res.Error != nil {
		InternalError(c, SafeErrorMessage(res.Error, "更新失败"))
		return
	}
	if res.RowsAffected == 0 {
		SuccessWithMessage(c, "记录不存在", nil)
		return
	}

	var e models.Expense
	database.DB.Where("id = ? AND user_id = ?", uint(id), userID).First(&e)
	SuccessWithMessage(c, "更新成功", e)
}

// Delete 删除消费记录
// @Summary 删除消费记录
// @Description 删除指定的消费记录。记录不存在或不属于当前用户时同样返回删除成功。
// @Tags 消费
// @Produce json
// @Security BearerAuth
// @Param id path int true "消费记录ID"
// @Success 200 {object} Response "删除成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/expenses/{id} [delete]
func (h *ExpenseHandler) Delete(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}
	res := database.DB.Where("id = ? AND user_id = ?", uint(id), userID).Delete(&models.Expense{})
	if res.Error != nil {
		InternalError(c, SafeErrorMessage(res.Error, "删除失败"))
		return
	}
	SuccessWithMessage(c, "删除成功", nil)
}
