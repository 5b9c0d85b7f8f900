package api

import (
	"strconv"

	"fintalk/database"
	"fintalk/middleware"
	"fintalk/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// BudgetHandler 预算处理器
type BudgetHandler struct{}

func NewBudgetHandler() *BudgetHandler {
	return &BudgetHandler{}
}

// CreateBudgetRequest 创建预算请求
type CreateBudgetRequest struct {
	Name   string   `json:"name" binding:"required,min=1,max=100" example:"餐饮"`
	Amount *float64 `json:"amount" binding:"required" example:"500.00"`
	Icon   string   `json:"icon" binding:"omitempty,max=50" example:"🍜"`
}

// UpdateBudgetRequest 更新预算请求（部分字段）
type UpdateBudgetRequest struct {
	Name   *string  `json:"name" binding:"omitempty,min=1,max=100"`
	Amount *float64 `json:"amount"`
	Icon   *string  `json:"icon" binding:"omitempty,max=50"`
}

// Create 创建预算
// @Summary 创建预算
// @Description 创建一个预算，归属强制为当前登录用户
// @Tags 预算
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateBudgetRequest true "预算信息"
// @Success 200 {object} Response{data=models.Budget} "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/budgets [post]
func (h *BudgetHandler) Create(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	var req CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}
	b := models.Budget{UserID: userID, Name: req.Name, Amount: *req.Amount, Icon: req.Icon}
	if err := database.DB.Create(&b).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "创建预算失败"))
		return
	}
	SuccessWithMessage(c, "创建成功", b)
}

// List 获取预算列表
// @Summary 获取预算列表
// @Description 获取当前用户的全部预算，按创建顺序返回
// @Tags 预算
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]models.Budget} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/budgets [get]
func (h *BudgetHandler) List(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	var list []models.Budget
	if err := database.DB.Where("user_id = ?", userID).Order("id ASC").Find(&list).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}
	Success(c, list)
}

// Update 更新预算
// @Summary 更新预算
// @Description 更新指定的预算。记录不存在或不属于当前用户时返回 data 为 null 的成功响应，二者不作区分。
// @Tags 预算
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "预算ID"
// @Param request body UpdateBudgetRequest true "预算信息"
// @Success 200 {object} Response{data=models.Budget} "更新成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/budgets/{id} [put]
func (h *BudgetHandler) Update(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}
	var req UpdateBudgetRequest
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
	if req.Icon != nil {
		updates["icon"] = *req.Icon
	}
	if len(updates) == 0 {
		SuccessWithMessage(c, "无需更新", nil)
		return
	}

	// 归属和存在性在同一条件里一次匹配
	res := database.DB.Model(&models.Budget{}).
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

	var b models.Budget
	database.DB.Where("id = ? AND user_id = ?", uint(id), userID).First(&b)
	SuccessWithMessage(c, "更新成功", b)
}

// Delete 删除预算（级联删除其下消费记录）
// @Summary 删除预算
// @Description 删除指定的预算，同时删除该预算下的全部消费记录。记录不存在或不属于当前用户时同样返回删除成功。
// @Tags 预算
// @Produce json
// @Security BearerAuth
// @Param id path int true "预算ID"
// @Success 200 {object} Response "删除成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/budgets/{id} [delete]
func (h *BudgetHandler) Delete(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	// 先删子记录再删预算：即使事务中途失败，也不会留下指向已删预算的消费记录
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("budget_id = ? AND user_id = ?", uint(id), userID).
			Delete(&models.Expense{}).Error; err != nil {
			return err
		}
		// 预算不属于当前用户时这里不会命中，上面的子记录删除同样不会命中，
		// 整个事务等价于一次空操作
		return tx.Where("id = ? AND user_id = ?", uint(id), userID).
			Delete(&models.Budget{}).Error
	})
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "删除失败"))
		return
	}
	SuccessWithMessage(c, "删除成功", nil)
}
