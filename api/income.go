package api

import (
	"strconv"

	"fintalk/database"
	"fintalk/middleware"
	"fintalk/models"

	"github.com/gin-gonic/gin"
)

// IncomeHandler 收入来源处理器
type IncomeHandler struct{}

func NewIncomeHandler() *IncomeHandler {
	return &IncomeHandler{}
}

// CreateIncomeRequest 创建收入来源请求
// amount 使用指针以便接受 0 等任意数值，仅校验字段必须存在
type CreateIncomeRequest struct {
	Name   string   `json:"name" binding:"required,min=1,max=100" example:"工资"`
	Amount *float64 `json:"amount" binding:"required" example:"5000.00"`
	Icon   string   `json:"icon" binding:"omitempty,max=50" example:"💰"`
}

// UpdateIncomeRequest 更新收入来源请求（部分字段）
type UpdateIncomeRequest struct {
	Name   *string  `json:"name" binding:"omitempty,min=1,max=100"`
	Amount *float64 `json:"amount"`
	Icon   *string  `json:"icon" binding:"omitempty,max=50"`
}

// Create 创建收入来源
// @Summary 创建收入来源
// @Description 创建一条收入来源，归属强制为当前登录用户
// @Tags 收入
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateIncomeRequest true "收入信息"
// @Success 200 {object} Response{data=models.Income} "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/incomes [post]
func (h *IncomeHandler) Create(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	var req CreateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}
	// 归属只取自解析出的身份，请求体里的 user_id 一律不信任
	in := models.Income{UserID: userID, Name: req.Name, Amount: *req.Amount, Icon: req.Icon}
	if err := database.DB.Create(&in).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "创建收入失败"))
		return
	}
	SuccessWithMessage(c, "创建成功", in)
}

// List 获取收入来源列表
// @Summary 获取收入来源列表
// @Description 获取当前用户的全部收入来源，按创建顺序返回
// @Tags 收入
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]models.Income} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/incomes [get]
func (h *IncomeHandler) List(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	var list []models.Income
	if err := database.DB.Where("user_id = ?", userID).Order("id ASC").Find(&list).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}
	Success(c, list)
}

// Update 更新收入来源
// @Summary 更新收入来源
// @Description 更新指定的收入来源。记录不存在或不属于当前用户时返回 data 为 null 的成功响应，二者不作区分。
// @Tags 收入
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "收入ID"
// @Param request body UpdateIncomeRequest true "收入信息"
// @Success 200 {object} Response{data=models.Income} "更新成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/incomes/{id} [put]
func (h *IncomeHandler) Update(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}
	var req UpdateIncomeRequest
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

	// 归属和存在性在同一条件里一次匹配，避免泄露"记录存在但不属于你"的信息
	res := database.DB.Model(&models.Income{}).
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

	var in models.Income
	database.DB.Where("id = ? AND user_id = ?", uint(id), userID).First(&in)
	SuccessWithMessage(c, "更新成功", in)
}

// Delete 删除收入来源
// @Summary 删除收入来源
// @Description 删除指定的收入来源。记录不存在或不属于当前用户时同样返回删除成功。
// @Tags 收入
// @Produce json
// @Security BearerAuth
// @Param id path int true "收入ID"
// @Success 200 {object} Response "删除成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/incomes/{id} [delete]
func (h *IncomeHandler) Delete(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}
	res := database.DB.Where("id = ? AND user_id = ?", uint(id), userID).Delete(&models.Income{})
	if res.Error != nil {
		InternalError(c, SafeErrorMessage(res.Error, "删除失败"))
		return
	}
	// 未命中也视为删除成功，不区分"不存在"和"不属于你"
	SuccessWithMessage(c, "删除成功", nil)
}
