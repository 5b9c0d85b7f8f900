package api

import (
	"errors"
	"log"
	"strconv"
	"strings"

	"fintalk/config"
	"fintalk/database"
	"fintalk/middleware"
	"fintalk/models"
	"fintalk/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CommentHandler 评论处理器
// 评论区全站共享：读不做用户隔离，删改仅限作者本人
type CommentHandler struct {
	emailService *service.EmailService
}

// NewCommentHandler 创建评论处理器
func NewCommentHandler(cfg *config.Config) *CommentHandler {
	return &CommentHandler{
		emailService: service.NewEmailService(&cfg.Email),
	}
}

// CreateCommentRequest 发表评论请求
// parent_id 为空表示发顶层评论，否则为回复
type CreateCommentRequest struct {
	Text     string `json:"text" binding:"required" example:"写得不错！"`
	ParentID *uint  `json:"parent_id" example:"1"`
}

// CommentItem 评论列表项（附作者名）
type CommentItem struct {
	models.Comment
	AuthorName string `json:"author_name"`
}

// CommentPageResponse 评论分页响应
type CommentPageResponse struct {
	List    []CommentItem `json:"list"`
	Skip    int           `json:"skip"`
	Limit   int           `json:"limit"`
	HasMore bool          `json:"has_more"`
}

// Create 发表评论或回复
// @Summary 发表评论
// @Description 发表顶层评论或回复。正文去除首尾空白后不能为空；parent_id 指定时必须指向已存在的评论。
// @Tags 评论
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateCommentRequest true "评论内容"
// @Success 200 {object} Response{data=models.Comment} "发表成功"
// @Failure 400 {object} Response "内容为空或父评论不存在"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/comments [post]
func (h *CommentHandler) Create(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		BadRequest(c, "评论内容不能为空")
		return
	}

	// 回复必须挂在已存在的评论下
	var parent models.Comment
	if req.ParentID != nil {
		if err := database.DB.First(&parent, *req.ParentID).Error; err != nil {
			BadRequest(c, "被回复的评论不存在")
			return
		}
	}

	// 作者只取自解析出的身份
	comment := models.Comment{AuthorID: userID, ParentID: req.ParentID, Text: text}
	if err := database.DB.Create(&comment).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "发表评论失败"))
		return
	}

	// 回复时异步通知父评论作者，通知失败不影响发表结果
	if req.ParentID != nil && parent.AuthorID != userID {
		replier := middleware.GetCurrentUsername(c)
		go h.notifyParentAuthor(parent.AuthorID, replier, text)
	}

	SuccessWithMessage(c, "发表成功", comment)
}

// notifyParentAuthor 给父评论作者发回复通知邮件
func (h *CommentHandler) notifyParentAuthor(authorID uint, replier, text string) {
	var author models.User
	if err := database.DB.First(&author, authorID).Error; err != nil {
		return
	}
	if author.Email == "" {
		return
	}
	if err := h.emailService.SendReplyNotification(author.Email, author.Username, replier, text); err != nil {
		log.Printf("发送回复通知失败: %v", err)
	}
}

// List 分页获取评论
// @Summary 分页获取评论
// @Description 不传 parent_id 返回顶层评论，传 parent_id 返回该评论的直接回复（不内联嵌套）。按发表时间倒序，skip/limit 为无状态偏移游标。
// @Tags 评论
// @Produce json
// @Param parent_id query int false "父评论ID，缺省为顶层"
// @Param skip query int false "跳过条数" default(0)
// @Param limit query int false "每页条数" default(5)
// @Success 200 {object} Response{data=CommentPageResponse} "获取成功"
// @Failure 400 {object} Response "请求参数错误"
// @Router /api/v1/comments [get]
func (h *CommentHandler) List(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	skip, limit = NormalizePage(skip, limit)

	query := database.DB.Model(&models.Comment{}).
		Select("comments.*, users.username AS author_name").
		Joins("LEFT JOIN users ON comments.author_id = users.id")

	if parentIDStr := c.Query("parent_id"); parentIDStr != "" {
		parentID, err := strconv.ParseUint(parentIDStr, 10, 32)
		if err != nil {
			BadRequest(c, "无效的父评论ID")
			return
		}
		query = query.Where("comments.parent_id = ?", uint(parentID))
	} else {
		query = query.Where("comments.parent_id IS NULL")
	}

	var list []CommentItem
	if err := query.Order("comments.created_at DESC, comments.id DESC").
		Offset(skip).Limit(limit).
		Scan(&list).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	Success(c, CommentPageResponse{
		List:    list,
		Skip:    skip,
		Limit:   limit,
		HasMore: HasMore(len(list), limit),
	})
}

// Delete 删除评论（级联删除整棵回复子树）
// @Summary 删除评论
// @Description 删除自己发表的评论，连同其下整棵回复子树一起删除。评论不存在或不是作者本人时同样返回删除成功。
// @Tags 评论
// @Produce json
// @Security BearerAuth
// @Param id path int true "评论ID"
// @Success 200 {object} Response "删除成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/comments/{id} [delete]
func (h *CommentHandler) Delete(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		// 作者与存在性一次匹配，未命中整个事务退化为空操作
		var root models.Comment
		if err := tx.Where("id = ? AND author_id = ?", uint(id), userID).First(&root).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		// 逐层收集子树的全部评论ID
		subtree := []uint{root.ID}
		frontier := []uint{root.ID}
		for len(frontier) > 0 {
			var childIDs []uint
			if err := tx.Model(&models.Comment{}).
				Where("parent_id IN ?", frontier).
				Pluck("id", &childIDs).Error; err != nil {
				return err
			}
			subtree = append(subtree, childIDs...)
			frontier = childIDs
		}

		return tx.Where("id IN ?", subtree).Delete(&models.Comment{}).Error
	})
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "删除失败"))
		return
	}
	SuccessWithMessage(c, "删除成功", nil)
}
