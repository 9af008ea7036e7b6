package controller

import (
	"mathlearn_backend/internal/service"
	"mathlearn_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	AnalyticsService *service.AnalyticsService
}

func NewAnalyticsController(analyticsService *service.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{AnalyticsService: analyticsService}
}

// WeakTopics godoc
// @Summary 薄弱主题
// @Description 历史正确率低于阈值的主题列表，按名称排序
// @Tags 统计
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=object} "薄弱主题"
// @Router /api/analytics/weak-topics [get]
func (c *AnalyticsController) WeakTopics(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	topics, err := c.AnalyticsService.WeakTopics(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"weakTopics": topics})
}

// SuccessRates godoc
// @Summary 各主题正确率
// @Tags 统计
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=object} "主题正确率（百分比）"
// @Router /api/analytics/success-rates [get]
func (c *AnalyticsController) SuccessRates(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	rates, err := c.AnalyticsService.SuccessRatesByTopic(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"successRates": rates})
}

// History godoc
// @Summary 答题记录
// @Description 用户的原始答题记录，按时间倒序
// @Tags 统计
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=object} "答题记录"
// @Router /api/analytics/history [get]
func (c *AnalyticsController) History(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	results, err := c.AnalyticsService.History(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"results": results})
}

// StudentStats godoc
// @Summary 指定学生的主题统计
// @Description 教师端查看学生各主题答题量和正确率
// @Tags 统计
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "学生ID"
// @Success 200 {object} util.Response{data=object} "主题统计"
// @Router /api/teacher/students/{id}/stats [get]
func (c *AnalyticsController) StudentStats(ctx *gin.Context) {
	userID := util.MustParseUint(ctx.Param("id"))
	if userID == 0 {
		util.BadRequest(ctx, "invalid student id")
		return
	}

	stats, err := c.AnalyticsService.TopicStats(userID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"stats": stats})
}
