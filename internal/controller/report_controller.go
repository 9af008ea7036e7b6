package controller

import (
	"errors"

	"mathlearn_backend/internal/service"
	"mathlearn_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	ReportService  *service.ReportService
	SessionService *service.SessionService
	UserService    *service.UserService
}

func NewReportController(reportService *service.ReportService, sessionService *service.SessionService, userService *service.UserService) *ReportController {
	return &ReportController{
		ReportService:  reportService,
		SessionService: sessionService,
		UserService:    userService,
	}
}

// ExportTestReport godoc
// @Summary 导出本次测验报表
// @Description 会话完成后导出 XLSX 明细并下载
// @Tags 报表
// @Produce  application/octet-stream
// @Security BearerAuth
// @Success 200 {file} file "XLSX 报表"
// @Failure 404 {object} util.Response "没有进行中的会话"
// @Failure 409 {object} util.Response "会话尚未完成"
// @Router /api/reports/test [get]
func (c *ReportController) ExportTestReport(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	summary, err := c.SessionService.Summary(claims.UserID)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrNoActiveSession):
			util.Error(ctx, 404, "no active test session")
		case errors.Is(err, util.ErrSessionNotComplete):
			util.Error(ctx, 409, "test session not complete yet")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	user, err := c.UserService.GetUserByID(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	path, err := c.ReportService.ExportSessionReport(user, summary)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	ctx.FileAttachment(path, "test_report.xlsx")
}

// ExportProgressReport godoc
// @Summary 导出个人学习报告
// @Description 汇总各主题正确率和薄弱主题的 XLSX
// @Tags 报表
// @Produce  application/octet-stream
// @Security BearerAuth
// @Success 200 {file} file "XLSX 报表"
// @Router /api/reports/progress [get]
func (c *ReportController) ExportProgressReport(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	user, err := c.UserService.GetUserByID(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	path, err := c.ReportService.ExportUserReport(user)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	ctx.FileAttachment(path, "progress_report.xlsx")
}
