package controller

import (
	"mathlearn_backend/internal/repository"
	"mathlearn_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LogController struct {
	LogRepo *repository.ActionLogRepository
}

func NewLogController(logRepo *repository.ActionLogRepository) *LogController {
	return &LogController{LogRepo: logRepo}
}

// ListLogs godoc
// @Summary 操作日志
// @Description 管理员查看用户行为日志，按时间倒序
// @Tags 管理
// @Produce  json
// @Security BearerAuth
// @Param   page query int false "页码"
// @Param   limit query int false "每页数量"
// @Success 200 {object} util.Response{data=util.PageResponse} "日志"
// @Router /api/admin/logs [get]
func (c *LogController) ListLogs(ctx *gin.Context) {
	page := util.QueryInt(ctx, "page", 1)
	limit := util.QueryInt(ctx, "limit", 50)
	if limit > 200 {
		limit = 50
	}

	logs, total, err := c.LogRepo.List(page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  logs,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}
