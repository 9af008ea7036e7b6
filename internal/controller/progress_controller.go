package controller

import (
	"errors"

	"mathlearn_backend/internal/service"
	"mathlearn_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

// UpdateProgressRequest 更新学习进度请求
// swagger:model UpdateProgressRequest
type UpdateProgressRequest struct {
	Topic    string `json:"topic" binding:"required"`
	Progress *int   `json:"progress" binding:"required"`
}

// UpdateProgress godoc
// @Summary 更新学习进度
// @Description 写入 (用户, 主题) 的进度百分比，重复提交相同值是幂等的
// @Tags 进度
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body UpdateProgressRequest true "进度"
// @Success 200 {object} util.Response "已更新"
// @Failure 400 {object} util.Response "进度值超出 0-100"
// @Router /api/progress [put]
func (c *ProgressController) UpdateProgress(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req UpdateProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.ProgressService.UpdateProgress(claims.UserID, req.Topic, *req.Progress); err != nil {
		if errors.Is(err, util.ErrInvalidProgress) {
			util.BadRequest(ctx, "progress must be between 0 and 100")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, nil)
}

// GetProgress godoc
// @Summary 学习进度列表
// @Tags 进度
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=object} "各主题进度"
// @Router /api/progress [get]
func (c *ProgressController) GetProgress(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	progress, err := c.ProgressService.GetProgress(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"progress": progress})
}
