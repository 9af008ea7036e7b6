package controller

import (
	"errors"

	"mathlearn_backend/internal/service"
	"mathlearn_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type TestController struct {
	SessionService *service.SessionService
}

func NewTestController(sessionService *service.SessionService) *TestController {
	return &TestController{SessionService: sessionService}
}

// StartTestRequest 开始单主题测验请求
// swagger:model StartTestRequest
type StartTestRequest struct {
	Topic string `json:"topic" binding:"required"`
}

// StartTest godoc
// @Summary 开始单主题测验
// @Description 从指定主题的题库抽题并创建答题会话，替换该用户已有的会话
// @Tags 测验
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body StartTestRequest true "主题"
// @Success 200 {object} util.Response{data=service.QuestionView} "第一题"
// @Failure 400 {object} util.Response "该主题没有题目"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/tests/start [post]
func (c *TestController) StartTest(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req StartTestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	view, err := c.SessionService.StartTopicTest(claims.UserID, req.Topic)
	if err != nil {
		if errors.Is(err, util.ErrEmptyQuestionPool) {
			util.BadRequest(ctx, "no questions available for this topic")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, view)
}

// StartMixedTestRequest 开始混合测验请求
// swagger:model StartMixedTestRequest
type StartMixedTestRequest struct {
	Category string `json:"category"`
}

// StartMixedTest godoc
// @Summary 开始混合测验
// @Description 从每个主题抽取少量题目组成混合测验；不传分类则覆盖全部主题
// @Tags 测验
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body StartMixedTestRequest true "分类（可选）"
// @Success 200 {object} util.Response{data=service.QuestionView} "第一题"
// @Failure 400 {object} util.Response "题库为空"
// @Router /api/tests/start-mixed [post]
func (c *TestController) StartMixedTest(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req StartMixedTestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	view, err := c.SessionService.StartMixedTest(claims.UserID, req.Category)
	if err != nil {
		if errors.Is(err, util.ErrEmptyQuestionPool) {
			util.BadRequest(ctx, "no questions available")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, view)
}

// CurrentQuestion godoc
// @Summary 当前题目
// @Description 返回会话中下一道待回答的题目，选项顺序每次请求都会重新打乱
// @Tags 测验
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=service.QuestionView} "当前题目"
// @Failure 404 {object} util.Response "没有进行中的会话"
// @Failure 409 {object} util.Response "会话已完成"
// @Router /api/tests/current [get]
func (c *TestController) CurrentQuestion(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	view, err := c.SessionService.Current(claims.UserID)
	if err != nil {
		c.sessionError(ctx, err)
		return
	}

	util.Success(ctx, view)
}

// AnswerRequest 提交答案请求
// swagger:model AnswerRequest
type AnswerRequest struct {
	Answer string `json:"answer" binding:"required"`
}

// Answer godoc
// @Summary 提交答案
// @Description 判分并推进会话；答题记录异步落库失败时仍推进会话，persisted 为 false
// @Tags 测验
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body AnswerRequest true "答案"
// @Success 200 {object} util.Response{data=service.AnswerResult} "判分结果"
// @Failure 404 {object} util.Response "没有进行中的会话"
// @Failure 409 {object} util.Response "会话已完成"
// @Router /api/tests/answer [post]
func (c *TestController) Answer(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req AnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.SessionService.Answer(claims.UserID, req.Answer)
	if err != nil {
		if result != nil {
			// 判分已完成但落库失败，会话照常推进
			util.Success(ctx, result)
			return
		}
		c.sessionError(ctx, err)
		return
	}

	util.Success(ctx, result)
}

// Skip godoc
// @Summary 跳过当前题目
// @Description 跳过的题目不计分也不落库
// @Tags 测验
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=service.AnswerResult} "会话进度"
// @Failure 404 {object} util.Response "没有进行中的会话"
// @Failure 409 {object} util.Response "会话已完成"
// @Router /api/tests/skip [post]
func (c *TestController) Skip(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	result, err := c.SessionService.Skip(claims.UserID)
	if err != nil {
		c.sessionError(ctx, err)
		return
	}

	util.Success(ctx, result)
}

// Result godoc
// @Summary 测验结果
// @Description 会话全部题目处理完后返回成绩汇总
// @Tags 测验
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=service.SessionSummary} "成绩汇总"
// @Failure 404 {object} util.Response "没有进行中的会话"
// @Failure 409 {object} util.Response "会话尚未完成"
// @Router /api/tests/result [get]
func (c *TestController) Result(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	summary, err := c.SessionService.Summary(claims.UserID)
	if err != nil {
		c.sessionError(ctx, err)
		return
	}

	util.Success(ctx, summary)
}

// Discard godoc
// @Summary 放弃当前会话
// @Tags 测验
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response "已放弃"
// @Router /api/tests/current [delete]
func (c *TestController) Discard(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	c.SessionService.Discard(claims.UserID)
	util.Success(ctx, nil)
}

func (c *TestController) sessionError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrNoActiveSession):
		util.Error(ctx, 404, "no active test session")
	case errors.Is(err, util.ErrSessionComplete):
		util.Error(ctx, 409, "test session already complete")
	case errors.Is(err, util.ErrSessionNotComplete):
		util.Error(ctx, 409, "test session not complete yet")
	default:
		util.LogInternalError(ctx, err)
	}
}
