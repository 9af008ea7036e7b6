package controller

import (
	"errors"

	"mathlearn_backend/internal/service"
	"mathlearn_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ContentController struct {
	ContentService *service.ContentService
}

func NewContentController(contentService *service.ContentService) *ContentController {
	return &ContentController{ContentService: contentService}
}

// ListMaterials godoc
// @Summary 学习资料列表
// @Description 全部资料，带 Redis 缓存；传 category 查询参数则按分类过滤
// @Tags 资料
// @Produce  json
// @Security BearerAuth
// @Param   category query string false "分类"
// @Success 200 {object} util.Response{data=object} "资料列表"
// @Router /api/materials [get]
func (c *ContentController) ListMaterials(ctx *gin.Context) {
	category := ctx.Query("category")
	if category != "" {
		materials, err := c.ContentService.ListMaterialsByCategory(category)
		if err != nil {
			util.LogInternalError(ctx, err)
			return
		}
		util.Success(ctx, gin.H{"materials": materials})
		return
	}

	materials, err := c.ContentService.ListMaterials(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"materials": materials})
}

// GetMaterial godoc
// @Summary 资料详情
// @Tags 资料
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "资料ID"
// @Success 200 {object} util.Response{data=model.Material} "资料"
// @Failure 404 {object} util.Response "资料不存在"
// @Router /api/materials/{id} [get]
func (c *ContentController) GetMaterial(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	material, err := c.ContentService.GetMaterial(id)
	if err != nil {
		c.materialError(ctx, err)
		return
	}
	util.Success(ctx, material)
}

// CreateMaterial godoc
// @Summary 新增学习资料
// @Tags 资料
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body service.CreateMaterialRequest true "资料信息"
// @Success 201 {object} util.Response{data=model.Material} "创建成功"
// @Router /api/teacher/materials [post]
func (c *ContentController) CreateMaterial(ctx *gin.Context) {
	var req service.CreateMaterialRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	material, err := c.ContentService.CreateMaterial(req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, material)
}

// UpdateMaterial godoc
// @Summary 修改学习资料
// @Tags 资料
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "资料ID"
// @Param   body body service.UpdateMaterialRequest true "资料信息"
// @Success 200 {object} util.Response{data=model.Material} "修改成功"
// @Failure 404 {object} util.Response "资料不存在"
// @Router /api/teacher/materials/{id} [put]
func (c *ContentController) UpdateMaterial(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	var req service.UpdateMaterialRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	material, err := c.ContentService.UpdateMaterial(id, req)
	if err != nil {
		c.materialError(ctx, err)
		return
	}
	util.Success(ctx, material)
}

// DeleteMaterial godoc
// @Summary 删除学习资料
// @Description 同时删除已绑定的附件和封面
// @Tags 资料
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "资料ID"
// @Success 200 {object} util.Response "删除成功"
// @Failure 404 {object} util.Response "资料不存在"
// @Router /api/teacher/materials/{id} [delete]
func (c *ContentController) DeleteMaterial(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	if err := c.ContentService.DeleteMaterial(ctx.Request.Context(), id); err != nil {
		c.materialError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// UploadAttachment godoc
// @Summary 上传资料附件
// @Description 支持图片、PDF、视频；视频会探测时长并生成封面
// @Tags 资料
// @Accept  multipart/form-data
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "资料ID"
// @Param   file formData file true "附件"
// @Success 200 {object} util.Response{data=model.Material} "上传成功"
// @Failure 400 {object} util.Response "文件类型不允许"
// @Failure 404 {object} util.Response "资料不存在"
// @Router /api/teacher/materials/{id}/attachment [post]
func (c *ContentController) UploadAttachment(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))

	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	material, err := c.ContentService.UploadAttachment(ctx.Request.Context(), id, file)
	if err != nil {
		if errors.Is(err, util.ErrMaterialNotFound) {
			util.NotFound(ctx)
		} else {
			util.BadRequest(ctx, err.Error())
		}
		return
	}
	util.Success(ctx, material)
}

// ListCategories godoc
// @Summary 分类列表
// @Tags 资料
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=object} "分类"
// @Router /api/categories [get]
func (c *ContentController) ListCategories(ctx *gin.Context) {
	categories, err := c.ContentService.Categories()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"categories": categories})
}

// CreateCategoryRequest 新增分类请求
// swagger:model CreateCategoryRequest
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateCategory godoc
// @Summary 新增分类
// @Tags 资料
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body CreateCategoryRequest true "分类名"
// @Success 201 {object} util.Response{data=model.Category} "创建成功"
// @Router /api/teacher/categories [post]
func (c *ContentController) CreateCategory(ctx *gin.Context) {
	var req CreateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	category, err := c.ContentService.CreateCategory(req.Name)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, category)
}

func (c *ContentController) materialError(ctx *gin.Context, err error) {
	if errors.Is(err, util.ErrMaterialNotFound) {
		util.NotFound(ctx)
		return
	}
	util.LogInternalError(ctx, err)
}
