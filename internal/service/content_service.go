package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"mathlearn_backend/internal/config"
	"mathlearn_backend/internal/model"
	"mathlearn_backend/internal/repository"
	"mathlearn_backend/internal/util"
	"mathlearn_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	materialListCacheKey = "materials:all"
	materialCacheTTL     = 10 * time.Minute
)

// ContentService 学习资料管理：增删改查、附件上传、列表缓存
type ContentService struct {
	MaterialRepo   *repository.MaterialRepository
	CategoryRepo   *repository.CategoryRepository
	StorageService *StorageService
	Cfg            *config.Config
	Redis          *redis.Client
}

func NewContentService(materialRepo *repository.MaterialRepository, categoryRepo *repository.CategoryRepository, storageService *StorageService, cfg *config.Config, rdb *redis.Client) *ContentService {
	return &ContentService{
		MaterialRepo:   materialRepo,
		CategoryRepo:   categoryRepo,
		StorageService: storageService,
		Cfg:            cfg,
		Redis:          rdb,
	}
}

// CreateMaterialRequest 新增学习资料请求
type CreateMaterialRequest struct {
	Topic    string `json:"topic" binding:"required"`
	Content  string `json:"content"`
	Category string `json:"category" binding:"required"`
}

func (s *ContentService) CreateMaterial(req CreateMaterialRequest) (*model.Material, error) {
	material := &model.Material{
		Topic:    req.Topic,
		Content:  req.Content,
		Category: req.Category,
	}
	if err := s.MaterialRepo.Create(material); err != nil {
		return nil, err
	}
	s.invalidateCache()
	return material, nil
}

// ListMaterials 全部资料列表，优先走 Redis 缓存
func (s *ContentService) ListMaterials(ctx context.Context) ([]model.Material, error) {
	if s.Redis != nil {
		val, err := s.Redis.Get(ctx, materialListCacheKey).Result()
		if err == nil {
			var cached []model.Material
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				return cached, nil
			}
		} else if err != redis.Nil {
			logger.Log.Warn("material cache read failed", zap.Error(err))
		}
	}

	materials, err := s.MaterialRepo.FindAll()
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if data, err := json.Marshal(materials); err == nil {
			if err := s.Redis.Set(ctx, materialListCacheKey, data, materialCacheTTL).Err(); err != nil {
				logger.Log.Warn("material cache write failed", zap.Error(err))
			}
		}
	}

	return materials, nil
}

func (s *ContentService) ListMaterialsByCategory(category string) ([]model.Material, error) {
	return s.MaterialRepo.FindByCategory(category)
}

func (s *ContentService) GetMaterial(id uint) (*model.Material, error) {
	material, err := s.MaterialRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrMaterialNotFound
		}
		return nil, err
	}
	return material, nil
}

// UpdateMaterialRequest 修改学习资料请求
type UpdateMaterialRequest struct {
	Topic    string `json:"topic"`
	Content  string `json:"content"`
	Category string `json:"category"`
}

func (s *ContentService) UpdateMaterial(id uint, req UpdateMaterialRequest) (*model.Material, error) {
	material, err := s.GetMaterial(id)
	if err != nil {
		return nil, err
	}

	if req.Topic != "" {
		material.Topic = req.Topic
	}
	if req.Content != "" {
		material.Content = req.Content
	}
	if req.Category != "" {
		material.Category = req.Category
	}

	if err := s.MaterialRepo.Update(material); err != nil {
		return nil, err
	}
	s.invalidateCache()
	return material, nil
}

func (s *ContentService) DeleteMaterial(ctx context.Context, id uint) error {
	material, err := s.GetMaterial(id)
	if err != nil {
		return err
	}

	if material.FilePath != "" {
		if err := s.StorageService.Delete(ctx, material.FilePath); err != nil {
			logger.Log.Warn("material file delete failed", zap.String("path", material.FilePath), zap.Error(err))
		}
	}
	if material.ThumbnailPath != "" {
		if err := s.StorageService.Delete(ctx, material.ThumbnailPath); err != nil {
			logger.Log.Warn("thumbnail delete failed", zap.String("path", material.ThumbnailPath), zap.Error(err))
		}
	}

	if err := s.MaterialRepo.Delete(id); err != nil {
		return err
	}
	s.invalidateCache()
	return nil
}

// UploadAttachment 给资料绑定附件；视频会额外探测时长并生成封面
func (s *ContentService) UploadAttachment(ctx context.Context, materialID uint, file *multipart.FileHeader) (*model.Material, error) {
	material, err := s.GetMaterial(materialID)
	if err != nil {
		return nil, err
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	mimeType, err := util.ValidateMimeType(src, util.AllowedMaterialMimeTypes)
	if err != nil {
		return nil, fmt.Errorf("invalid file content: %v", err)
	}
	if seeker, ok := src.(io.Seeker); ok {
		seeker.Seek(0, io.SeekStart)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	filename := "materials/" + uuid.New().String() + ext

	if util.IsVideo(mimeType) {
		return s.uploadVideo(ctx, material, src, file, filename, ext)
	}

	url, err := s.StorageService.Upload(ctx, filename, src, file.Size, file.Header.Get("Content-Type"))
	if err != nil {
		return nil, err
	}

	material.FilePath = url
	material.VideoDuration = 0
	material.ThumbnailPath = ""
	if err := s.MaterialRepo.Update(material); err != nil {
		return nil, err
	}
	s.invalidateCache()
	return material, nil
}

func (s *ContentService) uploadVideo(ctx context.Context, material *model.Material, src multipart.File, file *multipart.FileHeader, filename, ext string) (*model.Material, error) {
	// 先落到本地临时文件，便于 ffmpeg 处理
	tempDir := filepath.Join(s.Cfg.Storage.LocalPath, "temp")
	if err := os.MkdirAll(tempDir, 0755); err != nil {
		return nil, err
	}

	videoPath := filepath.Join(tempDir, fmt.Sprintf("upload_%d%s", time.Now().UnixNano(), ext))
	defer os.Remove(videoPath)

	dst, err := os.Create(videoPath)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return nil, err
	}
	dst.Close()

	url, err := s.StorageService.UploadFile(ctx, filename, videoPath, file.Header.Get("Content-Type"))
	if err != nil {
		return nil, err
	}

	var duration float64
	if info, err := util.ProbeVideo(videoPath); err == nil {
		duration = info.Duration
	} else {
		logger.Log.Warn("video probe failed", zap.Error(err))
	}

	thumbnailFilename := "thumbnails/" + uuid.New().String() + ".jpg"
	thumbnailPath := filepath.Join(tempDir, filepath.Base(thumbnailFilename))

	var thumbnailURL string
	if err := util.GenerateThumbnail(videoPath, thumbnailPath, "3"); err != nil {
		logger.Log.Error("thumbnail generation failed", zap.Error(err))
	} else {
		thumbnailURL, err = s.StorageService.UploadFile(ctx, thumbnailFilename, thumbnailPath, "image/jpeg")
		if err != nil {
			logger.Log.Error("thumbnail upload failed", zap.Error(err))
			thumbnailURL = ""
		}
		os.Remove(thumbnailPath)
	}

	material.FilePath = url
	material.VideoDuration = duration
	material.ThumbnailPath = thumbnailURL
	if err := s.MaterialRepo.Update(material); err != nil {
		return nil, err
	}
	s.invalidateCache()
	return material, nil
}

// Categories 分类列表
func (s *ContentService) Categories() ([]model.Category, error) {
	return s.CategoryRepo.FindAll()
}

func (s *ContentService) CreateCategory(name string) (*model.Category, error) {
	category := &model.Category{Name: name}
	if err := s.CategoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *ContentService) invalidateCache() {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.Del(context.Background(), materialListCacheKey).Err(); err != nil {
		logger.Log.Warn("material cache invalidation failed", zap.Error(err))
	}
}
