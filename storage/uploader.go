package storage

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"cityinfo/config"
	"cityinfo/pkg/log"
	"cityinfo/types"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
	"github.com/google/uuid"
	"go.uber.org/zap"
	_ "golang.org/x/image/webp"
)

const maxImageSize int64 = 5 << 20 // 5MB

var allowedImageMime = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// Uploader 图片上传。优先传 OSS，失败时退化为 data URI 内联返回，
// 保证弱网或 OSS 故障时发帖流程不中断
type Uploader struct {
	Client *oss.Client
	Cfg    *config.OssConfig
}

func NewUploader(client *oss.Client, cfg *config.OssConfig) *Uploader {
	return &Uploader{Client: client, Cfg: cfg}
}

// ValidateImage 校验声明类型、真实内容和大小，返回内容和尺寸信息
func ValidateImage(header *multipart.FileHeader) ([]byte, image.Config, string, error) {
	var cfg image.Config

	if header == nil {
		return nil, cfg, "", fmt.Errorf("缺少图片文件")
	}
	if header.Size <= 0 || header.Size > maxImageSize {
		return nil, cfg, "", fmt.Errorf("图片大小超出限制")
	}

	// 声明的 Content-Type 先做一道拦截
	if declared := header.Header.Get("Content-Type"); declared != "" {
		mime, _, _ := strings.Cut(declared, ";")
		if !allowedImageMime[strings.TrimSpace(mime)] {
			return nil, cfg, "", fmt.Errorf("不支持的图片类型: %s", declared)
		}
	}

	f, err := header.Open()
	if err != nil {
		return nil, cfg, "", err
	}
	defer f.Close()

	content, err := io.ReadAll(io.LimitReader(f, maxImageSize+1))
	if err != nil {
		return nil, cfg, "", err
	}
	if int64(len(content)) > maxImageSize {
		return nil, cfg, "", fmt.Errorf("图片大小超出限制")
	}

	// 真实内容校验，声明类型不可信
	contentType := http.DetectContentType(content)
	if !allowedImageMime[contentType] {
		return nil, cfg, "", fmt.Errorf("不支持的图片类型: %s", contentType)
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(content))
	if err != nil {
		return nil, cfg, "", fmt.Errorf("图片内容损坏: %w", err)
	}

	return content, cfg, strings.ToLower(format), nil
}

func (u *Uploader) UploadImage(ctx context.Context, header *multipart.FileHeader) (*types.UploadResponse, error) {
	content, imgCfg, format, err := ValidateImage(header)
	if err != nil {
		return nil, err
	}

	ext := "." + format
	if format == "jpeg" {
		ext = ".jpg"
	}
	objectKey := fmt.Sprintf("post/%s/%s%s",
		time.Now().Format("2006/01/02"),
		uuid.NewString(),
		ext,
	)

	_, err = u.Client.PutObject(ctx, &oss.PutObjectRequest{
		Bucket: oss.Ptr(u.Cfg.Bucket),
		Key:    oss.Ptr(objectKey),
		Body:   bytes.NewReader(content),
	})
	if err != nil {
		log.L.Warn("OSS 上传失败, 退化为内联图片", zap.String("key", objectKey), zap.Error(err))
		return &types.UploadResponse{
			URL:    DataURI(content),
			Width:  imgCfg.Width,
			Height: imgCfg.Height,
			Local:  true,
		}, nil
	}

	return &types.UploadResponse{
		URL:    u.Cfg.PublicDomain + "/" + objectKey,
		Width:  imgCfg.Width,
		Height: imgCfg.Height,
	}, nil
}

// DataURI 内联图片地址
func DataURI(content []byte) string {
	return "data:" + http.DetectContentType(content) + ";base64," +
		base64.StdEncoding.EncodeToString(content)
}
