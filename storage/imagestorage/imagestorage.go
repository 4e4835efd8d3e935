package imagestorage

// 将动物图片下载到本地目录，文件名为动物名称加固定扩展名，重复运行时覆盖旧文件

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dszqbsm/animalcrawler/parse/animal"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

var ErrEmptyURL = errors.New("empty image url")

type ImageStore struct {
	client *resty.Client
	options
}

func New(opts ...Option) *ImageStore {
	options := defaultOptions
	for _, opt := range opts {
		opt(&options)
	}
	s := &ImageStore{options: options}
	s.client = options.client
	if s.client == nil {
		s.client = resty.New()
	}
	if s.userAgent != "" {
		s.client.SetHeader("User-Agent", s.userAgent)
	}
	return s
}

// 本地保存路径，同时也是写入映射中的图片路径
func (s *ImageStore) Path(name string) string {
	return animal.PicturePath(s.directory, name, s.extension)
}

// 目录已存在时不报错
func (s *ImageStore) ensureDirectory() error {
	return os.MkdirAll(s.directory, 0o755)
}

/*
输入动物名称和图片地址，输出本地文件路径和一个错误

响应体按原样写入文件，不区分状态码；网络错误或写文件失败时返回错误，由调用方记录日志后继续处理下一只动物
*/
func (s *ImageStore) Save(ctx context.Context, name, imgURL string) (string, error) {
	if err := s.ensureDirectory(); err != nil {
		return "", fmt.Errorf("create image directory failed:%w", err)
	}

	local := s.Path(name)
	s.logger.Info("preparing to download", zap.String("url", imgURL), zap.String("path", local))
	if imgURL == "" {
		return "", fmt.Errorf("%w for %s", ErrEmptyURL, name)
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetOutput(local).
		Get(imgURL)
	if err != nil {
		return "", fmt.Errorf("unable to save image of %s:%w", name, err)
	}
	if resp.IsError() {
		s.logger.Warn("image response status",
			zap.String("animal", name),
			zap.Int("status", resp.StatusCode()),
		)
	}

	s.logger.Info("successfully downloaded picture", zap.String("animal", name))
	return local, nil
}
