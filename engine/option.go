package engine

import (
	"context"
	"net/url"

	"github.com/dszqbsm/animalcrawler/parse/animal"
	"github.com/dszqbsm/animalcrawler/spider"
	"go.uber.org/zap"
)

// 图片存储，Path给出写入映射的本地路径，Save负责下载
type ImageStorage interface {
	Path(name string) string
	Save(ctx context.Context, name, imgURL string) (string, error)
}

// 映射的导出方式
type Storage interface {
	Save(m *animal.Mapping) error
}

type Option func(opts *options)

// 爬虫配置选项
type options struct {
	URL           string   // 动物列表页地址
	BaseURL       *url.URL // 相对链接的默认域名
	TableSelector string
	ImageSelector string // 信息框图片的css选择器
	ImageFallback string // 备选图片的xpath
	Fetcher       spider.Fetcher
	Images        ImageStorage
	Storage       Storage
	Logger        *zap.Logger
}

var defaultOptions = options{
	Logger: zap.NewNop(),
}

func WithLogger(logger *zap.Logger) Option {
	return func(opts *options) {
		opts.Logger = logger
	}
}

func WithFetcher(fetcher spider.Fetcher) Option {
	return func(opts *options) {
		opts.Fetcher = fetcher
	}
}

func WithURL(u string) Option {
	return func(opts *options) {
		opts.URL = u
	}
}

func WithBaseURL(u *url.URL) Option {
	return func(opts *options) {
		opts.BaseURL = u
	}
}

func WithTableSelector(selector string) Option {
	return func(opts *options) {
		opts.TableSelector = selector
	}
}

func WithImageSelectors(selector, fallbackXPath string) Option {
	return func(opts *options) {
		opts.ImageSelector = selector
		opts.ImageFallback = fallbackXPath
	}
}

func WithImageStorage(images ImageStorage) Option {
	return func(opts *options) {
		opts.Images = images
	}
}

func WithStorage(storage Storage) Option {
	return func(opts *options) {
		opts.Storage = storage
	}
}
