package imagestorage

import (
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

type options struct {
	logger    *zap.Logger
	client    *resty.Client
	directory string
	extension string
	userAgent string
}

var defaultOptions = options{
	logger:    zap.NewNop(),
	directory: "tmp",
	extension: ".png",
}

type Option func(opts *options)

func WithLogger(logger *zap.Logger) Option {
	return func(opts *options) {
		opts.logger = logger
	}
}

// 测试中传入被httpmock接管的客户端
func WithClient(client *resty.Client) Option {
	return func(opts *options) {
		opts.client = client
	}
}

func WithDirectory(dir string) Option {
	return func(opts *options) {
		opts.directory = dir
	}
}

func WithExtension(ext string) Option {
	return func(opts *options) {
		opts.extension = ext
	}
}

func WithUserAgent(ua string) Option {
	return func(opts *options) {
		opts.userAgent = ua
	}
}
