package htmlstorage

import "go.uber.org/zap"

type options struct {
	logger   *zap.Logger
	filePath string
}

var defaultOptions = options{
	logger:   zap.NewNop(),
	filePath: "index.html",
}

type Option func(opts *options)

func WithLogger(logger *zap.Logger) Option {
	return func(opts *options) {
		opts.logger = logger
	}
}

func WithFilePath(path string) Option {
	return func(opts *options) {
		opts.filePath = path
	}
}
