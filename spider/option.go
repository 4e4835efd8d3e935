package spider

import (
	"time"

	"github.com/dszqbsm/animalcrawler/limiter"
	"github.com/dszqbsm/animalcrawler/proxy"
	"go.uber.org/zap"
)

// 采集器的配置选项
type options struct {
	Timeout   time.Duration // http超时时间，0表示使用http.Client的默认行为
	UserAgent string
	Proxy     proxy.ProxyFunc
	Limit     limiter.RateLimiter
	logger    *zap.Logger
}

var defaultOptions = options{
	logger: zap.NewNop(),
	Limit:  limiter.New(),
}

type Option func(opts *options)

func WithLogger(logger *zap.Logger) Option {
	return func(opts *options) {
		opts.logger = logger
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(opts *options) {
		opts.Timeout = timeout
	}
}

func WithUserAgent(ua string) Option {
	return func(opts *options) {
		opts.UserAgent = ua
	}
}

func WithProxy(proxy proxy.ProxyFunc) Option {
	return func(opts *options) {
		opts.Proxy = proxy
	}
}

func WithLimit(l limiter.RateLimiter) Option {
	return func(opts *options) {
		opts.Limit = l
	}
}
