package spider

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

type FetchType int

const (
	BaseFetchType FetchType = iota
	BrowserFetchType
)

type Fetcher interface {
	/*
	   输入一个上下文和url，输出响应体和一个错误

	   网络层面的失败（DNS、超时、连接被拒）才视为错误并记录error日志；只要拿到了响应，
	   无论状态码是多少都返回响应体，非200状态码只记录告警。不做重试
	*/
	Get(ctx context.Context, url string) ([]byte, error)
}

/*
输入一个FetchType类型的参数和配置选项，输出一个Fetcher接口类型的实例

BaseFetchType只发送最简单的GET请求；BrowserFetchType在请求前经过限速器，并设置User-Agent、代理和超时
*/
func NewFetchService(typ FetchType, opts ...Option) Fetcher {
	options := defaultOptions
	for _, opt := range opts {
		opt(&options)
	}

	switch typ {
	case BaseFetchType:
		return &baseFetch{client: &http.Client{}, options: options}
	default:
		return &browserFetch{client: newClient(options), options: options}
	}
}

// Transport为nil时沿用http.DefaultTransport，只有配置了代理才复制一份默认Transport
func newClient(opts options) *http.Client {
	client := &http.Client{
		Timeout: opts.Timeout,
	}
	if opts.Proxy != nil {
		if t, ok := http.DefaultTransport.(*http.Transport); ok {
			transport := t.Clone()
			transport.Proxy = opts.Proxy
			client.Transport = transport
		}
	}
	return client
}

type baseFetch struct {
	client *http.Client
	options
}

func (b *baseFetch) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("get url failed:%w", err)
	}
	return do(b.client, req, b.logger)
}

type browserFetch struct {
	client *http.Client
	options
}

func (b *browserFetch) Get(ctx context.Context, url string) ([]byte, error) {
	if err := b.Limit.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("get url failed:%w", err)
	}

	if len(b.UserAgent) > 0 {
		req.Header.Set("User-Agent", b.UserAgent)
	}

	return do(b.client, req, b.logger)
}

func do(client *http.Client, req *http.Request, logger *zap.Logger) ([]byte, error) {
	url := req.URL.String()
	logger.Info("sending get request", zap.String("url", url))

	resp, err := client.Do(req)
	if err != nil {
		logger.Error("error connecting to url", zap.String("url", url), zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Warn("unexpected status code",
			zap.String("url", url),
			zap.Int("status", resp.StatusCode),
		)
	}

	bodyReader := bufio.NewReader(resp.Body)
	e := DeterminEncoding(bodyReader, resp.Header.Get("Content-Type"), logger)
	utf8Reader := transform.NewReader(bodyReader, e.NewDecoder())

	body, err := io.ReadAll(utf8Reader)
	if err != nil {
		logger.Error("read body failed", zap.String("url", url), zap.Error(err))
		return nil, err
	}
	return body, nil
}

// 根据响应头和响应体前1024字节推断编码，无法判断时按UTF-8处理
func DeterminEncoding(r *bufio.Reader, contentType string, logger *zap.Logger) encoding.Encoding {
	bytes, err := r.Peek(1024)

	if err != nil && !errors.Is(err, io.EOF) {
		logger.Error("peek body failed", zap.Error(err))

		return unicode.UTF8
	}

	e, _, _ := charset.DetermineEncoding(bytes, contentType)

	return e
}
