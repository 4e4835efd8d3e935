package engine

// 抓取流程：获取动物列表页 -> 定位表格 -> 逐行抽取动物与关联形容词 -> 下载动物图片 -> 导出HTML表格
// 整个流程在一个goroutine中顺序执行；列表页获取失败、表格或表头缺失属于致命错误，单只动物的图片问题只记录日志

import (
	"context"
	"errors"
	"fmt"

	"github.com/dszqbsm/animalcrawler/parse/animal"
	"github.com/dszqbsm/animalcrawler/spider"
	"github.com/dszqbsm/animalcrawler/storage/htmlstorage"
	"github.com/dszqbsm/animalcrawler/storage/imagestorage"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

var ErrEmptyPage = errors.New("could not fetch content from web page")

type Crawler struct {
	finder *animal.ImageFinder
	options
}

/*
输入一组配置选项，输出爬虫实例和一个错误

未配置的采集器、图片存储和导出方式使用各自的默认实现；列表页地址和默认域名必须配置，备选xpath编译失败时返回错误
*/
func NewEngine(opts ...Option) (*Crawler, error) {
	options := defaultOptions
	for _, opt := range opts {
		opt(&options)
	}
	if options.URL == "" || options.BaseURL == nil {
		return nil, errors.New("source url and base url are required")
	}
	if options.Fetcher == nil {
		options.Fetcher = spider.NewFetchService(spider.BrowserFetchType, spider.WithLogger(options.Logger))
	}
	if options.Images == nil {
		options.Images = imagestorage.New(imagestorage.WithLogger(options.Logger))
	}
	if options.Storage == nil {
		options.Storage = htmlstorage.New(htmlstorage.WithLogger(options.Logger))
	}

	finder, err := animal.NewImageFinder(options.ImageSelector, options.ImageFallback, options.BaseURL)
	if err != nil {
		return nil, err
	}

	return &Crawler{finder: finder, options: options}, nil
}

// 执行完整流程并导出结果
func (c *Crawler) Run(ctx context.Context) error {
	mapping, err := c.Crawl(ctx)
	if err != nil {
		return err
	}
	c.logMapping(mapping)
	return c.Storage.Save(mapping)
}

/*
输入一个上下文，输出关联形容词映射和一个错误

逐行处理动物表格：分隔行跳过，无法抽取的行记录日志后跳过；每只动物先写入映射再下载图片，
图片失败不影响该动物在映射中的条目。所有图片错误汇总后只记录日志，不作为返回值
*/
func (c *Crawler) Crawl(ctx context.Context) (*animal.Mapping, error) {
	body, err := c.Fetcher.Get(ctx, c.URL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEmptyPage, err)
	}
	if len(body) == 0 {
		return nil, ErrEmptyPage
	}

	doc, err := animal.ParseDocument(body)
	if err != nil {
		return nil, err
	}
	table, err := doc.Table(c.TableSelector)
	if err != nil {
		c.Logger.Error("locate animal table failed", zap.Error(err))
		return nil, err
	}

	mapping := animal.NewMapping()
	var imageErrs error
	for i, tr := range table.Rows() {
		row, err := animal.ExtractRow(tr, table.Header, c.BaseURL)
		if errors.Is(err, animal.ErrSectionRow) {
			continue
		}
		if err != nil {
			c.Logger.Error("extract row failed", zap.Int("row", i+1), zap.Error(err))
			continue
		}

		mapping.Add(row.Adjectives, row.Name)
		mapping.AddPicture(row.Adjectives, c.Images.Path(row.Name))

		if err := c.downloadImage(ctx, row); err != nil {
			c.Logger.Error("failed to download image", zap.String("animal", row.Name), zap.Error(err))
			imageErrs = multierr.Append(imageErrs, err)
		}
	}

	if imageErrs != nil {
		c.Logger.Warn("some images were not downloaded",
			zap.Int("failed", len(multierr.Errors(imageErrs))),
			zap.Int("adjectives", mapping.Len()),
		)
	}
	return mapping, nil
}

// 获取动物详情页，查找图片并下载
func (c *Crawler) downloadImage(ctx context.Context, row animal.Row) error {
	body, err := c.Fetcher.Get(ctx, row.Link)
	if err != nil {
		return fmt.Errorf("could not download image of %s:%w", row.Name, err)
	}

	doc, err := animal.ParseDocument(body)
	if err != nil {
		return err
	}

	imgURL, err := c.finder.Find(doc)
	if err != nil {
		return fmt.Errorf("%s (%s):%w", row.Name, row.Link, err)
	}

	_, err = c.Images.Save(ctx, row.Name, imgURL)
	return err
}

func (c *Crawler) logMapping(m *animal.Mapping) {
	m.Each(func(adjective string, e *animal.Entry) {
		c.Logger.Info("collateral adjective",
			zap.String("adjective", adjective),
			zap.Strings("animals", e.Animals),
			zap.Strings("pictures", e.Pictures),
		)
	})
}
