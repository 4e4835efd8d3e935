package scrape

import (
	"context"

	"github.com/dszqbsm/animalcrawler/config"
	"github.com/dszqbsm/animalcrawler/engine"
	"github.com/dszqbsm/animalcrawler/limiter"
	"github.com/dszqbsm/animalcrawler/log"
	"github.com/dszqbsm/animalcrawler/proxy"
	"github.com/dszqbsm/animalcrawler/spider"
	"github.com/dszqbsm/animalcrawler/storage/htmlstorage"
	"github.com/dszqbsm/animalcrawler/storage/imagestorage"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

var ScrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "build the collateral adjective table.",
	Long:  "fetch the list of animal names, download one picture per animal and export the adjective table to html.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Run(cmd.Context())
	},
}

/*
输入一个上下文，输出一个错误

加载配置后创建日志实例（轮转文件+标准输出），组装采集器、图片存储、HTML导出和爬虫引擎并执行一次完整流程，
返回前关闭日志，保证内容刷到磁盘
*/
func Run(ctx context.Context) (err error) {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load(config.DefaultConfigFile)
	if err != nil {
		return err
	}

	// Validate已经检查过日志级别
	level, _ := cfg.Level()
	logger, closeLog := log.NewRotatingLogger(log.FileConfig{
		Path:       cfg.Log.File,
		Level:      level,
		MaxSize:    cfg.Log.MaxSize,
		MaxBackups: cfg.Log.MaxBackups,
	})
	defer func() {
		err = multierr.Append(err, closeLog())
	}()
	logger.Info("log init end")

	base, _ := cfg.Base()

	fetchOpts := []spider.Option{
		spider.WithLogger(logger.Named("fetcher")),
		spider.WithTimeout(cfg.Fetcher.Timeout),
		spider.WithUserAgent(cfg.Fetcher.UserAgent),
		spider.WithLimit(limiter.New(cfg.Fetcher.Limits...)),
	}
	if len(cfg.Fetcher.Proxy) > 0 {
		p, err := proxy.RoundRobinProxySwitcher(cfg.Fetcher.Proxy...)
		if err != nil {
			logger.Error("RoundRobinProxySwitcher failed", zap.Error(err))
			return err
		}
		fetchOpts = append(fetchOpts, spider.WithProxy(p))
	}
	f := spider.NewFetchService(spider.BrowserFetchType, fetchOpts...)

	images := imagestorage.New(
		imagestorage.WithLogger(logger.Named("images")),
		imagestorage.WithDirectory(cfg.Image.Directory),
		imagestorage.WithExtension(cfg.Image.Extension),
		imagestorage.WithUserAgent(cfg.Fetcher.UserAgent),
	)

	c, err := engine.NewEngine(
		engine.WithLogger(logger),
		engine.WithURL(cfg.Source.URL),
		engine.WithBaseURL(base),
		engine.WithTableSelector(cfg.Source.TableSelector),
		engine.WithImageSelectors(cfg.Image.Selector, cfg.Image.FallbackXPath),
		engine.WithFetcher(f),
		engine.WithImageStorage(images),
		engine.WithStorage(htmlstorage.New(
			htmlstorage.WithLogger(logger.Named("html")),
			htmlstorage.WithFilePath(cfg.Output.File),
		)),
	)
	if err != nil {
		logger.Error("create engine failed", zap.Error(err))
		return err
	}

	if err := c.Run(ctx); err != nil {
		logger.Error("crawl failed", zap.Error(err))
		return err
	}
	return nil
}
