package limiter

import (
	"context"
	"sort"
	"time"

	"golang.org/x/time/rate"
)

// 限速器接口，统一了不同限速器的行为
type RateLimiter interface {
	Wait(context.Context) error // 阻塞直到可以继续执行，或上下文被取消
	Limit() rate.Limit
}

// 单条限速配置：EventDur秒内最多EventCount次请求
type Config struct {
	EventCount int `mapstructure:"event_count"`
	EventDur   int `mapstructure:"event_dur"` // 秒
	Bucket     int `mapstructure:"bucket"`
}

// 将多个限速器按速率限制从小到大排序，然后返回一个多限速器实例
func Multi(limiters ...RateLimiter) *multiLimiter {
	byLimit := func(i, j int) bool {
		return limiters[i].Limit() < limiters[j].Limit()
	}
	sort.Slice(limiters, byLimit)
	return &multiLimiter{limiters: limiters}
}

type multiLimiter struct {
	limiters []RateLimiter
}

// 只有所有限速器都放行时才返回
func (l *multiLimiter) Wait(ctx context.Context) error {
	for _, l := range l.limiters {
		if err := l.Wait(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (l *multiLimiter) Limit() rate.Limit {
	return l.limiters[0].Limit()
}

func Per(eventCount int, duration time.Duration) rate.Limit {
	return rate.Every(duration / time.Duration(eventCount))
}

/*
输入一组限速配置，输出一个限速器

没有配置时返回不限速的限速器；配置中EventCount或EventDur非法的条目会被忽略，Bucket未设置时桶大小为1
*/
func New(cfgs ...Config) RateLimiter {
	var limits []RateLimiter
	for _, cfg := range cfgs {
		if cfg.EventCount <= 0 || cfg.EventDur <= 0 {
			continue
		}
		bucket := cfg.Bucket
		if bucket <= 0 {
			bucket = 1
		}
		limits = append(limits, rate.NewLimiter(Per(cfg.EventCount, time.Duration(cfg.EventDur)*time.Second), bucket))
	}
	if len(limits) == 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return Multi(limits...)
}
