package log

import (
	"io"
	"os"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Plugin = zapcore.Core

// 文件日志的配置，零值字段使用默认值
type FileConfig struct {
	Path       string
	Level      zapcore.Level
	MaxSize    int // MB
	MaxBackups int
}

func NewLogger(plugin zapcore.Core, options ...zap.Option) *zap.Logger {
	return zap.New(plugin, append(DefaultOption(), options...)...)
}

func NewPlugin(writer zapcore.WriteSyncer, enabler zapcore.LevelEnabler) Plugin {
	return zapcore.NewCore(DefaultEncoder(), writer, enabler)
}

func NewStdoutPlugin(enabler zapcore.LevelEnabler) Plugin {
	return NewPlugin(zapcore.Lock(zapcore.AddSync(os.Stdout)), enabler)
}

func NewStderrPlugin(enabler zapcore.LevelEnabler) Plugin {
	return NewPlugin(zapcore.Lock(zapcore.AddSync(os.Stderr)), enabler)
}

// Lumberjack logger虽然持有File但没有暴露sync方法，所以额外返回一个closer，需要保证在进程退出前close以保证写入的内容全部刷到磁盘
/*
输入一个日志文件配置，输出一个zapcore.Core实例和一个io.Closer实例

初始化轮转配置，文件大小和备份数量未设置时沿用默认值，创建绑定到文件的zapcore.Core实例
*/
func NewFilePlugin(cfg FileConfig) (Plugin, io.Closer) {
	var writer = DefaultLumberjackLogger()
	writer.Filename = cfg.Path
	if cfg.MaxSize > 0 {
		writer.MaxSize = cfg.MaxSize
	}
	if cfg.MaxBackups > 0 {
		writer.MaxBackups = cfg.MaxBackups
	}
	return NewPlugin(zapcore.AddSync(writer), cfg.Level), writer
}

/*
输入一个日志文件配置，输出一个日志实例和一个关闭函数

日志同时写入轮转文件和标准输出。日志实例应在进程启动时创建一次，通过参数传递给各组件，
退出前调用关闭函数，先刷新缓冲再关闭文件，两步的错误会合并返回
*/
func NewRotatingLogger(cfg FileConfig) (*zap.Logger, func() error) {
	filePlugin, closer := NewFilePlugin(cfg)
	logger := NewLogger(zapcore.NewTee(filePlugin, NewStdoutPlugin(cfg.Level)))

	closeFn := func() error {
		var err error
		// stdout在部分平台上sync会返回EINVAL，这里忽略标准输出的同步错误
		if syncErr := filePlugin.Sync(); syncErr != nil {
			err = multierr.Append(err, syncErr)
		}
		_ = logger.Sync()
		return multierr.Append(err, closer.Close())
	}

	return logger, closeFn
}
