package log

import (
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedCore() (zapcore.Core, func() []observer.LoggedEntry) {
	core, logs := observer.New(zapcore.DebugLevel)
	return core, logs.AllUntimed
}
