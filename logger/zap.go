package logger

import (
	"go.uber.org/zap"

	"github.com/vchandela/ddia-btree/btree"
)

// Zap forwards tree events to a sugared zap logger.
type Zap struct {
	logger *zap.SugaredLogger
}

// NewZap adapts z so it can be passed to btree.WithLogger.
func NewZap(z *zap.Logger) btree.Logger {
	return &Zap{logger: z.Sugar()}
}

func (z *Zap) Error(msg string, args ...any) {
	z.logger.Errorw(msg, args...)
}

func (z *Zap) Warn(msg string, args ...any) {
	z.logger.Warnw(msg, args...)
}

func (z *Zap) Info(msg string, args ...any) {
	z.logger.Infow(msg, args...)
}
