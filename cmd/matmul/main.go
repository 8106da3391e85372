// Package main multiplies the canonical 2x3 by 3x2 example and prints the
// product in display and debug form, then shows the error reported for an
// incompatible pair.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/matfan/internal/config"
	"github.com/katalvlaran/matfan/internal/logging"
	"github.com/katalvlaran/matfan/matrix"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	a := matrix.MustNew(2, 3, []int{1, 2, 3, 4, 5, 6})
	b := matrix.MustNew(3, 2, []int{1, 2, 3, 4, 5, 6})

	c, err := matrix.Multiply(a, b)
	if err != nil {
		logger.Error("Multiply failed", zap.Error(err))
		return err
	}
	fmt.Println(c)
	fmt.Printf("%+v\n", c)

	// 2x3 times 2x3 has mismatched inner dimensions.
	if _, err = matrix.Multiply(a, a); err != nil {
		logger.Warn("Multiply rejected",
			zap.Stringer("a", a),
			zap.Stringer("b", a),
			zap.Error(err))
	}

	return nil
}

// newLogger builds the logger from MATFAN_* settings. Bad settings are
// reported through the default logger and end the run, like cmd/fanin does.
func newLogger() (*zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		logging.NewDefault().Error("Failed to load config", zap.Error(err))
		return nil, err
	}
	logger, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
	})
	if err != nil {
		logging.NewDefault().Error("Failed to build logger", zap.Error(err))
		return nil, err
	}

	return logger, nil
}
