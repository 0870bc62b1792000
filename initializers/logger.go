package initializers

import (
	"os"

	"go.uber.org/zap"
)

// Logger is replaced by InitLogger at startup. The no-op default keeps
// handlers usable in tests.
var Logger = zap.NewNop()

func InitLogger() {
	var (
		logger *zap.Logger
		err    error
	)
	if os.Getenv("GIN_MODE") == "release" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}
	Logger = logger
}
