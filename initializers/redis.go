package initializers

import (
	"context"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/shadecart/shadecart/utils"
)

var (
	Redis *redis.Client

	// Bills hands out receipt numbers for new orders.
	Bills utils.BillSequence = utils.NewDBBillSequence()
)

// ConnectToRedis switches bill numbering to Redis when REDIS_ADDR is set and
// reachable. Without Redis the database counter stays in use.
func ConnectToRedis() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		Logger.Info("REDIS_ADDR not set, bill numbers come from the database")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		Logger.Warn("redis unreachable, bill numbers come from the database", zap.String("addr", addr), zap.Error(err))
		client.Close()
		return
	}

	Redis = client
	Bills = utils.NewRedisBillSequence(client)
	Logger.Info("connected to redis", zap.String("addr", addr))
}
