package utils

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/shadecart/shadecart/models"
)

const (
	// bill numbers start at billNoBase+1
	billNoBase     = 1000
	billCounterKey = "billno"
	redisBillKey   = "shadecart:billno"
)

// BillSequence hands out increasing receipt numbers. tx is the transaction
// the order is being created in.
type BillSequence interface {
	Next(ctx context.Context, tx *gorm.DB) (string, error)
}

func formatBillNo(n int64) string {
	return strconv.FormatInt(billNoBase+n, 10)
}

type RedisBillSequence struct {
	client *redis.Client
}

func NewRedisBillSequence(client *redis.Client) *RedisBillSequence {
	return &RedisBillSequence{client: client}
}

// Next increments a Redis counter. A number taken by an order that later
// rolls back is not reused.
func (s *RedisBillSequence) Next(ctx context.Context, _ *gorm.DB) (string, error) {
	n, err := s.client.Incr(ctx, redisBillKey).Result()
	if err != nil {
		return "", fmt.Errorf("incr bill number: %w", err)
	}
	return formatBillNo(n), nil
}

// DBBillSequence keeps the counter in a locked row, so numbers are only
// consumed when the order transaction commits.
type DBBillSequence struct{}

func NewDBBillSequence() *DBBillSequence {
	return &DBBillSequence{}
}

// EnsureBillCounter creates the counter row if it is missing, so the locked
// read in Next always finds an existing row.
func EnsureBillCounter(db *gorm.DB) error {
	err := db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.BillCounter{Name: billCounterKey}).Error
	if err != nil {
		return fmt.Errorf("seed bill counter: %w", err)
	}
	return nil
}

func (s *DBBillSequence) Next(ctx context.Context, tx *gorm.DB) (string, error) {
	counter := models.BillCounter{Name: billCounterKey}

	err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		FirstOrCreate(&counter, models.BillCounter{Name: billCounterKey}).Error
	if err != nil {
		return "", fmt.Errorf("lock bill counter: %w", err)
	}

	counter.Value++
	if err := tx.WithContext(ctx).Save(&counter).Error; err != nil {
		return "", fmt.Errorf("save bill counter: %w", err)
	}
	return formatBillNo(counter.Value), nil
}
