package initializers

import (
	"go.uber.org/zap"

	"github.com/shadecart/shadecart/models"
	"github.com/shadecart/shadecart/utils"
)

func SyncDatabase() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.FamilyMember{},
		&models.Order{},
		&models.OrderItem{},
		&models.BillCounter{},
		&models.Appointment{},
		&models.Category{},
	)
	if err != nil {
		Logger.Fatal("failed to sync database", zap.Error(err))
	}
	if err := utils.EnsureBillCounter(DB); err != nil {
		Logger.Fatal("failed to seed bill counter", zap.Error(err))
	}
	Logger.Info("database synced successfully")
}
