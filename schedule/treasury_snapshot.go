package main

import (
	"os"
	"time"

	"strategymint/internal/models"
	dbconfig "strategymint/pkg/config"

	"github.com/robfig/cron/v3"
	logger "github.com/sirupsen/logrus"
)

// RecordTreasurySnapshot copies the current treasury balances into the
// snapshot table.
func RecordTreasurySnapshot() error {
	logger.Info("> Recording treasury snapshot")

	var state models.TreasuryState
	if err := dbconfig.DB.First(&state).Error; err != nil {
		logger.Errorf("> Failed to load treasury state: %v", err)
		return err
	}

	snapshot := models.TreasurySnapshot{
		TotalBalance: state.TotalBalance,
		ProfitPool:   state.ProfitPool,
		RecordedAt:   time.Now(),
	}
	if err := dbconfig.DB.Create(&snapshot).Error; err != nil {
		logger.Errorf("> Failed to create treasury snapshot: %v", err)
		return err
	}

	logger.Infof("> Treasury snapshot recorded: total=%d pool=%d", snapshot.TotalBalance, snapshot.ProfitPool)
	return nil
}

func main() {
	os.MkdirAll("logs", 0755)
	file, err := os.OpenFile("logs/treasury_snapshot.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err == nil {
		logger.SetOutput(file)
	} else {
		logger.Warn("Cannot open log file, logging to stdout")
	}

	logger.SetFormatter(&logger.TextFormatter{
		FullTimestamp: true,
	})
	logger.SetLevel(logger.InfoLevel)
	logger.Info("> Initializing treasury snapshot job...")

	dbconfig.InitDB()
	logger.Info("> Database connection initialized")

	c := cron.New(cron.WithSeconds())

	// Every 15 minutes
	_, err = c.AddFunc("0 */15 * * * *", func() {
		if err := RecordTreasurySnapshot(); err != nil {
			logger.Errorf("> Treasury snapshot failed: %v", err)
		}
	})
	if err != nil {
		logger.Fatalf("> Failed to add cron job: %v", err)
	}

	logger.Info("> Snapshot job scheduled every 15 minutes")
	c.Start()

	select {}
}
