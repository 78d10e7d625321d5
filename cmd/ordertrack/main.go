package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rinserepeat/ordertrack/internal/config"
	"github.com/rinserepeat/ordertrack/internal/logger"
	"github.com/rinserepeat/ordertrack/internal/repository"
	"github.com/rinserepeat/ordertrack/internal/service"
	"github.com/rinserepeat/ordertrack/internal/sheets"
	"github.com/rinserepeat/ordertrack/internal/shell"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		panic(err)
	}
}

func run() error {
	// A missing .env file is fine; flags and the environment still apply.
	_ = godotenv.Load()

	conf := config.InitConfig()
	if err := logger.Initialize(conf.LogLevel); err != nil {
		return err
	}
	defer logger.Log.Sync()

	if conf.SpreadsheetID == "" {
		return errors.New("spreadsheet ID is required (-s flag or SPREADSHEET_ID)")
	}

	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := sheets.NewClient(rootCtx, conf.SpreadsheetID, conf.CredentialsFile)
	if err != nil {
		return err
	}
	logger.Log.Info("connected to spreadsheet", zap.String("spreadsheet_id", conf.SpreadsheetID))

	orderService := service.NewOrderService(
		repository.NewOrderRepository(client),
		repository.NewCustomerRepository(client),
		repository.NewPriceRepository(client),
	)

	return shell.New(orderService, os.Stdin, os.Stdout).Run(rootCtx)
}
