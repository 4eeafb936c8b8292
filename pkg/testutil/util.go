package testutil

import (
	"context"
	"time"

	"github.com/clawdcat/mintboard/config"
	"github.com/clawdcat/mintboard/migration"
	"github.com/clawdcat/mintboard/pkg/logger"
	"github.com/clawdcat/mintboard/pkg/xcontext"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func MockConfigs() config.Configs {
	cfg := config.Default()
	cfg.Wallet.PrivateKey = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	cfg.Mint.ReceiptPollInterval = time.Millisecond
	cfg.Mint.ReceiptTimeout = time.Second

	for i := range cfg.Chains {
		switch cfg.Chains[i].ID {
		case config.BaseChainID:
			cfg.Chains[i].ContractAddress = "0x1111111111111111111111111111111111111111"
		case config.EthereumChainID:
			cfg.Chains[i].ContractAddress = "0x2222222222222222222222222222222222222222"
		}
	}

	return cfg
}

func MockContext() context.Context {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	// Every new connection to :memory: opens an empty database.
	sqlDB, err := db.DB()
	if err != nil {
		panic(err)
	}
	sqlDB.SetMaxOpenConns(1)

	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, MockConfigs())
	ctx = xcontext.WithLogger(ctx, logger.NewLogger(logger.SILENCE))
	ctx = xcontext.WithDB(ctx, db)

	if err := migration.AutoMigrate(ctx); err != nil {
		panic(err)
	}

	return ctx
}
