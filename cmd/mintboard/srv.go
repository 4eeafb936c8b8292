package main

import (
	"context"
	"fmt"

	"github.com/clawdcat/mintboard/config"
	"github.com/clawdcat/mintboard/internal/domain/blockchain"
	"github.com/clawdcat/mintboard/internal/domain/dashboard"
	"github.com/clawdcat/mintboard/internal/domain/wallet"
	"github.com/clawdcat/mintboard/internal/repository"
	"github.com/clawdcat/mintboard/migration"
	"github.com/clawdcat/mintboard/pkg/logger"
	"github.com/clawdcat/mintboard/pkg/router"
	"github.com/clawdcat/mintboard/pkg/ws"
	"github.com/clawdcat/mintboard/pkg/xcontext"
	"github.com/clawdcat/mintboard/pkg/xredis"

	"github.com/benbjohnson/clock"
	"github.com/urfave/cli/v2"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type srv struct {
	app *cli.App
	ctx context.Context

	redisClient xredis.Client

	mintTxRepo repository.MintTransactionRepository

	blockchainManager *blockchain.BlockchainManager
	addressBook       *blockchain.AddressBook
	wallet            wallet.Provider

	hub             *ws.Hub
	dashboardDomain dashboard.Dashboard
	streamDomain    dashboard.StreamDomain

	router *router.Router
}

func (s *srv) loadConfig(cctx *cli.Context) error {
	cfg, err := config.Load(cctx.String("config"))
	if err != nil {
		return err
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}

	s.ctx = xcontext.WithConfigs(s.ctx, cfg)
	s.ctx = xcontext.WithLogger(s.ctx, logger.NewLogger(level))
	return nil
}

func (s *srv) newDatabase() *gorm.DB {
	cfg := xcontext.Configs(s.ctx).Database

	var dialector gorm.Dialector
	switch cfg.Type {
	case "mysql":
		dialector = mysql.New(mysql.Config{
			DSN:                       cfg.ConnectionString(),
			DefaultStringSize:         256,
			DisableDatetimePrecision:  true,
			DontSupportRenameIndex:    true,
			DontSupportRenameColumn:   true,
			SkipInitializeWithVersion: false,
		})
	case "sqlite":
		dialector = sqlite.Open(cfg.Path)
	default:
		panic(fmt.Sprintf("unsupported database type %s", cfg.Type))
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		panic(err)
	}

	return db
}

func (s *srv) migrateDB() {
	if err := migration.AutoMigrate(s.ctx); err != nil {
		panic(err)
	}
}

// loadRedisClient falls back to an in-process store when no redis address is
// configured. Tracked txs are then lost on restart.
func (s *srv) loadRedisClient() {
	if xcontext.Configs(s.ctx).Redis.Addr == "" {
		xcontext.Logger(s.ctx).Warnf("No redis configured, use in-memory store for tracked txs")
		s.redisClient = xredis.NewMemoryClient()
		return
	}

	var err error
	s.redisClient, err = xredis.NewClient(s.ctx)
	if err != nil {
		panic(err)
	}
}

func (s *srv) loadRepos() {
	s.mintTxRepo = repository.NewMintTransactionRepository()
}

func (s *srv) loadBlockchain() {
	cfg := xcontext.Configs(s.ctx)
	s.blockchainManager = blockchain.NewBlockchainManagerFromConfigs(cfg)
	s.addressBook = blockchain.NewAddressBook(cfg.Chains, cfg.DefaultChainID)

	for _, chain := range cfg.Chains {
		if s.addressBook.IsZero(chain.ID) {
			xcontext.Logger(s.ctx).Warnf("Contract address of chain %d (%s) is not set", chain.ID, chain.Name)
		}
	}

	s.blockchainManager.Start(s.ctx)
}

func (s *srv) loadDomains(broadcaster dashboard.Broadcaster) {
	s.wallet = wallet.NewKeyWallet(xcontext.Configs(s.ctx).Wallet)
	s.dashboardDomain = dashboard.NewDashboard(
		s.ctx,
		s.wallet,
		s.addressBook,
		s.blockchainManager,
		s.mintTxRepo,
		s.redisClient,
		broadcaster,
		clock.New(),
	)
}
