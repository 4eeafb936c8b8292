package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/clawdcat/mintboard/internal/domain/dashboard"
	"github.com/clawdcat/mintboard/internal/model"
	"github.com/clawdcat/mintboard/pkg/xcontext"

	"github.com/urfave/cli/v2"
)

func (s *srv) loadWalletSession(broadcaster dashboard.Broadcaster) {
	s.ctx = xcontext.WithDB(s.ctx, s.newDatabase())
	s.migrateDB()
	s.loadRedisClient()
	s.loadRepos()
	s.loadBlockchain()
	s.loadDomains(broadcaster)
}

func (s *srv) connect(cctx *cli.Context) error {
	resp, err := s.dashboardDomain.Connect(s.ctx, &model.ConnectWalletRequest{ChainID: cctx.Int64("chain")})
	if err != nil {
		return err
	}

	fmt.Fprintf(cctx.App.Writer, "Connected %s on chain %d\n", resp.ShortAddress, resp.ChainID)
	return nil
}

func (s *srv) startStats(cctx *cli.Context) error {
	s.loadWalletSession(nil)
	defer s.dashboardDomain.Close()

	if err := s.connect(cctx); err != nil {
		return err
	}

	stats, err := s.dashboardDomain.TokenStats(s.ctx, &model.GetTokenStatsRequest{})
	if err != nil {
		return err
	}

	for _, stat := range stats.Stats {
		fmt.Fprintf(cctx.App.Writer, "%-8s %s\n", stat.Label, stat.Value)
	}
	fmt.Fprintf(cctx.App.Writer, "%-8s %s\n", "Supply", stats.TotalSupply)

	card, err := s.dashboardDomain.MintCard(s.ctx, &model.GetMintCardRequest{})
	if err != nil {
		return err
	}

	fmt.Fprintf(cctx.App.Writer, "%-8s %s %s\n", "Balance", card.Balance, card.Symbol)
	return nil
}

func (s *srv) startMint(cctx *cli.Context) error {
	printer := newStatusPrinter(cctx.App.Writer)
	s.loadWalletSession(printer)
	defer s.dashboardDomain.Close()

	if err := s.connect(cctx); err != nil {
		return err
	}

	_, err := s.dashboardDomain.SetAmount(s.ctx, &model.SetMintAmountRequest{Amount: cctx.String("amount")})
	if err != nil {
		return err
	}

	if _, err := s.dashboardDomain.Mint(s.ctx, &model.MintRequest{}); err != nil {
		return err
	}

	select {
	case <-printer.idle:
	case <-s.ctx.Done():
		return s.ctx.Err()
	}

	card, err := s.dashboardDomain.MintCard(s.ctx, &model.GetMintCardRequest{})
	if err != nil {
		return err
	}

	fmt.Fprintf(cctx.App.Writer, "Balance: %s %s\n", card.Balance, card.Symbol)
	return nil
}

// statusPrinter writes every form status transition and closes idle once the
// form went back to idle after leaving it.
type statusPrinter struct {
	w io.Writer

	mutex    sync.Mutex
	lastLine string
	started  bool
	idleOnce sync.Once
	idle     chan struct{}
}

func newStatusPrinter(w io.Writer) *statusPrinter {
	return &statusPrinter{w: w, idle: make(chan struct{})}
}

func (p *statusPrinter) BroadcastByChannel(channel string, message []byte) {
	var card model.MintCard
	if err := json.Unmarshal(message, &card); err != nil || card.Form == nil {
		return
	}

	form := card.Form
	line := form.Status
	if form.StatusMessage != "" {
		line += ": " + form.StatusMessage
	}
	if form.ExplorerURL != "" {
		line += " " + form.ExplorerURL
	}

	p.mutex.Lock()
	defer p.mutex.Unlock()

	if line == p.lastLine {
		return
	}

	p.lastLine = line
	fmt.Fprintln(p.w, line)

	if form.Status != "idle" {
		p.started = true
	} else if p.started {
		p.idleOnce.Do(func() { close(p.idle) })
	}
}
