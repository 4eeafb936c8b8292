package dashboard

import (
	"context"
	"encoding/json"
	"math/big"
	"sync"

	"github.com/benbjohnson/clock"
	"github.com/clawdcat/mintboard/internal/domain/blockchain"
	"github.com/clawdcat/mintboard/internal/domain/mintform"
	"github.com/clawdcat/mintboard/internal/domain/wallet"
	"github.com/clawdcat/mintboard/internal/model"
	"github.com/clawdcat/mintboard/internal/repository"
	"github.com/clawdcat/mintboard/pkg/errorx"
	"github.com/clawdcat/mintboard/pkg/ethutil"
	"github.com/clawdcat/mintboard/pkg/xcontext"
	"github.com/clawdcat/mintboard/pkg/xredis"
	ethcommon "github.com/ethereum/go-ethereum/common"
)

const (
	MintCardChannel = "mintcard"

	DefaultSymbol      = "ClawdCat"
	StatusActive       = "Active"
	ConnectPromptTitle = "Connect Your Wallet"
	ConnectPrompt      = "Connect your wallet to view your balance and mint tokens"

	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

type Broadcaster interface {
	BroadcastByChannel(channel string, message []byte)
}

type Dashboard interface {
	GetConfig(context.Context, *model.GetConfigRequest) (*model.GetConfigResponse, error)
	Navbar(context.Context, *model.GetNavbarRequest) (*model.GetNavbarResponse, error)
	TokenStats(context.Context, *model.GetTokenStatsRequest) (*model.GetTokenStatsResponse, error)
	MintCard(context.Context, *model.GetMintCardRequest) (*model.GetMintCardResponse, error)
	History(context.Context, *model.GetMintHistoryRequest) (*model.GetMintHistoryResponse, error)

	Connect(context.Context, *model.ConnectWalletRequest) (*model.ConnectWalletResponse, error)
	Disconnect(context.Context, *model.DisconnectWalletRequest) (*model.DisconnectWalletResponse, error)
	SwitchChain(context.Context, *model.SwitchChainRequest) (*model.SwitchChainResponse, error)
	SetAmount(context.Context, *model.SetMintAmountRequest) (*model.SetMintAmountResponse, error)
	Mint(context.Context, *model.MintRequest) (*model.MintResponse, error)

	// ResumeTracked settles the transactions a previous run left pending.
	ResumeTracked(context.Context) error

	// Wait blocks until the mint of the current session, if any, is settled.
	Wait()
	Close()
}

type dashboard struct {
	// rootCtx outlives requests and carries the logger, configs and db used by
	// background mints.
	rootCtx context.Context

	wallet      wallet.Provider
	addressBook *blockchain.AddressBook
	gateways    blockchain.GatewayProvider
	mintTxRepo  repository.MintTransactionRepository
	trackedTx   xredis.Client
	broadcaster Broadcaster
	clock       clock.Clock

	mutex   sync.Mutex
	session *session
}

func NewDashboard(
	rootCtx context.Context,
	walletProvider wallet.Provider,
	addressBook *blockchain.AddressBook,
	gateways blockchain.GatewayProvider,
	mintTxRepo repository.MintTransactionRepository,
	trackedTx xredis.Client,
	broadcaster Broadcaster,
	clk clock.Clock,
) Dashboard {
	if clk == nil {
		clk = clock.New()
	}

	d := &dashboard{
		rootCtx:     rootCtx,
		wallet:      walletProvider,
		addressBook: addressBook,
		gateways:    gateways,
		mintTxRepo:  mintTxRepo,
		trackedTx:   trackedTx,
		broadcaster: broadcaster,
		clock:       clk,
	}

	walletProvider.Subscribe(d.onAccountChanged)
	if account := walletProvider.Account(); account.Connected {
		d.onAccountChanged(account)
	}

	return d
}

// onAccountChanged remounts the mint card for every account or chain change.
func (d *dashboard) onAccountChanged(account wallet.Account) {
	var next *session
	if account.Connected {
		next = d.mount(account)
	}

	d.mutex.Lock()
	prev := d.session
	d.session = next
	d.mutex.Unlock()

	if prev != nil {
		prev.close()
	}

	if next == nil {
		d.broadcast(disconnectedCard())
	}
}

func (d *dashboard) current() *session {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	return d.session
}

func (d *dashboard) GetConfig(
	ctx context.Context, req *model.GetConfigRequest,
) (*model.GetConfigResponse, error) {
	cfg := xcontext.Configs(d.rootCtx)
	resp := &model.GetConfigResponse{
		AppName:        cfg.Wallet.AppName,
		ProjectID:      cfg.Wallet.ProjectID,
		DefaultChainID: d.addressBook.DefaultChainID(),
		Page:           model.ConvertPage(cfg.Page),
	}

	for _, chain := range cfg.Chains {
		resp.Chains = append(resp.Chains, model.Chain{
			ID:              chain.ID,
			Name:            d.addressBook.ChainName(chain.ID),
			ContractAddress: d.addressBook.Resolve(chain.ID).Hex(),
			ExplorerURL:     chain.ExplorerURL,
		})
	}

	return resp, nil
}

func (d *dashboard) Navbar(
	ctx context.Context, req *model.GetNavbarRequest,
) (*model.GetNavbarResponse, error) {
	return &model.GetNavbarResponse{Navbar: d.navbar(d.wallet.Account())}, nil
}

func (d *dashboard) navbar(account wallet.Account) model.Navbar {
	cfg := xcontext.Configs(d.rootCtx)
	navbar := model.Navbar{
		AppName:   cfg.Wallet.AppName,
		ProjectID: cfg.Wallet.ProjectID,
		Connected: account.Connected,
	}

	if account.Connected {
		navbar.Address = account.Address.Hex()
		navbar.ShortAddress = account.ShortAddress()
		navbar.ChainID = account.ChainID
	}

	return navbar
}

// TokenStats issues no chain read while the wallet is disconnected.
func (d *dashboard) TokenStats(
	ctx context.Context, req *model.GetTokenStatsRequest,
) (*model.GetTokenStatsResponse, error) {
	s := d.current()
	if s == nil {
		return tokenStats(d.addressBook.ChainName(0), "", "0"), nil
	}

	var totalSupply *big.Int
	var decimals *uint8
	var symbol string
	if s.gateway != nil {
		var err error
		totalSupply, err = s.gateway.TotalSupply(ctx, s.contract)
		if err != nil {
			xcontext.Logger(ctx).Warnf("Cannot read total supply on chain %d: %v", s.account.ChainID, err)
			totalSupply = nil
		}

		decimals = d.readDecimals(ctx, s)
		d.readSymbol(ctx, s)

		s.mutex.Lock()
		symbol = s.symbol
		s.mutex.Unlock()
	}

	supply := "0"
	if totalSupply != nil && decimals != nil {
		supply = ethutil.FormatUnits(totalSupply, *decimals)
	}

	return tokenStats(d.addressBook.ChainName(s.account.ChainID), symbol, supply), nil
}

func tokenStats(network, symbol, supply string) *model.GetTokenStatsResponse {
	if symbol == "" {
		symbol = DefaultSymbol
	}

	return &model.GetTokenStatsResponse{
		Stats: []model.TokenStat{
			{Label: "Name", Value: symbol},
			{Label: "Network", Value: network},
			{Label: "Status", Value: StatusActive},
		},
		TotalSupply: supply,
	}
}

// MintCard issues no chain read while the wallet is disconnected.
func (d *dashboard) MintCard(
	ctx context.Context, req *model.GetMintCardRequest,
) (*model.GetMintCardResponse, error) {
	s := d.current()
	if s == nil {
		return &model.GetMintCardResponse{MintCard: disconnectedCard()}, nil
	}

	if s.gateway != nil {
		d.readDecimals(ctx, s)
		d.readBalance(ctx, s)
		d.readSymbol(ctx, s)
	}

	return &model.GetMintCardResponse{MintCard: d.connectedCard(s, s.form.View())}, nil
}

func disconnectedCard() model.MintCard {
	return model.MintCard{
		Connected:   false,
		PromptTitle: ConnectPromptTitle,
		Prompt:      ConnectPrompt,
	}
}

func (d *dashboard) History(
	ctx context.Context, req *model.GetMintHistoryRequest,
) (*model.GetMintHistoryResponse, error) {
	s := d.current()
	if s == nil {
		return nil, errorx.New(errorx.WalletNotConnected, "Please connect your wallet first")
	}

	if req.Limit < 0 {
		return nil, errorx.New(errorx.BadRequest, "Limit must not be negative")
	}

	limit := req.Limit
	if limit == 0 {
		limit = defaultHistoryLimit
	}

	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	txs, err := d.mintTxRepo.GetListByAccount(ctx, s.account.Address.Hex(), limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get mint history: %v", err)
		return nil, errorx.Unknown
	}

	resp := &model.GetMintHistoryResponse{Transactions: []model.MintTransaction{}}
	for i := range txs {
		explorerURL := d.addressBook.ExplorerTxURL(txs[i].ChainID, ethcommon.HexToHash(txs[i].TxHash))
		resp.Transactions = append(resp.Transactions, model.ConvertMintTransaction(&txs[i], explorerURL))
	}

	return resp, nil
}

func (d *dashboard) Connect(
	ctx context.Context, req *model.ConnectWalletRequest,
) (*model.ConnectWalletResponse, error) {
	chainID := req.ChainID
	if chainID == 0 {
		chainID = d.addressBook.DefaultChainID()
	}

	if err := d.checkChain(ctx, chainID); err != nil {
		return nil, err
	}

	account, err := d.wallet.Connect(ctx, chainID)
	if err != nil {
		return nil, err
	}

	return &model.ConnectWalletResponse{Navbar: d.navbar(account)}, nil
}

func (d *dashboard) Disconnect(
	ctx context.Context, req *model.DisconnectWalletRequest,
) (*model.DisconnectWalletResponse, error) {
	d.wallet.Disconnect()
	return &model.DisconnectWalletResponse{}, nil
}

func (d *dashboard) SwitchChain(
	ctx context.Context, req *model.SwitchChainRequest,
) (*model.SwitchChainResponse, error) {
	if err := d.checkChain(ctx, req.ChainID); err != nil {
		return nil, err
	}

	account, err := d.wallet.SwitchChain(req.ChainID)
	if err != nil {
		return nil, err
	}

	return &model.SwitchChainResponse{Navbar: d.navbar(account)}, nil
}

// checkChain only rejects ids that cannot be a chain. Unknown chains are
// served by the default chain's contract.
func (d *dashboard) checkChain(ctx context.Context, chainID int64) error {
	if chainID <= 0 {
		return errorx.New(errorx.UnsupportedChain, "Invalid chain id %d", chainID)
	}

	if d.gateways.Gateway(chainID) == nil {
		return errorx.New(errorx.ContractUnavailable, "No rpc configured for chain %d", chainID)
	}

	if !d.addressBook.Known(chainID) {
		xcontext.Logger(ctx).Warnf("Chain %d is not configured, use chain %d contract",
			chainID, d.addressBook.DefaultChainID())
	}

	return nil
}

func (d *dashboard) SetAmount(
	ctx context.Context, req *model.SetMintAmountRequest,
) (*model.SetMintAmountResponse, error) {
	s := d.current()
	if s == nil {
		return nil, errorx.New(errorx.WalletNotConnected, "Please connect your wallet first")
	}

	s.form.SetAmount(req.Amount)
	return &model.SetMintAmountResponse{Form: convertForm(s.form.View())}, nil
}

func (d *dashboard) Mint(ctx context.Context, req *model.MintRequest) (*model.MintResponse, error) {
	s := d.current()
	if s == nil {
		return nil, errorx.New(errorx.WalletNotConnected, "Please connect your wallet first")
	}

	view := s.form.View()
	if view.Status == mintform.StatusPending {
		return nil, errorx.New(errorx.MintInProgress, "A mint transaction is already pending")
	}

	if !view.CanSubmit {
		return nil, errorx.New(errorx.InvalidAmount, "Amount must be a positive number")
	}

	if s.gateway == nil {
		return nil, errorx.New(errorx.ContractUnavailable, "No rpc configured for chain %d", s.account.ChainID)
	}

	decimals := d.readDecimals(ctx, s)
	if decimals == nil {
		return nil, errorx.New(errorx.ContractUnavailable, "Token data is not loaded yet")
	}

	contract := s.contract
	if !s.form.Submit(ctx, decimals, &contract) {
		xcontext.Logger(ctx).Debugf("Mint of %q was not submitted", view.Amount)
	}

	return &model.MintResponse{Form: convertForm(s.form.View())}, nil
}

func (d *dashboard) Wait() {
	if s := d.current(); s != nil {
		s.tracker.Wait()
	}
}

func (d *dashboard) Close() {
	d.mutex.Lock()
	s := d.session
	d.session = nil
	d.mutex.Unlock()

	if s != nil {
		s.close()
	}
}

func (d *dashboard) broadcast(card model.MintCard) {
	if d.broadcaster == nil {
		return
	}

	b, err := json.Marshal(card)
	if err != nil {
		xcontext.Logger(d.rootCtx).Errorf("Cannot marshal mint card: %v", err)
		return
	}

	d.broadcaster.BroadcastByChannel(MintCardChannel, b)
}
