package dashboard

import (
	"context"
	"math/big"
	"sync"

	"github.com/clawdcat/mintboard/internal/domain/blockchain"
	"github.com/clawdcat/mintboard/internal/domain/mintform"
	"github.com/clawdcat/mintboard/internal/domain/wallet"
	"github.com/clawdcat/mintboard/internal/model"
	"github.com/clawdcat/mintboard/pkg/ethutil"
	"github.com/clawdcat/mintboard/pkg/xcontext"
	ethcommon "github.com/ethereum/go-ethereum/common"
)

// session is the mint card mounted for one connected account and chain.
type session struct {
	account  wallet.Account
	contract ethcommon.Address
	gateway  blockchain.Gateway
	form     *mintform.Form
	tracker  *mintform.Tracker

	mutex    sync.Mutex
	decimals *uint8
	symbol   string
	balance  *big.Int
}

func (d *dashboard) mount(account wallet.Account) *session {
	cfg := xcontext.Configs(d.rootCtx)
	s := &session{
		account:  account,
		contract: d.addressBook.Resolve(account.ChainID),
		gateway:  d.gateways.Gateway(account.ChainID),
	}

	signer, _ := d.wallet.Signer()
	s.tracker = mintform.NewTracker(d.rootCtx, mintform.TrackerOptions{
		Writer:   s.gateway,
		Waiter:   s.gateway,
		Signer:   signer,
		Listener: &mintListener{dashboard: d, account: account},
		Apply:    func(flags mintform.Flags) { s.form.Apply(flags) },
	})

	s.form = mintform.New(mintform.Options{
		DefaultAmount:           cfg.Mint.DefaultAmount,
		SuccessResetDelay:       cfg.Mint.SuccessResetDelay,
		ErrorResetDelay:         cfg.Mint.ErrorResetDelay,
		InvalidAmountResetDelay: cfg.Mint.InvalidAmountResetDelay,
		Clock:                   d.clock,
		Writer:                  s.tracker,
		Refetch:                 func() { d.readBalance(d.rootCtx, s) },
		Observer:                func(view mintform.FormView) { d.broadcast(d.connectedCard(s, view)) },
		ExplorerTxURL: func(hash ethcommon.Hash) string {
			return d.addressBook.ExplorerTxURL(account.ChainID, hash)
		},
	})

	if d.addressBook.IsZero(account.ChainID) {
		xcontext.Logger(d.rootCtx).Warnf("Token contract of chain %d is the zero address", account.ChainID)
	}

	return s
}

// close stops the form before the tracker so a late receipt cannot touch the
// unmounted card.
func (s *session) close() {
	s.form.Close()
	s.tracker.Close()
}

func (d *dashboard) readDecimals(ctx context.Context, s *session) *uint8 {
	s.mutex.Lock()
	if s.decimals != nil {
		decimals := *s.decimals
		s.mutex.Unlock()
		return &decimals
	}
	s.mutex.Unlock()

	decimals, err := s.gateway.Decimals(ctx, s.contract)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot read decimals of %s on chain %d: %v",
			s.contract.Hex(), s.account.ChainID, err)
		return nil
	}

	s.mutex.Lock()
	s.decimals = &decimals
	s.mutex.Unlock()

	return &decimals
}

func (d *dashboard) readBalance(ctx context.Context, s *session) {
	balance, err := s.gateway.BalanceOf(ctx, s.contract, s.account.Address)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot read balance of %s: %v", s.account.ShortAddress(), err)
		balance = nil
	}

	s.mutex.Lock()
	s.balance = balance
	s.mutex.Unlock()
}

func (d *dashboard) readSymbol(ctx context.Context, s *session) {
	symbol, err := s.gateway.Symbol(ctx, s.contract)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot read symbol of %s on chain %d: %v",
			s.contract.Hex(), s.account.ChainID, err)
		symbol = ""
	}

	s.mutex.Lock()
	s.symbol = symbol
	s.mutex.Unlock()
}

// connectedCard renders the card from the last values read from the chain.
func (d *dashboard) connectedCard(s *session, view mintform.FormView) model.MintCard {
	s.mutex.Lock()
	balance, decimals, symbol := s.balance, s.decimals, s.symbol
	s.mutex.Unlock()

	if symbol == "" {
		symbol = DefaultSymbol
	}

	form := convertForm(view)
	return model.MintCard{
		Connected:    true,
		Address:      s.account.Address.Hex(),
		ShortAddress: s.account.ShortAddress(),
		ChainID:      s.account.ChainID,
		Balance:      formatAmount(balance, decimals),
		Symbol:       symbol,
		Form:         &form,
	}
}

func formatAmount(value *big.Int, decimals *uint8) string {
	if value == nil || decimals == nil {
		return "0"
	}

	return ethutil.FormatDisplay(ethutil.FormatUnits(value, *decimals))
}

func convertForm(view mintform.FormView) model.MintForm {
	return model.MintForm{
		Amount:        view.Amount,
		Status:        view.Status.String(),
		ErrorMessage:  view.ErrorMessage,
		StatusMessage: view.StatusMessage,
		TxHash:        view.TxHash,
		ExplorerURL:   view.ExplorerURL,
		CanSubmit:     view.CanSubmit,
		ButtonLabel:   view.ButtonLabel,
		InputDisabled: view.InputDisabled,
	}
}
