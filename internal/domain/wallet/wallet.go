package wallet

import (
	"context"
	"crypto/ecdsa"
	"strings"
	"sync"

	"github.com/clawdcat/mintboard/config"
	"github.com/clawdcat/mintboard/pkg/errorx"
	"github.com/clawdcat/mintboard/pkg/ethutil"
	"github.com/clawdcat/mintboard/pkg/xcontext"
	"github.com/ethereum/go-ethereum/common"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
)

type Account struct {
	Connected bool
	Address   common.Address
	ChainID   int64
}

func (a Account) ShortAddress() string {
	if !a.Connected {
		return ""
	}

	return ethutil.TruncateAddress(a.Address)
}

type Provider interface {
	Account() Account
	Connect(ctx context.Context, chainID int64) (Account, error)
	Disconnect()
	SwitchChain(chainID int64) (Account, error)
	Signer() (*ecdsa.PrivateKey, bool)
	Subscribe(f func(Account))
}

// KeyWallet is a wallet session backed by a local signing key.
type KeyWallet struct {
	cfg config.WalletConfigs

	mutex       sync.RWMutex
	key         *ecdsa.PrivateKey
	account     Account
	subscribers []func(Account)
}

func NewKeyWallet(cfg config.WalletConfigs) *KeyWallet {
	return &KeyWallet{cfg: cfg}
}

func (w *KeyWallet) Account() Account {
	w.mutex.RLock()
	defer w.mutex.RUnlock()

	return w.account
}

func (w *KeyWallet) Connect(ctx context.Context, chainID int64) (Account, error) {
	key, err := w.loadKey()
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot load wallet key: %v", err)
		return Account{}, err
	}

	w.mutex.Lock()
	w.key = key
	w.account = Account{
		Connected: true,
		Address:   ethcrypto.PubkeyToAddress(key.PublicKey),
		ChainID:   chainID,
	}
	account := w.account
	w.mutex.Unlock()

	xcontext.Logger(ctx).Infof("Wallet %s connected on chain %d", account.ShortAddress(), chainID)
	w.notify(account)

	return account, nil
}

func (w *KeyWallet) loadKey() (*ecdsa.PrivateKey, error) {
	if w.cfg.PrivateKey != "" {
		key, err := ethcrypto.HexToECDSA(strings.TrimPrefix(w.cfg.PrivateKey, "0x"))
		if err != nil {
			return nil, errorx.New(errorx.WalletNotConnected, "Invalid private key")
		}

		return key, nil
	}

	if w.cfg.SecretKey != "" {
		key, err := ethutil.GeneratePrivateKey([]byte(w.cfg.SecretKey), []byte(w.cfg.Nonce))
		if err != nil {
			return nil, errorx.New(errorx.WalletNotConnected, "Cannot derive wallet key")
		}

		return key, nil
	}

	return nil, errorx.New(errorx.WalletNotConnected, "No wallet key configured")
}

func (w *KeyWallet) Disconnect() {
	w.mutex.Lock()
	wasConnected := w.account.Connected
	w.key = nil
	w.account = Account{}
	w.mutex.Unlock()

	if wasConnected {
		w.notify(Account{})
	}
}

func (w *KeyWallet) SwitchChain(chainID int64) (Account, error) {
	w.mutex.Lock()
	if !w.account.Connected {
		w.mutex.Unlock()
		return Account{}, errorx.New(errorx.WalletNotConnected, "Wallet is not connected")
	}

	w.account.ChainID = chainID
	account := w.account
	w.mutex.Unlock()

	w.notify(account)
	return account, nil
}

func (w *KeyWallet) Signer() (*ecdsa.PrivateKey, bool) {
	w.mutex.RLock()
	defer w.mutex.RUnlock()

	return w.key, w.key != nil
}

// Subscribe registers f to be called after every account change.
func (w *KeyWallet) Subscribe(f func(Account)) {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	w.subscribers = append(w.subscribers, f)
}

func (w *KeyWallet) notify(account Account) {
	w.mutex.RLock()
	subscribers := make([]func(Account), len(w.subscribers))
	copy(subscribers, w.subscribers)
	w.mutex.RUnlock()

	for _, f := range subscribers {
		f(account)
	}
}
