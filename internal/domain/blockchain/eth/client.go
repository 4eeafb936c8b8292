package eth

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/clawdcat/mintboard/config"
	"github.com/clawdcat/mintboard/contract/mintable_token"
	"github.com/clawdcat/mintboard/internal/domain/blockchain/types"
	"github.com/clawdcat/mintboard/pkg/xcontext"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"golang.org/x/exp/slices"
)

const (
	RpcTimeOut      = time.Second * 5
	MaxShuffleTimes = 20

	// Nodes further than this from the median height are considered lagging.
	maxHeightDistance = 5
)

// A wrapper around eth.client so that we can mock in tests.
type EthClient interface {
	Start(ctx context.Context)

	ChainID() int64
	BlockNumber(ctx context.Context) (uint64, error)
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*ethtypes.Receipt, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SendTransaction(ctx context.Context, tx *ethtypes.Transaction) error
	BalanceAt(ctx context.Context, from common.Address, block *big.Int) (*big.Int, error)
	GetSignedMintTx(ctx context.Context, key *ecdsa.PrivateKey, token common.Address, amount *big.Int) (*ethtypes.Transaction, error)
	TokenInfo(ctx context.Context, token common.Address) (types.TokenInfo, error)
	ERC20Decimals(ctx context.Context, token common.Address) (uint8, error)
	ERC20Symbol(ctx context.Context, token common.Address) (string, error)
	ERC20TotalSupply(ctx context.Context, token common.Address) (*big.Int, error)
	ERC20BalanceOf(ctx context.Context, token, account common.Address) (*big.Int, error)
}

// Default implementation of ETH client. Since eth RPC often unstable, this client maintains a list
// of different RPC to connect to and uses the ones that is stable to send requests.
type defaultEthClient struct {
	chain      string
	chainID    *big.Int
	useEip1559 bool
	gasLimit   uint64
	allRpcs    []string

	useExternalRpcs bool
	chainlistURL    string

	clients   []*ethclient.Client
	healthies []bool
	rpcs      []string

	mutex sync.RWMutex

	// refreshMutex serialises rpc refreshes so clients dialled by one refresh
	// are always closed by the next.
	refreshMutex sync.Mutex
}

func NewEthClient(chain config.ChainConfigs, gasLimit uint64) EthClient {
	return &defaultEthClient{
		chain:      chain.Name,
		chainID:    big.NewInt(chain.ID),
		useEip1559: chain.UseEip1559,
		gasLimit:   gasLimit,
		allRpcs:    chain.Rpcs,

		useExternalRpcs: chain.UseExternalRpcs,
		chainlistURL:    DefaultChainlistURL,
	}
}

func (c *defaultEthClient) ChainID() int64 {
	return c.chainID.Int64()
}

func (c *defaultEthClient) Start(ctx context.Context) {
	go c.loopCheck(ctx)
}

func (c *defaultEthClient) loopCheck(ctx context.Context) {
	frequency := xcontext.Configs(ctx).Mint.RefreshRpcFrequency
	if frequency <= 0 {
		return
	}

	ticker := time.NewTicker(frequency)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			c.closeClients()
			return
		case <-ticker.C:
			c.updateRpcs(ctx)
		}
	}
}

func (c *defaultEthClient) closeClients() {
	c.refreshMutex.Lock()
	defer c.refreshMutex.Unlock()

	c.mutex.Lock()
	defer c.mutex.Unlock()

	for _, client := range c.clients {
		client.Close()
	}

	c.clients, c.healthies, c.rpcs = nil, nil, nil
}

func (c *defaultEthClient) updateRpcs(ctx context.Context) {
	c.refreshMutex.Lock()
	defer c.refreshMutex.Unlock()

	c.refreshRpcs(ctx)
}

// ensureRpcs refreshes the rpcs only when no refresh has produced clients
// yet. Concurrent callers wait for the first refresh instead of redoing it.
func (c *defaultEthClient) ensureRpcs(ctx context.Context) {
	c.refreshMutex.Lock()
	defer c.refreshMutex.Unlock()

	c.mutex.RLock()
	empty := len(c.clients) == 0
	c.mutex.RUnlock()

	if empty {
		c.refreshRpcs(ctx)
	}
}

// refreshRpcs must be called with refreshMutex held.
func (c *defaultEthClient) refreshRpcs(ctx context.Context) {
	c.mutex.RLock()
	oldClients := c.clients
	c.mutex.RUnlock()

	allRpcs := append([]string{}, c.allRpcs...)
	if c.useExternalRpcs {
		externals, err := FetchChainlistRpcs(ctx, c.chainlistURL, c.ChainID())
		if err != nil {
			xcontext.Logger(ctx).Errorf("Failed to get external rpc info: %v", err)
		}

		for _, rpc := range externals {
			if !slices.Contains(allRpcs, rpc) {
				allRpcs = append(allRpcs, rpc)
			}
		}
	}

	rpcs, clients, healthies := c.getRpcsHealthiness(ctx, allRpcs)

	// Close all the old clients
	c.mutex.Lock()
	for _, client := range oldClients {
		client.Close()
	}

	c.rpcs, c.clients, c.healthies = rpcs, clients, healthies
	c.mutex.Unlock()
}

func (c *defaultEthClient) getRpcsHealthiness(ctx context.Context, allRpcs []string) ([]string, []*ethclient.Client, []bool) {
	clients := make([]*ethclient.Client, 0)
	rpcs := make([]string, 0)
	healthies := make([]bool, 0)

	type healthyNode struct {
		client *ethclient.Client
		rpc    string
		height uint64
	}

	nodes := make([]*healthyNode, 0)
	for _, rpc := range allRpcs {
		client, err := ethclient.DialContext(ctx, rpc)
		if err != nil {
			xcontext.Logger(ctx).Warnf("Cannot dial rpc %s of chain %s: %v", rpc, c.chain, err)
			continue
		}

		timeoutCtx, cancel := context.WithTimeout(ctx, RpcTimeOut)
		height, err := client.BlockNumber(timeoutCtx)
		cancel()

		if err != nil {
			xcontext.Logger(ctx).Warnf("Rpc %s of chain %s is not responding: %v", rpc, c.chain, err)
			client.Close()
			continue
		}

		nodes = append(nodes, &healthyNode{client: client, rpc: rpc, height: height})
	}

	if len(nodes) == 0 {
		return rpcs, clients, healthies
	}

	// Sorts all nodes by height
	sort.SliceStable(nodes, func(i, j int) bool {
		return nodes[i].height > nodes[j].height
	})

	// Only select some nodes within a certain height from the median
	height := nodes[len(nodes)/2].height
	for _, node := range nodes {
		if heightDistance(node.height, height) < maxHeightDistance {
			rpcs = append(rpcs, node.rpc)
			clients = append(clients, node.client)
			healthies = append(healthies, true)
		} else {
			node.client.Close()
		}
	}

	xcontext.Logger(ctx).Debugf("Healthy rpcs for chain %s: %v", c.chain, rpcs)

	return rpcs, clients, healthies
}

func heightDistance(a, b uint64) uint64 {
	if a > b {
		return a - b
	}

	return b - a
}

func (c *defaultEthClient) shuffle() ([]*ethclient.Client, []bool, []string) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	n := len(c.clients)
	if n == 0 {
		return nil, nil, nil
	}

	clients := make([]*ethclient.Client, n)
	healthy := make([]bool, n)
	rpcs := make([]string, n)

	copy(clients, c.clients)
	copy(healthy, c.healthies)
	copy(rpcs, c.rpcs)

	for i := 0; i < MaxShuffleTimes; i++ {
		x := rand.Intn(n)
		y := rand.Intn(n)

		clients[x], clients[y] = clients[y], clients[x]
		healthy[x], healthy[y] = healthy[y], healthy[x]
		rpcs[x], rpcs[y] = rpcs[y], rpcs[x]
	}

	return clients, healthy, rpcs
}

func (c *defaultEthClient) getHealthyClient(ctx context.Context) (*ethclient.Client, string) {
	c.mutex.RLock()
	empty := len(c.clients) == 0
	c.mutex.RUnlock()

	if empty {
		c.ensureRpcs(ctx)
	}

	// Shuffle rpcs so that we will use different healthy rpc
	clients, healthies, rpcs := c.shuffle()
	for i, healthy := range healthies {
		if healthy {
			return clients[i], rpcs[i]
		}
	}

	return nil, ""
}

func (c *defaultEthClient) execute(ctx context.Context, f func(client *ethclient.Client, rpc string) (any, error)) (any, error) {
	client, rpc := c.getHealthyClient(ctx)
	if client == nil {
		return nil, fmt.Errorf("no healthy RPC for chain %s", c.chain)
	}

	return f(client, rpc)
}

func (c *defaultEthClient) BlockNumber(ctx context.Context) (uint64, error) {
	num, err := c.execute(ctx, func(client *ethclient.Client, rpc string) (any, error) {
		return client.BlockNumber(ctx)
	})

	if err != nil {
		return 0, err
	}

	return num.(uint64), nil
}

func (c *defaultEthClient) TransactionReceipt(ctx context.Context, txHash common.Hash) (*ethtypes.Receipt, error) {
	receipt, err := c.execute(ctx, func(client *ethclient.Client, rpc string) (any, error) {
		return client.TransactionReceipt(ctx, txHash)
	})

	if err != nil {
		return nil, err
	}

	return receipt.(*ethtypes.Receipt), nil
}

func (c *defaultEthClient) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	gas, err := c.execute(ctx, func(client *ethclient.Client, rpc string) (any, error) {
		return client.SuggestGasPrice(ctx)
	})

	if err != nil {
		return nil, err
	}

	return gas.(*big.Int), nil
}

func (c *defaultEthClient) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	nonce, err := c.execute(ctx, func(client *ethclient.Client, rpc string) (any, error) {
		return client.PendingNonceAt(ctx, account)
	})

	if err != nil {
		return 0, err
	}

	return nonce.(uint64), nil
}

func (c *defaultEthClient) SendTransaction(ctx context.Context, tx *ethtypes.Transaction) error {
	_, err := c.execute(ctx, func(client *ethclient.Client, rpc string) (any, error) {
		return nil, client.SendTransaction(ctx, tx)
	})

	return err
}

func (c *defaultEthClient) BalanceAt(ctx context.Context, from common.Address, block *big.Int) (*big.Int, error) {
	balance, err := c.execute(ctx, func(client *ethclient.Client, rpc string) (any, error) {
		balance, err := client.BalanceAt(ctx, from, block)
		if err == nil && balance != nil && balance.Sign() == 0 {
			xcontext.Logger(ctx).Warnf("Balance of %s is 0 using URL %s", from, rpc)
		}

		return balance, err
	})

	if err != nil {
		return nil, err
	}

	return balance.(*big.Int), nil
}

// GetSignedMintTx builds and signs a mint(amount) call without sending it.
// Nonce and fees are filled from the selected rpc.
func (c *defaultEthClient) GetSignedMintTx(
	ctx context.Context,
	key *ecdsa.PrivateKey,
	token common.Address,
	amount *big.Int,
) (*ethtypes.Transaction, error) {
	signedTx, err := c.execute(ctx, func(client *ethclient.Client, rpc string) (any, error) {
		tokenInstance, err := mintable_token.NewMintableTokenTransactor(token, client)
		if err != nil {
			return nil, err
		}

		return tokenInstance.Mint(c.TransactionOpts(ctx, key, common.Big0), amount)
	})
	if err != nil {
		return nil, err
	}

	return signedTx.(*ethtypes.Transaction), nil
}

func (c *defaultEthClient) TransactionOpts(
	ctx context.Context, fromPrivateKey *ecdsa.PrivateKey, value *big.Int,
) *bind.TransactOpts {
	var signer ethtypes.Signer = ethtypes.NewEIP155Signer(c.chainID)
	if c.useEip1559 {
		signer = ethtypes.LatestSignerForChainID(c.chainID)
	}

	opts := &bind.TransactOpts{
		From: crypto.PubkeyToAddress(fromPrivateKey.PublicKey),
		Signer: func(a common.Address, t *ethtypes.Transaction) (*ethtypes.Transaction, error) {
			return ethtypes.SignTx(t, signer, fromPrivateKey)
		},
		Value:    value,
		GasLimit: c.gasLimit,
		Context:  ctx,
		NoSend:   true,
	}

	if !c.useEip1559 {
		// Force a legacy transaction, bind picks dynamic fees whenever the
		// header carries a base fee.
		gasPrice, err := c.SuggestGasPrice(ctx)
		if err == nil {
			opts.GasPrice = gasPrice
		}
	}

	return opts
}

func (c *defaultEthClient) callToken(
	ctx context.Context,
	token common.Address,
	f func(caller *mintable_token.MintableTokenCaller, opts *bind.CallOpts) (any, error),
) (any, error) {
	return c.execute(ctx, func(client *ethclient.Client, rpc string) (any, error) {
		caller, err := mintable_token.NewMintableTokenCaller(token, client)
		if err != nil {
			return nil, err
		}

		return f(caller, &bind.CallOpts{Context: ctx})
	})
}

func (c *defaultEthClient) TokenInfo(ctx context.Context, token common.Address) (types.TokenInfo, error) {
	info, err := c.callToken(ctx, token, func(caller *mintable_token.MintableTokenCaller, opts *bind.CallOpts) (any, error) {
		name, err := caller.Name(opts)
		if err != nil {
			return nil, err
		}

		symbol, err := caller.Symbol(opts)
		if err != nil {
			return nil, err
		}

		decimals, err := caller.Decimals(opts)
		if err != nil {
			return nil, err
		}

		totalSupply, err := caller.TotalSupply(opts)
		if err != nil {
			return nil, err
		}

		return types.TokenInfo{
			Name:        name,
			Symbol:      symbol,
			Decimals:    decimals,
			TotalSupply: totalSupply,
		}, nil
	})

	if err != nil {
		return types.TokenInfo{}, err
	}

	return info.(types.TokenInfo), nil
}

func (c *defaultEthClient) ERC20Decimals(ctx context.Context, token common.Address) (uint8, error) {
	decimals, err := c.callToken(ctx, token, func(caller *mintable_token.MintableTokenCaller, opts *bind.CallOpts) (any, error) {
		return caller.Decimals(opts)
	})

	if err != nil {
		return 0, err
	}

	return decimals.(uint8), nil
}

func (c *defaultEthClient) ERC20Symbol(ctx context.Context, token common.Address) (string, error) {
	symbol, err := c.callToken(ctx, token, func(caller *mintable_token.MintableTokenCaller, opts *bind.CallOpts) (any, error) {
		return caller.Symbol(opts)
	})

	if err != nil {
		return "", err
	}

	return symbol.(string), nil
}

func (c *defaultEthClient) ERC20TotalSupply(ctx context.Context, token common.Address) (*big.Int, error) {
	supply, err := c.callToken(ctx, token, func(caller *mintable_token.MintableTokenCaller, opts *bind.CallOpts) (any, error) {
		return caller.TotalSupply(opts)
	})

	if err != nil {
		return nil, err
	}

	return supply.(*big.Int), nil
}

func (c *defaultEthClient) ERC20BalanceOf(ctx context.Context, token, account common.Address) (*big.Int, error) {
	balance, err := c.callToken(ctx, token, func(caller *mintable_token.MintableTokenCaller, opts *bind.CallOpts) (any, error) {
		return caller.BalanceOf(opts, account)
	})

	if err != nil {
		return nil, err
	}

	return balance.(*big.Int), nil
}
