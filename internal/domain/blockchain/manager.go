package blockchain

import (
	"context"
	"sync"

	"github.com/clawdcat/mintboard/config"
	"github.com/clawdcat/mintboard/internal/domain/blockchain/eth"
	"github.com/clawdcat/mintboard/pkg/xcontext"
)

// BlockchainManager owns one gateway per configured chain.
type BlockchainManager struct {
	defaultChainID int64
	gateways       map[int64]Gateway
	ethClients     map[int64]eth.EthClient

	mutex sync.RWMutex
}

func NewBlockchainManager(defaultChainID int64) *BlockchainManager {
	return &BlockchainManager{
		defaultChainID: defaultChainID,
		gateways:       make(map[int64]Gateway),
		ethClients:     make(map[int64]eth.EthClient),
	}
}

// NewBlockchainManagerFromConfigs dials nothing; rpcs are checked lazily on
// the first request or by Start.
func NewBlockchainManagerFromConfigs(cfg config.Configs) *BlockchainManager {
	m := NewBlockchainManager(cfg.DefaultChainID)
	for _, chain := range cfg.Chains {
		client := eth.NewEthClient(chain, cfg.Mint.GasLimit)
		gateway := NewChainGateway(
			client,
			eth.NewEthDispatcher(client),
			eth.NewReceiptWaiter(client, cfg.Mint.ReceiptPollInterval, cfg.Mint.ReceiptTimeout),
		)

		m.ethClients[chain.ID] = client
		m.gateways[chain.ID] = gateway
	}

	return m
}

func (m *BlockchainManager) Start(ctx context.Context) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	for chainID, client := range m.ethClients {
		xcontext.Logger(ctx).Infof("Start rpc health check for chain %d", chainID)
		client.Start(ctx)
	}
}

func (m *BlockchainManager) AddGateway(chainID int64, gateway Gateway) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.gateways[chainID] = gateway
}

// Gateway returns nil only when neither chainID nor the default chain is
// configured.
func (m *BlockchainManager) Gateway(chainID int64) Gateway {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if gateway, ok := m.gateways[chainID]; ok {
		return gateway
	}

	return m.gateways[m.defaultChainID]
}
