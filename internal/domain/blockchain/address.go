package blockchain

import (
	"fmt"
	"strings"

	"github.com/clawdcat/mintboard/config"
	"github.com/ethereum/go-ethereum/common"
)

// AddressBook maps chain ids to the deployed token contract. Unknown chains
// resolve to the default chain entry.
type AddressBook struct {
	chains         map[int64]config.ChainConfigs
	defaultChainID int64
}

func NewAddressBook(chains []config.ChainConfigs, defaultChainID int64) *AddressBook {
	book := &AddressBook{
		chains:         make(map[int64]config.ChainConfigs, len(chains)),
		defaultChainID: defaultChainID,
	}

	for _, chain := range chains {
		book.chains[chain.ID] = chain
	}

	return book
}

func (b *AddressBook) chain(chainID int64) config.ChainConfigs {
	if chain, ok := b.chains[chainID]; ok {
		return chain
	}

	return b.chains[b.defaultChainID]
}

// Known reports whether chainID has its own entry.
func (b *AddressBook) Known(chainID int64) bool {
	_, ok := b.chains[chainID]
	return ok
}

func (b *AddressBook) DefaultChainID() int64 {
	return b.defaultChainID
}

func (b *AddressBook) Resolve(chainID int64) common.Address {
	return common.HexToAddress(b.chain(chainID).ContractAddress)
}

func (b *AddressBook) IsZero(chainID int64) bool {
	return b.Resolve(chainID) == (common.Address{})
}

// ChainName is the network label shown on the stats panel.
func (b *AddressBook) ChainName(chainID int64) string {
	switch chainID {
	case config.EthereumChainID:
		return "Ethereum"
	case config.BaseChainID:
		return "Base"
	}

	if chain, ok := b.chains[chainID]; ok && chain.Name != "" {
		return chain.Name
	}

	return "Base"
}

func (b *AddressBook) ExplorerTxURL(chainID int64, hash common.Hash) string {
	explorer := strings.TrimSuffix(b.chain(chainID).ExplorerURL, "/")
	if explorer == "" {
		return ""
	}

	return fmt.Sprintf("%s/tx/%s", explorer, hash.Hex())
}
