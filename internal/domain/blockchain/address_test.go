package blockchain

import (
	"testing"

	"github.com/clawdcat/mintboard/config"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

const (
	baseToken     = "0x1111111111111111111111111111111111111111"
	ethereumToken = "0x2222222222222222222222222222222222222222"
)

func newTestBook() *AddressBook {
	chains := config.Default().Chains
	for i := range chains {
		switch chains[i].ID {
		case config.BaseChainID:
			chains[i].ContractAddress = baseToken
		case config.EthereumChainID:
			chains[i].ContractAddress = ethereumToken
		}
	}

	return NewAddressBook(chains, config.BaseChainID)
}

func Test_AddressBook_Resolve(t *testing.T) {
	book := newTestBook()

	require.Equal(t, common.HexToAddress(ethereumToken), book.Resolve(config.EthereumChainID))
	require.Equal(t, common.HexToAddress(baseToken), book.Resolve(config.BaseChainID))

	// Unknown chains behave like the default chain.
	for _, id := range []int64{0, -1, 5, 10, 137, 84532} {
		require.Equal(t, common.HexToAddress(baseToken), book.Resolve(id))
		require.False(t, book.Known(id))
	}
}

func Test_AddressBook_DefaultsAreZero(t *testing.T) {
	book := NewAddressBook(config.Default().Chains, config.BaseChainID)

	require.True(t, book.IsZero(config.EthereumChainID))
	require.True(t, book.IsZero(config.BaseChainID))
	require.True(t, book.IsZero(42))
	require.Equal(t, common.Address{}, book.Resolve(42))
}

func Test_AddressBook_ChainName(t *testing.T) {
	book := newTestBook()

	require.Equal(t, "Ethereum", book.ChainName(config.EthereumChainID))
	require.Equal(t, "Base", book.ChainName(config.BaseChainID))
	require.Equal(t, "Base", book.ChainName(999))
}

func Test_AddressBook_ExplorerTxURL(t *testing.T) {
	book := newTestBook()
	hash := common.HexToHash("0xabc")

	require.Equal(t, "https://etherscan.io/tx/"+hash.Hex(), book.ExplorerTxURL(config.EthereumChainID, hash))
	require.Equal(t, "https://basescan.org/tx/"+hash.Hex(), book.ExplorerTxURL(7, hash))
}
