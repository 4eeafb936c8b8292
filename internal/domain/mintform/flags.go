package mintform

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Flags is the state of the current write and its receipt wait.
type Flags struct {
	WritePending bool
	Confirming   bool
	Confirmed    bool
	WriteErr     error
	Hash         common.Hash
}

func (f Flags) equal(other Flags) bool {
	return f.WritePending == other.WritePending &&
		f.Confirming == other.Confirming &&
		f.Confirmed == other.Confirmed &&
		f.WriteErr == other.WriteErr &&
		f.Hash == other.Hash
}

type WriteRequest struct {
	Contract common.Address
	Amount   *big.Int
}

// Writer starts a mint write and reports its progress back through Flags.
type Writer interface {
	Write(req WriteRequest)
}
