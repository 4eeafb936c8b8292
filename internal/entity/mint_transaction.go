package entity

import (
	"github.com/clawdcat/mintboard/pkg/enum"
)

type MintTransactionStatus string

var (
	MintTransactionPending = enum.New(MintTransactionStatus("pending"), "pending")
	MintTransactionSuccess = enum.New(MintTransactionStatus("success"), "success")
	MintTransactionFailure = enum.New(MintTransactionStatus("failure"), "failure")
)

type MintTransaction struct {
	Base

	ChainID  int64  `gorm:"index:idx_mint_transaction_chain_txhash,unique"`
	TxHash   string `gorm:"index:idx_mint_transaction_chain_txhash,unique"`
	Contract string
	Account  string `gorm:"index"`

	// Amount is in the token's smallest unit.
	Amount string
	Status MintTransactionStatus
}
