package ethutil

import (
	"crypto/ecdsa"
	"crypto/sha256"

	"github.com/ethereum/go-ethereum/common"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
)

// GeneratePrivateKey derives a deterministic key from sha256(secret || nonce).
func GeneratePrivateKey(secret, nonce []byte) (*ecdsa.PrivateKey, error) {
	seed := sha256.Sum256(append(append([]byte{}, secret...), nonce...))
	return ethcrypto.ToECDSA(seed[:])
}

func GeneratePublicKey(secret, nonce []byte) (common.Address, error) {
	walletPrivateKey, err := GeneratePrivateKey(secret, nonce)
	if err != nil {
		return common.Address{}, err
	}

	return ethcrypto.PubkeyToAddress(walletPrivateKey.PublicKey), nil
}

// TruncateAddress shortens an address to its first 6 and last 4 characters.
func TruncateAddress(address common.Address) string {
	hex := address.Hex()
	return hex[:6] + "..." + hex[len(hex)-4:]
}
