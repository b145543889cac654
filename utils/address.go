package utils

import (
	"encoding/hex"
	"fmt"

	model "auction-market/internal/models"

	"github.com/google/uuid"
)

// addressSpace namespaces the name-based UUIDs used to derive contract addresses
var addressSpace = uuid.MustParse("6f1c2a4e-8d3b-4f0a-9c5e-2b7d9e1a3f60")

// NewAddress returns a random account address
func NewAddress() model.Address {
	return toAddress(uuid.New(), uuid.New())
}

// ContractAddress derives the address of the nonce-th contract created by deployer
func ContractAddress(deployer model.Address, nonce uint64) model.Address {
	head := uuid.NewSHA1(addressSpace, []byte(fmt.Sprintf("%s/%d", deployer, nonce)))
	tail := uuid.NewSHA1(head, []byte("tail"))
	return toAddress(head, tail)
}

// 16 bytes from the head and 4 from the tail make a 20-byte address
func toAddress(head, tail uuid.UUID) model.Address {
	b := make([]byte, 0, 20)
	b = append(b, head[:]...)
	b = append(b, tail[:4]...)
	return model.Address("0x" + hex.EncodeToString(b))
}
