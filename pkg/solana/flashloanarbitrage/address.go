package flashloan_arbitrage

import (
	"crypto/ed25519"

	"github.com/solarb/flashloan-arbitrage/pkg/solana"
)

type GetLendingMarketAuthorityAddressArgs struct {
	LendingMarket  ed25519.PublicKey
	LendingProgram ed25519.PublicKey
}

// GetLendingMarketAuthorityAddress derives the lending market authority
// that signs the flash loan disbursement on behalf of the lending
// program. The seed convention (the lending market address) follows the
// SPL token lending program.
func GetLendingMarketAuthorityAddress(args *GetLendingMarketAuthorityAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		args.LendingProgram,
		args.LendingMarket,
	)
}
