package flashloan_arbitrage

import (
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/solarb/flashloan-arbitrage/pkg/solana"
)

type FlashloanArbitrageInstructionAccounts struct {
	DestinationTokenAccount ed25519.PublicKey
	BorrowReserve           ed25519.PublicKey
	BorrowReserveLiquidity  ed25519.PublicKey
	LendingMarket           ed25519.PublicKey
	LendingMarketAuthority  ed25519.PublicKey
	BuyDexProgram           ed25519.PublicKey
	SellDexProgram          ed25519.PublicKey
	BuyPool                 ed25519.PublicKey
	SellPool                ed25519.PublicKey
	ProfitWallet            ed25519.PublicKey
	LendingProgram          ed25519.PublicKey
}

// NewFlashloanArbitrageInstruction requests a flash loan from the
// lending program and executes the arbitrage within the same
// transaction.
func NewFlashloanArbitrageInstruction(
	accounts *FlashloanArbitrageInstructionAccounts,
	args *FlashloanArbitrageArgs,
) solana.Instruction {
	// Accounts expected by this instruction:
	//
	//   0. `[writable]` Destination liquidity token account (program's token account)
	//   1. `[writable]` Borrow reserve account
	//   2. `[writable]` Borrow reserve liquidity supply SPL Token account
	//   3. `[]` Lending market account
	//   4. `[]` Derived lending market authority
	//   5. `[]` Buy DEX program ID (e.g., Raydium)
	//   6. `[]` Sell DEX program ID (e.g., Orca)
	//   7. `[writable]` Buy pool address
	//   8. `[writable]` Sell pool address
	//   9. `[writable]` Profit wallet
	//   10. `[]` Token program ID
	//   11. `[]` Lending program ID
	return solana.NewInstruction(
		PROGRAM_ID,
		(&InstructionData{
			Command:            CommandFlashloanArbitrage,
			FlashloanArbitrage: args,
		}).Marshal(),
		solana.NewAccountMeta(accounts.DestinationTokenAccount, false),
		solana.NewAccountMeta(accounts.BorrowReserve, false),
		solana.NewAccountMeta(accounts.BorrowReserveLiquidity, false),
		solana.NewReadonlyAccountMeta(accounts.LendingMarket, false),
		solana.NewReadonlyAccountMeta(accounts.LendingMarketAuthority, false),
		solana.NewReadonlyAccountMeta(accounts.BuyDexProgram, false),
		solana.NewReadonlyAccountMeta(accounts.SellDexProgram, false),
		solana.NewAccountMeta(accounts.BuyPool, false),
		solana.NewAccountMeta(accounts.SellPool, false),
		solana.NewAccountMeta(accounts.ProfitWallet, false),
		solana.NewReadonlyAccountMeta(SPL_TOKEN_PROGRAM_ID, false),
		solana.NewReadonlyAccountMeta(accounts.LendingProgram, false),
	)
}

type DecompiledFlashloanArbitrage struct {
	Args     FlashloanArbitrageArgs
	Accounts FlashloanArbitrageInstructionAccounts
}

func DecompileFlashloanArbitrage(m solana.Message, index int) (*DecompiledFlashloanArbitrage, error) {
	if index >= len(m.Instructions) {
		return nil, errors.Errorf("instruction doesn't exist at %d", index)
	}

	i := m.Instructions[index]

	if !isProgramInstruction(m, i) {
		return nil, solana.ErrIncorrectProgram
	}

	decoded, err := UnpackInstructionData(i.Data)
	if err != nil {
		return nil, err
	}
	if decoded.Command != CommandFlashloanArbitrage {
		return nil, solana.ErrIncorrectInstruction
	}

	if len(i.Accounts) != 12 {
		return nil, errors.Errorf("invalid number of accounts: %d", len(i.Accounts))
	}

	return &DecompiledFlashloanArbitrage{
		Args: *decoded.FlashloanArbitrage,
		Accounts: FlashloanArbitrageInstructionAccounts{
			DestinationTokenAccount: m.Accounts[i.Accounts[0]],
			BorrowReserve:           m.Accounts[i.Accounts[1]],
			BorrowReserveLiquidity:  m.Accounts[i.Accounts[2]],
			LendingMarket:           m.Accounts[i.Accounts[3]],
			LendingMarketAuthority:  m.Accounts[i.Accounts[4]],
			BuyDexProgram:           m.Accounts[i.Accounts[5]],
			SellDexProgram:          m.Accounts[i.Accounts[6]],
			BuyPool:                 m.Accounts[i.Accounts[7]],
			SellPool:                m.Accounts[i.Accounts[8]],
			ProfitWallet:            m.Accounts[i.Accounts[9]],
			LendingProgram:          m.Accounts[i.Accounts[11]],
		},
	}, nil
}
