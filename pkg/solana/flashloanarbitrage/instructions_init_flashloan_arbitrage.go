package flashloan_arbitrage

import (
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/solarb/flashloan-arbitrage/pkg/solana"
)

type InitFlashloanArbitrageInstructionAccounts struct {
	Initializer    ed25519.PublicKey
	TokenAccount   ed25519.PublicKey
	State          ed25519.PublicKey
	BuyDexProgram  ed25519.PublicKey
	SellDexProgram ed25519.PublicKey
}

// NewInitFlashloanArbitrageInstruction initializes the program's state
// and token accounts for a buy/sell DEX pair.
func NewInitFlashloanArbitrageInstruction(
	accounts *InitFlashloanArbitrageInstructionAccounts,
) solana.Instruction {
	// Accounts expected by this instruction:
	//
	//   0. `[signer]` The account of the person initializing the program
	//   1. `[writable]` Program's token account for holding flash loan funds
	//   2. `[writable]` The program's account to hold state
	//   3. `[]` The rent sysvar
	//   4. `[]` The token program
	//   5. `[]` Buy DEX program ID (e.g., Raydium)
	//   6. `[]` Sell DEX program ID (e.g., Orca)
	return solana.NewInstruction(
		PROGRAM_ID,
		(&InstructionData{Command: CommandInitFlashloanArbitrage}).Marshal(),
		solana.NewReadonlyAccountMeta(accounts.Initializer, true),
		solana.NewAccountMeta(accounts.TokenAccount, false),
		solana.NewAccountMeta(accounts.State, false),
		solana.NewReadonlyAccountMeta(SYSVAR_RENT_PUBKEY, false),
		solana.NewReadonlyAccountMeta(SPL_TOKEN_PROGRAM_ID, false),
		solana.NewReadonlyAccountMeta(accounts.BuyDexProgram, false),
		solana.NewReadonlyAccountMeta(accounts.SellDexProgram, false),
	)
}

type DecompiledInitFlashloanArbitrage struct {
	Accounts InitFlashloanArbitrageInstructionAccounts
}

func DecompileInitFlashloanArbitrage(m solana.Message, index int) (*DecompiledInitFlashloanArbitrage, error) {
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
	if decoded.Command != CommandInitFlashloanArbitrage {
		return nil, solana.ErrIncorrectInstruction
	}

	if len(i.Accounts) != 7 {
		return nil, errors.Errorf("invalid number of accounts: %d", len(i.Accounts))
	}

	return &DecompiledInitFlashloanArbitrage{
		Accounts: InitFlashloanArbitrageInstructionAccounts{
			Initializer:    m.Accounts[i.Accounts[0]],
			TokenAccount:   m.Accounts[i.Accounts[1]],
			State:          m.Accounts[i.Accounts[2]],
			BuyDexProgram:  m.Accounts[i.Accounts[5]],
			SellDexProgram: m.Accounts[i.Accounts[6]],
		},
	}, nil
}
