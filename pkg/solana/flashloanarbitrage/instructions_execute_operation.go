package flashloan_arbitrage

import (
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/solarb/flashloan-arbitrage/pkg/solana"
)

type ExecuteOperationInstructionAccounts struct {
	LendingProgram ed25519.PublicKey
	State          ed25519.PublicKey
	TokenAccount   ed25519.PublicKey
	BuyDexProgram  ed25519.PublicKey
	SellDexProgram ed25519.PublicKey
	BuyPool        ed25519.PublicKey
	SellPool       ed25519.PublicKey
	ProfitWallet   ed25519.PublicKey
}

// NewExecuteOperationInstruction performs the arbitrage swap pair after
// the flash loan has been received.
func NewExecuteOperationInstruction(
	accounts *ExecuteOperationInstructionAccounts,
	args *ExecuteOperationArgs,
) solana.Instruction {
	// Accounts expected by this instruction:
	//
	//   0. `[]` Lending program ID
	//   1. `[]` Token program ID
	//   2. `[writable]` Program's state account
	//   3. `[writable]` Program's token account (to approve transfer)
	//   4. `[]` Buy DEX program ID (e.g., Raydium)
	//   5. `[]` Sell DEX program ID (e.g., Orca)
	//   6. `[writable]` Buy pool address
	//   7. `[writable]` Sell pool address
	//   8. `[writable]` Profit wallet
	return solana.NewInstruction(
		PROGRAM_ID,
		(&InstructionData{
			Command:          CommandExecuteOperation,
			ExecuteOperation: args,
		}).Marshal(),
		solana.NewReadonlyAccountMeta(accounts.LendingProgram, false),
		solana.NewReadonlyAccountMeta(SPL_TOKEN_PROGRAM_ID, false),
		solana.NewAccountMeta(accounts.State, false),
		solana.NewAccountMeta(accounts.TokenAccount, false),
		solana.NewReadonlyAccountMeta(accounts.BuyDexProgram, false),
		solana.NewReadonlyAccountMeta(accounts.SellDexProgram, false),
		solana.NewAccountMeta(accounts.BuyPool, false),
		solana.NewAccountMeta(accounts.SellPool, false),
		solana.NewAccountMeta(accounts.ProfitWallet, false),
	)
}

type DecompiledExecuteOperation struct {
	Args     ExecuteOperationArgs
	Accounts ExecuteOperationInstructionAccounts
}

func DecompileExecuteOperation(m solana.Message, index int) (*DecompiledExecuteOperation, error) {
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
	if decoded.Command != CommandExecuteOperation {
		return nil, solana.ErrIncorrectInstruction
	}

	if len(i.Accounts) != 9 {
		return nil, errors.Errorf("invalid number of accounts: %d", len(i.Accounts))
	}

	return &DecompiledExecuteOperation{
		Args: *decoded.ExecuteOperation,
		Accounts: ExecuteOperationInstructionAccounts{
			LendingProgram: m.Accounts[i.Accounts[0]],
			State:          m.Accounts[i.Accounts[2]],
			TokenAccount:   m.Accounts[i.Accounts[3]],
			BuyDexProgram:  m.Accounts[i.Accounts[4]],
			SellDexProgram: m.Accounts[i.Accounts[5]],
			BuyPool:        m.Accounts[i.Accounts[6]],
			SellPool:       m.Accounts[i.Accounts[7]],
			ProfitWallet:   m.Accounts[i.Accounts[8]],
		},
	}, nil
}
