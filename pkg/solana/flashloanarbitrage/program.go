package flashloan_arbitrage

import (
	"bytes"
	"crypto/ed25519"
	"errors"

	"github.com/solarb/flashloan-arbitrage/pkg/solana"
)

var (
	ErrMissingCommand           = errors.New("instruction data is empty")
	ErrUnknownCommand           = errors.New("unknown command")
	ErrTruncatedInstructionData = errors.New("truncated instruction data")
)

var (
	PROGRAM_ADDRESS = mustBase58Decode("CjtES7TuKPmdfMMsZfPv2xB3AsByd4ZQQNGF2ysmdvnQ")
	PROGRAM_ID      = ed25519.PublicKey(PROGRAM_ADDRESS)
)

var (
	SPL_TOKEN_PROGRAM_ID = ed25519.PublicKey(mustBase58Decode("TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"))

	SYSVAR_RENT_PUBKEY = ed25519.PublicKey(mustBase58Decode("SysvarRent111111111111111111111111111111111"))
)

// GetCommand peeks at the command byte of the instruction at the given
// index without unpacking the instruction arguments.
func GetCommand(m solana.Message, index int) (Command, error) {
	if index >= len(m.Instructions) {
		return CommandUnknown, errors.New("instruction doesn't exist")
	}

	i := m.Instructions[index]

	if !isProgramInstruction(m, i) {
		return CommandUnknown, solana.ErrIncorrectProgram
	}
	if len(i.Data) == 0 {
		return CommandUnknown, ErrMissingCommand
	}

	return Command(i.Data[0]), nil
}

func isProgramInstruction(m solana.Message, i solana.CompiledInstruction) bool {
	return int(i.ProgramIndex) < len(m.Accounts) && bytes.Equal(m.Accounts[i.ProgramIndex], PROGRAM_ID)
}
