package flashloan_arbitrage

import (
	"math"

	"github.com/solarb/flashloan-arbitrage/pkg/solana/binary"
)

// Command is the leading byte of the instruction data, selecting which
// operation the program executes.
type Command uint8

const (
	CommandInitFlashloanArbitrage Command = iota
	CommandExecuteOperation
	CommandFlashloanArbitrage

	CommandUnknown = Command(math.MaxUint8)
)

const (
	ExecuteOperationArgsSize = 8 // amount

	FlashloanArbitrageFixedArgsSize = (8 + // amount
		8) // expected_profit
)

type ExecuteOperationArgs struct {
	Amount uint64
}

type FlashloanArbitrageArgs struct {
	Amount         uint64
	ExpectedProfit uint64

	// ExecuteOperationIxData is the instruction data the program forwards
	// to its own ExecuteOperation invocation once the loan is received.
	// It occupies the remainder of the instruction data with no length
	// prefix, so it must be the final field.
	ExecuteOperationIxData []byte
}

// InstructionData is the unpacked form of the program's instruction
// data. Exactly one of the args fields is set, matching Command.
type InstructionData struct {
	Command Command

	ExecuteOperation   *ExecuteOperationArgs
	FlashloanArbitrage *FlashloanArbitrageArgs
}

// UnpackInstructionData interprets raw instruction data as one of the
// program's commands.
//
// Trailing bytes beyond a command's defined arguments are ignored for
// InitFlashloanArbitrage and ExecuteOperation, matching the behavior of
// the on-chain program.
func UnpackInstructionData(data []byte) (*InstructionData, error) {
	if len(data) == 0 {
		return nil, ErrMissingCommand
	}

	command := Command(data[0])
	args := data[1:]

	switch command {
	case CommandInitFlashloanArbitrage:
		return &InstructionData{
			Command: command,
		}, nil

	case CommandExecuteOperation:
		if len(args) < ExecuteOperationArgsSize {
			return nil, ErrTruncatedInstructionData
		}

		var offset int
		var decoded ExecuteOperationArgs
		binary.GetUint64(args, &decoded.Amount, &offset)

		return &InstructionData{
			Command:          command,
			ExecuteOperation: &decoded,
		}, nil

	case CommandFlashloanArbitrage:
		if len(args) < FlashloanArbitrageFixedArgsSize {
			return nil, ErrTruncatedInstructionData
		}

		var offset int
		var decoded FlashloanArbitrageArgs
		binary.GetUint64(args, &decoded.Amount, &offset)
		binary.GetUint64(args, &decoded.ExpectedProfit, &offset)
		binary.GetData(args, &decoded.ExecuteOperationIxData, &offset)

		return &InstructionData{
			Command:            command,
			FlashloanArbitrage: &decoded,
		}, nil

	default:
		return nil, ErrUnknownCommand
	}
}

// Marshal packs the instruction data into its wire form: the command
// byte followed by that command's arguments.
func (obj *InstructionData) Marshal() []byte {
	switch obj.Command {
	case CommandInitFlashloanArbitrage:
		return []byte{uint8(CommandInitFlashloanArbitrage)}

	case CommandExecuteOperation:
		var offset int
		data := make([]byte, 1+ExecuteOperationArgsSize)
		binary.PutUint8(data, uint8(obj.Command), &offset)
		binary.PutUint64(data, obj.ExecuteOperation.Amount, &offset)
		return data

	case CommandFlashloanArbitrage:
		var offset int
		data := make([]byte,
			1+
				FlashloanArbitrageFixedArgsSize+
				len(obj.FlashloanArbitrage.ExecuteOperationIxData))
		binary.PutUint8(data, uint8(obj.Command), &offset)
		binary.PutUint64(data, obj.FlashloanArbitrage.Amount, &offset)
		binary.PutUint64(data, obj.FlashloanArbitrage.ExpectedProfit, &offset)
		binary.PutData(data, obj.FlashloanArbitrage.ExecuteOperationIxData, &offset)
		return data

	default:
		return nil
	}
}
