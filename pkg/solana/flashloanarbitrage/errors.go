package flashloan_arbitrage

// FlashloanArbitrageError is the numerical error code returned by the
// on-chain program.
type FlashloanArbitrageError uint32

const (
	// The instruction data doesn't start with a known command
	InvalidInstruction FlashloanArbitrageError = iota

	// The instruction data is too short for the command's arguments
	InstructionUnpackError
)
