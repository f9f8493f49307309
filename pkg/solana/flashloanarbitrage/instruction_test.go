package flashloan_arbitrage

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leUint64(v uint64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, v)
	return b
}

func TestUnpackInstructionData_EmptyData(t *testing.T) {
	data, err := UnpackInstructionData(nil)
	assert.Nil(t, data)
	assert.Equal(t, ErrMissingCommand, err)

	data, err = UnpackInstructionData([]byte{})
	assert.Nil(t, data)
	assert.Equal(t, ErrMissingCommand, err)
}

func TestUnpackInstructionData_UnknownCommand(t *testing.T) {
	data, err := UnpackInstructionData([]byte{3})
	assert.Nil(t, data)
	assert.Equal(t, ErrUnknownCommand, err)

	data, err = UnpackInstructionData(append([]byte{255}, leUint64(0)...))
	assert.Nil(t, data)
	assert.Equal(t, ErrUnknownCommand, err)
}

func TestUnpackInstructionData_InitFlashloanArbitrage(t *testing.T) {
	data, err := UnpackInstructionData([]byte{0})
	require.NoError(t, err)
	assert.Equal(t, CommandInitFlashloanArbitrage, data.Command)
	assert.Nil(t, data.ExecuteOperation)
	assert.Nil(t, data.FlashloanArbitrage)

	// The on-chain program ignores anything after the command byte.
	data, err = UnpackInstructionData([]byte{0, 9, 9, 9})
	require.NoError(t, err)
	assert.Equal(t, CommandInitFlashloanArbitrage, data.Command)
}

func TestUnpackInstructionData_ExecuteOperation(t *testing.T) {
	data, err := UnpackInstructionData(append([]byte{1}, leUint64(1000)...))
	require.NoError(t, err)
	assert.Equal(t, CommandExecuteOperation, data.Command)
	require.NotNil(t, data.ExecuteOperation)
	assert.EqualValues(t, 1000, data.ExecuteOperation.Amount)

	// Trailing bytes after the amount are ignored.
	data, err = UnpackInstructionData(append(append([]byte{1}, leUint64(1000)...), 9, 9, 9))
	require.NoError(t, err)
	assert.EqualValues(t, 1000, data.ExecuteOperation.Amount)
}

func TestUnpackInstructionData_ExecuteOperation_Truncated(t *testing.T) {
	data, err := UnpackInstructionData([]byte{1, 1, 2, 3})
	assert.Nil(t, data)
	assert.Equal(t, ErrTruncatedInstructionData, err)
}

func TestUnpackInstructionData_FlashloanArbitrage(t *testing.T) {
	raw := append([]byte{2}, leUint64(500)...)
	raw = append(raw, leUint64(10)...)
	raw = append(raw, 9, 9, 9)

	data, err := UnpackInstructionData(raw)
	require.NoError(t, err)
	assert.Equal(t, CommandFlashloanArbitrage, data.Command)
	require.NotNil(t, data.FlashloanArbitrage)
	assert.EqualValues(t, 500, data.FlashloanArbitrage.Amount)
	assert.EqualValues(t, 10, data.FlashloanArbitrage.ExpectedProfit)
	assert.Equal(t, []byte{9, 9, 9}, data.FlashloanArbitrage.ExecuteOperationIxData)
}

func TestUnpackInstructionData_FlashloanArbitrage_EmptyIxData(t *testing.T) {
	raw := append([]byte{2}, leUint64(1)...)
	raw = append(raw, leUint64(1)...)

	data, err := UnpackInstructionData(raw)
	require.NoError(t, err)
	assert.EqualValues(t, 1, data.FlashloanArbitrage.Amount)
	assert.EqualValues(t, 1, data.FlashloanArbitrage.ExpectedProfit)
	assert.Empty(t, data.FlashloanArbitrage.ExecuteOperationIxData)
}

func TestUnpackInstructionData_FlashloanArbitrage_Truncated(t *testing.T) {
	// Amount present, expected profit missing.
	data, err := UnpackInstructionData(append([]byte{2}, leUint64(0)...))
	assert.Nil(t, data)
	assert.Equal(t, ErrTruncatedInstructionData, err)
}

func TestInstructionData_RoundTrip(t *testing.T) {
	for _, tc := range []*InstructionData{
		{
			Command: CommandInitFlashloanArbitrage,
		},
		{
			Command: CommandExecuteOperation,
			ExecuteOperation: &ExecuteOperationArgs{
				Amount: 123456789,
			},
		},
		{
			Command: CommandFlashloanArbitrage,
			FlashloanArbitrage: &FlashloanArbitrageArgs{
				Amount:                 500,
				ExpectedProfit:         10,
				ExecuteOperationIxData: []byte{9, 9, 9},
			},
		},
	} {
		unpacked, err := UnpackInstructionData(tc.Marshal())
		require.NoError(t, err)
		assert.Equal(t, tc.Command, unpacked.Command)
		assert.Equal(t, tc.ExecuteOperation, unpacked.ExecuteOperation)
		assert.Equal(t, tc.FlashloanArbitrage, unpacked.FlashloanArbitrage)
	}
}

func TestInstructionData_Marshal(t *testing.T) {
	assert.Equal(t, []byte{0}, (&InstructionData{Command: CommandInitFlashloanArbitrage}).Marshal())

	packed := (&InstructionData{
		Command: CommandExecuteOperation,
		ExecuteOperation: &ExecuteOperationArgs{
			Amount: 1000,
		},
	}).Marshal()
	assert.Equal(t, append([]byte{1}, leUint64(1000)...), packed)

	packed = (&InstructionData{
		Command: CommandFlashloanArbitrage,
		FlashloanArbitrage: &FlashloanArbitrageArgs{
			Amount:                 500,
			ExpectedProfit:         10,
			ExecuteOperationIxData: []byte{9, 9, 9},
		},
	}).Marshal()

	expected := append([]byte{2}, leUint64(500)...)
	expected = append(expected, leUint64(10)...)
	expected = append(expected, 9, 9, 9)
	assert.Equal(t, expected, packed)
}
