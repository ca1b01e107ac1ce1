package receipt

import (
	"testing"

	"github.com/gorules/ethforks/common"
	"github.com/gorules/ethforks/core/types"
	"github.com/stretchr/testify/require"
)

func TestFrontierCarriesStateRootNotStatus(t *testing.T) {
	result := &types.ExecutionResult{GasUsed: 21000}
	r := Frontier.Build(types.LegacyTxType, result, []byte{0xAA}, 21000)
	require.Equal(t, []byte{0xAA}, r.PostState)
	require.False(t, r.HasStatus)
	require.False(t, r.HasType)
}

func TestByzantiumCarriesStatusNotStateRoot(t *testing.T) {
	success := Byzantium.Build(types.LegacyTxType, &types.ExecutionResult{GasUsed: 21000}, nil, 21000)
	require.Nil(t, success.PostState)
	require.True(t, success.HasStatus)
	require.Equal(t, StatusSuccessful, success.Status)

	failed := Byzantium.Build(types.LegacyTxType, &types.ExecutionResult{GasUsed: 21000, Failed: true}, nil, 21000)
	require.Equal(t, StatusFailed, failed.Status)
}

func TestByzantiumWithReasonOnlyCarriesReasonOnFailure(t *testing.T) {
	ok := ByzantiumWithReason.Build(types.LegacyTxType, &types.ExecutionResult{GasUsed: 21000}, nil, 21000)
	require.Nil(t, ok.RevertReason)

	failed := ByzantiumWithReason.Build(types.LegacyTxType, &types.ExecutionResult{
		GasUsed: 21000, Failed: true, RevertReason: []byte("out of gas"),
	}, nil, 21000)
	require.Equal(t, []byte("out of gas"), failed.RevertReason)
}

func TestBerlinCarriesTransactionType(t *testing.T) {
	r := Berlin.Build(types.AccessListTxType, &types.ExecutionResult{GasUsed: 21000}, nil, 21000)
	require.True(t, r.HasType)
	require.Equal(t, types.AccessListTxType, r.Type)
	require.True(t, r.HasStatus)
}

// recordingAppender collects every Build call's logs, standing in for a
// real block-wide bloom filter.
type recordingAppender struct {
	calls [][]*types.Log
}

func (a *recordingAppender) AppendBloom(logs []*types.Log) {
	a.calls = append(a.calls, logs)
}

func TestBuildCallsEveryBloomAppenderWithTheReceiptsLogs(t *testing.T) {
	addr := common.HexToAddress("0x2222222222222222222222222222222222222222")
	result := &types.ExecutionResult{GasUsed: 21000, Logs: []*types.Log{{Address: addr}}}
	appender := &recordingAppender{}

	r := Berlin.Build(types.LegacyTxType, result, nil, 21000, appender)

	require.Len(t, appender.calls, 1)
	require.Equal(t, r.Logs, appender.calls[0])
}

func TestBuildWithoutAnAppenderStaysPure(t *testing.T) {
	result := &types.ExecutionResult{GasUsed: 21000}
	require.NotPanics(t, func() {
		Frontier.Build(types.LegacyTxType, result, []byte{0x01}, 21000)
	})
}

func TestReceiptCarriesContractAddressAndLogs(t *testing.T) {
	addr := common.HexToAddress("0x1111111111111111111111111111111111111111")
	result := &types.ExecutionResult{
		GasUsed:      53000,
		ContractAddr: &addr,
		Logs:         []*types.Log{{Address: addr}},
	}
	r := Berlin.Build(types.LegacyTxType, result, nil, 53000)
	require.Equal(t, &addr, r.ContractAddress)
	require.Len(t, r.Logs, 1)
}
