// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"testing"

	"github.com/33cn/referendum/types"
	proto "github.com/golang/protobuf/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionDescriptor(t *testing.T) {
	md := proto.MessageV2(&ReferendumAction{}).ProtoReflect().Descriptor()
	assert.Equal(t, "types.ReferendumAction", string(md.FullName()))
	assert.Equal(t, "referendum.proto", md.ParentFile().Path())
	od := md.Oneofs().ByName("value")
	require.NotNil(t, od)
	assert.Equal(t, 4, od.Fields().Len())
	assert.Equal(t, "vote", string(od.Fields().ByNumber(3).Name()))
	assert.Nil(t, md.Fields().ByName("ty").ContainingOneof())
}

func TestDecodeActionValue(t *testing.T) {
	ety := NewType()
	vote := &ReferendumVote{Market: "addr", Direction: DirectionYes, Amount: 10}
	tx := CreateVoteTx(vote, 0, 1)

	action, err := ety.DecodePayload(tx)
	require.NoError(t, err)
	decoded := action.(*ReferendumAction)
	require.NotNil(t, decoded.GetVote())
	assert.Equal(t, uint64(10), decoded.GetVote().Amount)
	assert.Nil(t, decoded.GetSettle())

	name, value, err := ety.DecodePayloadValue(tx)
	require.NoError(t, err)
	assert.Equal(t, "Vote", name)
	assert.Equal(t, "addr", value.Interface().(*ReferendumVote).Market)

	//空消息也能解析出 action
	name, _, err = ety.DecodePayloadValue(CreateInitVaultTx(0, 1))
	require.NoError(t, err)
	assert.Equal(t, "InitVault", name)

	//Ty 和子消息不一致
	action2 := &ReferendumAction{Ty: ReferendumActionSettle, Value: &ReferendumAction_Vote{Vote: vote}}
	_, _, err = ety.DecodePayloadValue(types.CreateTx(ReferendumX, action2, 0, 1))
	assert.Equal(t, types.ErrActionNotSupport, err)

	//没有子消息
	_, _, err = ety.DecodePayloadValue(types.CreateTx(ReferendumX, &ReferendumAction{Ty: ReferendumActionVote}, 0, 1))
	assert.Equal(t, types.ErrActionNotSupport, err)
}

func TestOutcomeName(t *testing.T) {
	for _, outcome := range []int32{OutcomePending, OutcomeYes, OutcomeNo} {
		parsed, err := ParseOutcome(OutcomeName(outcome))
		require.NoError(t, err)
		assert.Equal(t, outcome, parsed)
	}
	assert.Equal(t, "unknown", OutcomeName(9))
	_, err := ParseOutcome("maybe")
	assert.Equal(t, ErrInvalidOutcome, err)
	parsed, err := ParseOutcome("YES")
	require.NoError(t, err)
	assert.Equal(t, OutcomeYes, parsed)
}
