// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"fmt"

	rty "github.com/33cn/referendum/system/dapp/referendum/types"
)

// 状态数据库: mavl-referendum-<派生地址>
// vault, 市场, 投票都保存在各自的派生地址上, 托管资金在 coins 账户中
func stateKey(addr string) []byte {
	return []byte("mavl-" + rty.ReferendumX + "-" + addr)
}

// 本地数据库:
// LODB-referendum-market:<outcome>:<marketId> -> 市场地址
// LODB-referendum-voter:<voter>:<heightIndex> -> VoteIndex
// LODB-referendum-mvote:<market>:<heightIndex> -> VoteIndex
func calcMarketOutcomePrefix(outcome int32) []byte {
	return []byte(fmt.Sprintf("LODB-referendum-market:%d:", outcome))
}

func calcMarketOutcomeKey(outcome int32, marketID string) []byte {
	return []byte(fmt.Sprintf("LODB-referendum-market:%d:%s", outcome, marketID))
}

func calcVoterPrefix(voter string) []byte {
	return []byte(fmt.Sprintf("LODB-referendum-voter:%s:", voter))
}

func calcVoterKey(voter, heightIndex string) []byte {
	return []byte(fmt.Sprintf("LODB-referendum-voter:%s:%s", voter, heightIndex))
}

func calcMarketVotePrefix(market string) []byte {
	return []byte(fmt.Sprintf("LODB-referendum-mvote:%s:", market))
}

func calcMarketVoteKey(market, heightIndex string) []byte {
	return []byte(fmt.Sprintf("LODB-referendum-mvote:%s:%s", market, heightIndex))
}
