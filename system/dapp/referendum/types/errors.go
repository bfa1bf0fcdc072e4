// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

var (
	// ErrQuestionTooLong 问题超过 200 字节
	ErrQuestionTooLong = errors.New("ErrQuestionTooLong")
	// ErrDescriptionTooLong 描述超过 500 字节
	ErrDescriptionTooLong = errors.New("ErrDescriptionTooLong")
	// ErrMarketIDTooLong 市场ID超过 64 字节
	ErrMarketIDTooLong = errors.New("ErrMarketIdTooLong")
	// ErrEndDateInPast 截止时间必须晚于当前区块时间
	ErrEndDateInPast = errors.New("ErrEndDateInPast")
	// ErrZeroAmount 投票金额为0
	ErrZeroAmount = errors.New("ErrZeroAmount")
	// ErrMarketAlreadyResolved 市场已经结算
	ErrMarketAlreadyResolved = errors.New("ErrMarketAlreadyResolved")
	// ErrMarketExpired 市场已经截止
	ErrMarketExpired = errors.New("ErrMarketExpired")
	// ErrInvalidOutcome 结算结果只能是 Yes 或 No
	ErrInvalidOutcome = errors.New("ErrInvalidOutcome")
	// ErrUnauthorized 不是 vault 的 authority
	ErrUnauthorized = errors.New("ErrUnauthorized")
	// ErrVaultNotFound vault 还没有初始化
	ErrVaultNotFound = errors.New("ErrVaultNotFound")
	// ErrMarketNotFound 市场不存在
	ErrMarketNotFound = errors.New("ErrMarketNotFound")
	// ErrInvalidDirection 投票方向只能是 Yes 或 No
	ErrInvalidDirection = errors.New("ErrInvalidDirection")
)
