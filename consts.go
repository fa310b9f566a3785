package bitnum

import (
	"errors"
	"math/big"
)

const (
	maxUint64 = 1<<64 - 1

	intSize = 32 << (^uint(0) >> 63)
)

// ErrInvalidArgument is returned (wrapped) when an input falls outside the
// unsigned domain or cannot be parsed. Use errors.Is to test for it.
var ErrInvalidArgument = errors.New("bitnum: invalid argument")

var (
	big0 = new(big.Int).SetInt64(0)
	big1 = new(big.Int).SetInt64(1)

	maxBigUint64 = new(big.Int).SetUint64(maxUint64)
)
