package recommend

import (
	"math/rand"
	"time"
)

// Rand 隨機來源，測試時注入固定種子
type Rand interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// NewRand 以目前時間為種子的隨機來源
func NewRand() Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// NewSeededRand 固定種子的隨機來源
func NewSeededRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}
