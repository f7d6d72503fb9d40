// Package jitter добавляет случайность к длительностям (TTL кэша, интервалы), чтобы ключи,
// записанные одновременно несколькими репликами, не истекали в один момент.
package jitter

import (
	"math/rand"
	"sync"
	"time"
)

// DefaultJitter — стандартный коэффициент джиттера (20%)
const DefaultJitter = 0.2

var (
	globalRand = rand.New(rand.NewSource(time.Now().UnixNano()))
	randMutex  sync.Mutex
)

// Duration возвращает продолжительность с применённым джиттером.
// Результат находится в диапазоне [d, d*(1+jitterFactor)].
func Duration(d time.Duration, jitterFactor float64) time.Duration {
	randMutex.Lock()
	defer randMutex.Unlock()
	return DurationWithSeed(d, jitterFactor, globalRand)
}

// DurationWithSeed возвращает продолжительность с джиттером, используя заданный генератор случайных чисел.
func DurationWithSeed(d time.Duration, jitterFactor float64, rng *rand.Rand) time.Duration {
	if d <= 0 || jitterFactor <= 0 {
		return d
	}
	return d + time.Duration(rng.Float64()*jitterFactor*float64(d))
}
