// internal/utils/prng.go
package utils

import (
	"math/rand/v2"
	"time"
)

// PRNGService — обёртка над генератором случайных чисел, позволяющая
// воспроизводить расстановку мин по сиду.
type PRNGService struct {
	seed uint64
	rng  *rand.Rand
}

// NewPRNGService создаёт сервис с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed uint64) *PRNGService {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &PRNGService{
		seed: seed,
		rng:  rand.New(rand.NewPCG(seed, seed>>1|1)),
	}
}

// Seed возвращает сид, с которым создан сервис.
func (s *PRNGService) Seed() uint64 {
	return s.seed
}

// Shuffle перемешивает n элементов (алгоритм Фишера-Йетса).
func (s *PRNGService) Shuffle(n int, swap func(i, j int)) {
	s.rng.Shuffle(n, swap)
}
