package tests

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/shopspring/decimal"
)

// Randomizer генерирует тестовые данные сделок. Seed пишется в лог теста,
// чтобы падение можно было воспроизвести.
type Randomizer struct {
	Seed   uint64
	random *rand.Rand
}

func NewRandomizer() Randomizer {
	return NewRandomizerWithSeed(uint64(time.Now().UnixNano())) //nolint:gosec // for tests
}

func NewRandomizerWithSeed(seed uint64) Randomizer {
	return Randomizer{
		Seed:   seed,
		random: rand.New(rand.NewPCG(seed, seed)), //nolint:gosec // for tests
	}
}

func (r Randomizer) Bool() bool {
	return r.random.IntN(2) == 0 //nolint:mnd // skip
}

// DealValue возвращает положительную сумму с двумя знаками после запятой
// не больше maxUnits.
func (r Randomizer) DealValue(maxUnits int64) decimal.Decimal {
	cents := 1 + r.random.Int64N(maxUnits*100) //nolint:mnd // skip

	return decimal.New(cents, -2) //nolint:mnd // skip
}

func (r Randomizer) Title(prefix string) string {
	return fmt.Sprintf("%s %08x", prefix, r.random.Uint32())
}
