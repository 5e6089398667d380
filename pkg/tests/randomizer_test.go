package tests_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"deal_service/pkg/tests"
)

func TestRandomizerSeed(t *testing.T) {
	rq := require.New(t)

	a := tests.NewRandomizerWithSeed(42)
	b := tests.NewRandomizerWithSeed(42)

	for range 50 {
		value := a.DealValue(100)
		rq.True(value.Equal(b.DealValue(100)))
		rq.True(value.IsPositive())
		rq.True(value.Equal(value.Truncate(2)))
		rq.Equal(a.Title("Deal"), b.Title("Deal"))
	}
}
