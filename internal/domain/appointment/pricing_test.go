package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveFinalPriceEmptyKeepsOriginal(t *testing.T) {
	price, err := ResolveFinalPrice(100, "")
	require.NoError(t, err)
	assert.Equal(t, 100.0, price)

	price, err = ResolveFinalPrice(100, "   ")
	require.NoError(t, err)
	assert.Equal(t, 100.0, price)
}

func TestResolveFinalPriceOverride(t *testing.T) {
	price, err := ResolveFinalPrice(100, "75.5")
	require.NoError(t, err)
	assert.Equal(t, 75.5, price)
}

func TestResolveFinalPriceAcceptsComma(t *testing.T) {
	price, err := ResolveFinalPrice(100, "75,5")
	require.NoError(t, err)
	assert.Equal(t, 75.5, price)
}

func TestResolveFinalPriceRoundsToCents(t *testing.T) {
	price, err := ResolveFinalPrice(100, "19.999")
	require.NoError(t, err)
	assert.Equal(t, 20.0, price)
}

func TestResolveFinalPriceRejectsInvalid(t *testing.T) {
	for _, input := range []string{"abc", "0", "-10", "0,00", "NaN", "Inf"} {
		_, err := ResolveFinalPrice(100, input)
		require.Error(t, err, input)
		assert.True(t, IsInvalidPrice(err), input)
	}
}
