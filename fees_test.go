package dmbc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFeesWorkedExample(t *testing.T) {
	f, err := NewFees(10, "0.1", 20, "0.2", 9, "0.999999")
	require.Nil(t, err)

	assert.Equal(t, FeeRatio{Fixed: 10, Numerator: 1, Denominator: 10}, f.Trade)
	assert.Equal(t, FeeRatio{Fixed: 20, Numerator: 2, Denominator: 10}, f.Exchange)
	assert.Equal(t, FeeRatio{Fixed: 9, Numerator: 999999, Denominator: 1000000}, f.Transfer)

	out := f.encode()
	require.Len(t, out, feesSize)
}

func TestNewFeesPropagatesFirstError(t *testing.T) {
	_, err := NewFees(10, "bad", 20, "0.2", 9, "0.999999")
	require.NotNil(t, err)
	assert.Equal(t, KindInvalidDecimal, err.Kind)
}

func TestValidFeeStrategy(t *testing.T) {
	for _, v := range []uint8{1, 2, 3, 4} {
		assert.Nil(t, validFeeStrategy(v))
	}
	err := validFeeStrategy(5)
	require.NotNil(t, err)
	assert.Equal(t, KindInvalidFeeStrategy, err.Kind)
}

func TestNewIntermediaryEncoding(t *testing.T) {
	i, err := NewIntermediary(testPublicKeyA, 888)
	require.Nil(t, err)
	out := i.encode()
	require.Len(t, out, intermediarySize)
}
