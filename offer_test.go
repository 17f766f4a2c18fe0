package dmbc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPublicKeyB = "2229999999999999999999999999999999999999999999999999999999990000"

func TestExchangeOfferEncodeDeterministic(t *testing.T) {
	offer, err := NewExchangeOffer(testPublicKeyA, 10000, testPublicKeyB, FeeStrategyRecipient, 0, "EXCHANGE_i")
	require.Nil(t, err)

	asset, _ := NewAsset(testAssetID, 10)
	offer.AddRecipientAsset(asset)

	a := offer.IntoBytes()
	b := offer.IntoBytes()
	assert.Equal(t, a, b)
	assert.True(t, len(a) > exchangeOfferHeaderSize)
}

func TestExchangeOfferIntermediaryHeaderOrder(t *testing.T) {
	intermediary, err := NewIntermediary(testPublicKeyB, 888)
	require.Nil(t, err)

	offer, err := NewExchangeOfferIntermediary(intermediary, testPublicKeyA, 10000, testPublicKeyB, FeeStrategyRecipient, 0, "EXCHANGE_i")
	require.Nil(t, err)

	out := offer.encode()
	require.True(t, len(out) >= exchangeOfferIntermediaryHeaderSize)
}

func TestTradeOfferAssetReorderingOnlyAffectsAssetsSegment(t *testing.T) {
	offerA, _ := NewTradeOffer(testPublicKeyA, testPublicKeyB, FeeStrategyBoth, 42, "memo")
	a1, _ := NewTradeAsset(testAssetID, 1, 100)
	a2, _ := NewTradeAsset(testAssetID, 2, 200)
	offerA.AddAsset(a1)
	offerA.AddAsset(a2)

	offerB, _ := NewTradeOffer(testPublicKeyA, testPublicKeyB, FeeStrategyBoth, 42, "memo")
	offerB.AddAsset(a2)
	offerB.AddAsset(a1)

	outA := offerA.encode()
	outB := offerB.encode()

	require.Equal(t, len(outA), len(outB))
	assert.Equal(t, outA[:tradeOfferHeaderSize], outB[:tradeOfferHeaderSize])
	assert.NotEqual(t, outA[tradeOfferHeaderSize:], outB[tradeOfferHeaderSize:])
}

func TestNewFeeStrategyRejectedAtOfferConstruction(t *testing.T) {
	_, err := NewTradeOffer(testPublicKeyA, testPublicKeyB, 9, 1, "x")
	require.NotNil(t, err)
	assert.Equal(t, KindInvalidFeeStrategy, err.Kind)
}

func TestTransferFeesPayerOfferEncode(t *testing.T) {
	offer, err := NewTransferFeesPayerOffer(testPublicKeyA, testPublicKeyB, testPublicKeyA, 1000, 7, "info")
	require.Nil(t, err)
	asset, _ := NewAsset(testAssetID, 5)
	offer.AddAsset(asset)

	out := offer.IntoBytes()
	assert.True(t, len(out) > transferFeesPayerOfferHeaderSize)
}
