package dmbc

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToKey = "0009999999999999999999999999999999999999999999999999999999990000"

// TestMinimalTransfer exercises worked scenario #1: a transfer with one
// attached asset, checking the envelope fields, payload_length, the
// leading from/to/amount payload fields and the zero outer signature.
func TestMinimalTransfer(t *testing.T) {
	tx, err := NewTransfer(testPublicKeyA, testToKey, 10000000, 123, "HELLO")
	require.Nil(t, err)

	asset, err := NewAsset(testAssetID, 10)
	require.Nil(t, err)
	require.Nil(t, tx.AddAsset(asset))

	out := tx.IntoBytes()

	assert.Equal(t, MessageTypeTransfer, binary.LittleEndian.Uint16(out[2:4]))
	assert.Equal(t, ServiceID, binary.LittleEndian.Uint16(out[4:6]))

	payloadLen := binary.LittleEndian.Uint32(out[6:10])
	assert.Equal(t, len(out)-(envelopeHeaderSize+envelopeSignatureSize), int(payloadLen))

	payload := out[envelopeHeaderSize : envelopeHeaderSize+int(payloadLen)]
	assert.Equal(t, testPublicKeyA, hexOf(payload[0:32]))
	assert.Equal(t, testToKey, hexOf(payload[32:64]))
	assert.Equal(t, uint64(10000000), binary.LittleEndian.Uint64(payload[64:72]))

	sig := out[len(out)-envelopeSignatureSize:]
	for _, b := range sig {
		assert.Equal(t, byte(0), b)
	}
}

func TestTransferMutationAfterFreezeIsRejected(t *testing.T) {
	tx, _ := NewTransfer(testPublicKeyA, testToKey, 1, 1, "")
	_ = tx.IntoBytes()

	asset, _ := NewAsset(testAssetID, 1)
	err := tx.AddAsset(asset)
	require.NotNil(t, err)
	assert.Equal(t, KindIllegalState, err.Kind)
}

// TestAddAssetsTwoAssetsSharedFeeSchedule exercises worked scenario #2.
func TestAddAssetsTwoAssetsSharedFeeSchedule(t *testing.T) {
	tx, err := NewAddAssets(testPublicKeyA, 102)
	require.Nil(t, err)

	fees, err := NewFees(10, "0.1", 20, "0.2", 9, "0.999999")
	require.Nil(t, err)

	require.Nil(t, tx.AddAsset("Asset#10", 10, fees, testPublicKeyA))
	require.Nil(t, tx.AddAsset("Asset#00", 1000, fees, testPublicKeyA))

	out := tx.IntoBytes()
	assert.Equal(t, MessageTypeAddAssets, binary.LittleEndian.Uint16(out[2:4]))

	payloadLen := binary.LittleEndian.Uint32(out[6:10])
	assert.Equal(t, len(out)-(envelopeHeaderSize+envelopeSignatureSize), int(payloadLen))
}

func TestAddAssetsIsDeterministic(t *testing.T) {
	build := func() []byte {
		tx, _ := NewAddAssets(testPublicKeyA, 102)
		fees, _ := NewFees(10, "0.1", 20, "0.2", 9, "0.999999")
		_ = tx.AddAsset("Asset#10", 10, fees, testPublicKeyA)
		return tx.IntoBytes()
	}
	assert.Equal(t, build(), build())
}

// TestDeleteAssetsSingleAsset exercises worked scenario #3.
func TestDeleteAssetsSingleAsset(t *testing.T) {
	tx, err := NewDeleteAssets(testPublicKeyA, 102)
	require.Nil(t, err)

	asset, _ := NewAsset(testAssetID, 10)
	require.Nil(t, tx.AddAsset(asset))

	out := tx.IntoBytes()
	assert.Equal(t, MessageTypeDeleteAssets, binary.LittleEndian.Uint16(out[2:4]))
}

// TestExchangeIntermediaryScenario exercises worked scenario #4.
func TestExchangeIntermediaryScenario(t *testing.T) {
	intermediary, err := NewIntermediary(testPublicKeyB, 888)
	require.Nil(t, err)

	offer, err := NewExchangeOfferIntermediary(intermediary, testPublicKeyA, 10000, testToKey, FeeStrategyRecipient, 0, "EXCHANGE_i")
	require.Nil(t, err)

	asset, _ := NewAsset(testAssetID, 1)
	offer.AddRecipientAsset(asset)

	senderSig := make([]byte, 128)
	for i := range senderSig {
		senderSig[i] = '1'
	}
	intermediarySig := make([]byte, 128)
	for i := range intermediarySig {
		intermediarySig[i] = '2'
	}

	tx, err := NewExchangeIntermediary(offer, string(senderSig), string(intermediarySig))
	require.Nil(t, err)

	out := tx.IntoBytes()
	assert.Equal(t, MessageTypeExchangeIntermediary, binary.LittleEndian.Uint16(out[2:4]))

	payloadLen := binary.LittleEndian.Uint32(out[6:10])
	payload := out[envelopeHeaderSize : envelopeHeaderSize+int(payloadLen)]

	sigRegion := payload[segPointerSize : segPointerSize+128]
	assert.Equal(t, byte(0x11), sigRegion[0])
	assert.Equal(t, byte(0x22), sigRegion[64])
}

// TestTradeIntermediaryAssetReorderingIsLocalized exercises worked
// scenario #5: reordering the offer's asset list changes the output
// only in the assets-segment region, nowhere else.
func TestTradeIntermediaryAssetReorderingIsLocalized(t *testing.T) {
	intermediary, _ := NewIntermediary(testPublicKeyB, 50)
	a1, _ := NewTradeAsset(testAssetID, 1, 10)
	a2, _ := NewTradeAsset(testAssetID, 2, 20)

	buildTx := func(first, second *TradeAsset) []byte {
		offer, _ := NewTradeOfferIntermediary(intermediary, testPublicKeyA, testToKey, FeeStrategyBoth, 7, "info")
		offer.AddAsset(first)
		offer.AddAsset(second)
		sellerSig := repeatByte('3', 128)
		intermediarySig := repeatByte('4', 128)
		tx, _ := NewTradeIntermediary(offer, sellerSig, intermediarySig)
		return tx.IntoBytes()
	}

	outA := buildTx(a1, a2)
	outB := buildTx(a2, a1)
	assert.Equal(t, len(outA), len(outB))

	assetsStart := envelopeHeaderSize + tradeIntermediaryHeaderSize + tradeOfferIntermediaryHeaderSize + intermediarySize
	assetsEnd := assetsStart + 2*tradeAssetHeaderSize
	assert.Equal(t, outA[:assetsStart], outB[:assetsStart])
	assert.Equal(t, outA[assetsEnd:], outB[assetsEnd:])
	assert.NotEqual(t, outA[assetsStart:assetsEnd], outB[assetsStart:assetsEnd])
}

// TestInvalidHexRejection exercises worked scenario #6.
func TestInvalidHexRejection(t *testing.T) {
	short := testPublicKeyA[:63]
	_, err := NewTransfer(short, testToKey, 1, 1, "")
	require.NotNil(t, err)
	assert.Equal(t, KindInvalidHex, err.Kind)
	assert.NotEmpty(t, err.Message)
}

// TestAttachOfferTakesDeepCopy verifies the ownership invariant that
// attaching an offer to a transaction copies it: mutating the caller's
// offer afterward must not change what was already encoded.
func TestAttachOfferTakesDeepCopy(t *testing.T) {
	asset, _ := NewAsset(testAssetID, 1)
	tradeAsset, _ := NewTradeAsset(testAssetID, 1, 10)
	intermediary, _ := NewIntermediary(testPublicKeyB, 50)

	t.Run("Exchange", func(t *testing.T) {
		offer, _ := NewExchangeOffer(testPublicKeyA, 1000, testToKey, FeeStrategyRecipient, 0, "memo")
		tx, err := NewExchange(offer, repeatByte('1', 128))
		require.Nil(t, err)
		before := tx.IntoBytes()

		offer.AddSenderAsset(asset)
		after := tx.IntoBytes()
		assert.Equal(t, before, after)
	})

	t.Run("ExchangeIntermediary", func(t *testing.T) {
		offer, _ := NewExchangeOfferIntermediary(intermediary, testPublicKeyA, 1000, testToKey, FeeStrategyBoth, 0, "memo")
		tx, err := NewExchangeIntermediary(offer, repeatByte('1', 128), repeatByte('2', 128))
		require.Nil(t, err)
		before := tx.IntoBytes()

		offer.AddRecipientAsset(asset)
		after := tx.IntoBytes()
		assert.Equal(t, before, after)
	})

	t.Run("Trade", func(t *testing.T) {
		offer, _ := NewTradeOffer(testPublicKeyA, testToKey, FeeStrategyBoth, 0, "info")
		tx, err := NewTrade(offer, repeatByte('1', 128))
		require.Nil(t, err)
		before := tx.IntoBytes()

		offer.AddAsset(tradeAsset)
		after := tx.IntoBytes()
		assert.Equal(t, before, after)
	})

	t.Run("TradeIntermediary", func(t *testing.T) {
		offer, _ := NewTradeOfferIntermediary(intermediary, testPublicKeyA, testToKey, FeeStrategyBoth, 0, "info")
		tx, err := NewTradeIntermediary(offer, repeatByte('1', 128), repeatByte('2', 128))
		require.Nil(t, err)
		before := tx.IntoBytes()

		offer.AddAsset(tradeAsset)
		after := tx.IntoBytes()
		assert.Equal(t, before, after)
	})

	t.Run("TransferFeesPayer", func(t *testing.T) {
		offer, _ := NewTransferFeesPayerOffer(testPublicKeyA, testToKey, testPublicKeyB, 500, 0, "info")
		tx, err := NewTransferFeesPayer(offer, repeatByte('1', 128))
		require.Nil(t, err)
		before := tx.IntoBytes()

		offer.AddAsset(asset)
		after := tx.IntoBytes()
		assert.Equal(t, before, after)
	})
}

func TestAskOfferAndBidOfferShareLayoutDifferentType(t *testing.T) {
	asset, _ := NewTradeAsset(testAssetID, 1, 10)

	ask, err := NewAskOffer(testPublicKeyA, asset, 1, "info")
	require.Nil(t, err)
	bid, err := NewBidOffer(testPublicKeyA, asset, 1, "info")
	require.Nil(t, err)

	askOut := ask.IntoBytes()
	bidOut := bid.IntoBytes()

	assert.Equal(t, MessageTypeAskOffer, binary.LittleEndian.Uint16(askOut[2:4]))
	assert.Equal(t, MessageTypeBidOffer, binary.LittleEndian.Uint16(bidOut[2:4]))
	assert.Equal(t, askOut[envelopeHeaderSize:], bidOut[envelopeHeaderSize:])
}

func repeatByte(c byte, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = c
	}
	return string(b)
}

func hexOf(b []byte) string {
	const digits = "0123456789abcdef"
	out := make([]byte, len(b)*2)
	for i, v := range b {
		out[i*2] = digits[v>>4]
		out[i*2+1] = digits[v&0x0f]
	}
	return string(out)
}
