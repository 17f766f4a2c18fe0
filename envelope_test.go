package dmbc

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapEnvelopeLayout(t *testing.T) {
	payload := []byte{0xaa, 0xbb, 0xcc}
	out := wrapEnvelope(MessageTypeTransfer, payload)

	assert.Equal(t, DefaultNetworkID, out[0])
	assert.Equal(t, DefaultProtocolVersion, out[1])
	assert.Equal(t, MessageTypeTransfer, binary.LittleEndian.Uint16(out[2:4]))
	assert.Equal(t, ServiceID, binary.LittleEndian.Uint16(out[4:6]))
	assert.Equal(t, uint32(len(payload)), binary.LittleEndian.Uint32(out[6:10]))
	assert.Equal(t, payload, out[10:13])

	sig := out[13:]
	assert.Len(t, sig, envelopeSignatureSize)
	for _, b := range sig {
		assert.Equal(t, byte(0), b)
	}
}

func TestWrapEnvelopePayloadLengthInvariant(t *testing.T) {
	payload := make([]byte, 37)
	out := wrapEnvelope(MessageTypeAddAssets, payload)
	assert.Equal(t, len(out)-(envelopeHeaderSize+envelopeSignatureSize), len(payload))
}

func TestMessageTypeConstantsAreStable(t *testing.T) {
	assert.Equal(t, uint16(200), MessageTypeTransfer)
	assert.Equal(t, uint16(300), MessageTypeAddAssets)
	assert.Equal(t, uint16(400), MessageTypeDeleteAssets)
	assert.Equal(t, uint16(501), MessageTypeTrade)
	assert.Equal(t, uint16(502), MessageTypeTradeIntermediary)
	assert.Equal(t, uint16(601), MessageTypeExchange)
	assert.Equal(t, uint16(602), MessageTypeExchangeIntermediary)
	assert.Equal(t, uint16(700), MessageTypeAskOffer)
	assert.Equal(t, uint16(701), MessageTypeBidOffer)
	assert.Equal(t, uint16(203), MessageTypeTransferFeesPayer)
}
