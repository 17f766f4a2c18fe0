package dmbc

// Envelope framing constants (spec §4.5). service_id is fixed at 2 for
// every transaction kind this package builds; network_id and
// protocol_version are not exposed as per-call parameters by the
// reference C API either, so they are fixed package constants here
// (see DESIGN.md for this Open Question resolution).
const (
	DefaultNetworkID       uint8  = 0
	DefaultProtocolVersion uint8  = 0
	ServiceID              uint16 = 2

	// envelopeHeaderSize is network_id(1) + protocol_version(1) +
	// message_type(2) + service_id(2) + payload_length(4).
	envelopeHeaderSize = 10
	// envelopeSignatureSize is the trailing signature slot, always
	// zero-filled by this core (spec §4.6).
	envelopeSignatureSize = 64
)

// Message type constants (spec §4.5). These numbers are load-bearing:
// a verifying node matches on them, so they must never be renumbered.
const (
	MessageTypeTransfer             uint16 = 200
	MessageTypeAddAssets            uint16 = 300
	MessageTypeDeleteAssets         uint16 = 400
	MessageTypeTrade                uint16 = 501
	MessageTypeTradeIntermediary    uint16 = 502
	MessageTypeExchange             uint16 = 601
	MessageTypeExchangeIntermediary uint16 = 602
	MessageTypeAskOffer             uint16 = 700
	MessageTypeBidOffer             uint16 = 701
	MessageTypeTransferFeesPayer    uint16 = 203
)

// wrapEnvelope frames payload in the common envelope shared by every
// transaction kind. The trailing 64-byte signature region is always
// zero: any signature this system cares about lives inside payload
// (an inner offer signature), never in the envelope itself.
func wrapEnvelope(messageType uint16, payload []byte) []byte {
	out := make([]byte, 0, envelopeHeaderSize+len(payload)+envelopeSignatureSize)
	out = appendU8(out, DefaultNetworkID)
	out = appendU8(out, DefaultProtocolVersion)
	out = appendU16(out, messageType)
	out = appendU16(out, ServiceID)
	out = appendU32(out, uint32(len(payload)))
	out = append(out, payload...)

	var sig [envelopeSignatureSize]byte
	out = append(out, sig[:]...)
	return out
}
