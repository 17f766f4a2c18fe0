package dmbc

// askBidOfferHeaderSize: public_key(32) + TradeAsset(32) + seed(8) +
// S(data_info)(8). Shared by AskOffer and BidOffer, which differ only
// in message_type (spec §4.6; the two constants are implementation-
// reserved pending authoritative chain confirmation, see DESIGN.md).
const askBidOfferHeaderSize = 32 + tradeAssetHeaderSize + 8 + 8

// AskOffer builds a standing offer to sell a TradeAsset at its quoted
// price.
type AskOffer struct {
	frozenState
	PublicKey [32]byte
	Asset     TradeAsset
	Seed      uint64
	DataInfo  string
}

func NewAskOffer(publicKey string, asset *TradeAsset, seed uint64, dataInfo string) (*AskOffer, *Error) {
	pk, err := decodePublicKey("public_key", publicKey)
	if err != nil {
		return nil, err
	}
	return &AskOffer{PublicKey: pk, Asset: *asset, Seed: seed, DataInfo: dataInfo}, nil
}

// Free is a no-op retained for API-shape parity with the
// reference C bindings' create/free pairing.
func (tx *AskOffer) Free() {}

func (tx *AskOffer) IntoBytes() []byte {
	tx.freeze()
	w := newSegmentWriter(askBidOfferHeaderSize)
	header := make([]byte, 0, askBidOfferHeaderSize)
	header = append(header, tx.PublicKey[:]...)
	header = append(header, tx.Asset.encode()...)
	header = appendU64(header, tx.Seed)
	dataInfoPtr := w.appendSegment([]byte(tx.DataInfo))
	header = append(header, dataInfoPtr[:]...)

	payload := w.finish(header)
	return wrapEnvelope(MessageTypeAskOffer, payload)
}
