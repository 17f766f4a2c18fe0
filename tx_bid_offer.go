package dmbc

// BidOffer builds a standing offer to buy a TradeAsset at its quoted
// price. It shares its wire layout with AskOffer (askBidOfferHeaderSize)
// and differs only in message_type.
type BidOffer struct {
	frozenState
	PublicKey [32]byte
	Asset     TradeAsset
	Seed      uint64
	DataInfo  string
}

func NewBidOffer(publicKey string, asset *TradeAsset, seed uint64, dataInfo string) (*BidOffer, *Error) {
	pk, err := decodePublicKey("public_key", publicKey)
	if err != nil {
		return nil, err
	}
	return &BidOffer{PublicKey: pk, Asset: *asset, Seed: seed, DataInfo: dataInfo}, nil
}

// Free is a no-op retained for API-shape parity with the
// reference C bindings' create/free pairing.
func (tx *BidOffer) Free() {}

func (tx *BidOffer) IntoBytes() []byte {
	tx.freeze()
	w := newSegmentWriter(askBidOfferHeaderSize)
	header := make([]byte, 0, askBidOfferHeaderSize)
	header = append(header, tx.PublicKey[:]...)
	header = append(header, tx.Asset.encode()...)
	header = appendU64(header, tx.Seed)
	dataInfoPtr := w.appendSegment([]byte(tx.DataInfo))
	header = append(header, dataInfoPtr[:]...)

	payload := w.finish(header)
	return wrapEnvelope(MessageTypeBidOffer, payload)
}
