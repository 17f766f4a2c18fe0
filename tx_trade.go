package dmbc

// tradeHeaderSize: S(offer)(8) + seller_sig(64).
const tradeHeaderSize = 8 + 64

// Trade builds a direct trade between a buyer and a seller, authorized
// by the seller's signature over the inner offer.
type Trade struct {
	frozenState
	offer           TradeOffer
	sellerSignature [64]byte
}

// NewTrade validates seller_signature and deep-copies offer: the
// caller remains free to mutate or release its own offer afterward.
func NewTrade(offer *TradeOffer, sellerSignature string) (*Trade, *Error) {
	sig, err := decodeSignature("seller_signature", sellerSignature)
	if err != nil {
		return nil, err
	}
	o := *offer
	o.Assets = append([]TradeAsset(nil), offer.Assets...)
	return &Trade{offer: o, sellerSignature: sig}, nil
}

// Free is a no-op retained for API-shape parity with the
// reference C bindings' create/free pairing.
func (tx *Trade) Free() {}

func (tx *Trade) IntoBytes() []byte {
	tx.freeze()
	w := newSegmentWriter(tradeHeaderSize)
	header := make([]byte, 0, tradeHeaderSize)
	offerPtr := w.appendSegment(tx.offer.encode())
	header = append(header, offerPtr[:]...)
	header = append(header, tx.sellerSignature[:]...)

	payload := w.finish(header)
	return wrapEnvelope(MessageTypeTrade, payload)
}
