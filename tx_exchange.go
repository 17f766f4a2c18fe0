package dmbc

// exchangeHeaderSize: S(offer)(8) + signature(64).
const exchangeHeaderSize = 8 + 64

// Exchange builds an asset exchange between a sender and a recipient,
// authorized by the sender's signature over the inner offer.
type Exchange struct {
	frozenState
	offer           ExchangeOffer
	senderSignature [64]byte
}

// NewExchange validates sender_signature and deep-copies offer: the
// caller remains free to mutate or release its own offer afterward.
func NewExchange(offer *ExchangeOffer, senderSignature string) (*Exchange, *Error) {
	sig, err := decodeSignature("sender_signature", senderSignature)
	if err != nil {
		return nil, err
	}
	o := *offer
	o.SenderAssets = append([]Asset(nil), offer.SenderAssets...)
	o.RecipientAssets = append([]Asset(nil), offer.RecipientAssets...)
	return &Exchange{offer: o, senderSignature: sig}, nil
}

// Free is a no-op retained for API-shape parity with the
// reference C bindings' create/free pairing.
func (tx *Exchange) Free() {}

func (tx *Exchange) IntoBytes() []byte {
	tx.freeze()
	w := newSegmentWriter(exchangeHeaderSize)
	header := make([]byte, 0, exchangeHeaderSize)
	offerPtr := w.appendSegment(tx.offer.encode())
	header = append(header, offerPtr[:]...)
	header = append(header, tx.senderSignature[:]...)

	payload := w.finish(header)
	return wrapEnvelope(MessageTypeExchange, payload)
}
