package dmbc

// exchangeIntermediaryHeaderSize: S(offer)(8) + sender_sig(64) +
// intermediary_sig(64).
const exchangeIntermediaryHeaderSize = 8 + 64 + 64

// ExchangeIntermediary builds an asset exchange routed through a
// commission-earning intermediary, authorized by both the sender's
// and the intermediary's signatures over the inner offer.
type ExchangeIntermediary struct {
	frozenState
	offer                 ExchangeOfferIntermediary
	senderSignature       [64]byte
	intermediarySignature [64]byte
}

// NewExchangeIntermediary validates both signatures and deep-copies
// offer: the caller remains free to mutate or release its own offer
// afterward.
func NewExchangeIntermediary(offer *ExchangeOfferIntermediary, senderSignature, intermediarySignature string) (*ExchangeIntermediary, *Error) {
	senderSig, err := decodeSignature("sender_signature", senderSignature)
	if err != nil {
		return nil, err
	}
	intermediarySig, err := decodeSignature("intermediary_signature", intermediarySignature)
	if err != nil {
		return nil, err
	}
	o := *offer
	o.SenderAssets = append([]Asset(nil), offer.SenderAssets...)
	o.RecipientAssets = append([]Asset(nil), offer.RecipientAssets...)
	return &ExchangeIntermediary{offer: o, senderSignature: senderSig, intermediarySignature: intermediarySig}, nil
}

// Free is a no-op retained for API-shape parity with the
// reference C bindings' create/free pairing.
func (tx *ExchangeIntermediary) Free() {}

func (tx *ExchangeIntermediary) IntoBytes() []byte {
	tx.freeze()
	w := newSegmentWriter(exchangeIntermediaryHeaderSize)
	header := make([]byte, 0, exchangeIntermediaryHeaderSize)
	offerPtr := w.appendSegment(tx.offer.encode())
	header = append(header, offerPtr[:]...)
	header = append(header, tx.senderSignature[:]...)
	header = append(header, tx.intermediarySignature[:]...)

	payload := w.finish(header)
	return wrapEnvelope(MessageTypeExchangeIntermediary, payload)
}
