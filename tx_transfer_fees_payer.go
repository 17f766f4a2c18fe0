package dmbc

// transferFeesPayerHeaderSize: S(offer)(8) + signature(64).
const transferFeesPayerHeaderSize = 8 + 64

// TransferFeesPayer builds a transfer whose network fees are charged
// to a wallet other than the sender, authorized by the fees payer's
// own signature over the inner offer.
type TransferFeesPayer struct {
	frozenState
	offer              TransferFeesPayerOffer
	feesPayerSignature [64]byte
}

// NewTransferFeesPayer validates fees_payer_signature and deep-copies
// offer: the caller remains free to mutate or release its own offer
// afterward.
func NewTransferFeesPayer(offer *TransferFeesPayerOffer, feesPayerSignature string) (*TransferFeesPayer, *Error) {
	sig, err := decodeSignature("fees_payer_signature", feesPayerSignature)
	if err != nil {
		return nil, err
	}
	o := *offer
	o.Assets = append([]Asset(nil), offer.Assets...)
	return &TransferFeesPayer{offer: o, feesPayerSignature: sig}, nil
}

// Free is a no-op retained for API-shape parity with the
// reference C bindings' create/free pairing.
func (tx *TransferFeesPayer) Free() {}

func (tx *TransferFeesPayer) IntoBytes() []byte {
	tx.freeze()
	w := newSegmentWriter(transferFeesPayerHeaderSize)
	header := make([]byte, 0, transferFeesPayerHeaderSize)
	offerPtr := w.appendSegment(tx.offer.encode())
	header = append(header, offerPtr[:]...)
	header = append(header, tx.feesPayerSignature[:]...)

	payload := w.finish(header)
	return wrapEnvelope(MessageTypeTransferFeesPayer, payload)
}
