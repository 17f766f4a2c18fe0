package dmbc

// transferFeesPayerOfferHeaderSize: from(32) + to(32) + fees_payer(32) +
// amount(8) + S(assets)(8) + seed(8) + S(data_info)(8).
const transferFeesPayerOfferHeaderSize = 32 + 32 + 32 + 8 + 8 + 8 + 8

// TransferFeesPayerOffer is the pre-signature record describing a
// transfer whose network fees are charged to a separate fees_payer
// wallet rather than the sender (spec §4.4).
type TransferFeesPayerOffer struct {
	From      [32]byte
	To        [32]byte
	FeesPayer [32]byte
	Amount    uint64
	Assets    []Asset
	Seed      uint64
	DataInfo  string
}

// NewTransferFeesPayerOffer validates all three public keys and
// constructs an empty TransferFeesPayerOffer; assets are attached
// afterward with AddAsset.
func NewTransferFeesPayerOffer(fromKey, toKey, feesPayerKey string, amount uint64, seed uint64, dataInfo string) (*TransferFeesPayerOffer, *Error) {
	from, err := decodePublicKey("from", fromKey)
	if err != nil {
		return nil, err
	}
	to, err := decodePublicKey("to", toKey)
	if err != nil {
		return nil, err
	}
	feesPayer, err := decodePublicKey("fees_payer", feesPayerKey)
	if err != nil {
		return nil, err
	}
	return &TransferFeesPayerOffer{From: from, To: to, FeesPayer: feesPayer, Amount: amount, Seed: seed, DataInfo: dataInfo}, nil
}

func (o *TransferFeesPayerOffer) AddAsset(asset *Asset) {
	o.Assets = append(o.Assets, *asset)
}

func (o *TransferFeesPayerOffer) Free() {}

func (o *TransferFeesPayerOffer) IntoBytes() []byte {
	return o.encode()
}

func (o *TransferFeesPayerOffer) encode() []byte {
	w := newSegmentWriter(transferFeesPayerOfferHeaderSize)
	header := make([]byte, 0, transferFeesPayerOfferHeaderSize)
	header = append(header, o.From[:]...)
	header = append(header, o.To[:]...)
	header = append(header, o.FeesPayer[:]...)
	header = appendU64(header, o.Amount)
	assetsPtr := w.appendSegment(encodeAssets(o.Assets))
	header = append(header, assetsPtr[:]...)
	header = appendU64(header, o.Seed)
	dataInfoPtr := w.appendSegment([]byte(o.DataInfo))
	header = append(header, dataInfoPtr[:]...)
	return w.finish(header)
}
