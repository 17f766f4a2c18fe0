package dmbc

// exchangeOfferHeaderSize: sender(32) + sender_value(8) + S(sender_assets)(8)
// + recipient(32) + S(recipient_assets)(8) + fee_strategy(1) + seed(8) + S(memo)(8).
const exchangeOfferHeaderSize = 32 + 8 + 8 + 32 + 8 + 1 + 8 + 8

// ExchangeOffer is the pre-signature record describing an asset
// exchange between a sender and a recipient (spec §4.4).
type ExchangeOffer struct {
	Sender        [32]byte
	SenderValue   uint64
	SenderAssets  []Asset
	Recipient     [32]byte
	RecipientAssets []Asset
	FeeStrategy   uint8
	Seed          uint64
	Memo          string
}

// NewExchangeOffer validates both public keys and the fee strategy and
// constructs an empty ExchangeOffer; assets are attached afterward with
// AddSenderAsset / AddRecipientAsset.
func NewExchangeOffer(senderKey string, senderValue uint64, recipientKey string, feeStrategy uint8, seed uint64, memo string) (*ExchangeOffer, *Error) {
	sender, err := decodePublicKey("sender", senderKey)
	if err != nil {
		return nil, err
	}
	recipient, err := decodePublicKey("recipient", recipientKey)
	if err != nil {
		return nil, err
	}
	if err := validFeeStrategy(feeStrategy); err != nil {
		return nil, err
	}
	return &ExchangeOffer{
		Sender:      sender,
		SenderValue: senderValue,
		Recipient:   recipient,
		FeeStrategy: feeStrategy,
		Seed:        seed,
		Memo:        memo,
	}, nil
}

// AddSenderAsset attaches a deep copy of asset to the sender's side of
// the offer.
func (o *ExchangeOffer) AddSenderAsset(asset *Asset) {
	o.SenderAssets = append(o.SenderAssets, *asset)
}

// AddRecipientAsset attaches a deep copy of asset to the recipient's
// side of the offer.
func (o *ExchangeOffer) AddRecipientAsset(asset *Asset) {
	o.RecipientAssets = append(o.RecipientAssets, *asset)
}

func (o *ExchangeOffer) Free() {}

// IntoBytes returns the canonical encoding of the offer on its own;
// callers normally only need this for inspection, since the
// transaction constructors that take an offer encode it internally.
func (o *ExchangeOffer) IntoBytes() []byte {
	return o.encode()
}

func (o *ExchangeOffer) encode() []byte {
	w := newSegmentWriter(exchangeOfferHeaderSize)
	header := make([]byte, 0, exchangeOfferHeaderSize)
	header = append(header, o.Sender[:]...)
	header = appendU64(header, o.SenderValue)
	senderAssetsPtr := w.appendSegment(encodeAssets(o.SenderAssets))
	header = append(header, senderAssetsPtr[:]...)
	header = append(header, o.Recipient[:]...)
	recipientAssetsPtr := w.appendSegment(encodeAssets(o.RecipientAssets))
	header = append(header, recipientAssetsPtr[:]...)
	header = appendU8(header, o.FeeStrategy)
	header = appendU64(header, o.Seed)
	memoPtr := w.appendSegment([]byte(o.Memo))
	header = append(header, memoPtr[:]...)
	return w.finish(header)
}

// exchangeOfferIntermediaryHeaderSize: S(intermediary)(8) + sender(32) +
// sender_value(8) + S(sender_assets)(8) + recipient(32) +
// S(recipient_assets)(8) + fee_strategy(1) + seed(8) + S(memo)(8).
const exchangeOfferIntermediaryHeaderSize = 8 + 32 + 8 + 8 + 32 + 8 + 1 + 8 + 8

// ExchangeOfferIntermediary is an ExchangeOffer that routes a
// commission through a third-party Intermediary.
type ExchangeOfferIntermediary struct {
	Intermediary    Intermediary
	Sender          [32]byte
	SenderValue     uint64
	SenderAssets    []Asset
	Recipient       [32]byte
	RecipientAssets []Asset
	FeeStrategy     uint8
	Seed            uint64
	Memo            string
}

func NewExchangeOfferIntermediary(intermediary *Intermediary, senderKey string, senderValue uint64, recipientKey string, feeStrategy uint8, seed uint64, memo string) (*ExchangeOfferIntermediary, *Error) {
	sender, err := decodePublicKey("sender", senderKey)
	if err != nil {
		return nil, err
	}
	recipient, err := decodePublicKey("recipient", recipientKey)
	if err != nil {
		return nil, err
	}
	if err := validFeeStrategy(feeStrategy); err != nil {
		return nil, err
	}
	return &ExchangeOfferIntermediary{
		Intermediary: *intermediary,
		Sender:       sender,
		SenderValue:  senderValue,
		Recipient:    recipient,
		FeeStrategy:  feeStrategy,
		Seed:         seed,
		Memo:         memo,
	}, nil
}

func (o *ExchangeOfferIntermediary) AddSenderAsset(asset *Asset) {
	o.SenderAssets = append(o.SenderAssets, *asset)
}

func (o *ExchangeOfferIntermediary) AddRecipientAsset(asset *Asset) {
	o.RecipientAssets = append(o.RecipientAssets, *asset)
}

func (o *ExchangeOfferIntermediary) Free() {}

func (o *ExchangeOfferIntermediary) IntoBytes() []byte {
	return o.encode()
}

func (o *ExchangeOfferIntermediary) encode() []byte {
	w := newSegmentWriter(exchangeOfferIntermediaryHeaderSize)
	header := make([]byte, 0, exchangeOfferIntermediaryHeaderSize)
	intermediaryPtr := w.appendSegment(o.Intermediary.encode())
	header = append(header, intermediaryPtr[:]...)
	header = append(header, o.Sender[:]...)
	header = appendU64(header, o.SenderValue)
	senderAssetsPtr := w.appendSegment(encodeAssets(o.SenderAssets))
	header = append(header, senderAssetsPtr[:]...)
	header = append(header, o.Recipient[:]...)
	recipientAssetsPtr := w.appendSegment(encodeAssets(o.RecipientAssets))
	header = append(header, recipientAssetsPtr[:]...)
	header = appendU8(header, o.FeeStrategy)
	header = appendU64(header, o.Seed)
	memoPtr := w.appendSegment([]byte(o.Memo))
	header = append(header, memoPtr[:]...)
	return w.finish(header)
}
