package dmbc

// tradeOfferHeaderSize: buyer(32) + seller(32) + S(assets)(8) +
// fee_strategy(1) + seed(8) + S(data_info)(8).
const tradeOfferHeaderSize = 32 + 32 + 8 + 1 + 8 + 8

// TradeOffer is the pre-signature record describing a direct trade
// between a buyer and a seller (spec §4.4).
type TradeOffer struct {
	Buyer       [32]byte
	Seller      [32]byte
	Assets      []TradeAsset
	FeeStrategy uint8
	Seed        uint64
	DataInfo    string
}

// NewTradeOffer validates both public keys and the fee strategy and
// constructs an empty TradeOffer; assets are attached with AddAsset.
func NewTradeOffer(buyerKey, sellerKey string, feeStrategy uint8, seed uint64, dataInfo string) (*TradeOffer, *Error) {
	buyer, err := decodePublicKey("buyer", buyerKey)
	if err != nil {
		return nil, err
	}
	seller, err := decodePublicKey("seller", sellerKey)
	if err != nil {
		return nil, err
	}
	if err := validFeeStrategy(feeStrategy); err != nil {
		return nil, err
	}
	return &TradeOffer{Buyer: buyer, Seller: seller, FeeStrategy: feeStrategy, Seed: seed, DataInfo: dataInfo}, nil
}

func (o *TradeOffer) AddAsset(asset *TradeAsset) {
	o.Assets = append(o.Assets, *asset)
}

func (o *TradeOffer) Free() {}

func (o *TradeOffer) IntoBytes() []byte {
	return o.encode()
}

func (o *TradeOffer) encode() []byte {
	w := newSegmentWriter(tradeOfferHeaderSize)
	header := make([]byte, 0, tradeOfferHeaderSize)
	header = append(header, o.Buyer[:]...)
	header = append(header, o.Seller[:]...)
	assetsPtr := w.appendSegment(encodeTradeAssets(o.Assets))
	header = append(header, assetsPtr[:]...)
	header = appendU8(header, o.FeeStrategy)
	header = appendU64(header, o.Seed)
	dataInfoPtr := w.appendSegment([]byte(o.DataInfo))
	header = append(header, dataInfoPtr[:]...)
	return w.finish(header)
}

// tradeOfferIntermediaryHeaderSize: S(intermediary)(8) + buyer(32) +
// seller(32) + S(assets)(8) + fee_strategy(1) + seed(8) + S(data_info)(8).
const tradeOfferIntermediaryHeaderSize = 8 + 32 + 32 + 8 + 1 + 8 + 8

// TradeOfferIntermediary is a TradeOffer that routes a commission
// through a third-party Intermediary.
type TradeOfferIntermediary struct {
	Intermediary Intermediary
	Buyer        [32]byte
	Seller       [32]byte
	Assets       []TradeAsset
	FeeStrategy  uint8
	Seed         uint64
	DataInfo     string
}

func NewTradeOfferIntermediary(intermediary *Intermediary, buyerKey, sellerKey string, feeStrategy uint8, seed uint64, dataInfo string) (*TradeOfferIntermediary, *Error) {
	buyer, err := decodePublicKey("buyer", buyerKey)
	if err != nil {
		return nil, err
	}
	seller, err := decodePublicKey("seller", sellerKey)
	if err != nil {
		return nil, err
	}
	if err := validFeeStrategy(feeStrategy); err != nil {
		return nil, err
	}
	return &TradeOfferIntermediary{
		Intermediary: *intermediary,
		Buyer:        buyer,
		Seller:       seller,
		FeeStrategy:  feeStrategy,
		Seed:         seed,
		DataInfo:     dataInfo,
	}, nil
}

func (o *TradeOfferIntermediary) AddAsset(asset *TradeAsset) {
	o.Assets = append(o.Assets, *asset)
}

func (o *TradeOfferIntermediary) Free() {}

func (o *TradeOfferIntermediary) IntoBytes() []byte {
	return o.encode()
}

func (o *TradeOfferIntermediary) encode() []byte {
	w := newSegmentWriter(tradeOfferIntermediaryHeaderSize)
	header := make([]byte, 0, tradeOfferIntermediaryHeaderSize)
	intermediaryPtr := w.appendSegment(o.Intermediary.encode())
	header = append(header, intermediaryPtr[:]...)
	header = append(header, o.Buyer[:]...)
	header = append(header, o.Seller[:]...)
	assetsPtr := w.appendSegment(encodeTradeAssets(o.Assets))
	header = append(header, assetsPtr[:]...)
	header = appendU8(header, o.FeeStrategy)
	header = appendU64(header, o.Seed)
	dataInfoPtr := w.appendSegment([]byte(o.DataInfo))
	header = append(header, dataInfoPtr[:]...)
	return w.finish(header)
}
