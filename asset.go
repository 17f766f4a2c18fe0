package dmbc

// assetHeaderSize is id(16) + amount(8); Asset has no segments.
const assetHeaderSize = 24

// Asset is an on-chain digital asset reference: an id and an amount.
// It has no variable-length fields, so it encodes as a flat 24-byte
// record with no segment pointers.
type Asset struct {
	ID     [16]byte
	Amount uint64
}

// NewAsset validates id (32 hex characters) and constructs an Asset.
func NewAsset(id string, amount uint64) (*Asset, *Error) {
	idBytes, err := decodeAssetID("asset id", id)
	if err != nil {
		return nil, err
	}
	return &Asset{ID: idBytes, Amount: amount}, nil
}

// Free is a no-op retained so a cgo wrapper can expose the same
// create/free pairing the reference C API does; Go's garbage collector
// already owns the memory.
func (a *Asset) Free() {}

func (a *Asset) encode() []byte {
	buf := make([]byte, 0, assetHeaderSize)
	buf = append(buf, a.ID[:]...)
	buf = appendU64(buf, a.Amount)
	return buf
}

// tradeAssetHeaderSize is id(16) + amount(8) + price(8).
const tradeAssetHeaderSize = 32

// TradeAsset is an Asset quoted at a price, used in trade offers and
// in the standalone ask/bid offer transactions.
type TradeAsset struct {
	ID     [16]byte
	Amount uint64
	Price  uint64
}

// NewTradeAsset validates id (32 hex characters) and constructs a TradeAsset.
func NewTradeAsset(id string, amount, price uint64) (*TradeAsset, *Error) {
	idBytes, err := decodeAssetID("trade asset id", id)
	if err != nil {
		return nil, err
	}
	return &TradeAsset{ID: idBytes, Amount: amount, Price: price}, nil
}

func (a *TradeAsset) Free() {}

func (a *TradeAsset) encode() []byte {
	buf := make([]byte, 0, tradeAssetHeaderSize)
	buf = append(buf, a.ID[:]...)
	buf = appendU64(buf, a.Amount)
	buf = appendU64(buf, a.Price)
	return buf
}

// encodeAssets concatenates the fixed-width encodings of a list of
// Asset in insertion order — no sort, no reordering (spec §4.2
// Determinism).
func encodeAssets(assets []Asset) []byte {
	buf := make([]byte, 0, assetHeaderSize*len(assets))
	for i := range assets {
		buf = append(buf, assets[i].encode()...)
	}
	return buf
}

// encodeTradeAssets concatenates the fixed-width encodings of a list
// of TradeAsset in insertion order.
func encodeTradeAssets(assets []TradeAsset) []byte {
	buf := make([]byte, 0, tradeAssetHeaderSize*len(assets))
	for i := range assets {
		buf = append(buf, assets[i].encode()...)
	}
	return buf
}
