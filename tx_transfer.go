package dmbc

// transferHeaderSize: from(32) + to(32) + amount(8) + S(assets)(8) +
// seed(8) + S(memo)(8).
const transferHeaderSize = 32 + 32 + 8 + 8 + 8 + 8

// Transfer builds a direct, fee-free transfer of assets (and/or bare
// value) from one wallet to another.
type Transfer struct {
	frozenState
	From   [32]byte
	To     [32]byte
	Amount uint64
	Seed   uint64
	Memo   string
	assets []Asset
}

func NewTransfer(fromKey, toKey string, amount uint64, seed uint64, memo string) (*Transfer, *Error) {
	from, err := decodePublicKey("from", fromKey)
	if err != nil {
		return nil, err
	}
	to, err := decodePublicKey("to", toKey)
	if err != nil {
		return nil, err
	}
	return &Transfer{From: from, To: to, Amount: amount, Seed: seed, Memo: memo}, nil
}

func (tx *Transfer) AddAsset(asset *Asset) *Error {
	if err := tx.checkOpen("Transfer.AddAsset"); err != nil {
		return err
	}
	tx.assets = append(tx.assets, *asset)
	return nil
}

// Free is a no-op retained for API-shape parity with the
// reference C bindings' create/free pairing.
func (tx *Transfer) Free() {}

func (tx *Transfer) IntoBytes() []byte {
	tx.freeze()
	w := newSegmentWriter(transferHeaderSize)
	header := make([]byte, 0, transferHeaderSize)
	header = append(header, tx.From[:]...)
	header = append(header, tx.To[:]...)
	header = appendU64(header, tx.Amount)
	assetsPtr := w.appendSegment(encodeAssets(tx.assets))
	header = append(header, assetsPtr[:]...)
	header = appendU64(header, tx.Seed)
	memoPtr := w.appendSegment([]byte(tx.Memo))
	header = append(header, memoPtr[:]...)

	payload := w.finish(header)
	return wrapEnvelope(MessageTypeTransfer, payload)
}
