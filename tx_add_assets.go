package dmbc

// addAssetsHeaderSize: public_key(32) + S(assets)(8) + seed(8).
const addAssetsHeaderSize = 32 + 8 + 8

// addAssetEntryHeaderSize: S(meta_data)(8) + amount(8) + fees(72, inline)
// + receiver(32). Unlike every other variable-length collection in this
// package, fees is written inline rather than through a segment pointer
// (spec §4.6, confirmed by the worked AddAssets example in §8).
const addAssetEntryHeaderSize = 8 + 8 + feesSize + 32

// addAssetEntry is one item of an AddAssets transaction: a newly minted
// asset with metadata, an amount, its fee schedule, and the wallet that
// receives it.
type addAssetEntry struct {
	metaData string
	amount   uint64
	fees     Fees
	receiver [32]byte
}

func (e *addAssetEntry) encode() []byte {
	w := newSegmentWriter(addAssetEntryHeaderSize)
	header := make([]byte, 0, addAssetEntryHeaderSize)
	metaPtr := w.appendSegment([]byte(e.metaData))
	header = append(header, metaPtr[:]...)
	header = appendU64(header, e.amount)
	header = append(header, e.fees.encode()...)
	header = append(header, e.receiver[:]...)
	return w.finish(header)
}

// AddAssets builds the transaction that mints new assets onto the
// network, each with its own metadata, fee schedule, and receiver.
type AddAssets struct {
	frozenState
	PublicKey [32]byte
	Seed      uint64
	entries   []addAssetEntry
}

// NewAddAssets validates the issuer's public key and constructs an
// empty AddAssets builder; entries are attached with AddAsset.
func NewAddAssets(publicKey string, seed uint64) (*AddAssets, *Error) {
	pk, err := decodePublicKey("public_key", publicKey)
	if err != nil {
		return nil, err
	}
	return &AddAssets{PublicKey: pk, Seed: seed}, nil
}

// AddAsset attaches one newly minted asset entry to the transaction.
// name is the asset's metadata string, and receiverKey names the
// wallet that will hold it once the transaction is committed.
func (tx *AddAssets) AddAsset(name string, amount uint64, fees *Fees, receiverKey string) *Error {
	if err := tx.checkOpen("AddAssets.AddAsset"); err != nil {
		return err
	}
	receiver, err := decodePublicKey("receiver_key", receiverKey)
	if err != nil {
		return err
	}
	tx.entries = append(tx.entries, addAssetEntry{
		metaData: name,
		amount:   amount,
		fees:     *fees,
		receiver: receiver,
	})
	return nil
}

// Free is a no-op retained for API-shape parity with the
// reference C bindings' create/free pairing.
func (tx *AddAssets) Free() {}

// IntoBytes freezes the builder and returns the envelope-wrapped
// encoding of the transaction. Further AddAsset calls fail afterward.
func (tx *AddAssets) IntoBytes() []byte {
	tx.freeze()
	w := newSegmentWriter(addAssetsHeaderSize)
	header := make([]byte, 0, addAssetsHeaderSize)
	header = append(header, tx.PublicKey[:]...)

	assetsBody := make([]byte, 0)
	for i := range tx.entries {
		assetsBody = append(assetsBody, tx.entries[i].encode()...)
	}
	assetsPtr := w.appendSegment(assetsBody)
	header = append(header, assetsPtr[:]...)
	header = appendU64(header, tx.Seed)

	payload := w.finish(header)
	return wrapEnvelope(MessageTypeAddAssets, payload)
}
