package dmbc

// deleteAssetsHeaderSize: public_key(32) + S(assets)(8) + seed(8).
const deleteAssetsHeaderSize = 32 + 8 + 8

// DeleteAssets builds the transaction that burns a set of existing
// assets owned by public_key.
type DeleteAssets struct {
	frozenState
	PublicKey [32]byte
	Seed      uint64
	assets    []Asset
}

// NewDeleteAssets validates the owner's public key and constructs an
// empty DeleteAssets builder; assets are attached with AddAsset.
func NewDeleteAssets(publicKey string, seed uint64) (*DeleteAssets, *Error) {
	pk, err := decodePublicKey("public_key", publicKey)
	if err != nil {
		return nil, err
	}
	return &DeleteAssets{PublicKey: pk, Seed: seed}, nil
}

func (tx *DeleteAssets) AddAsset(asset *Asset) *Error {
	if err := tx.checkOpen("DeleteAssets.AddAsset"); err != nil {
		return err
	}
	tx.assets = append(tx.assets, *asset)
	return nil
}

// Free is a no-op retained for API-shape parity with the
// reference C bindings' create/free pairing.
func (tx *DeleteAssets) Free() {}

func (tx *DeleteAssets) IntoBytes() []byte {
	tx.freeze()
	w := newSegmentWriter(deleteAssetsHeaderSize)
	header := make([]byte, 0, deleteAssetsHeaderSize)
	header = append(header, tx.PublicKey[:]...)
	assetsPtr := w.appendSegment(encodeAssets(tx.assets))
	header = append(header, assetsPtr[:]...)
	header = appendU64(header, tx.Seed)

	payload := w.finish(header)
	return wrapEnvelope(MessageTypeDeleteAssets, payload)
}
