package dmbc

import (
	"github.com/ethereum/go-ethereum/common"
)

// Fixed byte widths for the hex-encoded identifiers named in the data
// model (spec §3). Input strings are exactly double these in length.
const (
	publicKeyBytes = 32
	signatureBytes = 64
	assetIDBytes   = 16
)

// isHexString reports whether s contains only hex digits. go-ethereum's
// own common.Hex2Bytes silently drops malformed input (it discards the
// decode error), so the length and character-class checks spec §4.1
// requires are done here before handing the string to it.
func isHexString(s string) bool {
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// decodeFixedHex validates that s is exactly wantBytes*2 hex characters
// and decodes it. label is used only to build the error message.
func decodeFixedHex(label, s string, wantBytes int) ([]byte, *Error) {
	if len(s) != wantBytes*2 {
		return nil, newError(KindInvalidHex, "%s: expected %d hex characters, got %d", label, wantBytes*2, len(s))
	}
	if !isHexString(s) {
		return nil, newError(KindInvalidHex, "%s: contains a non-hex character", label)
	}
	return common.Hex2Bytes(s), nil
}

func decodePublicKey(label, s string) ([32]byte, *Error) {
	var out [32]byte
	b, err := decodeFixedHex(label, s, publicKeyBytes)
	if err != nil {
		return out, err
	}
	copy(out[:], b)
	return out, nil
}

func decodeSignature(label, s string) ([64]byte, *Error) {
	var out [64]byte
	b, err := decodeFixedHex(label, s, signatureBytes)
	if err != nil {
		return out, err
	}
	copy(out[:], b)
	return out, nil
}

func decodeAssetID(label, s string) ([16]byte, *Error) {
	var out [16]byte
	b, err := decodeFixedHex(label, s, assetIDBytes)
	if err != nil {
		return out, err
	}
	copy(out[:], b)
	return out, nil
}
