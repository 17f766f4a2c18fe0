// Command dmbc-keygen generates ed25519 key material and, optionally,
// a signature over a hex-encoded digest. It exists to produce the
// signature and public-key fixtures that offer-bearing transactions
// take as hex string inputs; this core never signs anything itself.
//
// Usage:
//
//	dmbc-keygen generate
//	dmbc-keygen sign HEX_PRIVATE_KEY HEX_DIGEST
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(-1)
	}

	switch os.Args[1] {
	case "generate":
		if len(os.Args) != 2 {
			usage()
			os.Exit(-1)
		}
		generate()
	case "sign":
		if len(os.Args) != 4 {
			usage()
			os.Exit(-1)
		}
		sign(os.Args[2], os.Args[3])
	default:
		usage()
		os.Exit(-1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: dmbc-keygen generate")
	fmt.Fprintln(os.Stderr, "       dmbc-keygen sign HEX_PRIVATE_KEY HEX_DIGEST")
}

type keyPair struct {
	PublicKey  string `json:"public_key"`
	PrivateKey string `json:"private_key"`
}

func generate() {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: generating key: %s\n", err)
		os.Exit(1)
	}
	out, err := json.Marshal(keyPair{
		PublicKey:  hex.EncodeToString(pub),
		PrivateKey: hex.EncodeToString(priv),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: encoding key pair: %s\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}

func sign(privateKeyHex, digestHex string) {
	priv, err := hex.DecodeString(privateKeyHex)
	if err != nil || len(priv) != ed25519.PrivateKeySize {
		fmt.Fprintln(os.Stderr, "ERROR: HEX_PRIVATE_KEY must be a 64-byte hex-encoded ed25519 private key")
		os.Exit(1)
	}
	digest, err := hex.DecodeString(digestHex)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: HEX_DIGEST is not valid hex: %s\n", err)
		os.Exit(1)
	}
	sig := ed25519.Sign(ed25519.PrivateKey(priv), digest)
	fmt.Println(hex.EncodeToString(sig))
}
