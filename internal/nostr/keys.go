package nostr

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/btcsuite/btcutil/bech32"
)

const (
	hrpSecret = "nsec"
	hrpPublic = "npub"
)

// Keys is the bot identity.
type Keys struct {
	secret *btcec.PrivateKey
	public string
}

// ParseKeys accepts a bech32 nsec or a hex encoded 32 byte secret key.
func ParseKeys(s string) (*Keys, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("secret key is empty")
	}

	var raw []byte
	if strings.HasPrefix(s, hrpSecret+"1") {
		b, err := decodeBech32(hrpSecret, s)
		if err != nil {
			return nil, err
		}
		raw = b
	} else {
		b, err := hex.DecodeString(s)
		if err != nil {
			return nil, fmt.Errorf("decode hex secret key: %w", err)
		}
		raw = b
	}

	if len(raw) != 32 {
		return nil, fmt.Errorf("secret key must be 32 bytes, got %d", len(raw))
	}

	secret, pub := btcec.PrivKeyFromBytes(raw)
	return &Keys{
		secret: secret,
		public: hex.EncodeToString(schnorr.SerializePubKey(pub)),
	}, nil
}

// PublicKey is the x-only public key in hex, the author id of our own events.
func (k *Keys) PublicKey() string {
	return k.public
}

// Npub encodes a hex public key as bech32.
func Npub(pubkey string) (string, error) {
	raw, err := hex.DecodeString(pubkey)
	if err != nil {
		return "", fmt.Errorf("decode hex public key: %w", err)
	}
	if len(raw) != 32 {
		return "", fmt.Errorf("public key must be 32 bytes, got %d", len(raw))
	}

	conv, err := bech32.ConvertBits(raw, 8, 5, true)
	if err != nil {
		return "", fmt.Errorf("convert bits: %w", err)
	}

	return bech32.Encode(hrpPublic, conv)
}

// Mention renders an author id the way clients link profiles inside a note.
func Mention(pubkey string) string {
	npub, err := Npub(pubkey)
	if err != nil {
		return pubkey
	}
	return "nostr:" + npub
}

func decodeBech32(hrp, s string) ([]byte, error) {
	gotHRP, data, err := bech32.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("decode bech32: %w", err)
	}
	if gotHRP != hrp {
		return nil, fmt.Errorf("expected %s prefix, got %s", hrp, gotHRP)
	}

	raw, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return nil, fmt.Errorf("convert bits: %w", err)
	}

	return raw, nil
}
