package nostr

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/bloops-games/wordday/internal/bytespool"
)

const KindTextNote = 1

type Tag []string

// Event is a NIP-01 event.
type Event struct {
	ID        string `json:"id"`
	PubKey    string `json:"pubkey"`
	CreatedAt int64  `json:"created_at"`
	Kind      int    `json:"kind"`
	Tags      []Tag  `json:"tags"`
	Content   string `json:"content"`
	Sig       string `json:"sig"`
}

// serialize returns the canonical [0,pubkey,created_at,kind,tags,content] array
// the id is hashed from. Strings are escaped by the NIP-01 rules, which differ
// from encoding/json for U+2028, U+2029, backspace and form feed.
func (e *Event) serialize() []byte {
	buf := bytespool.Get()
	defer func() {
		buf.Reset()
		bytespool.Put(buf)
	}()

	buf.WriteString("[0,")
	writeString(buf, e.PubKey)
	buf.WriteByte(',')
	buf.WriteString(strconv.FormatInt(e.CreatedAt, 10))
	buf.WriteByte(',')
	buf.WriteString(strconv.Itoa(e.Kind))
	buf.WriteString(",[")
	for i, t := range e.Tags {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('[')
		for j, v := range t {
			if j > 0 {
				buf.WriteByte(',')
			}
			writeString(buf, v)
		}
		buf.WriteByte(']')
	}
	buf.WriteString("],")
	writeString(buf, e.Content)
	buf.WriteByte(']')

	return append([]byte(nil), buf.Bytes()...)
}

// writeString escapes the seven characters NIP-01 names and copies every other
// byte verbatim.
func writeString(buf *bytes.Buffer, s string) {
	buf.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		case '\b':
			buf.WriteString(`\b`)
		case '\f':
			buf.WriteString(`\f`)
		default:
			buf.WriteByte(c)
		}
	}
	buf.WriteByte('"')
}

func (e *Event) hash() [32]byte {
	return sha256.Sum256(e.serialize())
}

// Sign fills PubKey, ID and Sig.
func (e *Event) Sign(k *Keys) error {
	e.PubKey = k.public
	h := e.hash()

	sig, err := schnorr.Sign(k.secret, h[:])
	if err != nil {
		return fmt.Errorf("schnorr sign: %w", err)
	}

	e.ID = hex.EncodeToString(h[:])
	e.Sig = hex.EncodeToString(sig.Serialize())
	return nil
}

// CheckID recomputes the id from the event fields.
func (e *Event) CheckID() error {
	h := e.hash()
	if hex.EncodeToString(h[:]) != e.ID {
		return fmt.Errorf("event id mismatch")
	}
	return nil
}

// CheckSignature verifies Sig over ID. It does not recompute ID.
func (e *Event) CheckSignature() error {
	id, err := hex.DecodeString(e.ID)
	if err != nil || len(id) != 32 {
		return fmt.Errorf("malformed event id")
	}

	pk, err := hex.DecodeString(e.PubKey)
	if err != nil {
		return fmt.Errorf("decode pubkey: %w", err)
	}
	pub, err := schnorr.ParsePubKey(pk)
	if err != nil {
		return fmt.Errorf("parse pubkey: %w", err)
	}

	rawSig, err := hex.DecodeString(e.Sig)
	if err != nil {
		return fmt.Errorf("decode sig: %w", err)
	}
	sig, err := schnorr.ParseSignature(rawSig)
	if err != nil {
		return fmt.Errorf("parse sig: %w", err)
	}

	if !sig.Verify(id, pub) {
		return fmt.Errorf("bad signature")
	}

	return nil
}

// Refers reports whether the event carries an "e" tag pointing at id.
func (e *Event) Refers(id string) bool {
	for _, t := range e.Tags {
		if len(t) >= 2 && t[0] == "e" && t[1] == id {
			return true
		}
	}
	return false
}
