package ledger

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"unicode/utf16"

	"github.com/goodnatureofminers/matchledger/internal/model"
)

// Digest returns the SHA-256 of the canonical serialization of block, or the
// empty hash when block is nil.
func Digest(block *model.Block) model.Hash {
	if block == nil {
		return ""
	}
	sum := sha256.Sum256(Canonical(*block))
	return model.Hash(hex.EncodeToString(sum[:]))
}

// Canonical renders a block as a key-sorted JSON object:
//
//	{"edition": ..., "index": ..., "previous_hash": ..., "result": ..., "timestamp": ...}
//
// Separators are ", " and ": " and non-ASCII runes are escaped, so digests agree
// with nodes that hash with a sort_keys JSON dump.
func Canonical(block model.Block) []byte {
	var buf bytes.Buffer
	buf.WriteString(`{"edition": `)
	writeString(&buf, block.Edition)
	buf.WriteString(`, "index": `)
	buf.WriteString(strconv.Itoa(block.Index))
	buf.WriteString(`, "previous_hash": `)
	if block.PreviousHash.Empty() {
		buf.WriteString("null")
	} else {
		writeString(&buf, string(block.PreviousHash))
	}
	buf.WriteString(`, "result": `)
	writeString(&buf, block.Result)
	buf.WriteString(`, "timestamp": `)
	writeString(&buf, block.Timestamp.String())
	buf.WriteByte('}')
	return buf.Bytes()
}

// CanonicalObject renders a string map in the same key-sorted form as Canonical.
func CanonicalObject(fields map[string]string) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			buf.WriteString(", ")
		}
		writeString(&buf, k)
		buf.WriteString(": ")
		writeString(&buf, fields[k])
	}
	buf.WriteByte('}')
	return buf.String()
}

func writeString(buf *bytes.Buffer, s string) {
	var quoted bytes.Buffer
	enc := json.NewEncoder(&quoted)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		// strings always encode
		panic(fmt.Sprintf("encode string: %v", err))
	}
	out := bytes.TrimSuffix(quoted.Bytes(), []byte("\n"))
	for _, r := range string(out) {
		switch {
		case r < 0x7f:
			buf.WriteRune(r)
		case r > 0xFFFF:
			hi, lo := utf16.EncodeRune(r)
			fmt.Fprintf(buf, `\u%04x\u%04x`, hi, lo)
		default:
			fmt.Fprintf(buf, `\u%04x`, r)
		}
	}
}
