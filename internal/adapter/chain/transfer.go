package chain

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"fmt"

	"custody-treasury/internal/core/domain"
)

// transferVersion tags the wire encoding so the node can reject messages
// from incompatible client builds.
const transferVersion = byte(1)

// encodeTransfer serializes and signs a transfer instruction. Layout:
// version | from | to | amount (u64 BE) | blockhash, each string
// length-prefixed, followed by the ed25519 signature over the message.
// The whole envelope is base64 for transport.
func encodeTransfer(from *domain.Keypair, to string, amount uint64, blockhash string) (string, error) {
	msg, err := transferMessage(from.Address(), to, amount, blockhash)
	if err != nil {
		return "", err
	}

	sig := from.Sign(msg)

	var buf bytes.Buffer
	buf.Write(msg)
	buf.Write(sig)
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func transferMessage(from, to string, amount uint64, blockhash string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte(transferVersion)
	for _, s := range []string{from, to} {
		if err := writeString(&buf, s); err != nil {
			return nil, err
		}
	}
	if err := binary.Write(&buf, binary.BigEndian, amount); err != nil {
		return nil, fmt.Errorf("encoding amount: %w", err)
	}
	if err := writeString(&buf, blockhash); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeString(buf *bytes.Buffer, s string) error {
	if len(s) > 255 {
		return fmt.Errorf("field too long: %d bytes", len(s))
	}
	buf.WriteByte(byte(len(s)))
	buf.WriteString(s)
	return nil
}
