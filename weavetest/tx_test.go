package weavetest

import (
	"bytes"
	"testing"

	"github.com/iov-one/xswap"
	"github.com/iov-one/xswap/errors"
)

func TestSequenceID(t *testing.T) {
	numToEnc := map[uint64][]byte{
		1:      {0, 0, 0, 0, 0, 0, 0, 1},
		123:    {0, 0, 0, 0, 0, 0, 0, 123},
		123123: {0, 0, 0, 0, 0, 1, 224, 243},
	}
	for id, want := range numToEnc {
		got := SequenceID(id)
		if !bytes.Equal(want, got) {
			t.Fatalf("id=%d, want %d got %d", id, want, got)
		}
	}
}

func TestTxMsg(t *testing.T) {
	msg := &Msg{Op: xswap.OpLock}
	tx := &Tx{Msg: msg}

	got, err := tx.GetMsg()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if got.Opcode() != xswap.OpLock {
		t.Fatalf("unexpected opcode %s", got.Opcode())
	}

	if err := msg.Unmarshal([]byte("raw")); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	raw, _ := msg.Marshal()
	if string(raw) != "raw" {
		t.Fatalf("unexpected serialization %q", raw)
	}

	tx.Err = errors.ErrInvalidInstruction
	if _, err := tx.GetMsg(); !errors.ErrInvalidInstruction.Is(err) {
		t.Fatalf("want invalid instruction, got %v", err)
	}
}
