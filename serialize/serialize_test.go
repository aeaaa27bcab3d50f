package serialize

import (
	"bytes"
	"testing"

	"github.com/mcvoid/jsontoken"
)

func TestRoundTrip(t *testing.T) {
	const input = `{"a":111, "b":[222, true], "c":{}}`

	for _, mode := range []CompressMode{CompressNone, CompressS2, CompressZstd} {
		t.Run(modeName(mode), func(t *testing.T) {
			store := jsontoken.NewTokenStore(16)
			n := jsontoken.Parse(store, []byte(input))
			if n < 0 {
				t.Fatalf("parse failed: %d", n)
			}

			var buf bytes.Buffer
			if err := Dump(&buf, store, jsontoken.NewView([]byte(input)), mode); err != nil {
				t.Fatalf("Dump: %v", err)
			}

			restored := jsontoken.NewTokenStore(16)
			gotInput, err := Load(&buf, restored)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if string(gotInput) != input {
				t.Fatalf("restored input = %q, want %q", gotInput, input)
			}
			if restored.Count() != n {
				t.Fatalf("restored count = %d, want %d", restored.Count(), n)
			}
			for i := 0; i < n; i++ {
				want, got := store.At(i), restored.At(i)
				if want.Kind != got.Kind || want.Depth != got.Depth || want.Flags != got.Flags {
					t.Errorf("token %d: got %+v, want %+v", i, got, want)
				}
				if want.Slice.String() != got.Slice.String() {
					t.Errorf("token %d: slice = %q, want %q", i, got.Slice.String(), want.Slice.String())
				}
			}
		})
	}
}

func TestLoadRejectsUndersizedStore(t *testing.T) {
	const input = `[1,2,3,4,5]`
	store := jsontoken.NewTokenStore(8)
	jsontoken.Parse(store, []byte(input))

	var buf bytes.Buffer
	if err := Dump(&buf, store, jsontoken.NewView([]byte(input)), CompressNone); err != nil {
		t.Fatalf("Dump: %v", err)
	}

	small := jsontoken.NewTokenStore(1)
	if _, err := Load(&buf, small); err != jsontoken.ErrNoTokens {
		t.Fatalf("got %v, want ErrNoTokens", err)
	}
}

func TestLoadRejectsBadMagic(t *testing.T) {
	store := jsontoken.NewTokenStore(4)
	if _, err := Load(bytes.NewReader([]byte("NOPE\x00")), store); err != ErrBadStream {
		t.Fatalf("got %v, want ErrBadStream", err)
	}
}

func modeName(m CompressMode) string {
	switch m {
	case CompressNone:
		return "none"
	case CompressS2:
		return "s2"
	case CompressZstd:
		return "zstd"
	default:
		return "unknown"
	}
}
