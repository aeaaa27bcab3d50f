package jsontoken

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/bytedance/sonic"
	jsoniter "github.com/json-iterator/go"
)

// benchPayload is a medium-sized document mixing every token kind, repeated
// enough times to dominate per-call setup cost.
var benchPayload = func() []byte {
	record := []byte(`{"id":184467,"name":"café \"quoted\"","score":-0.5e+2,` +
		`"active":true,"deleted":false,"tags":["a","b","c"],"meta":{"nested":{"deep":null}}}`)
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i := 0; i < 64; i++ {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(record)
	}
	buf.WriteByte(']')
	return buf.Bytes()
}()

func BenchmarkTokenize(b *testing.B) {
	msg := benchPayload
	store := NewTokenStore(4096)

	b.SetBytes(int64(len(msg)))
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if n := Parse(store, msg); n < 0 {
			b.Fatalf("parse failed: %d", n)
		}
	}
}

func BenchmarkNavigate(b *testing.B) {
	msg := benchPayload
	store := NewTokenStore(4096)
	if n := Parse(store, msg); n < 0 {
		b.Fatalf("parse failed: %d", n)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		visited := 0
		for c := store.Child(0); c != NoIndex; c = store.NextSibling(c) {
			visited++
		}
		if visited != 64 {
			b.Fatalf("visited %d children, want 64", visited)
		}
	}
}

// The baselines below decode into interface{}, which does strictly more
// work than tokenizing (allocation, unescaping, number conversion); they
// are throughput reference points, not apples-to-apples competitors.

func BenchmarkEncodingJson(b *testing.B) {
	msg := benchPayload

	b.SetBytes(int64(len(msg)))
	b.ReportAllocs()
	b.ResetTimer()

	var parsed interface{}
	for i := 0; i < b.N; i++ {
		if err := json.Unmarshal(msg, &parsed); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSonicJson(b *testing.B) {
	msg := benchPayload

	b.SetBytes(int64(len(msg)))
	b.ReportAllocs()
	b.ResetTimer()

	var parsed interface{}
	for i := 0; i < b.N; i++ {
		if err := sonic.Unmarshal(msg, &parsed); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkJsoniter(b *testing.B) {
	msg := benchPayload

	b.SetBytes(int64(len(msg)))
	b.ReportAllocs()
	b.ResetTimer()

	var json = jsoniter.ConfigCompatibleWithStandardLibrary
	var parsed interface{}
	for i := 0; i < b.N; i++ {
		if err := json.Unmarshal(msg, &parsed); err != nil {
			b.Fatal(err)
		}
	}
}
