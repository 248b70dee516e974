package mjson

import (
	"encoding/json"
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/valyala/fastjson"
)

const smallJSON = `{"togatoga": "monkey-json", "fugafuga": null}`

const mediumJSON = `{
	"id": 42,
	"name": "answer",
	"score": 9.5,
	"active": true,
	"tags": ["monkey", "json", "parser"],
	"nested": {
		"empty": {},
		"list": [1, 2.5, null, false, "あ"]
	}
}`

var largeJSON = "[" +
	strings.Repeat(`{"id": 42, "name": "answer", "tags": ["a", "b"], "ok": true, "score": 9.5}, `, 255) +
	`{"id": 42}]`

func benchmark(src string) func(b *testing.B) {
	return func(b *testing.B) {
		if _, err := Parse(src); err != nil {
			b.Fatalf("Parse error: %s", err)
		}
		b.ReportAllocs()
		b.SetBytes(int64(len(src)))
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			Parse(src)
		}
	}
}

func BenchmarkTokenize(b *testing.B) {
	b.ReportAllocs()
	b.SetBytes(int64(len(largeJSON)))
	for i := 0; i < b.N; i++ {
		if _, err := NewLexer(largeJSON).Tokenize(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParse(b *testing.B) {
	b.Run("small", benchmark(smallJSON))
	b.Run("medium", benchmark(mediumJSON))
	b.Run("large", benchmark(largeJSON))
	b.Run("fastjson-large", func(b *testing.B) {
		p := fastjson.Parser{}
		b.ReportAllocs()
		b.SetBytes(int64(len(largeJSON)))
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			v, err := p.Parse(largeJSON)
			if err != nil {
				b.Error(err)
			}
			_ = v
		}
	})
	b.Run("jsoniter-large", func(b *testing.B) {
		data := []byte(largeJSON)
		b.ReportAllocs()
		b.SetBytes(int64(len(largeJSON)))
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			var v interface{}
			if err := jsoniter.Unmarshal(data, &v); err != nil {
				b.Error(err)
			}
		}
	})
	b.Run("encoding_json-large", func(b *testing.B) {
		data := []byte(largeJSON)
		b.ReportAllocs()
		b.SetBytes(int64(len(largeJSON)))
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			var v interface{}
			if err := json.Unmarshal(data, &v); err != nil {
				b.Error(err)
			}
		}
	})
}
