package fuzztests

import (
	"bytes"
	"testing"

	"prelex/internal/prelex"
	"prelex/internal/source"
	"prelex/internal/value"
)

const maxFuzzInput = 1 << 16 // 64 KiB

func FuzzProcessPartition(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		if len(input) > maxFuzzInput {
			input = input[:maxFuzzInput]
		}
		input = append([]byte(nil), input...)
		orig := append([]byte(nil), input...)

		res := prelex.Process(input)
		if err := res.Check(input); err != nil {
			t.Fatalf("partition broken for %q: %v", input, err)
		}
		if !bytes.Equal(input, orig) {
			t.Fatalf("input mutated")
		}
		for _, tok := range res.Tokens {
			// значение может не разобраться, но паники быть не должно
			_, _ = value.Of(tok)
		}
	})
}

func FuzzFileSetScan(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		if len(input) > maxFuzzInput {
			input = append([]byte(nil), input[:maxFuzzInput]...)
		}
		fs := source.NewFileSet()
		id := fs.AddVirtual("fuzz.txt", input)
		file := fs.Get(id)

		res := prelex.Process(file.Content)
		for _, tok := range res.Tokens {
			start, end := fs.Resolve(id, tok.Span)
			if start.Line == 0 || end.Line < start.Line {
				t.Fatalf("bad position for %v: %v-%v", tok, start, end)
			}
		}
	})
}
