package inline

import (
	"testing"
	"unicode/utf8"
)

// FuzzString_RandomEdits drives random mutation sequences against a plain
// string oracle. After every operation the content must match the oracle,
// the occupied range must be valid UTF-8, and both invariants must hold.
func FuzzString_RandomEdits(f *testing.F) {
	seeds := [][]byte{
		{},
		{0},
		{1, 2, 3, 4, 5},
		{255, 0, 128, 64, 32, 16, 8, 4, 2, 1},
		[]byte("push-pop-seed"),
		[]byte("insert-remove-seed"),
		[]byte("truncate\x00clear"),
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		var s String
		oracle := ""

		r := fuzzOpReader{data: data}
		for !r.done() {
			op := r.next() % 7
			switch op {
			case 0:
				ch := fuzzRunePalette[int(r.next())%len(fuzzRunePalette)]
				err := s.Push(ch)
				if len(oracle)+utf8.RuneLen(ch) > Capacity {
					if err != ErrNoSpace {
						t.Fatalf("push %q into %q: err=%v, want ErrNoSpace", ch, oracle, err)
					}
				} else {
					if err != nil {
						t.Fatalf("push %q into %q: %v", ch, oracle, err)
					}
					oracle += string(ch)
				}
			case 1:
				frag := fuzzFragPalette[int(r.next())%len(fuzzFragPalette)]
				err := s.PushString(frag)
				if len(oracle)+len(frag) > Capacity {
					if err != ErrNoSpace {
						t.Fatalf("push %q onto %q: err=%v, want ErrNoSpace", frag, oracle, err)
					}
				} else {
					if err != nil {
						t.Fatalf("push %q onto %q: %v", frag, oracle, err)
					}
					oracle += frag
				}
			case 2:
				idx := fuzzBoundary(oracle, r.next())
				ch := fuzzRunePalette[int(r.next())%len(fuzzRunePalette)]
				err := s.Insert(idx, ch)
				if len(oracle)+utf8.RuneLen(ch) > Capacity {
					if err != ErrNoSpace {
						t.Fatalf("insert %q at %d of %q: err=%v, want ErrNoSpace", ch, idx, oracle, err)
					}
				} else {
					if err != nil {
						t.Fatalf("insert %q at %d of %q: %v", ch, idx, oracle, err)
					}
					oracle = oracle[:idx] + string(ch) + oracle[idx:]
				}
			case 3:
				if oracle == "" {
					continue
				}
				idx := fuzzBoundary(oracle, r.next())
				if idx == len(oracle) {
					idx = 0
				}
				got := s.Remove(idx)
				want, w := utf8.DecodeRuneInString(oracle[idx:])
				if got != want {
					t.Fatalf("remove at %d of %q: got %q, want %q", idx, oracle, got, want)
				}
				oracle = oracle[:idx] + oracle[idx+w:]
			case 4:
				n := fuzzBoundary(oracle, r.next())
				s.Truncate(n)
				if n < len(oracle) {
					oracle = oracle[:n]
				}
			case 5:
				got, ok := s.Pop()
				if oracle == "" {
					if ok {
						t.Fatalf("pop on empty returned %q", got)
					}
					continue
				}
				want, w := utf8.DecodeLastRuneInString(oracle)
				if !ok || got != want {
					t.Fatalf("pop from %q: got %q ok=%v, want %q", oracle, got, ok, want)
				}
				oracle = oracle[:len(oracle)-w]
			case 6:
				s.Clear()
				oracle = ""
			}

			if got := s.String(); got != oracle {
				t.Fatalf("content diverged: got %q, want %q", got, oracle)
			}
			if got := s.Len(); got != len(oracle) {
				t.Fatalf("length diverged: got %d, want %d", got, len(oracle))
			}
			if err := s.checkInvariants(); err != nil {
				t.Fatalf("after op %d: %v", op, err)
			}
		}

		fixed := s.FixedBytes()
		for i := s.Len(); i < Capacity; i++ {
			if fixed[i] != 0 {
				t.Fatalf("fixed byte %d = %#x after edits, want 0", i, fixed[i])
			}
		}
	})
}

// FuzzFromBytes exercises fallible construction with arbitrary input.
func FuzzFromBytes(f *testing.F) {
	f.Add([]byte(""))
	f.Add([]byte("plain"))
	f.Add([]byte("exactly 22 bytes wide!"))
	f.Add([]byte("longer than the inline capacity"))
	f.Add([]byte{0xFF, 0xFE, 0xFD})

	f.Fuzz(func(t *testing.T, data []byte) {
		s, err := FromBytes(data)
		switch {
		case len(data) > Capacity:
			if err != ErrNoSpace {
				t.Fatalf("err=%v, want ErrNoSpace for %d bytes", err, len(data))
			}
		case !utf8.Valid(data):
			if err != ErrInvalidUTF8 {
				t.Fatalf("err=%v, want ErrInvalidUTF8 for %q", err, data)
			}
		default:
			if err != nil {
				t.Fatalf("FromBytes(%q): %v", data, err)
			}
			if !s.EqualString(string(data)) {
				t.Fatalf("content=%q, want %q", s.String(), data)
			}
			if got := s.Len(); got != len(data) {
				t.Fatalf("len=%d, want %d", got, len(data))
			}
			if err := s.checkInvariants(); err != nil {
				t.Fatal(err)
			}
		}
	})
}

var fuzzRunePalette = []rune{'a', 'z', '0', ' ', 'é', 'ß', 'テ', '🙂'}

var fuzzFragPalette = []string{
	"",
	"a",
	"xy",
	"héllo",
	"テキスト",
	"0123456789",
	"exactly 22 bytes wide!",
}

type fuzzOpReader struct {
	data []byte
	pos  int
}

func (r *fuzzOpReader) done() bool {
	return r.pos >= len(r.data)
}

func (r *fuzzOpReader) next() byte {
	if r.done() {
		return 0
	}
	b := r.data[r.pos]
	r.pos++
	return b
}

// fuzzBoundary maps a fuzz byte onto one of text's character boundaries,
// including 0 and len(text).
func fuzzBoundary(text string, b byte) int {
	bounds := []int{0}
	for i := range text {
		if i != 0 {
			bounds = append(bounds, i)
		}
	}
	bounds = append(bounds, len(text))
	return bounds[int(b)%len(bounds)]
}
