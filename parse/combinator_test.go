package parse

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ardnew/combin/arena"
)

func lit(s string) *LiteralParser { return Literal([]byte(s)) }

func TestVoided(t *testing.T) {
	src := strings.NewReader("abce")

	_, ok, err := Voided(lit("ab")).AttemptLeaky(arena.New(nil), src)
	if err != nil || !ok {
		t.Fatalf("expected match, got ok=%v err=%v", ok, err)
	}

	_, ok, err = Voided(lit("x")).AttemptLeaky(arena.New(nil), src)
	if err != nil || ok {
		t.Fatalf("expected miss, got ok=%v err=%v", ok, err)
	}

	_, _, err = Voided(Seq2(Char('c'), Char('d'))).AttemptLeaky(arena.New(nil), src)
	if !errors.Is(err, ErrPartiallyConsumed) {
		t.Errorf("expected partial consumption to pass through, got %v", err)
	}
}

func TestOneOf_FirstMatchWins(t *testing.T) {
	src := strings.NewReader("abcd")

	v, ok, err := OneOf(lit("x"), lit("ab"), lit("abc")).
		AttemptLeaky(arena.New(nil), src)
	if err != nil || !ok {
		t.Fatalf("expected match, got ok=%v err=%v", ok, err)
	}

	if string(v) != "ab" {
		t.Errorf("expected first matching alternative %q, got %q", "ab", v)
	}

	if pos := offset(t, src); pos != 2 {
		t.Errorf("expected cursor at 2, got %d", pos)
	}
}

func TestOneOf_AllMissLeavesCursor(t *testing.T) {
	a := arena.New(nil)
	src := strings.NewReader("zzz")

	_, ok, err := OneOf(lit("a"), lit("bb"), lit("ccc")).AttemptLeaky(a, src)
	if err != nil || ok {
		t.Fatalf("expected miss, got ok=%v err=%v", ok, err)
	}

	if pos := offset(t, src); pos != 0 {
		t.Errorf("expected cursor at 0, got %d", pos)
	}

	if got := a.Stats(); got != (arena.Stats{}) {
		t.Errorf("expected no outstanding allocations, got %+v", got)
	}
}

func TestOneOf_PartialConsumptionPropagates(t *testing.T) {
	ab := Seq2(Char('a'), Char('b'))
	ac := Seq2(Char('a'), Char('c'))

	_, _, err := OneOf(ab, ac).AttemptLeaky(arena.New(nil), strings.NewReader("ac"))
	if !errors.Is(err, ErrPartiallyConsumed) {
		t.Fatalf("expected ErrPartiallyConsumed, got %v", err)
	}

	v, ok, err := OneOf(Backtrack(ab), ac).
		AttemptLeaky(arena.New(nil), strings.NewReader("ac"))
	if err != nil || !ok {
		t.Fatalf("expected backtracked alternative to fall through, got ok=%v err=%v", ok, err)
	}

	if v.First != 'a' || v.Second != 'c' {
		t.Errorf("expected ('a','c'), got (%q,%q)", v.First, v.Second)
	}
}

func TestSequence_Match(t *testing.T) {
	src := strings.NewReader("key=value;")

	p := Seq4(
		lit("key"),
		Char('='),
		ManyTill(AnyChar(), Char(';')),
		End(),
	)

	v, ok, err := p.AttemptLeaky(arena.New(nil), src)
	if err != nil || !ok {
		t.Fatalf("expected match, got ok=%v err=%v", ok, err)
	}

	if string(v.First) != "key" || v.Second != '=' || string(v.Third) != "value" {
		t.Errorf("unexpected tuple %q %q %q", v.First, v.Second, v.Third)
	}
}

func TestSequence_PartialConsumption(t *testing.T) {
	p := Seq5(Char('a'), Char('b'), Char('c'), Char('d'), Char('e'))

	for k := 1; k < 5; k++ {
		input := "abcde"[:k] + "X"

		t.Run(input, func(t *testing.T) {
			src := strings.NewReader(input)

			_, ok, err := p.AttemptLeaky(arena.New(nil), src)
			if !errors.Is(err, ErrPartiallyConsumed) {
				t.Fatalf("expected ErrPartiallyConsumed, got ok=%v err=%v", ok, err)
			}

			if pos := offset(t, src); pos != int64(k) {
				t.Errorf("expected cursor left at %d, got %d", k, pos)
			}
		})
	}
}

func TestSequence_FirstElementMissIsPartial(t *testing.T) {
	src := strings.NewReader("X")

	_, _, err := Seq2(Char('a'), Char('b')).AttemptLeaky(arena.New(nil), src)
	if !errors.Is(err, ErrPartiallyConsumed) {
		t.Errorf("expected ErrPartiallyConsumed, got %v", err)
	}
}

func TestBacktrack_RestoresCursor(t *testing.T) {
	p := Backtrack(Seq5(Char('a'), Char('b'), Char('c'), Char('d'), Char('e')))

	for k := 0; k < 5; k++ {
		input := ".." + "abcde"[:k] + "X"

		t.Run(input, func(t *testing.T) {
			src := strings.NewReader(input)

			if _, err := src.Seek(2, io.SeekStart); err != nil {
				t.Fatalf("seek: %v", err)
			}

			_, ok, err := p.AttemptLeaky(arena.New(nil), src)
			if err != nil || ok {
				t.Fatalf("expected miss, got ok=%v err=%v", ok, err)
			}

			if pos := offset(t, src); pos != 2 {
				t.Errorf("expected cursor restored to 2, got %d", pos)
			}
		})
	}
}

func TestBacktrack_DoesNotLeakAcrossAttempts(t *testing.T) {
	root := arena.New(nil)
	a := arena.New(root)

	p := Backtrack(Seq3(lit("("), Many(lit("ab")), lit(")")))
	src := strings.NewReader("(")

	for range 5 {
		_, ok, err := p.AttemptLeaky(a, src)
		if err != nil || ok {
			t.Fatalf("expected miss, got ok=%v err=%v", ok, err)
		}

		if got := a.Stats(); got != (arena.Stats{}) {
			t.Fatalf("partial allocation leaked: %+v", got)
		}

		if pos := offset(t, src); pos != 0 {
			t.Fatalf("expected cursor at 0, got %d", pos)
		}
	}

	if got := root.Stats(); got != (arena.Stats{}) {
		t.Errorf("partial allocation leaked into root: %+v", got)
	}
}

func TestBacktrack_MatchCommitsToParent(t *testing.T) {
	a := arena.New(nil)

	v, ok, err := Backtrack(lit("ok")).AttemptLeaky(a, strings.NewReader("ok"))
	if err != nil || !ok {
		t.Fatalf("expected match, got ok=%v err=%v", ok, err)
	}

	// The parent owns the buffer after a match.
	a.Free(v)

	if got := a.Stats(); got != (arena.Stats{}) {
		t.Errorf("expected empty arena, got %+v", got)
	}
}

func TestBacktrack_OtherErrorsPropagate(t *testing.T) {
	src := &faultySource{Reader: strings.NewReader("ab"), readErr: errFault}

	_, _, err := Backtrack(Seq2(Char('a'), Char('b'))).
		AttemptLeaky(arena.New(nil), src)
	if !errors.Is(err, errFault) {
		t.Errorf("expected injected fault, got %v", err)
	}

	src = &faultySource{Reader: strings.NewReader("ab"), seekErr: errFault}

	_, _, err = Backtrack(Char('a')).AttemptLeaky(arena.New(nil), src)
	if !errors.Is(err, errFault) {
		t.Errorf("expected position error, got %v", err)
	}
}

func TestManyTill_StopsAtTerminator(t *testing.T) {
	src := strings.NewReader("AB:3REST")

	v, ok, err := ManyTill(AnyChar(), lit(":3")).AttemptLeaky(arena.New(nil), src)
	if err != nil || !ok {
		t.Fatalf("expected match, got ok=%v err=%v", ok, err)
	}

	if diff := cmp.Diff([]byte("AB"), v); diff != "" {
		t.Errorf("items mismatch (-want +got):\n%s", diff)
	}

	if pos := offset(t, src); pos != 4 {
		t.Errorf("expected cursor after terminator at 4, got %d", pos)
	}
}

func TestManyTill_ImmediateTerminator(t *testing.T) {
	v, ok, err := ManyTill(AnyChar(), lit(";")).
		AttemptLeaky(arena.New(nil), strings.NewReader(";"))
	if err != nil || !ok {
		t.Fatalf("expected match, got ok=%v err=%v", ok, err)
	}

	if len(v) != 0 {
		t.Errorf("expected no items, got %q", v)
	}
}

func TestManyTill_BodyMiss(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		partial bool
	}{
		{"no items", "x;", false},
		{"after items", "aax;", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := arena.New(nil)
			src := strings.NewReader(tt.input)

			_, ok, err := ManyTill(Char('a'), Char(';')).AttemptLeaky(a, src)
			if ok {
				t.Fatal("expected failure")
			}

			if got := errors.Is(err, ErrPartiallyConsumed); got != tt.partial {
				t.Errorf("expected partial=%v, got err=%v", tt.partial, err)
			}

			if !tt.partial && err != nil {
				t.Errorf("expected clean miss, got %v", err)
			}

			if got := a.Stats(); got != (arena.Stats{}) {
				t.Errorf("expected list freed, got %+v", got)
			}
		})
	}
}

func TestManyTill_EndOfInputPropagates(t *testing.T) {
	_, _, err := ManyTill(AnyChar(), Char(';')).
		AttemptLeaky(arena.New(nil), strings.NewReader("abc"))
	if !errors.Is(err, io.EOF) {
		t.Errorf("expected io.EOF, got %v", err)
	}
}

func TestMany(t *testing.T) {
	src := strings.NewReader("aaab")

	v, ok, err := Many(Char('a')).AttemptLeaky(arena.New(nil), src)
	if err != nil || !ok {
		t.Fatalf("expected match, got ok=%v err=%v", ok, err)
	}

	if diff := cmp.Diff([]byte("aaa"), v); diff != "" {
		t.Errorf("items mismatch (-want +got):\n%s", diff)
	}

	if pos := offset(t, src); pos != 3 {
		t.Errorf("expected cursor at 3, got %d", pos)
	}

	v, ok, err = Many(Char('a')).AttemptLeaky(arena.New(nil), src)
	if err != nil || !ok || len(v) != 0 {
		t.Errorf("expected empty match, got %q ok=%v err=%v", v, ok, err)
	}
}

func TestSome(t *testing.T) {
	src := strings.NewReader("aaab")

	_, ok, err := Some(Char('x')).AttemptLeaky(arena.New(nil), src)
	if err != nil || ok {
		t.Fatalf("expected miss, got ok=%v err=%v", ok, err)
	}

	if pos := offset(t, src); pos != 0 {
		t.Errorf("expected cursor at 0, got %d", pos)
	}

	v, ok, err := Some(Char('a')).AttemptLeaky(arena.New(nil), src)
	if err != nil || !ok || string(v) != "aaa" {
		t.Errorf("expected %q, got %q ok=%v err=%v", "aaa", v, ok, err)
	}
}

func TestMany_ErrorFreesList(t *testing.T) {
	a := arena.New(nil)

	_, _, err := Many(AnyChar()).AttemptLeaky(a, strings.NewReader("abc"))
	if !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF, got %v", err)
	}

	if got := a.Stats(); got != (arena.Stats{}) {
		t.Errorf("expected list freed, got %+v", got)
	}
}

func TestMap(t *testing.T) {
	toString := func(b []byte) string { return string(b) }

	v, ok, err := Map(Some(Char('a')), toString).
		AttemptLeaky(arena.New(nil), strings.NewReader("aab"))
	if err != nil || !ok || v != "aa" {
		t.Errorf("expected %q, got %q ok=%v err=%v", "aa", v, ok, err)
	}

	_, ok, err = Map(Some(Char('a')), toString).
		AttemptLeaky(arena.New(nil), strings.NewReader("b"))
	if err != nil || ok {
		t.Errorf("expected miss, got ok=%v err=%v", ok, err)
	}
}

func TestMany_VoidedReleasesEverything(t *testing.T) {
	tests := []struct {
		name  string
		input string
		p     Parser[Tuple2[[]struct{}, []struct{}]]
	}{
		{
			name:  "many then many",
			input: "aaaaaaaaabbbbbbbbb;",
			p:     Seq2(Many(Voided(Char('a'))), Many(Voided(Char('b')))),
		},
		{
			name:  "many then many till",
			input: "aabbbbbbbbb;",
			p:     Seq2(Many(Voided(Char('a'))), ManyTill(Voided(Char('b')), Char(';'))),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := arena.New(nil)

			res, err := AttemptOrFail(tt.p, root, strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got := root.Stats().Allocs; got != 2 {
				t.Errorf("expected 2 live lists, got %d", got)
			}

			res.Release()

			if got := root.Stats(); got != (arena.Stats{}) {
				t.Errorf("outstanding after release: %+v", got)
			}
		})
	}
}
