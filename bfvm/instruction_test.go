package bfvm

import (
	"reflect"
	"testing"
	"unicode/utf8"
)

func TestParseChar(t *testing.T) {
	cases := []struct {
		ch   rune
		want Op
	}{
		{'>', OpMoveRight},
		{'<', OpMoveLeft},
		{'+', OpIncrement},
		{'-', OpDecrement},
		{'.', OpOutput},
		{',', OpInput},
		{'[', OpLoopBegin},
		{']', OpLoopEnd},
		{' ', OpInvalid},
		{'a', OpInvalid},
		{'世', OpInvalid},
	}
	for _, c := range cases {
		inst := ParseChar(c.ch)
		if inst.Op != c.want {
			t.Fatalf("%q: got %v", c.ch, inst.Op)
		}
		if inst.Char != c.ch {
			t.Fatalf("%q: got char %q", c.ch, inst.Char)
		}
	}
}

func TestParse(t *testing.T) {
	if got := Parse(""); len(got) != 0 {
		t.Fatalf("got %v", got)
	}

	got := Parse("><+-.,[] ")
	want := []Instruction{
		{OpMoveRight, '>'},
		{OpMoveLeft, '<'},
		{OpIncrement, '+'},
		{OpDecrement, '-'},
		{OpOutput, '.'},
		{OpInput, ','},
		{OpLoopBegin, '['},
		{OpLoopEnd, ']'},
		Invalid(' '),
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v", got)
	}
}

func TestParseLength(t *testing.T) {
	for _, src := range []string{
		"",
		"+",
		"hello, world",
		"++[>+<-]\n# comment",
		"日本語[.]",
		"\x00\xff",
	} {
		if got := len(Parse(src)); got != utf8.RuneCountInString(src) {
			t.Fatalf("%q: got %d", src, got)
		}
	}
}

func TestInstructionString(t *testing.T) {
	if s := ParseChar('x').String(); s != `Invalid('x')` {
		t.Fatalf("got %s", s)
	}
	if s := ParseChar('[').String(); s != "LoopBegin" {
		t.Fatalf("got %s", s)
	}
	if s := Op(200).String(); s != "Op(?)" {
		t.Fatalf("got %s", s)
	}
}
