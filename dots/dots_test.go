package dots

import (
	"fmt"
	"testing"
)

func TestSingleDots(t *testing.T) {
	cells := [...]rune{'⠁', '⠂', '⠄', '⠈', '⠐', '⠠', '⡀', '⢀'}
	for i, c := range cells {
		d := i + 1
		if r := Of(d).Cell(); r != c {
			t.Errorf("expected cell for dot %d to be %#U, is %#U", d, c, r)
		}
		if r := Cell(1 << uint(d-1)); r != 0x2800+rune(1<<uint(d-1)) {
			t.Errorf("expected cell for mask %#x to be U+2800 + mask, is %#U", 1<<uint(d-1), r)
		}
	}
}

func TestOfIsIdempotent(t *testing.T) {
	if Of(1, 2, 2, 1) != Of(1, 2) {
		t.Errorf("expected duplicate dots to be idempotent, have %s", Of(1, 2, 2, 1))
	}
	if Of() != Blank {
		t.Errorf("expected empty dot list to be blank")
	}
	if Of(1, 2, 3, 4, 5, 6, 7, 8) != 0xff {
		t.Errorf("expected all dots to be 0xff, is %#x", uint8(Of(1, 2, 3, 4, 5, 6, 7, 8)))
	}
}

func TestUnionNeverClears(t *testing.T) {
	for a := 0; a < 256; a += 7 {
		for b := 0; b < 256; b += 11 {
			u := Set(a).Union(Set(b))
			for d := 1; d <= 8; d++ {
				if (Set(a).Has(d) || Set(b).Has(d)) && !u.Has(d) {
					t.Fatalf("union of %s and %s lost dot %d", Set(a), Set(b), d)
				}
			}
		}
	}
}

func TestDotsAndString(t *testing.T) {
	s := Of(7, 1, 3, 2)
	if fmt.Sprint(s.Dots()) != "[1 2 3 7]" {
		t.Errorf("expected dots [1 2 3 7], have %v", s.Dots())
	}
	if s.String() != "dots-1237" {
		t.Errorf("expected name dots-1237, have %s", s)
	}
	if Blank.String() != "blank" {
		t.Errorf("expected blank set to be named 'blank', is %s", Blank)
	}
}

func TestOutOfRangePanics(t *testing.T) {
	for _, f := range []func(){
		func() { Of(0) },
		func() { Of(9) },
		func() { Cell(-1) },
		func() { Cell(256) },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("expected panic for out-of-range input")
				}
			}()
			f()
		}()
	}
}

func ExampleOf() {
	s := Of(1, 2, 3, 7)
	fmt.Printf("%s %c %#U\n", s, s.Cell(), s.Cell())
	// Output: dots-1237 ⡇ U+2847 '⡇'
}

func TestDotConstants(t *testing.T) {
	consts := [...]Set{Dot1, Dot2, Dot3, Dot4, Dot5, Dot6, Dot7, Dot8}
	for i, c := range consts {
		if c != Of(i+1) {
			t.Errorf("expected Dot%d to be %s, is %s", i+1, Of(i+1), c)
		}
	}
}
