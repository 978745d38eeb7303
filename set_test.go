package funnelplot

import (
	"testing"
)

func TestFloatSet(t *testing.T) {
	a := NewFloatSet()
	if len(a.Elements()) != 0 {
		t.Errorf("Got a = %v", a)
	}
	a.Add(17)
	a.Add(-2)
	a.Add(17)
	if len(a) != 2 {
		t.Errorf("Got a = %v", a)
	}

	a.Add(0)
	elem := a.Elements()
	if len(elem) != 3 || elem[0] != -2 || elem[1] != 0 || elem[2] != 17 {
		t.Errorf("Got elem = %v", elem)
	}
	if s := a.String(); s != "[ -2 0 17 ]" {
		t.Errorf("Got %q", s)
	}
}

func TestStringPool(t *testing.T) {
	sp := NewStringPool()
	cat := sp.Add("cat")
	dog := sp.Add("dog")
	if again := sp.Add("cat"); again != cat {
		t.Errorf("Got %d for second cat, want %d", again, cat)
	}
	if dog == cat {
		t.Errorf("Got same index %d for cat and dog", dog)
	}
	if sp.Get(dog) != "dog" || sp.Get(99) != "--NA--" || sp.Get(-1) != "--NA--" {
		t.Errorf("Got %q %q", sp.Get(dog), sp.Get(99))
	}
}
