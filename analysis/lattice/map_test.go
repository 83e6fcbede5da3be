package lattice

import "testing"

func mkIMap(bindings map[string]Interval) Map[string, Interval] {
	m := MakeMap[string, Interval](nil)
	for k, v := range bindings {
		m = m.Update(k, v)
	}
	return m
}

func TestMapJoin(t *testing.T) {
	tests := []struct {
		a, b, expected Map[string, Interval]
	}{
		{mkIMap(nil), mkIMap(nil), mkIMap(nil)},
		{
			mkIMap(map[string]Interval{"x": FiniteInterval(0, 0)}),
			mkIMap(nil),
			mkIMap(map[string]Interval{"x": FiniteInterval(0, 0)}),
		},
		{
			mkIMap(map[string]Interval{"x": FiniteInterval(0, 0)}),
			mkIMap(map[string]Interval{"x": FiniteInterval(1, 1)}),
			mkIMap(map[string]Interval{"x": FiniteInterval(0, 1)}),
		},
		{
			mkIMap(map[string]Interval{"x": FiniteInterval(0, 0)}),
			mkIMap(map[string]Interval{"y": FiniteInterval(1, 1)}),
			mkIMap(map[string]Interval{
				"x": FiniteInterval(0, 0),
				"y": FiniteInterval(1, 1),
			}),
		},
	}

	for _, test := range tests {
		res := test.a.Join(test.b)
		if !res.Eq(test.expected) {
			t.Errorf("%s ⊔ %s = %s, expected %s\n", test.a, test.b, res, test.expected)
		}
	}
}

func TestMapWiden(t *testing.T) {
	old := mkIMap(map[string]Interval{
		"x": FiniteInterval(0, 1),
		"y": FiniteInterval(0, 0),
	})
	next := mkIMap(map[string]Interval{
		"x": FiniteInterval(0, 2),
		"y": FiniteInterval(0, 0),
		"z": FiniteInterval(5, 5),
	})

	res := old.Widen(next)

	if x, _ := res.Get("x"); !x.Eq(MakeInterval(FiniteBound(0), PlusInfinity{})) {
		t.Errorf("unstable binding must widen, got %s", x)
	}
	if y, _ := res.Get("y"); !y.Eq(FiniteInterval(0, 0)) {
		t.Errorf("stable binding must be kept, got %s", y)
	}
	if z, found := res.Get("z"); !found || !z.Eq(FiniteInterval(5, 5)) {
		t.Errorf("fresh binding must be kept, got %s", z)
	}
}

func TestMapOrder(t *testing.T) {
	empty := mkIMap(nil)
	x01 := mkIMap(map[string]Interval{"x": FiniteInterval(0, 1)})
	x02 := mkIMap(map[string]Interval{"x": FiniteInterval(0, 2)})

	if !empty.Leq(x01) {
		t.Error("the empty map is below every map")
	}
	if !x01.Leq(x02) || x02.Leq(x01) {
		t.Error("pointwise order misreported")
	}
	if x01.Leq(empty) {
		t.Error("a bound key cannot be below an absent one")
	}
}

func TestMapOps(t *testing.T) {
	m := mkIMap(map[string]Interval{"x": FiniteInterval(0, 0)})

	if v, found := m.Get("x"); !found || !v.Eq(FiniteInterval(0, 0)) {
		t.Error("lookup misreported")
	}
	if _, found := m.Get("y"); found {
		t.Error("absent key reported present")
	}
	if v := m.GetOr("y", IntervalBot()); !v.IsBot() {
		t.Errorf("expected the default for an absent key, got %s", v)
	}
	if m.Remove("x").Len() != 0 || m.Len() != 1 {
		t.Error("Remove must not mutate the receiver")
	}

	seen := map[string]Interval{}
	m.Update("y", FiniteInterval(1, 1)).ForEach(func(k string, v Interval) {
		seen[k] = v
	})
	if len(seen) != 2 || !seen["y"].Eq(FiniteInterval(1, 1)) {
		t.Errorf("enumeration misreported: %v", seen)
	}
}

func TestMutMapCell(t *testing.T) {
	s := MakeMutMap[string, Interval](nil)
	s.Put("x", FiniteInterval(0, 0))
	s.Put("x", FiniteInterval(1, 1))
	s.Put("y", FiniteInterval(2, 2))

	if s.Len() != 2 {
		t.Errorf("expected 2 bindings, got %d", s.Len())
	}
	if v, _ := s.Get("x"); !v.Eq(FiniteInterval(1, 1)) {
		t.Errorf("Put must overwrite, got %s", v)
	}

	o := MakeMutMap[string, Interval](nil)
	o.Put("x", FiniteInterval(5, 5))

	joined := s.Join(o)
	if v, _ := joined.Get("x"); !v.Eq(FiniteInterval(1, 5)) {
		t.Errorf("expected [1, 5], got %s", v)
	}
	// Joining allocates a fresh cell.
	if v, _ := s.Get("x"); !v.Eq(FiniteInterval(1, 1)) {
		t.Error("Join must not mutate its operands")
	}
	if !s.Leq(joined) || !o.Leq(joined) {
		t.Error("join must be an upper bound")
	}
}
