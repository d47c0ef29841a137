package cost_test

import (
	"testing"

	"github.com/sebschmi/tsalign-go/cost"
)

func TestSaturatingSub_NeverUnderflows(t *testing.T) {
	a := cost.FromUint[uint32](3)
	b := cost.FromUint[uint32](10)
	got := a.SaturatingSub(b)
	if !got.IsZero() {
		t.Fatalf("expected saturating_sub to clamp at zero, got %v", got)
	}
}

func TestCheckedAdd_OverflowReturnsFalse(t *testing.T) {
	max := cost.Max[uint16]()
	one := cost.FromUint[uint16](1)
	_, ok := max.CheckedAdd(one)
	if ok {
		t.Fatalf("expected overflow to be detected")
	}
}

func TestCheckedAdd_NoOverflow(t *testing.T) {
	a := cost.FromUint[int32](5)
	b := cost.FromUint[int32](7)
	sum, ok := a.CheckedAdd(b)
	if !ok || sum.ToPrimitive() != 12 {
		t.Fatalf("expected 12, got %v ok=%v", sum, ok)
	}
}

func TestOrdering(t *testing.T) {
	a := cost.FromUint[int64](1)
	b := cost.FromUint[int64](2)
	if !a.Less(b) {
		t.Fatalf("expected 1 < 2")
	}
	if b.Less(a) {
		t.Fatalf("expected 2 !< 1")
	}
}

func TestPair_LexicographicTieBreak(t *testing.T) {
	// Equal primary cost, second component breaks the tie.
	p1 := cost.Pair[int32, int32]{First: cost.FromUint[int32](5), Second: cost.FromUint[int32](2)}
	p2 := cost.Pair[int32, int32]{First: cost.FromUint[int32](5), Second: cost.FromUint[int32](3)}
	if !p1.Less(p2) {
		t.Fatalf("expected p1 < p2 by secondary component")
	}

	p3 := cost.Pair[int32, int32]{First: cost.FromUint[int32](4), Second: cost.FromUint[int32](100)}
	if !p3.Less(p1) {
		t.Fatalf("expected lower primary cost to win regardless of secondary")
	}
}

func TestMin(t *testing.T) {
	a := cost.FromUint[uint64](9)
	b := cost.FromUint[uint64](4)
	if got := cost.Min(a, b); got != b {
		t.Fatalf("expected min to be %v, got %v", b, got)
	}
}

func TestMaxSentinel(t *testing.T) {
	v := cost.Max[int16]()
	if v.ToPrimitive() != 32767 {
		t.Fatalf("expected int16 max sentinel 32767, got %v", v.ToPrimitive())
	}
}
