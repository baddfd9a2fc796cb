package model

import "testing"

func TestFillOrdersCoverActiveTemplate(t *testing.T) {
	phase := map[SlotClass][]string{
		ClassStable: StableFillOrder,
		ClassFlex:   FlexFillOrder,
	}

	for class, order := range phase {
		want := map[string]int{}
		for _, spec := range ActiveTemplate {
			if spec.Class == class {
				want[spec.Code]++
			}
		}
		got := map[string]int{}
		for _, code := range order {
			got[code]++
		}
		for code, n := range want {
			if got[code] != n {
				t.Errorf("%v fill order has %d x %s, template wants %d", class, got[code], code, n)
			}
		}
		if len(order) != sumCounts(want) {
			t.Errorf("%v fill order length %d does not match template", class, len(order))
		}
	}
}

func sumCounts(m map[string]int) int {
	total := 0
	for _, n := range m {
		total += n
	}
	return total
}

func TestEligibleForSlot(t *testing.T) {
	tests := []struct {
		positions []string
		slot      string
		want      bool
	}{
		{[]string{"PG"}, SlotPG, true},
		{[]string{"PG"}, SlotG, true},
		{[]string{"SG"}, SlotG, true},
		{[]string{"PG"}, SlotSG, false},
		{[]string{"SF", "PF"}, SlotF, true},
		{[]string{"C"}, SlotUtil, true},
		{[]string{"C"}, SlotG, false},
		{[]string{"PG", "C"}, SlotC, true},
		{nil, SlotUtil, false},
	}
	for _, tt := range tests {
		if got := EligibleForSlot(tt.positions, tt.slot); got != tt.want {
			t.Errorf("EligibleForSlot(%v, %s) = %v, want %v", tt.positions, tt.slot, got, tt.want)
		}
	}
}

func TestIsILSlot(t *testing.T) {
	if !IsILSlot(SlotIL) || !IsILSlot(SlotILPlus) {
		t.Error("IL and IL+ are injury-list slots")
	}
	if IsILSlot(SlotBench) || IsILSlot(SlotC) {
		t.Error("BN and C are not injury-list slots")
	}
}
