package lineup

import "testing"

func TestParseMode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw      string
		wantMode Mode
		wantOK   bool
	}{
		{raw: "", wantMode: ModeStarting, wantOK: true},
		{raw: "starting", wantMode: ModeStarting, wantOK: true},
		{raw: "all", wantMode: ModeAll, wantOK: true},
		{raw: " ALL ", wantMode: ModeAll, wantOK: true},
		{raw: "Starting", wantMode: ModeStarting, wantOK: true},
		{raw: "batting", wantOK: false},
		{raw: "none", wantOK: false},
	}

	for _, tc := range cases {
		mode, ok := ParseMode(tc.raw)
		if ok != tc.wantOK {
			t.Fatalf("ParseMode(%q): ok=%v want=%v", tc.raw, ok, tc.wantOK)
		}
		if ok && mode != tc.wantMode {
			t.Fatalf("ParseMode(%q): mode=%s want=%s", tc.raw, mode, tc.wantMode)
		}
	}
}

func TestEntry_OrderPredicates(t *testing.T) {
	t.Parallel()

	slot := "1"
	starterSeq := "0"
	subSeq := "1"

	starter := Entry{BattingOrder: &slot, SlotSequence: &starterSeq}
	if !starter.InOrder() || !starter.Starter() {
		t.Fatalf("starter predicates wrong: %+v", starter)
	}

	sub := Entry{BattingOrder: &slot, SlotSequence: &subSeq}
	if !sub.InOrder() || sub.Starter() {
		t.Fatalf("substitute predicates wrong: %+v", sub)
	}

	bench := Entry{}
	if bench.InOrder() || bench.Starter() {
		t.Fatalf("bench predicates wrong: %+v", bench)
	}
}
