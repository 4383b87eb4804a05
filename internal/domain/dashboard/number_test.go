package dashboard

import (
	"encoding/json"
	"testing"
)

func TestWholeNumber_Unmarshal(t *testing.T) {
	cases := map[string]int64{
		`1500`:   1500,
		`1500.0`: 1500,
		`2e3`:    2000,
		`4.9`:    4,
		`-3.7`:   -3,
		`null`:   0,
	}
	for raw, want := range cases {
		var n wholeNumber
		if err := json.Unmarshal([]byte(raw), &n); err != nil {
			t.Errorf("%s: unexpected error: %v", raw, err)
			continue
		}
		if int64(n) != want {
			t.Errorf("%s: expected %d, got %d", raw, want, n)
		}
	}

	var n wholeNumber
	if err := json.Unmarshal([]byte(`1e30`), &n); err == nil {
		t.Error("expected out of range error")
	}
	if err := json.Unmarshal([]byte(`"12"`), &n); err == nil {
		t.Error("expected error for string")
	}
}

func TestOpportunity_UnmarshalKeepsOtherFields(t *testing.T) {
	var o Opportunity
	raw := `{"id":"x","strike":42.5,"volume":1.2e3,"max_profit":999999,"option_type":"put"}`
	if err := json.Unmarshal([]byte(raw), &o); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.ID != "x" || o.Strike != 42.5 || o.Volume != 1200 || !o.MaxProfit.Unbounded || o.OptionType != OptionPut {
		t.Errorf("unexpected opportunity: %+v", o)
	}

	out, err := json.Marshal(o)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back map[string]any
	if err := json.Unmarshal(out, &back); err != nil {
		t.Fatal(err)
	}
	if back["volume"] != float64(1200) || back["max_profit"] != float64(UnboundedMaxProfit) {
		t.Errorf("unexpected encoding: %s", out)
	}
}
