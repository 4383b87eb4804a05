package httpapi

import (
	"net/url"
	"testing"

	domain "options-dashboard/internal/domain/dashboard"
)

func TestParsePageState_Defaults(t *testing.T) {
	got := parsePageState(url.Values{})
	if got != domain.DefaultPageState() {
		t.Errorf("expected defaults, got %+v", got)
	}
}

func TestParsePageState_Values(t *testing.T) {
	q, _ := url.ParseQuery("strategy_type=Long+Put&min_score=60&min_probability=55.5&max_days_to_expiry=90&option_type=PUT&underlying_symbol=XIU&sort=expected_value&dir=asc&charts=0")
	got := parsePageState(q)

	want := domain.PageState{
		Filters: domain.FilterState{
			StrategyType:     "Long Put",
			MinScore:         60,
			MinProbability:   55.5,
			MaxDaysToExpiry:  90,
			OptionType:       "put",
			UnderlyingSymbol: "XIU",
		},
		Sort:       domain.SortState{Field: domain.FieldExpectedValue, Direction: domain.SortAsc},
		ShowCharts: false,
	}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestParsePageState_MalformedFallsBack(t *testing.T) {
	q, _ := url.ParseQuery("min_score=high&min_probability=NaN&max_days_to_expiry=1.5&option_type=straddle&charts=maybe&dir=sideways")
	got := parsePageState(q)

	def := domain.DefaultPageState()
	if got.Filters != def.Filters {
		t.Errorf("expected default filters, got %+v", got.Filters)
	}
	if !got.ShowCharts {
		t.Error("unparsable charts flag should keep charts visible")
	}
	// 有 dir 但無法辨識時視為 desc
	if got.Sort.Direction != domain.SortDesc {
		t.Errorf("expected desc, got %s", got.Sort.Direction)
	}
}

func TestParseBoolParam(t *testing.T) {
	cases := map[string]bool{"show": true, "hide": false, "1": true, "0": false, "off": false, "TRUE": true}
	for raw, want := range cases {
		if got := parseBoolParam(url.Values{"charts": {raw}}, "charts", !want); got != want {
			t.Errorf("%q: expected %v, got %v", raw, want, got)
		}
	}
}

func TestStateURL_RoundTrip(t *testing.T) {
	if got := stateURL(domain.DefaultPageState()); got != "/" {
		t.Errorf("default state should encode to /, got %s", got)
	}

	states := []domain.PageState{
		domain.DefaultPageState().ToggleCharts(),
		domain.DefaultPageState().ToggleSort(domain.FieldScore),
		domain.DefaultPageState().ToggleSort(domain.FieldDaysToExpiry),
		domain.DefaultPageState().WithFilters(domain.FilterState{
			StrategyType:     "Long Call",
			MinScore:         72.5,
			MinProbability:   40,
			MaxDaysToExpiry:  28,
			OptionType:       "call",
			UnderlyingSymbol: "ZEB",
		}),
	}
	for _, st := range states {
		u, err := url.Parse(stateURL(st))
		if err != nil {
			t.Fatalf("parse url: %v", err)
		}
		if got := parsePageState(u.Query()); got != st {
			t.Errorf("round trip mismatch: want %+v, got %+v", st, got)
		}
	}
}

func TestStateURL_ResetKeepsSort(t *testing.T) {
	st := domain.DefaultPageState().ToggleSort(domain.FieldDelta)
	st.Filters.MinScore = 80

	u, _ := url.Parse(stateURL(st.ResetFilters()))
	q := u.Query()
	if q.Has(paramMinScore) {
		t.Error("reset link should drop filters")
	}
	if q.Get(paramSort) != string(domain.FieldDelta) {
		t.Errorf("reset link should keep sort, got %q", q.Get(paramSort))
	}
}
