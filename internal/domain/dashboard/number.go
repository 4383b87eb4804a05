package dashboard

import (
	"encoding/json"
	"fmt"
	"math"
)

// wholeNumber 接受任何 JSON 數字（1500、1500.0、2e3）並截去小數部分；
// 上游以 number 表示計數欄位，不保證輸出整數字面值。
type wholeNumber int64

func (n *wholeNumber) UnmarshalJSON(data []byte) error {
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if v >= math.MaxInt64 || v <= math.MinInt64 {
		return fmt.Errorf("number %s out of range", data)
	}
	*n = wholeNumber(math.Trunc(v))
	return nil
}

// UnmarshalJSON 讓整數欄位容忍浮點寫法，其餘欄位照常解碼。
func (o *Opportunity) UnmarshalJSON(data []byte) error {
	type plain Opportunity
	aux := struct {
		*plain
		DaysToExpiry wholeNumber `json:"days_to_expiry"`
		Volume       wholeNumber `json:"volume"`
		OpenInterest wholeNumber `json:"open_interest"`
	}{
		plain:        (*plain)(o),
		DaysToExpiry: wholeNumber(o.DaysToExpiry),
		Volume:       wholeNumber(o.Volume),
		OpenInterest: wholeNumber(o.OpenInterest),
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	o.DaysToExpiry = int(aux.DaysToExpiry)
	o.Volume = int64(aux.Volume)
	o.OpenInterest = int64(aux.OpenInterest)
	return nil
}

func (u *Underlying) UnmarshalJSON(data []byte) error {
	type plain Underlying
	aux := struct {
		*plain
		TotalOptions        wholeNumber `json:"total_options"`
		TotalVolume         wholeNumber `json:"total_volume"`
		TotalOpenInterest   wholeNumber `json:"total_open_interest"`
		OptionsExpiringSoon wholeNumber `json:"options_expiring_soon"`
	}{
		plain:               (*plain)(u),
		TotalOptions:        wholeNumber(u.TotalOptions),
		TotalVolume:         wholeNumber(u.TotalVolume),
		TotalOpenInterest:   wholeNumber(u.TotalOpenInterest),
		OptionsExpiringSoon: wholeNumber(u.OptionsExpiringSoon),
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	u.TotalOptions = int(aux.TotalOptions)
	u.TotalVolume = int64(aux.TotalVolume)
	u.TotalOpenInterest = int64(aux.TotalOpenInterest)
	u.OptionsExpiringSoon = int(aux.OptionsExpiringSoon)
	return nil
}

func (m *MarketOverview) UnmarshalJSON(data []byte) error {
	type plain MarketOverview
	aux := struct {
		*plain
		TotalOpportunities   wholeNumber            `json:"total_opportunities"`
		TotalUnderlyings     wholeNumber            `json:"total_underlyings"`
		HighProbabilityCount wholeNumber            `json:"high_probability_count"`
		PositiveEVCount      wholeNumber            `json:"positive_ev_count"`
		StrategyDistribution map[string]wholeNumber `json:"strategy_distribution"`
	}{
		plain:                (*plain)(m),
		TotalOpportunities:   wholeNumber(m.TotalOpportunities),
		TotalUnderlyings:     wholeNumber(m.TotalUnderlyings),
		HighProbabilityCount: wholeNumber(m.HighProbabilityCount),
		PositiveEVCount:      wholeNumber(m.PositiveEVCount),
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	m.TotalOpportunities = int(aux.TotalOpportunities)
	m.TotalUnderlyings = int(aux.TotalUnderlyings)
	m.HighProbabilityCount = int(aux.HighProbabilityCount)
	m.PositiveEVCount = int(aux.PositiveEVCount)
	if aux.StrategyDistribution != nil {
		m.StrategyDistribution = make(map[string]int, len(aux.StrategyDistribution))
		for name, v := range aux.StrategyDistribution {
			m.StrategyDistribution[name] = int(v)
		}
	}
	return nil
}
