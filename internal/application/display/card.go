package display

import (
	"fmt"

	domain "options-dashboard/internal/domain/dashboard"
)

// Tone 為樣式語意，由頁面模板對應到實際 CSS class。
type Tone string

const (
	ToneGreen  Tone = "green"
	ToneYellow Tone = "yellow"
	ToneRed    Tone = "red"
	ToneBlue   Tone = "blue"
	TonePurple Tone = "purple"
	ToneGray   Tone = "gray"
)

// 卡片門檻。
const (
	HighScoreThreshold       = 80
	FairScoreThreshold       = 60
	HighProbabilityThreshold = 70
	FairProbabilityThreshold = 50
	HighlightedRanks         = 3
)

// Badge 為卡片右下角的標籤。
type Badge struct {
	Label string
	Tone  Tone
}

// Card 為單筆機會的顯示模型，所有欄位已格式化。
type Card struct {
	ID            string
	Rank          int
	RankTone      Tone
	BorderTone    Tone
	Symbol        string
	Underlying    string
	IsCall        bool
	Strategy      string
	Score         string
	ScoreTone     Tone
	Premium       string
	WinRate       string
	WinRateTone   Tone
	Delta         string
	DaysToExpiry  int
	MaxLoss       string
	MaxProfit     string
	RiskReward    string
	ImpliedVol    string
	Theta         string
	Vega          string
	Volume        string
	OpenInterest  string
	ExpectedValue string
	EVTone        Tone
	Breakeven     string
	Expires       string
	Spread        string
	Badges        []Badge
}

// ScoreTone 分數 ≥80 綠、≥60 黃、其餘紅。
func ScoreTone(score float64) Tone {
	switch {
	case score >= HighScoreThreshold:
		return ToneGreen
	case score >= FairScoreThreshold:
		return ToneYellow
	default:
		return ToneRed
	}
}

// ProbabilityTone 勝率 ≥70 綠、≥50 黃、其餘紅。
func ProbabilityTone(p float64) Tone {
	switch {
	case p >= HighProbabilityThreshold:
		return ToneGreen
	case p >= FairProbabilityThreshold:
		return ToneYellow
	default:
		return ToneRed
	}
}

// Badges 依門檻產生標籤，順序固定。
func Badges(o domain.Opportunity) []Badge {
	var out []Badge
	if o.Score >= HighScoreThreshold {
		out = append(out, Badge{Label: "High Score", Tone: ToneGreen})
	}
	if o.ProbabilityOfProfit >= HighProbabilityThreshold {
		out = append(out, Badge{Label: "High Probability", Tone: ToneBlue})
	}
	if o.ExpectedValue > 0 {
		out = append(out, Badge{Label: "Positive EV", Tone: TonePurple})
	}
	return out
}

// NewCard 由單筆機會與名次（從 1 起算）產生卡片。
func NewCard(o domain.Opportunity, rank int) Card {
	c := Card{
		ID:            o.ID,
		Rank:          rank,
		RankTone:      ToneGray,
		BorderTone:    ToneBlue,
		Symbol:        o.UnderlyingSymbol,
		Underlying:    "$" + FormatPlain(o.UnderlyingPrice),
		IsCall:        o.IsCall(),
		Strategy:      fmt.Sprintf("%s $%s", o.StrategyType, FormatPlain(o.Strike)),
		Score:         fmt.Sprintf("%.1f", o.Score),
		ScoreTone:     ScoreTone(o.Score),
		Premium:       FormatDollars(o.MarketPrice),
		WinRate:       FormatPercent(o.ProbabilityOfProfit),
		WinRateTone:   ProbabilityTone(o.ProbabilityOfProfit),
		Delta:         fmt.Sprintf("%.3f", o.Delta),
		DaysToExpiry:  o.DaysToExpiry,
		MaxLoss:       FormatCurrency(o.MaxLoss),
		MaxProfit:     FormatMaxProfit(o.MaxProfit),
		RiskReward:    FormatRatio(o.RiskRewardRatio),
		ImpliedVol:    FormatPercent(o.ImpliedVolatility),
		Theta:         FormatTheta(o.Theta),
		Vega:          FormatDollars(o.Vega),
		Volume:        FormatCount(o.Volume),
		OpenInterest:  FormatCount(o.OpenInterest),
		ExpectedValue: FormatCurrency(o.ExpectedValue),
		EVTone:        ToneRed,
		Breakeven:     FormatDollars(o.Breakeven),
		Expires:       FormatExpiry(o.ExpiryDate),
		Spread:        FormatPercent(o.BidAskSpreadPct),
		Badges:        Badges(o),
	}
	if rank <= HighlightedRanks {
		c.RankTone = ToneYellow
	}
	if o.Score >= HighScoreThreshold {
		c.BorderTone = ToneGreen
	}
	if o.ExpectedValue > 0 {
		c.EVTone = ToneGreen
	}
	return c
}

// NewCards 依顯示順序編號（1 起算）。
func NewCards(opps []domain.Opportunity) []Card {
	out := make([]Card, 0, len(opps))
	for i, o := range opps {
		out = append(out, NewCard(o, i+1))
	}
	return out
}
