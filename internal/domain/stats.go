package domain

import "github.com/google/uuid"

// DeficiencyTotals counts deficiencies by completion.
type DeficiencyTotals struct {
	Total      int
	Complete   int
	Incomplete int // anything not complete
}

// ProjectTotals are the totals of a single project.
type ProjectTotals struct {
	ProjectID   uuid.UUID
	ProjectName string
	DeficiencyTotals
}

// TradeProgress reports how much of a trade's work is still open.
type TradeProgress struct {
	TradeID           uuid.UUID
	TradeName         string
	Total             int
	Incomplete        int
	IncompletePercent float64
}

// Percent fills IncompletePercent rounded to two decimals.
func (p *TradeProgress) Percent() {
	if p.Total == 0 {
		p.IncompletePercent = 0
		return
	}
	v := float64(p.Incomplete) * 100 / float64(p.Total)
	p.IncompletePercent = float64(int(v*100+0.5)) / 100
}

// TradeOption is a selectable trade in filter dropdowns.
type TradeOption struct {
	ID   uuid.UUID
	Name string
}

// StatusOption pairs a status with its label.
type StatusOption struct {
	Value DeficiencyStatus
	Label string
}

// FilterOptions are the distinct values a caller can filter deficiencies by.
type FilterOptions struct {
	Locations []string
	Statuses  []StatusOption
	Trades    []TradeOption
}

// StatsFilter narrows statistics.
type StatsFilter struct {
	InspectionName *string
	TradeName      *string
}
