package response

import (
	"nutritrack/internal/core/domain/period"
)

type Range struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Days      int    `json:"days"`
}

func (r *Range) FromDomainType(dr period.Range) {
	r.StartDate = dr.StartDate()
	r.EndDate = dr.EndDate()
	r.Days = dr.Days()
}

type Period struct {
	Granularity string `json:"granularity"`
	Range       Range  `json:"range"`
	Previous    Range  `json:"previous"`
}

func (p *Period) FromDomainType(g period.Granularity, current, previous period.Range) {
	p.Granularity = g.String()
	p.Range.FromDomainType(current)
	p.Previous.FromDomainType(previous)
}
