package domain

import "time"

// RevenueTrendPoint representa a receita e quantidade de pedidos de um mês.
// A fonte entrega a série ordenada de forma ascendente por (ano, mês).
type RevenueTrendPoint struct {
	Year    int     `json:"year"`
	Month   int     `json:"month"`
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}

// Label formata o período como "Jan 2006"
func (p *RevenueTrendPoint) Label() string {
	return time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, time.UTC).Format("Jan 2006")
}

type RevenueTrendsResponse struct {
	Trends []*RevenueTrendPoint `json:"trends"`
}
