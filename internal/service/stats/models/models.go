package models

// Figures выручка и количество бронирований
type Figures struct {
	Revenue float64 `json:"revenue"`
	Count   int     `json:"count"`
}

// PeriodResponse показатели за период по видам услуг и итог
type PeriodResponse struct {
	Services map[string]Figures `json:"services"`
	Total    Figures            `json:"total"`
}

// StatsResponse показатели за текущий месяц, текущий год и за всё время
type StatsResponse struct {
	Monthly PeriodResponse `json:"monthly"`
	Yearly  PeriodResponse `json:"yearly"`
	AllTime PeriodResponse `json:"allTime"`
}

// Add добавляет показатели услуги к периоду
func (p *PeriodResponse) Add(service string, revenue float64, count int) {
	if p.Services == nil {
		p.Services = make(map[string]Figures)
	}
	p.Services[service] = Figures{Revenue: revenue, Count: count}
	p.Total.Revenue += revenue
	p.Total.Count += count
}
