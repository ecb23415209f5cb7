package models

type StatPeriod struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type StatSummary struct {
	TotalInvoices     int `json:"totalInvoices"`
	TotalRevenue      int `json:"totalRevenue"`
	AverageOrderValue int `json:"averageOrderValue"`
}

type ProductStat struct {
	ProductID     int    `json:"productId"`
	Name          string `json:"name"`
	TotalQuantity int    `json:"totalQuantity"`
	TotalRevenue  int    `json:"totalRevenue"`
}

type DailyRevenue struct {
	Date    string `json:"date"`
	Revenue int    `json:"revenue"`
	Orders  int    `json:"orders"`
}

type HourlyStat struct {
	Hour    int `json:"hour"`
	Revenue int `json:"revenue"`
	Orders  int `json:"orders"`
}

type RangeReport struct {
	Period         StatPeriod     `json:"period"`
	Summary        StatSummary    `json:"summary"`
	TopProducts    []ProductStat  `json:"topProducts"`
	DailyRevenue   []DailyRevenue `json:"dailyRevenue"`
	RecentInvoices []Invoice      `json:"recentInvoices"`
}

type SingleDayReport struct {
	Date            string        `json:"date"`
	Summary         StatSummary   `json:"summary"`
	TopProducts     []ProductStat `json:"topProducts"`
	HourlyBreakdown []HourlyStat  `json:"hourlyBreakdown"`
	Invoices        []Invoice     `json:"invoices"`
}
