package services

import (
	"context"
	"math"
	"sort"
	"time"

	"simple-ecommerce/models"
)

const dateLayout = "2006-01-02"

type InvoiceRangeStore interface {
	ListBetween(ctx context.Context, start, end time.Time) ([]models.Invoice, error)
}

// StatisticService aggregates invoices into revenue reports. All
// calendar bucketing happens in the reporting timezone.
type StatisticService struct {
	invoices InvoiceRangeStore
	loc      *time.Location
}

func NewStatisticService(invoices InvoiceRangeStore) *StatisticService {
	return &StatisticService{invoices: invoices, loc: time.Local}
}

// RangeReport aggregates invoices created in [startDate, endDate],
// with the end date inclusive through the last instant of its
// calendar day.
func (s *StatisticService) RangeReport(ctx context.Context, startDate, endDate string) (*models.RangeReport, error) {
	if startDate == "" || endDate == "" {
		return nil, invalid("Start date and end date are required")
	}

	start, err := time.ParseInLocation(dateLayout, startDate, s.loc)
	if err != nil {
		return nil, invalid("Invalid date format")
	}
	end, err := time.ParseInLocation(dateLayout, endDate, s.loc)
	if err != nil {
		return nil, invalid("Invalid date format")
	}
	end = endOfDay(end)

	invoices, err := s.invoices.ListBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}

	daily := map[string]*models.DailyRevenue{}
	for _, inv := range invoices {
		date := inv.CreatedAt.In(s.loc).Format(dateLayout)
		bucket, ok := daily[date]
		if !ok {
			bucket = &models.DailyRevenue{Date: date}
			daily[date] = bucket
		}
		bucket.Revenue += inv.Total
		bucket.Orders++
	}

	dailyRevenue := make([]models.DailyRevenue, 0, len(daily))
	for _, bucket := range daily {
		dailyRevenue = append(dailyRevenue, *bucket)
	}
	sort.Slice(dailyRevenue, func(i, j int) bool {
		return dailyRevenue[i].Date < dailyRevenue[j].Date
	})

	recent := invoices
	if len(recent) > 10 {
		recent = recent[:10]
	}

	return &models.RangeReport{
		Period: models.StatPeriod{
			StartDate: start.Format(time.RFC3339),
			EndDate:   end.Format(time.RFC3339),
		},
		Summary:        summarize(invoices),
		TopProducts:    topProducts(invoices, 10),
		DailyRevenue:   dailyRevenue,
		RecentInvoices: recent,
	}, nil
}

// SingleDayReport aggregates one calendar day and buckets its orders
// into hourly slots; hours with no orders are omitted.
func (s *StatisticService) SingleDayReport(ctx context.Context, date string) (*models.SingleDayReport, error) {
	if date == "" {
		return nil, invalid("Date is required")
	}

	day, err := time.ParseInLocation(dateLayout, date, s.loc)
	if err != nil {
		return nil, invalid("Invalid date format")
	}

	invoices, err := s.invoices.ListBetween(ctx, day, endOfDay(day))
	if err != nil {
		return nil, err
	}

	hourly := [24]models.HourlyStat{}
	for hour := range hourly {
		hourly[hour].Hour = hour
	}
	for _, inv := range invoices {
		hour := inv.CreatedAt.In(s.loc).Hour()
		hourly[hour].Revenue += inv.Total
		hourly[hour].Orders++
	}

	breakdown := []models.HourlyStat{}
	for _, stat := range hourly {
		if stat.Orders > 0 {
			breakdown = append(breakdown, stat)
		}
	}

	return &models.SingleDayReport{
		Date:            day.Format(dateLayout),
		Summary:         summarize(invoices),
		TopProducts:     topProducts(invoices, 5),
		HourlyBreakdown: breakdown,
		Invoices:        invoices,
	}, nil
}

func endOfDay(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, int(999*time.Millisecond), day.Location())
}

func summarize(invoices []models.Invoice) models.StatSummary {
	summary := models.StatSummary{TotalInvoices: len(invoices)}
	for _, inv := range invoices {
		summary.TotalRevenue += inv.Total
	}
	if summary.TotalInvoices > 0 {
		summary.AverageOrderValue = int(math.Round(float64(summary.TotalRevenue) / float64(summary.TotalInvoices)))
	}
	return summary
}

// topProducts re-parses every invoice's item snapshot and ranks
// products by accumulated revenue, ties broken by product id.
func topProducts(invoices []models.Invoice, limit int) []models.ProductStat {
	byProduct := map[int]*models.ProductStat{}
	for _, inv := range invoices {
		for _, item := range inv.Items {
			stat, ok := byProduct[item.ProductID]
			if !ok {
				stat = &models.ProductStat{ProductID: item.ProductID, Name: item.Name}
				byProduct[item.ProductID] = stat
			}
			stat.TotalQuantity += item.Quantity
			stat.TotalRevenue += item.Total
		}
	}

	stats := make([]models.ProductStat, 0, len(byProduct))
	for _, stat := range byProduct {
		stats = append(stats, *stat)
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].TotalRevenue != stats[j].TotalRevenue {
			return stats[i].TotalRevenue > stats[j].TotalRevenue
		}
		return stats[i].ProductID < stats[j].ProductID
	})

	if len(stats) > limit {
		stats = stats[:limit]
	}
	return stats
}
