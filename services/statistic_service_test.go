package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simple-ecommerce/models"
)

func invoiceAt(id int, created time.Time, total int, items ...models.InvoiceItem) models.Invoice {
	return models.Invoice{
		ID:        id,
		UserID:    1,
		Name:      "Anggi",
		Email:     "anggi@mail.com",
		Phone:     "08123456789",
		Items:     items,
		Total:     total,
		CreatedAt: created,
	}
}

func localTime(day string, hour, minute int) time.Time {
	parsed, err := time.ParseInLocation(dateLayout, day, time.Local)
	if err != nil {
		panic(err)
	}
	return parsed.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

func TestRangeReportValidatesInput(t *testing.T) {
	svc := NewStatisticService(memInvoices{newMemStore()})

	var validationErr *ValidationError

	_, err := svc.RangeReport(context.Background(), "", "2024-01-05")
	require.ErrorAs(t, err, &validationErr)

	_, err = svc.RangeReport(context.Background(), "2024-01-01", "")
	require.ErrorAs(t, err, &validationErr)

	_, err = svc.RangeReport(context.Background(), "05-01-2024", "2024-01-05")
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Invalid date format", validationErr.Message)
}

func TestRangeReportSummary(t *testing.T) {
	store := newMemStore()
	store.invoices = []models.Invoice{
		invoiceAt(1, localTime("2024-01-05", 9, 0), 100),
		invoiceAt(2, localTime("2024-01-05", 14, 30), 250),
	}
	svc := NewStatisticService(memInvoices{store})

	report, err := svc.RangeReport(context.Background(), "2024-01-01", "2024-01-31")
	require.NoError(t, err)

	assert.Equal(t, 2, report.Summary.TotalInvoices)
	assert.Equal(t, 350, report.Summary.TotalRevenue)
	assert.Equal(t, 175, report.Summary.AverageOrderValue)
}

func TestRangeReportAverageRounds(t *testing.T) {
	store := newMemStore()
	store.invoices = []models.Invoice{
		invoiceAt(1, localTime("2024-01-05", 9, 0), 100),
		invoiceAt(2, localTime("2024-01-06", 9, 0), 100),
		invoiceAt(3, localTime("2024-01-07", 9, 0), 101),
	}
	svc := NewStatisticService(memInvoices{store})

	report, err := svc.RangeReport(context.Background(), "2024-01-01", "2024-01-31")
	require.NoError(t, err)

	// 301 / 3 = 100.33, rounded to nearest.
	assert.Equal(t, 100, report.Summary.AverageOrderValue)
}

func TestRangeReportEndDateInclusive(t *testing.T) {
	store := newMemStore()
	store.invoices = []models.Invoice{
		invoiceAt(1, localTime("2024-01-05", 23, 30), 500),
		invoiceAt(2, localTime("2024-01-06", 0, 15), 700),
	}
	svc := NewStatisticService(memInvoices{store})

	report, err := svc.RangeReport(context.Background(), "2024-01-01", "2024-01-05")
	require.NoError(t, err)

	assert.Equal(t, 1, report.Summary.TotalInvoices)
	assert.Equal(t, 500, report.Summary.TotalRevenue)
}

func TestRangeReportDailyRevenueSorted(t *testing.T) {
	store := newMemStore()
	store.invoices = []models.Invoice{
		invoiceAt(1, localTime("2024-01-07", 10, 0), 300),
		invoiceAt(2, localTime("2024-01-05", 10, 0), 100),
		invoiceAt(3, localTime("2024-01-05", 15, 0), 200),
	}
	svc := NewStatisticService(memInvoices{store})

	report, err := svc.RangeReport(context.Background(), "2024-01-01", "2024-01-31")
	require.NoError(t, err)

	require.Len(t, report.DailyRevenue, 2)
	assert.Equal(t, "2024-01-05", report.DailyRevenue[0].Date)
	assert.Equal(t, 300, report.DailyRevenue[0].Revenue)
	assert.Equal(t, 2, report.DailyRevenue[0].Orders)
	assert.Equal(t, "2024-01-07", report.DailyRevenue[1].Date)
	assert.Equal(t, 300, report.DailyRevenue[1].Revenue)
	assert.Equal(t, 1, report.DailyRevenue[1].Orders)
}

func TestRangeReportTopProducts(t *testing.T) {
	store := newMemStore()
	store.invoices = []models.Invoice{
		invoiceAt(1, localTime("2024-01-05", 9, 0), 110000,
			models.InvoiceItem{ProductID: 1, Name: "Americano", Price: 25000, Quantity: 2, Total: 50000},
			models.InvoiceItem{ProductID: 2, Name: "Latte", Price: 30000, Quantity: 2, Total: 60000},
		),
		invoiceAt(2, localTime("2024-01-06", 9, 0), 50000,
			models.InvoiceItem{ProductID: 1, Name: "Americano", Price: 25000, Quantity: 2, Total: 50000},
		),
	}
	svc := NewStatisticService(memInvoices{store})

	report, err := svc.RangeReport(context.Background(), "2024-01-01", "2024-01-31")
	require.NoError(t, err)

	require.Len(t, report.TopProducts, 2)
	assert.Equal(t, "Americano", report.TopProducts[0].Name)
	assert.Equal(t, 100000, report.TopProducts[0].TotalRevenue)
	assert.Equal(t, 4, report.TopProducts[0].TotalQuantity)
	assert.Equal(t, "Latte", report.TopProducts[1].Name)
}

func TestRangeReportTopProductsTieBreakByID(t *testing.T) {
	store := newMemStore()
	store.invoices = []models.Invoice{
		invoiceAt(1, localTime("2024-01-05", 9, 0), 100000,
			models.InvoiceItem{ProductID: 7, Name: "Mocha", Price: 50000, Quantity: 1, Total: 50000},
			models.InvoiceItem{ProductID: 3, Name: "Latte", Price: 50000, Quantity: 1, Total: 50000},
		),
	}
	svc := NewStatisticService(memInvoices{store})

	report, err := svc.RangeReport(context.Background(), "2024-01-01", "2024-01-31")
	require.NoError(t, err)

	require.Len(t, report.TopProducts, 2)
	assert.Equal(t, 3, report.TopProducts[0].ProductID)
	assert.Equal(t, 7, report.TopProducts[1].ProductID)
}

func TestRangeReportRecentInvoicesCapped(t *testing.T) {
	store := newMemStore()
	for i := 0; i < 15; i++ {
		store.invoices = append(store.invoices,
			invoiceAt(i+1, localTime("2024-01-05", 8, i), 100))
	}
	svc := NewStatisticService(memInvoices{store})

	report, err := svc.RangeReport(context.Background(), "2024-01-01", "2024-01-31")
	require.NoError(t, err)

	require.Len(t, report.RecentInvoices, 10)
	assert.Equal(t, 15, report.Summary.TotalInvoices)
	// Newest first.
	assert.Equal(t, 15, report.RecentInvoices[0].ID)
	assert.Equal(t, 6, report.RecentInvoices[9].ID)
}

func TestSingleDayReportHourlyBreakdown(t *testing.T) {
	store := newMemStore()
	store.invoices = []models.Invoice{
		invoiceAt(1, localTime("2024-01-05", 9, 5), 100),
		invoiceAt(2, localTime("2024-01-05", 9, 45), 200),
		invoiceAt(3, localTime("2024-01-05", 17, 0), 300),
		invoiceAt(4, localTime("2024-01-06", 9, 0), 999),
	}
	svc := NewStatisticService(memInvoices{store})

	report, err := svc.SingleDayReport(context.Background(), "2024-01-05")
	require.NoError(t, err)

	assert.Equal(t, "2024-01-05", report.Date)
	assert.Equal(t, 3, report.Summary.TotalInvoices)
	assert.Equal(t, 600, report.Summary.TotalRevenue)

	require.Len(t, report.HourlyBreakdown, 2, "hours without orders are omitted")
	assert.Equal(t, 9, report.HourlyBreakdown[0].Hour)
	assert.Equal(t, 300, report.HourlyBreakdown[0].Revenue)
	assert.Equal(t, 2, report.HourlyBreakdown[0].Orders)
	assert.Equal(t, 17, report.HourlyBreakdown[1].Hour)
	assert.Equal(t, 300, report.HourlyBreakdown[1].Revenue)
	assert.Equal(t, 1, report.HourlyBreakdown[1].Orders)
}

func TestSingleDayReportValidatesInput(t *testing.T) {
	svc := NewStatisticService(memInvoices{newMemStore()})

	var validationErr *ValidationError

	_, err := svc.SingleDayReport(context.Background(), "")
	require.ErrorAs(t, err, &validationErr)

	_, err = svc.SingleDayReport(context.Background(), "not-a-date")
	require.ErrorAs(t, err, &validationErr)
}

func TestRangeAndSingleDayAgree(t *testing.T) {
	store := newMemStore()
	store.invoices = []models.Invoice{
		invoiceAt(1, localTime("2024-01-05", 0, 0), 100,
			models.InvoiceItem{ProductID: 1, Name: "Americano", Price: 50, Quantity: 2, Total: 100}),
		invoiceAt(2, localTime("2024-01-05", 23, 59), 250,
			models.InvoiceItem{ProductID: 2, Name: "Latte", Price: 125, Quantity: 2, Total: 250}),
		invoiceAt(3, localTime("2024-01-04", 12, 0), 999),
	}
	svc := NewStatisticService(memInvoices{store})

	rangeReport, err := svc.RangeReport(context.Background(), "2024-01-05", "2024-01-05")
	require.NoError(t, err)
	dayReport, err := svc.SingleDayReport(context.Background(), "2024-01-05")
	require.NoError(t, err)

	assert.Equal(t, rangeReport.Summary, dayReport.Summary)
	assert.Equal(t, rangeReport.TopProducts, dayReport.TopProducts)
}

func TestSummarizeEmptyRange(t *testing.T) {
	svc := NewStatisticService(memInvoices{newMemStore()})

	report, err := svc.RangeReport(context.Background(), "2024-01-01", "2024-01-31")
	require.NoError(t, err)

	assert.Equal(t, 0, report.Summary.TotalInvoices)
	assert.Equal(t, 0, report.Summary.TotalRevenue)
	assert.Equal(t, 0, report.Summary.AverageOrderValue)
	assert.Empty(t, report.TopProducts)
	assert.Empty(t, report.DailyRevenue)
	assert.Empty(t, report.RecentInvoices)
}

func TestTopProductsLimit(t *testing.T) {
	items := make([]models.InvoiceItem, 0, 12)
	total := 0
	for i := 1; i <= 12; i++ {
		revenue := i * 1000
		items = append(items, models.InvoiceItem{
			ProductID: i,
			Name:      fmt.Sprintf("Product %d", i),
			Price:     revenue,
			Quantity:  1,
			Total:     revenue,
		})
		total += revenue
	}
	store := newMemStore()
	store.invoices = []models.Invoice{invoiceAt(1, localTime("2024-01-05", 9, 0), total, items...)}
	svc := NewStatisticService(memInvoices{store})

	report, err := svc.RangeReport(context.Background(), "2024-01-01", "2024-01-31")
	require.NoError(t, err)

	require.Len(t, report.TopProducts, 10)
	assert.Equal(t, 12, report.TopProducts[0].ProductID)

	dayReport, err := svc.SingleDayReport(context.Background(), "2024-01-05")
	require.NoError(t, err)
	require.Len(t, dayReport.TopProducts, 5)
}
