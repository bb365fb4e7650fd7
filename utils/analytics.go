package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/Govind-619/ShopSphere/models"
	"gorm.io/gorm"
)

// RevenueStatuses are the order statuses counted as realised revenue
var RevenueStatuses = []string{models.OrderStatusShipped, models.OrderStatusDelivered}

// Granularity is the bucket size of a sales series
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
)

// Periods maps the accepted period names to their length. "all" has no fixed length.
var Periods = map[string]time.Duration{
	"7d":  7 * 24 * time.Hour,
	"30d": 30 * 24 * time.Hour,
	"90d": 90 * 24 * time.Hour,
	"1y":  365 * 24 * time.Hour,
	"all": 0,
}

// SalesPoint is one bucket of a sales series
type SalesPoint struct {
	Period  time.Time `json:"period"`
	Label   string    `json:"label"`
	Revenue float64   `json:"revenue"`
	Orders  int64     `json:"orders"`
}

// SalesSeries is a bucketed revenue series over a period
type SalesSeries struct {
	Period      string       `json:"period"`
	Granularity Granularity  `json:"granularity"`
	Start       time.Time    `json:"start"`
	End         time.Time    `json:"end"`
	Points      []SalesPoint `json:"points"`
	Revenue     float64      `json:"revenue"`
	Orders      int64        `json:"orders"`
}

// RevenueSummary aggregates revenue figures and their trends
type RevenueSummary struct {
	TotalRevenue       float64 `json:"total_revenue"`
	TotalOrders        int64   `json:"total_orders"`
	AverageOrderValue  float64 `json:"average_order_value"`
	WeeklyRevenue      float64 `json:"weekly_revenue"`
	WeeklyOrders       int64   `json:"weekly_orders"`
	WeeklyTrend        float64 `json:"weekly_trend"`
	MonthlyRevenue     float64 `json:"monthly_revenue"`
	MonthlyOrders      int64   `json:"monthly_orders"`
	MonthlyTrend       float64 `json:"monthly_trend"`
	WeeklyOrdersTrend  float64 `json:"weekly_orders_trend"`
	MonthlyOrdersTrend float64 `json:"monthly_orders_trend"`
}

// TopProduct is a product ranked by units sold
type TopProduct struct {
	ProductID    uint    `json:"product_id"`
	Title        string  `json:"title"`
	QuantitySold int64   `json:"quantity_sold"`
	Revenue      float64 `json:"revenue"`
}

// ChooseGranularity picks day buckets up to 31 days, weeks up to 182 days, months beyond
func ChooseGranularity(start, end time.Time) Granularity {
	days := end.Sub(start).Hours() / 24
	switch {
	case days <= 31:
		return GranularityDay
	case days <= 182:
		return GranularityWeek
	default:
		return GranularityMonth
	}
}

// TruncateTo returns the start of the bucket containing t, in UTC.
// Weeks start on Monday to match Postgres date_trunc.
func TruncateTo(t time.Time, g Granularity) time.Time {
	t = t.UTC()
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	switch g {
	case GranularityWeek:
		offset := (int(day.Weekday()) + 6) % 7
		return day.AddDate(0, 0, -offset)
	case GranularityMonth:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	default:
		return day
	}
}

func nextBucket(t time.Time, g Granularity) time.Time {
	switch g {
	case GranularityWeek:
		return t.AddDate(0, 0, 7)
	case GranularityMonth:
		return t.AddDate(0, 1, 0)
	default:
		return t.AddDate(0, 0, 1)
	}
}

// BucketLabel formats a bucket start for charts
func BucketLabel(t time.Time, g Granularity) string {
	switch g {
	case GranularityMonth:
		return t.Format("2006-01")
	case GranularityWeek:
		year, week := t.ISOWeek()
		return fmt.Sprintf("%d-W%02d", year, week)
	default:
		return t.Format("2006-01-02")
	}
}

// FillBuckets returns one point per bucket between start and end, using the
// values in points where present and zero elsewhere
func FillBuckets(start, end time.Time, g Granularity, points []SalesPoint) []SalesPoint {
	byBucket := make(map[time.Time]SalesPoint, len(points))
	for _, p := range points {
		key := TruncateTo(p.Period, g)
		existing := byBucket[key]
		existing.Revenue += p.Revenue
		existing.Orders += p.Orders
		byBucket[key] = existing
	}

	var filled []SalesPoint
	last := TruncateTo(end, g)
	for b := TruncateTo(start, g); !b.After(last); b = nextBucket(b, g) {
		p := byBucket[b]
		filled = append(filled, SalesPoint{
			Period:  b,
			Label:   BucketLabel(b, g),
			Revenue: RoundPrice(p.Revenue),
			Orders:  p.Orders,
		})
	}
	return filled
}

// TrendDelta returns the percentage change from previous to current.
// A rise from zero counts as 100%.
func TrendDelta(current, previous float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return RoundPrice((current - previous) / previous * 100)
}

// PeriodStart resolves a period name to its start at now.
// For "all" it returns the zero time and true.
func PeriodStart(period string, now time.Time) (time.Time, bool) {
	length, ok := Periods[period]
	if !ok {
		return time.Time{}, false
	}
	if length == 0 {
		return time.Time{}, true
	}
	return now.Add(-length), true
}

func revenueOrders(db *gorm.DB) *gorm.DB {
	return db.Model(&models.Order{}).Where("status IN ?", RevenueStatuses)
}

type revenueTotals struct {
	Revenue float64
	Orders  int64
}

func revenueBetween(db *gorm.DB, from, to time.Time) (revenueTotals, error) {
	var totals revenueTotals
	query := revenueOrders(db).Select("COALESCE(SUM(total), 0) AS revenue, COUNT(*) AS orders")
	if !from.IsZero() {
		query = query.Where("created_at >= ?", from)
	}
	if !to.IsZero() {
		query = query.Where("created_at < ?", to)
	}
	err := query.Scan(&totals).Error
	return totals, err
}

// GetRevenueSummary computes all-time, weekly and monthly revenue with trends
func GetRevenueSummary(ctx context.Context, db *gorm.DB, now time.Time) (*RevenueSummary, error) {
	db = db.WithContext(ctx)
	week := 7 * 24 * time.Hour
	month := 30 * 24 * time.Hour

	all, err := revenueBetween(db, time.Time{}, time.Time{})
	if err != nil {
		return nil, err
	}
	thisWeek, err := revenueBetween(db, now.Add(-week), time.Time{})
	if err != nil {
		return nil, err
	}
	lastWeek, err := revenueBetween(db, now.Add(-2*week), now.Add(-week))
	if err != nil {
		return nil, err
	}
	thisMonth, err := revenueBetween(db, now.Add(-month), time.Time{})
	if err != nil {
		return nil, err
	}
	lastMonth, err := revenueBetween(db, now.Add(-2*month), now.Add(-month))
	if err != nil {
		return nil, err
	}

	return buildRevenueSummary(all, thisWeek, lastWeek, thisMonth, lastMonth), nil
}

// buildRevenueSummary assembles the summary from raw totals
func buildRevenueSummary(all, thisWeek, lastWeek, thisMonth, lastMonth revenueTotals) *RevenueSummary {
	summary := &RevenueSummary{
		TotalRevenue:       RoundPrice(all.Revenue),
		TotalOrders:        all.Orders,
		WeeklyRevenue:      RoundPrice(thisWeek.Revenue),
		WeeklyOrders:       thisWeek.Orders,
		WeeklyTrend:        TrendDelta(thisWeek.Revenue, lastWeek.Revenue),
		WeeklyOrdersTrend:  TrendDelta(float64(thisWeek.Orders), float64(lastWeek.Orders)),
		MonthlyRevenue:     RoundPrice(thisMonth.Revenue),
		MonthlyOrders:      thisMonth.Orders,
		MonthlyTrend:       TrendDelta(thisMonth.Revenue, lastMonth.Revenue),
		MonthlyOrdersTrend: TrendDelta(float64(thisMonth.Orders), float64(lastMonth.Orders)),
	}
	if all.Orders > 0 {
		summary.AverageOrderValue = RoundPrice(all.Revenue / float64(all.Orders))
	}
	return summary
}

// GetSalesSeries returns the bucketed revenue series for a named period
func GetSalesSeries(ctx context.Context, db *gorm.DB, period string, now time.Time) (*SalesSeries, error) {
	start, ok := PeriodStart(period, now)
	if !ok {
		return nil, BadRequestError("Invalid period. Use one of 7d, 30d, 90d, 1y, all", nil)
	}
	db = db.WithContext(ctx)

	if start.IsZero() {
		var first struct{ First *time.Time }
		if err := revenueOrders(db).Select("MIN(created_at) AS first").Scan(&first).Error; err != nil {
			return nil, err
		}
		if first.First == nil {
			start = now
		} else {
			start = *first.First
		}
	}

	g := ChooseGranularity(start, now)
	var rows []SalesPoint
	err := revenueOrders(db).
		Select(fmt.Sprintf("date_trunc('%s', created_at AT TIME ZONE 'UTC') AS period, COALESCE(SUM(total), 0) AS revenue, COUNT(*) AS orders", g)).
		Where("created_at >= ?", start).
		Group("period").
		Order("period").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	series := &SalesSeries{
		Period:      period,
		Granularity: g,
		Start:       start,
		End:         now,
		Points:      FillBuckets(start, now, g, rows),
	}
	for _, p := range series.Points {
		series.Revenue += p.Revenue
		series.Orders += p.Orders
	}
	series.Revenue = RoundPrice(series.Revenue)
	return series, nil
}

// GetTopProducts ranks products by units sold in revenue orders
func GetTopProducts(ctx context.Context, db *gorm.DB, limit int) ([]TopProduct, error) {
	if limit < 1 {
		limit = 5
	}
	var top []TopProduct
	err := db.WithContext(ctx).
		Table("order_items").
		Select("order_items.product_id, MAX(order_items.title) AS title, SUM(order_items.quantity) AS quantity_sold, COALESCE(SUM(order_items.line_total), 0) AS revenue").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.status IN ?", RevenueStatuses).
		Group("order_items.product_id").
		Order("quantity_sold DESC, revenue DESC").
		Limit(limit).
		Scan(&top).Error
	if err != nil {
		return nil, err
	}
	for i := range top {
		top[i].Revenue = RoundPrice(top[i].Revenue)
	}
	return top, nil
}
