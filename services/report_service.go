package services

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/google/uuid"
	"github.com/iamnokia/AdminHC-sub000/models"
)

// Report tabs
const (
	TabUsage     = "usage"
	TabProviders = "providers"
	TabPayments  = "payments"
	TabFeedback  = "feedback"
	TabHistory   = "history"
)

// ReportTabs lists the valid tab names
var ReportTabs = []string{TabUsage, TabProviders, TabPayments, TabFeedback, TabHistory}

// Bucket is one chart-ready group: records sharing a derived key (calendar
// month, rating value, category label, or status)
type Bucket struct {
	Key             string  `json:"key"`
	Label           string  `json:"label"`
	Count           int     `json:"count"`
	Total           float64 `json:"total"`
	UniqueCustomers int     `json:"unique_customers,omitempty"`
	GrowthRate      float64 `json:"growth_rate"`
}

// Summary is the plain-text totals block shown beside each chart. Empty
// datasets zero out every field rather than leaving stale values.
type Summary struct {
	TotalRecords    int     `json:"total_records"`
	TotalAmount     float64 `json:"total_amount"`
	AverageAmount   float64 `json:"average_amount"`
	UniqueCustomers int     `json:"unique_customers"`
	AverageRating   float64 `json:"average_rating"`
	GrowthRate      float64 `json:"growth_rate"`
}

// Report is the full payload for one report tab
type Report struct {
	Tab     string   `json:"tab"`
	Records any      `json:"records"`
	Series  []Bucket `json:"series"`
	Groups  []Bucket `json:"groups,omitempty"`
	Summary Summary  `json:"summary"`
	Sample  bool     `json:"sample,omitempty"`
}

// GrowthRate computes period-over-period growth as a percentage, returning 0
// instead of NaN/Inf when the previous period is zero
func GrowthRate(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous * 100
}

// coalesceAmount picks the first non-zero amount alias
func coalesceAmount(amount, total float64) float64 {
	if amount != 0 {
		return amount
	}
	return total
}

func coalesceStatus(primary, secondary string) string {
	if primary != "" {
		return primary
	}
	if secondary != "" {
		return secondary
	}
	return models.StatusInactive
}

func coalesceDate(primary, secondary string) string {
	if primary != "" {
		return primary
	}
	return secondary
}

// MapServiceOrders normalizes raw order rows: aliases coalesced, missing
// fields defaulted, category ids translated. Never fails on a partial row.
func MapServiceOrders(raw []models.RawServiceOrder) []models.ServiceOrder {
	orders := make([]models.ServiceOrder, 0, len(raw))
	for _, r := range raw {
		status := coalesceStatus(r.PaymentStatus, r.Status)
		date := models.ParseDate(coalesceDate(r.OrderDate, r.CreatedAt))

		order := models.ServiceOrder{
			ID:          r.ID,
			EmpID:       r.EmpID,
			CatID:       r.CatID,
			CatLabel:    models.CategoryLabel(r.CatID),
			UserID:      r.UserID,
			Amount:      coalesceAmount(r.Amount, r.Total),
			Status:      status,
			StatusColor: models.StatusColor(status),
			Date:        date,
		}
		if !date.IsZero() {
			order.DateLabel = date.Format("02/01/2006")
		}
		orders = append(orders, order)
	}
	return orders
}

// MapPayments normalizes raw payment rows and synthesizes a display id where
// the upstream omits one
func MapPayments(raw []models.RawPayment) []models.Payment {
	payments := make([]models.Payment, 0, len(raw))
	for _, r := range raw {
		status := coalesceStatus(r.PaymentStatus, r.Status)
		date := models.ParseDate(coalesceDate(r.PaidAt, r.CreatedAt))

		payment := models.Payment{
			ID:          r.ID,
			DisplayID:   paymentDisplayID(r.ID),
			CatID:       r.CatID,
			CatLabel:    models.CategoryLabel(r.CatID),
			Amount:      coalesceAmount(r.Amount, r.Total),
			Status:      status,
			StatusColor: models.StatusColor(status),
			Date:        date,
		}
		if !date.IsZero() {
			payment.DateLabel = date.Format("02/01/2006")
		}
		payments = append(payments, payment)
	}
	return payments
}

// paymentDisplayID builds the reference shown in the payments table. Rows
// without an upstream id get a short random reference so the table still has
// a stable-looking key.
func paymentDisplayID(id int) string {
	if id > 0 {
		return fmt.Sprintf("PAY-%06d", id)
	}
	return "PAY-" + uuid.NewString()[:8]
}

// MapComments normalizes raw feedback rows: rating bounded to 1..5 with a
// default, rating translated, anonymous users given a placeholder name
func MapComments(raw []models.RawComment) []models.Comment {
	comments := make([]models.Comment, 0, len(raw))
	for _, r := range raw {
		rating := r.Rating
		if rating < 1 || rating > 5 {
			rating = models.DefaultRating
		}
		name := r.UserName
		if name == "" {
			name = "ຜູ້ໃຊ້ງານ"
		}
		text := r.Comment
		if text == "" {
			text = r.Message
		}
		date := models.ParseDate(r.CreatedAt)

		comment := models.Comment{
			ID:         r.ID,
			EmpID:      r.EmpID,
			UserID:     r.UserID,
			UserName:   name,
			Rating:     rating,
			RatingText: models.RatingText(rating),
			Comment:    text,
			Date:       date,
		}
		if !date.IsZero() {
			comment.DateLabel = date.Format("02/01/2006")
		}
		comments = append(comments, comment)
	}
	return comments
}

// GroupOrdersByMonth buckets orders by calendar month, chronologically
// sorted, with per-bucket counts, totals, unique-customer counts and growth
// rates on the count series. Orders with no parseable date are excluded.
func GroupOrdersByMonth(orders []models.ServiceOrder) []Bucket {
	byKey := make(map[string]*Bucket)
	customers := make(map[string]map[int]bool)

	for _, order := range orders {
		if order.Date.IsZero() {
			continue
		}
		key := models.MonthKey(order.Date)
		bucket, ok := byKey[key]
		if !ok {
			bucket = &Bucket{Key: key, Label: models.MonthLabel(order.Date)}
			byKey[key] = bucket
			customers[key] = make(map[int]bool)
		}
		bucket.Count++
		bucket.Total += order.Amount
		if order.UserID != 0 {
			customers[key][order.UserID] = true
		}
	}

	buckets := sortedBuckets(byKey)
	for i := range buckets {
		buckets[i].UniqueCustomers = len(customers[buckets[i].Key])
		if i > 0 {
			buckets[i].GrowthRate = GrowthRate(float64(buckets[i].Count), float64(buckets[i-1].Count))
		}
	}
	return buckets
}

// GroupPaymentsByMonth buckets payments by calendar month with growth rates
// on the amount series
func GroupPaymentsByMonth(payments []models.Payment) []Bucket {
	byKey := make(map[string]*Bucket)

	for _, payment := range payments {
		if payment.Date.IsZero() {
			continue
		}
		key := models.MonthKey(payment.Date)
		bucket, ok := byKey[key]
		if !ok {
			bucket = &Bucket{Key: key, Label: models.MonthLabel(payment.Date)}
			byKey[key] = bucket
		}
		bucket.Count++
		bucket.Total += payment.Amount
	}

	buckets := sortedBuckets(byKey)
	for i := 1; i < len(buckets); i++ {
		buckets[i].GrowthRate = GrowthRate(buckets[i].Total, buckets[i-1].Total)
	}
	return buckets
}

func sortedBuckets(byKey map[string]*Bucket) []Bucket {
	keys := make([]string, 0, len(byKey))
	for key := range byKey {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	buckets := make([]Bucket, 0, len(keys))
	for _, key := range keys {
		buckets = append(buckets, *byKey[key])
	}
	return buckets
}

// GroupOrdersByCategory buckets orders by translated category label in first-
// seen order
func GroupOrdersByCategory(orders []models.ServiceOrder) []Bucket {
	return groupInOrder(len(orders), func(i int) (string, float64) {
		return orders[i].CatLabel, orders[i].Amount
	})
}

// GroupPaymentsByStatus buckets payments by payment status in first-seen order
func GroupPaymentsByStatus(payments []models.Payment) []Bucket {
	return groupInOrder(len(payments), func(i int) (string, float64) {
		return payments[i].Status, payments[i].Amount
	})
}

// GroupEmployeesByCategory buckets providers by category label, counting
// active providers into the bucket total
func GroupEmployeesByCategory(employees []models.Employee) []Bucket {
	return groupInOrder(len(employees), func(i int) (string, float64) {
		active := 0.0
		if employees[i].Status == models.StatusActive {
			active = 1
		}
		return models.CategoryLabel(employees[i].CatID), active
	})
}

// groupInOrder buckets by a derived label preserving insertion order; the
// second derived value accumulates into Total
func groupInOrder(n int, keyOf func(i int) (string, float64)) []Bucket {
	index := make(map[string]int)
	buckets := make([]Bucket, 0)

	for i := 0; i < n; i++ {
		label, value := keyOf(i)
		pos, ok := index[label]
		if !ok {
			pos = len(buckets)
			index[label] = pos
			buckets = append(buckets, Bucket{Key: label, Label: label})
		}
		buckets[pos].Count++
		buckets[pos].Total += value
	}
	return buckets
}

// GroupCommentsByRating buckets feedback by star value, always emitting all
// five buckets so the chart axis is stable
func GroupCommentsByRating(comments []models.Comment) []Bucket {
	buckets := make([]Bucket, 5)
	for i := range buckets {
		rating := i + 1
		buckets[i] = Bucket{Key: strconv.Itoa(rating), Label: models.RatingText(rating)}
	}
	for _, comment := range comments {
		if comment.Rating >= 1 && comment.Rating <= 5 {
			buckets[comment.Rating-1].Count++
		}
	}
	return buckets
}

// AverageRatings computes per-employee average ratings (rounded to the
// nearest star) from raw feedback, used by the provider directory
func AverageRatings(comments []models.Comment) map[int]int {
	sums := make(map[int]int)
	counts := make(map[int]int)
	for _, comment := range comments {
		if comment.EmpID == 0 {
			continue
		}
		sums[comment.EmpID] += comment.Rating
		counts[comment.EmpID]++
	}

	averages := make(map[int]int, len(sums))
	for id, sum := range sums {
		avg := (float64(sum)/float64(counts[id])) + 0.5
		averages[id] = int(avg)
	}
	return averages
}

// SummarizeOrders derives the totals block for an order-based tab
func SummarizeOrders(orders []models.ServiceOrder, series []Bucket) Summary {
	summary := Summary{}
	if len(orders) == 0 {
		return summary
	}

	unique := make(map[int]bool)
	for _, order := range orders {
		summary.TotalAmount += order.Amount
		if order.UserID != 0 {
			unique[order.UserID] = true
		}
	}
	summary.TotalRecords = len(orders)
	summary.UniqueCustomers = len(unique)
	summary.AverageAmount = summary.TotalAmount / float64(len(orders))
	summary.GrowthRate = latestGrowth(series)
	return summary
}

// SummarizePayments derives the totals block for the payments tab
func SummarizePayments(payments []models.Payment, series []Bucket) Summary {
	summary := Summary{}
	if len(payments) == 0 {
		return summary
	}

	for _, payment := range payments {
		summary.TotalAmount += payment.Amount
	}
	summary.TotalRecords = len(payments)
	summary.AverageAmount = summary.TotalAmount / float64(len(payments))
	summary.GrowthRate = latestGrowth(series)
	return summary
}

// SummarizeComments derives the totals block for the feedback tab
func SummarizeComments(comments []models.Comment) Summary {
	summary := Summary{}
	if len(comments) == 0 {
		return summary
	}

	total := 0
	for _, comment := range comments {
		total += comment.Rating
	}
	summary.TotalRecords = len(comments)
	summary.AverageRating = float64(total) / float64(len(comments))
	return summary
}

func latestGrowth(series []Bucket) float64 {
	if len(series) == 0 {
		return 0
	}
	return series[len(series)-1].GrowthRate
}

// ReportService assembles per-tab reports from upstream data
type ReportService struct {
	api HomeCareAPI
}

// NewReportService builds a report service over the upstream client
func NewReportService(api HomeCareAPI) *ReportService {
	return &ReportService{api: api}
}

// Build assembles the report for one tab. Unknown tabs return nil, nil so the
// controller can 404.
func (s *ReportService) Build(tab, token string, query ReportQuery) (*Report, error) {
	switch tab {
	case TabUsage:
		return s.usage(token, query)
	case TabProviders:
		return s.providers(token, query)
	case TabPayments:
		return s.payments(token, query)
	case TabFeedback:
		return s.feedback(token, query)
	case TabHistory:
		return s.history(token, query)
	default:
		return nil, nil
	}
}

func (s *ReportService) usage(token string, query ReportQuery) (*Report, error) {
	raw, err := s.api.FetchServiceOrders(token, query)
	if err != nil {
		return nil, err
	}
	orders := MapServiceOrders(raw)
	series := GroupOrdersByMonth(orders)
	return &Report{
		Tab:     TabUsage,
		Records: orders,
		Series:  series,
		Groups:  GroupOrdersByCategory(orders),
		Summary: SummarizeOrders(orders, series),
	}, nil
}

func (s *ReportService) providers(token string, query ReportQuery) (*Report, error) {
	employees, err := s.api.ListEmployees(token, query)
	if err != nil {
		return nil, err
	}
	groups := GroupEmployeesByCategory(employees)

	summary := Summary{TotalRecords: len(employees)}
	return &Report{
		Tab:     TabProviders,
		Records: employees,
		Series:  groups,
		Summary: summary,
	}, nil
}

func (s *ReportService) payments(token string, query ReportQuery) (*Report, error) {
	raw, err := s.api.FetchPayments(token, query)
	if err != nil {
		return nil, err
	}
	payments := MapPayments(raw)
	series := GroupPaymentsByMonth(payments)
	return &Report{
		Tab:     TabPayments,
		Records: payments,
		Series:  series,
		Groups:  GroupPaymentsByStatus(payments),
		Summary: SummarizePayments(payments, series),
	}, nil
}

func (s *ReportService) feedback(token string, query ReportQuery) (*Report, error) {
	raw, err := s.api.FetchComments(token, query)
	if err != nil {
		return nil, err
	}
	comments := MapComments(raw)
	return &Report{
		Tab:     TabFeedback,
		Records: comments,
		Series:  GroupCommentsByRating(comments),
		Summary: SummarizeComments(comments),
	}, nil
}

func (s *ReportService) history(token string, query ReportQuery) (*Report, error) {
	raw, err := s.api.FetchCarHistory(token, query)
	if err != nil {
		return nil, err
	}
	orders := MapServiceOrders(raw)
	series := GroupOrdersByMonth(orders)
	return &Report{
		Tab:     TabHistory,
		Records: orders,
		Series:  series,
		Summary: SummarizeOrders(orders, series),
	}, nil
}
