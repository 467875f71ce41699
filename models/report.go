package models

import (
	"fmt"
	"time"
)

// Raw report records as the upstream API returns them. Field names are not
// consistent across endpoints (amount vs total, order_date vs created_at), so
// each raw shape carries every observed alias and the mapping layer coalesces.

// RawServiceOrder is a service order row from /reports/service_orders
type RawServiceOrder struct {
	ID            int     `json:"id"`
	EmpID         int     `json:"emp_id"`
	CatID         int     `json:"cat_id"`
	UserID        int     `json:"user_id"`
	Amount        float64 `json:"amount"`
	Total         float64 `json:"total"`
	PaymentStatus string  `json:"payment_status"`
	Status        string  `json:"status"`
	OrderDate     string  `json:"order_date"`
	CreatedAt     string  `json:"created_at"`
}

// RawPayment is a payment row from /reports/payments
type RawPayment struct {
	ID            int     `json:"id"`
	CatID         int     `json:"cat_id"`
	Amount        float64 `json:"amount"`
	Total         float64 `json:"total"`
	PaymentStatus string  `json:"payment_status"`
	Status        string  `json:"status"`
	PaidAt        string  `json:"paid_at"`
	CreatedAt     string  `json:"created_at"`
}

// RawComment is a feedback row from /reports/comments
type RawComment struct {
	ID        int    `json:"id"`
	EmpID     int    `json:"emp_id"`
	UserID    int    `json:"user_id"`
	UserName  string `json:"user_name"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}

// ServiceOrder is the normalized, display-ready order shape
type ServiceOrder struct {
	ID          int       `json:"id"`
	EmpID       int       `json:"emp_id"`
	CatID       int       `json:"cat_id"`
	CatLabel    string    `json:"cat_label"`
	UserID      int       `json:"user_id"`
	Amount      float64   `json:"amount"`
	Status      string    `json:"status"`
	StatusColor string    `json:"status_color"`
	Date        time.Time `json:"-"`
	DateLabel   string    `json:"date_label"`
}

// Payment is the normalized payment shape. DisplayID is synthesized because
// the upstream omits a human-readable payment reference.
type Payment struct {
	ID          int       `json:"id"`
	DisplayID   string    `json:"display_id"`
	CatID       int       `json:"cat_id"`
	CatLabel    string    `json:"cat_label"`
	Amount      float64   `json:"amount"`
	Status      string    `json:"status"`
	StatusColor string    `json:"status_color"`
	Date        time.Time `json:"-"`
	DateLabel   string    `json:"date_label"`
}

// Comment is the normalized feedback shape
type Comment struct {
	ID         int       `json:"id"`
	EmpID      int       `json:"emp_id"`
	UserID     int       `json:"user_id"`
	UserName   string    `json:"user_name"`
	Rating     int       `json:"rating"`
	RatingText string    `json:"rating_text"`
	Comment    string    `json:"comment"`
	Date       time.Time `json:"-"`
	DateLabel  string    `json:"date_label"`
}

// Payment status values observed upstream
const (
	PaymentPaid    = "paid"
	PaymentPending = "pending"
	PaymentFailed  = "failed"
)

// StatusColor maps a status value to the chip color the dashboard shows
func StatusColor(status string) string {
	switch status {
	case PaymentPaid, StatusActive, "completed":
		return "green"
	case PaymentPending, "in_progress":
		return "orange"
	case PaymentFailed, StatusInactive, "cancelled":
		return "red"
	default:
		return "grey"
	}
}

var ratingTexts = map[int]string{
	1: "ຕ້ອງປັບປຸງຫຼາຍ",
	2: "ຕ້ອງປັບປຸງ",
	3: "ພໍໃຊ້",
	4: "ດີ",
	5: "ດີຫຼາຍ",
}

// RatingText translates a 1-5 star rating to its Lao label
func RatingText(rating int) string {
	if text, ok := ratingTexts[rating]; ok {
		return text
	}
	return ratingTexts[DefaultRating]
}

var laoMonths = [12]string{
	"ມັງກອນ", "ກຸມພາ", "ມີນາ", "ເມສາ", "ພຶດສະພາ", "ມິຖຸນາ",
	"ກໍລະກົດ", "ສິງຫາ", "ກັນຍາ", "ຕຸລາ", "ພະຈິກ", "ທັນວາ",
}

// MonthLabel renders a Lao month label, e.g. "ມັງກອນ 2023"
func MonthLabel(t time.Time) string {
	return fmt.Sprintf("%s %d", laoMonths[t.Month()-1], t.Year())
}

// MonthKey is a sortable year-month bucket key, e.g. "2023-01"
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

// dateFormats are the timestamp shapes the upstream has been seen to emit
var dateFormats = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDate parses an upstream timestamp, returning the zero time when the
// value is absent or in none of the known formats. Callers must treat the
// zero time as "no date" and skip month bucketing for the record.
func ParseDate(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}
