package services

import (
	"fmt"
	"strconv"

	"github.com/iamnokia/AdminHC-sub000/models"
)

// CSV export headers, translated. The export always reflects the record set
// the operator is currently looking at; nothing is re-fetched.

var orderCSVHeader = []string{"ເລກທີ", "ວັນທີ", "ປະເພດບໍລິການ", "ລູກຄ້າ", "ຈຳນວນເງິນ", "ສະຖານະ"}
var employeeCSVHeader = []string{"ເລກທີ", "ຊື່", "ນາມສະກຸນ", "ປະເພດບໍລິການ", "ເມືອງ", "ລາຄາ", "ສະຖານະ"}
var paymentCSVHeader = []string{"ເລກອ້າງອີງ", "ວັນທີ", "ປະເພດບໍລິການ", "ຈຳນວນເງິນ", "ສະຖານະ"}
var commentCSVHeader = []string{"ເລກທີ", "ວັນທີ", "ລູກຄ້າ", "ຄະແນນ", "ຄຳເຫັນ"}

// ExportRows flattens a report's record set into a translated CSV header and
// one row per record. Every row has exactly as many fields as the header.
func ExportRows(report *Report) ([]string, [][]string) {
	switch records := report.Records.(type) {
	case []models.ServiceOrder:
		rows := make([][]string, 0, len(records))
		for _, r := range records {
			rows = append(rows, []string{
				strconv.Itoa(r.ID),
				r.DateLabel,
				r.CatLabel,
				strconv.Itoa(r.UserID),
				formatAmount(r.Amount),
				r.Status,
			})
		}
		return orderCSVHeader, rows
	case []models.Employee:
		rows := make([][]string, 0, len(records))
		for _, r := range records {
			rows = append(rows, []string{
				strconv.Itoa(r.ID),
				r.FirstName,
				r.LastName,
				models.CategoryLabel(r.CatID),
				r.City,
				formatAmount(r.Price),
				r.Status,
			})
		}
		return employeeCSVHeader, rows
	case []models.Payment:
		rows := make([][]string, 0, len(records))
		for _, r := range records {
			rows = append(rows, []string{
				r.DisplayID,
				r.DateLabel,
				r.CatLabel,
				formatAmount(r.Amount),
				r.Status,
			})
		}
		return paymentCSVHeader, rows
	case []models.Comment:
		rows := make([][]string, 0, len(records))
		for _, r := range records {
			rows = append(rows, []string{
				strconv.Itoa(r.ID),
				r.DateLabel,
				r.UserName,
				r.RatingText,
				r.Comment,
			})
		}
		return commentCSVHeader, rows
	default:
		return nil, nil
	}
}

func formatAmount(amount float64) string {
	return fmt.Sprintf("%.0f", amount)
}
