package services

import (
	"github.com/iamnokia/AdminHC-sub000/models"
)

// Hardcoded demo records. When an operator hits an upstream failure the
// dashboard offers "use sample data" so every screen stays demonstrable
// offline; these are the records behind that affordance.

// SampleEmployees returns the demo provider set (one per common category,
// including a Moving provider with a vehicle)
func SampleEmployees() []models.Employee {
	employees := []models.Employee{
		{ID: 1, FirstName: "ສົມຈິດ", LastName: "ວົງສະຫວັນ", Email: "somchit@example.com", Tel: "+8562055512345", Address: "ບ້ານ ໂພນໄຊ", City: "ວຽງຈັນ", Gender: "male", CatID: 1, Price: 150000, Status: models.StatusActive},
		{ID: 2, FirstName: "ນາງ ຄຳຫຼ້າ", LastName: "ສີສຸວັນ", Email: "khamla@example.com", Tel: "+8562055523456", Address: "ບ້ານ ດົງໂດກ", City: "ວຽງຈັນ", Gender: "female", CatID: 2, Price: 200000, Status: models.StatusActive},
		{ID: 3, FirstName: "ບຸນມີ", LastName: "ພົມມະຈັນ", Email: "bounmy@example.com", Tel: "+8562055534567", Address: "ບ້ານ ຫາຍໂສກ", City: "ວຽງຈັນ", Gender: "male", CatID: 4, Price: 180000, Status: models.StatusInactive},
		{ID: 4, FirstName: "ສຸລິຍາ", LastName: "ແກ້ວມະນີ", Email: "souliya@example.com", Tel: "+8562055545678", Address: "ບ້ານ ສີໄຄ", City: "ວຽງຈັນ", Gender: "male", CatID: 5, Price: 350000, Status: models.StatusActive},
	}
	for i := range employees {
		employees[i].Normalize()
	}
	return models.AttachCars(employees, SampleCars())
}

// SampleCars returns the demo vehicle set
func SampleCars() []models.Car {
	return []models.Car{
		{ID: 1, EmpID: 4, Brand: "Hyundai", Model: "H-100", LicensePlate: "ກຂ 1234", Status: models.StatusActive},
	}
}

// SampleServiceOrders returns demo orders spread over two months so the
// usage chart has a visible growth rate
func SampleServiceOrders() []models.RawServiceOrder {
	return []models.RawServiceOrder{
		{ID: 101, EmpID: 1, CatID: 1, UserID: 11, Amount: 150000, PaymentStatus: models.PaymentPaid, OrderDate: "2023-01-09"},
		{ID: 102, EmpID: 2, CatID: 2, UserID: 12, Amount: 200000, PaymentStatus: models.PaymentPaid, OrderDate: "2023-01-21"},
		{ID: 103, EmpID: 1, CatID: 1, UserID: 11, Amount: 150000, PaymentStatus: models.PaymentPending, OrderDate: "2023-02-03"},
		{ID: 104, EmpID: 4, CatID: 5, UserID: 13, Amount: 350000, PaymentStatus: models.PaymentPaid, OrderDate: "2023-02-14"},
		{ID: 105, EmpID: 3, CatID: 4, UserID: 14, Amount: 180000, PaymentStatus: models.PaymentFailed, OrderDate: "2023-02-27"},
	}
}

// SamplePayments returns demo payments matching the sample orders
func SamplePayments() []models.RawPayment {
	return []models.RawPayment{
		{ID: 201, CatID: 1, Amount: 150000, PaymentStatus: models.PaymentPaid, PaidAt: "2023-01-10"},
		{ID: 202, CatID: 2, Amount: 200000, PaymentStatus: models.PaymentPaid, PaidAt: "2023-01-22"},
		{ID: 203, CatID: 5, Amount: 350000, PaymentStatus: models.PaymentPaid, PaidAt: "2023-02-15"},
		{ID: 204, CatID: 4, Amount: 180000, PaymentStatus: models.PaymentPending, PaidAt: "2023-02-28"},
	}
}

// SampleComments returns demo feedback entries
func SampleComments() []models.RawComment {
	return []models.RawComment{
		{ID: 301, EmpID: 1, UserID: 11, UserName: "ນາງ ມະນີວອນ", Rating: 5, Comment: "ບໍລິການດີຫຼາຍ", CreatedAt: "2023-02-01"},
		{ID: 302, EmpID: 2, UserID: 12, Rating: 4, Comment: "ມາຕົງເວລາ", CreatedAt: "2023-02-08"},
		{ID: 303, EmpID: 1, UserID: 14, UserName: "ທ້າວ ສົມພອນ", Rating: 3, CreatedAt: "2023-02-19"},
	}
}

// SampleReport assembles a full offline report for a tab, mirroring Build
func SampleReport(tab string) *Report {
	var report *Report
	switch tab {
	case TabUsage, TabHistory:
		orders := MapServiceOrders(SampleServiceOrders())
		series := GroupOrdersByMonth(orders)
		report = &Report{
			Tab:     tab,
			Records: orders,
			Series:  series,
			Groups:  GroupOrdersByCategory(orders),
			Summary: SummarizeOrders(orders, series),
		}
	case TabProviders:
		employees := SampleEmployees()
		report = &Report{
			Tab:     tab,
			Records: employees,
			Series:  GroupEmployeesByCategory(employees),
			Summary: Summary{TotalRecords: len(employees)},
		}
	case TabPayments:
		payments := MapPayments(SamplePayments())
		series := GroupPaymentsByMonth(payments)
		report = &Report{
			Tab:     tab,
			Records: payments,
			Series:  series,
			Groups:  GroupPaymentsByStatus(payments),
			Summary: SummarizePayments(payments, series),
		}
	case TabFeedback:
		comments := MapComments(SampleComments())
		report = &Report{
			Tab:     tab,
			Records: comments,
			Series:  GroupCommentsByRating(comments),
			Summary: SummarizeComments(comments),
		}
	default:
		return nil
	}
	report.Sample = true
	return report
}
