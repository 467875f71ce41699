package models

// Employee represents a registered service provider in the marketplace
type Employee struct {
	ID        int      `json:"id"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Email     string   `json:"email"`
	Tel       string   `json:"tel"`
	Address   string   `json:"address"`
	City      string   `json:"city"`
	Gender    string   `json:"gender"`
	CatID     int      `json:"cat_id"`
	CatName   string   `json:"cat_name"`
	Price     float64  `json:"price"`
	Status    string   `json:"status"` // active or inactive
	Avatar    string   `json:"avatar"`
	Rating    int      `json:"rating"` // average star rating, 1-5
	Car       *Car     `json:"car,omitempty"`
}

// Car represents a provider's vehicle. Only Moving-category providers have one.
type Car struct {
	ID           int    `json:"id"`
	EmpID        int    `json:"emp_id"`
	Brand        string `json:"car_brand"`
	Model        string `json:"model"`
	LicensePlate string `json:"license_plate"`
	Image        string `json:"car_image"`
	Status       string `json:"status"`
}

// Provider status values
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// DefaultRating is used for providers with no feedback yet
const DefaultRating = 5

// Normalize fills defaults for fields the upstream API may omit
func (e *Employee) Normalize() {
	if e.Status == "" {
		e.Status = StatusInactive
	}
	if e.CatName == "" {
		e.CatName = CategoryLabel(e.CatID)
	}
	if e.Rating < 1 || e.Rating > 5 {
		e.Rating = DefaultRating
	}
}

// AttachCars merges car records onto their owning employees. A car is attached
// only when the employee is in the Moving category and a record with a
// matching emp_id exists; every other employee keeps a nil Car.
func AttachCars(employees []Employee, cars []Car) []Employee {
	byOwner := make(map[int]Car, len(cars))
	for _, car := range cars {
		byOwner[car.EmpID] = car
	}

	for i := range employees {
		employees[i].Car = nil
		if !RequiresCar(employees[i].CatID) {
			continue
		}
		if car, ok := byOwner[employees[i].ID]; ok {
			matched := car
			employees[i].Car = &matched
		}
	}
	return employees
}

// ApplyRatings sets each employee's star rating from an externally supplied
// lookup of employee id -> average rating
func ApplyRatings(employees []Employee, ratings map[int]int) {
	for i := range employees {
		if r, ok := ratings[employees[i].ID]; ok && r >= 1 && r <= 5 {
			employees[i].Rating = r
		} else {
			employees[i].Rating = DefaultRating
		}
	}
}
