package services

import (
	"sync"

	"github.com/iamnokia/AdminHC-sub000/models"
)

// MockHomeCareService is a mock implementation of HomeCareAPI for testing.
// Fixtures are returned as-is; Err, when set, is returned by every call.
type MockHomeCareService struct {
	mu sync.Mutex

	Err error

	LoginResult *LoginResult
	Profile     *Profile

	Employees  []models.Employee
	Cars       []models.Car
	Categories []models.Category
	Orders     []models.RawServiceOrder
	Payments   []models.RawPayment
	Comments   []models.RawComment
	History    []models.RawServiceOrder

	// Recorded writes, for assertions
	CreatedEmployees []EmployeePayload
	UpdatedEmployees map[int]EmployeePayload
	StatusUpdates    map[int]string
	DeletedEmployees []int
	CreatedCars      []CarPayload
	UpdatedCars      map[int]CarPayload
}

// NewMockHomeCareService creates an empty mock
func NewMockHomeCareService() *MockHomeCareService {
	return &MockHomeCareService{
		UpdatedEmployees: make(map[int]EmployeePayload),
		StatusUpdates:    make(map[int]string),
		UpdatedCars:      make(map[int]CarPayload),
	}
}

// SetAsMockForTesting sets this mock as the global upstream client
func (m *MockHomeCareService) SetAsMockForTesting() {
	SetHomeCareService(m)
}

func (m *MockHomeCareService) Login(email, password string) (*LoginResult, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.LoginResult, nil
}

func (m *MockHomeCareService) FetchProfile(accessToken string) (*Profile, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Profile, nil
}

func (m *MockHomeCareService) ListEmployees(token string, query ReportQuery) ([]models.Employee, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]models.Employee, len(m.Employees))
	copy(out, m.Employees)
	return out, nil
}

func (m *MockHomeCareService) GetEmployee(token string, id int) (*models.Employee, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, e := range m.Employees {
		if e.ID == id {
			found := e
			return &found, nil
		}
	}
	return nil, newUpstreamError(ErrKindNotFound, 404)
}

func (m *MockHomeCareService) CreateEmployee(token string, payload EmployeePayload) error {
	if m.Err != nil {
		return m.Err
	}
	m.mu.Lock()
	m.CreatedEmployees = append(m.CreatedEmployees, payload)
	m.mu.Unlock()
	return nil
}

func (m *MockHomeCareService) UpdateEmployee(token string, id int, payload EmployeePayload) error {
	if m.Err != nil {
		return m.Err
	}
	m.mu.Lock()
	m.UpdatedEmployees[id] = payload
	m.mu.Unlock()
	return nil
}

func (m *MockHomeCareService) UpdateEmployeeStatus(token string, id int, status string) error {
	if m.Err != nil {
		return m.Err
	}
	m.mu.Lock()
	m.StatusUpdates[id] = status
	m.mu.Unlock()
	return nil
}

func (m *MockHomeCareService) DeleteEmployee(token string, id int) error {
	if m.Err != nil {
		return m.Err
	}
	m.mu.Lock()
	m.DeletedEmployees = append(m.DeletedEmployees, id)
	m.mu.Unlock()
	return nil
}

func (m *MockHomeCareService) ListCars(token string) ([]models.Car, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]models.Car, len(m.Cars))
	copy(out, m.Cars)
	return out, nil
}

func (m *MockHomeCareService) CreateCar(token string, payload CarPayload) error {
	if m.Err != nil {
		return m.Err
	}
	m.mu.Lock()
	m.CreatedCars = append(m.CreatedCars, payload)
	m.mu.Unlock()
	return nil
}

func (m *MockHomeCareService) UpdateCar(token string, id int, payload CarPayload) error {
	if m.Err != nil {
		return m.Err
	}
	m.mu.Lock()
	m.UpdatedCars[id] = payload
	m.mu.Unlock()
	return nil
}

func (m *MockHomeCareService) ListCategories(token string) ([]models.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Categories, nil
}

func (m *MockHomeCareService) FetchServiceOrders(token string, query ReportQuery) ([]models.RawServiceOrder, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Orders, nil
}

func (m *MockHomeCareService) FetchPayments(token string, query ReportQuery) ([]models.RawPayment, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Payments, nil
}

func (m *MockHomeCareService) FetchComments(token string, query ReportQuery) ([]models.RawComment, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Comments, nil
}

func (m *MockHomeCareService) FetchCarHistory(token string, query ReportQuery) ([]models.RawServiceOrder, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.History, nil
}
