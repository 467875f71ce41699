package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/iamnokia/AdminHC-sub000/config"
	"github.com/iamnokia/AdminHC-sub000/models"
)

// HomeCareAPI is the client surface for the upstream HomeCare REST API.
// Every dashboard screen goes through this one client; there is no local
// copy of any upstream entity beyond the lifetime of a request.
type HomeCareAPI interface {
	Login(email, password string) (*LoginResult, error)
	FetchProfile(accessToken string) (*Profile, error)

	ListEmployees(token string, query ReportQuery) ([]models.Employee, error)
	GetEmployee(token string, id int) (*models.Employee, error)
	CreateEmployee(token string, payload EmployeePayload) error
	UpdateEmployee(token string, id int, payload EmployeePayload) error
	UpdateEmployeeStatus(token string, id int, status string) error
	DeleteEmployee(token string, id int) error

	ListCars(token string) ([]models.Car, error)
	CreateCar(token string, payload CarPayload) error
	UpdateCar(token string, id int, payload CarPayload) error

	ListCategories(token string) ([]models.Category, error)

	FetchServiceOrders(token string, query ReportQuery) ([]models.RawServiceOrder, error)
	FetchPayments(token string, query ReportQuery) ([]models.RawPayment, error)
	FetchComments(token string, query ReportQuery) ([]models.RawComment, error)
	FetchCarHistory(token string, query ReportQuery) ([]models.RawServiceOrder, error)
}

// LoginResult is the token pair the upstream login endpoint returns
type LoginResult struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Profile is the logged-in admin's profile from the upstream
type Profile struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Avatar    string `json:"avatar"`
}

// ReportQuery carries the filter set every list endpoint accepts. Zero values
// are omitted from the query string.
type ReportQuery struct {
	Page      int
	Limit     int
	StartDate string
	EndDate   string
	CatID     int
	Status    string
}

// Values renders the query as upstream query parameters
func (q ReportQuery) Values() url.Values {
	values := url.Values{}
	if q.Page > 0 {
		values.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.StartDate != "" {
		values.Set("startDate", q.StartDate)
	}
	if q.EndDate != "" {
		values.Set("endDate", q.EndDate)
	}
	if q.CatID > 0 {
		values.Set("catId", strconv.Itoa(q.CatID))
	}
	if q.Status != "" {
		values.Set("status", q.Status)
	}
	return values
}

// EmployeePayload is the create/update body for a provider
type EmployeePayload struct {
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     string  `json:"email"`
	Tel       string  `json:"tel"`
	Address   string  `json:"address"`
	City      string  `json:"city"`
	Gender    string  `json:"gender"`
	CatID     int     `json:"cat_id"`
	Price     float64 `json:"price"`
	Status    string  `json:"status,omitempty"`
	Avatar    string  `json:"avatar,omitempty"`
}

// CarPayload is the create/update body for a provider's vehicle
type CarPayload struct {
	EmpID        int    `json:"emp_id"`
	Brand        string `json:"car_brand"`
	Model        string `json:"model"`
	LicensePlate string `json:"license_plate"`
	Image        string `json:"car_image,omitempty"`
}

// HomeCareService talks to the upstream HomeCare REST API
type HomeCareService struct {
	baseURL    string
	httpClient *http.Client
}

var homeCareInstance HomeCareAPI

// InitHomeCareService builds the upstream client from configuration
func InitHomeCareService(cfg *config.Config) HomeCareAPI {
	homeCareInstance = &HomeCareService{
		baseURL: cfg.UpstreamBaseURL,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.UpstreamTimeoutSec) * time.Second,
		},
	}
	return homeCareInstance
}

// GetHomeCareService returns the initialized upstream client
func GetHomeCareService() HomeCareAPI {
	return homeCareInstance
}

// SetHomeCareService replaces the upstream client (primarily for testing)
func SetHomeCareService(service HomeCareAPI) {
	homeCareInstance = service
}

// get performs an authenticated GET and returns the raw body
func (s *HomeCareService) get(path, token string, values url.Values) ([]byte, error) {
	endpoint := s.baseURL + path
	if len(values) > 0 {
		endpoint += "?" + values.Encode()
	}

	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return s.do(req)
}

// sendJSON performs an authenticated request with a JSON body
func (s *HomeCareService) sendJSON(method, path, token string, payload any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request body: %w", err)
	}

	req, err := http.NewRequest(method, s.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return s.do(req)
}

func (s *HomeCareService) do(req *http.Request) ([]byte, error) {
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, classifyTransportError(err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			_ = closeErr
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newUpstreamError(ErrKindNetwork, resp.StatusCode)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, classifyStatus(resp.StatusCode)
	}

	return body, nil
}

// Login posts credentials to the upstream login endpoint
func (s *HomeCareService) Login(email, password string) (*LoginResult, error) {
	body, err := s.sendJSON(http.MethodPost, "/auth/login", "", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, err
	}

	var result LoginResult
	if err := DecodeRecord(body, "tokens", &result); err != nil {
		return nil, err
	}
	if result.AccessToken == "" {
		return nil, newUpstreamError(ErrKindBadShape, 0)
	}
	return &result, nil
}

// FetchProfile reads the logged-in admin's profile
func (s *HomeCareService) FetchProfile(accessToken string) (*Profile, error) {
	body, err := s.get("/auth/profile", accessToken, nil)
	if err != nil {
		return nil, err
	}

	var profile Profile
	if err := DecodeRecord(body, "user", &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// ListEmployees reads the provider list with optional filters
func (s *HomeCareService) ListEmployees(token string, query ReportQuery) ([]models.Employee, error) {
	body, err := s.get("/employees/read_employees", token, query.Values())
	if err != nil {
		return nil, err
	}

	records, err := DecodeRecordList(body, "employees")
	if err != nil {
		return nil, err
	}

	employees := DecodeInto[models.Employee](records)
	for i := range employees {
		employees[i].Normalize()
	}
	return employees, nil
}

// GetEmployee reads a single provider by id
func (s *HomeCareService) GetEmployee(token string, id int) (*models.Employee, error) {
	body, err := s.get("/employees/read_employees", token, url.Values{"id": {strconv.Itoa(id)}})
	if err != nil {
		return nil, err
	}

	var employee models.Employee
	if err := DecodeRecord(body, "employees", &employee); err != nil {
		return nil, err
	}
	if employee.ID == 0 {
		return nil, newUpstreamError(ErrKindNotFound, http.StatusNotFound)
	}
	employee.Normalize()
	return &employee, nil
}

// CreateEmployee registers a new provider
func (s *HomeCareService) CreateEmployee(token string, payload EmployeePayload) error {
	_, err := s.sendJSON(http.MethodPost, "/employees/create_employees", token, payload)
	return err
}

// UpdateEmployee updates a provider's editable fields
func (s *HomeCareService) UpdateEmployee(token string, id int, payload EmployeePayload) error {
	_, err := s.sendJSON(http.MethodPut, fmt.Sprintf("/employees/update_employees/%d", id), token, payload)
	return err
}

// UpdateEmployeeStatus flips the availability switch upstream
func (s *HomeCareService) UpdateEmployeeStatus(token string, id int, status string) error {
	_, err := s.sendJSON(http.MethodPut, fmt.Sprintf("/employees/update_employees/%d", id), token, map[string]string{
		"status": status,
	})
	return err
}

// DeleteEmployee removes a provider
func (s *HomeCareService) DeleteEmployee(token string, id int) error {
	req, err := http.NewRequest(http.MethodDelete, fmt.Sprintf("%s/employees/delete_employees/%d", s.baseURL, id), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	_, err = s.do(req)
	return err
}

// ListCars reads every registered vehicle
func (s *HomeCareService) ListCars(token string) ([]models.Car, error) {
	body, err := s.get("/emp_car/read_emp_car", token, nil)
	if err != nil {
		return nil, err
	}

	records, err := DecodeRecordList(body, "emp_car")
	if err != nil {
		return nil, err
	}
	return DecodeInto[models.Car](records), nil
}

// CreateCar registers a vehicle for a Moving-category provider
func (s *HomeCareService) CreateCar(token string, payload CarPayload) error {
	_, err := s.sendJSON(http.MethodPost, "/emp_car/create_emp_car", token, payload)
	return err
}

// UpdateCar updates an existing vehicle record
func (s *HomeCareService) UpdateCar(token string, id int, payload CarPayload) error {
	_, err := s.sendJSON(http.MethodPut, fmt.Sprintf("/emp_car/update_emp_car/%d", id), token, payload)
	return err
}

// ListCategories reads the static category set
func (s *HomeCareService) ListCategories(token string) ([]models.Category, error) {
	body, err := s.get("/categories/read_categories", token, nil)
	if err != nil {
		return nil, err
	}

	records, err := DecodeRecordList(body, "categories")
	if err != nil {
		return nil, err
	}
	return DecodeInto[models.Category](records), nil
}

// FetchServiceOrders reads raw service orders for the usage/history reports
func (s *HomeCareService) FetchServiceOrders(token string, query ReportQuery) ([]models.RawServiceOrder, error) {
	body, err := s.get("/reports/service_orders", token, query.Values())
	if err != nil {
		return nil, err
	}

	records, err := DecodeRecordList(body, "service_orders")
	if err != nil {
		return nil, err
	}
	return DecodeInto[models.RawServiceOrder](records), nil
}

// FetchPayments reads raw payments for the payments report
func (s *HomeCareService) FetchPayments(token string, query ReportQuery) ([]models.RawPayment, error) {
	body, err := s.get("/reports/payments", token, query.Values())
	if err != nil {
		return nil, err
	}

	records, err := DecodeRecordList(body, "payments")
	if err != nil {
		return nil, err
	}
	return DecodeInto[models.RawPayment](records), nil
}

// FetchComments reads raw feedback entries for the feedback report
func (s *HomeCareService) FetchComments(token string, query ReportQuery) ([]models.RawComment, error) {
	body, err := s.get("/reports/comments", token, query.Values())
	if err != nil {
		return nil, err
	}

	records, err := DecodeRecordList(body, "comments")
	if err != nil {
		return nil, err
	}
	return DecodeInto[models.RawComment](records), nil
}

// FetchCarHistory reads the moving-service usage history
func (s *HomeCareService) FetchCarHistory(token string, query ReportQuery) ([]models.RawServiceOrder, error) {
	body, err := s.get("/reports/emp_cars_history", token, query.Values())
	if err != nil {
		return nil, err
	}

	records, err := DecodeRecordList(body, "emp_cars_history")
	if err != nil {
		return nil, err
	}
	return DecodeInto[models.RawServiceOrder](records), nil
}
