package services

import (
	"fmt"
	"sort"
	"sync"

	"github.com/iamnokia/AdminHC-sub000/models"
)

// StatusTracker holds the service-status board state. The tracker operates
// entirely in memory: step changes and staff assignments are not written
// upstream. Seed data keeps the board demonstrable from first launch.
type StatusTracker struct {
	mu       sync.RWMutex
	requests map[int]*models.ServiceRequest
	staff    map[int]*models.Staff
}

var statusTrackerInstance *StatusTracker

// InitStatusTracker creates the tracker with its seed board
func InitStatusTracker() *StatusTracker {
	statusTrackerInstance = NewStatusTracker()
	return statusTrackerInstance
}

// GetStatusTracker returns the tracker instance
func GetStatusTracker() *StatusTracker {
	return statusTrackerInstance
}

// SetStatusTracker replaces the tracker instance (primarily for testing)
func SetStatusTracker(t *StatusTracker) {
	statusTrackerInstance = t
}

// NewStatusTracker builds a tracker pre-populated with the demo board
func NewStatusTracker() *StatusTracker {
	t := &StatusTracker{
		requests: make(map[int]*models.ServiceRequest),
		staff:    make(map[int]*models.Staff),
	}

	seedRequests := []models.ServiceRequest{
		{ID: 1, CustomerName: "ນາງ ສຸກສະຫວັນ", CatID: 1, Address: "ບ້ານ ໂພນຕ້ອງ", CurrentStep: models.StepArrived, StaffID: 1, StaffName: "ສົມຈິດ"},
		{ID: 2, CustomerName: "ທ້າວ ບຸນທັນ", CatID: 4, Address: "ບ້ານ ຊຽງຍືນ", CurrentStep: models.StepInProgress, StaffID: 2, StaffName: "ບຸນມີ"},
		{ID: 3, CustomerName: "ນາງ ດາວັນ", CatID: 5, Address: "ບ້ານ ໜອງບອນ", CurrentStep: models.StepNone},
	}
	seedStaff := []models.Staff{
		{ID: 1, Name: "ສົມຈິດ", CatID: 1, Available: false},
		{ID: 2, Name: "ບຸນມີ", CatID: 4, Available: false},
		{ID: 3, Name: "ສຸລິຍາ", CatID: 5, Available: true},
		{ID: 4, Name: "ຄຳຫຼ້າ", CatID: 2, Available: true},
	}

	for i := range seedRequests {
		seedRequests[i].CatLabel = models.CategoryLabel(seedRequests[i].CatID)
		r := seedRequests[i]
		t.requests[r.ID] = &r
	}
	for i := range seedStaff {
		seedStaff[i].CatLabel = models.CategoryLabel(seedStaff[i].CatID)
		s := seedStaff[i]
		t.staff[s.ID] = &s
	}
	return t
}

// Requests returns the open service requests in id order
func (t *StatusTracker) Requests() []models.ServiceRequest {
	t.mu.RLock()
	defer t.mu.RUnlock()

	requests := make([]models.ServiceRequest, 0, len(t.requests))
	for _, r := range t.requests {
		requests = append(requests, *r)
	}
	sort.Slice(requests, func(i, j int) bool { return requests[i].ID < requests[j].ID })
	return requests
}

// Staff returns the availability cards in id order
func (t *StatusTracker) Staff() []models.Staff {
	t.mu.RLock()
	defer t.mu.RUnlock()

	staff := make([]models.Staff, 0, len(t.staff))
	for _, s := range t.staff {
		staff = append(staff, *s)
	}
	sort.Slice(staff, func(i, j int) bool { return staff[i].ID < staff[j].ID })
	return staff
}

// UpdateRequest sets a request's current step and optionally reassigns staff.
// The step may move to any value in range; the pipeline is not forced to be
// sequential. staffID 0 leaves the assignment unchanged.
func (t *StatusTracker) UpdateRequest(id, step, staffID int) (*models.ServiceRequest, error) {
	if !models.ValidStep(step) {
		return nil, fmt.Errorf("step must be between %d and %d", models.StepNone, models.StepCompleted)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	request, ok := t.requests[id]
	if !ok {
		return nil, fmt.Errorf("service request %d not found", id)
	}

	if staffID != 0 && staffID != request.StaffID {
		staff, ok := t.staff[staffID]
		if !ok {
			return nil, fmt.Errorf("staff %d not found", staffID)
		}
		if previous, ok := t.staff[request.StaffID]; ok {
			previous.Available = true
		}
		staff.Available = false
		request.StaffID = staff.ID
		request.StaffName = staff.Name
	}

	request.CurrentStep = step
	if step == models.StepCompleted {
		if assigned, ok := t.staff[request.StaffID]; ok {
			assigned.Available = true
		}
	}

	updated := *request
	return &updated, nil
}
