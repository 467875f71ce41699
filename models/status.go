package models

// Service-status tracker types. The tracker shows a fixed three-step pipeline
// per open request: arrived (1), in progress (2), completed (3). Step 0 means
// the request has not started.

const (
	StepNone       = 0
	StepArrived    = 1
	StepInProgress = 2
	StepCompleted  = 3
)

// PipelineSteps is the fixed step set in display order
var PipelineSteps = []PipelineStep{
	{ID: StepArrived, Label: "ພະນັກງານມາຮອດແລ້ວ"},
	{ID: StepInProgress, Label: "ກຳລັງດຳເນີນການ"},
	{ID: StepCompleted, Label: "ສຳເລັດແລ້ວ"},
}

// PipelineStep is one stage of the tracker pipeline
type PipelineStep struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
}

// ServiceRequest is an open service request shown on the tracker board
type ServiceRequest struct {
	ID           int    `json:"id"`
	CustomerName string `json:"customer_name"`
	CatID        int    `json:"cat_id"`
	CatLabel     string `json:"cat_label"`
	Address      string `json:"address"`
	CurrentStep  int    `json:"current_step"` // 0..3, settable to any value
	StaffID      int    `json:"staff_id"`
	StaffName    string `json:"staff_name"`
}

// Staff is an availability card on the tracker board
type Staff struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	CatID     int    `json:"cat_id"`
	CatLabel  string `json:"cat_label"`
	Available bool   `json:"available"`
	Avatar    string `json:"avatar"`
}

// CompletedSteps derives the finished step ids: everything strictly below the
// current step. The pipeline is not forced to advance sequentially.
func (r *ServiceRequest) CompletedSteps() []int {
	done := make([]int, 0, 3)
	for _, step := range PipelineSteps {
		if step.ID < r.CurrentStep {
			done = append(done, step.ID)
		}
	}
	return done
}

// ValidStep reports whether a step value is inside the tracker's range
func ValidStep(step int) bool {
	return step >= StepNone && step <= StepCompleted
}
