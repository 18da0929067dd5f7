package dto

import "time"

// CreateActivityRequest body para POST /api/activities.
type CreateActivityRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Type        string     `json:"type,omitempty"`     // AGRICOLA, AGROPECUARIA, GERAL
	Priority    string     `json:"priority,omitempty"` // ALTA, MEDIA, BAIXA
	Deadline    *time.Time `json:"deadline,omitempty"`
	Responsible string     `json:"responsible"`
}

// AssignActivityRequest body para PUT /api/activities/:id/assign.
type AssignActivityRequest struct {
	WorkerName  string `json:"worker_name"`
	Responsible string `json:"responsible"`
}

// ChangeActivityStatusRequest body para PUT /api/activities/:id/status.
type ChangeActivityStatusRequest struct {
	Status             string `json:"status"`
	ProblemDescription string `json:"problem_description,omitempty"` // obrigatório para com_problemas
	Responsible        string `json:"responsible"`
}

// ActivityResponse atividade em respostas.
type ActivityResponse struct {
	ID                 string     `json:"id"`
	Title              string     `json:"title"`
	Description        string     `json:"description,omitempty"`
	Type               string     `json:"type"`
	Priority           string     `json:"priority"`
	Status             string     `json:"status"`
	WorkerName         string     `json:"worker_name,omitempty"`
	ProblemDescription string     `json:"problem_description,omitempty"`
	Deadline           *time.Time `json:"deadline,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// ActivityLogResponse entrada do log de auditoria.
type ActivityLogResponse struct {
	ID          string    `json:"id"`
	Action      string    `json:"action"`
	Message     string    `json:"message"`
	Responsible string    `json:"responsible"`
	CreatedAt   time.Time `json:"created_at"`
}
