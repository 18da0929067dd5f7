package entity

import "time"

// Prioridades de atividade.
const (
	PriorityHigh   = "ALTA"
	PriorityMedium = "MEDIA"
	PriorityLow    = "BAIXA"
)

// Status do ciclo de vida de uma atividade.
const (
	ActivityStatusRegistered  = "registrada"
	ActivityStatusAssigned    = "atribuida"
	ActivityStatusInProgress  = "em_andamento"
	ActivityStatusDone        = "concluida"
	ActivityStatusCancelled   = "cancelada"
	ActivityStatusPending     = "pendente"
	ActivityStatusWithProblem = "com_problemas"
)

// Tipos de atividade.
const (
	ActivityTypeAgricultural = "AGRICOLA"
	ActivityTypeLivestock    = "AGROPECUARIA"
	ActivityTypeGeneral      = "GERAL"
)

// Activity representa uma atividade/tarefa da fazenda.
// Exclusão é sempre lógica (DeletedAt), preservando a trilha de auditoria.
type Activity struct {
	ID                 string
	Title              string
	Description        string
	Type               string
	Priority           string
	Status             string
	WorkerName         string
	ProblemDescription string
	Responsible        string // último usuário que alterou
	Deadline           *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
	DeletedAt          *time.Time
}

// Deleted informa se a atividade foi excluída logicamente.
func (a *Activity) Deleted() bool { return a.DeletedAt != nil }

// Ações registradas no log de atividades.
const (
	LogActionCreate       = "CRIACAO"
	LogActionAssign       = "ATRIBUICAO"
	LogActionStatusChange = "MUDANCA_STATUS"
	LogActionProblem      = "PROBLEMA"
	LogActionDelete       = "EXCLUSAO_LOGICA"
)

// ActivityLog registro de auditoria de uma atividade (append-only).
type ActivityLog struct {
	ID          string
	ActivityID  string
	Action      string
	Message     string
	Responsible string
	CreatedAt   time.Time
}
