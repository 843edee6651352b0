package crm

type CreateClientRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Email       string `json:"email" binding:"omitempty,email"`
	Phone       string `json:"phone" binding:"omitempty,max=30"`
	CountryISO2 string `json:"country_iso2" binding:"omitempty,len=2"`
	Notes       string `json:"notes" binding:"omitempty,max=5000"`
	AssignedTo  int64  `json:"assigned_to" binding:"omitempty,min=1"`
	LeadID      *int64 `json:"lead_id" binding:"omitempty,min=1"`
}

type UpdateClientRequest struct {
	Name       *string `json:"name" binding:"omitempty,min=2,max=100"`
	Email      *string `json:"email" binding:"omitempty,email"`
	Phone      *string `json:"phone" binding:"omitempty,max=30"`
	Notes      *string `json:"notes" binding:"omitempty,max=5000"`
	AssignedTo *int64  `json:"assigned_to" binding:"omitempty,min=1"`
}

type CreateTaskRequest struct {
	Title      string `json:"title" binding:"required,min=2,max=200"`
	Details    string `json:"details" binding:"omitempty,max=5000"`
	ClientID   *int64 `json:"client_id" binding:"omitempty,min=1"`
	AssignedTo int64  `json:"assigned_to" binding:"omitempty,min=1"`
	DueAt      string `json:"due_at" binding:"required"`
}

type UpdateTaskStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=open done"`
}
