package testimonial

type SubmitRequest struct {
	AuthorName string `json:"author_name" binding:"required,min=2,max=100"`
	Email      string `json:"email" binding:"omitempty,email"`
	Rating     int    `json:"rating" binding:"required,min=1,max=5"`
	Message    string `json:"message" binding:"required,min=10,max=2000"`
}

type ModerateRequest struct {
	Status string `json:"status" binding:"required,oneof=approved rejected"`
}
