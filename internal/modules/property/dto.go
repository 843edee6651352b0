package property

type CreateRequest struct {
	Title       string   `json:"title" binding:"required"`
	Slug        string   `json:"slug"`
	Description string   `json:"description"`
	City        string   `json:"city" binding:"required"`
	Address     string   `json:"address"`
	Price       float64  `json:"price" binding:"required,gt=0"`
	Currency    string   `json:"currency"`
	Surface     float64  `json:"surface"`
	Rooms       int      `json:"rooms"`
	Photos      []string `json:"photos"`
}

type UpdateRequest struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	City        *string  `json:"city,omitempty"`
	Address     *string  `json:"address,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Surface     *float64 `json:"surface,omitempty"`
	Rooms       *int     `json:"rooms,omitempty"`
	Status      *string  `json:"status,omitempty"`
	Photos      []string `json:"photos,omitempty"`
}
