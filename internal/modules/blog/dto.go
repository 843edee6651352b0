package blog

type CreateRequest struct {
	Title    string `json:"title" binding:"required"`
	Slug     string `json:"slug"`
	Excerpt  string `json:"excerpt"`
	Body     string `json:"body" binding:"required"`
	CoverURL string `json:"cover_url"`
}

type UpdateRequest struct {
	Title    *string `json:"title,omitempty"`
	Excerpt  *string `json:"excerpt,omitempty"`
	Body     *string `json:"body,omitempty"`
	CoverURL *string `json:"cover_url,omitempty"`
}
