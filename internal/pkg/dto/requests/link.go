package requests

type CreateLink struct {
	Title string `json:"title" validate:"required,min=1,max=200"`
	URL   string `json:"url" validate:"required,url"`
}

type UpdateLink struct {
	Title string `json:"title" validate:"omitempty,min=1,max=200"`
	URL   string `json:"url" validate:"omitempty,url"`
}
