package models

// Customer : Customer Model
type Customer struct {
	ID       string `json:"id" bun:"id,pk"`
	Name     string `json:"name" bun:",notnull"`
	Email    string `json:"email" bun:",notnull"`
	ImageUrl string `json:"image_url" bun:",nullzero"`
}
