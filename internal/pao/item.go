package pao

// CustomItem is a user-defined person, action or object bound to a number.
type CustomItem struct {
	ID       string `json:"id"`
	Number   int    `json:"number"`
	Title    string `json:"title"`
	ImageURL string `json:"imageUrl"`
	Type     Kind   `json:"type"`
}
