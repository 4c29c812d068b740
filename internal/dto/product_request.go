package dto

type ProductRegistrationRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int64    `json:"price"`
	CategoryID  int64    `json:"categoryId"`
	ImageIDs    []*int64 `json:"imageIds"`
}

// ProductSearchFilter carries the keyset-scroll parameters: ProductID is the
// cursor, Direction selects the side of the cursor to read from.
type ProductSearchFilter struct {
	ProductID  int64  `query:"productId"`
	CategoryID *int64 `query:"categoryId"`
	Direction  string `query:"direction"`
	Keyword    string `query:"keyword"`
	Limit      int    `query:"limit"`
}
