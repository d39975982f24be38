package models

// Product is a single catalog entry as the catalog source returns it. The
// source schema is not under our control, so every field is optional and kept
// as the decoded JSON value until it is rendered into a prompt. A nil field
// means the source omitted it or sent null.
type Product struct {
	Title       any `json:"title"`
	Description any `json:"description"`
	Price       any `json:"price"`
	Category    any `json:"category"`
}
