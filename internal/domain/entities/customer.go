package entities

// Customer is a registered client of the shop.
//
// JSON field names follow the legacy OS PRO dataset so exported backups
// stay loadable across versions.
type Customer struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Document string `json:"document"`
}
