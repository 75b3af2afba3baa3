package models

// Settings is the persistence model for a user's label sets. The two lists
// are stored as JSONB in pgsql and plain arrays in the JSON file store.
type Settings struct {
	UserID         string   `db:"user_id" json:"userID"`
	PaymentMethods []string `db:"payment_methods" json:"paymentMethods"`
	Categories     []string `db:"categories" json:"categories"`
	AuditFields
}
