package domain

// InvestmentsCategory is excluded from headline spending totals but still
// participates in category breakdowns.
const InvestmentsCategory = "Investments"

// Settings holds the user's ordered label sets for payment methods and
// categories. Labels are user-extensible and never auto-pruned, even when a
// label no longer matches any historical record.
type Settings struct {
	UserID         string   `json:"userID"`
	PaymentMethods []string `json:"paymentMethods"`
	Categories     []string `json:"categories"`
	AuditFields
}

// DefaultPaymentMethods seeds new accounts.
var DefaultPaymentMethods = []string{
	"Cash",
	"Credit Card",
	"Debit Card",
	"Bank Transfer",
	"Mercado Pago",
	"Wise",
}

// DefaultCategories seeds new accounts. Includes InvestmentsCategory.
var DefaultCategories = []string{
	"Rent & Bills",
	"Groceries",
	"Dining Out",
	"Transport",
	"Clothing",
	"Gifts",
	"Health",
	"Education",
	"Home",
	"Travel",
	InvestmentsCategory,
	"Other",
}

// DefaultSettings returns a Settings value seeded with the default label sets
// for the given user. The slices are copied so callers can mutate freely.
func DefaultSettings(userID string) Settings {
	return Settings{
		UserID:         userID,
		PaymentMethods: append([]string(nil), DefaultPaymentMethods...),
		Categories:     append([]string(nil), DefaultCategories...),
	}
}
