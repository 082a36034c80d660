package models

// Expense is an expense row as it travels over the wire and rests in the
// database. Amount, Category and Notes are each an independently encrypted
// opaque string (base64 of nonce‖ciphertext); the server never sees their
// plaintext. Date and identifiers stay plaintext because the server filters
// by them.
type Expense struct {
	// ID is the server-assigned row identifier. Zero for rows that have not
	// been persisted yet (e.g. inside a replace-for-date upload).
	ID int64 `json:"id,omitempty"`

	// UserID is the owning user. Assigned at creation, immutable afterwards,
	// never serialized — the authenticated identity of the request is the
	// only source of truth for it.
	UserID int64 `json:"-"`

	// Date is the calendar day the expense belongs to.
	Date Date `json:"expense_date"`

	// Amount is the ciphertext of the amount's canonical decimal string.
	Amount string `json:"amount"`

	// Category is the ciphertext of the category label.
	Category string `json:"category"`

	// Notes is the ciphertext of the free-form notes.
	Notes string `json:"notes"`
}

// TableName returns the name of the database table
// associated with the Expense model.
func (e Expense) TableName() string {
	return "expenses"
}

// ExpenseRecord is the client-side plaintext form of an [Expense]. It exists
// only inside an authenticated client session; the codec converts between
// the two representations.
type ExpenseRecord struct {
	ID       int64   `json:"id,omitempty"`
	Date     Date    `json:"expense_date"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	Notes    string  `json:"notes"`
}
