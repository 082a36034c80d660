package models

// CategoryTotal is an aggregated spending figure for one category. Analytics
// are computed on the client over decrypted records; the server never sees
// category labels in plaintext.
type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
	Count    int     `json:"count"`
}

// MonthlyTotal is an aggregated spending figure for one calendar month,
// keyed as "2006-01".
type MonthlyTotal struct {
	Month string  `json:"month"`
	Total float64 `json:"total"`
}
