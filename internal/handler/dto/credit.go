package dto

// AddCreditsRequest tops up the caller's balance.
type AddCreditsRequest struct {
	Amount int `json:"amount"`
}

// CreditResponse reports the caller's balance.
type CreditResponse struct {
	UserID  string `json:"userId"`
	Credits int    `json:"credits"`
}
