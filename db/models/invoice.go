package models

// Invoice : Invoice Model
//
// Amount is an integer count of minor currency units (cents).
// Date is assigned once at create time and never touched by an update.
type Invoice struct {
	ID         string    `json:"id" bun:"id,pk"`
	CustomerID string    `json:"customer_id" bun:"customer_id,notnull"`
	Customer   *Customer `json:"customer,omitempty" bun:"rel:belongs-to,join:customer_id=id"`
	Amount     int64     `json:"amount" bun:",notnull"`
	Status     string    `json:"status" bun:",notnull"`
	Date       string    `json:"date" bun:",notnull"`
}
