package pricing

// TicketAdjustmentRequest changes one category counter by one step
type TicketAdjustmentRequest struct {
	Category string `json:"category" binding:"required,oneof=adult child senior"`
	Op       string `json:"op" binding:"required,oneof=increment decrement"`
}
