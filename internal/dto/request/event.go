package request

type CreateEventRequest struct {
	EventName string  `json:"eventName" validate:"required,min=1,max=100"`
	Price     float64 `json:"price" validate:"gte=0"`
	Capacity  int     `json:"capacity" validate:"gte=0"`
}
