package requests

type CreateOperatingHour struct {
	DayOfWeek *int   `json:"day_of_week" validate:"required,gte=0,lte=6"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
	Active    *bool  `json:"active"`
}

type UpdateOperatingHour struct {
	DayOfWeek *int   `json:"day_of_week" validate:"required,gte=0,lte=6"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
	Active    bool   `json:"active"`
}

type CreateDateException struct {
	Date              string `json:"date" validate:"required,datetime=2006-01-02"`
	IsAvailable       bool   `json:"is_available"`
	StartTime         string `json:"start_time"`
	EndTime           string `json:"end_time"`
	MaxBookingsForDay *int   `json:"max_bookings_for_day" validate:"omitempty,gte=0"`
	Reason            string `json:"reason" validate:"max=240"`
}

type UpdateDateException struct {
	Date              string `json:"date" validate:"required,datetime=2006-01-02"`
	IsAvailable       bool   `json:"is_available"`
	StartTime         string `json:"start_time"`
	EndTime           string `json:"end_time"`
	MaxBookingsForDay *int   `json:"max_bookings_for_day" validate:"omitempty,gte=0"`
	Reason            string `json:"reason" validate:"max=240"`
}
