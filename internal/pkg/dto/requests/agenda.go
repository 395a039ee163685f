package requests

type CreateAgenda struct {
	Name            string `json:"name" validate:"required,max=120"`
	DurationMinutes int    `json:"duration_minutes" validate:"required,gt=0,lte=480"`
	BufferMinutes   int    `json:"buffer_minutes" validate:"gte=0,lte=240"`
	MaxParticipants int    `json:"max_participants" validate:"required,gte=1"`
	Active          *bool  `json:"active"`
}

type UpdateAgenda struct {
	Name            string `json:"name" validate:"required,max=120"`
	DurationMinutes int    `json:"duration_minutes" validate:"required,gt=0,lte=480"`
	BufferMinutes   int    `json:"buffer_minutes" validate:"gte=0,lte=240"`
	MaxParticipants int    `json:"max_participants" validate:"required,gte=1"`
	Active          bool   `json:"active"`
}
