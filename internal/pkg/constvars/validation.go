package constvars

// CustomValidationErrorMessages maps validator tags to client-facing fragments.
// The final message is "<field> <fragment>".
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"gt":       "must be greater than %s",
	"gte":      "must be at least %s",
	"lte":      "must be at most %s",
	"min":      "must have a minimum of %s",
	"max":      "must have a maximum of %s",
	"oneof":    "must be one of: %s",
	"datetime": "has an invalid date format",
}

// TagsWithParams marks tags whose message fragment embeds the tag parameter.
var TagsWithParams = map[string]bool{
	"gt":    true,
	"gte":   true,
	"lte":   true,
	"min":   true,
	"max":   true,
	"oneof": true,
}
