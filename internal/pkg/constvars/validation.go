package constvars

// CustomValidationErrorMessages maps validator tags to human sentences that
// get prefixed with the lowercased field name.
var CustomValidationErrorMessages = map[string]string{
	"required":     "is required",
	"email":        "must be a valid email address",
	"min":          "must be at least %s characters",
	"max":          "must be at most %s characters",
	"oneof":        "must be one of: %s",
	"phone_number": "phone must be a valid international phone number",
}

// TagsWithParams marks tags whose message contains a %s placeholder for the
// validator parameter.
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
}
