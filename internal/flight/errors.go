package flight

type ErrorCode string

const (
	ErrorCodeValidation         ErrorCode = "VALIDATION"
	ErrorCodeRateLimited        ErrorCode = "RATE_LIMITED"
	ErrorCodeUpstreamFailure    ErrorCode = "UPSTREAM_FAILURE"
	ErrorCodeAllProvidersFailed ErrorCode = "ALL_PROVIDERS_FAILED"
	ErrorCodeInternalFailure    ErrorCode = "INTERNAL_FAILURE"
)

// AppError is an error carrying its HTTP mapping. Validation failures
// also carry per-field messages for the form.
type AppError struct {
	Status  int               `json:"-"`
	Code    ErrorCode         `json:"code"`
	Message string            `json:"error"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func (e *AppError) Error() string {
	return e.Message
}
