package log

// Common field names for structured logging
const (
	FieldComponent  = "component"
	FieldRequestID  = "request_id"
	FieldClientIP   = "client_ip"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldSuccess    = "success"
	FieldError      = "error"
	FieldIntent     = "intent"
	FieldTab        = "tab"
	FieldAmount     = "amount"
	FieldCategory   = "category"
	FieldPeriod     = "period"
)

// Components defines standard component names
const (
	ComponentApp        = "app"
	ComponentHTTP       = "http"
	ComponentDispatch   = "dispatch"
	ComponentNLU        = "nlu"
	ComponentClassifier = "classifier"
	ComponentState      = "state"
	ComponentAMQP       = "amqp"
)
