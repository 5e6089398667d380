package logx

const (
	FieldAppName         = "app-name"
	FieldAppVersion      = "app-version"
	FieldDealID          = "deal-id"
	FieldDurationMs      = "duration-ms"
	FieldError           = "error"
	FieldEventType       = "event-type"
	FieldHTTPMethod      = "http-method"
	FieldHTTPRequest     = "http-request"
	FieldHTTPResponse    = "http-response"
	FieldIP              = "ip"
	FieldQueue           = "queue"
	FieldRequestBody     = "request-body"
	FieldRequestID       = "request-id"
	FieldResponseBody    = "response-body"
	FieldResponseHeaders = "response-headers"
	FieldResponseStatus  = "response-status"
	FieldStack           = "stack"
	FieldTaskID          = "task-id"
	FieldTraceID         = "trace-id"
	FieldURL             = "url"
	FieldUserAgent       = "user-agent"
)
