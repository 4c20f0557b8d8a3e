package dto

// StatusResponse is the uniform terminal response body.
type StatusResponse struct {
	Status string `json:"status"`
}

var (
	// StatusOK acknowledges a terminal success path, including valid no-ops.
	StatusOK = StatusResponse{Status: "ok"}
	// StatusError reports a rejected or failed request without detail.
	StatusError = StatusResponse{Status: "error"}
)
