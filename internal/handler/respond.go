package handler

// Response is the success envelope every endpoint returns. The dashboard's
// toast layer reads Message; tables and forms read Data.
type Response struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}
