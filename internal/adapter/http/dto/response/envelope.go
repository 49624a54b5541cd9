package response

// Envelope is the success body of every JSON endpoint. Failures use pkg.HTTPError.
type Envelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
}

func OK(data any) Envelope {
	return Envelope{Success: true, Data: data}
}
