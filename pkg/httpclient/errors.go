package httpclient

import "fmt"

// TransportError reports an exchange that completed with a status outside 2xx.
type TransportError struct {
	Status     int    `json:"status"`
	StatusText string `json:"status_text"`
}

func (e *TransportError) Error() string {
	if e.StatusText == "" {
		return fmt.Sprintf("http status %d", e.Status)
	}
	return fmt.Sprintf("http status %d %s", e.Status, e.StatusText)
}
