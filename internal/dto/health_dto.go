package dto

// StatusResponse backs the client's status poller: one boolean per component.
type StatusResponse struct {
	Api      bool `json:"api"`
	Database bool `json:"database"`
	Redis    bool `json:"redis"`
	Nats     bool `json:"nats"`
}
