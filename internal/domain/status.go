package domain

// StatusReport is the body of the connectivity check endpoint.
// Every field is a human readable status; sub-checks fail independently.
type StatusReport struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}
