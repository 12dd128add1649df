package configuration

// ApiConfig configures the REST service exposing the state of a running simulation
type ApiConfig struct {
	Enabled bool   `json:"enabled"`
	Host    string `json:"host"`
	Port    int    `json:"port"`
}
