package configuration

type TelemetryConfig struct {
	// number of iterations the "recent" statistics are computed over
	WindowSize int `json:"windowSize"`
	// path of a JSON file all records are written to, when the run is over
	Export string `json:"export"`
	// print a plot of the run when it is over
	Plot bool `json:"plot"`
}
