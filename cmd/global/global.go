package global

// values of the persistent flags of the root command
var (
	CfgFile string
	NoColor bool
	NoStyle bool
	Verbose bool
)
