package main

// Config stores the application configuration, read from environment
// variables.
type Config struct {
	// Port is the TCP port the web server listens on.
	Port string `env:"PORT" env-default:"3000"`
	// DataPath points to the CSV file holding the readings. It is
	// created on the first write if it doesn't exist.
	DataPath string `env:"DATAPATH" env-default:"bp_data.csv"`
	// RollingWindow is how many readings the rolling averages span.
	RollingWindow int `env:"ROLLING_WINDOW" env-default:"7"`
}
