package webserver

type Config struct {
	Version string
	// RollingWindow is the number of readings averaged for the trend
	// overlay and the dashboard rolling mean.
	RollingWindow int
}
