package reconcile

// Config holds reconcile settings.
type Config struct {
	// Placement is where added elements go: append or anchored.
	Placement string `mapstructure:"placement" default:"append"`
}
