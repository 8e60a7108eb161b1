package domain

// Declaration is one module as written in a network description,
// before sinks are added and inputs are linked.
type Declaration struct {
	Name         string   `json:"name" yaml:"name" mapstructure:"name"`
	Kind         Kind     `json:"-" yaml:"-" mapstructure:"-"`
	Destinations []string `json:"to" yaml:"to" mapstructure:"to"`

	// Line is the 1-based source line, 0 for programmatic declarations.
	Line int `json:"-" yaml:"-" mapstructure:"-"`
}
