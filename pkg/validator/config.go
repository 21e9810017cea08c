package validator

// Config holds process-wide validator defaults, typically loaded from the
// environment with config.Load.
type Config struct {
	Policy    string `env:"VALIDATOR_POLICY" envDefault:"fail-fast"`
	AutoThrow bool   `env:"VALIDATOR_AUTO_THROW" envDefault:"true"`
	Locale    string `env:"VALIDATOR_LOCALE" envDefault:"en"`
	ErrorCode int    `env:"VALIDATOR_ERROR_CODE" envDefault:"10000"`
}

// Options converts the config into Validator options.
func (c Config) Options() ([]Option, error) {
	opts := make([]Option, 0, 4)
	if c.Policy != "" {
		p, err := ParsePolicy(c.Policy)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithPolicy(p))
	}
	opts = append(opts, WithAutoThrow(c.AutoThrow))
	if c.Locale != "" {
		opts = append(opts, WithLocale(c.Locale))
	}
	if c.ErrorCode != 0 {
		opts = append(opts, WithErrorCode(c.ErrorCode))
	}
	return opts, nil
}
