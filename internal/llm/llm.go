package llm

// creates a completion client with auto-configuration from environment
// variables; returns ErrNotConfigured when no API credential is present
func NewFromEnv() (TextGenerator, error) {
	config, err := loadConfig()
	if err != nil {
		return nil, err
	}

	return NewClient(*config), nil
}
