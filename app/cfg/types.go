package cfg

type Cfg struct {
	// Database configuration
	DBPath string

	// Application configuration
	Port          string
	BaseUrl       string
	JWTSecret     string
	TokenTTLHours int

	// Application metadata
	Timezone string
	Debug    bool
	Version  string
}
