package config

// Redis connection part of configuration
type Redis struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// Private part of configuration
type Private struct {
	Token        string `yaml:"token"`
	LogChannelID string `yaml:"log_channel_id"`
	Data         string `yaml:"data"`
	Listen       string `yaml:"listen"`
	Redis        Redis  `yaml:"redis"`
}

// Server specific part of configuration
type Server struct {
	GuildID      string `yaml:"id"`
	LogChannelID string `yaml:"log_channel_id"`
	AuditDB      string `yaml:"auditdb"`
}

// Root of configuration
type Root struct {
	Servers []Server `yaml:"servers"`
	Private Private  `yaml:"private"`
}
