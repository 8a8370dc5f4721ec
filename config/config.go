package config

type Mode string

const (
	ModeDebug   Mode = "debug"
	ModeRelease Mode = "release"
	ModeTest    Mode = "test"
)

type Config struct {
	Host        string   `mapstructure:"host"`
	Port        string   `mapstructure:"port"`
	Prefix      string   `mapstructure:"prefix"`
	Mode        Mode     `mapstructure:"mode"`
	CORSOrigins []string `mapstructure:"cors_origins" split_words:"true"`
	Database    Database `mapstructure:"database"`
	Mysql       Mysql    `mapstructure:"mysql"`
	Admin       Admin    `mapstructure:"admin"`
	JWT         JWT      `mapstructure:"jwt"`
	Media       Media    `mapstructure:"media"`
	Cloudinary  Cloudinary
	S3          S3
	Storage     Storage
	Redis       Redis
	Log         Log
	Sentry      Sentry
	HTTPClient  HTTPClient `mapstructure:"http" envconfig:"HTTP"`
}

type Database struct {
	Driver string `mapstructure:"driver"` // postgres, mysql or sqlite
	URL    string `mapstructure:"url"`
}

// Mysql is only consulted when Database.Driver is mysql and Database.URL is empty.
type Mysql struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"db_name" split_words:"true"`
}

type Admin struct {
	Username     string `mapstructure:"username"`
	Password     string `mapstructure:"password"`
	PasswordHash string `mapstructure:"password_hash" split_words:"true"` // bcrypt, takes precedence over Password
}

type JWT struct {
	Secret            string `mapstructure:"secret"`
	Algorithm         string `mapstructure:"algorithm"`
	ExpirationMinutes int    `mapstructure:"expiration_minutes" split_words:"true"`
}

type Media struct {
	Driver     string `mapstructure:"driver"`                            // cloudinary, s3 or local
	RootFolder string `mapstructure:"root_folder" split_words:"true"` // top-level folder for every wing
}

type Cloudinary struct {
	CloudName string `mapstructure:"cloud_name" split_words:"true"`
	APIKey    string `mapstructure:"api_key" split_words:"true"`
	APISecret string `mapstructure:"api_secret" split_words:"true"`
	BaseURL   string `mapstructure:"base_url" split_words:"true"`
}

type S3 struct {
	Endpoint        string `mapstructure:"endpoint"`
	BaseURL         string `mapstructure:"base_url" split_words:"true"`
	Bucket          string `mapstructure:"bucket"`
	Region          string `mapstructure:"region"`
	AccessKey       string `mapstructure:"access_key" split_words:"true"`
	SecretAccessKey string `mapstructure:"secret_key" envconfig:"SECRET_KEY"`
	Prefix          string `mapstructure:"prefix"`
	UsePathStyle    bool   `mapstructure:"path_style" envconfig:"PATH_STYLE"`
}

// Storage backs the local media driver.
type Storage struct {
	Home    string `mapstructure:"home"`
	BaseURL string `mapstructure:"base_url" split_words:"true"`
}

type Redis struct {
	Addr       string `mapstructure:"addr"` // empty disables the read cache
	Password   string `mapstructure:"password"`
	DB         int    `mapstructure:"db"`
	TTLSeconds int    `mapstructure:"ttl_seconds" split_words:"true"`
}

type Log struct {
	FilePath   string `mapstructure:"file_path" split_words:"true"`     // log file path, release mode only
	Level      string `mapstructure:"level"`                            // debug, info, warn, error
	MaxSize    int    `mapstructure:"max_size" split_words:"true"`      // MB per file
	MaxBackups int    `mapstructure:"max_backups" split_words:"true"`   // rotated files kept
	MaxAge     int    `mapstructure:"max_age" split_words:"true"`       // days
	Compress   bool   `mapstructure:"compress"`                         // gzip rotated files
}

type Sentry struct {
	Dsn         string  `mapstructure:"dsn"`
	Environment string  `mapstructure:"environment"`
	SampleRate  float64 `mapstructure:"sample_rate" split_words:"true"`
	TraceHTTP   bool    `mapstructure:"trace_http" split_words:"true"`
	DBSlowMs    int     `mapstructure:"db_slow_ms" split_words:"true"`
}

type HTTPClient struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds" split_words:"true"`
}
