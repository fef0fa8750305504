package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, database connection,
// the Claude API, the video pipeline, and graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"30s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"dpq" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// JWT contains the RS256 key pair used to sign and verify API tokens
	JWT struct {
		// PrivateKey is the PEM-encoded RSA private key used by the jwt subcommand
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
		// PublicKey is the PEM-encoded RSA public key used to verify bearer tokens
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
	} `yaml:"jwt"`

	// Claude configures the Anthropic Messages API client
	Claude struct {
		// APIKey authenticates requests to the API
		APIKey string `env:"CLAUDE_API_KEY" yaml:"apiKey"`
		// Model is the model identifier used for recommendations and video analysis
		Model string `env:"CLAUDE_MODEL" env-default:"claude-sonnet-4-20250514" yaml:"model"`
		// MaxTokens caps the response length per request
		MaxTokens int `env:"CLAUDE_MAX_TOKENS" env-default:"4000" yaml:"maxTokens"`
		// BaseURL overrides the API endpoint, mainly for testing
		BaseURL string `env:"CLAUDE_BASE_URL" yaml:"baseURL"`
		// RequestTimeout bounds a single API call
		RequestTimeout time.Duration `env:"CLAUDE_REQUEST_TIMEOUT" env-default:"2m" yaml:"requestTimeout"`
	} `yaml:"claude"`

	// Video configures the ffmpeg-based frame extraction pipeline
	Video struct {
		// FFmpegPath is the ffmpeg binary, resolved from PATH when empty
		FFmpegPath string `env:"VIDEO_FFMPEG_PATH" yaml:"ffmpegPath"`
		// FFprobePath is the ffprobe binary, resolved from PATH when empty
		FFprobePath string `env:"VIDEO_FFPROBE_PATH" yaml:"ffprobePath"`
		// UploadDir is where uploaded videos and extracted frames are stored
		UploadDir string `env:"VIDEO_UPLOAD_DIR" env-default:"uploads" yaml:"uploadDir"`
		// SceneThreshold is the scene-change threshold for frame extraction (0-1)
		SceneThreshold float64 `env:"VIDEO_SCENE_THRESHOLD" env-default:"0.10" yaml:"sceneThreshold"`
	} `yaml:"video"`

	// Assessor configures background processing of assessments and videos
	Assessor struct {
		// MaxAttempts is how many times a job is retried before being marked failed
		MaxAttempts int `env:"ASSESSOR_MAX_ATTEMPTS" env-default:"3" yaml:"maxAttempts"`
		// MaxWorkers bounds concurrent background jobs
		MaxWorkers int `env:"ASSESSOR_MAX_WORKERS" env-default:"10" yaml:"maxWorkers"`
	} `yaml:"assessor"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
