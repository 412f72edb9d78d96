package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

// Config 应用配置
type Config struct {
	Server    ServerConfig    `json:"server"`
	Database  DatabaseConfig  `json:"database"`
	Consul    ConsulConfig    `json:"consul"`
	Jaeger    JaegerConfig    `json:"jaeger"`
	Log       LogConfig       `json:"log"`
	Auth      AuthConfig      `json:"auth"`
	RateLimit RateLimitConfig `json:"rate_limit"`
	Cron      CronConfig      `json:"cron"`
}

// ServerConfig 服务配置
type ServerConfig struct {
	Name     string `json:"name"`      // 服务名称
	Host     string `json:"host"`      // 服务地址
	HTTPPort int    `json:"http_port"` // HTTP端口
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	Driver   string `json:"driver"`   // 数据库驱动
	Host     string `json:"host"`     // 数据库地址
	Port     int    `json:"port"`     // 数据库端口
	User     string `json:"user"`     // 用户名
	Password string `json:"password"` // 密码
	Database string `json:"database"` // 数据库名
	MaxIdle  int    `json:"max_idle"` // 最大空闲连接
	MaxOpen  int    `json:"max_open"` // 最大打开连接
}

// ConsulConfig Consul配置
type ConsulConfig struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

// JaegerConfig Jaeger配置
type JaegerConfig struct {
	Endpoint string  `json:"endpoint"`
	Sampler  float64 `json:"sampler"` // 采样率 0.0-1.0
}

// LogConfig 日志配置
type LogConfig struct {
	Level  string `json:"level"`  // debug, info, warn, error
	Format string `json:"format"` // json, text
	Output string `json:"output"` // stdout, file
	Path   string `json:"path"`   // 日志文件路径
}

// AuthConfig 鉴权配置（管理端 JWT）
type AuthConfig struct {
	Enabled         bool   `json:"enabled"`
	JWTSecret       string `json:"jwt_secret"`
	Issuer          string `json:"issuer"`
	Audience        string `json:"audience"`
	TokenTTLMinutes int    `json:"token_ttl_minutes"` // 为 0 时走默认 24h
}

// RateLimitConfig 公网提交接口的限流配置
type RateLimitConfig struct {
	Enabled       bool   `json:"enabled"`
	Kind          string `json:"kind"`           // token_bucket（默认）或 sliding_window
	Capacity      int64  `json:"capacity"`       // 桶容量 / 窗口内最大请求数
	RefillRate    int64  `json:"refill_rate"`    // 每秒补充令牌数（仅令牌桶）
	WindowSeconds int    `json:"window_seconds"` // 窗口长度（仅滑动窗口，为 0 时取 60s）
}

// CronConfig 定时任务配置
type CronConfig struct {
	PruneSchedule   string `json:"prune_schedule"`   // 清理过期可租日期，cron 表达式
	RefreshSchedule string `json:"refresh_schedule"` // 快照兜底刷新，cron 表达式
}

var (
	globalConfig *Config
	configOnce   sync.Once
)

// LoadConfig 加载配置
func LoadConfig(configPath string) (*Config, error) {
	var err error
	configOnce.Do(func() {
		globalConfig = &Config{}
		// 如果配置文件不存在，使用默认配置
		if _, err = os.Stat(configPath); os.IsNotExist(err) {
			logrus.Warnf("Config file not found: %s, using default config", configPath)
			globalConfig = defaultConfig()
			err = nil
			return
		}

		data, readErr := os.ReadFile(configPath)
		if readErr != nil {
			err = fmt.Errorf("failed to read config file: %w", readErr)
			return
		}

		if unmarshalErr := json.Unmarshal(data, globalConfig); unmarshalErr != nil {
			err = fmt.Errorf("failed to parse config file: %w", unmarshalErr)
			return
		}
	})

	if err != nil {
		return nil, err
	}

	return globalConfig, nil
}

// defaultConfig 默认配置（开发环境）
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Name:     "prestigedrive-api",
			Host:     "0.0.0.0",
			HTTPPort: 8080,
		},
		Database: DatabaseConfig{
			Driver:   "mysql",
			Host:     "localhost",
			Port:     3306,
			User:     "root",
			Password: "root",
			Database: "prestigedrive",
			MaxIdle:  10,
			MaxOpen:  100,
		},
		Consul: ConsulConfig{
			Host: "localhost",
			Port: 8500,
		},
		Jaeger: JaegerConfig{
			Endpoint: "localhost:6831", // jaeger agent 的 host:port
			Sampler:  1.0,
		},
		Log: LogConfig{
			Level:  "debug",
			Format: "text",
			Output: "stdout",
			Path:   "logs/app.log",
		},
		Auth: AuthConfig{
			Enabled:         true,
			JWTSecret:       "", // 必须通过配置或环境变量注入，空值时拒绝签发
			Issuer:          "prestigedrive",
			Audience:        "prestigedrive",
			TokenTTLMinutes: 0,
		},
		RateLimit: RateLimitConfig{
			Enabled:       true,
			Kind:          "token_bucket",
			Capacity:      10,
			RefillRate:    2,
			WindowSeconds: 60,
		},
		Cron: CronConfig{
			PruneSchedule:   "0 30 3 * * *",   // 每天 03:30
			RefreshSchedule: "0 */10 * * * *", // 每 10 分钟兜底刷新
		},
	}
}
