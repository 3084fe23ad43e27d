package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

const envPrefix = "MNEMOSYNE"

type Config struct {
	Env        string           `mapstructure:"env"`        // Env is the current environment: local, development, production.
	Data       DataConfig       `mapstructure:"data"`       // Data holds the location of the directory documents.
	Monitoring MonitoringConfig `mapstructure:"monitoring"` // Monitoring holds the metrics and health server configuration.
}

// DataConfig struct holds the location of the employee and contact documents.
type DataConfig struct {
	Dir           string `mapstructure:"dir"`            // Dir is the directory holding the documents.
	EmployeesFile string `mapstructure:"employees_file"` // EmployeesFile is the employees document, relative to Dir.
	ContactsFile  string `mapstructure:"contacts_file"`  // ContactsFile is the contacts document, relative to Dir.
}

// MonitoringConfig struct holds the configuration of the monitoring server.
type MonitoringConfig struct {
	Port int `mapstructure:"port"` // Port is the port /metrics and /healthz listen on.
}

// MustLoad loads the configuration and returns a Config struct. Values come from,
// in increasing priority: defaults, the YAML file named by CONFIG_PATH (optional),
// and MNEMOSYNE_* environment variables. A .env file in the working directory is
// loaded into the environment first when present.
func MustLoad() *Config {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defPort := 8080

	v.SetDefault("env", "local")
	v.SetDefault("data.dir", "./data")
	v.SetDefault("data.employees_file", "employees.json")
	v.SetDefault("data.contacts_file", "contactinfo.json")
	v.SetDefault("monitoring.port", defPort)

	if configPath := os.Getenv("CONFIG_PATH"); configPath != "" {
		// check if file exists
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			panic("config file does not exist: " + configPath)
		}

		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			panic("config error: " + err.Error())
		}
	}

	port, err := cast.ToIntE(v.Get("monitoring.port"))
	if err != nil || port <= 0 || port > 65535 {
		panic("failed to parse monitoring port from configuration")
	}

	var cfg Config
	if err = v.Unmarshal(&cfg); err != nil {
		panic("config error: " + err.Error())
	}
	cfg.Monitoring.Port = port

	return &cfg
}
