package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON files. Durations
// accept strings such as "5s".
type StructuredJSONConfig struct {
	App struct {
		AutoDeleteDays int    `json:"auto_delete_days"`
		MaxTries       int    `json:"max_tries"`
		MaxMessageSize int    `json:"max_message_size"`
		PasswordLength int    `json:"password_length"`
		LogLevel       string `json:"log_level"`
		Version        string `json:"version"`
	} `json:"app,omitempty"`

	Transport struct {
		URL            string   `json:"url"`
		User           string   `json:"user"`
		Password       string   `json:"password"`
		Name           string   `json:"name"`
		QueueGroup     string   `json:"queue_group"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"nats,omitempty"`

	Storage struct {
		Backend string `json:"backend"`
		Redis   struct {
			Host     string   `json:"host"`
			Port     int      `json:"port"`
			Password string   `json:"password"`
			DB       int      `json:"db"`
			Timeout  Duration `json:"timeout"`
			PoolSize int      `json:"pool_size"`
		} `json:"redis,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		StatusAddress string `json:"status_address"`
	} `json:"server,omitempty"`

	Workers struct {
		Count      int `json:"count"`
		BufferSize int `json:"buffer_size"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			AutoDeleteDays: jsonCfg.App.AutoDeleteDays,
			MaxTries:       jsonCfg.App.MaxTries,
			MaxMessageSize: jsonCfg.App.MaxMessageSize,
			PasswordLength: jsonCfg.App.PasswordLength,
			LogLevel:       jsonCfg.App.LogLevel,
			Version:        jsonCfg.App.Version,
		},
		Transport: Transport{
			URL:            jsonCfg.Transport.URL,
			User:           jsonCfg.Transport.User,
			Password:       jsonCfg.Transport.Password,
			Name:           jsonCfg.Transport.Name,
			QueueGroup:     jsonCfg.Transport.QueueGroup,
			RequestTimeout: time.Duration(jsonCfg.Transport.RequestTimeout),
		},
		Storage: Storage{
			Backend: jsonCfg.Storage.Backend,
			Redis: Redis{
				Host:     jsonCfg.Storage.Redis.Host,
				Port:     jsonCfg.Storage.Redis.Port,
				Password: jsonCfg.Storage.Redis.Password,
				DB:       jsonCfg.Storage.Redis.DB,
				Timeout:  time.Duration(jsonCfg.Storage.Redis.Timeout),
				PoolSize: jsonCfg.Storage.Redis.PoolSize,
			},
		},
		Server: Server{
			StatusAddress: jsonCfg.Server.StatusAddress,
		},
		Workers: Workers{
			Count:      jsonCfg.Workers.Count,
			BufferSize: jsonCfg.Workers.BufferSize,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
