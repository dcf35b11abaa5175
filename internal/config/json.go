package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/inhies/go-bytesize"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON files, with
// durations and byte sizes written as strings ("30s", "10MB").
type StructuredJSONConfig struct {
	App struct {
		Version       string   `json:"version"`
		SessionKey    string   `json:"session_key"`
		MaxUploadSize ByteSize `json:"max_upload_size"`
	} `json:"app,omitempty"`

	Storage struct {
		Results struct {
			Mode    string   `json:"mode"`
			Address string   `json:"address"`
			TTL     Duration `json:"ttl"`
			MaxCost int64    `json:"max_cost"`
		} `json:"results,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`
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
			Version:       jsonCfg.App.Version,
			SessionKey:    jsonCfg.App.SessionKey,
			MaxUploadSize: bytesize.ByteSize(jsonCfg.App.MaxUploadSize),
		},
		Storage: Storage{
			Results: Results{
				Mode:    jsonCfg.Storage.Results.Mode,
				Address: jsonCfg.Storage.Results.Address,
				TTL:     time.Duration(jsonCfg.Storage.Results.TTL),
				MaxCost: jsonCfg.Storage.Results.MaxCost,
			},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
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
		return fmt.Errorf("invalid duration: %s", b)
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// ByteSize accepts either a number of bytes or a human-readable size such as
// "512KB" or "10MB".
type ByteSize bytesize.ByteSize

func (s *ByteSize) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*s = ByteSize(value)
		return nil
	case string:
		tmp, err := bytesize.Parse(value)
		if err != nil {
			return err
		}
		*s = ByteSize(tmp)
		return nil
	default:
		return fmt.Errorf("invalid byte size: %s", b)
	}
}

func (s ByteSize) MarshalJSON() ([]byte, error) {
	return json.Marshal(uint64(s))
}
