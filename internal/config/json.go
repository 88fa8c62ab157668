package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the layout of the JSON
// configuration file.
type StructuredJSONConfig struct {
	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		MaxBodyBytes   int64    `json:"max_body_bytes"`
	} `json:"server,omitempty"`

	Validation struct {
		InvalidContentTypeCode int    `json:"invalid_content_type_abort_code"`
		KeyMissingCode         int    `json:"key_missing_abort_code"`
		InvalidTypeCode        int    `json:"invalid_type_abort_code"`
		ValidationFailureCode  int    `json:"validation_failure_abort_code"`
		ValidationErrorCode    int    `json:"validation_error_abort_code"`
		SchemaPath             string `json:"schema_path"`
	} `json:"validation,omitempty"`

	LogLevel string `json:"log_level"`
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
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			MaxBodyBytes:   jsonCfg.Server.MaxBodyBytes,
		},
		Validation: Validation{
			InvalidContentTypeCode: jsonCfg.Validation.InvalidContentTypeCode,
			KeyMissingCode:         jsonCfg.Validation.KeyMissingCode,
			InvalidTypeCode:        jsonCfg.Validation.InvalidTypeCode,
			ValidationFailureCode:  jsonCfg.Validation.ValidationFailureCode,
			ValidationErrorCode:    jsonCfg.Validation.ValidationErrorCode,
			SchemaPath:             jsonCfg.Validation.SchemaPath,
		},
		LogLevel: jsonCfg.LogLevel,
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
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
