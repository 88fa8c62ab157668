package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the server flags from args (without the program name).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-c/-config json file path with configs
//	-l log level (trace, debug, info, warn, error)
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-max-body-bytes maximum accepted request body size
//	-schema path to the schema document of the schema-validated route
//	-invalid-content-type-code status for non-JSON requests
//	-key-missing-code status for missing keys
//	-invalid-type-code status for type mismatches
//	-validation-failure-code status for field descriptor failures
//	-validation-error-code status for schema violations
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("go-payload-guard", flag.ContinueOnError)

	var serverAddress NetAddress
	var jsonConfigPath string
	var logLevel string
	var requestTimeout time.Duration
	var maxBodyBytes int64
	var validation Validation

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&logLevel, "l", "", "Log level")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.Int64Var(&maxBodyBytes, "max-body-bytes", 0, "Maximum request body size in bytes")
	fs.StringVar(&validation.SchemaPath, "schema", "", "Schema document path (YAML or JSON)")
	fs.IntVar(&validation.InvalidContentTypeCode, "invalid-content-type-code", 0, "Status code for non-JSON requests")
	fs.IntVar(&validation.KeyMissingCode, "key-missing-code", 0, "Status code for missing keys")
	fs.IntVar(&validation.InvalidTypeCode, "invalid-type-code", 0, "Status code for type mismatches")
	fs.IntVar(&validation.ValidationFailureCode, "validation-failure-code", 0, "Status code for field validation failures")
	fs.IntVar(&validation.ValidationErrorCode, "validation-error-code", 0, "Status code for schema violations")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			MaxBodyBytes:   maxBodyBytes,
		},
		Validation:   validation,
		LogLevel:     logLevel,
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// It returns an empty string if neither Host nor Port are set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
