package http

import (
	_ "embed"
	"fmt"
	"time"

	"github.com/MKhiriev/go-payload-guard/decorators"
	"github.com/MKhiriev/go-payload-guard/internal/config"
	"github.com/MKhiriev/go-payload-guard/internal/logger"
	"github.com/MKhiriev/go-payload-guard/internal/utils"
	"github.com/MKhiriev/go-payload-guard/models"
	"github.com/MKhiriev/go-payload-guard/validators"
)

//go:embed schemas/user.yaml
var defaultSchema []byte

type Handler struct {
	decorators *decorators.Decorators
	schema     *validators.Schema
	buildInfo  models.AppBuildInfo
	traceIDs   *utils.TraceIDGenerator

	requestTimeout time.Duration
	maxBodyBytes   int64

	logger *logger.Logger
}

// NewHandler builds the handler from the merged configuration. The schema
// route uses cfg.Validation.SchemaPath, or the embedded user schema when it
// is empty.
func NewHandler(cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Handler, error) {
	schema, err := loadSchema(cfg.Validation.SchemaPath)
	if err != nil {
		return nil, err
	}

	d := decorators.New(cfg.Validation.AbortCodes())
	codes := d.Codes()
	logger.Info().
		Int("invalid_content_type", codes.InvalidContentType).
		Int("key_missing", codes.KeyMissing).
		Int("invalid_type", codes.InvalidType).
		Int("validation_failure", codes.ValidationFailure).
		Int("validation_error", codes.ValidationError).
		Msg("http handler created")

	return &Handler{
		decorators:     d,
		schema:         schema,
		buildInfo:      buildInfo,
		traceIDs:       utils.NewTraceIDGenerator(),
		requestTimeout: cfg.Server.RequestTimeout,
		maxBodyBytes:   cfg.Server.MaxBodyBytes,
		logger:         logger,
	}, nil
}

func loadSchema(path string) (*validators.Schema, error) {
	var (
		schema *validators.Schema
		err    error
	)
	if path == "" {
		schema, err = validators.NewSchema(defaultSchema)
	} else {
		schema, err = validators.LoadSchemaFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadingSchema, err)
	}

	return schema, nil
}
