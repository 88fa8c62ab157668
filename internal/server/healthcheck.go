package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-payload-guard/internal/utils"
	"github.com/MKhiriev/go-payload-guard/models"
)

const healthcheckPath = "/version"

// Healthcheck asks the server at address for its build info and reports an
// error unless it answers 200 with a version document.
func Healthcheck(ctx context.Context, address string) (*models.VersionResponse, error) {
	client := utils.NewHTTPClient("http://" + address)

	var version models.VersionResponse
	resp, err := client.R().
		SetContext(ctx).
		SetResult(&version).
		Get(healthcheckPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errUnhealthy, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("%w: %s answered %d", errUnhealthy, healthcheckPath, resp.StatusCode())
	}

	return &version, nil
}
