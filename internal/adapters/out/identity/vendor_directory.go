// Package identity resolves vendors against the identity service's user API.
package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"
)

const defaultTimeout = 5 * time.Second

// HTTPVendorDirectory reads GET {base}/api/admin/users/{id}. A user that is
// not a vendor is reported as not found.
type HTTPVendorDirectory struct {
	baseURL string
	client  *http.Client
}

func NewHTTPVendorDirectory(baseURL string, client *http.Client) *HTTPVendorDirectory {
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	return &HTTPVendorDirectory{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

type userResponse struct {
	ID            string `json:"id"`
	Role          string `json:"role"`
	VendorProfile *struct {
		IsApproved bool `json:"isApproved"`
	} `json:"vendorProfile"`
}

func (d *HTTPVendorDirectory) Vendor(ctx context.Context, id kernel.UUID) (services.Vendor, error) {
	endpoint := d.baseURL + "/api/admin/users/" + url.PathEscape(id.String())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return services.Vendor{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return services.Vendor{}, fmt.Errorf("identity service: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return services.Vendor{}, errs.NewObjectNotFoundError("vendor", id.String())
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return services.Vendor{}, fmt.Errorf("identity service: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var user userResponse
	if err = json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return services.Vendor{}, fmt.Errorf("identity service: decode user: %w", err)
	}
	if user.Role != string(kernel.RoleVendor) {
		return services.Vendor{}, errs.NewObjectNotFoundError("vendor", id.String())
	}

	return services.Vendor{
		ID:       id,
		Approved: user.VendorProfile != nil && user.VendorProfile.IsApproved,
	}, nil
}

// TrustingVendorDirectory accepts every vendor id as an approved vendor. It
// is used when no identity service is configured.
type TrustingVendorDirectory struct{}

func (TrustingVendorDirectory) Vendor(_ context.Context, id kernel.UUID) (services.Vendor, error) {
	if err := id.Validate(); err != nil {
		return services.Vendor{}, errs.NewValueIsRequiredErrorWithCause("vendorId", err)
	}
	return services.Vendor{ID: id, Approved: true}, nil
}
