package order

import (
	"fmt"
	"strings"
	"time"

	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ServiceTier is the delivery speed class chosen at checkout.
type ServiceTier int

const (
	UnknownTier ServiceTier = iota
	Standard
	Express24h
	Express48h
)

type tierSpec struct {
	name       string
	offset     time.Duration
	multiplier decimal.Decimal
}

var tiers = map[ServiceTier]tierSpec{
	Standard:   {name: "Standard", offset: 72 * time.Hour, multiplier: decimal.NewFromInt(1)},
	Express24h: {name: "Express 24h", offset: 24 * time.Hour, multiplier: decimal.NewFromInt(3)},
	Express48h: {name: "Express 48h", offset: 48 * time.Hour, multiplier: decimal.NewFromInt(2)},
}

var tierAliases = map[string]ServiceTier{
	"Standard":    Standard,
	"Express 24h": Express24h,
	"Express-24h": Express24h,
	"Express 48h": Express48h,
	"Express-48h": Express48h,
}

// ParseServiceTier accepts the storefront names ("Express 24h") and their hyphenated forms.
func ParseServiceTier(s string) (ServiceTier, error) {
	if tier, ok := tierAliases[s]; ok {
		return tier, nil
	}
	return UnknownTier, errs.NewValueIsInvalidErrorWithCause("serviceTier", fmt.Errorf("%q is not a known service tier", s))
}

func (t ServiceTier) String() string {
	if info, ok := tiers[t]; ok {
		return info.name
	}
	return "Unknown"
}

func (t ServiceTier) Validate() error {
	if _, ok := tiers[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("serviceTier", fmt.Errorf("%d is not a known service tier", t))
	}
	return nil
}

// DeliveryOffset is the promised turnaround: 24h, 48h or 72h.
func (t ServiceTier) DeliveryOffset() time.Duration {
	return tiers[t].offset
}

// DeliveryTime computes pickup + offset.
func (t ServiceTier) DeliveryTime(pickup time.Time) time.Time {
	return pickup.Add(t.DeliveryOffset())
}

// PriceMultiplier is applied by the catalog to base prices: 3.0, 2.0 or 1.0.
func (t ServiceTier) PriceMultiplier() decimal.Decimal {
	if info, ok := tiers[t]; ok {
		return info.multiplier
	}
	return decimal.Zero
}

// ParsePickupTime accepts RFC 3339 timestamps ("2024-01-01T00:00:00Z").
func ParsePickupTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, errs.NewValueIsInvalidErrorWithCause("pickupTime", err)
	}
	return t.UTC(), nil
}
