package models

import (
	"context"
	"regexp"
	"time"

	"github.com/uptrace/bun"
)

// UnknownLocation is stored when the geolocation lookup fails or is skipped.
const UnknownLocation = "Unbekannt"

// Device types
const (
	DeviceDesktop = "Desktop"
	DeviceMobile  = "Mobile"
	DeviceTablet  = "Tablet"
)

type Visit struct {
	bun.BaseModel `bun:"table:visits,alias:v"`

	ID        int64    `bun:"id,pk,autoincrement" json:"id"`
	IPAddress string   `bun:"ip_address,notnull" json:"ipAddress"`
	Country   string   `bun:"country,notnull,default:'Unbekannt'" json:"country"`
	City      string   `bun:"city,notnull,default:'Unbekannt'" json:"city"`
	Browser   string   `bun:"browser,notnull" json:"browser"`
	OS        string   `bun:"os,notnull" json:"os"`
	Device    string   `bun:"device,notnull" json:"device"`
	Duration  *float64 `bun:"duration_seconds" json:"duration,omitempty"`

	// JSON field name kept as "timestamp" for the dashboard client.
	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:now()" json:"timestamp"`
}

// BeforeInsert hook
var _ bun.BeforeInsertHook = (*Visit)(nil)

func (v *Visit) BeforeInsert(ctx context.Context, query *bun.InsertQuery) error {
	if v.CreatedAt.IsZero() {
		v.CreatedAt = time.Now()
	}
	if v.Country == "" {
		v.Country = UnknownLocation
	}
	if v.City == "" {
		v.City = UnknownLocation
	}
	return nil
}

var (
	tabletPattern  = regexp.MustCompile(`(?i)tablet|ipad|playbook|silk`)
	androidPattern = regexp.MustCompile(`(?i)android`)
	androidMobile  = regexp.MustCompile(`(?i)mobi`)
	mobilePattern  = regexp.MustCompile(`Mobile|iP(hone|od)|Android|BlackBerry|IEMobile|Kindle|Silk-L|Opera M(obi|ini)`)
)

// DeviceFromUserAgent classifies a user agent string into one of the device
// types. Android agents without a "Mobi" token are tablets. Unrecognised
// agents count as Desktop.
func DeviceFromUserAgent(ua string) string {
	if tabletPattern.MatchString(ua) {
		return DeviceTablet
	}
	if androidPattern.MatchString(ua) && !androidMobile.MatchString(ua) {
		return DeviceTablet
	}
	if mobilePattern.MatchString(ua) {
		return DeviceMobile
	}
	return DeviceDesktop
}

// ValidDevice reports whether a client-supplied device value is one of the
// known device types.
func ValidDevice(device string) bool {
	switch device {
	case DeviceDesktop, DeviceMobile, DeviceTablet:
		return true
	}
	return false
}
