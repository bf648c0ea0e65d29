package models

import "testing"

func TestDeviceFromUserAgent(t *testing.T) {
	tests := []struct {
		name string
		ua   string
		want string
	}{
		{
			name: "ipad",
			ua:   "Mozilla/5.0 (iPad; CPU OS 16_0 like Mac OS X) AppleWebKit/605.1.15",
			want: DeviceTablet,
		},
		{
			name: "android tablet without mobi token",
			ua:   "Mozilla/5.0 (Linux; Android 13; SM-X700) AppleWebKit/537.36 Chrome/112.0 Safari/537.36",
			want: DeviceTablet,
		},
		{
			name: "kindle silk",
			ua:   "Mozilla/5.0 (Linux; U; en-us; KFTHWI Build/JDQ39) AppleWebKit/535.19 Silk/3.13",
			want: DeviceTablet,
		},
		{
			name: "iphone",
			ua:   "Mozilla/5.0 (iPhone; CPU iPhone OS 16_0 like Mac OS X) AppleWebKit/605.1.15 Mobile/15E148",
			want: DeviceMobile,
		},
		{
			name: "android phone",
			ua:   "Mozilla/5.0 (Linux; Android 13; Pixel 7) AppleWebKit/537.36 Chrome/112.0 Mobile Safari/537.36",
			want: DeviceMobile,
		},
		{
			name: "blackberry",
			ua:   "Mozilla/5.0 (BlackBerry; U; BlackBerry 9900) AppleWebKit/534.11+",
			want: DeviceMobile,
		},
		{
			name: "windows desktop",
			ua:   "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 Chrome/112.0 Safari/537.36",
			want: DeviceDesktop,
		},
		{
			name: "mac desktop",
			ua:   "Mozilla/5.0 (Macintosh; Intel Mac OS X 13_0) AppleWebKit/605.1.15 Safari/605.1.15",
			want: DeviceDesktop,
		},
		{
			name: "empty user agent",
			ua:   "",
			want: DeviceDesktop,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeviceFromUserAgent(tt.ua); got != tt.want {
				t.Errorf("DeviceFromUserAgent(%q) = %q, want %q", tt.ua, got, tt.want)
			}
		})
	}
}

func TestValidDevice(t *testing.T) {
	for _, device := range []string{DeviceDesktop, DeviceMobile, DeviceTablet} {
		if !ValidDevice(device) {
			t.Errorf("ValidDevice(%q) = false, want true", device)
		}
	}
	for _, device := range []string{"", "desktop", "Phone", "TABLET"} {
		if ValidDevice(device) {
			t.Errorf("ValidDevice(%q) = true, want false", device)
		}
	}
}
