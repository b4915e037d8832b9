package api

import (
	"fmt"
	"strings"
)

// Platform selects which native image type the generated accessors return.
type Platform string

const (
	// PlatformIOS targets UIKit (UIImage).
	PlatformIOS Platform = "ios"
	// PlatformOSX targets AppKit (NSImage).
	PlatformOSX Platform = "osx"
)

// Platforms lists every supported platform in display order.
var Platforms = []Platform{PlatformIOS, PlatformOSX}

// ParsePlatform maps a user-supplied selector to a Platform.
// "macos" is accepted as an alias for osx.
func ParsePlatform(s string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ios":
		return PlatformIOS, nil
	case "osx", "macos":
		return PlatformOSX, nil
	default:
		return "", fmt.Errorf("unknown platform %q (want ios or osx)", s)
	}
}

// ImageType is the Swift class name of the platform's image type.
func (p Platform) ImageType() string {
	switch p {
	case PlatformOSX:
		return "NSImage"
	default:
		return "UIImage"
	}
}

// Framework is the module that declares ImageType.
func (p Platform) Framework() string {
	switch p {
	case PlatformOSX:
		return "AppKit"
	default:
		return "UIKit"
	}
}

func (p Platform) String() string { return string(p) }

// Set implements pflag.Value so a Platform can be bound directly to a flag.
func (p *Platform) Set(s string) error {
	v, err := ParsePlatform(s)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Type implements pflag.Value.
func (p *Platform) Type() string { return "platform" }
