package models

import "strings"

// PlatformStyle holds the icon name and accent color used to render a
// platform badge in the UI.
type PlatformStyle struct {
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// DefaultPlatformStyle is used for platforms not in the known set.
var DefaultPlatformStyle = PlatformStyle{Icon: "link", Color: "#6b7280"}

// platformStyles is a closed mapping from canonical platform names to their
// display style. Lookup is exact (case-insensitive), not substring-based.
var platformStyles = map[string]PlatformStyle{
	"instagram": {Icon: "instagram", Color: "#e4405f"},
	"youtube":   {Icon: "youtube", Color: "#ff0000"},
	"github":    {Icon: "github", Color: "#181717"},
	"gitlab":    {Icon: "gitlab", Color: "#fc6d26"},
	"figma":     {Icon: "figma", Color: "#f24e1e"},
	"firebase":  {Icon: "firebase", Color: "#ffca28"},
	"vercel":    {Icon: "vercel", Color: "#000000"},
	"aws":       {Icon: "aws", Color: "#ff9900"},
	"gcp":       {Icon: "gcp", Color: "#4285f4"},
	"twitter":   {Icon: "twitter", Color: "#1da1f2"},
	"x":         {Icon: "twitter", Color: "#000000"},
	"linkedin":  {Icon: "linkedin", Color: "#0a66c2"},
	"dribbble":  {Icon: "dribbble", Color: "#ea4c89"},
}

// StyleForPlatform returns the display style for a platform name, falling
// back to DefaultPlatformStyle for unrecognized names.
func StyleForPlatform(name string) PlatformStyle {
	if style, ok := platformStyles[strings.ToLower(strings.TrimSpace(name))]; ok {
		return style
	}
	return DefaultPlatformStyle
}

// IsKnownPlatform reports whether the platform has a dedicated style.
func IsKnownPlatform(name string) bool {
	_, ok := platformStyles[strings.ToLower(strings.TrimSpace(name))]
	return ok
}
