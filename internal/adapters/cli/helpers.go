package cli

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

const passwordMask = "****"

// maskPassword masks the password in a connection URL for display
func maskPassword(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	u, err := url.Parse(rawURL)
	if err != nil || u.User == nil {
		return rawURL
	}
	if _, ok := u.User.Password(); !ok {
		return rawURL
	}
	// url.UserPassword would percent-encode the mask
	user := u.User.Username()
	u.User = url.User(user)
	masked := u.String()
	prefix := u.Scheme + "://" + url.User(user).String()
	return strings.Replace(masked, prefix, prefix+":"+passwordMask, 1)
}

// prettyPrint formats JSON for display
func prettyPrint(v interface{}) string {
	bytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(bytes)
}
