package collect

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/publicsuffix"
)

// SiteLabel extracts the bare registrable-domain label used to name capture
// directories: www.example.co.uk -> example. Hosts the public suffix list
// cannot place (IP addresses, localhost) fall back to the hostname itself.
func SiteLabel(rawurl string) (string, error) {
	u, err := url.Parse(rawurl)
	if err != nil {
		return "", fmt.Errorf("parse url: %w", err)
	}
	host := u.Hostname()
	if host == "" {
		return "", fmt.Errorf("url %q has no host", rawurl)
	}

	etld1, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return host, nil
	}
	suffix, _ := publicsuffix.PublicSuffix(etld1)
	return strings.TrimSuffix(etld1, "."+suffix), nil
}

// OutDirName derives the capture directory name for a target at a moment,
// e.g. example_220523_143005.
func OutDirName(label string, at time.Time) string {
	return label + "_" + at.Format("020106_150405")
}
