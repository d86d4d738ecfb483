// Package repourl parses git remote URLs and maps them to AppVeyor repository identities.
package repourl

import (
	"net"
	"net/url"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"github.com/m-mizutani/appveyor-status/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// ParsedURL is a remote URL in generic form. Helper names the git remote helper when the URL had a
// "<helper>::" prefix.
type ParsedURL struct {
	url.URL
	Helper string
}

var (
	ptnHelper    = regexp.MustCompile(`^([A-Za-z0-9][A-Za-z0-9+.-]*)::(.+)$`)
	ptnHasScheme = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.-]*://`)
	ptnSCP       = regexp.MustCompile(`^([^@/\[]+@)?(\[[^\]/]+\]|[^:/\[\]]+):(.*)$`)
	ptnDrive     = regexp.MustCompile(`^[A-Za-z]:`)
)

func hasDrivePrefix(s string) bool {
	return runtime.GOOS == "windows" && ptnDrive.MatchString(s)
}

// IsLocalNotSSH reports whether git would treat s as a local path rather than an SCP-like or
// scheme-qualified URL: it has no colon, a slash comes before the first colon, or it starts with
// a drive letter on Windows.
func IsLocalNotSSH(s string) bool {
	colon := strings.IndexByte(s, ':')
	if colon < 0 {
		return true
	}
	slash := strings.IndexByte(s, '/')
	if slash >= 0 && slash < colon {
		return true
	}
	return hasDrivePrefix(s)
}

// ParseGitURL decomposes a git remote URL. Local paths become file URLs of their absolute path,
// SCP-like "user@host:path" becomes "ssh://user@host/path".
func ParseGitURL(raw string) (*ParsedURL, error) {
	if raw == "" {
		return nil, goerr.New("empty git URL", goerr.T(types.ErrTagConfiguration))
	}

	if IsLocalNotSSH(raw) {
		abs, err := filepath.Abs(raw)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to resolve local repository path",
				goerr.V("path", raw),
				goerr.T(types.ErrTagConfiguration),
			)
		}
		path := filepath.ToSlash(abs)
		if !strings.HasPrefix(path, "/") {
			path = "/" + path
		}
		return &ParsedURL{URL: url.URL{Scheme: "file", Path: path}}, nil
	}

	var helper string
	rest := raw
	if m := ptnHelper.FindStringSubmatch(raw); m != nil {
		helper, rest = m[1], m[2]
	}

	if !ptnHasScheme.MatchString(rest) {
		if m := ptnSCP.FindStringSubmatch(rest); m != nil {
			rest = scpToSSH(m[1], m[2], m[3])
		}
	}

	parsed, err := url.Parse(rest)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse git URL",
			goerr.V("url", raw),
			goerr.T(types.ErrTagConfiguration),
		)
	}

	return &ParsedURL{URL: *parsed, Helper: helper}, nil
}

func scpToSSH(user, host, path string) string {
	if strings.HasPrefix(host, "[") {
		inner := strings.TrimSuffix(strings.TrimPrefix(host, "["), "]")
		// "[user@host:port]:path"
		if at := strings.LastIndexByte(inner, '@'); at >= 0 && user == "" {
			user, inner = inner[:at+1], inner[at+1:]
		}
		// brackets around anything but an IP literal only separate host:port from the path
		if net.ParseIP(inner) == nil {
			host = inner
		} else {
			host = "[" + inner + "]"
		}
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return "ssh://" + user + host + path
}
