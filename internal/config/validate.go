package config

import (
	"fmt"
	"strings"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate trims string settings and checks them.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	out := cfg
	var res Validation

	out.App.Addr = strings.TrimSpace(out.App.Addr)
	out.App.DataDir = strings.TrimSpace(out.App.DataDir)
	out.App.LogLevel = strings.ToLower(strings.TrimSpace(out.App.LogLevel))
	out.Catalog.SeedFile = strings.TrimSpace(out.Catalog.SeedFile)
	out.Catalog.AssetsDir = strings.TrimSpace(out.Catalog.AssetsDir)

	if out.App.Addr == "" {
		res.addErr("app.addr is required")
	} else if !validAddr(out.App.Addr) {
		res.addErr("app.addr must be host:port, got %q", out.App.Addr)
	} else if !strings.HasPrefix(out.App.Addr, "127.0.0.1:") && !strings.HasPrefix(out.App.Addr, "localhost:") && !strings.HasPrefix(out.App.Addr, "[::1]:") {
		res.addWarn("app.addr %q is not loopback; the session is visible to anyone who can reach it.", out.App.Addr)
	}

	if out.App.DataDir == "" {
		res.addErr("app.data_dir is required")
	}
	if _, ok := ParseLevel(out.App.LogLevel); !ok {
		res.addErr("app.log_level must be one of debug, info, warn, error")
	}

	if out.Limits.SubmitPerSecond < 0 {
		res.addErr("limits.submit_per_second must be >= 0")
	} else if out.Limits.SubmitPerSecond == 0 {
		res.addWarn("limits.submit_per_second is 0; submissions are not rate limited.")
	}
	if out.Limits.SubmitBurst < 0 {
		res.addErr("limits.submit_burst must be >= 0")
	}

	if out.Catalog.AssetsDir == "" {
		res.addWarn("catalog.assets_dir is empty; postings will have no logos.")
	}

	return out, res
}
