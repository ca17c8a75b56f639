package main

import (
	"bytes"
	"runtime/debug"
	"strings"
	"testing"
)

func TestRootCmd_Version(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--version"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.HasPrefix(out.String(), "postboard ") || !strings.Contains(out.String(), "commit: ") {
		t.Fatalf("unexpected version output: %q", out.String())
	}
}

func TestRootCmd_RejectsArgsAndBadBackend(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "positional arg", args: []string{"extra"}, want: "unknown command"},
		{name: "unknown flag", args: []string{"--bogus"}, want: "unknown flag"},
		{name: "bad backend", args: []string{"--backend", "ftp://x"}, want: "only http and https"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("POSTBOARD_LOG", t.TempDir()+"/pb.log")
			cmd := newRootCmd()
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})
			cmd.SetArgs(tc.args)

			err := cmd.Execute()
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestResolveVersionInfo(t *testing.T) {
	settings := buildSettingsMap([]debug.BuildSetting{
		{Key: "vcs.revision", Value: "0123456789abcdef"},
		{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
	})

	v, c, d := resolveVersionInfo("dev", "none", "unknown", "v1.2.3", settings)
	if v != "v1.2.3" || c != "0123456789ab" || d != "2026-01-02T03:04:05Z" {
		t.Fatalf("unexpected resolved info: %s %s %s", v, c, d)
	}

	v, c, d = resolveVersionInfo("v9", "abc", "today", "(devel)", settings)
	if v != "v9" || c != "abc" || d != "today" {
		t.Fatalf("explicit ldflags values must win: %s %s %s", v, c, d)
	}

	v, _, _ = resolveVersionInfo("dev", "none", "unknown", "(devel)", nil)
	if v != "dev" {
		t.Fatalf("devel module version should be ignored, got %s", v)
	}
}
