package version

import (
	"encoding/json"
	"runtime"
	"strings"
	"testing"
)

func TestGetVersionInfoLdflags(t *testing.T) {
	old := [4]string{Version, Branch, Revision, BuiltAt}
	t.Cleanup(func() { Version, Branch, Revision, BuiltAt = old[0], old[1], old[2], old[3] })

	Version, Branch, Revision, BuiltAt = "1.2.3", "main", "abc1234", "2026-01-02"
	info := GetVersionInfo()
	if info.Version != "1.2.3" || info.Branch != "main" || info.Revision != "abc1234" || info.BuiltAt != "2026-01-02" {
		t.Errorf("info = %+v", info)
	}
	if info.GoVersion != runtime.Version() {
		t.Errorf("GoVersion = %q", info.GoVersion)
	}
}

func TestInfoFormats(t *testing.T) {
	info := Info{Version: "1.0.0", Branch: "main", Revision: "abc", BuiltAt: "now", GoVersion: "go1.24"}
	if !strings.Contains(info.String(), "Version: 1.0.0") {
		t.Errorf("String() = %q", info.String())
	}
	s, err := info.JSON()
	if err != nil {
		t.Fatal(err)
	}
	var back Info
	if err := json.Unmarshal([]byte(s), &back); err != nil || back != info {
		t.Errorf("JSON() = %s, err = %v", s, err)
	}
}
