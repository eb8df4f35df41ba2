package types

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not_exists.yaml")
	// The config file not exists, will use default config
	t.Setenv("JUDGE_CONFIG_PATH", path)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatal(err)
	}

	expect := newDefaultConfig(path)

	if !reflect.DeepEqual(cfg, expect) {
		t.Fatalf("Unexpect config %+v, expect %+v", cfg, expect)
	}
	if cfg.Limits.MaxPath != 4096 || cfg.Limits.MaxName != 1024 {
		t.Fatalf("Unexpect default limits %+v", cfg.Limits)
	}
}

const testConfigYaml = `
tree: true
color: true
debug: true
limits:
  maxPath: 512
`

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	t.Setenv("JUDGE_CONFIG_PATH", path)

	err := os.WriteFile(path, []byte(testConfigYaml), 0644)
	if err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatal(err)
	}

	expect := &Config{
		Path: path,

		Tree:  true,
		Color: true,
		Debug: true,

		Limits: &LimitsConfig{
			MaxPath: 512,
			MaxName: 1024,
		},
	}

	if !reflect.DeepEqual(cfg, expect) {
		t.Fatalf("Unexpect config %+v, expect %+v", cfg, expect)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	cases := []struct {
		yaml   string
		expect string
	}{
		{"limits:\n  maxPath: -1\n", "invalid limits.maxPath"},
		{"limits:\n  maxName: 2000000\n", "invalid limits.maxName"},
		{"unknown: 1\n", "decode config yaml file"},
	}

	dir := t.TempDir()
	for i, c := range cases {
		path := filepath.Join(dir, "config.yaml")
		err := os.WriteFile(path, []byte(c.yaml), 0644)
		if err != nil {
			t.Fatal(err)
		}
		t.Setenv("JUDGE_CONFIG_PATH", path)

		_, err = LoadConfig()
		if err == nil {
			t.Fatalf("Case %d: expect error", i)
		}
		if !strings.Contains(err.Error(), c.expect) {
			t.Fatalf("Case %d: unexpect error %q, expect %q", i, err.Error(), c.expect)
		}
	}
}

func TestPathError(t *testing.T) {
	err := NewPathError(ErrDirectoryOpen, "/no/such/dir", os.ErrNotExist)
	if !errors.Is(err, ErrDirectoryOpen) {
		t.Fatal("PathError should match its kind")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatal("PathError should match the os error")
	}
	if errors.Is(err, ErrDirectoryRead) {
		t.Fatal("PathError should not match other kinds")
	}
	expect := "could not open directory: /no/such/dir: file does not exist"
	if err.Error() != expect {
		t.Fatalf("Unexpect message %q, expect %q", err.Error(), expect)
	}

	err = NewPathError(ErrPathTooLong, "a/b", nil)
	if err.Error() != "path too long: a/b" {
		t.Fatalf("Unexpect message %q", err.Error())
	}
}

func TestKindOf(t *testing.T) {
	cases := []struct {
		mode   os.FileMode
		expect Kind
	}{
		{os.ModeDir, KindDirectory},
		{os.ModeDir | 0755, KindDirectory},
		{0, KindFile},
		{os.ModeSymlink, KindFile},
		{os.ModeSocket, KindFile},
		{os.ModeNamedPipe, KindFile},
		{os.ModeDevice | os.ModeCharDevice, KindFile},
	}
	for _, c := range cases {
		kind := KindOf(c.mode)
		if kind != c.expect {
			t.Fatalf("Unexpect kind %v for mode %v, expect %v", kind, c.mode, c.expect)
		}
	}
}

func TestLoadConfigEmpty(t *testing.T) {
	dir := t.TempDir()
	for i, content := range []string{"", "# just a comment\n", "\n\n"} {
		path := filepath.Join(dir, fmt.Sprintf("config-%d.yaml", i))
		err := os.WriteFile(path, []byte(content), 0644)
		if err != nil {
			t.Fatal(err)
		}
		t.Setenv("JUDGE_CONFIG_PATH", path)

		cfg, err := LoadConfig()
		if err != nil {
			t.Fatalf("Case %d: %v", i, err)
		}

		expect := newDefaultConfig(path)
		if !reflect.DeepEqual(cfg, expect) {
			t.Fatalf("Case %d: unexpect config %+v, expect %+v", i, cfg, expect)
		}
	}
}
