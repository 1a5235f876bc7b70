// Package config loads the generate-requests TOML configuration.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Envelope names the two wrapper messages and the fields the runtime relies on.
type Envelope struct {
	Client       string
	Server       string
	IDField      string
	Oneof        string
	ErrorField   string
	SuccessField string
}

// Config is the resolved generator configuration. Paths are absolute or
// relative to the process working directory once loaded.
type Config struct {
	Schema        []string
	ImportPaths   []string
	DescriptorSet string
	Package       string
	Out           string
	Envelope      Envelope
}

// requestgen.toml key mapping.
type fileConfig struct {
	Schema        []string `toml:"schema"`
	ImportPaths   []string `toml:"import_paths"`
	DescriptorSet string   `toml:"descriptor_set"`
	Package       string   `toml:"package"`
	Out           string   `toml:"out"`
	Envelope      struct {
		Client       string `toml:"client"`
		Server       string `toml:"server"`
		IDField      string `toml:"id_field"`
		Oneof        string `toml:"oneof"`
		ErrorField   string `toml:"error_field"`
		SuccessField string `toml:"success_field"`
	} `toml:"envelope"`
}

// DefaultEnvelope matches the desktop schema's envelope conventions.
func DefaultEnvelope() Envelope {
	return Envelope{
		Client:       "ClientOriginatedMessage",
		Server:       "ServerOriginatedMessage",
		IDField:      "id",
		Oneof:        "submessage",
		ErrorField:   "error",
		SuccessField: "success",
	}
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		ImportPaths: []string{"."},
		Package:     "desktopapi",
		Out:         ".",
		Envelope:    DefaultEnvelope(),
	}
}

// Load reads path and overlays its keys on Default. Relative paths in the
// file are resolved against the file's directory.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load requestgen config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load requestgen config: unknown key %q", undecoded[0].String())
	}

	base := filepath.Dir(path)
	resolve := func(p string) string {
		p = strings.TrimSpace(p)
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(base, p)
	}

	if meta.IsDefined("schema") {
		cfg.Schema = cfg.Schema[:0]
		for _, s := range raw.Schema {
			cfg.Schema = append(cfg.Schema, strings.TrimSpace(s))
		}
	}
	if meta.IsDefined("import_paths") {
		cfg.ImportPaths = cfg.ImportPaths[:0]
		for _, p := range raw.ImportPaths {
			cfg.ImportPaths = append(cfg.ImportPaths, resolve(p))
		}
	} else {
		cfg.ImportPaths = []string{base}
	}
	if meta.IsDefined("descriptor_set") {
		cfg.DescriptorSet = resolve(raw.DescriptorSet)
	}
	if meta.IsDefined("package") {
		cfg.Package = strings.TrimSpace(raw.Package)
	}
	if meta.IsDefined("out") {
		cfg.Out = resolve(raw.Out)
	} else {
		cfg.Out = base
	}
	if meta.IsDefined("envelope", "client") {
		cfg.Envelope.Client = strings.TrimSpace(raw.Envelope.Client)
	}
	if meta.IsDefined("envelope", "server") {
		cfg.Envelope.Server = strings.TrimSpace(raw.Envelope.Server)
	}
	if meta.IsDefined("envelope", "id_field") {
		cfg.Envelope.IDField = strings.TrimSpace(raw.Envelope.IDField)
	}
	if meta.IsDefined("envelope", "oneof") {
		cfg.Envelope.Oneof = strings.TrimSpace(raw.Envelope.Oneof)
	}
	if meta.IsDefined("envelope", "error_field") {
		cfg.Envelope.ErrorField = strings.TrimSpace(raw.Envelope.ErrorField)
	}
	if meta.IsDefined("envelope", "success_field") {
		cfg.Envelope.SuccessField = strings.TrimSpace(raw.Envelope.SuccessField)
	}

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first missing or inconsistent setting.
func Validate(cfg Config) error {
	if len(cfg.Schema) == 0 && cfg.DescriptorSet == "" {
		return fmt.Errorf("requestgen config: schema or descriptor_set is required")
	}
	for i, s := range cfg.Schema {
		if s == "" {
			return fmt.Errorf("requestgen config: schema[%d] is empty", i)
		}
	}
	if !isIdent(cfg.Package) {
		return fmt.Errorf("requestgen config: package %q is not a Go identifier", cfg.Package)
	}
	if strings.TrimSpace(cfg.Out) == "" {
		return fmt.Errorf("requestgen config: out is required")
	}
	if err := ValidateEnvelope(cfg.Envelope); err != nil {
		return fmt.Errorf("requestgen config: %w", err)
	}
	return nil
}

// ValidateEnvelope checks that every envelope name is set.
func ValidateEnvelope(env Envelope) error {
	checks := []struct{ key, val string }{
		{"envelope.client", env.Client},
		{"envelope.server", env.Server},
		{"envelope.id_field", env.IDField},
		{"envelope.oneof", env.Oneof},
		{"envelope.error_field", env.ErrorField},
	}
	for _, c := range checks {
		if strings.TrimSpace(c.val) == "" {
			return fmt.Errorf("%s is required", c.key)
		}
	}
	if env.Client == env.Server {
		return fmt.Errorf("envelope.client and envelope.server must differ")
	}
	return nil
}

// ParseEnvelopeParam applies one protoc plugin parameter (key=value) to env.
// It reports false for keys it does not own.
func ParseEnvelopeParam(env *Envelope, key, value string) bool {
	switch key {
	case "client_envelope":
		env.Client = value
	case "server_envelope":
		env.Server = value
	case "id_field":
		env.IDField = value
	case "oneof":
		env.Oneof = value
	case "error_field":
		env.ErrorField = value
	case "success_field":
		env.SuccessField = value
	default:
		return false
	}
	return true
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}
