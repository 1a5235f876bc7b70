// Command generate-requests reads the request schema and writes the typed
// bindings (messages, Send*Request methods, host dispatch, constants).
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"google.golang.org/protobuf/reflect/protoreflect"

	"github.com/zed-industries/desktop-api-bindings/internal/config"
	"github.com/zed-industries/desktop-api-bindings/internal/emit"
	"github.com/zed-industries/desktop-api-bindings/internal/ir"
	"github.com/zed-industries/desktop-api-bindings/internal/load"
	"github.com/zed-industries/desktop-api-bindings/internal/logging"
)

func main() {
	log := logging.New(logging.ProfileRuntime, os.Stderr)
	if err := run(context.Background(), os.Args[1:], os.Stderr, log); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Error().Err(err).Msg("generate-requests failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stderr io.Writer, log zerolog.Logger) error {
	fs := flag.NewFlagSet("generate-requests", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var configFlag, outFlag, descriptorFlag string
	fs.StringVar(&configFlag, "config", "", "path to requestgen.toml (defaults to <repo>/schema/requestgen.toml)")
	fs.StringVar(&outFlag, "out", "", "output directory for generated go files (overrides the config)")
	fs.StringVar(&descriptorFlag, "descriptor_set", "", "binary FileDescriptorSet to read instead of compiling .proto sources")
	if err := fs.Parse(args); err != nil {
		return err
	}

	configPath := configFlag
	if configPath == "" {
		configPath = filepath.Join(findRepoRoot(), "schema", "requestgen.toml")
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if outFlag != "" {
		cfg.Out = outFlag
	}
	if descriptorFlag != "" {
		cfg.DescriptorSet = descriptorFlag
	}
	log.Debug().Str("config", configPath).Strs("schema", cfg.Schema).Msg("loaded config")

	files, err := loadSchema(ctx, cfg)
	if err != nil {
		return err
	}
	schema, err := ir.Build(files, cfg.Envelope)
	if err != nil {
		return fmt.Errorf("invalid schema: %w", err)
	}
	if err := emit.WriteAll(emit.DirSink(cfg.Out), cfg.Package, schema); err != nil {
		return err
	}
	log.Info().
		Int("requests", len(schema.Requests)).
		Int("messages", len(schema.Messages)).
		Int("enums", len(schema.Enums)).
		Str("out", cfg.Out).
		Msg("generated request bindings")
	return nil
}

func loadSchema(ctx context.Context, cfg config.Config) ([]protoreflect.FileDescriptor, error) {
	if cfg.DescriptorSet != "" {
		return load.ReadDescriptorSet(cfg.DescriptorSet, cfg.Schema...)
	}
	return load.CompileProto(ctx, cfg.ImportPaths, cfg.Schema...)
}

func findRepoRoot() string {
	cwd, _ := os.Getwd()
	dir := cwd
	for i := 0; i < 10; i++ {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return cwd
}
