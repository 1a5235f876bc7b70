package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	desktopapi "github.com/zed-industries/desktop-api-bindings"
	"github.com/zed-industries/desktop-api-bindings/sampling"
)

// exampleHost answers desktop requests from memory and a sandbox directory.
type exampleHost struct {
	policy *sampling.Policy
	root   string
	screen desktopapi.Size
	log    zerolog.Logger

	mu       sync.Mutex
	settings map[string]json.RawMessage
	defaults map[string]json.RawMessage
}

var _ desktopapi.Handler = (*exampleHost)(nil)

func newExampleHost(root string, log zerolog.Logger) *exampleHost {
	policy := sampling.DefaultPolicy()
	policy.Log = log
	return &exampleHost{
		policy:   policy,
		root:     root,
		screen:   desktopapi.Size{Width: 1920, Height: 1080},
		log:      log,
		settings: map[string]json.RawMessage{},
		defaults: map[string]json.RawMessage{
			"theme":     json.RawMessage(`"system"`),
			"font_size": json.RawMessage(`14`),
		},
	}
}

func (h *exampleHost) SamplingApproval(ctx context.Context, req *desktopapi.SamplingApprovalRequest) (*desktopapi.SamplingApprovalResponse, error) {
	return h.policy.SamplingApproval(ctx, req)
}

func (h *exampleHost) GetSettingsProperty(ctx context.Context, req *desktopapi.GetSettingsPropertyRequest) (*desktopapi.GetSettingsPropertyResponse, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if req.Key == nil {
		doc := map[string]json.RawMessage{}
		for k, v := range h.defaults {
			doc[k] = v
		}
		for k, v := range h.settings {
			doc[k] = v
		}
		b, err := json.Marshal(doc)
		if err != nil {
			return nil, err
		}
		return &desktopapi.GetSettingsPropertyResponse{JsonBlob: desktopapi.Ptr(string(b)), IsDefault: desktopapi.Ptr(len(h.settings) == 0)}, nil
	}
	if v, ok := h.settings[*req.Key]; ok {
		return &desktopapi.GetSettingsPropertyResponse{JsonBlob: desktopapi.Ptr(string(v)), IsDefault: desktopapi.Ptr(false)}, nil
	}
	if v, ok := h.defaults[*req.Key]; ok {
		return &desktopapi.GetSettingsPropertyResponse{JsonBlob: desktopapi.Ptr(string(v)), IsDefault: desktopapi.Ptr(true)}, nil
	}
	return &desktopapi.GetSettingsPropertyResponse{}, nil
}

func (h *exampleHost) UpdateSettingsProperty(ctx context.Context, req *desktopapi.UpdateSettingsPropertyRequest) error {
	if req.Key == nil || *req.Key == "" {
		return errors.New("settings key is required")
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if req.Value == nil {
		delete(h.settings, *req.Key)
		h.log.Info().Str("key", *req.Key).Msg("setting cleared")
		return nil
	}
	if !json.Valid([]byte(*req.Value)) {
		return fmt.Errorf("value for %q is not valid JSON", *req.Key)
	}
	h.settings[*req.Key] = json.RawMessage(*req.Value)
	h.log.Info().Str("key", *req.Key).Msg("setting updated")
	return nil
}

// resolve maps a request path into the sandbox root.
func (h *exampleHost) resolve(p string) (string, error) {
	if p == "" {
		return "", errors.New("path is required")
	}
	full := filepath.Join(h.root, filepath.FromSlash(strings.TrimPrefix(p, "/")))
	rel, err := filepath.Rel(h.root, full)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("path %s escapes the host root", p)
	}
	return full, nil
}

func (h *exampleHost) ReadFile(ctx context.Context, req *desktopapi.ReadFileRequest) (*desktopapi.ReadFileResponse, error) {
	path, err := h.resolve(req.Path)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", req.Path, err)
	}
	h.log.Info().Str("path", req.Path).Int("bytes", len(b)).Msg("file read")
	if req.IsBinaryFile {
		return &desktopapi.ReadFileResponse{Data: b}, nil
	}
	return &desktopapi.ReadFileResponse{Text: desktopapi.Ptr(string(b))}, nil
}

func (h *exampleHost) WriteFile(ctx context.Context, req *desktopapi.WriteFileRequest) error {
	path, err := h.resolve(req.Path)
	if err != nil {
		return err
	}
	data := req.Data
	if req.Text != nil {
		data = []byte(*req.Text)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir for %s: %w", req.Path, err)
	}
	flags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	if req.Append {
		flags = os.O_CREATE | os.O_WRONLY | os.O_APPEND
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", req.Path, err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", req.Path, err)
	}
	h.log.Info().Str("path", req.Path).Int("bytes", len(data)).Bool("append", req.Append).Msg("file written")
	return f.Close()
}

// PositionWindow places the window below the anchor, or above it when it
// would run off the bottom of the screen.
func (h *exampleHost) PositionWindow(ctx context.Context, req *desktopapi.PositionWindowRequest) (*desktopapi.PositionWindowResponse, error) {
	anchor, size := req.GetAnchor(), req.GetSize()
	if anchor == nil || size == nil {
		return nil, errors.New("anchor and size are required")
	}
	if size.Width <= 0 || size.Height <= 0 {
		return nil, fmt.Errorf("invalid window size %gx%g", size.Width, size.Height)
	}
	below := anchor.Y+size.Height <= h.screen.Height
	above := !below && anchor.Y-size.Height >= 0
	clipped := (!below && !above) || anchor.X < 0 || anchor.X+size.Width > h.screen.Width
	if !req.GetDryRun() {
		h.log.Info().
			Float32("x", anchor.X).Float32("y", anchor.Y).
			Float32("width", size.Width).Float32("height", size.Height).
			Bool("above", above).Msg("window positioned")
	}
	return &desktopapi.PositionWindowResponse{IsAbove: desktopapi.Ptr(above), IsClipped: desktopapi.Ptr(clipped)}, nil
}
