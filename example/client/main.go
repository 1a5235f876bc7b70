// Command client exercises every request kind against a desktop host. With
// no arguments it starts example/host as a child process and talks to it
// over stdio; -ws connects to a host started with -listen instead.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"

	"github.com/rs/zerolog"

	desktopapi "github.com/zed-industries/desktop-api-bindings"
	"github.com/zed-industries/desktop-api-bindings/internal/logging"
	"github.com/zed-industries/desktop-api-bindings/sampling"
)

func main() {
	wsURL := flag.String("ws", "", "websocket URL of a running host, e.g. ws://127.0.0.1:8080/ws")
	model := flag.String("model", "", "sample with this Anthropic model (needs ANTHROPIC_API_KEY) instead of the placeholder")
	flag.Parse()

	log := logging.New(logging.ProfileRuntime, os.Stderr)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var (
		t   desktopapi.Transport
		cmd *exec.Cmd
	)
	if *wsURL != "" {
		ws, err := desktopapi.DialWebSocket(ctx, *wsURL, nil)
		if err != nil {
			log.Fatal().Err(err).Str("url", *wsURL).Msg("dial host")
		}
		t = ws
	} else {
		_, filename, _, ok := runtime.Caller(0)
		if !ok {
			log.Fatal().Msg("failed to determine current file location")
		}
		hostPath := filepath.Join(filepath.Dir(filename), "..", "host")
		if _, err := os.Stat(hostPath); err != nil {
			log.Fatal().Err(err).Str("path", hostPath).Msg("failed to find host directory")
		}
		cmd = exec.CommandContext(ctx, "go", "run", hostPath)
		cmd.Stderr = os.Stderr
		stdin, _ := cmd.StdinPipe()
		stdout, _ := cmd.StdoutPipe()
		if err := cmd.Start(); err != nil {
			log.Fatal().Err(err).Msg("failed to start host")
		}
		t = desktopapi.NewStreamTransport(stdin, stdout)
	}

	client := desktopapi.NewClient(t, desktopapi.WithLogger(log))
	err := run(ctx, client, *model, log)
	_ = client.Close()
	if cmd != nil {
		_ = cmd.Wait()
	}
	if err != nil {
		var re *desktopapi.RequestError
		if errors.As(err, &re) {
			fmt.Fprintf(os.Stderr, "host rejected %s: %s\n", re.Kind, re.Message)
		} else {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, client *desktopapi.Client, model string, log zerolog.Logger) error {
	if err := client.SendWriteFileRequest(ctx, desktopapi.TextFile("notes/hello.txt", "Hello, desktop!\n")); err != nil {
		return err
	}
	if err := client.SendWriteFileRequest(ctx, &desktopapi.WriteFileRequest{Path: "notes/hello.txt", Text: desktopapi.Ptr("Second line\n"), Append: true}); err != nil {
		return err
	}
	file, err := client.SendReadFileRequest(ctx, &desktopapi.ReadFileRequest{Path: "notes/hello.txt"})
	if err != nil {
		return err
	}
	fmt.Printf("📄 notes/hello.txt:\n%s", file.GetText())

	update, err := desktopapi.NewUpdateSettingsPropertyRequest("theme", "dark")
	if err != nil {
		return err
	}
	if err := client.SendUpdateSettingsPropertyRequest(ctx, update); err != nil {
		return err
	}
	setting, err := client.SendGetSettingsPropertyRequest(ctx, desktopapi.NewGetSettingsPropertyRequest("theme"))
	if err != nil {
		return err
	}
	var theme string
	if err := setting.Decode(&theme); err != nil {
		return err
	}
	fmt.Printf("🎨 theme = %s (default: %t)\n", theme, setting.GetIsDefault())

	pos, err := client.SendPositionWindowRequest(ctx, &desktopapi.PositionWindowRequest{
		Anchor: &desktopapi.Point{X: 200, Y: 900},
		Size:   &desktopapi.Size{Width: 400, Height: 300},
		DryRun: desktopapi.Ptr(true),
	})
	if err != nil {
		return err
	}
	fmt.Printf("🪟 window above anchor: %t, clipped: %t\n", pos.GetIsAbove(), pos.GetIsClipped())

	var sampler sampling.Sampler = sampling.PlaceholderSampler{}
	if model != "" {
		sampler = sampling.NewAnthropicSampler(model)
	}
	h := &sampling.Handler{
		Approver: sampling.NewApprover(client, sampling.NewTrustStore(), log),
		Sampler:  sampler,
		Log:      log,
	}
	for _, prompt := range []string{"Summarize today's notes.", "Write something harmful."} {
		params, err := json.Marshal(sampling.CreateMessageRequest{
			Messages:  []sampling.Message{{Role: "user", Content: sampling.TextContent(prompt)}},
			MaxTokens: desktopapi.Ptr(uint32(256)),
		})
		if err != nil {
			return err
		}
		out, rpcErr := h.HandleCreateMessage(ctx, "example-server", params)
		if rpcErr != nil {
			fmt.Printf("🚫 %q: %s\n", prompt, rpcErr.Message)
			continue
		}
		fmt.Printf("🤖 %q: %s\n", prompt, out.Content.Text)
	}
	return nil
}
