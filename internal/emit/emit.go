// Package emit renders the generator model into Go source with jennifer.
package emit

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/zed-industries/desktop-api-bindings/internal/ir"
)

// Generated file names, relative to the output directory.
const (
	MessagesFile  = "messages_gen.go"
	RequestsFile  = "requests_gen.go"
	DispatchFile  = "dispatch_gen.go"
	ConstantsFile = "constants_gen.go"
)

// Header is the first line of every generated file.
const Header = "Code generated by generate-requests. DO NOT EDIT."

// Sink receives rendered files.
type Sink interface {
	Write(name string, f *File) error
}

// DirSink saves files into a directory on disk.
type DirSink string

func (d DirSink) Write(name string, f *File) error {
	if err := os.MkdirAll(string(d), 0o755); err != nil {
		return err
	}
	path := filepath.Join(string(d), name)
	if err := f.Save(path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(name string, f *File) error

func (fn SinkFunc) Write(name string, f *File) error { return fn(name, f) }

func newFile(pkg string) *File {
	f := NewFile(pkg)
	f.HeaderComment(Header)
	f.ImportName(protowirePkg, "protowire")
	return f
}

// WriteAll renders every generated file for s into sink.
func WriteAll(sink Sink, pkg string, s *ir.Schema) error {
	writers := []func(Sink, string, *ir.Schema) error{
		WriteConstantsJen,
		WriteMessagesJen,
		WriteRequestsJen,
		WriteDispatchJen,
	}
	for _, w := range writers {
		if err := w(sink, pkg, s); err != nil {
			return err
		}
	}
	return nil
}
