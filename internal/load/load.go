// Package load reads the request schema into protobuf file descriptors,
// either by compiling .proto sources or from a serialized descriptor set.
package load

import (
	"context"
	"fmt"
	"os"

	"github.com/bufbuild/protocompile"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"
)

// CompileProto parses and links the named .proto files, resolving them and
// their imports against importPaths. Comments are retained so the
// generator can carry them into Go doc comments.
func CompileProto(ctx context.Context, importPaths []string, files ...string) ([]protoreflect.FileDescriptor, error) {
	return compile(ctx, &protocompile.SourceResolver{ImportPaths: importPaths}, files)
}

// CompileSources is CompileProto over in-memory sources keyed by file name.
func CompileSources(ctx context.Context, sources map[string]string, files ...string) ([]protoreflect.FileDescriptor, error) {
	return compile(ctx, &protocompile.SourceResolver{
		Accessor: protocompile.SourceAccessorFromMap(sources),
	}, files)
}

func compile(ctx context.Context, resolver protocompile.Resolver, files []string) ([]protoreflect.FileDescriptor, error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("compile schema: no files")
	}
	compiler := protocompile.Compiler{
		Resolver:       protocompile.WithStandardImports(resolver),
		SourceInfoMode: protocompile.SourceInfoStandard,
	}
	linked, err := compiler.Compile(ctx, files...)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	out := make([]protoreflect.FileDescriptor, 0, len(linked))
	for _, f := range linked {
		out = append(out, f)
	}
	return out, nil
}

// ReadDescriptorSet loads a binary FileDescriptorSet (as written by
// `protoc -o` or `buf build -o`). When files is empty every file in the set
// is returned; otherwise only the named ones, in the given order.
func ReadDescriptorSet(path string, files ...string) ([]protoreflect.FileDescriptor, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read descriptor set: %w", err)
	}
	var set descriptorpb.FileDescriptorSet
	if err := proto.Unmarshal(b, &set); err != nil {
		return nil, fmt.Errorf("parse descriptor set %s: %w", path, err)
	}
	return FromDescriptorSet(&set, files...)
}

// FromDescriptorSet links set and selects files the same way as
// ReadDescriptorSet.
func FromDescriptorSet(set *descriptorpb.FileDescriptorSet, files ...string) ([]protoreflect.FileDescriptor, error) {
	reg, err := protodesc.NewFiles(set)
	if err != nil {
		return nil, fmt.Errorf("link descriptor set: %w", err)
	}
	if len(files) == 0 {
		for _, f := range set.GetFile() {
			files = append(files, f.GetName())
		}
	}
	out := make([]protoreflect.FileDescriptor, 0, len(files))
	for _, name := range files {
		fd, err := reg.FindFileByPath(name)
		if err != nil {
			return nil, fmt.Errorf("descriptor set: %s: %w", name, err)
		}
		out = append(out, fd)
	}
	return out, nil
}

// DescriptorSet converts compiled files (and nothing they import) back into
// a FileDescriptorSet; handy for writing fixtures and for protoc pipelines.
func DescriptorSet(files []protoreflect.FileDescriptor) *descriptorpb.FileDescriptorSet {
	set := &descriptorpb.FileDescriptorSet{}
	for _, f := range files {
		set.File = append(set.File, protodesc.ToFileDescriptorProto(f))
	}
	return set
}
