// Command protoc-gen-go-requests is the protoc/buf plugin form of
// generate-requests. Envelope names are passed as plugin parameters, e.g.
//
//	--go-requests_opt=client_envelope=ClientOriginatedMessage,server_envelope=ServerOriginatedMessage
//
// The generated code calls unexported runtime functions of package
// desktopapi, so the schema's go_package must be that package.
package main

import (
	"fmt"
	"path"

	"google.golang.org/protobuf/compiler/protogen"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/pluginpb"

	"github.com/zed-industries/desktop-api-bindings/internal/config"
	"github.com/zed-industries/desktop-api-bindings/internal/emit"
	"github.com/zed-industries/desktop-api-bindings/internal/ir"
)

func main() {
	env := config.DefaultEnvelope()
	protogen.Options{
		ParamFunc: func(name, value string) error {
			if config.ParseEnvelopeParam(&env, name, value) {
				return nil
			}
			return fmt.Errorf("unknown parameter %q", name)
		},
	}.Run(func(gen *protogen.Plugin) error {
		return generate(gen, env)
	})
}

// runtimePackage is the only go_package the generated code compiles in.
const runtimePackage protogen.GoImportPath = "github.com/zed-industries/desktop-api-bindings"

func generate(gen *protogen.Plugin, env config.Envelope) error {
	gen.SupportedFeatures = uint64(pluginpb.CodeGeneratorResponse_FEATURE_PROTO3_OPTIONAL)

	var first *protogen.File
	var files []protoreflect.FileDescriptor
	for _, f := range gen.Files {
		if !f.Generate {
			continue
		}
		if first == nil {
			first = f
		} else if f.GoImportPath != first.GoImportPath {
			return fmt.Errorf("%s: all files must share go_package %s", f.Desc.Path(), first.GoImportPath)
		}
		files = append(files, f.Desc)
	}
	if first == nil {
		return nil
	}
	if first.GoImportPath != runtimePackage {
		return fmt.Errorf("%s: go_package %s is not the runtime package %s", first.Desc.Path(), string(first.GoImportPath), string(runtimePackage))
	}
	schema, err := ir.Build(files, env)
	if err != nil {
		return err
	}
	dir := path.Dir(first.GeneratedFilenamePrefix)
	sink := emit.SinkFunc(func(name string, f *emit.File) error {
		g := gen.NewGeneratedFile(path.Join(dir, name), first.GoImportPath)
		return f.Render(g)
	})
	return emit.WriteAll(sink, string(first.GoPackageName), schema)
}
