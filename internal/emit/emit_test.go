package emit

import (
	"bytes"
	"context"
	"go/format"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zed-industries/desktop-api-bindings/internal/config"
	"github.com/zed-industries/desktop-api-bindings/internal/ir"
	"github.com/zed-industries/desktop-api-bindings/internal/load"
)

// render runs WriteAll and returns the formatted source of each file.
func render(t *testing.T, s *ir.Schema) map[string]string {
	t.Helper()
	out := map[string]string{}
	err := WriteAll(SinkFunc(func(name string, f *File) error {
		var buf bytes.Buffer
		if err := f.Render(&buf); err != nil {
			return err
		}
		out[name] = buf.String()
		return nil
	}), "desktopapi", s)
	require.NoError(t, err)
	return out
}

func desktopSchema(t *testing.T) *ir.Schema {
	t.Helper()
	files, err := load.CompileProto(context.Background(), []string{filepath.Join("..", "..", "schema")}, "desktop.proto")
	require.NoError(t, err)
	s, err := ir.Build(files, config.DefaultEnvelope())
	require.NoError(t, err)
	return s
}

// The committed bindings at the repository root must match what
// go generate would write from the checked-in config.
func TestCommittedBindingsAreCurrent(t *testing.T) {
	cfg, err := config.Load(filepath.Join("..", "..", "schema", "requestgen.toml"))
	require.NoError(t, err)
	files, err := load.CompileProto(context.Background(), cfg.ImportPaths, cfg.Schema...)
	require.NoError(t, err)
	s, err := ir.Build(files, cfg.Envelope)
	require.NoError(t, err)

	got := map[string][]byte{}
	require.NoError(t, WriteAll(SinkFunc(func(name string, f *File) error {
		var buf bytes.Buffer
		if err := f.Render(&buf); err != nil {
			return err
		}
		got[name] = buf.Bytes()
		return nil
	}), cfg.Package, s))

	for _, name := range []string{MessagesFile, RequestsFile, DispatchFile, ConstantsFile} {
		t.Run(name, func(t *testing.T) {
			committed, err := os.ReadFile(filepath.Join(cfg.Out, name))
			require.NoError(t, err)
			want, err := format.Source(committed)
			require.NoError(t, err)
			rendered, err := format.Source(got[name])
			require.NoError(t, err)
			assert.Equal(t, string(want), string(rendered), "%s is stale; run go generate ./...", name)
		})
	}
}

func TestWriteAllDesktopSchema(t *testing.T) {
	out := render(t, desktopSchema(t))
	require.Len(t, out, 4)
	for name, src := range out {
		assert.True(t, strings.HasPrefix(src, "// "+Header+"\n"), name)
		assert.Contains(t, src, "package desktopapi", name)
	}

	requests := out[RequestsFile]
	assert.Equal(t, 6, strings.Count(requests, "func (c *Client) Send"))
	assert.Contains(t, requests, "func (c *Client) SendSamplingApprovalRequest(ctx context.Context, req *SamplingApprovalRequest) (*SamplingApprovalResponse, error) {")
	assert.Contains(t, requests, "func (c *Client) SendWriteFileRequest(ctx context.Context, req *WriteFileRequest) error {")
	assert.Contains(t, requests, "return c.sendRequest(ctx, KindWriteFile, req, envelope.Success, nil)")
	assert.Contains(t, requests, "c.sendRequest(ctx, KindReadFile, req, responseReadFile, resp)")
	assert.Contains(t, requests, "// Move or resize the companion window.")

	dispatch := out[DispatchFile]
	assert.Contains(t, dispatch, "type Handler interface {")
	assert.Contains(t, dispatch, "UpdateSettingsProperty(context.Context, *UpdateSettingsPropertyRequest) error")
	assert.Contains(t, dispatch, "PositionWindow(context.Context, *PositionWindowRequest) (*PositionWindowResponse, error)")
	assert.Equal(t, 6, strings.Count(dispatch, "func (UnimplementedHandler) "))
	assert.Equal(t, 6, strings.Count(dispatch, "\tcase Kind"))
	assert.Contains(t, dispatch, "return 0, nil, unknownKindError(kind)")

	constants := out[ConstantsFile]
	assert.Regexp(t, `KindSamplingApproval\s+RequestKind = 100`, constants)
	assert.Regexp(t, `KindPositionWindow\s+RequestKind = 105`, constants)
	assert.Regexp(t, `responseReadFile\s+protowire.Number = 103`, constants)
	assert.NotContains(t, constants, "responseWriteFile")
	assert.Regexp(t, `Success:\s+3,`, constants)

	messages := out[MessagesFile]
	assert.Contains(t, messages, "type IncludeContext int32")
	assert.Regexp(t, `IncludeContextThisServer\s+IncludeContext = 2`, messages)
	assert.Contains(t, messages, "func (x IncludeContext) String() string {")
	assert.Contains(t, messages, "func (m *SamplingApprovalRequest) GetMaxTokens() uint32 {")
	assert.Contains(t, messages, "func (m *PositionWindowRequest) GetAnchor() *Point {")
	assert.Contains(t, messages, "`json:\"requestId,omitempty\"`")
	assert.Contains(t, messages, "Hints                []*ModelHint")
	assert.Contains(t, messages, "consumeVarint[uint32](typ, b, m.MaxTokens)")
	assert.Contains(t, messages, "return consumeRepeated(typ, b, &m.StopSequences, protowire.BytesType, consumeString)")
	assert.NotContains(t, messages, "ClientOriginatedMessage")
}

const allKinds = `syntax = "proto3";
package kinds;

message C {
  optional int64 id = 1;
  oneof submessage { EverythingRequest everything = 10; }
}

message S {
  optional int64 id = 1;
  oneof submessage { string error = 2; bool success = 3; }
}

enum Color {
  COLOR_UNSPECIFIED = 0;
  COLOR_RED = 1;
}

message Leaf { string v = 1; }

message EverythingRequest {
  int32 i32 = 1;
  int64 i64 = 2;
  uint32 u32 = 3;
  uint64 u64 = 4;
  sint32 s32 = 5;
  sint64 s64 = 6;
  fixed32 f32 = 7;
  fixed64 f64 = 8;
  sfixed32 sf32 = 9;
  sfixed64 sf64 = 10;
  bool flag = 11;
  float fl = 12;
  double db = 13;
  string str = 14;
  bytes raw = 15;
  Color color = 16;
  Leaf leaf = 17;

  repeated int32 r_i32 = 21;
  repeated sint64 r_s64 = 22;
  repeated fixed32 r_f32 = 23;
  repeated sfixed64 r_sf64 = 24;
  repeated bool r_flag = 25;
  repeated float r_fl = 26;
  repeated double r_db = 27;
  repeated string r_str = 28;
  repeated bytes r_raw = 29;
  repeated Color r_color = 30;
  repeated Leaf r_leaf = 31;

  optional int32 o_i32 = 41;
  optional sint32 o_s32 = 42;
  optional bool o_flag = 43;
  optional double o_db = 44;
  optional string o_str = 45;
  optional bytes o_raw = 46;
  optional Color o_color = 47;
}
`

func TestWriteAllEveryFieldShape(t *testing.T) {
	files, err := load.CompileSources(context.Background(), map[string]string{"kinds.proto": allKinds}, "kinds.proto")
	require.NoError(t, err)
	env := config.DefaultEnvelope()
	env.Client, env.Server = "C", "S"
	s, err := ir.Build(files, env)
	require.NoError(t, err)

	// Render formats the source, so a syntax error fails here.
	out := render(t, s)
	messages := out[MessagesFile]

	for _, want := range []string{
		"I32    int32",
		"S64    int64",
		"Raw    []byte",
		"RRaw   [][]byte",
		"RLeaf  []*Leaf",
		"OI32   *int32",
		"ORaw   []byte",
		"OColor *Color",
		"b = appendZigZag(b, 6, m.S64)",
		"b = appendFixed32(b, 9, m.Sf32)",
		"b = appendPackedVarint(b, 21, m.RI32)",
		"b = appendPackedZigZag(b, 22, m.RS64)",
		"b = appendPackedBool(b, 25, m.RFlag)",
		"b = appendPackedVarint(b, 30, m.RColor)",
		"if m.ORaw != nil {",
		"if len(m.Raw) > 0 {",
		"if m.Flag {",
		`if m.Str != "" {`,
		"return consumeFixed64[int64](typ, b, &m.Sf64)",
		"m.RLeaf = append(m.RLeaf, v)",
		"return consumeRepeated(typ, b, &m.RF32, protowire.Fixed32Type, consumeFixed32[uint32])",
		"func (m *EverythingRequest) GetORaw() []byte {",
		"func (m *EverythingRequest) GetOColor() Color {",
	} {
		assert.Contains(t, messages, want)
	}
	assert.NotContains(t, messages, "func (m *EverythingRequest) GetRaw()")
}

func TestDirSinkWritesFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	require.NoError(t, WriteAll(DirSink(dir), "desktopapi", desktopSchema(t)))

	for _, name := range []string{MessagesFile, RequestsFile, DispatchFile, ConstantsFile} {
		b, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.True(t, bytes.HasPrefix(b, []byte("// "+Header)), name)
	}
}
