// Package ir turns protobuf descriptors into the small model the emitters
// work from: payload messages, enums, and request kinds paired with their
// response kinds through the client/server envelopes.
package ir

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"
	"google.golang.org/protobuf/reflect/protoreflect"

	"github.com/zed-industries/desktop-api-bindings/internal/config"
	"github.com/zed-industries/desktop-api-bindings/internal/util"
)

// Kind groups proto field kinds by how they are encoded on the wire.
type Kind int

const (
	KindUnknown Kind = iota
	KindVarint       // int32, int64, uint32, uint64
	KindZigZag       // sint32, sint64
	KindBool
	KindFixed32 // fixed32, sfixed32
	KindFloat
	KindFixed64 // fixed64, sfixed64
	KindDouble
	KindString
	KindBytes
	KindEnum
	KindMessage
)

// Field is one payload field.
type Field struct {
	Name     string // proto name, e.g. "request_id"
	GoName   string // e.g. "RequestId"
	JSONName string // e.g. "requestId"
	Number   int32
	Kind     Kind
	GoType   string // element Go type: "int32", "[]byte", or a generated type name
	Repeated bool
	Optional bool // proto3 optional scalar or enum; rendered as a pointer
	Comment  string
}

// Packed reports whether a repeated field is encoded as a packed run.
func (f *Field) Packed() bool {
	if !f.Repeated {
		return false
	}
	switch f.Kind {
	case KindString, KindBytes, KindMessage:
		return false
	}
	return true
}

// Message is a generated struct.
type Message struct {
	FullName string
	GoName   string
	Comment  string
	Fields   []*Field
}

// EnumValue is one enum constant.
type EnumValue struct {
	Name    string // proto name, e.g. "INCLUDE_CONTEXT_NONE"
	GoName  string // e.g. "IncludeContextNone"
	Number  int32
	Comment string
}

// Enum is a generated int32 type.
type Enum struct {
	FullName string
	GoName   string
	Comment  string
	Values   []*EnumValue
}

// Request is one request kind: a field of the client envelope's oneof.
type Request struct {
	Name       string // e.g. "SamplingApproval"
	Field      string // envelope field name, e.g. "sampling_approval_request"
	Number     int32  // field number in the client envelope
	Req        *Message
	Resp       *Message // nil when the host answers with success
	RespNumber int32    // field number in the server envelope; 0 when Resp is nil
	Comment    string
}

// SuccessOnly reports whether the request has no typed response.
func (r *Request) SuccessOnly() bool { return r.Resp == nil }

// Envelope carries the field numbers the runtime needs to wrap payloads.
type Envelope struct {
	ClientID int32
	ServerID int32
	Error    int32
	Success  int32 // 0 when the server envelope has no success field
}

// Schema is the generator's complete input.
type Schema struct {
	Messages []*Message
	Enums    []*Enum
	Requests []*Request
	Envelope Envelope
}

type builder struct {
	env      config.Envelope
	errs     *multierror.Error
	client   protoreflect.MessageDescriptor
	server   protoreflect.MessageDescriptor
	messages map[protoreflect.FullName]*Message
	enums    map[protoreflect.FullName]*Enum
	schema   *Schema
}

// Build validates files and produces the generator model. Every problem
// found is reported in the returned error, not only the first.
func Build(files []protoreflect.FileDescriptor, env config.Envelope) (*Schema, error) {
	b := &builder{
		env:      env,
		messages: map[protoreflect.FullName]*Message{},
		enums:    map[protoreflect.FullName]*Enum{},
		schema:   &Schema{},
	}
	if err := config.ValidateEnvelope(env); err != nil {
		return nil, err
	}
	for _, fd := range files {
		if fd.Syntax() != protoreflect.Proto3 {
			b.fail(fmt.Errorf("%s: only proto3 files are supported", fd.Path()))
		}
	}
	b.client = b.findMessage(files, env.Client)
	b.server = b.findMessage(files, env.Server)

	// Declare names first so fields may reference types declared later.
	for _, fd := range files {
		b.declareEnums(fd.Enums(), "", fd)
		b.declareMessages(fd.Messages(), "", fd)
	}
	for _, fd := range files {
		b.fillMessages(fd.Messages(), fd)
	}
	if b.client != nil && b.server != nil {
		b.buildRequests()
	}
	if err := b.errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	return b.schema, nil
}

func (b *builder) fail(err error) {
	b.errs = multierror.Append(b.errs, err)
}

func (b *builder) findMessage(files []protoreflect.FileDescriptor, name string) protoreflect.MessageDescriptor {
	var matches []protoreflect.MessageDescriptor
	for _, fd := range files {
		msgs := fd.Messages()
		for i := 0; i < msgs.Len(); i++ {
			md := msgs.Get(i)
			if string(md.FullName()) == name || string(md.Name()) == name {
				matches = append(matches, md)
			}
		}
	}
	switch len(matches) {
	case 0:
		b.fail(fmt.Errorf("envelope message %q not found", name))
		return nil
	case 1:
		return matches[0]
	default:
		b.fail(fmt.Errorf("envelope message %q is ambiguous; use its full name", name))
		return nil
	}
}

func (b *builder) isEnvelope(md protoreflect.MessageDescriptor) bool {
	return (b.client != nil && md.FullName() == b.client.FullName()) ||
		(b.server != nil && md.FullName() == b.server.FullName())
}

func comment(fd protoreflect.FileDescriptor, d protoreflect.Descriptor) string {
	loc := fd.SourceLocations().ByDescriptor(d)
	return util.SanitizeComment(loc.LeadingComments)
}

func (b *builder) declareEnums(enums protoreflect.EnumDescriptors, prefix string, fd protoreflect.FileDescriptor) {
	for i := 0; i < enums.Len(); i++ {
		ed := enums.Get(i)
		e := &Enum{
			FullName: string(ed.FullName()),
			GoName:   prefix + string(ed.Name()),
			Comment:  comment(fd, ed),
		}
		values := ed.Values()
		for j := 0; j < values.Len(); j++ {
			vd := values.Get(j)
			e.Values = append(e.Values, &EnumValue{
				Name:    string(vd.Name()),
				GoName:  util.ToEnumConst(e.GoName, string(vd.Name())),
				Number:  int32(vd.Number()),
				Comment: comment(fd, vd),
			})
		}
		b.enums[ed.FullName()] = e
		b.schema.Enums = append(b.schema.Enums, e)
	}
}

func (b *builder) declareMessages(msgs protoreflect.MessageDescriptors, prefix string, fd protoreflect.FileDescriptor) {
	for i := 0; i < msgs.Len(); i++ {
		md := msgs.Get(i)
		if md.IsMapEntry() {
			continue
		}
		goName := prefix + string(md.Name())
		b.declareEnums(md.Enums(), goName+"_", fd)
		if !b.isEnvelope(md) {
			m := &Message{
				FullName: string(md.FullName()),
				GoName:   goName,
				Comment:  comment(fd, md),
			}
			b.messages[md.FullName()] = m
			b.schema.Messages = append(b.schema.Messages, m)
		}
		b.declareMessages(md.Messages(), goName+"_", fd)
	}
}

func (b *builder) fillMessages(msgs protoreflect.MessageDescriptors, fd protoreflect.FileDescriptor) {
	for i := 0; i < msgs.Len(); i++ {
		md := msgs.Get(i)
		if m, ok := b.messages[md.FullName()]; ok {
			fields := md.Fields()
			for j := 0; j < fields.Len(); j++ {
				if f := b.field(fields.Get(j), fd); f != nil {
					m.Fields = append(m.Fields, f)
				}
			}
		}
		b.fillMessages(md.Messages(), fd)
	}
}

func (b *builder) field(fdesc protoreflect.FieldDescriptor, fd protoreflect.FileDescriptor) *Field {
	name := fdesc.FullName()
	switch {
	case fdesc.IsMap():
		b.fail(fmt.Errorf("%s: map fields are not supported", name))
		return nil
	case fdesc.Kind() == protoreflect.GroupKind:
		b.fail(fmt.Errorf("%s: groups are not supported", name))
		return nil
	case fdesc.ContainingOneof() != nil && !fdesc.ContainingOneof().IsSynthetic():
		b.fail(fmt.Errorf("%s: oneof fields are only supported in the envelopes", name))
		return nil
	}

	f := &Field{
		Name:     string(fdesc.Name()),
		GoName:   util.ToExportedField(string(fdesc.Name())),
		JSONName: fdesc.JSONName(),
		Number:   int32(fdesc.Number()),
		Repeated: fdesc.Cardinality() == protoreflect.Repeated,
		Comment:  comment(fd, fdesc),
	}
	switch fdesc.Kind() {
	case protoreflect.Int32Kind:
		f.Kind, f.GoType = KindVarint, "int32"
	case protoreflect.Int64Kind:
		f.Kind, f.GoType = KindVarint, "int64"
	case protoreflect.Uint32Kind:
		f.Kind, f.GoType = KindVarint, "uint32"
	case protoreflect.Uint64Kind:
		f.Kind, f.GoType = KindVarint, "uint64"
	case protoreflect.Sint32Kind:
		f.Kind, f.GoType = KindZigZag, "int32"
	case protoreflect.Sint64Kind:
		f.Kind, f.GoType = KindZigZag, "int64"
	case protoreflect.Fixed32Kind:
		f.Kind, f.GoType = KindFixed32, "uint32"
	case protoreflect.Sfixed32Kind:
		f.Kind, f.GoType = KindFixed32, "int32"
	case protoreflect.Fixed64Kind:
		f.Kind, f.GoType = KindFixed64, "uint64"
	case protoreflect.Sfixed64Kind:
		f.Kind, f.GoType = KindFixed64, "int64"
	case protoreflect.BoolKind:
		f.Kind, f.GoType = KindBool, "bool"
	case protoreflect.FloatKind:
		f.Kind, f.GoType = KindFloat, "float32"
	case protoreflect.DoubleKind:
		f.Kind, f.GoType = KindDouble, "float64"
	case protoreflect.StringKind:
		f.Kind, f.GoType = KindString, "string"
	case protoreflect.BytesKind:
		f.Kind, f.GoType = KindBytes, "[]byte"
	case protoreflect.EnumKind:
		e, ok := b.enums[fdesc.Enum().FullName()]
		if !ok {
			b.fail(fmt.Errorf("%s: enum %s is outside the generated files", name, fdesc.Enum().FullName()))
			return nil
		}
		f.Kind, f.GoType = KindEnum, e.GoName
	case protoreflect.MessageKind:
		m, ok := b.messages[fdesc.Message().FullName()]
		if !ok {
			b.fail(fmt.Errorf("%s: message %s is outside the generated files", name, fdesc.Message().FullName()))
			return nil
		}
		f.Kind, f.GoType = KindMessage, m.GoName
	default:
		b.fail(fmt.Errorf("%s: unsupported kind %s", name, fdesc.Kind()))
		return nil
	}
	// Message fields are always pointers; Optional tracks scalar presence.
	f.Optional = fdesc.HasOptionalKeyword() && f.Kind != KindMessage
	return f
}

type oneofField struct {
	desc protoreflect.FieldDescriptor
	msg  *Message
}

func (b *builder) envelopeOneof(md protoreflect.MessageDescriptor) []protoreflect.FieldDescriptor {
	od := md.Oneofs().ByName(protoreflect.Name(b.env.Oneof))
	if od == nil {
		b.fail(fmt.Errorf("%s: oneof %q not found", md.FullName(), b.env.Oneof))
		return nil
	}
	fields := od.Fields()
	out := make([]protoreflect.FieldDescriptor, 0, fields.Len())
	for i := 0; i < fields.Len(); i++ {
		out = append(out, fields.Get(i))
	}
	return out
}

func (b *builder) envelopeID(md protoreflect.MessageDescriptor) int32 {
	fd := md.Fields().ByName(protoreflect.Name(b.env.IDField))
	if fd == nil {
		b.fail(fmt.Errorf("%s: id field %q not found", md.FullName(), b.env.IDField))
		return 0
	}
	if fd.Kind() != protoreflect.Int64Kind || fd.Cardinality() == protoreflect.Repeated {
		b.fail(fmt.Errorf("%s: id field must be a singular int64", fd.FullName()))
		return 0
	}
	return int32(fd.Number())
}

func (b *builder) buildRequests() {
	env := &b.schema.Envelope
	env.ClientID = b.envelopeID(b.client)
	env.ServerID = b.envelopeID(b.server)

	responses := map[string]oneofField{}
	for _, fd := range b.envelopeOneof(b.server) {
		switch string(fd.Name()) {
		case b.env.ErrorField:
			if fd.Kind() != protoreflect.StringKind {
				b.fail(fmt.Errorf("%s: error field must be a string", fd.FullName()))
			}
			env.Error = int32(fd.Number())
			continue
		case b.env.SuccessField:
			if fd.Kind() != protoreflect.BoolKind {
				b.fail(fmt.Errorf("%s: success field must be a bool", fd.FullName()))
			}
			env.Success = int32(fd.Number())
			continue
		}
		if fd.Kind() != protoreflect.MessageKind {
			b.fail(fmt.Errorf("%s: response fields must be messages", fd.FullName()))
			continue
		}
		m, ok := b.messages[fd.Message().FullName()]
		if !ok {
			b.fail(fmt.Errorf("%s: message %s is outside the generated files", fd.FullName(), fd.Message().FullName()))
			continue
		}
		responses[m.GoName] = oneofField{desc: fd, msg: m}
	}
	if env.Error == 0 {
		b.fail(fmt.Errorf("%s: error field %q not found in oneof %q", b.server.FullName(), b.env.ErrorField, b.env.Oneof))
	}

	seen := map[string]string{}
	for _, fd := range b.envelopeOneof(b.client) {
		if fd.Kind() != protoreflect.MessageKind {
			b.fail(fmt.Errorf("%s: request fields must be messages", fd.FullName()))
			continue
		}
		m, ok := b.messages[fd.Message().FullName()]
		if !ok {
			b.fail(fmt.Errorf("%s: message %s is outside the generated files", fd.FullName(), fd.Message().FullName()))
			continue
		}
		base := strings.TrimSuffix(m.GoName, "Request")
		if base == m.GoName || base == "" {
			b.fail(fmt.Errorf("%s: request message %s must be named <Name>Request", fd.FullName(), m.GoName))
			continue
		}
		if prev, dup := seen[m.GoName]; dup {
			b.fail(fmt.Errorf("%s: %s is already carried by %s", fd.FullName(), m.GoName, prev))
			continue
		}
		seen[m.GoName] = string(fd.Name())

		r := &Request{
			Name:    base,
			Field:   string(fd.Name()),
			Number:  int32(fd.Number()),
			Req:     m,
			Comment: comment(fd.ParentFile(), fd),
		}
		if resp, ok := responses[base+"Response"]; ok {
			r.Resp = resp.msg
			r.RespNumber = int32(resp.desc.Number())
		} else if env.Success == 0 {
			b.fail(fmt.Errorf("%s: no %sResponse and the server envelope has no %q field", fd.FullName(), base, b.env.SuccessField))
			continue
		}
		b.schema.Requests = append(b.schema.Requests, r)
	}
	sort.Slice(b.schema.Requests, func(i, j int) bool {
		return b.schema.Requests[i].Number < b.schema.Requests[j].Number
	})
}
