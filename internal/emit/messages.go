package emit

import (
	"github.com/zed-industries/desktop-api-bindings/internal/ir"
	"github.com/zed-industries/desktop-api-bindings/internal/util"
)

// WriteMessagesJen emits payload structs with their wire codecs and the enum types.
func WriteMessagesJen(sink Sink, pkg string, s *ir.Schema) error {
	f := newFile(pkg)
	for _, e := range s.Enums {
		writeEnum(f, e)
	}
	for _, m := range s.Messages {
		writeMessage(f, m)
	}
	return sink.Write(MessagesFile, f)
}

func writeEnum(f *File, e *ir.Enum) {
	if e.Comment != "" {
		f.Comment(e.Comment)
	}
	f.Type().Id(e.GoName).Int32()
	f.Line()
	f.Const().DefsFunc(func(g *Group) {
		for _, v := range e.Values {
			if v.Comment != "" {
				g.Comment(v.Comment)
			}
			g.Id(v.GoName).Id(e.GoName).Op("=").Lit(int(v.Number))
		}
	})
	f.Line()

	names := util.LowerFirst(e.GoName) + "Names"
	seen := map[int32]bool{}
	f.Var().Id(names).Op("=").Map(Id(e.GoName)).String().Values(DictFunc(func(d Dict) {
		for _, v := range e.Values {
			// aliases share a number; the first name wins
			if seen[v.Number] {
				continue
			}
			seen[v.Number] = true
			d[Id(v.GoName)] = Lit(v.Name)
		}
	}))
	f.Line()
	f.Func().Params(Id("x").Id(e.GoName)).Id("String").Params().String().Block(
		If(List(Id("s"), Id("ok")).Op(":=").Id(names).Index(Id("x")), Id("ok")).Block(Return(Id("s"))),
		Return(Qual("strconv", "Itoa").Call(Int().Call(Id("x")))),
	)
	f.Line()
}

func writeMessage(f *File, m *ir.Message) {
	if m.Comment != "" {
		f.Comment(m.Comment)
	}
	f.Type().Id(m.GoName).StructFunc(func(g *Group) {
		for _, fl := range m.Fields {
			if fl.Comment != "" {
				g.Comment(fl.Comment)
			}
			g.Id(fl.GoName).Add(fieldType(fl)).Tag(map[string]string{"json": fl.JSONName + ",omitempty"})
		}
	})
	f.Line()

	recv := func() *Stmt { return Id("m").Op("*").Id(m.GoName) }
	for _, fl := range m.Fields {
		writeGetter(f, m, fl)
	}

	f.Comment("Marshal encodes m in protobuf wire format.")
	f.Func().Params(recv()).Id("Marshal").Params().Params(Index().Byte(), Error()).Block(
		Return(Id("marshalMessage").Call(Id("m"))),
	)
	f.Line()
	f.Comment("Unmarshal replaces m with the message decoded from b.")
	f.Func().Params(recv()).Id("Unmarshal").Params(Id("b").Index().Byte()).Error().Block(
		Op("*").Id("m").Op("=").Id(m.GoName).Values(),
		Return(Id("unmarshalMessage").Call(Id("b"), Id("m"))),
	)
	f.Line()

	f.Func().Params(recv()).Id("appendFields").Params(Id("b").Index().Byte()).Index().Byte().BlockFunc(func(g *Group) {
		if len(m.Fields) > 0 {
			g.If(Id("m").Op("==").Nil()).Block(Return(Id("b")))
		}
		for _, fl := range m.Fields {
			g.Add(appendStmt(fl))
		}
		g.Return(Id("b"))
	})
	f.Line()

	f.Func().Params(recv()).Id("decodeField").
		Params(Id("num").Add(wireNumber()), Id("typ").Add(wireType()), Id("b").Index().Byte()).
		Params(Int(), Error()).
		BlockFunc(func(g *Group) {
			if len(m.Fields) > 0 {
				g.Switch(Id("num")).BlockFunc(func(sw *Group) {
					for _, fl := range m.Fields {
						sw.Case(Lit(int(fl.Number))).Block(decodeStmts(fl)...)
					}
				})
			}
			g.Return(Id("skipField").Call(Id("num"), Id("typ"), Id("b")))
		})
	f.Line()
}

// pointer reports whether the field is rendered as *T for presence.
// Optional bytes keep []byte and use nil for absence.
func pointer(fl *ir.Field) bool {
	if fl.Repeated {
		return false
	}
	return fl.Kind == ir.KindMessage || (fl.Optional && fl.Kind != ir.KindBytes)
}

func elemType(fl *ir.Field) Code {
	if fl.Kind == ir.KindBytes {
		return Index().Byte()
	}
	return Id(fl.GoType)
}

func fieldType(fl *ir.Field) Code {
	switch {
	case fl.Repeated && fl.Kind == ir.KindMessage:
		return Index().Op("*").Add(elemType(fl))
	case fl.Repeated:
		return Index().Add(elemType(fl))
	case pointer(fl):
		return Op("*").Add(elemType(fl))
	}
	return elemType(fl)
}

func writeGetter(f *File, m *ir.Message, fl *ir.Field) {
	if fl.Repeated || !(fl.Optional || fl.Kind == ir.KindMessage) {
		return
	}
	field := Id("m").Dot(fl.GoName)
	var body []Code
	switch {
	case fl.Kind == ir.KindMessage, fl.Kind == ir.KindBytes:
		body = []Code{
			If(Id("m").Op("!=").Nil()).Block(Return(field)),
			Return(Nil()),
		}
	default:
		body = []Code{
			If(Id("m").Op("!=").Nil().Op("&&").Add(field).Op("!=").Nil()).Block(Return(Op("*").Add(field))),
			Return(zeroValue(fl)),
		}
	}
	f.Func().Params(Id("m").Op("*").Id(m.GoName)).Id("Get"+fl.GoName).Params().Add(getterType(fl)).Block(body...)
	f.Line()
}

func getterType(fl *ir.Field) Code {
	if fl.Kind == ir.KindMessage {
		return Op("*").Id(fl.GoType)
	}
	return elemType(fl)
}

func zeroValue(fl *ir.Field) Code {
	switch fl.Kind {
	case ir.KindString:
		return Lit("")
	case ir.KindBool:
		return False()
	}
	return Lit(0)
}

var appendFuncs = map[ir.Kind]string{
	ir.KindVarint:  "appendVarint",
	ir.KindEnum:    "appendVarint",
	ir.KindZigZag:  "appendZigZag",
	ir.KindBool:    "appendBool",
	ir.KindFixed32: "appendFixed32",
	ir.KindFloat:   "appendFloat",
	ir.KindFixed64: "appendFixed64",
	ir.KindDouble:  "appendDouble",
	ir.KindString:  "appendString",
	ir.KindBytes:   "appendBytes",
	ir.KindMessage: "appendMessage",
}

var packedFuncs = map[ir.Kind]string{
	ir.KindVarint:  "appendPackedVarint",
	ir.KindEnum:    "appendPackedVarint",
	ir.KindZigZag:  "appendPackedZigZag",
	ir.KindBool:    "appendPackedBool",
	ir.KindFixed32: "appendPackedFixed32",
	ir.KindFloat:   "appendPackedFloat",
	ir.KindFixed64: "appendPackedFixed64",
	ir.KindDouble:  "appendPackedDouble",
}

func appendCall(fl *ir.Field, v Code) Code {
	return Id("b").Op("=").Id(appendFuncs[fl.Kind]).Call(Id("b"), Lit(int(fl.Number)), v)
}

func appendStmt(fl *ir.Field) Code {
	field := Id("m").Dot(fl.GoName)
	switch {
	case fl.Packed():
		return Id("b").Op("=").Id(packedFuncs[fl.Kind]).Call(Id("b"), Lit(int(fl.Number)), field)
	case fl.Repeated:
		return For(List(Id("_"), Id("v")).Op(":=").Range().Add(field)).Block(appendCall(fl, Id("v")))
	case fl.Kind == ir.KindMessage:
		return If(field.Clone().Op("!=").Nil()).Block(appendCall(fl, field))
	case pointer(fl):
		return If(field.Clone().Op("!=").Nil()).Block(appendCall(fl, Op("*").Add(field)))
	case fl.Optional && fl.Kind == ir.KindBytes:
		return If(field.Clone().Op("!=").Nil()).Block(appendCall(fl, field))
	}
	var cond Code
	switch fl.Kind {
	case ir.KindString:
		cond = field.Clone().Op("!=").Lit("")
	case ir.KindBytes:
		cond = Len(field).Op(">").Lit(0)
	case ir.KindBool:
		cond = field
	default:
		cond = field.Clone().Op("!=").Lit(0)
	}
	return If(cond).Block(appendCall(fl, field))
}

func elemWireType(fl *ir.Field) Code {
	switch fl.Kind {
	case ir.KindFixed32, ir.KindFloat:
		return Qual(protowirePkg, "Fixed32Type")
	case ir.KindFixed64, ir.KindDouble:
		return Qual(protowirePkg, "Fixed64Type")
	case ir.KindString, ir.KindBytes, ir.KindMessage:
		return Qual(protowirePkg, "BytesType")
	}
	return Qual(protowirePkg, "VarintType")
}

func consumeFunc(fl *ir.Field) *Stmt {
	switch fl.Kind {
	case ir.KindVarint, ir.KindEnum:
		return Id("consumeVarint").Types(Id(fl.GoType))
	case ir.KindZigZag:
		return Id("consumeZigZag").Types(Id(fl.GoType))
	case ir.KindBool:
		return Id("consumeBool")
	case ir.KindFixed32:
		return Id("consumeFixed32").Types(Id(fl.GoType))
	case ir.KindFloat:
		return Id("consumeFloat")
	case ir.KindFixed64:
		return Id("consumeFixed64").Types(Id(fl.GoType))
	case ir.KindDouble:
		return Id("consumeDouble")
	case ir.KindString:
		return Id("consumeString")
	}
	return Id("consumeBytes")
}

func decodeStmts(fl *ir.Field) []Code {
	field := Id("m").Dot(fl.GoName)
	typ, b := Id("typ"), Id("b")
	switch {
	case fl.Repeated && fl.Kind == ir.KindMessage:
		return []Code{
			Id("v").Op(":=").New(Id(fl.GoType)),
			List(Id("n"), Id("err")).Op(":=").Id("consumeMessage").Call(typ, b, Id("v")),
			If(Id("err").Op("!=").Nil()).Block(Return(Lit(0), Id("err"))),
			field.Clone().Op("=").Append(field, Id("v")),
			Return(Id("n"), Nil()),
		}
	case fl.Repeated:
		return []Code{
			Return(Id("consumeRepeated").Call(typ, b, Op("&").Add(field), elemWireType(fl), consumeFunc(fl))),
		}
	case fl.Kind == ir.KindMessage:
		return []Code{
			If(field.Clone().Op("==").Nil()).Block(field.Clone().Op("=").New(Id(fl.GoType))),
			Return(Id("consumeMessage").Call(typ, b, field)),
		}
	case pointer(fl):
		return []Code{
			field.Clone().Op("=").New(Id(fl.GoType)),
			Return(consumeFunc(fl).Call(typ, b, field)),
		}
	}
	return []Code{
		Return(consumeFunc(fl).Call(typ, b, Op("&").Add(field))),
	}
}
