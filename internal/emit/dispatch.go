package emit

import (
	"github.com/zed-industries/desktop-api-bindings/internal/ir"
)

// WriteDispatchJen emits the Handler interface, UnimplementedHandler, and
// the Host's request switch.
func WriteDispatchJen(sink Sink, pkg string, s *ir.Schema) error {
	f := newFile(pkg)

	f.Comment("Handler serves requests received by a Host. Embed UnimplementedHandler")
	f.Comment("to answer the kinds you do not serve with ErrNotImplemented.")
	f.Type().Id("Handler").InterfaceFunc(func(g *Group) {
		for _, r := range s.Requests {
			if r.Comment != "" {
				g.Comment(r.Comment)
			}
			g.Id(r.Name).Params(Qual(contextPkg, "Context"), Op("*").Id(r.Req.GoName)).Add(handlerResults(r))
		}
	})
	f.Line()

	f.Comment("UnimplementedHandler answers every request with ErrNotImplemented.")
	f.Type().Id("UnimplementedHandler").Struct()
	f.Line()
	for _, r := range s.Requests {
		body := Return(Nil(), Id("ErrNotImplemented"))
		if r.SuccessOnly() {
			body = Return(Id("ErrNotImplemented"))
		}
		f.Func().Params(Id("UnimplementedHandler")).Id(r.Name).
			Params(Qual(contextPkg, "Context"), Op("*").Id(r.Req.GoName)).Add(handlerResults(r)).
			Block(body)
		f.Line()
	}

	f.Func().Params(Id("h").Op("*").Id("Host")).Id("dispatch").
		Params(ctxParam(), Id("kind").Id("RequestKind"), Id("payload").Index().Byte()).
		Params(wireNumber(), Id("message"), Error()).
		Block(
			Switch(Id("kind")).BlockFunc(func(g *Group) {
				for _, r := range s.Requests {
					g.Case(Id(kindConst(r))).Block(jDispatchCase(r)...)
				}
				g.Default().Block(Return(Lit(0), Nil(), Id("unknownKindError").Call(Id("kind"))))
			}),
		)
	return sink.Write(DispatchFile, f)
}

func handlerResults(r *ir.Request) Code {
	if r.SuccessOnly() {
		return Error()
	}
	return Params(Op("*").Id(r.Resp.GoName), Error())
}

// jRetErr returns the zero dispatch result with err.
func jRetErr(err Code) Code { return Return(Lit(0), Nil(), err) }

// jUnmarshalRequest emits req := new(T); req.Unmarshal(payload).
func jUnmarshalRequest(r *ir.Request) []Code {
	return []Code{
		Id("req").Op(":=").New(Id(r.Req.GoName)),
		If(Id("err").Op(":=").Id("req").Dot("Unmarshal").Call(Id("payload")), Id("err").Op("!=").Nil()).
			Block(jRetErr(Id("decodeError").Call(Id("kind"), Id("err")))),
	}
}

func jDispatchCase(r *ir.Request) []Code {
	code := jUnmarshalRequest(r)
	call := Id("h").Dot("handler").Dot(r.Name).Call(Id("ctx"), Id("req"))
	if r.SuccessOnly() {
		return append(code,
			If(Id("err").Op(":=").Add(call), Id("err").Op("!=").Nil()).Block(jRetErr(Id("err"))),
			Return(Id("envelope").Dot("Success"), Nil(), Nil()),
		)
	}
	return append(code,
		List(Id("resp"), Id("err")).Op(":=").Add(call),
		If(Id("err").Op("!=").Nil()).Block(jRetErr(Id("err"))),
		Return(Id(responseConst(r)), Id("resp"), Nil()),
	)
}
