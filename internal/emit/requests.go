package emit

import (
	"fmt"

	"github.com/zed-industries/desktop-api-bindings/internal/ir"
)

// WriteRequestsJen emits one Client.Send<Name>Request binding per request kind.
func WriteRequestsJen(sink Sink, pkg string, s *ir.Schema) error {
	f := newFile(pkg)
	for _, r := range s.Requests {
		writeRequest(f, r)
	}
	return sink.Write(RequestsFile, f)
}

func sendName(r *ir.Request) string { return "Send" + r.Name + "Request" }

func writeRequest(f *File, r *ir.Request) {
	name := sendName(r)
	if r.SuccessOnly() {
		f.Comment(fmt.Sprintf("%s sends a %s and waits for the host to acknowledge it.", name, r.Req.GoName))
	} else {
		f.Comment(fmt.Sprintf("%s sends a %s and waits for the host's %s.", name, r.Req.GoName, r.Resp.GoName))
	}
	if r.Comment != "" {
		f.Comment(r.Comment)
	}
	sig := f.Func().Params(Id("c").Op("*").Id("Client")).Id(name).
		Params(ctxParam(), Id("req").Op("*").Id(r.Req.GoName))
	if r.SuccessOnly() {
		sig.Error().Block(
			Return(jSend(r, Id("envelope").Dot("Success"), Nil())),
		)
		f.Line()
		return
	}
	sig.Params(Op("*").Id(r.Resp.GoName), Error()).Block(
		Id("resp").Op(":=").New(Id(r.Resp.GoName)),
		If(Id("err").Op(":=").Add(jSend(r, Id(responseConst(r)), Id("resp"))), Id("err").Op("!=").Nil()).
			Block(Return(Nil(), Id("err"))),
		Return(Id("resp"), Nil()),
	)
	f.Line()
}

// jSend emits c.sendRequest(ctx, Kind<Name>, req, want, resp).
func jSend(r *ir.Request, want, resp Code) *Stmt {
	return Id("c").Dot("sendRequest").Call(Id("ctx"), Id(kindConst(r)), Id("req"), want, resp)
}
