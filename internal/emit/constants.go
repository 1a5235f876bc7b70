package emit

import (
	"github.com/zed-industries/desktop-api-bindings/internal/ir"
)

func kindConst(r *ir.Request) string { return "Kind" + r.Name }

func responseConst(r *ir.Request) string { return "response" + r.Name }

// WriteConstantsJen emits request kinds, response field numbers, and the
// envelope layout the runtime wraps payloads with.
func WriteConstantsJen(sink Sink, pkg string, s *ir.Schema) error {
	f := newFile(pkg)

	f.Comment("Request kinds, numbered by their field in the client envelope.")
	f.Const().DefsFunc(func(g *Group) {
		for _, r := range s.Requests {
			if r.Comment != "" {
				g.Comment(r.Comment)
			}
			g.Id(kindConst(r)).Id("RequestKind").Op("=").Lit(int(r.Number))
		}
	})
	f.Line()

	f.Var().Id("requestKindNames").Op("=").Map(Id("RequestKind")).String().Values(DictFunc(func(d Dict) {
		for _, r := range s.Requests {
			d[Id(kindConst(r))] = Lit(r.Name)
		}
	}))
	f.Line()

	var typed []*ir.Request
	for _, r := range s.Requests {
		if !r.SuccessOnly() {
			typed = append(typed, r)
		}
	}
	if len(typed) > 0 {
		f.Comment("Response fields in the server envelope.")
		f.Const().DefsFunc(func(g *Group) {
			for _, r := range typed {
				g.Id(responseConst(r)).Add(wireNumber()).Op("=").Lit(int(r.RespNumber))
			}
		})
		f.Line()
	}

	env := s.Envelope
	f.Var().Id("envelope").Op("=").Id("envelopeLayout").Values(Dict{
		Id("ClientID"): Lit(int(env.ClientID)),
		Id("ServerID"): Lit(int(env.ServerID)),
		Id("Error"):    Lit(int(env.Error)),
		Id("Success"):  Lit(int(env.Success)),
	})
	return sink.Write(ConstantsFile, f)
}
