package emit

import jen "github.com/dave/jennifer/jen"

// Local aliases to avoid dot-importing jennifer while keeping concise calls.
type (
	Code  = jen.Code
	Dict  = jen.Dict
	Group = jen.Group
	File  = jen.File
	Stmt  = jen.Statement
)

var (
	NewFile  = jen.NewFile
	Id       = jen.Id
	Lit      = jen.Lit
	Params   = jen.Params
	For      = jen.For
	Return   = jen.Return
	Nil      = jen.Nil
	Int      = jen.Int
	False    = jen.False
	Index    = jen.Index
	Qual     = jen.Qual
	Error    = jen.Error
	Switch   = jen.Switch
	If       = jen.If
	List     = jen.List
	Op       = jen.Op
	DictFunc = jen.DictFunc
	Len      = jen.Len
)

const (
	contextPkg   = "context"
	protowirePkg = "google.golang.org/protobuf/encoding/protowire"
)

func ctxParam() Code { return Id("ctx").Qual(contextPkg, "Context") }

func wireNumber() Code { return Qual(protowirePkg, "Number") }

func wireType() Code { return Qual(protowirePkg, "Type") }
