package desktopapi

import (
	"errors"
	"strconv"

	"google.golang.org/protobuf/encoding/protowire"
)

// RequestKind identifies a request by its field number in the client envelope.
type RequestKind int32

func (k RequestKind) String() string {
	if s, ok := requestKindNames[k]; ok {
		return s
	}
	return "RequestKind(" + strconv.Itoa(int(k)) + ")"
}

// envelopeLayout holds the envelope field numbers the runtime needs. The
// generated constants file fills in the schema's values.
type envelopeLayout struct {
	ClientID protowire.Number
	ServerID protowire.Number
	Error    protowire.Number
	Success  protowire.Number
}

var errNoSubmessage = errors.New("desktopapi: envelope carries no submessage")

// clientMessage is a decoded ClientOriginatedMessage.
type clientMessage struct {
	id      int64
	hasID   bool
	kind    RequestKind
	payload []byte
}

// serverMessage is a decoded ServerOriginatedMessage. field is the oneof
// member that was set.
type serverMessage struct {
	id      int64
	hasID   bool
	field   protowire.Number
	payload []byte
	errMsg  string
	success bool
}

func (l envelopeLayout) encodeClient(m clientMessage) []byte {
	var b []byte
	if m.hasID {
		b = appendVarint(b, l.ClientID, m.id)
	}
	return appendBytes(b, protowire.Number(m.kind), m.payload)
}

// decodeClient returns whatever it parsed along with any error, so the host
// can still answer a malformed request that carried an id.
func (l envelopeLayout) decodeClient(b []byte) (clientMessage, error) {
	var m clientMessage
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return m, protowire.ParseError(n)
		}
		b = b[n:]
		switch {
		case num == l.ClientID:
			n, err := consumeVarint(typ, b, &m.id)
			if err != nil {
				return m, err
			}
			m.hasID = true
			b = b[n:]
		case typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return m, protowire.ParseError(n)
			}
			// oneof: the last member on the wire wins
			m.kind, m.payload = RequestKind(num), v
			b = b[n:]
		default:
			n, err := skipField(num, typ, b)
			if err != nil {
				return m, err
			}
			b = b[n:]
		}
	}
	if m.kind == 0 {
		return m, errNoSubmessage
	}
	return m, nil
}

func (l envelopeLayout) encodeServer(m serverMessage) []byte {
	var b []byte
	if m.hasID {
		b = appendVarint(b, l.ServerID, m.id)
	}
	switch m.field {
	case l.Error:
		return appendString(b, l.Error, m.errMsg)
	case l.Success:
		return appendBool(b, l.Success, m.success)
	}
	return appendBytes(b, m.field, m.payload)
}

func (l envelopeLayout) decodeServer(b []byte) (serverMessage, error) {
	var m serverMessage
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return m, protowire.ParseError(n)
		}
		b = b[n:]
		var err error
		switch {
		case num == l.ServerID:
			n, err = consumeVarint(typ, b, &m.id)
			m.hasID = true
		case num == l.Error:
			m.field, m.success, m.payload = num, false, nil
			n, err = consumeString(typ, b, &m.errMsg)
		case l.Success != 0 && num == l.Success:
			m.field, m.errMsg, m.payload = num, "", nil
			n, err = consumeBool(typ, b, &m.success)
		case typ == protowire.BytesType:
			var v []byte
			v, n = protowire.ConsumeBytes(b)
			if n < 0 {
				err = protowire.ParseError(n)
			}
			m.field, m.payload, m.errMsg, m.success = num, v, "", false
		default:
			n, err = skipField(num, typ, b)
		}
		if err != nil {
			return m, err
		}
		b = b[n:]
	}
	if m.field == 0 {
		return m, errNoSubmessage
	}
	return m, nil
}
