package rpc

import (
	"errors"
	"ufl-rankings/internal/domain"

	"connectrpc.com/connect"
)

// KindHeader carries the domain error kind next to the connect code, so the
// client can tell the InvalidArgument kinds apart.
const KindHeader = "Ufl-Error-Kind"

var ErrUnauthenticated = errors.New("admin secret required")

// CodeOf maps a domain error to its connect code.
func CodeOf(err error) connect.Code {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		return connect.CodeUnauthenticated
	case errors.Is(err, domain.ErrDuplicateIdentity):
		return connect.CodeAlreadyExists
	case errors.Is(err, domain.ErrInvalidReference):
		return connect.CodeNotFound
	case errors.Is(err, domain.ErrSelfFight),
		errors.Is(err, domain.ErrInconsistentMethod),
		errors.Is(err, domain.ErrInvalidInput):
		return connect.CodeInvalidArgument
	case errors.Is(err, domain.ErrStoreUnavailable):
		return connect.CodeUnavailable
	default:
		return connect.CodeInternal
	}
}

func ToConnectError(err error) error {
	if err == nil {
		return nil
	}
	var cerr *connect.Error
	if errors.As(err, &cerr) {
		return cerr
	}
	cerr = connect.NewError(CodeOf(err), err)
	if kind := domain.Kind(err); kind != "" {
		cerr.Meta().Set(KindHeader, kind)
	}
	return cerr
}

var kinds = map[string]error{
	domain.Kind(domain.ErrDuplicateIdentity):  domain.ErrDuplicateIdentity,
	domain.Kind(domain.ErrInvalidReference):   domain.ErrInvalidReference,
	domain.Kind(domain.ErrSelfFight):          domain.ErrSelfFight,
	domain.Kind(domain.ErrInconsistentMethod): domain.ErrInconsistentMethod,
	domain.Kind(domain.ErrInvalidInput):       domain.ErrInvalidInput,
	domain.Kind(domain.ErrStoreUnavailable):   domain.ErrStoreUnavailable,
}

type remoteError struct {
	kind error
	msg  string
}

func (e *remoteError) Error() string { return e.msg }
func (e *remoteError) Unwrap() error { return e.kind }

// FromConnectError turns an error received by a client back into the domain
// kind, keeping the server's message.
func FromConnectError(err error) error {
	var cerr *connect.Error
	if !errors.As(err, &cerr) {
		return err
	}
	if kind, ok := kinds[cerr.Meta().Get(KindHeader)]; ok {
		return &remoteError{kind: kind, msg: cerr.Message()}
	}
	var kind error
	switch cerr.Code() {
	case connect.CodeUnauthenticated:
		kind = ErrUnauthenticated
	case connect.CodeAlreadyExists:
		kind = domain.ErrDuplicateIdentity
	case connect.CodeNotFound:
		kind = domain.ErrInvalidReference
	case connect.CodeInvalidArgument:
		kind = domain.ErrInvalidInput
	case connect.CodeUnavailable:
		kind = domain.ErrStoreUnavailable
	default:
		return err
	}
	return &remoteError{kind: kind, msg: cerr.Message()}
}
