package service

import (
	"encoding/json"
	"errors"

	"connectrpc.com/connect"

	"github.com/mmynk/tutorbooks/internal/backoffice"
)

// Metadata keys carried by every error response.
const (
	ErrorKindHeader   = "Error-Kind"
	ErrorFieldsHeader = "Error-Fields"
)

var kindCodes = map[backoffice.Kind]connect.Code{
	backoffice.KindNotFound:            connect.CodeNotFound,
	backoffice.KindValidationFailed:    connect.CodeInvalidArgument,
	backoffice.KindInsufficientBalance: connect.CodeFailedPrecondition,
	backoffice.KindConflict:            connect.CodeAlreadyExists,
	backoffice.KindInternal:            connect.CodeInternal,
}

// toConnect converts a backoffice error into a Connect error. The kind is
// sent in the Error-Kind header and field messages, if any, as a JSON object
// in Error-Fields.
func toConnect(err error) error {
	if err == nil {
		return nil
	}
	kind := backoffice.KindOf(err)
	msg := "internal error"
	var berr *backoffice.Error
	if errors.As(err, &berr) {
		msg = berr.Message
	}

	cerr := connect.NewError(kindCodes[kind], errors.New(msg))
	cerr.Meta().Set(ErrorKindHeader, string(kind))
	if berr != nil && len(berr.Fields) > 0 {
		if b, jerr := json.Marshal(berr.Fields); jerr == nil {
			cerr.Meta().Set(ErrorFieldsHeader, string(b))
		}
	}
	return cerr
}

// invalidArgument reports a malformed request that never reached the backoffice.
func invalidArgument(err error) error {
	cerr := connect.NewError(connect.CodeInvalidArgument, err)
	cerr.Meta().Set(ErrorKindHeader, string(backoffice.KindValidationFailed))
	return cerr
}

// ErrorKind returns the backoffice kind carried by an error received from a client.
func ErrorKind(err error) backoffice.Kind {
	var cerr *connect.Error
	if errors.As(err, &cerr) {
		if k := cerr.Meta().Get(ErrorKindHeader); k != "" {
			return backoffice.Kind(k)
		}
	}
	return backoffice.KindInternal
}
