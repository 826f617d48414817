package handling

import (
	"net/http"

	"github.com/MonkyMars/gecho"
)

// HandleError logs the failure and answers with a 500 carrying the
// given message key.
func HandleError(err error, msg string, logger *gecho.Logger, w http.ResponseWriter) {
	logger.Error("An error occurred", gecho.Field("error", err), gecho.Field("msg", msg), gecho.WithCallerSkip(3))

	gecho.InternalServerError(w, gecho.WithMessage(msg), gecho.Send())
}
