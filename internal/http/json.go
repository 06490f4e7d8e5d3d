package httpx

import (
	"bytes"
	"encoding/json"
	"net/http"

	apperrors "github.com/target/ticketdesk-api/internal/errors"
)

// maxJSONBody bounds request bodies; image uploads arrive base64 encoded.
const maxJSONBody = 16 << 20

// DecodeJSON decodes JSON from the request body into the destination and handles errors.
// Returns true if successful, false if there was an error (error marker already attached).
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		WriteError(w, r, apperrors.Wrap(err, apperrors.ErrCodeValidation, "invalid json body"))
		return false
	}

	return true
}

// WriteJSON writes a JSON response with the given status code and data.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := buf.WriteTo(w); err != nil {
		// Response writer errors (e.g., client disconnect) can't be recovered from here.
		return
	}
}

// WriteError attaches err to the request so ResponseMapper renders the public
// envelope. Without a mapper in the chain the envelope is written directly.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	if st, ok := RequestStateFrom(r.Context()); ok && st.mapped {
		st.Fail(err)
		return
	}

	reqID := newRequestState().RequestID()
	if st, ok := RequestStateFrom(r.Context()); ok {
		reqID = st.RequestID()
	}
	writeEnvelope(w, ClientErrorFor(apperrors.As(err)), reqID)
}

func writeEnvelope(w http.ResponseWriter, ce ClientError, reqID string) {
	WriteJSON(w, ce.Status, errorEnvelope{Error: errorDetail{Type: ce.Tag, ReqUUID: reqID}})
}
