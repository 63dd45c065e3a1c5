package handlers

import "net/http"

var httpErrorResponder func(http.ResponseWriter, *http.Request, error)

// SetHTTPErrorResponder lets the server package inject the centralized error
// handler so every handler emits the same envelope.
func SetHTTPErrorResponder(responder func(http.ResponseWriter, *http.Request, error)) {
	httpErrorResponder = responder
}

func respondWithError(w http.ResponseWriter, r *http.Request, err error) {
	if httpErrorResponder != nil {
		httpErrorResponder(w, r, err)
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}
