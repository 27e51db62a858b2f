package pipeline

import "errors"

// Stage failures the HTTP layer can tell apart. Most degradations are
// absorbed inside the pipeline; these surface only when an operation cannot
// produce a meaningful response at all.
var (
	ErrEmptyQuery           = errors.New("query is empty")
	ErrRetrievalUnavailable = errors.New("similarity engine unavailable")
	ErrRuntimeUnavailable   = errors.New("workflow runtime unavailable")
)

// IsEmptyQuery reports whether err means the request carried no query text.
func IsEmptyQuery(err error) bool {
	return errors.Is(err, ErrEmptyQuery)
}

// IsRetrievalUnavailable reports whether err means the vector store is down.
func IsRetrievalUnavailable(err error) bool {
	return errors.Is(err, ErrRetrievalUnavailable)
}

// IsRuntimeUnavailable reports whether err means the n8n runtime is down.
func IsRuntimeUnavailable(err error) bool {
	return errors.Is(err, ErrRuntimeUnavailable)
}
