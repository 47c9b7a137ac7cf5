package domain

import "errors"

// Common domain errors
var (
	ErrNotFound = errors.New("resource not found")

	// ErrRenderFailure marks a failure inside the PDF renderer.
	ErrRenderFailure = errors.New("resume render failed")

	// ErrUnsupportedText accompanies ErrRenderFailure when resume text has characters no embedded font can draw.
	ErrUnsupportedText = errors.New("resume text contains unsupported characters")

	// ErrStoreFailure marks a failed upload or delete against the artifact store.
	ErrStoreFailure = errors.New("artifact store failed")

	// ErrArtifactMissing is returned when a download needs a PDF and none can be produced.
	ErrArtifactMissing = errors.New("resume artifact missing")

	// ErrArtifactNotFound is returned by ArtifactStore.Delete for an absent object.
	ErrArtifactNotFound = errors.New("artifact not found")
)
