package fred

// Package fred implements a client for the FRED (St. Louis Fed) series
// observations API. It decodes observation lists into model.Series, dropping
// the "." missing-value markers the API emits for gaps.
