package services

import "sync/atomic"

// SearchSession hands out generation tokens for in-flight searches so a
// response from a superseded query can be recognised and dropped instead of
// overwriting fresher results.
type SearchSession struct {
	generation atomic.Uint64
}

// Begin registers a new query and returns its token. Any token handed out
// earlier is invalidated.
func (s *SearchSession) Begin() uint64 {
	return s.generation.Add(1)
}

// Accept reports whether the response carrying token is still the latest.
func (s *SearchSession) Accept(token uint64) bool {
	return s.generation.Load() == token
}
