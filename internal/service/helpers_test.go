package service

import (
	"fmt"
	"sync/atomic"
)

type sequentialIDs struct {
	n atomic.Int64
}

func (s *sequentialIDs) Generate() string {
	return fmt.Sprintf("id-%d", s.n.Add(1))
}

// countingHasher records the hashes Compare was called with.
type countingHasher struct {
	PasswordHasher
	compared []string
}

func (c *countingHasher) Compare(hash, password string) bool {
	c.compared = append(c.compared, hash)
	return c.PasswordHasher.Compare(hash, password)
}
