package c14

import (
	"errors"
	"fmt"
)

var ErrSafeNotFound = errors.New("no safe with that name")

// `Safe` is a named storage container in the provider's account under which
// archives are created.
type Safe struct {
	UUIDRef     string `json:"uuid_ref"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

func (c *Client) ListSafes() ([]Safe, error) {
	var safes []Safe
	if err := c.Get("safe", &safes); err != nil {
		return nil, err
	}
	return safes, nil
}

// `FindSafe()` resolves a safe by exact name; the first match wins.  The
// account's full safe list is assumed to fit into a single response; there
// is no pagination.
func (c *Client) FindSafe(name string) (*Safe, error) {
	safes, err := c.ListSafes()
	if err != nil {
		return nil, err
	}
	for _, s := range safes {
		if s.Name == name {
			s := s
			return &s, nil
		}
	}
	return nil, fmt.Errorf("%w: `%s`", ErrSafeNotFound, name)
}
