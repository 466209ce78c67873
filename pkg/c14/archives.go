package c14

import (
	"errors"
	"fmt"
	"time"
)

// Defaults for new archives.  Retention is the shortest the provider
// offers; the archive is expected to be sealed long before it expires.
const (
	DefaultParity        = "standard"
	DefaultCrypto        = "none"
	DefaultRetentionDays = 2
)

const JobStatusDone = "done"

var ErrJobTimeout = errors.New("timeout waiting for archive jobs")

// `ArchiveSpec` is posted to a safe's archive collection to create an
// archive.
type ArchiveSpec struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Parity      string   `json:"parity"`
	Crypto      string   `json:"crypto"`
	Protocols   []string `json:"protocols"`
	Days        int      `json:"days"`
	Platforms   []string `json:"platforms"`
}

// `NewArchiveSpec()` returns a spec for an unencrypted FTP archive with the
// default parity and retention on the given platform.
func NewArchiveSpec(name, description, platformID string) ArchiveSpec {
	return ArchiveSpec{
		Name:        name,
		Description: description,
		Parity:      DefaultParity,
		Crypto:      DefaultCrypto,
		Protocols:   []string{"FTP"},
		Days:        DefaultRetentionDays,
		Platforms:   []string{platformID},
	}
}

// `Job` is a provider-side asynchronous provisioning task associated with
// an archive, like allocating storage buffers.
type Job struct {
	UUIDRef  string `json:"uuid_ref"`
	Type     string `json:"type"`
	Status   string `json:"status"`
	Progress int    `json:"progress"`
}

// `CreateArchive()` posts `spec` to the safe's archive collection.  The
// response body is the new archive's identifier, which is the sole handle
// used afterwards.
func (c *Client) CreateArchive(
	safeID string, spec ArchiveSpec,
) (string, error) {
	var id string
	path := fmt.Sprintf("safe/%s/archive", safeID)
	if err := c.Post(path, spec, &id); err != nil {
		return "", err
	}
	return id, nil
}

func (c *Client) ListJobs(safeID, archiveID string) ([]Job, error) {
	var jobs []Job
	path := fmt.Sprintf("safe/%s/archive/%s/job", safeID, archiveID)
	if err := c.Get(path, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// `ListIncompleteJobs()` returns the jobs whose status is not `done`.
func (c *Client) ListIncompleteJobs(
	safeID, archiveID string,
) ([]Job, error) {
	jobs, err := c.ListJobs(safeID, archiveID)
	if err != nil {
		return nil, err
	}
	incomplete := make([]Job, 0, len(jobs))
	for _, j := range jobs {
		if j.Status != JobStatusDone {
			incomplete = append(incomplete, j)
		}
	}
	return incomplete, nil
}

// `WaitArchiveReady()` polls the archive's jobs every `PollInterval` until
// none is incomplete, logging each incomplete job's type and progress at
// each poll.  It fails with `ErrJobTimeout` once the elapsed time exceeds
// `timeout`.  The elapsed check happens only after each sleep, so the total
// wall time may exceed `timeout` by up to one interval.
func (c *Client) WaitArchiveReady(
	safeID, archiveID string, timeout time.Duration,
) error {
	start := time.Now()
	for {
		jobs, err := c.ListIncompleteJobs(safeID, archiveID)
		if err != nil {
			return err
		}
		if len(jobs) == 0 {
			return nil
		}
		for _, j := range jobs {
			c.lg.Infow(
				"Waiting for archive job.",
				"type", j.Type,
				"progress", j.Progress,
			)
		}
		time.Sleep(c.PollInterval)
		if time.Since(start) > timeout {
			return ErrJobTimeout
		}
	}
}

// `FinalizeArchive()` seals the archive.  It must be called at most once
// per archive, after the upload has completed; the API does not verify the
// sequence, the caller must.
func (c *Client) FinalizeArchive(safeID, archiveID string) error {
	path := fmt.Sprintf("safe/%s/archive/%s/archive", safeID, archiveID)
	return c.Post(path, nil, nil)
}
