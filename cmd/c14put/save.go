// vim: sw=8

package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/juju/ratelimit"

	"github.com/c14tools/c14put/pkg/c14"
	"github.com/c14tools/c14put/pkg/ftpx"
)

const remoteName = "data"

func cmdSave(args map[string]interface{}) {
	cfg, err := LoadConfig(args["--conf"].(string))
	if err != nil {
		lg.Fatalw("Failed to load config.", "err", err)
	}

	name, ok := args["--name"].(string)
	if !ok || name == "" {
		name = fmt.Sprintf("c14put-%s", uuid.New())
	}
	description, _ := args["--description"].(string)
	timeout := args["--job-timeout"].(time.Duration)

	client := c14.NewClient(cfg.APIURL, cfg.APIToken, lg)

	safe, err := client.FindSafe(cfg.SafeName)
	if err != nil {
		lg.Fatalw("Failed to resolve safe.", "err", err)
	}
	lg.Infow("Resolved safe.", "safe", safe.Name, "uuid", safe.UUIDRef)

	spec := c14.NewArchiveSpec(name, description, cfg.PlatformID)
	archiveID, err := client.CreateArchive(safe.UUIDRef, spec)
	if err != nil {
		lg.Fatalw("Failed to create archive.", "err", err)
	}
	lg.Infow("Created archive.", "archive", archiveID, "name", name)

	err = client.WaitArchiveReady(safe.UUIDRef, archiveID, timeout)
	if err != nil {
		lg.Fatalw("Archive did not become ready.", "err", err)
	}

	bucket, err := client.GetBucket(safe.UUIDRef, archiveID)
	if err != nil {
		lg.Fatalw("Failed to get bucket.", "err", err)
	}
	cred, err := bucket.FirstCredential()
	if err != nil {
		lg.Fatalw("Failed to get bucket credentials.", "err", err)
	}
	host, port, err := c14.ParseFTPLocation(cred.URI)
	if err != nil {
		lg.Fatalw("Failed to parse bucket location.", "err", err)
	}

	src := io.Reader(os.Stdin)
	remote := remoteName
	if args["--zstd"].(bool) {
		src = zstdStream(src)
		remote += ".zst"
	}
	if v, ok := args["--limit"].(uint64); ok {
		// Rate from arg, fixed 1 MiB capacity.
		tokens := ratelimit.NewBucketWithRate(float64(v), 1024*1024)
		src = ratelimit.Reader(src, tokens)
	}
	progress := newProgressReader(src)

	addr := fmt.Sprintf("%s:%d", host, port)
	lg.Infow("Uploading stream.", "addr", addr, "file", remote)
	if err := ftpx.Put(
		addr, cred.Login, cred.Password, remote, progress,
	); err != nil {
		lg.Fatalw("Failed to upload stream.", "err", err)
	}
	lg.Infow("Uploaded stream.", "bytes", progress.Total())

	if err := client.FinalizeArchive(safe.UUIDRef, archiveID); err != nil {
		lg.Fatalw("Failed to seal archive.", "err", err)
	}
	lg.Infow("Archive sealed.", "archive", archiveID)
}
