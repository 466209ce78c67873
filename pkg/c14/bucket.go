package c14

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

var ErrNoCredentials = errors.New("bucket has no credentials")
var ErrMalformedLocation = errors.New("malformed bucket location")

// `BucketCredential` is a short-lived FTP endpoint descriptor used to
// transfer data into an archive's storage buffer.  `Login` and `Password`
// are separate fields; the userinfo part of `URI` is not used.
type BucketCredential struct {
	Protocol string `json:"protocol"`
	URI      string `json:"uri"`
	Login    string `json:"login"`
	Password string `json:"password"`
}

type Bucket struct {
	UUIDRef     string             `json:"uuid_ref"`
	Status      string             `json:"status"`
	Credentials []BucketCredential `json:"credentials"`
}

func (c *Client) GetBucket(safeID, archiveID string) (*Bucket, error) {
	var bucket Bucket
	path := fmt.Sprintf("safe/%s/archive/%s/bucket", safeID, archiveID)
	if err := c.Get(path, &bucket); err != nil {
		return nil, err
	}
	return &bucket, nil
}

// `FirstCredential()` returns the first credential entry, which is the one
// used for the upload.
func (b *Bucket) FirstCredential() (*BucketCredential, error) {
	if len(b.Credentials) == 0 {
		return nil, ErrNoCredentials
	}
	return &b.Credentials[0], nil
}

// `locationRgx` matches `ftp://<userinfo>@<host>:<port>`.
var locationRgx = regexp.MustCompile(
	`^ftp://[^@]*@([^:/@]+):([0-9]+)$`,
)

// `ParseFTPLocation()` extracts host and port from a bucket credential URI.
func ParseFTPLocation(uri string) (string, int, error) {
	m := locationRgx.FindStringSubmatch(uri)
	if m == nil {
		return "", 0, fmt.Errorf(
			"%w: `%s`", ErrMalformedLocation, uri,
		)
	}
	port, err := strconv.Atoi(m[2])
	if err != nil {
		return "", 0, fmt.Errorf(
			"%w: `%s`", ErrMalformedLocation, uri,
		)
	}
	return m[1], port, nil
}
