// vim: sw=8

// Command `c14put` pipes stdin into a new cold-storage archive.
package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/docopt/docopt-go"

	"github.com/c14tools/c14put/pkg/mulog"
	"github.com/c14tools/c14put/pkg/zap"
)

// `xVersion` and `xBuild` are injected by the `Makefile`.
var (
	xVersion string
	xBuild   string
	version  = fmt.Sprintf("c14put-%s+%s", xVersion, xBuild)
)

// `qqBackticks()` translates double single quote to backtick.
func qqBackticks(s string) string {
	return strings.Replace(s, "''", "`", -1)
}

var usage = qqBackticks(strings.TrimSpace(`
Usage:
  c14put [options] --conf=<path>

Options:
  --conf=<path>   Configuration file with the API endpoint and credentials.
                  ''.yml'' and ''.yaml'' files are parsed as YAML, other
                  files as HCL.
  --name=<name>   Name of the new archive.  The default is
                  ''c14put-<uuid>''.
  --description=<text>  Description of the new archive.
  --job-timeout=<duration>  [default: 300s]
                  Maximum time to wait for the provisioning jobs of the new
                  archive.
  --limit=<bandwidth>  Bandwidth limit in bytes per second on the upload
                  stream.  ''k'', ''m'', ... can be used, which are
                  interpreted as binary SI.
  --zstd          Compress the stream with zstd before uploading.  The
                  remote file is named ''data.zst'' instead of ''data''.
  --log=<logger>  [default: prod]
                  Specify logger: prod, dev, or mu.
  -v, --verbose   Log debug details, including API request and response
                  bodies.

''c14put'' reads a data stream from stdin and pipes it into a new
cold-storage archive: it resolves the configured safe, creates an archive
below it, waits until the archive's provisioning jobs have completed,
uploads the stream to the archive's FTP bucket, and finally seals the
archive.

A failed run aborts immediately and leaves whatever archive state was
created remotely.  A subsequent run starts a wholly new archive; there is
no resume.

Example config:

    apiToken = "..."
    apiUrl = "https://api.example.org"
    safeName = "backups"
    platformId = "1"
`))

type Logger interface {
	Debugw(msg string, kv ...interface{})
	Infow(msg string, kv ...interface{})
	Warnw(msg string, kv ...interface{})
	Errorw(msg string, kv ...interface{})
	Fatalw(msg string, kv ...interface{})
}

var lg Logger = mulog.Printer{}

func main() {
	args := argparse()
	initLogging(args)
	cmdSave(args)
}

func argparse() map[string]interface{} {
	const autoHelp = true
	const noOptionFirst = false
	args, err := docopt.Parse(
		usage, nil, autoHelp, version, noOptionFirst,
	)
	if err != nil {
		lg.Fatalw("docopt failed.", "err", err)
	}

	for _, k := range []string{
		"--job-timeout",
	} {
		if arg, ok := args[k].(string); ok {
			d, err := time.ParseDuration(arg)
			if err != nil {
				msg := fmt.Sprintf("Invalid %s.", k)
				lg.Fatalw(msg, "err", err)
			}
			args[k] = d
		}
	}

	for _, k := range []string{
		"--limit",
	} {
		if arg, ok := args[k].(string); ok {
			v, err := parseUint64Si(arg)
			if err != nil {
				msg := fmt.Sprintf("Invalid %s.", k)
				lg.Fatalw(msg, "err", err)
			}
			args[k] = v
		}
	}

	return args
}

func initLogging(args map[string]interface{}) {
	verbose := args["--verbose"].(bool)
	var err error
	switch args["--log"].(string) {
	case "prod":
		var zlg *zap.Logger
		zlg, err = zap.NewProduction(verbose)
		if err == nil {
			lg = zlg
		}
	case "dev":
		var zlg *zap.Logger
		zlg, err = zap.NewDevelopment(verbose)
		if err == nil {
			lg = zlg
		}
	case "mu":
		lg = mulog.Printer{Verbose: verbose}
	default:
		err = fmt.Errorf("invalid --log option")
	}
	if err != nil {
		lg.Fatalw("Failed to initialize logging.", "err", err)
	}
}

var siMap = map[string]uint64{
	"k": 1 << 10,
	"m": 1 << 20,
	"g": 1 << 30,
	"t": 1 << 40,
}

func parseUint64Si(s string) (uint64, error) {
	s = strings.ToLower(s)

	m := uint64(1)
	for suf, mult := range siMap {
		if strings.HasSuffix(s, suf) {
			m = mult
			s = s[0 : len(s)-len(suf)]
			break
		}
	}

	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		err := fmt.Errorf("must be positive, got %d", v)
		return 0, err
	}

	return uint64(v) * m, nil
}
