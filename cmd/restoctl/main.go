// Command restoctl is a developer utility for poking a restaurant backend
// through the restokit client. It fetches one or more endpoints concurrently
// and prints the decoded JSON, which makes it handy for checking what a
// tunneled dev host actually returns (HTML interstitials included).
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/goccy/go-json"
	"golang.org/x/sync/errgroup"

	"github.com/Zardd99/restokit"
)

func main() {
	var (
		baseURL   = flag.String("base-url", "", "backend base URL, e.g. https://api.example.com")
		token     = flag.String("token", "", "bearer token sent with every call (optional)")
		endpoints = flag.String("endpoints", "/menu", "comma-separated endpoint paths to GET")
		asList    = flag.Bool("list", false, "decode responses as list endpoints")
		timeout   = flag.Duration("timeout", 15*time.Second, "receive timeout per call")
		verbose   = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	if *verbose {
		logger = level.NewFilter(logger, level.AllowDebug())
	} else {
		logger = level.NewFilter(logger, level.AllowError())
	}

	if *baseURL == "" {
		fmt.Fprintln(os.Stderr, "restoctl: -base-url is required")
		os.Exit(2)
	}

	client, err := restokit.New(*baseURL,
		restokit.WithLogger(logger),
		restokit.WithReceiveTimeout(*timeout),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "restoctl: %v\n", err)
		os.Exit(2)
	}

	paths := strings.Split(*endpoints, ",")
	outputs := make([][]byte, len(paths))

	g, ctx := errgroup.WithContext(context.Background())
	for i, p := range paths {
		i, path := i, strings.TrimSpace(p)
		g.Go(func() error {
			var opts []restokit.CallOption
			if *token != "" {
				opts = append(opts, restokit.WithToken(*token))
			}

			payload, failure := fetch(ctx, client, path, *asList, opts)
			if failure != nil {
				return fmt.Errorf("%s: %w", path, failure)
			}

			out, err := json.MarshalIndent(payload, "", "  ")
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			outputs[i] = out
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		fmt.Fprintf(os.Stderr, "restoctl: %v\n", err)
		os.Exit(1)
	}

	for i, out := range outputs {
		fmt.Printf("# %s\n%s\n", strings.TrimSpace(paths[i]), out)
	}
}

// fetch runs one call and folds the outcome into a printable payload or the
// classified failure.
func fetch(ctx context.Context, client *restokit.Client, path string, asList bool, opts []restokit.CallOption) (any, *restokit.Failure) {
	if asList {
		res := client.GetList(ctx, path, opts...)
		return restokit.Fold(res,
			func(arr []any) any { return arr },
			func(restokit.Failure) any { return nil },
		), res.FailureOrNil()
	}
	res := client.Get(ctx, path, opts...)
	return restokit.Fold(res,
		func(obj restokit.Object) any { return obj },
		func(restokit.Failure) any { return nil },
	), res.FailureOrNil()
}
