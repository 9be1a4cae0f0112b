package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/suparena/jobentity"
	"github.com/suparena/jobentity/config"
	"github.com/suparena/jobentity/datastore/ddb"
	"github.com/suparena/jobentity/entity"
	"github.com/suparena/jobentity/fixtures"
)

var (
	versionFlag = flag.Bool("version", false, "Show version information")
	vFlag       = flag.Bool("v", false, "Show version information (short)")
	fileFlag    = flag.String("file", "", "YAML seed file with jobs to print")
	putFlag     = flag.Bool("put", false, "Insert the seeded jobs into the configured DynamoDB table")
	envFlag     = flag.String("env", ".env", "dotenv file to load before reading the environment")
)

func main() {
	flag.Parse()

	if *versionFlag || *vFlag {
		info := jobentity.GetVersionInfo()
		fmt.Printf("jobentity version %s\n", info.Version)
		fmt.Printf("Git commit: %s\n", info.GitCommit)
		fmt.Printf("Build date: %s\n", info.BuildDate)
		fmt.Printf("Go version: %s\n", info.GoVersion)
		os.Exit(0)
	}

	if *fileFlag == "" {
		fmt.Fprintln(os.Stderr, "usage: jobentity -file seeds.yaml [-put]")
		os.Exit(2)
	}

	opts := options{seedFile: *fileFlag, put: *putFlag, envFile: *envFlag}
	if err := run(context.Background(), os.Stdout, opts); err != nil {
		slog.Error("jobentity failed", "error", err)
		os.Exit(1)
	}
}

type options struct {
	seedFile string
	put      bool
	envFile  string
}

// run prints every seeded record to out and, with opts.put, stores them.
func run(ctx context.Context, out io.Writer, opts options) error {
	seeds, err := fixtures.LoadFile(opts.seedFile)
	if err != nil {
		return err
	}
	records := fixtures.Records(seeds)

	for _, rec := range records {
		fmt.Fprintf(out, "PartitionKey=%s RowKey=%s\n%s\n", rec.PartitionKey, rec.RowKey, entity.Describe(rec))
	}
	if !opts.put {
		return nil
	}

	cfg, err := config.Load(opts.envFile)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	level, _ := cfg.SlogLevel()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	store, err := ddb.NewDynamodbBagStore(ctx, cfg.AWSAccessKey, cfg.AWSSecretKey, cfg.AWSRegion, cfg.Endpoint, cfg.TableName,
		ddb.WithLogger(logger))
	if err != nil {
		return err
	}
	repo := jobentity.NewRepository(store, jobentity.WithLogger(logger))

	for _, rec := range records {
		stored, err := repo.Insert(ctx, rec)
		if err != nil {
			return err
		}
		logger.Info("job stored", "partitionKey", stored.PartitionKey, "rowKey", stored.RowKey, "etag", stored.ETag)
	}
	return nil
}
