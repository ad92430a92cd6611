package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/kailas-cloud/dunerides"
	catalogrepo "github.com/kailas-cloud/dunerides/internal/repository/catalog"
	"github.com/kailas-cloud/dunerides/internal/version"
)

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newApp(out io.Writer) *cli.App {
	return &cli.App{
		Name:    "dunectl",
		Usage:   "Query the dunerides catalog and mock weather from the command line",
		Version: version.Version,
		Writer:  out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "catalog",
				Aliases: []string{"c"},
				Usage:   "Path to a catalog YAML file (default: built-in catalog)",
				EnvVars: []string{"CATALOG_PATH"},
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Print JSON instead of a table",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "search",
				Usage:     "Search vehicles and tours",
				ArgsUsage: "<query>",
				Action:    searchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "category",
						Usage: "Restrict to one category (vehicle, tour, post)",
					},
					&cli.BoolFlag{
						Name:  "posts",
						Usage: "Include content posts in results",
					},
				},
			},
			{
				Name:   "weather",
				Usage:  "Print the mock weather snapshot",
				Action: weatherCommand,
				Flags: []cli.Flag{
					&cli.DurationFlag{
						Name:  "latency",
						Usage: "Simulated provider latency",
						Value: 500 * time.Millisecond,
					},
					&cli.StringFlag{
						Name:  "timezone",
						Usage: "IANA zone in which forecast days start",
						Value: "UTC",
					},
				},
			},
			{
				Name:  "catalog",
				Usage: "Catalog file tools",
				Subcommands: []*cli.Command{
					{
						Name:      "validate",
						Usage:     "Check a catalog file for missing or duplicate ids",
						ArgsUsage: "<file>",
						Action:    validateCommand,
					},
				},
			},
		},
	}
}

func searchCommand(c *cli.Context) error {
	if c.NArg() < 1 {
		return errors.New("search requires a query argument")
	}

	client, err := dunerides.New(
		dunerides.WithCatalogFile(c.String("catalog")),
		dunerides.WithPosts(c.Bool("posts")),
	)
	if err != nil {
		return err
	}

	ctx := context.Background()
	query := c.Args().First()

	var results []dunerides.SearchResult
	if cat := c.String("category"); cat != "" {
		results, err = client.Search().QueryCategory(ctx, query, dunerides.Category(cat))
		if err != nil {
			return err
		}
	} else {
		results = client.Search().Query(ctx, query)
	}

	if c.Bool("json") {
		return writeJSON(c.App.Writer, results)
	}

	tw := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tID\tTITLE\tLINK")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Category, r.ID, r.Title, r.Link)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	fmt.Fprintf(c.App.Writer, "%d result(s)\n", len(results))
	return nil
}

func weatherCommand(c *cli.Context) error {
	zone, err := time.LoadLocation(c.String("timezone"))
	if err != nil {
		return fmt.Errorf("timezone %q: %w", c.String("timezone"), err)
	}

	client, err := dunerides.New(
		dunerides.WithCatalogFile(c.String("catalog")),
		dunerides.WithWeatherLatency(c.Duration("latency")),
		dunerides.WithTimeZone(zone),
	)
	if err != nil {
		return err
	}

	snap, err := client.Weather().Snapshot(c.Context)
	if err != nil {
		return err
	}

	if c.Bool("json") {
		return writeJSON(c.App.Writer, snap)
	}

	w := c.App.Writer
	cur := snap.Current
	fmt.Fprintf(w, "%s\n", snap.Location)
	fmt.Fprintf(w, "Now: %s %s %.0f°C, humidity %d%%, wind %.0f km/h, UV %d\n",
		cur.Icon, cur.Condition, cur.Temperature, cur.Humidity, cur.WindSpeed, cur.UVIndex)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tCONDITION\tMAX\tMIN")
	for _, d := range snap.Forecast {
		fmt.Fprintf(tw, "%s\t%s %s\t%.0f°C\t%.0f°C\n",
			d.Date.Format("Mon 2 Jan"), d.Icon, d.Condition, d.MaxTemp, d.MinTemp)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("write forecast: %w", err)
	}
	return nil
}

func validateCommand(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		return errors.New("catalog validate requires a file argument")
	}

	repo, err := catalogrepo.Load(path)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "%s: ok (%d vehicles, %d tours, %d posts)\n",
		path, len(repo.Vehicles()), len(repo.Tours()), len(repo.Posts()))
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}
