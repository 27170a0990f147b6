package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/route53"

	"github.com/mysteriumnetwork/zonegrep/aggregator"
	"github.com/mysteriumnetwork/zonegrep/enumerator"
	"github.com/mysteriumnetwork/zonegrep/heartbeat"
	"github.com/mysteriumnetwork/zonegrep/matcher"
	"github.com/mysteriumnetwork/zonegrep/reporter"
	"github.com/mysteriumnetwork/zonegrep/workflow"
)

var version = "undefined"

var (
	// global options
	showVersion = flag.Bool("version", false, "show program version and exit")
	timeout     = flag.Duration("timeout", 5*time.Minute, "overall run timeout")

	// enumerator options
	rateLimitEvery = flag.Duration("rate-every", 250*time.Millisecond, "minimal interval between API calls (inverse of frequency)")
	parallelZones  = flag.Int("parallel", aggregator.DefaultParallelism, "concurrent per-zone record set fetches")

	// matcher options
	record    = flag.String("record", "", "record value to search for (literal value or regex pattern)")
	matchMode = flag.String("match", "equality", "match mode: equality or regex")

	// reporter options
	format       = flag.String("format", "json", "output format: json or csv")
	outputFile   = flag.String("file", "", "write output to a file instead of stdout")
	csvHeaders   = flag.Bool("csv-headers", false, "prepend a header row to CSV output")
	showCount    = flag.Bool("count", false, "log the number of matching record values")
	pagerDutyKey = flag.String("pagerduty-key", "", "PagerDuty Events v2 routing key to alert on every match")
	heartbeatURL = flag.String("heartbeat-url", "", "URL to GET after a fully successful run")
)

func run() int {
	flag.Parse()
	if *showVersion {
		fmt.Println(version)
		return 0
	}

	if *record == "" {
		log.Fatal("record is not specified")
	}

	var mode matcher.Mode
	switch *matchMode {
	case "equality":
		mode = matcher.ModeEquality
	case "regex":
		mode = matcher.ModeRegex
	default:
		log.Fatalf("unknown match mode: %q", *matchMode)
	}

	pred, err := matcher.NewPredicate(matcher.Options{
		Record: *record,
		Mode:   mode,
	})
	if err != nil {
		log.Fatalf("unable to construct match predicate: %v", err)
	}

	if *pagerDutyKey == "" {
		envKey := os.Getenv("PAGERDUTY_ROUTING_KEY")
		if envKey != "" {
			*pagerDutyKey = envKey
		}
	}

	ctx, cl := context.WithTimeout(context.Background(), *timeout)
	defer cl()

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		log.Fatalf("unable to load AWS configuration: %v", err)
	}

	var enum enumerator.Enumerator = enumerator.NewRoute53Enumerator(
		route53.NewFromConfig(awsCfg),
		*rateLimitEvery,
	)
	var agg aggregator.Aggregator = aggregator.NewConcurrentAggregator(enum, *parallelZones)

	var out io.Writer = os.Stdout
	if *outputFile != "" {
		f, err := os.Create(*outputFile)
		if err != nil {
			log.Fatalf("unable to create output file: %v", err)
		}
		defer f.Close()
		out = f
	}

	var drains []reporter.Reporter
	switch *format {
	case "json":
		drains = append(drains, reporter.NewJSONReporter(out))
	case "csv":
		drains = append(drains, reporter.NewCSVReporter(out).SetHeaders(*csvHeaders))
	default:
		log.Fatalf("unknown output format: %q", *format)
	}
	if *showCount {
		drains = append(drains, reporter.NewCountReporter())
	}
	if *pagerDutyKey != "" {
		drains = append(drains, reporter.NewPagerDutyReporter(*pagerDutyKey))
	}

	var beat heartbeat.Heartbeat = heartbeat.NewNopHeartbeat()
	if *heartbeatURL != "" {
		beat = heartbeat.NewURLHeartbeat(*heartbeatURL)
	}

	runner := workflow.NewRunner(agg, pred, reporter.NewMultiReporter(drains...), beat)
	if err := runner.Run(ctx); err != nil {
		log.Printf("run failed: %v", err)
		return 1
	}

	return 0
}

func main() {
	log.Default().SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile)
	os.Exit(run())
}
