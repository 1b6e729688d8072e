// Package app is the CLI orchestration layer: environment loading, logging
// setup and subcommand dispatch. The codec itself lives in the root package
// and never logs.
package app

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"spur"
	"spur/internal/config"
	"spur/internal/geocheck"
	"spur/internal/verify"
)

const usage = "usage: spur [flags] <inspect|normalize|verify|geocheck> <path>"

func Run() error {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found. Falling back to system environment variables.")
	}

	settings := config.Load()
	if level, err := log.ParseLevel(settings.LogLevel); err == nil {
		log.SetLevel(level)
	} else {
		log.Warn("invalid log level, keeping default", "value", settings.LogLevel)
	}

	entityFlag := flag.String("entity", "context", "Entity type: context, tag, status or assessment")
	workersFlag := flag.Int("workers", settings.VerifyWorkers, "Concurrent file decodes during verify")
	geoliteFlag := flag.String("geolite-dir", settings.GeoLiteDir, "Directory holding the GeoLite2 .mmdb files")
	flag.Parse()

	args := flag.Args()
	if len(args) != 2 {
		return fmt.Errorf("%s", usage)
	}
	command, path := args[0], args[1]

	switch command {
	case "inspect":
		return runInspect(*entityFlag, path)
	case "normalize":
		return runNormalize(path)
	case "verify":
		return runVerify(path, *entityFlag, *workersFlag)
	case "geocheck":
		return runGeocheck(*geoliteFlag, path)
	default:
		return fmt.Errorf("unknown command %q\n%s", command, usage)
	}
}

// runInspect decodes one file and logs its salient fields.
func runInspect(entity, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	switch entity {
	case "context":
		record, err := spur.DecodeContext(data)
		if err != nil {
			return err
		}
		logContext(path, record)
	case "tag":
		record, err := spur.DecodeTagMetadata(data)
		if err != nil {
			return err
		}
		log.Info("tag metadata",
			"file", path,
			"tag", stringOr(record.Tag, "-"),
			"name", stringOr(record.Name, "-"),
			"anonymous", record.IsAnonymous != nil && bool(*record.IsAnonymous),
			"categories", len(record.Categories))
	case "status":
		record, err := spur.DecodeStatus(data)
		if err != nil {
			return err
		}
		log.Info("api status",
			"file", path,
			"active", record.Active != nil && *record.Active,
			"queriesRemaining", uint64Or(record.QueriesRemaining, 0),
			"serviceTier", stringOr(record.ServiceTier, "-"))
	case "assessment":
		record, err := spur.DecodeAssessment(data)
		if err != nil {
			return err
		}
		log.Info("assessment",
			"file", path,
			"ip", record.IP,
			"anonymized", record.IsAnonymized(),
			"trustworthy", record.IsTrustworthy(),
			"sid", record.SID)
	default:
		return fmt.Errorf("unknown entity %q, want context, tag, status or assessment", entity)
	}
	return nil
}

func logContext(path string, record *spur.IPContext) {
	fields := []any{
		"file", path,
		"ip", stringOr(record.IP, "-"),
		"risks", len(record.Risks),
		"services", len(record.Services),
		"tunnels", len(record.Tunnels),
	}
	if record.Infrastructure != nil {
		fields = append(fields, "infrastructure", record.Infrastructure.String(),
			"knownInfrastructure", record.Infrastructure.Known())
	}
	if record.AutonomousSystem != nil && record.AutonomousSystem.Number != nil {
		fields = append(fields, "asn", *record.AutonomousSystem.Number)
	}
	if record.Organization != nil {
		fields = append(fields, "organization", *record.Organization)
	}
	log.Info("ip context", fields...)

	for i, tunnel := range record.Tunnels {
		log.Debug("tunnel",
			"index", i,
			"type", tunnelType(tunnel),
			"operator", stringOr(tunnel.Operator, "-"),
			"anonymous", tunnel.Anonymous != nil && *tunnel.Anonymous,
			"entries", len(tunnel.Entries))
	}
}

// runNormalize decodes a context file and writes the canonical encoding to
// stdout: bare-string tunnels become objects, unknown tokens stay verbatim.
func runNormalize(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	record, err := spur.DecodeContext(data)
	if err != nil {
		return err
	}
	encoded, err := spur.EncodeContext(record)
	if err != nil {
		return err
	}

	if _, err := os.Stdout.Write(append(encoded, '\n')); err != nil {
		return fmt.Errorf("write canonical form: %w", err)
	}
	return nil
}

func runVerify(dir, entity string, workers int) error {
	results, err := verify.Directory(context.Background(), dir, entity, workers)
	if err != nil {
		return err
	}

	failed := verify.Failed(results)
	for _, result := range failed {
		log.Error("round trip failed", "file", result.Path, "error", result.Err)
	}
	log.Info("verify completed", "dir", dir, "entity", entity, "files", len(results), "failed", len(failed))

	if len(failed) > 0 {
		return fmt.Errorf("%d of %d files failed to round-trip", len(failed), len(results))
	}
	return nil
}

func runGeocheck(geoliteDir, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	record, err := spur.DecodeContext(data)
	if err != nil {
		return err
	}

	checker, err := geocheck.Open(geoliteDir)
	if err != nil {
		return err
	}
	defer func() {
		if err := checker.Close(); err != nil {
			log.Warn("error closing geolite readers", "error", err)
		}
	}()

	mismatches, err := checker.Check(record)
	if err != nil {
		return err
	}
	for _, mismatch := range mismatches {
		log.Warn("geolite disagrees", "field", mismatch.Field, "record", mismatch.Record, "lookup", mismatch.Lookup)
	}
	log.Info("geocheck completed", "file", path, "mismatches", len(mismatches))
	return nil
}

func tunnelType(tunnel spur.Tunnel) string {
	if tunnel.Type == nil {
		return "-"
	}
	return tunnel.Type.String()
}

func stringOr(value *string, fallback string) string {
	if value == nil {
		return fallback
	}
	return *value
}

func uint64Or(value *uint64, fallback uint64) uint64 {
	if value == nil {
		return fallback
	}
	return *value
}
