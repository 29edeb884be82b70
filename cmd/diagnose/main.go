// Command diagnose runs the pre-deploy environment and connectivity
// checks: environment variables, MongoDB, object storage, the email
// provider, secret strength, the CORS origin and a handful of local
// API routes.  Every check failure is reported and counted; the
// process still exits 0 so CI pipelines can decide what to do with the
// report.  Exit code 1 is reserved for a failure of the tool itself.
package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/campusbites/campusbites-api/internal/diag"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win

	baseURL := flag.String("base-url", defaultBaseURL(), "base URL of the local API server to probe")
	flag.Parse()

	if err := run(os.Stdout, *baseURL); err != nil {
		log.Fatalf("diagnose: %v", err)
	}
}

func defaultBaseURL() string {
	if v := os.Getenv("DIAG_BASE_URL"); v != "" {
		return v
	}
	return diag.DefaultBaseURL
}

func run(out io.Writer, baseURL string) error {
	ctx := context.Background()

	runner := &diag.Runner{
		Out: out,
		Checks: []diag.Check{
			{
				Title: "Environment variables",
				Run: func(context.Context) []diag.Result {
					return diag.CheckEnv(diag.DefaultEnvSpecs(), os.LookupEnv)
				},
			},
			{
				Title: "Database",
				Run: func(ctx context.Context) []diag.Result {
					return diag.CheckDatabase(ctx, os.Getenv("MONGODB_URI"))
				},
			},
			{
				Title: "Object storage",
				Run: func(ctx context.Context) []diag.Result {
					return diag.CheckObjectStorage(ctx,
						os.Getenv("CLOUD_NAME"),
						os.Getenv("API_KEY"),
						os.Getenv("API_SECRET_KEY"))
				},
			},
			{
				Title: "Email service",
				Run: func(ctx context.Context) []diag.Result {
					return diag.CheckEmail(ctx, diag.DefaultEmailEndpoint, os.Getenv("EMAIL_API_KEY"))
				},
			},
			{
				Title: "Secret strength",
				Run: func(context.Context) []diag.Result {
					return diag.CheckSecrets([]diag.NamedSecret{
						{Name: "ACCESS_TOKEN_SECRET", Value: os.Getenv("ACCESS_TOKEN_SECRET")},
						{Name: "REFRESH_TOKEN_SECRET", Value: os.Getenv("REFRESH_TOKEN_SECRET")},
					})
				},
			},
			{
				Title: "CORS origin",
				Run: func(context.Context) []diag.Result {
					return diag.CheckCORSOrigin(os.Getenv("FRONTEND_URL"))
				},
			},
			{
				Title: "Local API endpoints",
				Run: func(ctx context.Context) []diag.Result {
					return diag.CheckEndpoints(ctx, nil, baseURL, diag.DefaultEndpoints())
				},
			},
		},
	}

	rep := runner.Run(ctx)
	diag.PrintSummary(out, rep)
	return nil
}
