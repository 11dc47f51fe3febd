package main

import (
	"github.com/spf13/cobra"

	"github.com/vango-dev/jsxdom/internal/publish"
)

func publishCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "publish <file>...",
		Short: "Render documents and upload them to S3",
		Long: `Render each document as a complete HTML page and upload it to the
configured bucket as <prefix>/<name>.html.

Credentials are read from AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY and
AWS_SESSION_TOKEN. --endpoint and --path-style target S3-compatible
stores.

Examples:
  jsxdom publish --bucket=site pages/index.yaml pages/about.yaml
  JSXDOM_PUBLISH_BUCKET=site jsxdom publish pages/index.yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, map[string]string{
				"publish.bucket":    "bucket",
				"publish.prefix":    "prefix",
				"publish.region":    "region",
				"publish.endpoint":  "endpoint",
				"publish.pathStyle": "path-style",
				"render.pretty":     "pretty",
			})
			if err != nil {
				return err
			}

			p, err := publish.New(cfg.Publish)
			if err != nil {
				return err
			}
			for _, path := range args {
				name, html, err := renderFile(path, cfg.Render, true)
				if err != nil {
					return err
				}
				res, err := p.Publish(cmd.Context(), name, html)
				if err != nil {
					return err
				}
				success(cmd, "Published s3://%s/%s", res.Bucket, res.Key)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.String("bucket", "", "destination bucket")
	f.String("prefix", "", "key prefix")
	f.String("region", "", "bucket region (default us-east-1)")
	f.String("endpoint", "", "custom S3 endpoint URL")
	f.Bool("path-style", false, "use path-style addressing")
	f.Bool("pretty", false, "indent the published HTML")
	return cmd
}
