// Package config loads jsxdom settings.
//
// Settings come from jsxdom.yaml in the working directory (or the file
// passed with --config), overridden by JSXDOM_* environment variables,
// overridden by command line flags. Nested keys map to environment
// variables with underscores: render.pretty is JSXDOM_RENDER_PRETTY.
//
// # Configuration File Structure
//
//	markup:
//	  dir: pages
//	render:
//	  pretty: true
//	  indent: "  "
//	  eventMarkers: false
//	dev:
//	  host: localhost
//	  port: 3000
//	  reload: true
//	  debounce: 100ms
//	log:
//	  level: info
//	  format: text
//	publish:
//	  bucket: my-site
//	  prefix: pages/
//	  region: us-east-1
//
// # Usage
//
//	cfg, err := config.Load(config.WithFile("jsxdom.yaml"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("Port:", cfg.Dev.Port)
package config
