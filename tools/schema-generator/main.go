// Command schema-generator writes the JSON schema of twguide.yml so editors
// can validate config files.
package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/grovetools/twguide/config"
	"github.com/grovetools/twguide/logging"
)

func main() {
	log := logging.NewLogger("schema-generator")
	output := pflag.StringP("output", "o", "twguide.schema.json", "Where to write the schema")
	pflag.Parse()

	schemaBytes, err := config.GenerateSchema()
	if err != nil {
		log.WithError(err).Fatal("Error generating schema")
	}

	if dir := filepath.Dir(*output); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.WithError(err).Fatal("Error creating schema directory")
		}
	}
	if err := os.WriteFile(*output, append(schemaBytes, '\n'), 0644); err != nil {
		log.WithError(err).Fatal("Error writing schema file")
	}

	log.WithField("path", *output).Info("Generated config schema")
}
