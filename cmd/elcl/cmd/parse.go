package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	elcl "github.com/erbsland-dev/elcl-go"
	"github.com/erbsland-dev/elcl-go/document"
	"github.com/erbsland-dev/elcl-go/source"
)

var outputFormat string

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a document and print its value tree",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		path := args[0]
		doc, err := parseFile(path)
		if err != nil {
			return err
		}
		switch outputFormat {
		case "yaml":
			return printYAML(doc)
		default:
			fmt.Print(doc.ToTestText(document.TestTextOptions{Flags: document.ShowContainerSize}))
			return nil
		}
	},
}

func init() {
	parseCmd.Flags().StringVar(&outputFormat, "format", "text", "output format: text, yaml")
	rootCmd.AddCommand(parseCmd)
}

func parseFile(path string) (*document.Document, error) {
	p := elcl.New(elcl.Settings{
		AccessCheck:    accessCheck(),
		SourceResolver: sourceResolver(),
	})
	log.Debug().Str("path", path).Msg("parsing document")
	doc, err := p.Parse(source.NewFileSource(path))
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("parse failed")
		return nil, err
	}
	return doc, nil
}

func printYAML(doc *document.Document) error {
	entries := doc.ToFlatValueMap()
	out := make(map[string]string, len(entries))
	for _, e := range entries {
		if e.Value.Kind().IsContainer() {
			continue
		}
		out[e.Path.ToText()] = e.Value.ToTextRepresentation()
	}
	enc := yaml.NewEncoder(os.Stdout)
	defer enc.Close()
	return enc.Encode(out)
}
