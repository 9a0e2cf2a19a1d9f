package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Re-validate a document every time it changes on disk",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		path := args[0]
		report := func() {
			if _, err := parseFile(path); err != nil {
				fmt.Println(err)
				return
			}
			fmt.Printf("%s: ok\n", path)
		}
		report()

		w, err := fsnotify.NewWatcher()
		if err != nil {
			return err
		}
		defer w.Close()
		if err := w.Add(filepath.Dir(path)); err != nil {
			return err
		}
		log.Info().Str("path", path).Msg("watching for changes, press Ctrl+C to stop")
		for {
			select {
			case event, ok := <-w.Events:
				if !ok {
					return nil
				}
				if filepath.Clean(event.Name) != filepath.Clean(path) {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				report()
			case err, ok := <-w.Errors:
				if !ok {
					return nil
				}
				log.Error().Err(err).Msg("watcher error")
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
