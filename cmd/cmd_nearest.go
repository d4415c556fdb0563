package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"geohash-codec/geoindex"
	"geohash-codec/matching"
	"geohash-codec/models"
)

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func newNearestCmd(a *app) *cobra.Command {
	var (
		technique string
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "nearest LAT LON",
		Short: "Find the closest of a set of locations read from stdin",
		Long: `Reads one location per line from stdin, either "id lat lon" or "lat lon"
(a random id is assigned), indexes them and prints the one closest to
LAT LON with its geohash and distance in metres. --json prints the match
as a JSON object instead.

$ printf 'bank 51.5133 -0.0886\naldgate 51.5142 -0.0755\n' | geohash nearest -- 51.514 -0.076
aldgate	51.5142	-0.0755	gcpvn3c5bxrp	41.0
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lat, err := parseCoordinate(args[0], "latitude")
			if err != nil {
				return err
			}
			lon, err := parseCoordinate(args[1], "longitude")
			if err != nil {
				return err
			}
			if technique == "" {
				technique = a.cfg.Index.Technique
			}
			tech, err := geoindex.ParseTechnique(technique)
			if err != nil {
				return err
			}

			idx, err := geoindex.New(geoindex.Options{
				Technique: tech,
				Precision: a.cfg.Index.Precision,
				Radius:    a.cfg.Index.Radius,
				Logger:    a.log,
			})
			if err != nil {
				return err
			}

			input := cmd.InOrStdin()
			if isTerminal(input) {
				fmt.Fprintln(cmd.ErrOrStderr(), "Enter locations as \"id lat lon\", one per line, then Ctrl-D…")
			}
			if err := loadLocations(idx, input); err != nil {
				return err
			}
			a.log.Debug("index built", "locations", idx.Len())

			m, err := matching.FindNearest(idx, lat, lon, a.cfg.Index.MaxRetries)
			if err != nil {
				return err
			}
			if asJSON {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(m)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\t%.1f\n", m.Location.ID,
				formatFloat(m.Location.Latitude), formatFloat(m.Location.Longitude),
				m.Location.Geohash, m.Distance)
			return nil
		},
	}
	cmd.Flags().StringVarP(&technique, "technique", "t", "", "index technique: geohashing, rtree or quadtree (default from config)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the match as JSON")
	return cmd
}

// loadLocations parses "id lat lon" or "lat lon" lines into idx. Blank lines
// and lines starting with # are skipped.
func loadLocations(idx *geoindex.Index, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		var loc models.Location
		switch len(fields) {
		case 2:
			loc.ID = uuid.NewString()
		case 3:
			loc.ID = fields[0]
			fields = fields[1:]
		default:
			return fmt.Errorf("line %d: expected \"id lat lon\" or \"lat lon\", got %q", line, text)
		}

		var err error
		if loc.Latitude, err = parseCoordinate(fields[0], "latitude"); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		if loc.Longitude, err = parseCoordinate(fields[1], "longitude"); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		if _, err := idx.Insert(loc); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
	}
	return scanner.Err()
}
