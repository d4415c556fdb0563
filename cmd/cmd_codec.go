package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"geohash-codec/geohash"
)

func newEncodeCmd(a *app) *cobra.Command {
	var precision uint8

	cmd := &cobra.Command{
		Use:   "encode LAT LON",
		Short: "Encode a coordinate into a geohash",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lat, err := parseCoordinate(args[0], "latitude")
			if err != nil {
				return err
			}
			lon, err := parseCoordinate(args[1], "longitude")
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("precision") {
				precision = a.cfg.Geohash.Precision
			}

			hash, err := geohash.Encode(lat, lon, precision)
			if err != nil {
				return err
			}
			a.log.Debug("encoded", "lat", lat, "lon", lon, "precision", precision, "hash", hash)
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
	cmd.Flags().Uint8VarP(&precision, "precision", "p", 12, "number of geohash symbols (1-12)")
	return cmd
}

func newDecodeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "decode HASH...",
		Short: "Decode geohashes into their cell centre and bounds",
		Long: `Prints one line per geohash: the hash, the centre latitude and longitude,
then the cell bounds as min_lat,min_lon,max_lat,max_lon.

$ geohash decode ezs42
ezs42	42.60498	-5.6030273	42.583008,-5.625,42.626953,-5.5810547
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, hash := range args {
				lat, lon, err := geohash.Decode(hash)
				if err != nil {
					return err
				}
				box, err := geohash.DecodeBox(hash)
				if err != nil {
					return err
				}
				a.log.Debug("decoded", "hash", hash, "lat", lat, "lon", lon)
				fmt.Fprintf(out, "%s\t%s\t%s\t%s,%s,%s,%s\n", hash,
					formatFloat(lat), formatFloat(lon),
					formatFloat(box.MinLat), formatFloat(box.MinLon),
					formatFloat(box.MaxLat), formatFloat(box.MaxLon))
			}
			return nil
		},
	}
}

func newNeighborsCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "neighbors HASH",
		Short: "List the eight cells around a geohash",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for d := geohash.North; d <= geohash.NorthWest; d++ {
				n, err := geohash.Neighbor(args[0], d)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", d, n)
			}
			return nil
		},
	}
}

func newCellsCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cells",
		Short: "Print the cell size for every precision",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "precision\twidth_m\theight_m")
			for p := uint8(1); p <= geohash.MaxPrecision; p++ {
				dims, err := geohash.CellSize(p)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%d\t%g\t%g\n", p, dims.Width, dims.Height)
			}
			return nil
		},
	}
}

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Encode and decode a fixed sample point",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			const (
				latitude  float32 = -0.08635
				longitude float32 = 51.52562
				precision uint8   = 12
			)
			hash, err := geohash.Encode(latitude, longitude, precision)
			if err != nil {
				return err
			}
			lat, lon, err := geohash.Decode(hash)
			if err != nil {
				return err
			}
			a.log.Info("demo", "hash", hash)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n", hash)
			fmt.Fprintf(out, "Latitude value: %s\n", formatFloat(lat))
			fmt.Fprintf(out, "Longitude value: %s\n", formatFloat(lon))
			return nil
		},
	}
}
