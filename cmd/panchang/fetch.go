package main

import (
	"encoding/json"
	"errors"

	"panchang/internal/adapters/prokerala"
	"panchang/internal/core/almanac"
	"panchang/internal/core/chandrashtama"
	"panchang/internal/platform/config"
	"panchang/internal/platform/net/http/bind"
	"panchang/internal/services/api/panchang/domain"
	"panchang/internal/services/api/panchang/service"

	"github.com/spf13/cobra"
)

type fetchFlags struct {
	date     string
	lat, lon float64
	ayanamsa int
	location string
	offline  bool
	rows     bool
}

func newFetchCmd(cfg config.Conf) *cobra.Command {
	var f fetchFlags
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch one panchang day and print it as JSON",
		Long: `Fetches the day from Prokerala when SERVICE_PROKERALA_CLIENT_ID and
SERVICE_PROKERALA_CLIENT_SECRET are set, otherwise prints the sample day.
Output carries display times and chandrashtama warnings.`,
		Example: `  panchang fetch --date 2024-01-01 --location Chennai
  panchang fetch --date 2024-01-01 --lat 51.5074 --lon -0.1278 --ayanamsa 3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := domain.Input{Date: f.date, Ayanamsa: f.ayanamsa, Location: f.location}
			if cmd.Flags().Changed("lat") {
				in.Latitude = &f.lat
			}
			if cmd.Flags().Changed("lon") {
				in.Longitude = &f.lon
			}
			if err := bind.Validate(in); err != nil {
				return err
			}

			var provider domain.Provider
			if !f.offline {
				c, err := prokerala.NewClient(prokerala.FromConfig(cfg.Prefix("SERVICE_")))
				switch {
				case errors.Is(err, prokerala.ErrNotConfigured):
				case err != nil:
					return err
				default:
					defer c.Close()
					provider = c
				}
			}

			data, err := almanac.Load()
			if err != nil {
				return err
			}
			out, err := service.New(provider, chandrashtama.Default(), data).Fetch(cmd.Context(), in)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if f.rows {
				return enc.Encode(out.Rows)
			}
			return enc.Encode(out)
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.date, "date", "", "day in YYYY-MM-DD form")
	fl.Float64Var(&f.lat, "lat", 0, "latitude, -90..90")
	fl.Float64Var(&f.lon, "lon", 0, "longitude, -180..180 (west is negative)")
	fl.IntVar(&f.ayanamsa, "ayanamsa", 1, "1 Lahiri, 3 Raman, 5 KP")
	fl.StringVar(&f.location, "location", "", "named location instead of coordinates")
	fl.BoolVar(&f.offline, "offline", false, "skip the provider and print the sample day")
	fl.BoolVar(&f.rows, "rows", false, "print only the flat display rows")
	_ = cmd.MarkFlagRequired("date")
	return cmd
}
