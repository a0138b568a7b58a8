package cmd

import (
	"fmt"
	"time"

	"github.com/ariebrainware/healthghar/config"
	"github.com/ariebrainware/healthghar/util"
	"github.com/spf13/cobra"
)

func geoipCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "geoip",
		Short: "Manage the GeoIP database used by the security log",
	}

	var url, dest string
	var timeout time.Duration
	download := &cobra.Command{
		Use:   "download",
		Short: "Download and validate a GeoLite2 city database",
		RunE: func(cmd *cobra.Command, args []string) error {
			if url == "" {
				return fmt.Errorf("--url is required")
			}
			if dest == "" {
				dest = config.LoadConfig().GeoIPDBPath
			}
			if dest == "" {
				return fmt.Errorf("--dest or GEOIP_DB_PATH is required")
			}
			path, err := util.DownloadGeoIPWithRequest(cmd.Context(), util.DownloadRequest{URL: url, DestPath: dest, Timeout: timeout})
			if err != nil {
				return fmt.Errorf("download failed: %w", err)
			}
			if err := util.ValidateGeoIP(path); err != nil {
				return fmt.Errorf("downloaded file is not a valid database: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "GeoIP database written to %s\n", path)
			return nil
		},
	}
	download.Flags().StringVar(&url, "url", "", "Database URL (.mmdb or .mmdb.gz)")
	download.Flags().StringVar(&dest, "dest", "", "Destination path, defaults to GEOIP_DB_PATH")
	download.Flags().DurationVar(&timeout, "timeout", time.Minute, "Download timeout")
	cmd.AddCommand(download)
	return cmd
}
