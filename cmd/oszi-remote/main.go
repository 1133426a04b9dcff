package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/oszi-tools/osziremote/internal/cliconfig"
	"github.com/oszi-tools/osziremote/internal/export"
	"github.com/oszi-tools/osziremote/internal/serialport"
	"github.com/oszi-tools/osziremote/internal/viewer"
	"github.com/oszi-tools/osziremote/pkg/gds"
	logpkg "github.com/oszi-tools/osziremote/pkg/log"
)

const helpDescription = `
Reads one memory waveform dump from a GW Instek GDS-1000B oscilloscope over
a serial link and characterizes the noise: mean, sample standard deviation,
and a Gaussian fit over the voltage histogram.

Highlights:
  - Decodes the vendor ASCII-header + binary-block format from arbitrarily
    chunked serial input.
  - Prints a summary line and a histogram with the fitted curve.
  - Optional CSV export (index,value,raw_int16) and PNG figure export.
  - Configure via file ($HOME/.oszi-remote/config.toml), OSZI_* env, or flags.
`

var exampleUsage = strings.TrimSpace(`
  oszi-remote --list-ports
  oszi-remote --port /dev/ttyUSB0 --channel 1
  oszi-remote --port COM5 --csv noise.csv --png noise.png --no-show
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string
	var listPorts bool

	root := &cobra.Command{
		Use:     "oszi-remote",
		Short:   "Read a GDS-1000B memory waveform over serial and characterize its noise",
		Long:    strings.TrimSpace(helpDescription),
		Example: exampleUsage,
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		RunE: func(cmd *cobra.Command, args []string) error {
			if listPorts {
				return printPorts(cmd)
			}

			// Build set of changed flags so file/env layers never override
			// an explicitly set flag.
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}
			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}
			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			log := cliconfig.Logger(cfg.Verbose)
			logger := logpkg.NewZerologAdapterWithLogger(log)

			if ports := serialport.List(); len(ports) > 0 && !contains(ports, cfg.Port) {
				logger.Warn("port not in the current port list", logpkg.String("port", cfg.Port))
			}

			port, err := serialport.Open(cfg.Port, cfg.Baud)
			if err != nil {
				return err
			}
			defer port.Close()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			wf, err := gds.Acquire(ctx, port, gds.Config{
				Channel: cfg.Channel,
				Timeout: cfg.Timeout,
			}, logger)
			if err != nil {
				if errors.Is(err, gds.ErrTimeout) {
					return errors.New("no complete data received from the oscilloscope within the timeout")
				}
				return err
			}

			if cfg.CSVPath != "" {
				if err := export.WriteCSV(cfg.CSVPath, wf); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote CSV: %s (N=%d)\n", cfg.CSVPath, wf.Len())
			}
			if cfg.PNGPath != "" {
				if err := export.WritePNG(cfg.PNGPath, wf.Volts, cfg.Bins); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote PNG: %s\n", cfg.PNGPath)
			}

			if wf.Len() == 0 {
				logger.Warn("empty waveform: device sent a zero-length payload")
				return nil
			}

			r, err := viewer.Summarize(wf.Volts)
			if err != nil {
				return err
			}
			viewer.WriteSummary(cmd.OutOrStdout(), r)

			if !cfg.NoShow {
				if err := viewer.WriteHistogram(cmd.OutOrStdout(), wf.Volts, cfg.Bins); err != nil {
					return err
				}
			}
			return nil
		},
	}

	root.Flags().BoolVar(&listPorts, "list-ports", false, "list available serial ports and exit")
	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.oszi-remote/config.toml)")
	root.Flags().StringVar(&cfg.Port, "port", cfg.Port, "serial port, e.g. /dev/ttyUSB0 or COM5")
	root.Flags().IntVar(&cfg.Baud, "baud", cfg.Baud, "baud rate")
	root.Flags().IntVar(&cfg.Channel, "channel", cfg.Channel, "oscilloscope channel to dump")
	root.Flags().DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "acquisition timeout")
	root.Flags().IntVar(&cfg.Bins, "bins", cfg.Bins, "histogram bin count")
	root.Flags().StringVar(&cfg.CSVPath, "csv", cfg.CSVPath, "write samples as CSV (file must not exist)")
	root.Flags().StringVar(&cfg.PNGPath, "png", cfg.PNGPath, "write time series + histogram figure as PNG")
	root.Flags().BoolVar(&cfg.NoShow, "no-show", cfg.NoShow, "skip the terminal histogram (useful for automated runs)")
	root.Flags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "enable debug output")

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		fmt.Fprintln(os.Stderr, "Tip: oszi-remote --list-ports")
		os.Exit(2)
	}
}

func printPorts(cmd *cobra.Command) error {
	ports := serialport.List()
	if len(ports) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No serial ports found.")
		return nil
	}
	for _, p := range ports {
		fmt.Fprintln(cmd.OutOrStdout(), p)
	}
	return nil
}

func contains(xs []string, s string) bool {
	for _, x := range xs {
		if x == s {
			return true
		}
	}
	return false
}
