// clipsave: save the system clipboard to a file.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/clipsave/internal/logging"
)

// Version is set at build time via -ldflags "-X main.Version=x.y.z".
var Version = "dev"

func main() {
	v := viper.New()

	root := &cobra.Command{
		Use:   "clipsave",
		Short: "Save the system clipboard to a file",
		Long: `clipsave inspects the system clipboard, determines whether it holds an
image or plain text, and opens a native "save as" dialog to write that
content to disk. One transfer per invocation.

Images are preferred over text when both are on the clipboard. The image
codec follows the filename you choose: .jpg/.jpeg encodes JPEG, anything
else encodes PNG.

Every outcome (saved, canceled, empty clipboard, unsupported format,
write failure) is reported as a printed message; the exit status is
always 0.

Config file search order (first found wins):
  /etc/clipsave/clipsave.toml
  $HOME/.config/clipsave/clipsave.toml
  path supplied via --config

All flags can be set via CLIPSAVE_<FLAG> env vars or config-file keys.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PreRunE:      func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:         func(_ *cobra.Command, _ []string) error { return runExport(v) },
	}

	f := root.Flags()
	f.Duration("timeout", defaultTimeout, "deadline for the clipboard owner to respond (0 disables)")
	addLoggingFlags(root)
	addConfigFlag(root)

	root.AddCommand(
		newTargetsCmd(),
		newVersionCmd(),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("clipsave %s\n", Version)
		},
	}
}

// resolveLogging sets up the global slog logger after flags are parsed.
func resolveLogging(formatStr, levelStr string) {
	logging.Setup(logging.ParseFormat(formatStr), logging.ParseLevel(levelStr))
}
