// Package commands implements the cheatsheet command line.
package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	jww "github.com/spf13/jwalterweatherman"
	"github.com/sunwei/cheatsheet/cheatsheet"
	"github.com/sunwei/cheatsheet/common/loggers"
	"github.com/sunwei/cheatsheet/common/maps"
	"github.com/sunwei/cheatsheet/site"
)

const defaultConfigFilename = "config.toml"

// Execute runs the command line with args, the program name excluded,
// and returns the exit code.
func Execute(args []string) int {
	root := newCommandsBuilder(os.Stdout, os.Stderr, os.Environ()).build()
	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}

// commandsBuilder holds the flags shared by all commands.
type commandsBuilder struct {
	source   string
	cfgFile  string
	basePath string
	verbose  bool
	debug    bool

	fs      afero.Fs
	environ []string
	stdout  io.Writer
	stderr  io.Writer
}

func newCommandsBuilder(stdout, stderr io.Writer, environ []string) *commandsBuilder {
	return &commandsBuilder{
		fs:      afero.NewOsFs(),
		environ: environ,
		stdout:  stdout,
		stderr:  stderr,
	}
}

func (b *commandsBuilder) build() *cobra.Command {
	root := &cobra.Command{
		Use:   "cheatsheet",
		Short: "cheatsheet validates and exports the cheat sheet site configuration",
		Long: `cheatsheet builds the site configuration, either from a config file
or from the built-in one, validates it and exports it for the site generator.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(b.stdout)
	root.SetErr(b.stderr)

	root.PersistentFlags().StringVarP(&b.source, "source", "s", "", "filesystem path to read files relative from")
	root.PersistentFlags().StringVar(&b.cfgFile, "config", defaultConfigFilename, "config file")
	root.PersistentFlags().StringVar(&b.basePath, "base-path", "", "URL path prefix the site is served under, overrides basePath")
	root.PersistentFlags().BoolVarP(&b.verbose, "verbose", "v", false, "verbose output")
	root.PersistentFlags().BoolVar(&b.debug, "debug", false, "debug output")

	root.AddCommand(
		b.newConfigCmd(),
		b.newSidebarCmd(),
		b.newCheckCmd(),
		b.newVersionCmd(),
	)

	return root
}

func (b *commandsBuilder) logger() loggers.Logger {
	threshold := jww.LevelWarn
	switch {
	case b.debug:
		threshold = jww.LevelDebug
	case b.verbose:
		threshold = jww.LevelInfo
	}
	return loggers.NewBasicLoggerForWriter(threshold, b.stderr)
}

func (b *commandsBuilder) workingDir() (string, error) {
	if b.source != "" {
		return filepath.Abs(b.source)
	}
	return os.Getwd()
}

// loadSite builds the Site from the config file, or from the built-in
// configuration when no file was asked for and the default one is absent.
func (b *commandsBuilder) loadSite(cmd *cobra.Command) (*site.Site, loggers.Logger, error) {
	logger := b.logger()

	dir, err := b.workingDir()
	if err != nil {
		return nil, nil, err
	}

	var overrides maps.Params
	if b.basePath != "" {
		overrides = maps.Params{"basePath": b.basePath}
	}

	filename := b.cfgFile
	if !filepath.IsAbs(filename) {
		filename = filepath.Join(dir, filename)
	}

	exists, err := afero.Exists(b.fs, filename)
	if err != nil {
		return nil, nil, err
	}

	d := site.ConfigSourceDescriptor{
		Fs:         b.fs,
		Filename:   filename,
		WorkingDir: dir,
		Environ:    b.environ,
		Overrides:  overrides,
		Logger:     logger,
	}

	if !exists && !cmd.Flags().Changed("config") {
		logger.Infof("no %s found in %s, using the built-in configuration", b.cfgFile, dir)
		s, err := site.FromConfig(cheatsheet.Config, d)
		return s, logger, err
	}

	s, err := site.LoadConfig(d)
	return s, logger, err
}
