package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/fieldstream/stream-csv/pkg/csv"
)

// dialectProfile is one named dialect in a YAML config file:
//
//	profiles:
//	  bank:
//	    delimiter: ";"
//	    strict: true
type dialectProfile struct {
	Delimiter   string `yaml:"delimiter"`
	Quote       string `yaml:"quote"`
	Strict      bool   `yaml:"strict"`
	EmptyIsNull bool   `yaml:"empty_is_null"`
}

type configFile struct {
	Profiles map[string]dialectProfile `yaml:"profiles"`
}

// dialectFlags are the flags shared by every subcommand that parses CSV.
// A profile from --config/--profile supplies defaults; explicit flags win.
type dialectFlags struct {
	delimiter string
	quote     string
	strict    bool
	null      bool
	config    string
	profile   string
}

func (d *dialectFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&d.delimiter, "delimiter", "d", "", `field delimiter (single byte, or "tab")`)
	cmd.Flags().StringVarP(&d.quote, "quote", "q", "", "quote byte")
	cmd.Flags().BoolVar(&d.strict, "strict", false, "treat malformed quoting as an error")
	cmd.Flags().BoolVar(&d.null, "null", false, "distinguish empty unquoted fields as null")
	cmd.Flags().StringVar(&d.config, "config", "", "YAML file with dialect profiles")
	cmd.Flags().StringVar(&d.profile, "profile", "", "profile name from the config file")
}

// options resolves the flags (and optional profile) into validated Options.
func (d *dialectFlags) options(cmd *cobra.Command) (csv.Options, error) {
	opts := csv.DefaultOptions()

	if d.config != "" {
		prof, err := loadProfile(d.config, d.profile)
		if err != nil {
			return opts, err
		}
		if err := applyProfile(&opts, prof); err != nil {
			return opts, err
		}
	} else if d.profile != "" {
		return opts, errors.New("--profile requires --config")
	}

	if cmd.Flags().Changed("delimiter") {
		b, err := parseDialectByte(d.delimiter)
		if err != nil {
			return opts, errors.Wrap(err, "--delimiter")
		}
		opts.Delimiter = b
	}
	if cmd.Flags().Changed("quote") {
		b, err := parseDialectByte(d.quote)
		if err != nil {
			return opts, errors.Wrap(err, "--quote")
		}
		opts.Quote = b
	}
	if cmd.Flags().Changed("strict") {
		opts.Strict = d.strict
	}
	if cmd.Flags().Changed("null") {
		opts.EmptyIsNull = d.null
	}

	return opts, opts.Validate()
}

func loadProfile(path, name string) (dialectProfile, error) {
	var cfg configFile
	data, err := os.ReadFile(path)
	if err != nil {
		return dialectProfile{}, errors.Wrapf(err, "read config %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return dialectProfile{}, errors.Wrapf(err, "parse config %s", path)
	}
	if name == "" {
		name = "default"
	}
	prof, ok := cfg.Profiles[name]
	if !ok {
		return dialectProfile{}, errors.Errorf("config %s has no profile %q", path, name)
	}
	return prof, nil
}

func applyProfile(opts *csv.Options, prof dialectProfile) error {
	if prof.Delimiter != "" {
		b, err := parseDialectByte(prof.Delimiter)
		if err != nil {
			return errors.Wrap(err, "profile delimiter")
		}
		opts.Delimiter = b
	}
	if prof.Quote != "" {
		b, err := parseDialectByte(prof.Quote)
		if err != nil {
			return errors.Wrap(err, "profile quote")
		}
		opts.Quote = b
	}
	opts.Strict = prof.Strict
	opts.EmptyIsNull = prof.EmptyIsNull
	return nil
}

// parseDialectByte accepts a single character, the escape "\t", or the word
// "tab".
func parseDialectByte(s string) (byte, error) {
	switch s {
	case "tab", `\t`:
		return '\t', nil
	}
	if len(s) != 1 {
		return 0, errors.Errorf("want a single byte, got %q", s)
	}
	return s[0], nil
}

// openInput returns the file named by args[0], or stdin when no argument
// was given.
func openInput(args []string) (*os.File, func(), error) {
	if len(args) == 0 {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, errors.Wrapf(err, "open %s", args[0])
	}
	return f, func() { f.Close() }, nil
}

func printError(err error) {
	fmt.Fprintln(os.Stderr, color.RedString("csvscan: %v", err))
}

// dialectByteName renders a dialect byte for humans.
func dialectByteName(b byte) string {
	switch b {
	case '\t':
		return `\t`
	default:
		return string(b)
	}
}
