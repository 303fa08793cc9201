package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/dlog/log"
	"github.com/ardnew/dlog/pkg"
	"github.com/ardnew/dlog/profile"
)

// defaultConfigIndent is the number of spaces to use for indentation
// when generating the default configuration file.
const defaultConfigIndent = 2

// Init generates a configuration file with current flag values.
type Init struct {
	Force bool   `help:"Overwrite existing configuration file" short:"f"`
	Path  string `default:"${config}" help:"Configuration file to write" type:"path"`
}

var pathStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

// Run executes the init command.
func (i *Init) Run(ctx context.Context, logger *log.Logger, out io.Writer) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	ktx := kongContextFrom(ctx)
	if ktx == nil {
		panic("internal error: kong context undefined")
	}

	buf, err := i.Marshal(flagValues(ktx))
	if err != nil {
		return err
	}

	return i.write(logger, out, buf)
}

// Marshal renders values as the YAML configuration document.
func (i *Init) Marshal(values map[string]any) ([]byte, error) {
	buf, err := yaml.MarshalWithOptions(values, yaml.Indent(defaultConfigIndent))
	if err != nil {
		return nil, pkg.ErrYAMLMarshal.Wrap(err)
	}

	return buf, nil
}

func (i *Init) write(logger *log.Logger, out io.Writer, buf []byte) error {
	// Check if file exists and force not set
	_, err := os.Stat(i.Path)
	if err == nil && !i.Force {
		return ErrWriteConfig.
			With(slog.String("file", i.Path)).
			With(slog.Bool("exists", true)).
			Wrap(ErrFileExists)
	}

	err = os.WriteFile(i.Path, buf, 0o600)
	if err != nil {
		return ErrWriteConfig.
			With(slog.String("file", i.Path)).
			Wrap(err)
	}

	logger.Debug(pkg.Name, "initialized configuration file ", i.Path)

	_, _ = fmt.Fprintln(out, "wrote", pathStyle.Render(i.Path))

	return nil
}

// flagValues returns the current value of every persistable top-level flag.
func flagValues(ktx *kong.Context) map[string]any {
	values := make(map[string]any)

	prefixIgnore := []string{"help", profile.Tag}

	for _, flag := range ktx.Model.Flags {
		if flag.Hidden || slices.ContainsFunc(prefixIgnore, func(s string) bool {
			return strings.HasPrefix(flag.Name, s)
		}) {
			continue
		}

		if val := ktx.FlagValue(flag); val != nil {
			values[flag.Name] = val
		}
	}

	return values
}
