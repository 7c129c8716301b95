package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"strings"

	"github.com/cottand/monoc/failed"
	"github.com/cottand/monoc/internal/fixture"
	"github.com/cottand/monoc/internal/log"
	"github.com/cottand/monoc/monoir"
	"github.com/cottand/monoc/pass"
	"github.com/cottand/monoc/simplify"
	"github.com/cottand/monoc/xir"
	"github.com/kr/pretty"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var LowerCmd = &cobra.Command{
	Use:          "lower file.yaml...",
	Short:        "Lower typed modules described in YAML to monomorphic IR",
	RunE:         runLower,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
}

var (
	lowerOutPath *string
	logLevel     *int
	keepGoing    *bool
	verify       *bool
	format       *string
)

func init() {
	lowerOutPath = LowerCmd.Flags().StringP("out", "o", "", "output file, defaults to stdout")
	logLevel = LowerCmd.Flags().IntP("log-level", "l", int(slog.LevelError), "log level")
	keepGoing = LowerCmd.Flags().BoolP("keep-going", "k", false, "report the errors of every module instead of stopping at the first one")
	verify = LowerCmd.Flags().Bool("verify", false, "type check the lowered modules again")
	format = LowerCmd.Flags().StringP("format", "f", "text", "output format, one of text or pretty")
}

type lowerSettings struct {
	keepGoing bool
	verify    bool
	format    string
}

func runLower(cmd *cobra.Command, args []string) error {
	log.SetLevel(slog.Level(*logLevel))

	out := cmd.OutOrStdout()
	if *lowerOutPath != "" {
		f, err := os.Create(path.Clean(*lowerOutPath))
		if err != nil {
			return fmt.Errorf("could not create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	settings := lowerSettings{
		keepGoing: *keepGoing,
		verify:    *verify,
		format:    *format,
	}
	return lowerFiles(cmd.Context(), settings, args, out, cmd.ErrOrStderr())
}

type fileResult struct {
	modules []*monoir.Module
	errs    *failed.Errors
}

// lowerFiles runs one pass per file concurrently, then prints the results in
// the order of paths
func lowerFiles(ctx context.Context, settings lowerSettings, paths []string, out, errOut io.Writer) error {
	if settings.format != "text" && settings.format != "pretty" {
		return fmt.Errorf("unknown format %q", settings.format)
	}
	logger := log.DefaultLogger.With("section", "cmd")

	results := make([]fileResult, len(paths))
	eg, gctx := errgroup.WithContext(ctx)
	for i, filePath := range paths {
		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := lowerFile(settings, filePath)
			if err != nil {
				return fmt.Errorf("%s: %w", filePath, err)
			}
			logger.Debug("lowered file", "path", filePath, "modules", len(res.modules))
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	errCount := 0
	for i, res := range results {
		for _, m := range res.modules {
			if m == nil {
				continue
			}
			if err := printModule(out, settings.format, m); err != nil {
				return fmt.Errorf("could not write output: %w", err)
			}
		}
		for _, compileErr := range res.errs.Errors() {
			errCount++
			_, _ = fmt.Fprintf(errOut, "%s: %s\n", paths[i], failed.FormatWithCode(compileErr))
		}
	}
	if errCount > 0 {
		return fmt.Errorf("%d errors found during lowering", errCount)
	}
	return nil
}

func lowerFile(settings lowerSettings, filePath string) (fileResult, error) {
	modules, err := fixture.NewDecoder().DecodeFile(filePath)
	if err != nil {
		return fileResult{}, err
	}

	var opts []simplify.Option
	if settings.verify {
		opts = append(opts, simplify.WithVerify())
	}
	p := simplify.New(opts...)

	if settings.keepGoing {
		lowered, errs := pass.RunEach[xir.Module, *monoir.Module](p, modules)
		return fileResult{modules: lowered, errs: errs}, nil
	}

	lowered, err := p.Run(modules)
	if err != nil {
		return fileResult{}, fmt.Errorf("(E%03d) %w", failed.CodeOf(err), err)
	}
	return fileResult{modules: lowered}, nil
}

func printModule(w io.Writer, format string, m *monoir.Module) error {
	var text string
	switch format {
	case "pretty":
		text = fmt.Sprintf("%# v\n", pretty.Formatter(m))
	default:
		text = monoir.ModuleString(m)
	}
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	_, err := io.WriteString(w, text)
	return err
}
