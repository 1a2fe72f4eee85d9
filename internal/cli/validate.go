package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ppiankov/lithium/internal/engine"
	"github.com/ppiankov/lithium/internal/model"
	"github.com/ppiankov/lithium/internal/render"
)

var (
	valText      string
	valFile      string
	valSources   []string
	valDomain    string
	valMode      string
	valFormat    string
	valOutput    string
	valHTML      bool
	valNoCache   bool
	valPassScore float64
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a block of text for hallucination risk",
	Long: `Validate extracts discrete claims from the text, classifies each claim,
checks support against the provided source files, runs bias and
ambiguity detectors, applies the domain rule profile, and prints a
pass/fail score with flags and recommendations.

Example:
  lithium validate --text "All systems always work."
  lithium validate --file report.txt --sources src1.txt src2.txt
  lithium validate --file report.md --domain research --mode detailed --report markdown
  cat draft.txt | lithium validate --file -`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVarP(&valText, "text", "t", "", "text to validate (direct input)")
	validateCmd.Flags().StringVarP(&valFile, "file", "f", "", "path to file containing text to validate, or - for stdin")
	validateCmd.Flags().StringSliceVarP(&valSources, "sources", "s", nil, "source files for cross-validation")
	validateCmd.Flags().StringVar(&valDomain, "domain", string(model.DomainGeneral), "domain profile (general, consulting, technical, research)")
	validateCmd.Flags().StringVar(&valMode, "mode", string(model.ModeFull), "validation mode (quick, full, detailed)")
	validateCmd.Flags().StringVarP(&valFormat, "report", "r", string(render.FormatText), "report format (json, markdown, text)")
	validateCmd.Flags().StringVarP(&valOutput, "output", "o", "", "output file path (otherwise prints to stdout)")
	validateCmd.Flags().BoolVar(&valHTML, "html", false, "treat input as HTML and strip markup first")
	validateCmd.Flags().BoolVar(&valNoCache, "no-cache", false, "disable result memoization")
	validateCmd.Flags().Float64Var(&valPassScore, "passing-score", 0, "override the passing score threshold")

	_ = viper.BindPFlag("no_cache", validateCmd.Flags().Lookup("no-cache"))
}

func runValidate(cmd *cobra.Command, args []string) error {
	content, err := readContent()
	if err != nil {
		return err
	}

	sources, err := readSources(valSources)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if valPassScore > 0 {
		cfg.Scoring.PassingScore = valPassScore
	}

	eng := engine.New(cfg)
	result, err := eng.Validate(engine.Request{
		Content: content,
		Sources: sources,
		Domain:  model.Domain(valDomain),
		Mode:    model.Mode(valMode),
		HTML:    valHTML,
	})
	if err != nil {
		return fmt.Errorf("validate: %w", err)
	}

	out, err := render.Render(result, render.Format(valFormat))
	if err != nil {
		return err
	}

	if valOutput != "" {
		if err := os.WriteFile(valOutput, []byte(out), 0644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "Wrote report: %s\n", valOutput)
		}
	} else {
		fmt.Println(out)
	}

	if !result.Passed {
		os.Exit(1)
	}
	return nil
}

// readContent resolves the text to validate from --text, --file, or stdin
func readContent() (string, error) {
	switch {
	case valText != "":
		return valText, nil
	case valFile == "-":
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	case valFile != "":
		data, err := os.ReadFile(valFile)
		if err != nil {
			return "", fmt.Errorf("read file: %w", err)
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("provide --text or --file")
	}
}
