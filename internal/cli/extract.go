package cli

import (
	"github.com/spf13/cobra"

	"github.com/ironsheep/img2str/internal/config"
	"github.com/ironsheep/img2str/internal/extract"
)

// NewExtractCommand returns the single-image extractor command.
func NewExtractCommand(info BuildInfo) *cobra.Command {
	cfg := config.Load()

	cmd := &cobra.Command{
		Use:   "img2str <filename>",
		Short: "Extract text from an image",
		Long: `Extract text from an image using OCR and display it, save it to a
text file, or both.`,
		Example: `  # Extract text from 'image.png' and display it
  img2str image.png --display

  # Extract text from 'image.png' using Portuguese and save it to a text file
  img2str image.png --language por --save`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := setup(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			cmd.SilenceUsage = true

			ex := buildExtractor(cfg, logger)
			r := extract.NewReporter(cmd.OutOrStdout(), !cfg.NoColor)
			err = ex.RunSingle(r, extract.SingleOptions{
				Path:       args[0],
				Language:   cfg.Language,
				Display:    cfg.Display,
				Save:       cfg.Save,
				OutputFile: cfg.OutputFile,
			})
			if err != nil {
				logger.Debug().Err(err).Msg("extraction finished with an error")
			}
			return nil
		},
	}
	applyBuildInfo(cmd, info)

	addCommonFlags(cmd, cfg)
	cmd.Flags().BoolVarP(&cfg.Save, "save", "s", cfg.Save, "save the extracted text to "+cfg.OutputFile)
	cmd.Flags().BoolVarP(&cfg.Display, "display", "d", cfg.Display, "display the extracted text")

	return cmd
}
