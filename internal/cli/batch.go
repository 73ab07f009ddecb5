package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ironsheep/img2str/internal/config"
	"github.com/ironsheep/img2str/internal/extract"
)

// NewBatchCommand returns the batch extractor command.
func NewBatchCommand(info BuildInfo) *cobra.Command {
	cfg := config.Load()

	cmd := &cobra.Command{
		Use:   "img2str-batch <image_path>",
		Short: "Extract text from image(s)",
		Long: `Extract text from one image, or from every file in a directory, and save
each result to <output_folder>/<name>_extracted_text.txt.`,
		Example: `  # Extract text from 'image.png' into 'output/image_extracted_text.txt'
  img2str-batch image.png

  # Extract text from every image in 'images/' into 'output/'
  img2str-batch images/ -o output

  # Same, recognizing Portuguese
  img2str-batch images/ -o output -l por`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := setup(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			cmd.SilenceUsage = true

			opts := extract.BatchOptions{
				Path:         args[0],
				Language:     cfg.Language,
				OutputFolder: cfg.OutputFolder,
			}
			if cfg.Progress && isTerminal(cmd.ErrOrStderr()) {
				opts.Progress = newProgressBar(cmd.ErrOrStderr())
			}

			ex := buildExtractor(cfg, logger)
			r := extract.NewReporter(cmd.OutOrStdout(), !cfg.NoColor)
			sum, err := ex.RunBatch(r, opts)
			if err != nil {
				logger.Debug().Err(err).Msg("batch did not start")
				return nil
			}
			logger.Info().
				Int("targets", sum.Targets).
				Int("processed", sum.Processed).
				Int("failed", sum.Failed).
				Msg("batch finished")
			return nil
		},
	}
	applyBuildInfo(cmd, info)

	// Accept --output-folder as a spelling of --output_folder.
	cmd.Flags().SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		if name == "output-folder" {
			name = "output_folder"
		}
		return pflag.NormalizedName(name)
	})

	addCommonFlags(cmd, cfg)
	cmd.Flags().StringVarP(&cfg.OutputFolder, "output_folder", "o", cfg.OutputFolder, "path to the output folder")
	cmd.Flags().BoolVar(&cfg.Progress, "progress", cfg.Progress, "show a progress bar on stderr when it is a terminal")

	return cmd
}
