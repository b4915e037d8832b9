package cmd

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/agentic-research/assetgen/api"
	"github.com/agentic-research/assetgen/internal/catalog"
	"github.com/agentic-research/assetgen/internal/config"
	"github.com/agentic-research/assetgen/internal/log"
	"github.com/agentic-research/assetgen/internal/store"
	"github.com/agentic-research/assetgen/internal/verify"
)

var (
	platform   api.Platform
	outputPath string
	configPath string
	verifyCode bool
	withHeader bool
)

func init() {
	generateCmd.Flags().VarP(&platform, "platform", "p", "Target platform: ios or osx")
	generateCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file (default stdout)")
	generateCmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML file listing catalogs to generate")
	generateCmd.Flags().BoolVar(&verifyCode, "verify", false, "Check the generated Swift for syntax errors before writing")
	generateCmd.Flags().BoolVar(&withHeader, "header", true, "Emit the generated-code banner and framework import")
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate [catalog]",
	Short: "Generate Swift accessors for an asset catalog",
	Example: `  assetgen generate Assets.xcassets -p ios -o Sources/Assets.swift
  assetgen generate --config assetgen.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if (configPath == "") == (len(args) == 0) {
			return errors.New("pass either a catalog path or --config")
		}

		if configPath != "" {
			for _, name := range []string{"platform", "output"} {
				if cmd.Flags().Changed(name) {
					return fmt.Errorf("--%s cannot be combined with --config; set it per catalog in the config file", name)
				}
			}
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			log.Info("config loaded", "path", configPath, "catalogs", len(cfg.Catalogs))
			for _, job := range cfg.Catalogs {
				job.Verify = job.Verify || verifyCode
				if err := runJob(cmd, job); err != nil {
					return fmt.Errorf("%s: %w", job.Path, err)
				}
			}
			return nil
		}

		if platform == "" {
			return errors.New("--platform is required (ios or osx)")
		}
		return runJob(cmd, config.Job{
			Path:     args[0],
			Platform: platform,
			Output:   outputPath,
			Verify:   verifyCode,
		})
	},
}

func runJob(cmd *cobra.Command, job config.Job) error {
	root, err := filepath.Abs(job.Path)
	if err != nil {
		return err
	}
	s := store.NewOS()
	c, err := catalog.Load(s.FS(), s, root)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	groups, sets := c.Counts()
	log.Info("catalog loaded", "name", c.Name, "groups", groups, "imageSets", sets)
	for _, ex := range c.Excluded() {
		log.Debug("excluded from catalog", "path", ex.Path, "reason", ex.Reason)
	}
	if sets == 0 {
		log.Warn("catalog has no valid image sets", "path", root)
	}

	var code string
	if withHeader {
		code, err = catalog.SourceFile(c, job.Platform)
	} else {
		code, err = c.GenerateCode(job.Platform)
	}
	if err != nil {
		return fmt.Errorf("generate %s: %w", c.Name, err)
	}

	if job.Verify {
		if err := verify.Validate(cmd.Context(), []byte(code), swiftLabel(c, job.Output)); err != nil {
			return fmt.Errorf("generated code failed verification: %w", err)
		}
		log.Debug("generated code verified", "name", c.Name)
	}

	if job.Output == "" || job.Output == "-" {
		_, err := fmt.Fprint(cmd.OutOrStdout(), code)
		return err
	}
	out, err := filepath.Abs(job.Output)
	if err != nil {
		return err
	}
	if err := s.WriteFile(out, []byte(code)); err != nil {
		return err
	}
	log.Info("wrote generated code", "path", out, "bytes", len(code))
	return nil
}

// swiftLabel names the code for verification; it must carry a .swift
// extension for the grammar lookup.
func swiftLabel(c *catalog.Catalog, output string) string {
	if filepath.Ext(output) == ".swift" {
		return output
	}
	return c.TypeName() + ".swift"
}
