package cmd

import (
	"github.com/dszqbsm/animalcrawler/cmd/scrape"
	"github.com/dszqbsm/animalcrawler/version"
	"github.com/spf13/cobra"
)

// 不带子命令运行时直接执行一次抓取，version子命令打印构建信息

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "print version.",
	Long:  "print version.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		version.Printer(cmd.OutOrStdout())
	},
}

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "animalcrawler",
		Short:         "collateral adjective table builder.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          scrape.ScrapeCmd.RunE,
	}
	rootCmd.AddCommand(scrape.ScrapeCmd, versionCmd)
	return rootCmd
}

func Execute() error {
	return NewRootCmd().Execute()
}
