package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "kairos",
	Short: "Kairos - A Scrum Master coaching simulator",
	Long:  `Kairos is a coaching backend that simulates Scrum events and helps Scrum Masters practice facilitation with an AI coach.`,
}

func Execute() error {
	return rootCmd.Execute()
}
