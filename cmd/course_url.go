package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yungbote/learnhub/internal/config"
	"github.com/yungbote/learnhub/internal/services"
)

func init() {
	var path string
	cmd := &cobra.Command{
		Use:   "course-url TITLE",
		Short: "Print the course detail URL for a title",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if path == "" {
				cfg, err := config.Load()
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				path = cfg.HTTP.CoursePath
			}
			fmt.Fprintln(cmd.OutOrStdout(), services.CourseURL(path, args[0]))
			return nil
		},
	}
	cmd.Flags().StringVar(&path, "path", "", "course page path (defaults to http.course_path)")
	rootCmd.AddCommand(cmd)
}
