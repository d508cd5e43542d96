package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/yungbote/learnhub/internal/app"
	"github.com/yungbote/learnhub/internal/domain/catalog"
	"github.com/yungbote/learnhub/internal/services"
)

func init() {
	rootCmd.AddCommand(newCatalogCmd())
}

func newCatalogCmd() *cobra.Command {
	var (
		level   string
		subject string
	)
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Print subjects and their courses",
		Long: `Print the catalog. Without flags every subject is listed.

Examples:
  learnhub catalog --level higher
  learnhub catalog --subject "Web Development"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _, err := bootstrap()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			svc, closeFn, err := app.OpenCatalog(ctx, cfg, quietLogger())
			if err != nil {
				return err
			}
			defer closeFn()

			var subjects []catalog.Subject
			switch {
			case strings.TrimSpace(subject) != "":
				s, err := svc.Subject(ctx, subject)
				if err != nil {
					return err
				}
				subjects = []catalog.Subject{s}
			case strings.TrimSpace(level) != "":
				lvl, ok := catalog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
				if !ok {
					return fmt.Errorf("unknown level %q (want primary, secondary or higher)", level)
				}
				subjects, err = svc.SubjectsByLevel(ctx, lvl)
			default:
				subjects, err = svc.Subjects(ctx)
			}
			if err != nil {
				return err
			}
			printSubjects(cmd, cfg.HTTP.CoursePath, subjects)
			return nil
		},
	}
	cmd.Flags().StringVar(&level, "level", "", "only subjects listed at this level")
	cmd.Flags().StringVar(&subject, "subject", "", "a single subject by name")
	return cmd
}

func printSubjects(cmd *cobra.Command, coursePath string, subjects []catalog.Subject) {
	out := cmd.OutOrStdout()
	heading := color.New(color.FgCyan, color.Bold)
	dim := color.New(color.FgHiBlack)
	for i, s := range subjects {
		if i > 0 {
			fmt.Fprintln(out)
		}
		heading.Fprintln(out, s.Name)
		fmt.Fprintf(out, "  %s\n", s.Description)
		for _, c := range s.Courses {
			fmt.Fprintf(out, "  - %s ", c)
			dim.Fprintln(out, services.CourseURL(coursePath, c))
		}
	}
}
