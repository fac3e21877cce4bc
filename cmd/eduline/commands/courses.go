package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/eduline/eduline-client/internal/core/service"
	"github.com/eduline/eduline-client/internal/pkg/validation"
)

func newCoursesCommand() *cobra.Command {
	var filter service.CourseFilter

	cmd := &cobra.Command{
		Use:   "courses",
		Short: "Browse the course catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			res, err := a.catalog.Courses(cmd.Context(), filter)
			if err != nil {
				return fieldErrors(validation.ParseAPIErrors(err))
			}

			for _, c := range res.Data {
				cmd.Printf("[%d] %s (%s) — %s, %dh, %s\n",
					c.ID, c.CourseName, c.CourseCode, c.Level, c.DurationHours, c.Price)
			}
			cmd.Printf("Page %d of %d (%d courses)\n",
				res.Pagination.CurrentPage, res.Pagination.TotalPages, res.Pagination.Total)
			return nil
		},
	}

	cmd.Flags().IntVar(&filter.Page, "page", 0, "page number")
	cmd.Flags().IntVar(&filter.CategoryID, "category", 0, "filter by category id")
	cmd.Flags().StringVar(&filter.Search, "search", "", "search term")

	cmd.AddCommand(newCourseShowCommand())
	return cmd
}

func newCourseShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one course in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			c, err := a.catalog.Course(cmd.Context(), id)
			if err != nil {
				return fieldErrors(validation.ParseAPIErrors(err))
			}

			cmd.Printf("%s (%s)\n", c.CourseName, c.CourseCode)
			cmd.Printf("Instructor: %s\n", c.InstructorName)
			cmd.Printf("Level: %s, %d hours, %s\n", c.Level, c.DurationHours, c.Price)
			cmd.Printf("Category: %s\n", c.Category.CategoryName)
			cmd.Printf("Rating: %.1f (%d reviews), %d enrolled\n",
				c.AverageRating, c.ReviewsCount, c.EnrollmentsCount)
			cmd.Println(c.Description)
			for _, m := range c.Modules {
				cmd.Printf("  %d. %s (%d lessons)\n", m.ModuleOrder, m.ModuleTitle, m.LessonsCount)
			}
			return nil
		},
	}
}

func newEnrollmentsCommand() *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:   "enrollments",
		Short: "List your course enrollments",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			if err := a.requireAuth("/enrollments"); err != nil {
				return err
			}
			res, err := a.catalog.Enrollments(cmd.Context(), page)
			if err != nil {
				return fieldErrors(validation.ParseAPIErrors(err))
			}

			for _, e := range res.Data {
				name := ""
				if e.Course != nil {
					name = e.Course.CourseName
				}
				cmd.Printf("[%d] %s — %s, %.0f%% complete\n", e.ID, name, e.Status, e.ProgressPercentage)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "page number")
	return cmd
}

func newCertificatesCommand() *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:   "certificates",
		Short: "List your certificates",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			if err := a.requireAuth("/certificates"); err != nil {
				return err
			}
			res, err := a.catalog.Certificates(cmd.Context(), page)
			if err != nil {
				return fieldErrors(validation.ParseAPIErrors(err))
			}

			for _, c := range res.Data {
				cmd.Printf("[%d] %s — %s, issued %s (%s)\n",
					c.ID, c.CourseName, c.StudentName, c.IssueDate, c.CertificateCode)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "page number")
	return cmd
}
