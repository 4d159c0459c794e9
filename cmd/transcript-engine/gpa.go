package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/transcript-engine/internal/report"
	"github.com/pdiddy/transcript-engine/pkg/types"
)

var gpaCmd = &cobra.Command{
	Use:   "gpa",
	Short: "Compute a GPA and credit summary",
	Long: `GPA summarizes a stored transcript (--student) or a course-record JSON
file (--courses), optionally restricted to one semester or one grade.
Courses with credits that do not parse or grades outside the point
table are left out of the computation.`,
	RunE: runGPA,
}

func init() {
	gpaCmd.Flags().String("student", "", "student ID of a stored transcript")
	gpaCmd.Flags().String("courses", "", "JSON file of course records (as written by parse)")
	gpaCmd.Flags().String("db", defaultDBPath, "SQLite database file")
	gpaCmd.Flags().String("semester", "", "restrict to one semester label")
	gpaCmd.Flags().String("grade", "", "restrict to one grade symbol")
	gpaCmd.Flags().Bool("json", false, "output the summary as JSON")

	rootCmd.AddCommand(gpaCmd)
}

func runGPA(cmd *cobra.Command, args []string) error {
	studentID, _ := cmd.Flags().GetString("student")
	coursesPath, _ := cmd.Flags().GetString("courses")
	semester, _ := cmd.Flags().GetString("semester")
	grade, _ := cmd.Flags().GetString("grade")

	var courses []types.CourseSummary
	var err error

	switch {
	case studentID != "" && coursesPath != "":
		return fmt.Errorf("--student and --courses are mutually exclusive")

	case studentID != "":
		courses, err = storedCourses(cmd, studentID, semester, grade)
		if err != nil {
			return err
		}

	case coursesPath != "":
		courses, err = readCourseFile(coursesPath)
		if err != nil {
			return err
		}
		if semester != "" {
			courses = report.FilterSemester(courses, semester)
		}
		if grade != "" {
			courses = report.FilterGrade(courses, grade)
		}

	default:
		return fmt.Errorf("provide --student or --courses")
	}

	summary := report.Compute(courses)

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	}

	fmt.Printf("GPA:            %.2f\n", summary.GPA)
	fmt.Printf("Total credits:  %g\n", summary.TotalCredits)
	fmt.Printf("Courses:        %d\n", summary.Courses)
	return nil
}

// storedCourses loads a student's courses from the store, pushing a
// single semester or grade restriction down into the query.
func storedCourses(cmd *cobra.Command, studentID, semester, grade string) ([]types.CourseSummary, error) {
	st, err := openStore(cmd)
	if err != nil {
		return nil, err
	}
	defer st.Close()

	switch {
	case semester != "" && grade != "":
		courses, err := st.CoursesBySemester(cmd.Context(), studentID, semester)
		if err != nil {
			return nil, err
		}
		return report.FilterGrade(courses, grade), nil
	case semester != "":
		return st.CoursesBySemester(cmd.Context(), studentID, semester)
	case grade != "":
		return st.CoursesByGrade(cmd.Context(), studentID, grade)
	default:
		t, err := st.Get(cmd.Context(), studentID)
		if err != nil {
			return nil, err
		}
		if t == nil {
			return nil, fmt.Errorf("no transcript found for student %s", studentID)
		}
		return t.Courses, nil
	}
}
