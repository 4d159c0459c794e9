// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/transcript-engine/internal/store"
	"github.com/pdiddy/transcript-engine/pkg/types"
)

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Manage stored transcripts (save, get, list, delete)",
	Long: `Store keeps parsed transcripts in a local SQLite database, keyed by
student ID. Saving replaces a student's previous course rows; course
order from the source document is preserved.`,
}

// --- save subcommand ---

var storeSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save a course-record JSON file under a student ID",
	RunE:  runStoreSave,
}

func runStoreSave(cmd *cobra.Command, args []string) error {
	studentID, _ := cmd.Flags().GetString("student")
	coursesPath, _ := cmd.Flags().GetString("courses")
	if coursesPath == "" {
		return fmt.Errorf("--courses file is required")
	}

	courses, err := readCourseFile(coursesPath)
	if err != nil {
		return err
	}

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.Save(cmd.Context(), studentID, courses); err != nil {
		return err
	}
	fmt.Printf("Saved %d courses for %s\n", len(courses), studentID)
	return nil
}

// --- get subcommand ---

var storeGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print a student's stored transcript",
	RunE:  runStoreGet,
}

func runStoreGet(cmd *cobra.Command, args []string) error {
	studentID, _ := cmd.Flags().GetString("student")

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	t, err := st.Get(cmd.Context(), studentID)
	if err != nil {
		return err
	}
	if t == nil {
		return fmt.Errorf("no transcript found for student %s", studentID)
	}

	if asYAML, _ := cmd.Flags().GetBool("yaml"); asYAML {
		data, err := yaml.Marshal(t)
		if err != nil {
			return fmt.Errorf("marshaling transcript: %w", err)
		}
		_, err = os.Stdout.Write(data)
		return err
	}
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(t)
	}

	printCourseTable(t.Courses)
	return nil
}

// --- list subcommand ---

var storeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every stored transcript",
	RunE:  runStoreList,
}

func runStoreList(cmd *cobra.Command, args []string) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	transcripts, err := st.List(cmd.Context())
	if err != nil {
		return err
	}
	if len(transcripts) == 0 {
		fmt.Println("No transcripts stored.")
		return nil
	}

	fmt.Printf("%-20s  %s\n", "Student", "Courses")
	fmt.Println(strings.Repeat("-", 30))
	for _, t := range transcripts {
		fmt.Printf("%-20s  %d\n", t.StudentID, len(t.Courses))
	}
	return nil
}

// --- delete subcommand ---

var storeDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a student's stored transcript",
	RunE:  runStoreDelete,
}

func runStoreDelete(cmd *cobra.Command, args []string) error {
	studentID, _ := cmd.Flags().GetString("student")

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.Delete(cmd.Context(), studentID); err != nil {
		return err
	}
	fmt.Printf("Deleted transcript for %s\n", studentID)
	return nil
}

func init() {
	storeCmd.PersistentFlags().String("db", defaultDBPath, "SQLite database file")
	storeCmd.PersistentFlags().String("student", "", "student ID")

	storeSaveCmd.Flags().String("courses", "", "JSON file of course records (as written by parse)")
	storeGetCmd.Flags().Bool("json", false, "output the transcript as JSON")
	storeGetCmd.Flags().Bool("yaml", false, "output the transcript as YAML")

	storeCmd.AddCommand(storeSaveCmd, storeGetCmd, storeListCmd, storeDeleteCmd)
	rootCmd.AddCommand(storeCmd)
}

// openStore opens the SQLite store at the resolved database path.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	return store.NewStore(types.StoreConfig{DBPath: setting(cmd, "db", "store.db")})
}

// readCourseFile loads a JSON array of course summaries, the shape the
// parse command writes.
func readCourseFile(path string) ([]types.CourseSummary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading course file: %w", err)
	}

	var courses []types.CourseSummary
	if err := json.Unmarshal(data, &courses); err != nil {
		return nil, fmt.Errorf("parsing course file %s: %w", path, err)
	}
	return courses, nil
}

func printCourseTable(courses []types.CourseSummary) {
	fmt.Printf("%-24s  %-10s  %-40s  %-7s  %s\n",
		"Semester", "Code", "Name", "Credits", "Grade")
	fmt.Println(strings.Repeat("-", 95))
	for _, c := range courses {
		name := c.Name
		if len(name) > 40 {
			name = name[:37] + "..."
		}
		fmt.Printf("%-24s  %-10s  %-40s  %-7s  %s\n",
			c.Semester, c.Code, name, c.Credits, c.Grade)
	}
}
