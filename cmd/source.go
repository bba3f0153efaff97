package cmd

import (
	"fmt"
	"os"

	"github.com/iksnae/listcorpus/internal"
	"github.com/spf13/cobra"
)

var (
	mboxPath     string
	listservPath string
	csvPath      string
	dbPath       string
)

// addSourceFlags registers the shared input flags on a data command.
func addSourceFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&mboxPath, "mbox", "", "Path to an mbox file or directory of mbox files")
	cmd.Flags().StringVar(&listservPath, "listserv", "", "Path to a LISTSERV archive file or directory")
	cmd.Flags().StringVar(&csvPath, "csv", "", "Path to a previously exported CSV dataset")
	cmd.Flags().StringVar(&dbPath, "db", "", "Path to an archive database created by 'listcorpus import'")
}

// loadArchive builds the archive from whichever source flags were given.
// An archive database wins over direct file sources.
func loadArchive() (*internal.Archive, error) {
	switch {
	case dbPath != "":
		store, err := internal.OpenStore(dbPath)
		if err != nil {
			return nil, err
		}
		defer store.Close()
		return store.LoadArchive()

	case csvPath != "":
		return internal.LoadCSV(csvPath)

	case mboxPath != "" || listservPath != "":
		rows, err := loadRawRows()
		if err != nil {
			return nil, err
		}
		return internal.NewArchive(rows)

	default:
		return nil, fmt.Errorf("no input given: one of --db, --csv, --mbox or --listserv is required")
	}
}

// loadRawRows collects raw rows from the file producers.
func loadRawRows() ([]internal.RawMessage, error) {
	var rows []internal.RawMessage

	if mboxPath != "" {
		part, err := readSource(mboxPath, internal.ReadMboxDir, internal.ReadMbox)
		if err != nil {
			return nil, err
		}
		rows = append(rows, part...)
	}
	if listservPath != "" {
		part, err := readSource(listservPath, internal.ReadListservDir, internal.ReadListserv)
		if err != nil {
			return nil, err
		}
		rows = append(rows, part...)
	}
	if csvPath != "" {
		f, err := os.Open(csvPath)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		part, err := internal.ReadCSVRows(f)
		if err != nil {
			return nil, err
		}
		rows = append(rows, part...)
	}
	return rows, nil
}

func readSource(path string, dirFn, fileFn func(string) ([]internal.RawMessage, error)) ([]internal.RawMessage, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return dirFn(path)
	}
	return fileFn(path)
}
