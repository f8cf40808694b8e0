package admin

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"camrental/pkg/console"
)

const menuText = `
1) Drop Tables
2) Create Tables  (run the DDL script)
3) Populate Tables (run the seed script)
4) Query Tables   (pick a saved query)
0) Exit
`

// Menu is the interactive read-eval loop of the admin console. Every error
// is printed and swallowed; only choice 0 leaves the loop.
type Menu struct {
	runner   *Runner
	ddlFile  string
	seedFile string
	in       *bufio.Scanner
	banner   string
}

func NewMenu(runner *Runner, ddlFile, seedFile, banner string) *Menu {
	return &Menu{
		runner:   runner,
		ddlFile:  ddlFile,
		seedFile: seedFile,
		in:       bufio.NewScanner(os.Stdin),
		banner:   banner,
	}
}

func (m *Menu) Run(ctx context.Context) {
	console.Primary("%s", m.banner)
	for {
		fmt.Print(menuText)
		choice := m.prompt("Select: ")
		switch choice {
		case "0":
			console.Muted("Bye!")
			return
		case "1":
			m.dropAll(ctx)
		case "2":
			m.runScript(ctx, m.ddlFile)
		case "3":
			m.runScript(ctx, m.seedFile)
		case "4":
			m.runQuery(ctx)
		default:
			console.Error("Invalid option.")
		}
	}
}

func (m *Menu) dropAll(ctx context.Context) {
	views, tables, err := m.runner.DropAll(ctx)
	if err != nil {
		console.Error("SQL error: %v", err)
		return
	}
	console.Success("Dropped %d tables and %d views.", tables, views)
}

func (m *Menu) runScript(ctx context.Context, path string) {
	err := m.runner.RunScript(ctx, path)
	if os.IsNotExist(err) {
		console.Error("File not found: %s", path)
		return
	}
	if err != nil {
		console.Error("SQL error: %v", err)
		return
	}
	console.Success("Executed %s", path)
}

// runQuery shows the catalog, runs the picked report and offers an .xlsx
// export. A blank or unknown key cancels without a message.
func (m *Menu) runQuery(ctx context.Context) {
	fmt.Println("\nAvailable queries:")
	for _, rep := range Catalog() {
		fmt.Printf("  [%s] %s\n", rep.Key, rep.Title)
	}

	key := m.prompt("Pick query number (or Enter to cancel): ")
	if key == "" {
		return
	}
	res, err := m.runner.RunReport(ctx, key)
	if err == ErrUnknownReport {
		return
	}
	if err != nil {
		console.Error("Query error: %v", err)
		return
	}

	console.Primary("=== %s ===", res.Title)
	console.Table(res.Headers, res.Rows)

	if len(res.Rows) == 0 {
		return
	}
	if path := m.prompt("Export to .xlsx path (Enter to skip): "); path != "" {
		if err := ExportXLSX(res, path); err != nil {
			console.Error("Export error: %v", err)
			return
		}
		console.Success("Exported %s", path)
	}
}

func (m *Menu) prompt(label string) string {
	fmt.Print(label)
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil && err != io.EOF {
			console.Error("input error: %v", err)
		}
		return "0"
	}
	return strings.TrimSpace(m.in.Text())
}
