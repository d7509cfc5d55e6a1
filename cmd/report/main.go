package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"financial_report/pkg/core/agent"
	"financial_report/pkg/core/config"
	"financial_report/pkg/core/logger"
	"financial_report/pkg/core/report"

	"github.com/charmbracelet/glamour"
	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load()

	def := report.DefaultSelection()
	defaultPath := os.Getenv("REPORT_CONFIG")
	if defaultPath == "" {
		defaultPath = config.DefaultPath
	}

	configPath := flag.String("config", defaultPath, "Path to the settings file (yaml or hjson)")
	company := flag.String("company", def.Company, "Company to report on")
	quarter := flag.String("quarter", def.Quarter, "Quarter (Q1-Q4)")
	year := flag.Int("year", def.Year, "Fiscal year")
	language := flag.String("language", def.Language, "Report language")
	analysis := flag.String("analysis", def.Analysis, "Analysis section")
	raw := flag.Bool("raw", false, "Print the model output without Markdown rendering")
	list := flag.Bool("list", false, "Print the allowed values and exit")
	timeout := flag.Duration("timeout", 0, "Abort the request after this long (0 = SDK default)")
	flag.Parse()

	if *list {
		printCatalog()
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s (%v)\n", config.UserMessage(err), err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.LogLevel, cfg.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "[WARNING] Failed to open log file: %v\n", err)
	}
	// keep stdout for the report itself
	logger.Log.SetOutput(os.Stderr)

	ctx := context.Background()
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	mgr, err := agent.NewManager(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialise %s backend: %v\n", cfg.Backend, err)
		os.Exit(1)
	}
	defer mgr.Close()

	sel := report.Selection{
		Company:  *company,
		Quarter:  *quarter,
		Year:     *year,
		Language: *language,
		Analysis: *analysis,
	}

	fmt.Fprintln(os.Stderr, "Gerando relatório...")
	start := time.Now()
	out := report.NewGenerator(mgr.Provider(), mgr.GetModel(), nil).Generate(ctx, sel)
	if !out.OK() {
		fmt.Fprintln(os.Stderr, out.Error)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "Relatório Gerado (%s):\n\n", time.Since(start).Round(time.Millisecond))

	if *raw {
		fmt.Print(out.Text)
		return
	}
	fmt.Print(renderTerminal(out.Text))
}

// renderTerminal styles Markdown for the terminal, falling back to the raw text.
func renderTerminal(text string) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return text
	}
	rendered, err := r.Render(text)
	if err != nil {
		return text
	}
	return rendered
}

func printCatalog() {
	c := report.Catalog()
	fmt.Println("Empresas:")
	for _, v := range c.Companies {
		fmt.Printf("  %s\n", v)
	}
	fmt.Println("Trimestres:")
	for _, v := range c.Quarters {
		fmt.Printf("  %s\n", v)
	}
	fmt.Println("Anos:")
	for _, v := range c.Years {
		fmt.Printf("  %d\n", v)
	}
	fmt.Println("Idiomas:")
	for _, v := range c.Languages {
		fmt.Printf("  %s\n", v)
	}
	fmt.Println("Análises:")
	for _, v := range c.Analyses {
		fmt.Printf("  %s\n", v)
	}
}
