package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/napalu/goopt"

	qed "github.com/batteryspecial/QED"
	"github.com/batteryspecial/QED/dict"
	"github.com/batteryspecial/QED/parse"
	"github.com/batteryspecial/QED/suggest"
	"github.com/batteryspecial/QED/util"
)

type config struct {
	Expr        string `goopt:"name:expr;short:e;desc:Translate a single shorthand expression and exit"`
	Complete    string `goopt:"name:complete;short:c;desc:Print ranked completions for a typed prefix and exit"`
	Fuzzy       int    `goopt:"name:fuzzy;desc:Maximum edit distance for fuzzy completion fallback (0 disables);default:0"`
	Interactive bool   `goopt:"name:interactive;short:i;desc:Start an interactive translation session"`
	List        bool   `goopt:"name:list;short:l;desc:List the built-in dictionary and exit"`
	Help        bool   `goopt:"name:help;short:h;desc:Show help"`
}

func main() {
	cfg := &config{}
	parser, err := goopt.NewParserFromStruct(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if !parser.Parse(os.Args) {
		for _, err := range parser.GetErrors() {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}

	if cfg.Help {
		parser.PrintUsage(os.Stdout)
		os.Exit(0)
	}

	translator, err := newTranslator(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	switch {
	case cfg.List:
		listDictionary(translator)
	case cfg.Expr != "":
		fmt.Println(translator.Parse(cfg.Expr))
	case cfg.Complete != "":
		printCandidates(translator.Suggest(cfg.Complete))
	case cfg.Interactive || util.IsInteractive(os.Stdin):
		repl(translator)
	default:
		pipe(translator)
	}
}

func newTranslator(cfg *config) (*qed.Translator, error) {
	commands, templates := dict.Dictionary()
	dictionary, err := qed.NewDictionary(
		qed.WithCommands(commands...),
		qed.WithTemplates(templates...),
	)
	if err != nil {
		return nil, err
	}

	var configs []qed.ConfigureTranslatorFunc
	if cfg.Fuzzy > 0 {
		configs = append(configs, qed.WithSuggestOptions(suggest.WithFuzzy(cfg.Fuzzy)))
	}

	return qed.NewTranslator(dictionary, configs...)
}

// repl translates each typed line; colon lines are control commands
// (":suggest <prefix>", ":list", ":quit").
func repl(translator *qed.Translator) {
	fmt.Println("qed shorthand translator (:quit to exit)")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			fmt.Println()
			return
		}
		line := scanner.Text()

		if cmd, args, ok := parse.Control(line); ok {
			switch cmd {
			case "quit", "q":
				return
			case "list":
				listDictionary(translator)
			case "suggest", "s":
				prefix := ""
				if len(args) > 0 {
					prefix = args[0]
				}
				printCandidates(translator.Suggest(prefix))
			default:
				fmt.Fprintf(os.Stderr, "unknown control command %q\n", cmd)
			}
			continue
		}

		if out := translator.Parse(line); out != "" {
			fmt.Println(out)
		}
	}
}

// pipe translates stdin line by line, for non-interactive use.
func pipe(translator *qed.Translator) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		fmt.Println(translator.Parse(scanner.Text()))
	}
}

func listDictionary(translator *qed.Translator) {
	for _, cmd := range translator.Dictionary().Commands() {
		fmt.Printf("%-16s %-20s %s\n", cmd.Canonical(), cmd.Latex, cmd.Description)
	}
	for _, tpl := range translator.Dictionary().Templates() {
		name := tpl.Description
		if len(tpl.Patterns) > 0 {
			name = tpl.Patterns[0]
		}
		fmt.Printf("%-16s %-20s %s\n", name, tpl.Latex, tpl.Description)
	}
}

func printCandidates(candidates []suggest.RankedCandidate) {
	for _, c := range candidates {
		fmt.Printf("%-20s %-8s %s\n", c.Alias, c.Quality, c.Command.Latex)
	}
}
