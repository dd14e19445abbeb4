// Command markupfield renders a file through one of the configured markup
// types. When no type is given it prompts with the registry's choices.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/charmbracelet/log"

	"github.com/goliatone/go-markupfield/pkg/config"
	"github.com/goliatone/go-markupfield/pkg/field"
)

func main() {
	markupType := flag.String("type", "", "markup type to render with (prompts if empty)")
	configPath := flag.String("config", "", "markup types YAML (built-in defaults if empty)")
	output := flag.String("output", "", "output file (stdout if empty)")
	flag.Parse()

	logger := log.New(os.Stderr)

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			logger.Fatal("load config", "path", *configPath, "error", err)
		}
		cfg = loaded
	}

	registry, err := cfg.Registry()
	if err != nil {
		logger.Fatal("build registry", "error", err)
	}

	chosen := *markupType
	if chosen == "" {
		chosen, err = promptMarkupType(registry.Types(), cfg.DefaultMarkupType)
		if err != nil {
			logger.Fatal("choose markup type", "error", err)
		}
	}

	raw, err := readInput(flag.Arg(0))
	if err != nil {
		logger.Fatal("read input", "error", err)
	}

	f, err := field.New("content", registry, field.WithType(chosen))
	if err != nil {
		logger.Fatal("configure field", "error", err)
	}

	slots := f.NewSlots()
	if err := f.Set(slots, raw); err != nil {
		logger.Fatal("assign content", "error", err)
	}
	if _, err := f.PreSave(slots); err != nil {
		logger.Fatal("render", "type", chosen, "error", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, []byte(slots.Rendered), 0o644); err != nil {
			logger.Fatal("write output", "path", *output, "error", err)
		}
		logger.Info("rendered", "type", chosen, "output", *output)
		return
	}
	fmt.Println(slots.Rendered)
}

func promptMarkupType(choices []string, defaultType string) (string, error) {
	prompt := &survey.Select{
		Message: "Markup type:",
		Options: choices,
	}
	if defaultType != "" {
		prompt.Default = defaultType
	}

	var chosen string
	if err := survey.AskOne(prompt, &chosen); err != nil {
		return "", err
	}
	return chosen, nil
}

func readInput(path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(path)
	return string(data), err
}
