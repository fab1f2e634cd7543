package cli

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/yaklabco/inferus/internal/ui/pretty"
)

// HelpStyles contains Lipgloss styles for command help formatting.
type HelpStyles struct {
	Command     lipgloss.Style
	Heading     lipgloss.Style
	Subcommand  lipgloss.Style
	Flag        lipgloss.Style
	Description lipgloss.Style
	Example     lipgloss.Style
	Dim         lipgloss.Style
}

// NewHelpStyles creates help styles based on color mode.
func NewHelpStyles(colorEnabled bool) *HelpStyles {
	if !colorEnabled {
		plain := lipgloss.NewStyle()
		return &HelpStyles{
			Command:     plain,
			Heading:     plain,
			Subcommand:  plain,
			Flag:        plain,
			Description: plain,
			Example:     plain,
			Dim:         plain,
		}
	}
	return &HelpStyles{
		Command:     lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		Heading:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		Subcommand:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Flag:        lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Description: lipgloss.NewStyle(),
		Example:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Dim:         lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// HelpFormatter provides styled help output for Cobra commands.
type HelpFormatter struct {
	styles *HelpStyles
}

// NewHelpFormatter creates a help formatter for writer in the given color mode.
func NewHelpFormatter(colorMode string, writer io.Writer) *HelpFormatter {
	return &HelpFormatter{styles: NewHelpStyles(pretty.IsColorEnabled(colorMode, writer))}
}

const usageTemplate = `{{ heading "Usage:" }}
{{- if .Runnable }}
  {{ command .UseLine }}
{{- end }}
{{- if .HasAvailableSubCommands }}
  {{ command .CommandPath }} [command]
{{- end }}
{{- if .HasExample }}

{{ heading "Examples:" }}
{{ example .Example }}
{{- end }}
{{- if .HasAvailableSubCommands }}

{{ heading "Available Commands:" }}
{{- range .Commands }}{{ if (or .IsAvailableCommand (eq .Name "help")) }}
  {{ subcommand (rpad .Name .NamePadding) }} {{ .Short }}
{{- end }}{{ end }}
{{- end }}
{{- if .HasAvailableLocalFlags }}

{{ heading "Flags:" }}
{{ flags .LocalFlags.FlagUsages }}
{{- end }}
{{- if .HasAvailableInheritedFlags }}

{{ heading "Global Flags:" }}
{{ flags .InheritedFlags.FlagUsages }}
{{- end }}
{{- if .HasAvailableSubCommands }}

Use "{{ command (print .CommandPath " [command] --help") }}" for more information about a command.
{{- end }}
`

const helpTemplate = `{{ with (or .Long .Short) }}{{ trimRight . }}

{{ end }}` + usageTemplate

func (h *HelpFormatter) funcs() template.FuncMap {
	return template.FuncMap{
		"heading":    h.styles.Heading.Render,
		"command":    h.styles.Command.Render,
		"subcommand": h.styles.Subcommand.Render,
		"example":    h.styles.Example.Render,
		"flags":      h.styleFlags,
		"rpad":       rpad,
		"trimRight":  func(s string) string { return strings.TrimRight(s, " \t\n") },
	}
}

// styleFlags colors the flag column of pflag usage text. Each usage line has
// the flag names and type, a gap of two or more spaces, then the description.
func (h *HelpFormatter) styleFlags(usages string) string {
	lines := strings.Split(strings.TrimSuffix(usages, "\n"), "\n")
	for i, line := range lines {
		trimmed := strings.TrimLeft(line, " ")
		gap := strings.Index(trimmed, "  ")
		if gap < 0 {
			continue
		}

		indent := line[:len(line)-len(trimmed)]
		names := trimmed[:gap]
		rest := trimmed[gap:]
		desc := strings.TrimLeft(rest, " ")
		spacing := rest[:len(rest)-len(desc)]

		var styled []string
		for _, field := range strings.Fields(names) {
			if strings.HasPrefix(field, "-") {
				styled = append(styled, h.styles.Flag.Render(field))
			} else {
				styled = append(styled, h.styles.Dim.Render(field))
			}
		}
		lines[i] = indent + strings.Join(styled, " ") + spacing + h.styles.Description.Render(desc)
	}
	return strings.Join(lines, "\n")
}

// ApplyToCommand installs styled help and usage output on cmd and its subcommands.
func (h *HelpFormatter) ApplyToCommand(cmd *cobra.Command) {
	usage := template.Must(template.New("usage").Funcs(h.funcs()).Parse(usageTemplate))
	help := template.Must(template.New("help").Funcs(h.funcs()).Parse(helpTemplate))

	cmd.SetUsageFunc(func(command *cobra.Command) error {
		if err := usage.Execute(command.OutOrStderr(), command); err != nil {
			return fmt.Errorf("render usage: %w", err)
		}
		return nil
	})

	cmd.SetHelpFunc(func(command *cobra.Command, _ []string) {
		if err := help.Execute(command.OutOrStdout(), command); err != nil {
			command.PrintErrln(err)
		}
	})
}

func rpad(s string, padding int) string {
	if len(s) >= padding {
		return s
	}
	return s + strings.Repeat(" ", padding-len(s))
}
